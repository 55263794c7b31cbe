// Package record loads and validates the data records that get
// substituted into document templates.
package record

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"text/template"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Record is the render context: an arbitrary nested mapping of strings,
// numbers, lists, and nested mappings. No schema is enforced at this
// layer; templates tolerate absent optional fields themselves.
type Record map[string]any

// Load reads a record from path, choosing the format by extension:
// .yaml/.yml, .json, or .toml.
func Load(path string) (Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read record file %s: %w", path, err)
	}
	return Parse(data, filepath.Ext(path))
}

// Parse decodes a record from raw bytes in the given format (a file
// extension, with or without the leading dot).
func Parse(data []byte, format string) (Record, error) {
	var rec Record
	switch strings.TrimPrefix(strings.ToLower(format), ".") {
	case "yaml", "yml":
		if err := yaml.Unmarshal(data, &rec); err != nil {
			return nil, fmt.Errorf("invalid YAML record: %w", err)
		}
	case "json":
		if err := json.Unmarshal(data, &rec); err != nil {
			return nil, fmt.Errorf("invalid JSON record: %w", err)
		}
	case "toml":
		if err := toml.Unmarshal(data, &rec); err != nil {
			return nil, fmt.Errorf("invalid TOML record: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported record format %q (expected yaml, json, or toml)", format)
	}
	if rec == nil {
		return nil, fmt.Errorf("record must contain a mapping")
	}
	return rec, nil
}

// Sections returns the record's section flags. Flag truthiness follows
// the template engine's rules, so false, zero, and empty values count
// as off and anything else as on. A missing or malformed sections entry
// yields an empty map, meaning every optional section is off.
//
// yaml.v3 decodes nested mappings as Record (the top-level target
// type), while JSON and TOML produce map[string]any; both shapes are
// accepted.
func (r Record) Sections() map[string]bool {
	out := make(map[string]bool)
	var raw map[string]any
	switch m := r["sections"].(type) {
	case map[string]any:
		raw = m
	case Record:
		raw = m
	default:
		return out
	}
	for name, v := range raw {
		truth, ok := template.IsTrue(v)
		out[name] = ok && truth
	}
	return out
}

// String returns the record's value for key if it is a string.
func (r Record) String(key string) string {
	s, _ := r[key].(string)
	return s
}
