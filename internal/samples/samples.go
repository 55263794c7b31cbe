// Package samples bundles ready-to-use example records for every
// document type, for quick starts and for tests.
package samples

import (
	"embed"
	"fmt"
	"sort"
	"strings"

	"github.com/jonathan/awesomecv/internal/record"
)

//go:embed data/*.yaml
var dataFS embed.FS

// Load returns the sample record for the document type.
func Load(docType string) (record.Record, error) {
	raw, err := Raw(docType)
	if err != nil {
		return nil, err
	}
	return record.Parse(raw, "yaml")
}

// Raw returns the sample's YAML source, suitable for writing out as a
// starting point for the user's own data.
func Raw(docType string) ([]byte, error) {
	raw, err := dataFS.ReadFile("data/" + docType + ".yaml")
	if err != nil {
		return nil, fmt.Errorf("no sample data for document type %q. Available: %s",
			docType, strings.Join(List(), ", "))
	}
	return raw, nil
}

// List returns the document types that have sample data.
func List() []string {
	entries, err := dataFS.ReadDir("data")
	if err != nil {
		return nil
	}
	var out []string
	for _, e := range entries {
		out = append(out, strings.TrimSuffix(e.Name(), ".yaml"))
	}
	sort.Strings(out)
	return out
}
