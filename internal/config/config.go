// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jonathan/awesomecv/internal/compiling"
)

// Config represents the CLI configuration that can be loaded from a JSON
// file. All fields are optional; missing values use defaults or come
// from CLI flags.
type Config struct {
	Family        string `json:"family,omitempty"`          // Template family name
	DocType       string `json:"doctype,omitempty"`         // Document type (resume, cv, coverletter)
	Engine        string `json:"engine,omitempty"`          // Compilation engine preference
	Output        string `json:"output,omitempty"`          // Output file path
	SaveTex       bool   `json:"save_tex,omitempty"`        // Keep intermediate .tex alongside the PDF
	TexOnly       bool   `json:"tex_only,omitempty"`        // Render LaTeX without compiling
	TimeoutSecs   int    `json:"timeout_seconds,omitempty"` // Compiler timeout in seconds
	Verbose       bool   `json:"verbose,omitempty"`         // Print detailed run information
	ValidateInput bool   `json:"validate,omitempty"`        // Schema-validate the record before rendering
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	if c.Engine != "" {
		if _, err := compiling.ParseEngine(c.Engine); err != nil {
			return fmt.Errorf("config error: %w", err)
		}
	}
	if c.TimeoutSecs < 0 {
		return fmt.Errorf("config error: 'timeout_seconds' must be non-negative")
	}
	if c.SaveTex && c.TexOnly {
		return fmt.Errorf("config error: 'save_tex' and 'tex_only' are mutually exclusive")
	}
	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from
// defaults. Used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.Family == "" {
		result.Family = defaults.Family
	}
	if result.DocType == "" {
		result.DocType = defaults.DocType
	}
	if result.Engine == "" {
		result.Engine = defaults.Engine
	}
	if result.Output == "" {
		result.Output = defaults.Output
	}
	if result.TimeoutSecs == 0 {
		result.TimeoutSecs = defaults.TimeoutSecs
	}
	if !result.SaveTex {
		result.SaveTex = defaults.SaveTex
	}
	if !result.TexOnly {
		result.TexOnly = defaults.TexOnly
	}
	if !result.Verbose {
		result.Verbose = defaults.Verbose
	}
	if !result.ValidateInput {
		result.ValidateInput = defaults.ValidateInput
	}

	return result
}
