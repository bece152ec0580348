package specifier

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/hashicorp/hcl/v2/hclsimple"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

// FileConfig is the layout of a specifier table file.
type FileConfig struct {
	// ExtendDefaults merges the file entries over the built-in table instead
	// of replacing it.
	ExtendDefaults bool `hcl:"extend_defaults,optional" yaml:"extend_defaults"`

	Specifiers []Entry `hcl:"specifier,block" yaml:"specifiers"`
}

// LoadFile loads a specifier table from an HCL (.hcl), HCL JSON (.json) or
// YAML (.yaml, .yml) file.
func LoadFile(fs afero.Fs, filename string) (*Table, error) {
	if filename == "" {
		return nil, fmt.Errorf("specifier table path is required")
	}

	exists, err := afero.Exists(fs, filename)
	if err != nil {
		return nil, fmt.Errorf("failed to stat specifier table: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("specifier table not found: %s", filename)
	}

	src, err := afero.ReadFile(fs, filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read specifier table: %w", err)
	}

	var cfg FileConfig
	switch ext := strings.ToLower(filepath.Ext(filename)); ext {
	case ".hcl", ".json":
		if err := hclsimple.Decode(filename, src, nil, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse specifier table: %w", err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(src, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse specifier table: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported specifier table format %q (valid: .hcl, .json, .yaml, .yml)", ext)
	}

	var table *Table
	if cfg.ExtendDefaults {
		table, err = Merge(Default(), cfg.Specifiers)
	} else {
		table, err = NewTable(cfg.Specifiers)
	}
	if err != nil {
		return nil, fmt.Errorf("invalid specifier table %s: %w", filename, err)
	}

	return table, nil
}

// Example specifier table file:
//
// # Extend the built-in ESKD codes with site specific documents
// extend_defaults = true
//
// specifier "ИЭ" {
//   directory   = "IE"
//   description = "Installation instructions"
// }
//
// specifier "КД" {
//   directory = "DETAIL"
// }
