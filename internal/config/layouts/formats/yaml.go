// Package formats provides pluggable layout file format parsers.
package formats

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Layout represents a parsed layout file.
type Layout struct {
	Name     string
	Rows     []string
	Metadata map[string]string
}

// YAMLLayout represents the YAML structure for a layout file.
type YAMLLayout struct {
	Name     string            `yaml:"name"`
	Rows     []string          `yaml:"rows"`
	Metadata map[string]string `yaml:"metadata,omitempty"`
}

// ParseYAML parses a YAML layout file.
func ParseYAML(data []byte) (Layout, error) {
	var yl YAMLLayout
	if err := yaml.Unmarshal(data, &yl); err != nil {
		return Layout{}, fmt.Errorf("yaml unmarshal: %w", err)
	}
	if len(yl.Rows) == 0 {
		return Layout{}, fmt.Errorf("yaml layout has no rows")
	}

	return Layout{
		Name:     yl.Name,
		Rows:     yl.Rows,
		Metadata: yl.Metadata,
	}, nil
}

// FormatExtensions returns supported file extensions.
func FormatExtensions() []string {
	return []string{".yaml", ".yml", ".toml"}
}
