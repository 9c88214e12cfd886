// Package layouts loads brick layouts from files.
// The game validates rows; this package only reads and decodes them.
package layouts

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/vovakirdan/tui-breakout/internal/config/layouts/formats"
)

// Layout is a brick layout read from disk.
type Layout struct {
	Name     string
	Rows     []string
	Metadata map[string]string
	FilePath string
}

// LoadFile loads a single layout file, picking the parser by extension.
func LoadFile(path string) (Layout, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Layout{}, fmt.Errorf("reading file %s: %w", path, err)
	}

	ext := strings.ToLower(filepath.Ext(path))
	parsed, err := parseByExtension(data, ext)
	if err != nil {
		return Layout{}, fmt.Errorf("parsing file %s: %w", path, err)
	}

	name := parsed.Name
	if name == "" {
		name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}

	return Layout{
		Name:     name,
		Rows:     parsed.Rows,
		Metadata: parsed.Metadata,
		FilePath: path,
	}, nil
}

// IsSupported reports whether the file extension has a parser.
func IsSupported(path string) bool {
	return slices.Contains(formats.FormatExtensions(), strings.ToLower(filepath.Ext(path)))
}

// parseByExtension routes to the correct parser.
func parseByExtension(data []byte, ext string) (formats.Layout, error) {
	switch ext {
	case ".yaml", ".yml":
		return formats.ParseYAML(data)
	case ".toml":
		return formats.ParseTOML(data)
	default:
		return formats.Layout{}, fmt.Errorf("unsupported extension: %s", ext)
	}
}
