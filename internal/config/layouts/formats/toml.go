package formats

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// TOMLLayout represents the TOML structure for a layout file.
type TOMLLayout struct {
	Name     string            `toml:"name"`
	Rows     []string          `toml:"rows"`
	Metadata map[string]string `toml:"metadata"`
}

// ParseTOML parses a TOML layout file. Unknown keys are rejected so typos
// do not silently produce an empty layout.
func ParseTOML(data []byte) (Layout, error) {
	var tl TOMLLayout
	md, err := toml.Decode(string(data), &tl)
	if err != nil {
		return Layout{}, fmt.Errorf("toml decode: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return Layout{}, fmt.Errorf("toml layout has unknown key %q", undecoded[0].String())
	}
	if len(tl.Rows) == 0 {
		return Layout{}, fmt.Errorf("toml layout has no rows")
	}

	return Layout{
		Name:     tl.Name,
		Rows:     tl.Rows,
		Metadata: tl.Metadata,
	}, nil
}
