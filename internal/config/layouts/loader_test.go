package layouts

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadFileFormats(t *testing.T) {
	dir := t.TempDir()
	want := []string{"####", "MX  XM"}

	tests := []struct {
		name    string
		file    string
		content string
	}{
		{
			name:    "yaml",
			file:    "wall.yaml",
			content: "name: Wall\nrows:\n  - \"####\"\n  - \"MX  XM\"\n",
		},
		{
			name:    "yml",
			file:    "wall.yml",
			content: "name: Wall\nrows: [\"####\", \"MX  XM\"]\n",
		},
		{
			name:    "toml",
			file:    "wall.toml",
			content: "name = \"Wall\"\nrows = [\"####\", \"MX  XM\"]\n",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			path := writeFile(t, dir, tc.file, tc.content)
			layout, err := LoadFile(path)
			if err != nil {
				t.Fatalf("LoadFile() error = %v", err)
			}
			if layout.Name != "Wall" {
				t.Errorf("Name = %q, expected Wall", layout.Name)
			}
			if !reflect.DeepEqual(layout.Rows, want) {
				t.Errorf("Rows = %q, expected %q", layout.Rows, want)
			}
			if layout.FilePath != path {
				t.Errorf("FilePath = %q, expected %q", layout.FilePath, path)
			}
		})
	}
}

func TestLoadFileNameFallback(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "pyramid.toml", "rows = [\"##\"]\n")

	layout, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile() error = %v", err)
	}
	if layout.Name != "pyramid" {
		t.Errorf("Name = %q, expected file stem", layout.Name)
	}
}

func TestLoadFileErrors(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name    string
		file    string
		content string
		wantErr string
	}{
		{"unsupported extension", "wall.json", "{}", "unsupported extension"},
		{"yaml without rows", "empty.yaml", "name: Empty\n", "no rows"},
		{"toml unknown key", "typo.toml", "rws = [\"##\"]\n", "unknown key"},
		{"toml syntax", "broken.toml", "rows = [\n", "toml decode"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			path := writeFile(t, dir, tc.file, tc.content)
			_, err := LoadFile(path)
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tc.wantErr) {
				t.Errorf("error %q does not mention %q", err, tc.wantErr)
			}
		})
	}

	if _, err := LoadFile(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("missing file should fail")
	}
}

func TestIsSupported(t *testing.T) {
	for path, want := range map[string]bool{
		"a.yaml": true,
		"a.YML":  true,
		"a.toml": true,
		"a.json": false,
		"a":      false,
	} {
		if got := IsSupported(path); got != want {
			t.Errorf("IsSupported(%q) = %v, expected %v", path, got, want)
		}
	}
}
