package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := ParseBreakout(defaultBreakoutYAML)
	if err != nil {
		t.Fatalf("embedded defaults do not parse: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultBreakoutConfig()) {
		t.Errorf("embedded defaults differ from DefaultBreakoutConfig():\n%+v\n%+v", cfg, DefaultBreakoutConfig())
	}
}

func TestDefaultConfigValid(t *testing.T) {
	if err := DefaultBreakoutConfig().Validate(); err != nil {
		t.Errorf("default config should validate, got %v", err)
	}
}

func TestLoadBreakoutCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	data := "ball:\n  speed: 4\nlayout:\n  - \"##\"\n"
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadBreakout(path)
	if err != nil {
		t.Fatalf("LoadBreakout() error = %v", err)
	}

	if cfg.Ball.Speed != 4 {
		t.Errorf("Ball.Speed = %v, expected 4", cfg.Ball.Speed)
	}
	// Untouched keys keep their defaults
	if cfg.Ball.Radius != 5 || cfg.Arena.Width != 640 {
		t.Errorf("defaults not preserved: %+v", cfg)
	}
	if len(cfg.Layout) != 1 || cfg.Layout[0] != "##" {
		t.Errorf("Layout = %q, expected [\"##\"]", cfg.Layout)
	}
}

func TestLoadBreakoutErrors(t *testing.T) {
	dir := t.TempDir()

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadBreakout(filepath.Join(dir, "nope.yaml"))
		if err == nil || !strings.Contains(err.Error(), "failed to read config") {
			t.Errorf("expected read error, got %v", err)
		}
	})

	t.Run("invalid yaml", func(t *testing.T) {
		path := filepath.Join(dir, "bad.yaml")
		if err := os.WriteFile(path, []byte("ball: [unclosed"), 0o600); err != nil {
			t.Fatal(err)
		}
		_, err := LoadBreakout(path)
		if err == nil || !strings.Contains(err.Error(), "failed to parse config") {
			t.Errorf("expected parse error, got %v", err)
		}
	})
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*BreakoutConfig)
		wantErr string
	}{
		{"zero radius", func(c *BreakoutConfig) { c.Ball.Radius = 0 }, "ball.radius"},
		{"negative speed", func(c *BreakoutConfig) { c.Ball.Speed = -1 }, "ball.speed"},
		{"paddle wider than arena", func(c *BreakoutConfig) { c.Paddle.Width = 700 }, "exceeds arena.width"},
		{"paddle below arena", func(c *BreakoutConfig) { c.Paddle.Y = 470 }, "outside the arena"},
		{"negative nudge", func(c *BreakoutConfig) { c.Paddle.Nudge = -2 }, "paddle.nudge"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultBreakoutConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !strings.Contains(err.Error(), tc.wantErr) {
				t.Errorf("error %q does not mention %q", err, tc.wantErr)
			}
		})
	}
}

func TestDifficultyPresets(t *testing.T) {
	preset, err := ParseDifficulty("")
	if err != nil || preset != DifficultyNormal {
		t.Errorf("ParseDifficulty(\"\") = %q, %v", preset, err)
	}
	if _, err := ParseDifficulty("insane"); err == nil {
		t.Error("unknown preset should fail")
	}

	normal := DefaultBreakoutConfig()
	ApplyBreakoutPreset(&normal, DifficultyNormal)
	if !reflect.DeepEqual(normal, DefaultBreakoutConfig()) {
		t.Error("normal preset should not change the config")
	}

	easy := DefaultBreakoutConfig()
	ApplyBreakoutPreset(&easy, DifficultyEasy)
	hard := DefaultBreakoutConfig()
	ApplyBreakoutPreset(&hard, DifficultyHard)

	if easy.Ball.Speed >= hard.Ball.Speed {
		t.Errorf("easy speed %v should be below hard speed %v", easy.Ball.Speed, hard.Ball.Speed)
	}
	if easy.Paddle.Width <= hard.Paddle.Width {
		t.Errorf("easy paddle %v should be wider than hard paddle %v", easy.Paddle.Width, hard.Paddle.Width)
	}
	if err := hard.Validate(); err != nil {
		t.Errorf("hard preset should validate: %v", err)
	}
}
