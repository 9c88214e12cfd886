package main

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/games/breakout"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

// setFlags overrides the global flags for one test.
func setFlags(t *testing.T, cfgPath, difficulty, logLevel, logFile string) {
	t.Helper()
	oldConfig, oldLayout := flagConfig, flagLayout
	oldDifficulty, oldLevel, oldFile := flagDifficulty, flagLogLevel, flagLogFile
	t.Cleanup(func() {
		flagConfig, flagLayout = oldConfig, oldLayout
		flagDifficulty, flagLogLevel, flagLogFile = oldDifficulty, oldLevel, oldFile
	})

	flagConfig = cfgPath
	flagLayout = ""
	flagDifficulty = difficulty
	flagLogLevel = logLevel
	flagLogFile = logFile
}

func TestCheckLayout(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name    string
		file    string
		content string
		wantErr string
	}{
		{"valid yaml", "wall.yaml", "rows:\n  - \"####\"\n  - \"MX  XM\"\n", ""},
		{"valid toml", "wall.toml", "rows = [\"####\"]\n", ""},
		{"odd row", "odd.yaml", "rows:\n  - \"###\"\n", "odd length"},
		{"unsupported format", "wall.json", "{\"rows\": [\"####\"]}", "unsupported layout format"},
		{"unsupported before reading", "missing.txt", "", "unsupported layout format"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(dir, tt.file)
			if tt.content != "" {
				path = writeFile(t, dir, tt.file, tt.content)
			}

			err := checkLayout(path)
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("checkLayout() error = %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("checkLayout() error = %v, expected %q", err, tt.wantErr)
			}
		})
	}
}

func TestRunLayoutCheckReturnsError(t *testing.T) {
	dir := t.TempDir()
	good := writeFile(t, dir, "good.yaml", "rows:\n  - \"####\"\n")
	bad := writeFile(t, dir, "bad.yaml", "rows:\n  - \"#?\"\n")

	if err := runLayoutCheck(nil, []string{good}); err != nil {
		t.Errorf("runLayoutCheck(good) = %v", err)
	}

	err := runLayoutCheck(nil, []string{good, bad})
	if err == nil || !strings.Contains(err.Error(), "1 of 2") {
		t.Errorf("runLayoutCheck(good, bad) = %v, expected 1 of 2 invalid", err)
	}

	if !errors.Is(checkLayout(bad), breakout.ErrConfig) {
		t.Error("bad label should be a config error")
	}
}

func TestServeConfigKeepsBaseUnchanged(t *testing.T) {
	dir := t.TempDir()
	setFlags(t, writeFile(t, dir, "breakout.yaml", "{}\n"), "hard", "info", "")

	cfg, game, err := serveConfig()
	if err != nil {
		t.Fatalf("serveConfig() error = %v", err)
	}
	if cfg.Difficulty != config.DifficultyHard {
		t.Errorf("Difficulty = %q, expected hard", cfg.Difficulty)
	}

	def := config.DefaultBreakoutConfig()
	if game.Paddle.Width != def.Paddle.Width || game.Ball.Speed != def.Ball.Speed {
		t.Errorf("base config has a preset applied: paddle %v, speed %v", game.Paddle.Width, game.Ball.Speed)
	}
}

func TestCommandsReturnErrors(t *testing.T) {
	dir := t.TempDir()
	logFile := filepath.Join(dir, "breakout.log")
	missing := filepath.Join(dir, "missing.yaml")

	t.Run("window with a missing config", func(t *testing.T) {
		setFlags(t, missing, "", "info", logFile)
		err := runWindow(nil, nil)
		if err == nil || !strings.Contains(err.Error(), "loading config") {
			t.Errorf("runWindow() = %v, expected a config error", err)
		}
		if _, statErr := os.Stat(logFile); statErr != nil {
			t.Errorf("log file not created: %v", statErr)
		}
	})

	t.Run("serve with an unknown difficulty", func(t *testing.T) {
		setFlags(t, "", "insane", "info", logFile)
		err := runServe(nil, nil)
		if err == nil || !strings.Contains(err.Error(), "unknown difficulty") {
			t.Errorf("runServe() = %v, expected a difficulty error", err)
		}
	})

	t.Run("bad log level", func(t *testing.T) {
		setFlags(t, "", "", "loud", "")
		err := runServe(nil, nil)
		if err == nil || !strings.Contains(err.Error(), "setting up logging") {
			t.Errorf("runServe() = %v, expected a logging error", err)
		}
	})
}

func TestNewLoggerWritesLogFile(t *testing.T) {
	logFile := filepath.Join(t.TempDir(), "breakout.log")
	setFlags(t, "", "", "info", logFile)

	logger, closeLog, err := newLogger("breakout", nil)
	if err != nil {
		t.Fatalf("newLogger() error = %v", err)
	}
	logger.Info("hello", "bricks", 3)
	closeLog()

	data, err := os.ReadFile(logFile)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "hello") {
		t.Errorf("log file = %q, expected the entry", data)
	}
}
