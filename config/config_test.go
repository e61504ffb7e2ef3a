package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/adrg/xdg"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestDefaultValidates(t *testing.T) {
	c := Default()
	if err := c.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
}

func TestLoadOverlaysDefaults(t *testing.T) {
	path := writeFile(t, `{"white": {"evaluator": "material", "depth": 3, "width": 4}, "game": {"p": 0.5, "max_moves": 40, "stalemate_threshold": 20}}`)
	c, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if c.White.Evaluator != "material" || c.White.Depth != 3 || c.White.Width != 4 {
		t.Fatalf("white side not loaded: %+v", c.White)
	}
	if c.Game.P != 0.5 || c.Game.MaxMoves != 40 {
		t.Fatalf("game settings not loaded: %+v", c.Game)
	}
	if c.Black != Default().Black {
		t.Fatalf("black side lost its defaults: %+v", c.Black)
	}
	if len(c.Search.Triggers) != 3 {
		t.Fatalf("expected default triggers, got %d", len(c.Search.Triggers))
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.json"))
	if !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("expected fs.ErrNotExist for an explicit missing path, got %v", err)
	}
}

func TestInitConfigWithoutFileUsesDefaults(t *testing.T) {
	t.Cleanup(xdg.Reload)
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("XDG_CONFIG_DIRS", t.TempDir())
	xdg.Reload()

	c, err := InitConfig()
	if err != nil {
		t.Fatalf("init: %v", err)
	}
	if c.Game != Default().Game || c.White != Default().White {
		t.Fatalf("expected defaults, got %+v", c)
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"bad json", `{"white": `},
		{"bad p", `{"game": {"p": 0}}`},
		{"bad evaluator", `{"black": {"evaluator": "stockfish", "depth": 1, "width": 1}}`},
		{"bad depth", `{"white": {"evaluator": "material", "depth": 0, "width": 1}}`},
		{"bad trigger", `{"search": {"triggers": [{"kind": "moves_since_capture"}]}}`},
		{"negative cache", `{"search": {"eval_cache_entries": -1}}`},
	}
	for _, tt := range tests {
		_, err := Load(writeFile(t, tt.body))
		var invalid *InvalidConfig
		if !errors.As(err, &invalid) {
			t.Fatalf("%s: expected InvalidConfig, got %v", tt.name, err)
		}
	}
}

func TestSaveThenInit(t *testing.T) {
	t.Cleanup(xdg.Reload)
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	xdg.Reload()

	c := Default()
	c.Game.Seed = 99
	path, err := c.Save()
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if filepath.Base(path) != "config.json" {
		t.Fatalf("unexpected config path %s", path)
	}
	loaded, err := InitConfig()
	if err != nil {
		t.Fatalf("init: %v", err)
	}
	if loaded.Game.Seed != 99 {
		t.Fatalf("expected saved seed 99, got %d", loaded.Game.Seed)
	}
}
