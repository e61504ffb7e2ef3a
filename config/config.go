// Package config loads self-play settings from the user's XDG config
// directory.
package config

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"os"

	"github.com/adrg/xdg"
)

var (
	cfgFile = "chess-alts/config.json"
)

type InvalidConfig struct {
	err string
}

func (e *InvalidConfig) Error() string {
	return fmt.Sprintf("config error: %s", e.err)
}

// SideConfig configures the searcher playing one side.
type SideConfig struct {
	Evaluator string `json:"evaluator"`
	Depth     int    `json:"depth"`
	Width     int    `json:"width"`
}

// TriggerConfig mirrors engine.Trigger. Kind is "pieces_below" or
// "fullmove_above".
type TriggerConfig struct {
	Kind      string `json:"kind"`
	Threshold int    `json:"threshold"`
	Depth     int    `json:"depth"`
	Width     int    `json:"width"`
}

type SearchConfig struct {
	EvalCacheEntries int             `json:"eval_cache_entries"`
	Triggers         []TriggerConfig `json:"triggers"`
}

type GameConfig struct {
	P                  float64 `json:"p"`
	MaxMoves           int     `json:"max_moves"`
	StalemateThreshold int     `json:"stalemate_threshold"`
	StopThreshold      float64 `json:"stop_threshold"`
	// Seed 0 means a random seed.
	Seed  int64  `json:"seed"`
	Start string `json:"start_fen"`
}

type Config struct {
	White  SideConfig   `json:"white"`
	Black  SideConfig   `json:"black"`
	Search SearchConfig `json:"search"`
	Game   GameConfig   `json:"game"`
}

// InitConfig returns the defaults overlaid with the user's config file, if
// one exists.
func InitConfig() (*Config, error) {
	absPath, err := xdg.SearchConfigFile(cfgFile)
	if err != nil {
		config := Default()
		return &config, nil
	}
	return Load(absPath)
}

// Load reads and validates the config file at filePath. Fields missing from
// the file keep their defaults; a missing file is an error.
func Load(filePath string) (*Config, error) {
	config := Default()
	if err := readCfgFile(filePath, &config); err != nil {
		return nil, err
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

func (c *Config) Validate() error {
	for _, side := range []SideConfig{c.White, c.Black} {
		switch side.Evaluator {
		case "material", "mobility":
		default:
			return &InvalidConfig{fmt.Sprintf("unknown evaluator %q", side.Evaluator)}
		}
		if side.Depth < 1 || side.Width < 1 {
			return &InvalidConfig{"depth and width must be at least 1"}
		}
	}
	if !(c.Game.P > 0 && c.Game.P <= 1) {
		return &InvalidConfig{fmt.Sprintf("p must be in (0, 1], got %v", c.Game.P)}
	}
	if c.Game.MaxMoves < 1 {
		return &InvalidConfig{"max_moves must be positive"}
	}
	if c.Game.StalemateThreshold < 1 {
		return &InvalidConfig{"stalemate_threshold must be positive"}
	}
	if c.Search.EvalCacheEntries < 0 {
		return &InvalidConfig{"eval_cache_entries must not be negative"}
	}
	for _, t := range c.Search.Triggers {
		if t.Kind != "pieces_below" && t.Kind != "fullmove_above" {
			return &InvalidConfig{fmt.Sprintf("unknown trigger kind %q", t.Kind)}
		}
	}
	return nil
}

// Save writes c to the user's config directory, creating it if needed.
func (c *Config) Save() (string, error) {
	absPath, err := xdg.ConfigFile(cfgFile)
	if err != nil {
		return "", err
	}
	return absPath, saveCfgFile(absPath, c, 0664)
}

func saveCfgFile(filePath string, a interface{}, perm fs.FileMode) error {
	jsonData, err := json.MarshalIndent(a, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filePath, jsonData, perm)
}

func readCfgFile(filePath string, a interface{}) error {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, a); err != nil {
		return &InvalidConfig{fmt.Sprintf("%s: %v", filePath, err)}
	}
	return nil
}
