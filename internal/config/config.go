package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

type Config struct {
	Window   WindowConfig   `toml:"window"`
	Bar      BarConfig      `toml:"bar"`
	Feedback FeedbackConfig `toml:"feedback"`
	Tabs     []TabConfig    `toml:"tabs"`
}

type WindowConfig struct {
	Width      int  `toml:"width"`
	Height     int  `toml:"height"`
	Fullscreen bool `toml:"fullscreen"`
}

type BarConfig struct {
	ItemWidth      float64 `toml:"item_width"`
	Spacing        float64 `toml:"spacing"`
	Alignment      string  `toml:"alignment"` // leading | center | trailing
	IndicatorColor string  `toml:"indicator_color"`
}

type FeedbackConfig struct {
	Sound bool `toml:"sound"`
}

type TabConfig struct {
	ID    string `toml:"id"`
	Title string `toml:"title"`
	Icon  string `toml:"icon"`
}

func DefaultConfig() *Config {
	return &Config{
		Window: WindowConfig{
			Width:  960,
			Height: 540,
		},
		Bar: BarConfig{
			ItemWidth: 90,
			Spacing:   0,
			Alignment: "center",
		},
		Feedback: FeedbackConfig{
			Sound: true,
		},
		Tabs: []TabConfig{
			{ID: "home", Title: "Home", Icon: "home"},
			{ID: "search", Title: "Search", Icon: "search"},
			{ID: "library", Title: "Library", Icon: "list"},
			{ID: "discover", Title: "Discover", Icon: "compass"},
			{ID: "starred", Title: "Starred", Icon: "star"},
			{ID: "history", Title: "History", Icon: "list"},
			{ID: "profile", Title: "Profile", Icon: "star"},
			{ID: "settings", Title: "Settings", Icon: "gear"},
		},
	}
}

func ConfigDir() (string, error) {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "tabstrip"), nil
}

func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// Load reads the config file, falling back to defaults when it is absent.
func Load() (*Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return DefaultConfig(), nil
	}
	return LoadFile(path)
}

// LoadFile reads a specific config file. A missing file yields defaults.
func LoadFile(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}

func (c *Config) Save() error {
	path, err := ConfigPath()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return toml.NewEncoder(f).Encode(c)
}
