package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/acksell/dynein/dynamodb/ddbctl"
	"gopkg.in/yaml.v3"
)

const configFileName = "dy.yaml"

// Config holds dy's persistent settings.
// Loaded from dy.yaml if present, else from ~/.dy/config.yaml.
type Config struct {
	// Using is the table selected with `dy use`.
	Using ddbctl.Using `yaml:"using,omitempty"`

	// CacheDir is where BadgerDB keeps table descriptions.
	// Defaults to ~/.dy/cache.
	CacheDir string `yaml:"cacheDir,omitempty"`

	// Concurrency bounds fan-out over regions and tables. 0 means unbounded.
	Concurrency int `yaml:"concurrency,omitempty"`

	// LogFile, if set, receives a rotating copy of the log.
	LogFile string `yaml:"logFile,omitempty"`

	path string
	home string
}

// LoadConfig searches for dy.yaml starting from the current directory and
// walking up to the filesystem root, then falls back to ~/.dy/config.yaml.
// A missing file yields an empty config that saves to the home location.
func LoadConfig() (Config, error) {
	dir, err := os.Getwd()
	if err != nil {
		return Config{}, fmt.Errorf("get working directory: %w", err)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return Config{}, fmt.Errorf("get home directory: %w", err)
	}
	return loadConfig(dir, home)
}

func loadConfig(dir, home string) (Config, error) {
	path := findConfigFile(dir)
	if path == "" {
		path = filepath.Join(home, ".dy", "config.yaml")
	}
	cfg := Config{path: path, home: home}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse %s: %w", path, err)
	}
	return cfg, nil
}

// findConfigFile searches for dy.yaml walking up from dir.
func findConfigFile(dir string) string {
	for {
		path := filepath.Join(dir, configFileName)
		if _, err := os.Stat(path); err == nil {
			return path
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			// Reached filesystem root
			return ""
		}
		dir = parent
	}
}

// Path is the file the config was loaded from, or will be saved to.
func (c Config) Path() string { return c.path }

// CachePath is CacheDir, or ~/.dy/cache when unset. A leading "~/" is
// expanded to the home directory.
func (c Config) CachePath() string {
	if c.CacheDir != "" {
		return c.expandHome(c.CacheDir)
	}
	return filepath.Join(c.home, ".dy", "cache")
}

// LogPath is LogFile with a leading "~/" expanded.
func (c Config) LogPath() string {
	return c.expandHome(c.LogFile)
}

func (c Config) expandHome(path string) string {
	if path == "~" {
		return c.home
	}
	if rest, ok := strings.CutPrefix(path, "~/"); ok {
		return filepath.Join(c.home, rest)
	}
	return path
}

// Save writes the config back to Path.
func (c Config) Save() error {
	if c.path == "" {
		return errors.New("config has no path")
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(c.path), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	if err := os.WriteFile(c.path, data, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
