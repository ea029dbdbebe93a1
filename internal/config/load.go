package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"

	"gopkg.in/yaml.v3"
)

const fileName = "config.yaml"

// Load resolves the configuration: defaults, then the first config file
// found (or the one named by --config), then command-line flags.
func Load() (*Config, error) {
	cfg := Default()

	path := ConfigPath()
	if path == "" {
		path = findConfigFile()
	}
	if path != "" {
		if err := loadFromFile(cfg, path); err != nil {
			return nil, fmt.Errorf("config %s: %w", path, err)
		}
	}

	applyFlags(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// searchPaths lists where a config file is looked for, in order.
func searchPaths() []string {
	return []string{
		filepath.Join(".", fileName),
		filepath.Join(ConfigDir(), fileName),
	}
}

func findConfigFile() string {
	for _, p := range searchPaths() {
		if info, err := os.Stat(p); err == nil && !info.IsDir() {
			return p
		}
	}
	return ""
}

// ConfigDir returns the per-user config directory for this platform.
func ConfigDir() string {
	home, _ := os.UserHomeDir()
	switch runtime.GOOS {
	case "darwin":
		return filepath.Join(home, "Library", "Application Support", "QuatRotator")
	case "windows":
		if appData := os.Getenv("APPDATA"); appData != "" {
			return filepath.Join(appData, "QuatRotator")
		}
		return filepath.Join(home, "AppData", "Roaming", "QuatRotator")
	}
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "quatrotator")
	}
	return filepath.Join(home, ".config", "quatrotator")
}

// loadFromFile merges the YAML document at path over cfg. Keys that do not
// map to a field are rejected so typos surface instead of being ignored.
func loadFromFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}
