// Package config manages headrev configuration settings.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"

	_ "headrev/internal/xdginit"
)

const (
	configDirName  = "headrev"
	configFileName = "config.json"
)

type Config struct {
	// DefaultUpstream overrides the built-in upstream name for the bare
	// invocation.
	DefaultUpstream string `json:"default_upstream"`
	// KeepClones mirrors the --keep flag; nil means the built-in default
	// (keep).
	KeepClones *bool `json:"keep_clones,omitempty"`
	// CloneDepth overrides the depth-1 shallow clone when positive.
	CloneDepth int `json:"clone_depth,omitempty"`
}

func GetConfigDir() (string, error) {
	return filepath.Join(xdg.ConfigHome, configDirName), nil
}

func GetConfigPath() (string, error) {
	dir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, configFileName), nil
}

func LoadConfig() (Config, error) {
	path, err := GetConfigPath()
	if err != nil {
		return Config{}, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Config{}, nil
		}
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}

func SaveConfig(cfg Config) error {
	path, err := GetConfigPath()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
