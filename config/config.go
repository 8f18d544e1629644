package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Storage StorageConfig `yaml:"storage"`
}

type StorageConfig struct {
	Path string `yaml:"path"`
}

// DefaultStoragePath is used when no config file is present. It matches the
// historical file name, so existing account files keep working.
const DefaultStoragePath = "user.json"

func Default() *Config {
	return &Config{Storage: StorageConfig{Path: DefaultStoragePath}}
}

// LoadConfig reads a YAML config from path. A missing file is not an error:
// the application is expected to run with defaults in a bare directory.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Default(), nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if cfg.Storage.Path == "" {
		cfg.Storage.Path = DefaultStoragePath
	}

	return cfg, nil
}
