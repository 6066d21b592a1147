package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Source names used when a configuration does not come from a file.
const (
	SourceEmbedded = "embedded default"
	SourceBuiltin  = "built-in default"
)

// LoadSnake loads the snake configuration and reports where it came from.
// Search order: customPath -> ~/.snake/config.yaml -> ./configs/snake.yaml -> embedded default.
// Files are layered over the defaults, so a file may set only some keys.
func LoadSnake(customPath string) (SnakeConfig, string, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return SnakeConfig{}, "", fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return SnakeConfig{}, "", fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return validated(cfg, customPath)
	}

	// Try user config directory
	if userCfgPath := userConfigPath("config.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := Parse(data); err == nil {
				return validated(cfg, userCfgPath)
			}
		}
	}

	// Try local configs directory
	localPath := filepath.Join("configs", "snake.yaml")
	if data, err := os.ReadFile(localPath); err == nil {
		if cfg, err := Parse(data); err == nil {
			return validated(cfg, localPath)
		}
	}

	// Use embedded default YAML
	cfg, err := Parse(defaultSnakeYAML)
	if err != nil {
		return DefaultSnakeConfig(), SourceBuiltin, nil // Fallback to hardcoded if embed fails
	}
	return validated(cfg, SourceEmbedded)
}

// Parse decodes YAML layered over DefaultSnakeConfig. Unknown keys are rejected.
func Parse(data []byte) (SnakeConfig, error) {
	cfg := DefaultSnakeConfig()

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		if errors.Is(err, io.EOF) {
			return cfg, nil // empty or comments only
		}
		return SnakeConfig{}, err
	}
	return cfg, nil
}

// Marshal encodes the configuration as YAML.
func Marshal(cfg SnakeConfig) ([]byte, error) {
	return yaml.Marshal(cfg)
}

func validated(cfg SnakeConfig, source string) (SnakeConfig, string, error) {
	if err := cfg.Validate(); err != nil {
		return SnakeConfig{}, "", fmt.Errorf("config %s: %w", source, err)
	}
	return cfg, source, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".snake", filename)
}
