package config

import (
	"fmt"
	"os"

	"github.com/adrg/xdg"
	"gopkg.in/yaml.v3"
)

const (
	configFileName = "pentix.yaml"
	localConfigDir = "configs"
)

// LoadPentix loads Pentix configuration.
// Search order: customPath -> $XDG_CONFIG_HOME/pentix/pentix.yaml ->
// ./configs/pentix.yaml -> embedded default.
// Files are decoded over the defaults, so partial files are allowed.
func LoadPentix(customPath string) (PentixConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return PentixConfig{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return PentixConfig{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := UserConfigPath(); userCfgPath != "" {
		if cfg, ok := tryLoad(userCfgPath); ok {
			return cfg, nil
		}
	}

	// Try local configs directory
	if cfg, ok := tryLoad(localConfigDir + "/" + configFileName); ok {
		return cfg, nil
	}

	// Use embedded default YAML
	cfg, err := Parse(defaultPentixYAML)
	if err != nil {
		return DefaultPentixConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// Parse decodes YAML over the default configuration and validates it.
func Parse(data []byte) (PentixConfig, error) {
	cfg := DefaultPentixConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return PentixConfig{}, err
	}
	if err := cfg.Validate(); err != nil {
		return PentixConfig{}, err
	}
	return cfg, nil
}

// Marshal renders the configuration as YAML.
func Marshal(cfg PentixConfig) ([]byte, error) {
	return yaml.Marshal(cfg)
}

// tryLoad reads and parses an optional config file.
func tryLoad(path string) (PentixConfig, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		return PentixConfig{}, false
	}
	cfg, err := Parse(data)
	if err != nil {
		return PentixConfig{}, false
	}
	return cfg, true
}

// UserConfigPath returns the user config file path if it exists, or empty.
func UserConfigPath() string {
	path, err := xdg.SearchConfigFile("pentix/" + configFileName)
	if err != nil {
		return ""
	}
	return path
}
