package config

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

//go:embed defaults/config.yaml
var defaultYAML []byte

// Load reads the configuration.
// Search order: customPath -> ~/.tttt/config.yaml -> ./config.yaml -> embedded default.
// A custom path that cannot be read or parsed is an error; the fallback
// locations are skipped silently.
func Load(customPath string) (Config, error) {
	var cfg Config

	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("config: cannot read %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: cannot parse %s: %w", customPath, err)
		}
		if err := cfg.Validate(); err != nil {
			return cfg, err
		}
		return cfg, nil
	}

	if userPath := userConfigPath(); userPath != "" {
		if data, err := os.ReadFile(userPath); err == nil {
			var user Config
			if err := yaml.Unmarshal(data, &user); err == nil && user.Validate() == nil {
				return user, nil
			}
		}
	}

	if data, err := os.ReadFile("config.yaml"); err == nil {
		var local Config
		if err := yaml.Unmarshal(data, &local); err == nil && local.Validate() == nil {
			return local, nil
		}
	}

	if err := yaml.Unmarshal(defaultYAML, &cfg); err != nil {
		return Default(), nil
	}
	return cfg, nil
}

// Default returns the hardcoded fallback configuration, used when even
// the embedded default cannot be parsed.
func Default() Config {
	return Config{
		Board: BoardConfig{Size: 3},
		Display: DisplayConfig{
			MarkA:     "X",
			MarkB:     "O",
			ShowHints: true,
		},
		Storage: StorageConfig{Path: "~/.tttt/results.db"},
	}
}

// userConfigPath returns the per-user config location, or empty if the
// home directory is unavailable.
func userConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".tttt", "config.yaml")
}
