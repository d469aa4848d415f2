package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadBlocks loads the block game configuration.
// Search order: customPath -> ~/.arcade/configs/blocks.yaml -> ./configs/blocks.yaml -> embedded default.
// Keys missing from a file keep their default values.
func LoadBlocks(customPath string) (BlocksConfig, error) {
	cfg := DefaultBlocksConfig()

	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("config: read %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	if userCfgPath := userConfigPath("blocks.yaml"); userCfgPath != "" {
		if loaded, ok := tryLoad(userCfgPath); ok {
			return loaded, nil
		}
	}

	if loaded, ok := tryLoad(filepath.Join("configs", "blocks.yaml")); ok {
		return loaded, nil
	}

	embedded := DefaultBlocksConfig()
	if err := yaml.Unmarshal(defaultBlocksYAML, &embedded); err != nil {
		return DefaultBlocksConfig(), nil
	}
	return embedded, nil
}

// Load is LoadBlocks followed by environment overrides, the difficulty
// preset and validation. It is what the CLI and the game adapter use.
func Load(customPath string, preset DifficultyPreset) (BlocksConfig, error) {
	cfg, err := LoadBlocks(customPath)
	if err != nil {
		return cfg, err
	}
	if err := ApplyEnv(&cfg); err != nil {
		return cfg, err
	}
	if err := ApplyBlocksPreset(&cfg, preset); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// tryLoad reads an optional config file. Unreadable or malformed files are
// skipped so the next location in the search order is tried.
func tryLoad(path string) (BlocksConfig, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		return BlocksConfig{}, false
	}
	cfg := DefaultBlocksConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return BlocksConfig{}, false
	}
	return cfg, true
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}

// ExpandHome replaces a leading ~ with the user's home directory.
func ExpandHome(path string) (string, error) {
	if path == "" || path[0] != '~' {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("config: cannot expand home directory: %w", err)
	}
	return filepath.Join(home, path[1:]), nil
}
