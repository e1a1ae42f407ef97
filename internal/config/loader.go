package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadBlast loads the blast configuration.
// Search order: customPath -> ~/.blastgrid/configs/blast.yaml -> ./configs/blast.yaml -> embedded default
func LoadBlast(customPath string) (BlastConfig, error) {
	var cfg BlastConfig

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return fillDefaults(cfg), nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("blast.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil {
				return fillDefaults(cfg), nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile("configs/blast.yaml"); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return fillDefaults(cfg), nil
		}
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultBlastYAML, &cfg); err != nil {
		return DefaultBlastConfig(), nil // Fallback to hardcoded if embed fails
	}
	return fillDefaults(cfg), nil
}

// fillDefaults replaces zero values with defaults so a partial config
// file stays usable. Rows carry two bombs in distinct columns, so a board
// narrower than 2 falls back to the default width.
func fillDefaults(cfg BlastConfig) BlastConfig {
	def := DefaultBlastConfig()
	if cfg.Board.Width < 2 {
		cfg.Board.Width = def.Board.Width
	}
	if cfg.Board.Height <= 0 {
		cfg.Board.Height = def.Board.Height
	}
	if cfg.Normal.BombLimit <= 0 {
		cfg.Normal.BombLimit = def.Normal.BombLimit
	}
	if cfg.Hard.LevelLimit <= 0 {
		cfg.Hard.LevelLimit = def.Hard.LevelLimit
	}
	if cfg.Hard.LevelQuota <= 0 {
		cfg.Hard.LevelQuota = def.Hard.LevelQuota
	}
	return cfg
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".blastgrid", "configs", filename)
}
