package config

import (
	_ "embed"
)

//go:embed defaults/blast.yaml
var defaultBlastYAML []byte

// DefaultBlastConfig returns the default blast configuration.
func DefaultBlastConfig() BlastConfig {
	return BlastConfig{
		Board: BlastBoard{
			Width:  8,
			Height: 9,
		},
		Normal: BlastNormal{
			BombLimit: 999,
		},
		Hard: BlastHard{
			LevelLimit: 999,
			LevelQuota: 100,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "blast", "blast_hard":
		return defaultBlastYAML
	default:
		return nil
	}
}
