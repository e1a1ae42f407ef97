// Package config provides YAML-based game configuration loading for the
// blastgrid platform.
package config

// BlastConfig contains all configuration for the blast game modes.
type BlastConfig struct {
	Board  BlastBoard  `yaml:"board"`
	Normal BlastNormal `yaml:"normal"`
	Hard   BlastHard   `yaml:"hard"`
}

// BlastBoard defines the playfield dimensions shared by both modes.
type BlastBoard struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// BlastNormal defines parameters for the normal mode.
type BlastNormal struct {
	// BombLimit is the number of detonated bombs that wins the game.
	BombLimit int `yaml:"bomb_limit"`
}

// BlastHard defines parameters for the hard mode.
type BlastHard struct {
	// LevelLimit caps level progression.
	LevelLimit int `yaml:"level_limit"`

	// LevelQuota is how many levels make up one section. Crossing a
	// section boundary sweeps the board and tightens the bomb cadence.
	LevelQuota int `yaml:"level_quota"`
}
