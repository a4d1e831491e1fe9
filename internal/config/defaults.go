package config

import (
	_ "embed"
)

//go:embed defaults/neotris.yaml
var defaultNeotrisYAML []byte

// DefaultNeotrisConfig returns the hardcoded default configuration,
// mirroring the embedded defaults/neotris.yaml.
func DefaultNeotrisConfig() NeotrisConfig {
	return NeotrisConfig{
		Board: BoardConfig{
			Width:  10,
			Height: 20,
		},
		Timing: TimingConfig{
			BaseDropMS:     1000,
			MinDropMS:      100,
			LevelSpeedupMS: 50,
		},
		Features: FeatureConfig{
			Ghost:   true,
			Advisor: false,
		},
		Adaptive: AdaptiveConfig{
			Enabled: true,
		},
		Theme: "Neon",
	}
}
