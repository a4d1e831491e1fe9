// Package config provides YAML-based game configuration loading and
// difficulty presets.
package config

// NeotrisConfig contains all tunable configuration for the game.
type NeotrisConfig struct {
	Board    BoardConfig    `yaml:"board"`
	Timing   TimingConfig   `yaml:"timing"`
	Features FeatureConfig  `yaml:"features"`
	Adaptive AdaptiveConfig `yaml:"adaptive"`
	Theme    string         `yaml:"theme"`
}

// BoardConfig defines the well dimensions.
type BoardConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// TimingConfig defines fall timing in milliseconds.
type TimingConfig struct {
	BaseDropMS int `yaml:"base_drop_ms"` // Fall interval at difficulty 1.0
	MinDropMS  int `yaml:"min_drop_ms"`  // Fastest allowed fall interval
	// Per-level speedup used when the adaptive controller is disabled:
	// interval = max(min_drop_ms, base_drop_ms - level*level_speedup_ms).
	LevelSpeedupMS int `yaml:"level_speedup_ms"`
}

// FeatureConfig defines which assists start enabled.
type FeatureConfig struct {
	Ghost   bool `yaml:"ghost"`   // Landing indicator
	Advisor bool `yaml:"advisor"` // Heuristic move suggestion overlay
}

// AdaptiveConfig controls the performance-adaptive difficulty controller.
type AdaptiveConfig struct {
	Enabled bool `yaml:"enabled"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ApplyPreset modifies the config based on a difficulty preset. The fixed
// preset pins the fall speed by disabling the adaptive controller and the
// per-level speedup; the others shift the timing envelope.
func ApplyPreset(cfg *NeotrisConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Timing.BaseDropMS = 1200
		cfg.Timing.MinDropMS = 150
	case DifficultyNormal:
		cfg.Timing.BaseDropMS = 1000
		cfg.Timing.MinDropMS = 100
	case DifficultyHard:
		cfg.Timing.BaseDropMS = 700
		cfg.Timing.MinDropMS = 100
	case DifficultyFixed:
		cfg.Adaptive.Enabled = false
		cfg.Timing.LevelSpeedupMS = 0
	}
}
