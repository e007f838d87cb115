package config

import (
	_ "embed"
)

//go:embed defaults/pentix.yaml
var defaultPentixYAML []byte

// DefaultPentixConfig returns the hardcoded Pentix configuration.
// It matches defaults/pentix.yaml except that Shapes is left empty so the
// game falls back to its built-in catalog.
func DefaultPentixConfig() PentixConfig {
	return PentixConfig{
		Board: BoardConfig{
			Rows:    20,
			Columns: 10,
		},
		Spawn: SpawnConfig{
			Row:    0,
			Column: 4,
			Color:  "green",
		},
		Scoring: ScoringConfig{
			PointsPerRow: 10,
		},
		Timing: TimingConfig{
			FallIntervalMS: 525,
		},
		Rules: RulesConfig{
			SpawnOnLand: true,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultPentixYAML
}
