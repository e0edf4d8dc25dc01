package config

import (
	_ "embed"
)

//go:embed defaults/arrows.yaml
var defaultArrowsYAML []byte

// Default returns the built-in configuration, matching the embedded
// defaults/arrows.yaml.
func Default() Config {
	return Config{
		Lives: LivesConfig{
			Initial: 3,
			Max:     5,
		},
		Rewards: RewardsConfig{
			LevelBonusDivisor: 10,
			Tiers: TierRewards{
				Easy:       10,
				Normal:     15,
				Hard:       25,
				Extreme:    40,
				Impossible: 60,
			},
		},
		AntiCheat: AntiCheatConfig{
			Enabled:              true,
			MinLevelTimeSeconds:  5,
			SlowLevelTimeSeconds: 3600,
		},
		Generator: GeneratorConfig{
			BombRadius:        1,
			SpecialCap:        0.2,
			MaxBoardAttempts:  10,
			SeedAttemptFactor: 4,
		},
	}
}
