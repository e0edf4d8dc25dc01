// Package config provides YAML-based game configuration and the
// level-scaled difficulty curves for the arrows puzzle core.
package config

// Config contains every tunable of the puzzle core. Values the original
// game balance depends on (lives, special-arrow ramps, reward tiers) all
// live here so the generator and replay validator stay free of magic
// numbers.
type Config struct {
	Lives     LivesConfig     `yaml:"lives"`
	Rewards   RewardsConfig   `yaml:"rewards"`
	AntiCheat AntiCheatConfig `yaml:"anticheat"`
	Generator GeneratorConfig `yaml:"generator"`
}

// LivesConfig defines the replay validator's life pool.
type LivesConfig struct {
	Initial int `yaml:"initial"`
	Max     int `yaml:"max"`
}

// RewardsConfig defines coin payouts per completed level.
type RewardsConfig struct {
	// LevelBonusDivisor adds level/divisor coins on top of the tier base.
	LevelBonusDivisor int         `yaml:"level_bonus_divisor"`
	Tiers             TierRewards `yaml:"tiers"`
}

// TierRewards is the base coin payout per difficulty tier.
type TierRewards struct {
	Easy       int `yaml:"easy"`
	Normal     int `yaml:"normal"`
	Hard       int `yaml:"hard"`
	Extreme    int `yaml:"extreme"`
	Impossible int `yaml:"impossible"`
}

// AntiCheatConfig gates completion submissions on wall-clock timing.
type AntiCheatConfig struct {
	Enabled bool `yaml:"enabled"`
	// MinLevelTimeSeconds rejects runs finished faster than a human can play.
	MinLevelTimeSeconds int `yaml:"min_level_time_seconds"`
	// SlowLevelTimeSeconds flags (but does not reject) suspiciously long runs.
	SlowLevelTimeSeconds int `yaml:"slow_level_time_seconds"`
}

// GeneratorConfig bounds the level generator.
type GeneratorConfig struct {
	BombRadius int `yaml:"bomb_radius"`
	// SpecialCap limits special arrows to this fraction of the board.
	SpecialCap float64 `yaml:"special_cap"`
	// MaxBoardAttempts bounds whole-board regeneration when a shape has no
	// solvability-preserving head candidate.
	MaxBoardAttempts int `yaml:"max_board_attempts"`
	// SeedAttemptFactor scales the tiling attempt budget by cell count.
	SeedAttemptFactor int `yaml:"seed_attempt_factor"`
}

// Tier buckets a numeric difficulty score for reward purposes.
type Tier string

const (
	TierEasy       Tier = "easy"
	TierNormal     Tier = "normal"
	TierHard       Tier = "hard"
	TierExtreme    Tier = "extreme"
	TierImpossible Tier = "impossible"
)

// TierOf maps a difficulty score onto its reward tier.
func TierOf(difficulty float64) Tier {
	switch {
	case difficulty <= 3:
		return TierEasy
	case difficulty <= 6:
		return TierNormal
	case difficulty <= 8:
		return TierHard
	case difficulty <= 10:
		return TierExtreme
	}
	return TierImpossible
}

// BaseCoins returns the tier's base payout.
func (r RewardsConfig) BaseCoins(tier Tier) int {
	switch tier {
	case TierEasy:
		return r.Tiers.Easy
	case TierHard:
		return r.Tiers.Hard
	case TierExtreme:
		return r.Tiers.Extreme
	case TierImpossible:
		return r.Tiers.Impossible
	}
	return r.Tiers.Normal
}
