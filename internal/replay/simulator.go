// Package replay is the authoritative server-side validator for
// completed runs. It reconstructs the level from (level, seed), replays
// the client's submitted click sequence move by move and scores the run.
// Nothing the client sent about board state is trusted; only the move
// ids are.
package replay

import (
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/Lololomus/Arrows-sub000/internal/config"
	"github.com/Lololomus/Arrows-sub000/internal/engine"
	"github.com/Lololomus/Arrows-sub000/internal/puzzle"
	"github.com/Lololomus/Arrows-sub000/internal/spatial"
)

// Request is a completion submission from the client.
type Request struct {
	Level       int      `json:"level"`
	Seed        int64    `json:"seed"`
	Moves       []string `json:"moves"`
	TimeSeconds int      `json:"time_seconds"`
}

// Result is the validation outcome. Invalid runs are results, not
// errors: the validator never fails with a Go error on bad input.
type Result struct {
	Valid       bool     `json:"valid"`
	Mistakes    int      `json:"mistakes"`
	Stars       int      `json:"stars,omitempty"`
	CoinsEarned int      `json:"coins_earned,omitempty"`
	Error       string   `json:"error,omitempty"`
	Flags       []string `json:"flags,omitempty"`
}

// Simulator validates runs under one game configuration.
type Simulator struct {
	cfg config.Config
	log *log.Logger
}

// New creates a simulator. A nil logger falls back to the package default.
func New(cfg config.Config, logger *log.Logger) *Simulator {
	if logger == nil {
		logger = log.Default()
	}
	return &Simulator{cfg: cfg, log: logger}
}

// Validate replays the submitted moves against a private working copy of
// the level's arrow set. Collisions cost a life and count as mistakes;
// running out of lives, referencing an unknown arrow or leaving arrows on
// the board all fail the run. Clicking a frozen ice arrow defrosts it and
// the same move then resolves as a normal click, so one submitted move
// per arrow clears any board.
func (s *Simulator) Validate(level *puzzle.Level, req Request) Result {
	var flags []string

	if s.cfg.AntiCheat.Enabled {
		if req.TimeSeconds < s.cfg.AntiCheat.MinLevelTimeSeconds {
			return Result{
				Valid: false,
				Error: "completed too fast",
				Flags: []string{fmt.Sprintf("TOO_FAST: %ds", req.TimeSeconds)},
			}
		}
		if req.TimeSeconds > s.cfg.AntiCheat.SlowLevelTimeSeconds {
			flags = append(flags, fmt.Sprintf("TOO_SLOW: %ds", req.TimeSeconds))
		}
	}

	if req.Seed != level.Seed {
		return Result{Valid: false, Error: "seed mismatch", Flags: flags}
	}

	working := level.CloneArrows()
	ix := spatial.Build(working, level.Grid)

	lives := s.cfg.Lives.Initial
	mistakes := 0
	// Arrows destroyed by bombs or electric zaps. An honest client may
	// still have queued a click on one before it vanished, so such moves
	// are skipped instead of failing the run.
	blasted := make(map[string]bool)

	for step, id := range req.Moves {
		a := ix.Arrow(id)
		if a == nil {
			if blasted[id] {
				continue
			}
			return Result{
				Valid:    false,
				Mistakes: mistakes,
				Error:    fmt.Sprintf("unknown arrow %q at step %d", id, step+1),
				Flags:    flags,
			}
		}

		res := processMove(ix, a, level.Grid, s.cfg.Generator.BombRadius)
		if res.Defrosted {
			// Defrosting and flying are one submitted move.
			res = processMove(ix, a, level.Grid, s.cfg.Generator.BombRadius)
		}

		if res.Collision {
			mistakes++
			lives--
			if lives <= 0 {
				return Result{
					Valid:    false,
					Mistakes: mistakes,
					Error:    fmt.Sprintf("out of lives at step %d", step+1),
					Flags:    flags,
				}
			}
			continue
		}

		ix.Remove(a.ID)
		if res.BonusLife && lives < s.cfg.Lives.Max {
			lives++
		}
		for _, hit := range res.BombExplosion {
			ix.Remove(hit.ID)
			blasted[hit.ID] = true
		}
		if res.ElectricTarget != nil {
			ix.Remove(res.ElectricTarget.ID)
			blasted[res.ElectricTarget.ID] = true
		}
	}

	if ix.Len() != 0 {
		return Result{
			Valid:    false,
			Mistakes: mistakes,
			Error:    fmt.Sprintf("%d arrows left on the board", ix.Len()),
			Flags:    flags,
		}
	}

	stars := CalculateStars(mistakes)
	return Result{
		Valid:       true,
		Mistakes:    mistakes,
		Stars:       stars,
		CoinsEarned: s.coins(level, stars),
		Flags:       flags,
	}
}

// processMove mirrors engine.ProcessMove but resolves blocking through
// the session's spatial index, keeping each replayed click at
// O(path length) on large boards.
func processMove(ix *spatial.Index, a *puzzle.Arrow, grid puzzle.Grid, bombRadius int) engine.MoveResult {
	if a.Type == puzzle.TypeIce && a.Frozen {
		a.Frozen = false
		return engine.MoveResult{Defrosted: true}
	}

	if blocker := ix.FirstOnPath(a); blocker != nil {
		return engine.MoveResult{Collision: true, CollidedWith: blocker}
	}

	res := engine.MoveResult{Success: true}
	switch a.Type {
	case puzzle.TypePlusLife:
		res.BonusLife = true
	case puzzle.TypeBomb:
		res.BombExplosion = engine.BombBlast(a, ix.Remaining(), bombRadius)
	case puzzle.TypeElectric:
		res.ElectricTarget = engine.ElectricTarget(a, ix.Remaining(), grid)
	}
	return res
}

// CalculateStars converts a mistake count into a star rating.
func CalculateStars(mistakes int) int {
	switch {
	case mistakes == 0:
		return 3
	case mistakes == 1:
		return 2
	}
	return 1
}

// coins pays the difficulty tier's base, a small per-level bonus, and a
// star multiplier on top.
func (s *Simulator) coins(level *puzzle.Level, stars int) int {
	tier := config.TierOf(level.Meta.Difficulty)
	base := s.cfg.Rewards.BaseCoins(tier)
	if d := s.cfg.Rewards.LevelBonusDivisor; d > 0 {
		base += level.Number / d
	}

	factor := 1.0
	switch stars {
	case 3:
		factor = 1.5
	case 2:
		factor = 1.25
	}
	return int(float64(base) * factor)
}
