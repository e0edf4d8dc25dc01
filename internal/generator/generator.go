// Package generator produces solvable arrows levels deterministically
// from (levelNumber, seed). The replay validator reconstructs the exact
// same board server-side, so generation must be a pure function of its
// inputs: all randomness flows through the seeded Rand and nothing else.
package generator

import (
	"fmt"
	"math"

	"github.com/charmbracelet/log"

	"github.com/Lololomus/Arrows-sub000/internal/config"
	"github.com/Lololomus/Arrows-sub000/internal/engine"
	"github.com/Lololomus/Arrows-sub000/internal/puzzle"
)

// Generator builds levels under one game configuration.
type Generator struct {
	cfg config.Config
	log *log.Logger
}

// New creates a generator. A nil logger falls back to the package default.
func New(cfg config.Config, logger *log.Logger) *Generator {
	if logger == nil {
		logger = log.Default()
	}
	return &Generator{cfg: cfg, log: logger}
}

// Generate builds the level for (number, seed). A zero seed defaults to
// the level number, matching the client contract. Identical inputs always
// produce a bit-identical level, including the server-only solve order.
func (g *Generator) Generate(number int, seed int64) *puzzle.Level {
	if seed == 0 {
		seed = int64(number)
	}
	rng := NewRand(seed)

	width, height := config.GridSize(number)
	grid := puzzle.Grid{Width: width, Height: height}
	minSize := config.MinShapeSize(number)
	maxSize := config.MaxShapeSize(number)

	// A shape occasionally has no head candidate that keeps the board
	// solvable. Placing one anyway can produce an unsolvable level, so
	// the whole board attempt is rebuilt from the continuing rng stream;
	// the unchecked placement only happens once the retry budget runs out.
	var arrows []*puzzle.Arrow
	var uncovered int
	solved := false
	for attempt := 0; attempt < g.cfg.Generator.MaxBoardAttempts; attempt++ {
		arrows, uncovered, solved = g.buildBoard(grid, minSize, maxSize, rng, false)
		if solved {
			break
		}
	}
	if !solved {
		arrows, uncovered, _ = g.buildBoard(grid, minSize, maxSize, rng, true)
	}

	if uncovered > 0 {
		g.log.Warn("tiling left cells uncovered",
			"level", number, "seed", seed, "cells", uncovered)
	}

	for i, a := range arrows {
		a.Color = arrowColors[i%len(arrowColors)]
	}
	specialCount := assignSpecialTypes(arrows, g.specialTable(number), g.cfg.Generator.SpecialCap, rng)

	solution := engine.Solution(arrows, grid)
	if solution == nil {
		// Should be unreachable: every non-fallback placement was checked
		// incrementally. Reaching it means the fallback path produced an
		// unsolvable board.
		g.log.Error("generated level has no solution",
			"level", number, "seed", seed, "arrows", len(arrows))
	}

	depth := engine.DAGDepth(arrows, grid)

	return &puzzle.Level{
		Number:   number,
		Seed:     seed,
		Grid:     grid,
		Arrows:   arrows,
		Solution: solution,
		Meta: puzzle.Meta{
			Difficulty:        difficulty(grid, arrows, depth),
			ArrowCount:        len(arrows),
			SpecialArrowCount: specialCount,
			DAGDepth:          depth,
		},
	}
}

// buildBoard runs one full tiling + direction-assignment pass. When
// allowFallback is false the pass aborts (solved=false) as soon as a
// shape has no solvability-preserving candidate; when true the first
// candidate is placed unconditionally and logged.
func (g *Generator) buildBoard(grid puzzle.Grid, minSize, maxSize int, rng *Rand, allowFallback bool) (arrows []*puzzle.Arrow, uncovered int, solved bool) {
	tiled := tileGrid(grid, minSize, maxSize, g.cfg.Generator.SeedAttemptFactor, rng)
	uncovered = tiled.uncovered

	for _, shape := range tiled.shapes {
		cands := headCandidates(shape, grid)
		if len(cands) == 0 {
			g.log.Warn("shape has no head candidate, leaving cells uncovered",
				"cells", len(shape))
			uncovered += len(shape)
			continue
		}
		cands = shuffle(rng, cands)

		var placed *puzzle.Arrow
		for _, c := range cands {
			a := &puzzle.Arrow{
				ID:        fmt.Sprintf("a%d", len(arrows)),
				Cells:     bfsOrder(shape, c.head, c.dir),
				Direction: c.dir,
				Type:      puzzle.TypeNormal,
			}
			trial := make([]*puzzle.Arrow, len(arrows), len(arrows)+1)
			copy(trial, arrows)
			trial = append(trial, a)
			if engine.Solution(trial, grid) != nil {
				placed = a
				break
			}
		}
		if placed == nil {
			if !allowFallback {
				return nil, uncovered, false
			}
			c := cands[0]
			placed = &puzzle.Arrow{
				ID:        fmt.Sprintf("a%d", len(arrows)),
				Cells:     bfsOrder(shape, c.head, c.dir),
				Direction: c.dir,
				Type:      puzzle.TypeNormal,
			}
			g.log.Error("no solvable candidate for shape, placing unchecked",
				"arrow", placed.ID, "cells", len(shape))
		}
		arrows = append(arrows, placed)
	}
	return arrows, uncovered, true
}

func (g *Generator) specialTable(level int) specialChanceTable {
	c := config.SpecialChancesAt(level)
	return specialChanceTable{
		{puzzle.TypeIce, c.Ice},
		{puzzle.TypePlusLife, c.PlusLife},
		{puzzle.TypeMinusLife, c.MinusLife},
		{puzzle.TypeBomb, c.Bomb},
		{puzzle.TypeElectric, c.Electric},
	}
}

// difficulty scores a board from its area, arrow count, dependency depth,
// density and average arrow length, rounded to two decimals.
func difficulty(grid puzzle.Grid, arrows []*puzzle.Arrow, depth int) float64 {
	if len(arrows) == 0 {
		return 0
	}
	area := float64(grid.Width * grid.Height)
	count := float64(len(arrows))
	totalCells := 0
	for _, a := range arrows {
		totalCells += len(a.Cells)
	}
	density := count / area
	avgLen := float64(totalCells) / count

	score := 0.005*area + 0.15*count + 0.5*float64(depth) + 2*density + 0.15*avgLen
	return math.Round(score*100) / 100
}
