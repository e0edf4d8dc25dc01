package generator

import (
	"fmt"

	"github.com/Lololomus/Arrows-sub000/internal/engine"
	"github.com/Lololomus/Arrows-sub000/internal/puzzle"
)

// Report is the outcome of a structural level check.
type Report struct {
	Valid    bool
	Errors   []string
	Coverage float64
}

// CheckLevel verifies the structural invariants of a level: minimum body
// size, valid directions, connected cell order, the board partition (no
// shared cells), full coverage, head/neck geometry and solvability. Used
// by `arrows generate --check` and the generator's own tests.
func CheckLevel(l *puzzle.Level) Report {
	var errs []string

	occupied := make(map[puzzle.Cell]string)
	for _, a := range l.Arrows {
		if len(a.Cells) < 2 {
			errs = append(errs, fmt.Sprintf("arrow %s has fewer than 2 cells", a.ID))
		}
		if !a.Direction.Valid() {
			errs = append(errs, fmt.Sprintf("arrow %s has invalid direction %q", a.ID, a.Direction))
		}
		if !a.Connected() {
			errs = append(errs, fmt.Sprintf("arrow %s cell order is not connected", a.ID))
		}
		for _, c := range a.Cells {
			if owner, taken := occupied[c]; taken {
				errs = append(errs, fmt.Sprintf("arrows %s and %s share cell (%d,%d)", owner, a.ID, c.X, c.Y))
			}
			occupied[c] = a.ID
			if !l.Grid.Contains(c.X, c.Y) {
				errs = append(errs, fmt.Sprintf("arrow %s cell (%d,%d) outside the board", a.ID, c.X, c.Y))
			}
		}
		// The second cell must sit directly behind the head, opposite the
		// exit direction, or the arrow would overlap its own path.
		if len(a.Cells) >= 2 {
			neckDir := puzzle.DirectionBetween(a.Head(), a.Cells[1])
			if neckDir != a.Direction.Opposite() {
				errs = append(errs, fmt.Sprintf("arrow %s neck points %s, want %s",
					a.ID, neckDir, a.Direction.Opposite()))
			}
		}
	}

	total := l.Grid.CellCount()
	coverage := 0.0
	if total > 0 {
		coverage = float64(len(occupied)) / float64(total) * 100
	}
	if len(occupied) != total {
		errs = append(errs, fmt.Sprintf("board not fully covered: %.1f%% (%d/%d)",
			coverage, len(occupied), total))
	}

	if engine.Solution(l.Arrows, l.Grid) == nil {
		errs = append(errs, "board is not solvable")
	}

	return Report{Valid: len(errs) == 0, Errors: errs, Coverage: coverage}
}
