package replay

import (
	"testing"

	"github.com/Lololomus/Arrows-sub000/internal/config"
	"github.com/Lololomus/Arrows-sub000/internal/generator"
	"github.com/Lololomus/Arrows-sub000/internal/puzzle"
)

func testSimulator() *Simulator {
	return New(config.Default(), nil)
}

func smallLevel(arrows ...*puzzle.Arrow) *puzzle.Level {
	return &puzzle.Level{
		Number: 1,
		Seed:   1,
		Grid:   puzzle.Grid{Width: 4, Height: 4},
		Arrows: arrows,
	}
}

func arrow(id string, dir puzzle.Direction, cells ...puzzle.Cell) *puzzle.Arrow {
	return &puzzle.Arrow{ID: id, Cells: cells, Direction: dir, Type: puzzle.TypeNormal}
}

func cell(x, y int) puzzle.Cell {
	return puzzle.Cell{X: x, Y: y}
}

// Replaying the generator's own solve order must always validate with a
// perfect score, including on levels where bombs and electric arrows
// remove entries the solution still references.
func TestValidateAcceptsCanonicalSolution(t *testing.T) {
	sim := testSimulator()
	gen := generator.New(config.Default(), nil)

	for _, n := range []int{8, 30, 100} {
		level := gen.Generate(n, 0)
		if level.Solution == nil {
			t.Fatalf("level %d has no solution", n)
		}

		res := sim.Validate(level, Request{
			Level:       n,
			Seed:        level.Seed,
			Moves:       level.Solution,
			TimeSeconds: 60,
		})
		if !res.Valid {
			t.Errorf("level %d: canonical solution rejected: %s", n, res.Error)
			continue
		}
		if res.Mistakes != 0 || res.Stars != 3 {
			t.Errorf("level %d: perfect run scored %d mistakes, %d stars", n, res.Mistakes, res.Stars)
		}
		if res.CoinsEarned <= 0 {
			t.Errorf("level %d: winning run earned no coins", n)
		}
	}
}

func TestValidateRejectsTooFast(t *testing.T) {
	sim := testSimulator()
	level := smallLevel(arrow("a", puzzle.DirRight, cell(0, 0)))

	res := sim.Validate(level, Request{Level: 1, Seed: 1, Moves: []string{"a"}, TimeSeconds: 1})
	if res.Valid {
		t.Error("a one-second completion should trip the anticheat gate")
	}
	if len(res.Flags) == 0 {
		t.Error("too-fast rejection should carry a flag")
	}
}

func TestValidateFlagsSlowRun(t *testing.T) {
	sim := testSimulator()
	level := smallLevel(arrow("a", puzzle.DirRight, cell(0, 0)))

	res := sim.Validate(level, Request{Level: 1, Seed: 1, Moves: []string{"a"}, TimeSeconds: 4000})
	if !res.Valid {
		t.Fatalf("slow runs are flagged, not rejected: %s", res.Error)
	}
	if len(res.Flags) != 1 {
		t.Errorf("want one TOO_SLOW flag, got %v", res.Flags)
	}
}

func TestValidateRejectsSeedMismatch(t *testing.T) {
	sim := testSimulator()
	level := smallLevel(arrow("a", puzzle.DirRight, cell(0, 0)))

	res := sim.Validate(level, Request{Level: 1, Seed: 999, Moves: []string{"a"}, TimeSeconds: 60})
	if res.Valid || res.Error != "seed mismatch" {
		t.Errorf("seed mismatch should fail the run, got %+v", res)
	}
}

func TestValidateRejectsUnknownArrow(t *testing.T) {
	sim := testSimulator()
	level := smallLevel(arrow("a", puzzle.DirRight, cell(0, 0)))

	res := sim.Validate(level, Request{Level: 1, Seed: 1, Moves: []string{"ghost"}, TimeSeconds: 60})
	if res.Valid {
		t.Error("a move on a never-existing arrow must fail")
	}
}

func TestValidateCountsMistakes(t *testing.T) {
	sim := testSimulator()
	a := arrow("a", puzzle.DirRight, cell(0, 1))
	b := arrow("b", puzzle.DirUp, cell(2, 1))
	level := smallLevel(a, b)

	// One collision on a, then clear in dependency order.
	res := sim.Validate(level, Request{
		Level: 1, Seed: 1,
		Moves:       []string{"a", "b", "a"},
		TimeSeconds: 60,
	})
	if !res.Valid {
		t.Fatalf("run should still complete: %s", res.Error)
	}
	if res.Mistakes != 1 || res.Stars != 2 {
		t.Errorf("one collision should score 1 mistake and 2 stars, got %d/%d", res.Mistakes, res.Stars)
	}
}

func TestValidateFailsWhenLivesRunOut(t *testing.T) {
	sim := testSimulator()
	a := arrow("a", puzzle.DirRight, cell(0, 1))
	b := arrow("b", puzzle.DirUp, cell(2, 1))
	level := smallLevel(a, b)

	res := sim.Validate(level, Request{
		Level: 1, Seed: 1,
		Moves:       []string{"a", "a", "a", "b", "a"},
		TimeSeconds: 60,
	})
	if res.Valid {
		t.Error("three collisions exhaust the initial lives")
	}
	if res.Mistakes != 3 {
		t.Errorf("want 3 mistakes at the point of failure, got %d", res.Mistakes)
	}
}

func TestValidateFailsOnLeftoverArrows(t *testing.T) {
	sim := testSimulator()
	a := arrow("a", puzzle.DirRight, cell(0, 1))
	b := arrow("b", puzzle.DirUp, cell(2, 1))
	level := smallLevel(a, b)

	res := sim.Validate(level, Request{Level: 1, Seed: 1, Moves: []string{"b"}, TimeSeconds: 60})
	if res.Valid {
		t.Error("a run that strands arrows on the board must fail")
	}
}

func TestValidateDefrostAndFlyIsOneMove(t *testing.T) {
	sim := testSimulator()
	ice := arrow("ice", puzzle.DirRight, cell(0, 0))
	ice.Type = puzzle.TypeIce
	ice.Frozen = true
	level := smallLevel(ice)

	res := sim.Validate(level, Request{Level: 1, Seed: 1, Moves: []string{"ice"}, TimeSeconds: 60})
	if !res.Valid {
		t.Errorf("one click should defrost and fly a free ice arrow: %s", res.Error)
	}
	if res.Mistakes != 0 {
		t.Errorf("defrosting is not a mistake, got %d", res.Mistakes)
	}
}

func TestValidateDoesNotMutateLevel(t *testing.T) {
	sim := testSimulator()
	ice := arrow("ice", puzzle.DirRight, cell(0, 0))
	ice.Type = puzzle.TypeIce
	ice.Frozen = true
	level := smallLevel(ice)

	sim.Validate(level, Request{Level: 1, Seed: 1, Moves: []string{"ice"}, TimeSeconds: 60})
	if !level.Arrows[0].Frozen {
		t.Error("validation must work on a clone, not the caller's arrows")
	}
}

func TestCalculateStars(t *testing.T) {
	cases := []struct{ mistakes, want int }{
		{0, 3},
		{1, 2},
		{2, 1},
		{5, 1},
	}
	for _, tc := range cases {
		if got := CalculateStars(tc.mistakes); got != tc.want {
			t.Errorf("CalculateStars(%d) = %d, want %d", tc.mistakes, got, tc.want)
		}
	}
}

func TestCoinsScaleWithStars(t *testing.T) {
	sim := testSimulator()
	a := arrow("a", puzzle.DirRight, cell(0, 1))
	b := arrow("b", puzzle.DirUp, cell(2, 1))

	perfect := sim.Validate(smallLevel(a.Clone(), b.Clone()), Request{
		Level: 1, Seed: 1, Moves: []string{"b", "a"}, TimeSeconds: 60,
	})
	flawed := sim.Validate(smallLevel(a.Clone(), b.Clone()), Request{
		Level: 1, Seed: 1, Moves: []string{"a", "b", "a"}, TimeSeconds: 60,
	})
	if !perfect.Valid || !flawed.Valid {
		t.Fatalf("both runs should complete: %s / %s", perfect.Error, flawed.Error)
	}
	if perfect.CoinsEarned <= flawed.CoinsEarned {
		t.Errorf("3-star payout (%d) should beat 2-star payout (%d)",
			perfect.CoinsEarned, flawed.CoinsEarned)
	}
}
