package spatial

import (
	"testing"

	"github.com/Lololomus/Arrows-sub000/internal/config"
	"github.com/Lololomus/Arrows-sub000/internal/engine"
	"github.com/Lololomus/Arrows-sub000/internal/generator"
	"github.com/Lololomus/Arrows-sub000/internal/puzzle"
)

func testConfig() config.Config {
	return config.Default()
}

func arrow(id string, dir puzzle.Direction, cells ...puzzle.Cell) *puzzle.Arrow {
	return &puzzle.Arrow{ID: id, Cells: cells, Direction: dir, Type: puzzle.TypeNormal}
}

func cell(x, y int) puzzle.Cell {
	return puzzle.Cell{X: x, Y: y}
}

func TestOccupancyQueries(t *testing.T) {
	grid := puzzle.Grid{Width: 5, Height: 5}
	a := arrow("a", puzzle.DirRight, cell(1, 1), cell(1, 2))
	b := arrow("b", puzzle.DirUp, cell(3, 3))
	ix := Build([]*puzzle.Arrow{a, b}, grid)

	if got := ix.ArrowAt(1, 2); got == nil || got.ID != "a" {
		t.Errorf("ArrowAt(1,2) = %v, want a", got)
	}
	if ix.ArrowAt(0, 0) != nil {
		t.Error("ArrowAt(0,0) should be nil on an empty cell")
	}
	if !ix.IsOccupied(3, 3) {
		t.Error("IsOccupied(3,3) should be true")
	}
	if ix.Len() != 2 {
		t.Errorf("Len() = %d, want 2", ix.Len())
	}
}

func TestRemoveClearsCells(t *testing.T) {
	grid := puzzle.Grid{Width: 5, Height: 5}
	a := arrow("a", puzzle.DirRight, cell(1, 1), cell(1, 2))
	b := arrow("b", puzzle.DirUp, cell(3, 3))
	ix := Build([]*puzzle.Arrow{a, b}, grid)

	ix.Remove("a")
	if ix.IsOccupied(1, 1) || ix.IsOccupied(1, 2) {
		t.Error("removed arrow's cells should be vacated")
	}
	if ix.Arrow("a") != nil {
		t.Error("removed arrow should no longer resolve")
	}
	if ix.Len() != 1 {
		t.Errorf("Len() = %d, want 1", ix.Len())
	}

	// Removing twice is a no-op.
	ix.Remove("a")
	if ix.Len() != 1 {
		t.Error("double remove should not disturb the index")
	}
}

func TestBlockedMirrorsEngine(t *testing.T) {
	cfg := testConfig()
	level := generator.New(cfg, nil).Generate(40, 7)
	ix := Build(level.Arrows, level.Grid)

	for _, a := range level.Arrows {
		naive := engine.IsBlocked(a, level.Arrows, level.Grid)
		indexed := ix.IsBlocked(a)
		if naive != indexed {
			t.Errorf("arrow %s: engine says blocked=%v, index says %v", a.ID, naive, indexed)
		}

		nb := engine.FindCollision(a, level.Arrows, level.Grid)
		ib := ix.FirstOnPath(a)
		switch {
		case nb == nil && ib != nil, nb != nil && ib == nil:
			t.Errorf("arrow %s: blocker mismatch (%v vs %v)", a.ID, nb, ib)
		case nb != nil && ib != nil && nb.ID != ib.ID:
			t.Errorf("arrow %s: nearest blocker %s vs %s", a.ID, nb.ID, ib.ID)
		}
	}
}

// TestNewlyFreedMatchesFullRescan removes every currently free arrow in
// turn and checks the incremental re-free scan against a full rebuild.
func TestNewlyFreedMatchesFullRescan(t *testing.T) {
	cfg := testConfig()
	level := generator.New(cfg, nil).Generate(60, 99)

	for _, victim := range level.Arrows {
		ix := Build(level.CloneArrows(), level.Grid)
		if ix.IsBlocked(ix.Arrow(victim.ID)) {
			continue // only free arrows can be removed in play
		}

		prevFree := make(map[string]bool)
		for _, id := range ix.FreeArrows() {
			prevFree[id] = true
		}

		removed := ix.Arrow(victim.ID)
		ix.Remove(victim.ID)
		freed := ix.NewlyFreed(removed, prevFree)

		// Full recompute over the shrunken set.
		wantFree := make(map[string]bool)
		for _, id := range ix.FreeArrows() {
			wantFree[id] = true
		}

		gotFree := make(map[string]bool)
		for id := range prevFree {
			if id != victim.ID {
				gotFree[id] = true
			}
		}
		for _, id := range freed {
			if gotFree[id] {
				t.Errorf("remove %s: %s reported newly freed but was already free", victim.ID, id)
			}
			gotFree[id] = true
		}

		if len(gotFree) != len(wantFree) {
			t.Fatalf("remove %s: incremental free set has %d arrows, full rescan %d",
				victim.ID, len(gotFree), len(wantFree))
		}
		for id := range wantFree {
			if !gotFree[id] {
				t.Errorf("remove %s: %s free after full rescan but missed incrementally", victim.ID, id)
			}
		}
	}
}

func TestPathCacheReturnsStablePaths(t *testing.T) {
	grid := puzzle.Grid{Width: 10, Height: 10}
	pc := NewPathCache(grid)
	a := arrow("a", puzzle.DirDown, cell(4, 4), cell(4, 3))

	first := pc.Get(a)
	second := pc.Get(a)
	if len(first) != len(second) {
		t.Fatal("cached path changed between calls")
	}
	if len(first) != 5 {
		t.Errorf("path from (4,4) down on a 10-high grid has 5 cells, got %d", len(first))
	}
}
