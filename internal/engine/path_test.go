package engine

import (
	"testing"

	"github.com/Lololomus/Arrows-sub000/internal/puzzle"
)

func arrow(id string, dir puzzle.Direction, cells ...puzzle.Cell) *puzzle.Arrow {
	return &puzzle.Arrow{ID: id, Cells: cells, Direction: dir, Type: puzzle.TypeNormal}
}

func cell(x, y int) puzzle.Cell {
	return puzzle.Cell{X: x, Y: y}
}

func TestExitPath(t *testing.T) {
	grid := puzzle.Grid{Width: 5, Height: 5}

	a := arrow("a", puzzle.DirRight, cell(1, 2), cell(0, 2))
	path := ExitPath(a, grid)
	want := []puzzle.Cell{cell(2, 2), cell(3, 2), cell(4, 2)}
	if len(path) != len(want) {
		t.Fatalf("ExitPath() = %v, want %v", path, want)
	}
	for i := range want {
		if path[i] != want[i] {
			t.Errorf("ExitPath()[%d] = %v, want %v", i, path[i], want[i])
		}
	}
}

func TestExitPathAtBoundary(t *testing.T) {
	grid := puzzle.Grid{Width: 5, Height: 5}

	a := arrow("a", puzzle.DirUp, cell(2, 0), cell(2, 1))
	if path := ExitPath(a, grid); len(path) != 0 {
		t.Errorf("head on the boundary should have an empty exit path, got %v", path)
	}
}

func TestExitPathStopsAtVoidCells(t *testing.T) {
	grid := puzzle.Grid{Width: 5, Height: 5, VoidCells: []puzzle.Cell{cell(3, 2)}}

	a := arrow("a", puzzle.DirRight, cell(1, 2), cell(0, 2))
	path := ExitPath(a, grid)
	if len(path) != 1 || path[0] != cell(2, 2) {
		t.Errorf("exit path should end before the void cell, got %v", path)
	}
}

func TestFindCollisionReturnsNearestBlocker(t *testing.T) {
	grid := puzzle.Grid{Width: 5, Height: 5}

	a := arrow("a", puzzle.DirRight, cell(0, 2))
	b := arrow("b", puzzle.DirUp, cell(2, 2))
	c := arrow("c", puzzle.DirUp, cell(4, 2))
	arrows := []*puzzle.Arrow{a, b, c}

	got := FindCollision(a, arrows, grid)
	if got == nil || got.ID != "b" {
		t.Errorf("FindCollision() = %v, want nearest blocker b", got)
	}
}

func TestIsBlocked(t *testing.T) {
	grid := puzzle.Grid{Width: 5, Height: 5}

	a := arrow("a", puzzle.DirRight, cell(0, 2))
	b := arrow("b", puzzle.DirDown, cell(3, 2))
	arrows := []*puzzle.Arrow{a, b}

	if !IsBlocked(a, arrows, grid) {
		t.Error("a should be blocked by b")
	}
	if IsBlocked(b, arrows, grid) {
		t.Error("b has a clear path down and should not be blocked")
	}
}

func TestFreeArrowsAndHint(t *testing.T) {
	grid := puzzle.Grid{Width: 4, Height: 4}

	a := arrow("a", puzzle.DirLeft, cell(1, 1), cell(2, 1))
	b := arrow("b", puzzle.DirRight, cell(3, 1))
	c := arrow("c", puzzle.DirRight, cell(0, 3))
	arrows := []*puzzle.Arrow{a, b, c}

	free := FreeArrows(arrows, grid)
	if len(free) != 3 {
		t.Fatalf("expected all 3 arrows free, got %d", len(free))
	}

	id, ok := Hint(arrows, grid)
	if !ok || id != "a" {
		t.Errorf("Hint() = %q, %v; want first free arrow a", id, ok)
	}
}

func TestHintStuckBoard(t *testing.T) {
	grid := puzzle.Grid{Width: 3, Height: 1}

	// Two arrows pointing at each other: a deadlock.
	a := arrow("a", puzzle.DirRight, cell(0, 0))
	b := arrow("b", puzzle.DirLeft, cell(2, 0))
	arrows := []*puzzle.Arrow{a, b}

	if _, ok := Hint(arrows, grid); ok {
		t.Error("deadlocked board should have no hint")
	}
}
