// Package engine implements the rules of the arrows board: exit paths,
// blocking detection, per-click move processing and the dependency-graph
// solvability validator. Every function is a pure function of its
// arguments (ProcessMove only touches the clicked arrow's frozen flag),
// so concurrent sessions may call the engine freely on their own
// arrow-set snapshots.
package engine

import "github.com/Lololomus/Arrows-sub000/internal/puzzle"

// ExitPath returns the cells an arrow travels over when it flies off:
// starting at the cell adjacent to the head and stepping along the
// direction's unit vector until the board ends. Empty when the head
// already sits on the boundary in that direction.
func ExitPath(a *puzzle.Arrow, grid puzzle.Grid) []puzzle.Cell {
	dx, dy := a.Direction.Vector()
	head := a.Head()
	var path []puzzle.Cell
	for x, y := head.X+dx, head.Y+dy; grid.Contains(x, y); x, y = x+dx, y+dy {
		path = append(path, puzzle.Cell{X: x, Y: y})
	}
	return path
}

// cellOwners builds a cell -> occupying arrow map for one arrow set.
// The board partition invariant guarantees at most one owner per cell.
func cellOwners(arrows []*puzzle.Arrow) map[puzzle.Cell]*puzzle.Arrow {
	owners := make(map[puzzle.Cell]*puzzle.Arrow)
	for _, a := range arrows {
		for _, c := range a.Cells {
			owners[c] = a
		}
	}
	return owners
}

// FindCollision scans the exit path in travel order and returns the
// nearest arrow occupying a path cell, or nil when the path is clear.
func FindCollision(a *puzzle.Arrow, arrows []*puzzle.Arrow, grid puzzle.Grid) *puzzle.Arrow {
	owners := cellOwners(arrows)
	for _, c := range ExitPath(a, grid) {
		if owner, ok := owners[c]; ok && owner.ID != a.ID {
			return owner
		}
	}
	return nil
}

// IsBlocked reports whether any other arrow occupies the exit path.
func IsBlocked(a *puzzle.Arrow, arrows []*puzzle.Arrow, grid puzzle.Grid) bool {
	return FindCollision(a, arrows, grid) != nil
}

// FreeArrows returns every arrow whose exit path is clear, in the order
// of the input set.
func FreeArrows(arrows []*puzzle.Arrow, grid puzzle.Grid) []*puzzle.Arrow {
	owners := cellOwners(arrows)
	var free []*puzzle.Arrow
	for _, a := range arrows {
		blocked := false
		for _, c := range ExitPath(a, grid) {
			if owner, ok := owners[c]; ok && owner.ID != a.ID {
				blocked = true
				break
			}
		}
		if !blocked {
			free = append(free, a)
		}
	}
	return free
}

// Hint returns the id of one currently removable arrow — the first free
// arrow in set order, so the pick is deterministic. ok is false when the
// board is stuck.
func Hint(arrows []*puzzle.Arrow, grid puzzle.Grid) (id string, ok bool) {
	free := FreeArrows(arrows, grid)
	if len(free) == 0 {
		return "", false
	}
	return free[0].ID, true
}
