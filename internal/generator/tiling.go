package generator

import "github.com/Lololomus/Arrows-sub000/internal/puzzle"

// tileResult is one attempt at partitioning the board into shapes.
type tileResult struct {
	shapes    [][]puzzle.Cell
	uncovered int
}

// tileGrid partitions the playable cells into disjoint connected shapes
// sized within [minSize, maxSize]. Seed cells are taken corner first,
// then edge, then interior, which keeps degenerate slivers away from the
// boundary. Each shape grows by absorbing a random frontier cell until it
// reaches a randomly chosen target size or runs out of frontier. The
// whole pass is bounded by an attempt budget so it terminates on any
// board; cells left uncovered are reported, not fatal.
func tileGrid(grid puzzle.Grid, minSize, maxSize, attemptFactor int, rng *Rand) tileResult {
	remaining := make(map[puzzle.Cell]bool, grid.CellCount())
	for y := 0; y < grid.Height; y++ {
		for x := 0; x < grid.Width; x++ {
			if grid.Contains(x, y) {
				remaining[puzzle.Cell{X: x, Y: y}] = true
			}
		}
	}

	seeds := seedOrder(grid, rng)

	var shapes [][]puzzle.Cell
	var fragments [][]puzzle.Cell

	maxAttempts := grid.CellCount()*attemptFactor + 16
	attempts := 0
	for len(remaining) > 0 && attempts < maxAttempts {
		attempts++

		seed, ok := nextSeed(seeds, remaining)
		if !ok {
			break
		}

		target := rng.IntRange(minSize, maxSize)
		shape := growShape(seed, target, remaining, rng)

		if len(shape) >= minSize {
			shapes = append(shapes, shape)
		} else {
			fragments = append(fragments, shape)
		}
	}

	shapes = mergeFragments(shapes, fragments)

	return tileResult{shapes: shapes, uncovered: len(remaining)}
}

// seedOrder returns every playable cell, corners first, then edges, then
// interior, shuffled within each class.
func seedOrder(grid puzzle.Grid, rng *Rand) []puzzle.Cell {
	var corners, edges, interior []puzzle.Cell
	for y := 0; y < grid.Height; y++ {
		for x := 0; x < grid.Width; x++ {
			if !grid.Contains(x, y) {
				continue
			}
			c := puzzle.Cell{X: x, Y: y}
			onX := x == 0 || x == grid.Width-1
			onY := y == 0 || y == grid.Height-1
			switch {
			case onX && onY:
				corners = append(corners, c)
			case onX || onY:
				edges = append(edges, c)
			default:
				interior = append(interior, c)
			}
		}
	}

	order := shuffle(rng, corners)
	order = append(order, shuffle(rng, edges)...)
	order = append(order, shuffle(rng, interior)...)
	return order
}

func nextSeed(seeds []puzzle.Cell, remaining map[puzzle.Cell]bool) (puzzle.Cell, bool) {
	for _, c := range seeds {
		if remaining[c] {
			return c, true
		}
	}
	return puzzle.Cell{}, false
}

// growShape claims the seed and then repeatedly claims a random frontier
// cell until the target size is reached or the frontier is exhausted.
func growShape(seed puzzle.Cell, target int, remaining map[puzzle.Cell]bool, rng *Rand) []puzzle.Cell {
	shape := []puzzle.Cell{seed}
	delete(remaining, seed)

	for len(shape) < target {
		frontier := shapeFrontier(shape, remaining)
		if len(frontier) == 0 {
			break
		}
		next := choice(rng, frontier)
		shape = append(shape, next)
		delete(remaining, next)
	}
	return shape
}

// shapeFrontier lists the unclaimed cells orthogonally adjacent to the
// shape, in deterministic discovery order.
func shapeFrontier(shape []puzzle.Cell, remaining map[puzzle.Cell]bool) []puzzle.Cell {
	seen := make(map[puzzle.Cell]bool)
	var frontier []puzzle.Cell
	for _, c := range shape {
		for _, d := range puzzle.Directions {
			dx, dy := d.Vector()
			n := puzzle.Cell{X: c.X + dx, Y: c.Y + dy}
			if remaining[n] && !seen[n] {
				seen[n] = true
				frontier = append(frontier, n)
			}
		}
	}
	return frontier
}

// mergeFragments folds shapes that came out below minSize into the most
// recently completed shape they touch, so the union stays connected.
// Fragments may chain through each other before reaching a shape, so the
// pass repeats until every fragment has landed.
func mergeFragments(shapes, fragments [][]puzzle.Cell) [][]puzzle.Cell {
	for len(fragments) > 0 {
		merged := false
		rest := fragments[:0]
		for _, frag := range fragments {
			target := -1
			for i := len(shapes) - 1; i >= 0; i-- {
				if touches(shapes[i], frag) {
					target = i
					break
				}
			}
			if target >= 0 {
				shapes[target] = append(shapes[target], frag...)
				merged = true
			} else {
				rest = append(rest, frag)
			}
		}
		fragments = rest
		if !merged && len(fragments) > 0 {
			// Nothing touches a shape; promote one fragment so the
			// remainder has something to merge into.
			shapes = append(shapes, fragments[0])
			fragments = fragments[1:]
		}
	}
	return shapes
}

func touches(a, b []puzzle.Cell) bool {
	for _, ca := range a {
		for _, cb := range b {
			if ca.ManhattanTo(cb) == 1 {
				return true
			}
		}
	}
	return false
}
