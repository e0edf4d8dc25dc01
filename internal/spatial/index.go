// Package spatial provides the per-session occupancy index over one
// active arrow set. It mirrors the engine's blocking queries but resolves
// them through a cell -> arrow map in O(path length) instead of
// O(arrows * path length), which matters once boards grow to hundreds of
// arrows on grids up to 250x250 cells.
//
// An Index is a disposable derived cache scoped to exactly one session's
// arrow set: build it on level load, tear it down on level change, and
// never share one instance between concurrent sessions. Queries are safe
// to interleave; Build/Remove calls require single-writer discipline.
package spatial

import (
	"github.com/Lololomus/Arrows-sub000/internal/engine"
	"github.com/Lololomus/Arrows-sub000/internal/puzzle"
)

// keyStride packs (x, y) into a single int key. Boards cap at 250 cells
// per side, so a stride of 256 never collides.
const keyStride = 256

func cellKey(x, y int) int {
	return y*keyStride + x
}

// PathCache memoizes exit paths for one level. An arrow's exit path
// depends only on its head, direction and grid, none of which change
// mid-level, so entries are only ever invalidated wholesale by building
// a fresh cache for the next level.
type PathCache struct {
	grid  puzzle.Grid
	paths map[string][]puzzle.Cell
}

// NewPathCache creates an empty cache bound to one grid.
func NewPathCache(grid puzzle.Grid) *PathCache {
	return &PathCache{grid: grid, paths: make(map[string][]puzzle.Cell)}
}

// Get returns the cached exit path of the arrow, computing it on first use.
func (pc *PathCache) Get(a *puzzle.Arrow) []puzzle.Cell {
	if path, ok := pc.paths[a.ID]; ok {
		return path
	}
	path := engine.ExitPath(a, pc.grid)
	pc.paths[a.ID] = path
	return path
}

// Index is the cell-occupancy index over one arrow set.
type Index struct {
	grid   puzzle.Grid
	cells  map[int]string
	arrows map[string]*puzzle.Arrow
	keys   map[string][]int
	order  []string
	paths  *PathCache
}

// Build constructs the index for an arrow set in O(total occupied cells).
// Called once per level load.
func Build(arrows []*puzzle.Arrow, grid puzzle.Grid) *Index {
	ix := &Index{
		grid:   grid,
		cells:  make(map[int]string),
		arrows: make(map[string]*puzzle.Arrow, len(arrows)),
		keys:   make(map[string][]int, len(arrows)),
		order:  make([]string, 0, len(arrows)),
		paths:  NewPathCache(grid),
	}
	for _, a := range arrows {
		ix.arrows[a.ID] = a
		ix.order = append(ix.order, a.ID)
		keys := make([]int, len(a.Cells))
		for i, c := range a.Cells {
			k := cellKey(c.X, c.Y)
			keys[i] = k
			ix.cells[k] = a.ID
		}
		ix.keys[a.ID] = keys
	}
	return ix
}

// Remove deletes one arrow from the index in O(its cell count).
func (ix *Index) Remove(id string) {
	keys, ok := ix.keys[id]
	if !ok {
		return
	}
	for _, k := range keys {
		if ix.cells[k] == id {
			delete(ix.cells, k)
		}
	}
	delete(ix.keys, id)
	delete(ix.arrows, id)
}

// RemoveBatch deletes several arrows, e.g. a bomb blast.
func (ix *Index) RemoveBatch(ids []string) {
	for _, id := range ids {
		ix.Remove(id)
	}
}

// ArrowAt returns the arrow occupying (x, y), or nil.
func (ix *Index) ArrowAt(x, y int) *puzzle.Arrow {
	id, ok := ix.cells[cellKey(x, y)]
	if !ok {
		return nil
	}
	return ix.arrows[id]
}

// IsOccupied reports whether any arrow covers (x, y).
func (ix *Index) IsOccupied(x, y int) bool {
	_, ok := ix.cells[cellKey(x, y)]
	return ok
}

// Arrow returns the indexed arrow with the given id, or nil once removed.
func (ix *Index) Arrow(id string) *puzzle.Arrow {
	return ix.arrows[id]
}

// Len returns the number of arrows still on the board.
func (ix *Index) Len() int {
	return len(ix.arrows)
}

// Remaining returns the arrows still on the board in insertion order.
func (ix *Index) Remaining() []*puzzle.Arrow {
	out := make([]*puzzle.Arrow, 0, len(ix.arrows))
	for _, id := range ix.order {
		if a, ok := ix.arrows[id]; ok {
			out = append(out, a)
		}
	}
	return out
}

// FirstOnPath returns the nearest arrow blocking the given arrow's exit
// path, resolved through the index in O(path length).
func (ix *Index) FirstOnPath(a *puzzle.Arrow) *puzzle.Arrow {
	for _, c := range ix.paths.Get(a) {
		if id, ok := ix.cells[cellKey(c.X, c.Y)]; ok && id != a.ID {
			return ix.arrows[id]
		}
	}
	return nil
}

// IsBlocked reports whether the arrow's exit path is occupied.
func (ix *Index) IsBlocked(a *puzzle.Arrow) bool {
	return ix.FirstOnPath(a) != nil
}

// FreeArrows returns the ids of all unblocked arrows in insertion order.
func (ix *Index) FreeArrows() []string {
	var free []string
	for _, id := range ix.order {
		a, ok := ix.arrows[id]
		if !ok {
			continue
		}
		if !ix.IsBlocked(a) {
			free = append(free, id)
		}
	}
	return free
}

// NewlyFreed finds the arrows unblocked by removing one arrow, without a
// full rescan. Only arrows that could have been blocked through the
// removed arrow's vacated cells need re-evaluation: from each vacated
// cell, walk backward against each direction until the first occupant;
// when that occupant points along the walked direction and was not
// previously free, it is a re-check candidate. Candidates are then
// re-tested with IsBlocked. Call after Remove(removed.ID); previouslyFree
// is the free-id set from before the removal.
func (ix *Index) NewlyFreed(removed *puzzle.Arrow, previouslyFree map[string]bool) []string {
	candidates := make(map[string]bool)
	var ordered []string

	for _, v := range removed.Cells {
		for _, dir := range puzzle.Directions {
			dx, dy := dir.Vector()
			for x, y := v.X-dx, v.Y-dy; ix.grid.Contains(x, y); x, y = x-dx, y-dy {
				id, ok := ix.cells[cellKey(x, y)]
				if !ok {
					continue
				}
				occ := ix.arrows[id]
				if occ.Direction == dir && !previouslyFree[id] && !candidates[id] {
					candidates[id] = true
					ordered = append(ordered, id)
				}
				break
			}
		}
	}

	var freed []string
	for _, id := range ordered {
		if !ix.IsBlocked(ix.arrows[id]) {
			freed = append(freed, id)
		}
	}
	return freed
}
