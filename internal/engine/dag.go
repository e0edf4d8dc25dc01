package engine

import "github.com/Lololomus/Arrows-sub000/internal/puzzle"

// Graph is the blocker graph over one arrow set: Edges maps an arrow to
// the arrows currently blocking its exit path, Reverse is the inverse
// mapping. It is rebuilt from scratch for each arrow set and never
// persisted with a level.
type Graph struct {
	Edges   map[string][]string
	Reverse map[string][]string
	order   []string
}

// BuildGraph computes the blocker graph for the arrow set.
func BuildGraph(arrows []*puzzle.Arrow, grid puzzle.Grid) *Graph {
	g := &Graph{
		Edges:   make(map[string][]string, len(arrows)),
		Reverse: make(map[string][]string, len(arrows)),
		order:   make([]string, 0, len(arrows)),
	}
	owners := cellOwners(arrows)
	for _, a := range arrows {
		g.order = append(g.order, a.ID)
		seen := make(map[string]bool)
		var blockers []string
		for _, c := range ExitPath(a, grid) {
			owner, ok := owners[c]
			if !ok || owner.ID == a.ID || seen[owner.ID] {
				continue
			}
			seen[owner.ID] = true
			blockers = append(blockers, owner.ID)
		}
		g.Edges[a.ID] = blockers
		for _, b := range blockers {
			g.Reverse[b] = append(g.Reverse[b], a.ID)
		}
	}
	return g
}

// kahn runs Kahn's algorithm over the graph and returns the dequeue
// order. The order covers every arrow iff the graph is acyclic.
func (g *Graph) kahn() []string {
	inDegree := make(map[string]int, len(g.order))
	for _, id := range g.order {
		inDegree[id] = len(g.Edges[id])
	}

	queue := make([]string, 0, len(g.order))
	for _, id := range g.order {
		if inDegree[id] == 0 {
			queue = append(queue, id)
		}
	}

	processed := make([]string, 0, len(g.order))
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		processed = append(processed, id)
		for _, dep := range g.Reverse[id] {
			inDegree[dep]--
			if inDegree[dep] == 0 {
				queue = append(queue, dep)
			}
		}
	}
	return processed
}

// Acyclic reports whether the blocker graph has no cycle, i.e. the board
// is solvable.
func (g *Graph) Acyclic() bool {
	return len(g.kahn()) == len(g.order)
}

// SolveOrder returns a valid clearing sequence, or nil when a cycle makes
// the board unsolvable. A zero-arrow graph yields an empty non-nil order.
func (g *Graph) SolveOrder() []string {
	processed := g.kahn()
	if len(processed) != len(g.order) {
		return nil
	}
	if processed == nil {
		processed = []string{}
	}
	return processed
}

// Depth returns the number of BFS layers of the graph: arrows with no
// blockers form layer 0, arrows freed by removing them layer 1, and so
// on. Used only as a difficulty signal.
func (g *Graph) Depth() int {
	inDegree := make(map[string]int, len(g.order))
	for _, id := range g.order {
		inDegree[id] = len(g.Edges[id])
	}

	layer := make([]string, 0)
	for _, id := range g.order {
		if inDegree[id] == 0 {
			layer = append(layer, id)
		}
	}

	depth := 0
	for len(layer) > 0 {
		depth++
		var next []string
		for _, id := range layer {
			for _, dep := range g.Reverse[id] {
				inDegree[dep]--
				if inDegree[dep] == 0 {
					next = append(next, dep)
				}
			}
		}
		layer = next
	}
	return depth
}

// IsValidDAG reports whether the arrow set's blocker graph is acyclic.
// It always agrees with Solution: IsValidDAG == (Solution != nil).
func IsValidDAG(arrows []*puzzle.Arrow, grid puzzle.Grid) bool {
	return BuildGraph(arrows, grid).Acyclic()
}

// Solution returns a valid clearing order for the arrow set, or nil when
// the board is unsolvable.
func Solution(arrows []*puzzle.Arrow, grid puzzle.Grid) []string {
	return BuildGraph(arrows, grid).SolveOrder()
}

// DAGDepth returns the BFS layer count of the arrow set's blocker graph.
func DAGDepth(arrows []*puzzle.Arrow, grid puzzle.Grid) int {
	return BuildGraph(arrows, grid).Depth()
}
