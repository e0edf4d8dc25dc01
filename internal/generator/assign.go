package generator

import "github.com/Lololomus/Arrows-sub000/internal/puzzle"

// candidate is a potential (head, direction) choice for one shape.
type candidate struct {
	head puzzle.Cell
	dir  puzzle.Direction
}

// headCandidates enumerates every (head, direction) pair for the shape
// where the cell immediately behind the head belongs to the shape — the
// head needs a body to pull — and the forward ray from the head to the
// board edge never re-enters the shape, so the arrow cannot block itself.
func headCandidates(shape []puzzle.Cell, grid puzzle.Grid) []candidate {
	in := make(map[puzzle.Cell]bool, len(shape))
	for _, c := range shape {
		in[c] = true
	}

	var cands []candidate
	for _, head := range shape {
		for _, dir := range puzzle.Directions {
			dx, dy := dir.Vector()
			behind := puzzle.Cell{X: head.X - dx, Y: head.Y - dy}
			if !in[behind] {
				continue
			}
			selfBlocking := false
			for x, y := head.X+dx, head.Y+dy; grid.Contains(x, y); x, y = x+dx, y+dy {
				if in[puzzle.Cell{X: x, Y: y}] {
					selfBlocking = true
					break
				}
			}
			if !selfBlocking {
				cands = append(cands, candidate{head: head, dir: dir})
			}
		}
	}
	return cands
}

// bfsOrder returns the shape's cells in breadth-first order from the
// head, expanding opposite the exit direction first so the second cell is
// always the one directly behind the head. Every cell in the returned
// order is adjacent to an earlier one.
func bfsOrder(shape []puzzle.Cell, head puzzle.Cell, dir puzzle.Direction) []puzzle.Cell {
	in := make(map[puzzle.Cell]bool, len(shape))
	for _, c := range shape {
		in[c] = true
	}

	expand := []puzzle.Direction{dir.Opposite(), dir.RotateCW(), dir.RotateCCW(), dir}

	order := []puzzle.Cell{head}
	visited := map[puzzle.Cell]bool{head: true}
	for i := 0; i < len(order); i++ {
		for _, d := range expand {
			dx, dy := d.Vector()
			n := puzzle.Cell{X: order[i].X + dx, Y: order[i].Y + dy}
			if in[n] && !visited[n] {
				visited[n] = true
				order = append(order, n)
			}
		}
	}
	return order
}

// arrowColors is the base palette, cycled by placement index.
var arrowColors = []string{
	"#FF6B6B", // red
	"#4ECDC4", // teal
	"#45B7D1", // blue
	"#96CEB4", // green
	"#FFEAA7", // yellow
	"#DDA0DD", // plum
	"#F39C12", // orange
	"#9B59B6", // purple
	"#1ABC9C", // turquoise
	"#E74C3C", // crimson
}

// specialColors override the palette so special arrows read at a glance.
var specialColors = map[puzzle.ArrowType]string{
	puzzle.TypeIce:       "#74B9FF",
	puzzle.TypePlusLife:  "#2ECC71",
	puzzle.TypeMinusLife: "#D63031",
	puzzle.TypeBomb:      "#2D3436",
	puzzle.TypeElectric:  "#F1C40F",
}

// assignSpecialTypes rolls each arrow against the level's special-type
// probabilities, first match wins, stopping once the special fraction of
// the board reaches cap. Ice arrows start frozen. Returns the number of
// special arrows assigned.
func assignSpecialTypes(arrows []*puzzle.Arrow, chances specialChanceTable, cap float64, rng *Rand) int {
	maxSpecial := int(cap * float64(len(arrows)))
	special := 0
	for _, a := range arrows {
		roll := rng.Float()
		if special >= maxSpecial {
			continue
		}
		t, ok := chances.pick(roll)
		if !ok {
			continue
		}
		a.Type = t
		a.Color = specialColors[t]
		if t == puzzle.TypeIce {
			a.Frozen = true
		}
		special++
	}
	return special
}

// specialChanceTable is the cumulative probability chain over special
// types, in unlock order.
type specialChanceTable []struct {
	t      puzzle.ArrowType
	chance float64
}

func (tab specialChanceTable) pick(roll float64) (puzzle.ArrowType, bool) {
	cumulative := 0.0
	for _, e := range tab {
		cumulative += e.chance
		if roll < cumulative {
			return e.t, true
		}
	}
	return "", false
}
