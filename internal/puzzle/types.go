// Package puzzle defines the core data model of the arrows board game:
// cells, grids, arrows and generated levels. It contains no game logic and
// no external dependencies so that the engine, generator and replay
// packages can all share it freely.
package puzzle

// Cell is an integer board coordinate. Cells have no lifecycle of their
// own; they are always owned by a Grid or an Arrow.
type Cell struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// ManhattanTo returns the Manhattan distance between two cells.
func (c Cell) ManhattanTo(o Cell) int {
	return abs(c.X-o.X) + abs(c.Y-o.Y)
}

// Direction is one of the four cardinal exit directions of an arrow.
type Direction string

const (
	DirUp    Direction = "up"
	DirDown  Direction = "down"
	DirLeft  Direction = "left"
	DirRight Direction = "right"
)

// Directions lists all cardinal directions in a stable order.
var Directions = []Direction{DirUp, DirDown, DirLeft, DirRight}

// Vector returns the unit step of the direction.
func (d Direction) Vector() (dx, dy int) {
	switch d {
	case DirUp:
		return 0, -1
	case DirDown:
		return 0, 1
	case DirLeft:
		return -1, 0
	case DirRight:
		return 1, 0
	}
	return 0, 0
}

// Opposite returns the reversed direction.
func (d Direction) Opposite() Direction {
	switch d {
	case DirUp:
		return DirDown
	case DirDown:
		return DirUp
	case DirLeft:
		return DirRight
	case DirRight:
		return DirLeft
	}
	return d
}

// RotateCW returns the direction rotated 90 degrees clockwise.
func (d Direction) RotateCW() Direction {
	switch d {
	case DirUp:
		return DirRight
	case DirRight:
		return DirDown
	case DirDown:
		return DirLeft
	case DirLeft:
		return DirUp
	}
	return d
}

// RotateCCW returns the direction rotated 90 degrees counter-clockwise.
func (d Direction) RotateCCW() Direction {
	switch d {
	case DirUp:
		return DirLeft
	case DirLeft:
		return DirDown
	case DirDown:
		return DirRight
	case DirRight:
		return DirUp
	}
	return d
}

// Valid reports whether d is one of the four cardinal directions.
func (d Direction) Valid() bool {
	switch d {
	case DirUp, DirDown, DirLeft, DirRight:
		return true
	}
	return false
}

// DirectionBetween returns the dominant cardinal direction from one cell
// to an adjacent cell, or "" for identical cells.
func DirectionBetween(from, to Cell) Direction {
	dx := to.X - from.X
	dy := to.Y - from.Y
	switch {
	case dx > 0:
		return DirRight
	case dx < 0:
		return DirLeft
	case dy > 0:
		return DirDown
	case dy < 0:
		return DirUp
	}
	return ""
}

// ArrowType tags the gameplay behavior of an arrow.
type ArrowType string

const (
	TypeNormal    ArrowType = "normal"
	TypeIce       ArrowType = "ice"
	TypePlusLife  ArrowType = "plus_life"
	TypeMinusLife ArrowType = "minus_life"
	TypeBomb      ArrowType = "bomb"
	TypeElectric  ArrowType = "electric"
)

// NormalizeType maps legacy payload type names onto the current set and
// falls back to normal for anything unknown.
func NormalizeType(s string) ArrowType {
	switch ArrowType(s) {
	case TypeNormal, TypeIce, TypePlusLife, TypeMinusLife, TypeBomb, TypeElectric:
		return ArrowType(s)
	}
	switch s {
	case "life":
		return TypePlusLife
	case "danger":
		return TypeMinusLife
	}
	return TypeNormal
}

// Special reports whether the type carries a gameplay effect beyond a
// plain arrow.
func (t ArrowType) Special() bool {
	return t != TypeNormal && t != ""
}

// Arrow is a directional piece occupying a connected group of cells.
// Cells[0] is the head; Direction is the axis of egress from the head,
// not necessarily the geometry of the body.
type Arrow struct {
	ID        string    `json:"id"`
	Cells     []Cell    `json:"cells"`
	Direction Direction `json:"direction"`
	Type      ArrowType `json:"type"`
	Color     string    `json:"color"`
	Frozen    bool      `json:"frozen,omitempty"`
}

// Head returns the leading cell of the arrow.
func (a *Arrow) Head() Cell {
	return a.Cells[0]
}

// Occupies reports whether the arrow covers the given cell.
func (a *Arrow) Occupies(c Cell) bool {
	for _, own := range a.Cells {
		if own == c {
			return true
		}
	}
	return false
}

// Connected reports whether the cell order is a valid traversal from the
// head: every cell after the first is orthogonally adjacent to at least
// one earlier cell, so each prefix of the body is connected.
func (a *Arrow) Connected() bool {
	for i := 1; i < len(a.Cells); i++ {
		adjacent := false
		for j := 0; j < i; j++ {
			if a.Cells[i].ManhattanTo(a.Cells[j]) == 1 {
				adjacent = true
				break
			}
		}
		if !adjacent {
			return false
		}
	}
	return true
}

// Clone returns a deep copy of the arrow.
func (a *Arrow) Clone() *Arrow {
	cp := *a
	cp.Cells = make([]Cell, len(a.Cells))
	copy(cp.Cells, a.Cells)
	return &cp
}

// Grid describes the board. Boards are rectangular by default; VoidCells
// optionally punches holes for non-rectangular shapes. The engine treats
// both uniformly through Contains.
type Grid struct {
	Width     int    `json:"width"`
	Height    int    `json:"height"`
	VoidCells []Cell `json:"void_cells,omitempty"`
}

// InBounds reports whether (x, y) lies inside the rectangle.
func (g Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.Width && y >= 0 && y < g.Height
}

// Contains reports whether (x, y) is a playable cell of the board.
func (g Grid) Contains(x, y int) bool {
	if !g.InBounds(x, y) {
		return false
	}
	for _, v := range g.VoidCells {
		if v.X == x && v.Y == y {
			return false
		}
	}
	return true
}

// CellCount returns the number of playable cells.
func (g Grid) CellCount() int {
	return g.Width*g.Height - len(g.VoidCells)
}

// Meta carries the difficulty metadata of a generated level.
type Meta struct {
	Difficulty        float64 `json:"difficulty"`
	ArrowCount        int     `json:"arrow_count"`
	SpecialArrowCount int     `json:"special_arrow_count"`
	DAGDepth          int     `json:"dag_depth"`
}

// Level is a generated board. It is created once by the generator and is
// immutable afterwards: gameplay operates on a derived copy of the arrow
// set (CloneArrows), never on the level record itself. Solution is the
// server-held answer key and is never serialized to clients.
type Level struct {
	Number   int      `json:"level"`
	Seed     int64    `json:"seed"`
	Grid     Grid     `json:"grid"`
	Arrows   []*Arrow `json:"arrows"`
	Solution []string `json:"-"`
	Meta     Meta     `json:"meta"`
}

// CloneArrows returns a deep copy of the arrow set for a gameplay or
// validation session.
func (l *Level) CloneArrows() []*Arrow {
	out := make([]*Arrow, len(l.Arrows))
	for i, a := range l.Arrows {
		out[i] = a.Clone()
	}
	return out
}

// ArrowByID returns the arrow with the given id, or nil.
func (l *Level) ArrowByID(id string) *Arrow {
	for _, a := range l.Arrows {
		if a.ID == id {
			return a
		}
	}
	return nil
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
