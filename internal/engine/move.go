package engine

import "github.com/Lololomus/Arrows-sub000/internal/puzzle"

// DefaultBombRadius is the Manhattan blast radius of a bomb arrow.
const DefaultBombRadius = 1

// MoveResult is the tagged outcome of one click. Exactly one of
// Defrosted, Collision and Success is set. It is a transient value and
// is never stored.
type MoveResult struct {
	Defrosted bool `json:"defrosted,omitempty"`

	Collision    bool          `json:"collision,omitempty"`
	CollidedWith *puzzle.Arrow `json:"collided_with,omitempty"`

	Success        bool            `json:"success,omitempty"`
	BonusLife      bool            `json:"bonus_life,omitempty"`
	BombExplosion  []*puzzle.Arrow `json:"bomb_explosion,omitempty"`
	ElectricTarget *puzzle.Arrow   `json:"electric_target,omitempty"`
}

// ProcessMove applies one click on an arrow against the current arrow
// set. The clicked arrow must be part of the set; that is the caller's
// contract and is not re-checked here.
//
// A frozen ice arrow defrosts in place without a path check. A blocked
// arrow stays and reports its nearest blocker. A free arrow flies off,
// with type-specific side effects: plus_life grants a bonus life, bomb
// blasts every other arrow within DefaultBombRadius, electric zaps the
// nearest currently-free arrow. The caller removes the flown arrow and
// any side-effect casualties from its working set.
func ProcessMove(a *puzzle.Arrow, arrows []*puzzle.Arrow, grid puzzle.Grid) MoveResult {
	if a.Type == puzzle.TypeIce && a.Frozen {
		a.Frozen = false
		return MoveResult{Defrosted: true}
	}

	if blocker := FindCollision(a, arrows, grid); blocker != nil {
		return MoveResult{Collision: true, CollidedWith: blocker}
	}

	res := MoveResult{Success: true}
	switch a.Type {
	case puzzle.TypePlusLife:
		res.BonusLife = true
	case puzzle.TypeBomb:
		res.BombExplosion = BombBlast(a, arrows, DefaultBombRadius)
	case puzzle.TypeElectric:
		res.ElectricTarget = ElectricTarget(a, arrows, grid)
	}
	return res
}

// BombBlast returns every other arrow with at least one cell within the
// given Manhattan radius of any cell of the bomb arrow, in set order.
func BombBlast(bomb *puzzle.Arrow, arrows []*puzzle.Arrow, radius int) []*puzzle.Arrow {
	var hit []*puzzle.Arrow
	for _, other := range arrows {
		if other.ID == bomb.ID {
			continue
		}
		if withinRadius(bomb, other, radius) {
			hit = append(hit, other)
		}
	}
	return hit
}

func withinRadius(a, b *puzzle.Arrow, radius int) bool {
	for _, ca := range a.Cells {
		for _, cb := range b.Cells {
			if ca.ManhattanTo(cb) <= radius {
				return true
			}
		}
	}
	return false
}

// ElectricTarget picks the arrow a flying electric arrow zaps: among the
// remaining arrows — excluding other electric arrows and still-frozen ice
// arrows — the currently free one with the smallest head-to-head
// Manhattan distance. Ties go to the first candidate in set order.
// Freeness is evaluated on the board as it will be once the electric
// arrow has left.
func ElectricTarget(electric *puzzle.Arrow, arrows []*puzzle.Arrow, grid puzzle.Grid) *puzzle.Arrow {
	remaining := make([]*puzzle.Arrow, 0, len(arrows)-1)
	for _, a := range arrows {
		if a.ID != electric.ID {
			remaining = append(remaining, a)
		}
	}

	var best *puzzle.Arrow
	bestDist := 0
	for _, cand := range remaining {
		if cand.Type == puzzle.TypeElectric {
			continue
		}
		if cand.Type == puzzle.TypeIce && cand.Frozen {
			continue
		}
		if IsBlocked(cand, remaining, grid) {
			continue
		}
		d := electric.Head().ManhattanTo(cand.Head())
		if best == nil || d < bestDist {
			best = cand
			bestDist = d
		}
	}
	return best
}
