package config

// Level-scaled progression curves. These mirror the live game's balance
// tables: board side length, arrow size range and target dependency depth
// all grow with the level number, capping at a 250x250 board.

// GridSize returns the board dimensions for a level.
func GridSize(level int) (width, height int) {
	switch {
	case level <= 10:
		return 4, 4
	case level <= 20:
		return 5, 5
	case level <= 35:
		return 6, 6
	case level <= 50:
		return 7, 7
	case level <= 70:
		return 8, 8
	case level <= 100:
		return 10, 10
	case level <= 150:
		return 12, 12
	case level <= 200:
		return 14, 14
	case level <= 300:
		return 17, 17
	case level <= 500:
		return 22, 22
	case level <= 750:
		return 30, 30
	case level <= 1000:
		return 40, 40
	}
	extra := (level - 1000) / 50
	side := 40 + extra*5
	if side > 250 {
		side = 250
	}
	return side, side
}

// MinShapeSize is the smallest arrow body the generator emits. A head
// alone cannot express a direction, so two cells is the floor at every
// level.
func MinShapeSize(level int) int {
	return 2
}

// MaxShapeSize returns the largest arrow body for a level.
func MaxShapeSize(level int) int {
	switch {
	case level <= 10:
		return 4
	case level <= 30:
		return 6
	case level <= 50:
		return 12
	case level <= 100:
		return 20
	}
	size := 20 + (level-100)/50
	if size > 30 {
		size = 30
	}
	return size
}

// TargetDepth returns the desired dependency-graph depth range for a
// level. It is a difficulty signal only; the generator never forces it.
func TargetDepth(level int) (min, max int) {
	switch {
	case level <= 5:
		return 1, 2
	case level <= 15:
		return 2, 3
	case level <= 30:
		return 2, 4
	case level <= 50:
		return 3, 5
	case level <= 100:
		return 4, 6
	case level <= 200:
		return 5, 8
	case level <= 500:
		return 6, 10
	}
	return 8, 15
}

// SpecialChances holds the per-arrow assignment probability of each
// special type at a given level. Types unlock at fixed level thresholds
// and ramp slowly toward a cap.
type SpecialChances struct {
	Ice       float64
	PlusLife  float64
	MinusLife float64
	Bomb      float64
	Electric  float64
}

// SpecialChancesAt returns the special-type probabilities for a level.
func SpecialChancesAt(level int) SpecialChances {
	var c SpecialChances
	if level >= 25 {
		c.Ice = capped(0.05+float64(level-25)*0.001, 0.20)
	}
	if level >= 15 {
		c.PlusLife = capped(0.03+float64(level-15)*0.001, 0.10)
	}
	if level >= 40 {
		c.MinusLife = capped(0.03+float64(level-40)*0.001, 0.12)
	}
	if level >= 60 {
		c.Bomb = capped(0.02+float64(level-60)*0.001, 0.08)
	}
	if level >= 90 {
		c.Electric = capped(0.01+float64(level-90)*0.0005, 0.06)
	}
	return c
}

func capped(v, cap float64) float64 {
	if v > cap {
		return cap
	}
	return v
}
