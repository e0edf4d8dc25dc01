package generator

// Rand is the linear congruential PRNG shared with the game client.
// Identical seeds must always yield identical levels, because the replay
// validator regenerates a level server-side from (level, seed) instead of
// trusting client-sent board state — so the sequence below is part of the
// wire contract and must never change.
type Rand struct {
	state int64
}

// NewRand creates a deterministic generator from a seed.
func NewRand(seed int64) *Rand {
	return &Rand{state: seed}
}

// Float returns the next value in [0, 1).
func (r *Rand) Float() float64 {
	r.state = (r.state*1103515245 + 12345) & 0x7FFFFFFF
	return float64(r.state) / float64(0x7FFFFFFF)
}

// IntRange returns an integer in [min, max] inclusive.
func (r *Rand) IntRange(min, max int) int {
	if min > max {
		return min
	}
	return min + int(r.Float()*float64(max-min+1))
}

// shuffle returns a Fisher-Yates shuffled copy of the slice.
func shuffle[T any](r *Rand, in []T) []T {
	out := make([]T, len(in))
	copy(out, in)
	for i := len(out) - 1; i > 0; i-- {
		j := r.IntRange(0, i)
		out[i], out[j] = out[j], out[i]
	}
	return out
}

// choice returns a random element. The slice must be non-empty.
func choice[T any](r *Rand, s []T) T {
	return s[r.IntRange(0, len(s)-1)]
}
