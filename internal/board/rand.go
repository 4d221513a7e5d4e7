package board

import "math/rand"

// Rand is the random source used to color spawned cells.
// *math/rand.Rand satisfies it; tests inject scripted sequences.
type Rand interface {
	Intn(n int) int
}

// NewRand returns a seeded random source.
func NewRand(seed int64) Rand {
	return rand.New(rand.NewSource(seed))
}

// randomColor picks one of the first n palette colors.
func randomColor(r Rand, n int) Color {
	return Color(r.Intn(n))
}
