package session

import (
	"math/rand"

	"github.com/vovakirdan/orbfall/internal/core"
	"github.com/vovakirdan/orbfall/internal/script"
)

// RandomTurn generates a pickup on a random cell followed by a drag walk of
// up to dragLen steps. Each step moves to a random neighbor inside a w x h
// board, diagonals included.
func RandomTurn(rng *rand.Rand, w, h, dragLen int) script.Turn {
	at := core.C(rng.Intn(w), rng.Intn(h))
	turn := script.Turn{Pick: at}

	for i := 0; i < dragLen; i++ {
		next := at.Add(rng.Intn(3)-1, rng.Intn(3)-1)
		if next == at || !next.Within(w, h) {
			continue
		}
		turn.Drag = append(turn.Drag, next)
		at = next
	}
	return turn
}
