package board

import "github.com/vovakirdan/orbfall/internal/core"

// DefaultOvershoot is the drop distance given to refill cells so they enter
// from above the visible board.
const DefaultOvershoot = 10

// compact lets surviving cells fall into vacated slots.
// Each column is scanned bottom-to-top, skipping the bottom row. A cell
// moves down by the number of empty slots beneath it and records that
// distance in Drop.
func compact(g *Grid) {
	for x := 0; x < g.w; x++ {
		for y := g.h - 2; y >= 0; y-- {
			cell := g.cells[y*g.w+x]
			if cell.IsEmpty() {
				continue
			}

			drop := 0
			for below := y + 1; below < g.h; below++ {
				if g.cells[below*g.w+x].IsEmpty() {
					drop++
				}
			}
			if drop == 0 {
				continue
			}

			cell.Group = 0
			cell.Drop = drop
			g.cells[(y+drop)*g.w+x] = cell
			g.cells[y*g.w+x] = EmptyCell()
		}
	}
}

// refill spawns a random cell in every empty slot, row-major from the top.
// Spawned cells get Drop = overshoot. Returns the filled coordinates.
func refill(g *Grid, r Rand, colors, overshoot int) []core.Coord {
	var spawned []core.Coord
	for i := range g.cells {
		if !g.cells[i].IsEmpty() {
			continue
		}
		cell := NewCell(randomColor(r, colors))
		cell.Drop = overshoot
		g.cells[i] = cell
		spawned = append(spawned, core.C(i%g.w, i/g.w))
	}
	return spawned
}

// collectDrops reports every pending drop in row-major order and resets it.
func collectDrops(g *Grid) []DropHint {
	var hints []DropHint
	for i := range g.cells {
		if g.cells[i].Drop <= 0 {
			continue
		}
		hints = append(hints, DropHint{X: i % g.w, Y: i / g.w, Distance: g.cells[i].Drop})
		g.cells[i].Drop = 0
	}
	return hints
}
