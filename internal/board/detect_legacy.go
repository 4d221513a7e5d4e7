package board

// LegacyDetector reproduces the original per-cell scan.
//
// Every cell scans right, left, down and up for equal colors. A scan of at
// least MinRun cells marks the whole run. If a neighbor on any run already
// scanned from the same origin carries a group id, the run adopts the
// smallest such id; otherwise it takes the origin's id, allocated on the
// origin's first run. The origin cell's own mark is never consulted, and
// an id adopted once sticks for the remaining directions of that origin.
//
// The result is order dependent: crossing runs merge only when the junction
// is reached before the second arm is marked, and ids can be allocated and
// then overwritten, leaving gaps below MaxID. Use UnionDetector unless exact
// combo counts of the old board matter.
type LegacyDetector struct{}

func (LegacyDetector) Name() string { return DetectorLegacy }

// legacyDirs is the scan order per origin: +x, -x, +y, -y.
var legacyDirs = [4]struct{ dx, dy int }{
	{1, 0},
	{-1, 0},
	{0, 1},
	{0, -1},
}

func (LegacyDetector) Detect(g *Grid) Detection {
	g.clearGroups()

	matchCount, oldMatchCount := 0, 0
	for y := 0; y < g.h; y++ {
		for x := 0; x < g.w; x++ {
			color := g.cells[y*g.w+x].Color
			adopted := 0

			for _, dir := range legacyDirs {
				if !legacyCanScan(g, x, y, dir.dx, dir.dy) || color == NoColor {
					continue
				}

				z := 1
				for {
					nx, ny := x+z*dir.dx, y+z*dir.dy
					if !g.InBounds(nx, ny) {
						break
					}
					n := g.cells[ny*g.w+nx]
					if n.Color != color {
						break
					}
					if n.Group > 0 && (adopted == 0 || adopted > n.Group) {
						adopted = n.Group
					}
					z++
				}
				if z < MinRun {
					continue
				}

				if matchCount == oldMatchCount {
					matchCount++
				}
				id := matchCount
				if adopted > 0 {
					id = adopted
				}
				for i := 0; i < z; i++ {
					g.cells[(y+i*dir.dy)*g.w+x+i*dir.dx].Group = id
				}
			}
			oldMatchCount = matchCount
		}
	}

	return Detection{
		Groups: collectGroups(g, matchCount),
		MaxID:  matchCount,
	}
}

// legacyCanScan applies the original edge guards: a direction is scanned
// only when at least two cells remain that way.
func legacyCanScan(g *Grid, x, y, dx, dy int) bool {
	switch {
	case dx > 0:
		return x < g.w-2
	case dx < 0:
		return x > 1
	case dy > 0:
		return y < g.h-2
	default:
		return y > 1
	}
}
