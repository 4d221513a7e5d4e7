package board

import (
	"fmt"
	"sort"

	"github.com/vovakirdan/orbfall/internal/core"
)

// MinRun is the shortest straight line of equal colors that matches.
const MinRun = 3

// Group is one set of cells removed together.
// Cells are listed in row-major order.
type Group struct {
	ID    int
	Color Color
	Cells []core.Coord
}

// Size returns the number of cells in the group.
func (g Group) Size() int {
	return len(g.Cells)
}

// Detection is the result of one detection pass.
// Groups are ordered by ascending ID. MaxID is the highest id allocated,
// which may exceed len(Groups) when a strategy allocates ids it never keeps.
type Detection struct {
	Groups []Group
	MaxID  int
}

// Empty returns true if the pass found no matches.
func (d Detection) Empty() bool {
	return len(d.Groups) == 0
}

// Size returns the total number of matched cells.
func (d Detection) Size() int {
	n := 0
	for _, g := range d.Groups {
		n += len(g.Cells)
	}
	return n
}

// Detector finds match groups and writes their ids into Cell.Group.
// Every cell's group is cleared before the scan.
type Detector interface {
	Name() string
	Detect(g *Grid) Detection
}

const (
	DetectorUnion  = "union"
	DetectorLegacy = "legacy"
)

// DetectorNames lists the selectable strategies, default first.
func DetectorNames() []string {
	return []string{DetectorUnion, DetectorLegacy}
}

// DetectorByName returns the strategy registered under name.
// An empty name selects the default.
func DetectorByName(name string) (Detector, error) {
	switch name {
	case "", DetectorUnion:
		return UnionDetector{}, nil
	case DetectorLegacy:
		return LegacyDetector{}, nil
	default:
		return nil, fmt.Errorf("board: unknown detector %q", name)
	}
}

// UnionDetector groups matched cells into connected components.
// A cell is matched when it lies on a horizontal or vertical run of at least
// MinRun equal colors. Matched cells of the same color that touch
// orthogonally belong to one group, so L, T and cross shapes resolve as a
// single combo step. Ids follow the row-major position of each group's
// first cell.
type UnionDetector struct{}

func (UnionDetector) Name() string { return DetectorUnion }

func (UnionDetector) Detect(g *Grid) Detection {
	g.clearGroups()
	matched := markRuns(g)

	uf := newUnionFind(len(g.cells))
	for y := 0; y < g.h; y++ {
		for x := 0; x < g.w; x++ {
			i := y*g.w + x
			if !matched[i] {
				continue
			}
			color := g.cells[i].Color
			if x+1 < g.w && matched[i+1] && g.cells[i+1].Color == color {
				uf.union(i, i+1)
			}
			if y+1 < g.h && matched[i+g.w] && g.cells[i+g.w].Color == color {
				uf.union(i, i+g.w)
			}
		}
	}

	var d Detection
	ids := make(map[int]int)
	for i, ok := range matched {
		if !ok {
			continue
		}
		root := uf.find(i)
		id, seen := ids[root]
		if !seen {
			d.MaxID++
			id = d.MaxID
			ids[root] = id
			d.Groups = append(d.Groups, Group{ID: id, Color: g.cells[i].Color})
		}
		g.cells[i].Group = id
		grp := &d.Groups[id-1]
		grp.Cells = append(grp.Cells, core.C(i%g.w, i/g.w))
	}
	return d
}

// markRuns flags every cell on a straight run of at least MinRun.
func markRuns(g *Grid) []bool {
	matched := make([]bool, len(g.cells))

	for y := 0; y < g.h; y++ {
		start := 0
		for x := 1; x <= g.w; x++ {
			if x < g.w && sameColor(g.cells[y*g.w+x], g.cells[y*g.w+start]) {
				continue
			}
			if x-start >= MinRun {
				for i := start; i < x; i++ {
					matched[y*g.w+i] = true
				}
			}
			start = x
		}
	}

	for x := 0; x < g.w; x++ {
		start := 0
		for y := 1; y <= g.h; y++ {
			if y < g.h && sameColor(g.cells[y*g.w+x], g.cells[start*g.w+x]) {
				continue
			}
			if y-start >= MinRun {
				for i := start; i < y; i++ {
					matched[i*g.w+x] = true
				}
			}
			start = y
		}
	}
	return matched
}

func sameColor(a, b Cell) bool {
	return !a.IsEmpty() && a.Color == b.Color
}

// collectGroups rebuilds the group list from Cell.Group marks for ids
// 1..maxID. Ids with no cells are omitted.
func collectGroups(g *Grid, maxID int) []Group {
	byID := make(map[int]*Group)
	for i, cell := range g.cells {
		if cell.Group <= 0 || cell.Group > maxID {
			continue
		}
		grp, ok := byID[cell.Group]
		if !ok {
			grp = &Group{ID: cell.Group}
			byID[cell.Group] = grp
		}
		grp.Color = cell.Color
		grp.Cells = append(grp.Cells, core.C(i%g.w, i/g.w))
	}

	groups := make([]Group, 0, len(byID))
	for _, grp := range byID {
		groups = append(groups, *grp)
	}
	sort.Slice(groups, func(i, j int) bool { return groups[i].ID < groups[j].ID })
	return groups
}

type unionFind struct {
	parent []int
	rank   []int
}

func newUnionFind(n int) *unionFind {
	uf := &unionFind{parent: make([]int, n), rank: make([]int, n)}
	for i := range uf.parent {
		uf.parent[i] = i
	}
	return uf
}

func (uf *unionFind) find(i int) int {
	for uf.parent[i] != i {
		uf.parent[i] = uf.parent[uf.parent[i]]
		i = uf.parent[i]
	}
	return i
}

func (uf *unionFind) union(a, b int) {
	ra, rb := uf.find(a), uf.find(b)
	if ra == rb {
		return
	}
	switch {
	case uf.rank[ra] < uf.rank[rb]:
		uf.parent[ra] = rb
	case uf.rank[ra] > uf.rank[rb]:
		uf.parent[rb] = ra
	default:
		uf.parent[rb] = ra
		uf.rank[ra]++
	}
}
