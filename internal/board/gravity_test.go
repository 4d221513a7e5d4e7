package board

import (
	"testing"

	"github.com/vovakirdan/orbfall/internal/core"
)

// seqRand replays a fixed sequence of values, wrapping at the end.
type seqRand struct {
	vals []int
	i    int
}

func (r *seqRand) Intn(n int) int {
	v := r.vals[r.i%len(r.vals)]
	r.i++
	return v % n
}

func TestCompactColumn(t *testing.T) {
	g := MustParseGrid(`
		S
		.
		H
		.
		B
	`)
	compact(g)

	if g.String() != ".\n.\nS\nH\nB" {
		t.Fatalf("after compact:\n%s", g)
	}
	if d := g.Get(0, 2).Drop; d != 2 {
		t.Errorf("sword drop = %d, want 2", d)
	}
	if d := g.Get(0, 3).Drop; d != 1 {
		t.Errorf("shield drop = %d, want 1", d)
	}
	if d := g.Get(0, 4).Drop; d != 0 {
		t.Errorf("bottom cell drop = %d, want 0", d)
	}
}

func TestCompactLeavesFullColumnsAlone(t *testing.T) {
	g := MustParseGrid(`
		SH.
		BE.
		XS.
	`)
	compact(g)

	if g.String() != "SH.\nBE.\nXS." {
		t.Errorf("full columns moved:\n%s", g)
	}
	if hints := collectDrops(g); len(hints) != 0 {
		t.Errorf("drops = %v, want none", hints)
	}
}

func TestRefillRowMajorFromTop(t *testing.T) {
	g := MustParseGrid(`
		..S
		.HB
		EXS
	`)
	r := &seqRand{vals: []int{1, 2, 3}}
	spawned := refill(g, r, 5, DefaultOvershoot)

	want := []core.Coord{core.C(0, 0), core.C(1, 0), core.C(0, 1)}
	if len(spawned) != len(want) {
		t.Fatalf("spawned = %v, want %v", spawned, want)
	}
	for i := range want {
		if spawned[i] != want[i] {
			t.Errorf("spawned[%d] = %v, want %v", i, spawned[i], want[i])
		}
	}
	if g.String() != "HBS\nEHB\nEXS" {
		t.Errorf("after refill:\n%s", g)
	}
	if !g.IsFull(5) {
		t.Error("grid should be full after refill")
	}
	for _, c := range spawned {
		if d := g.At(c).Drop; d != DefaultOvershoot {
			t.Errorf("spawned %v drop = %d, want %d", c, d, DefaultOvershoot)
		}
	}
}

func TestCollectDropsConsumesHints(t *testing.T) {
	g := MustParseGrid(`
		S.
		.H
		.B
	`)
	compact(g)
	refill(g, &seqRand{vals: []int{0}}, 5, 7)

	hints := collectDrops(g)
	want := []DropHint{
		{X: 0, Y: 0, Distance: 7},
		{X: 1, Y: 0, Distance: 7},
		{X: 0, Y: 1, Distance: 7},
		{X: 0, Y: 2, Distance: 2},
	}
	if len(hints) != len(want) {
		t.Fatalf("hints = %v, want %v", hints, want)
	}
	for i := range want {
		if hints[i] != want[i] {
			t.Errorf("hints[%d] = %+v, want %+v", i, hints[i], want[i])
		}
	}
	if again := collectDrops(g); len(again) != 0 {
		t.Errorf("second collect = %v, want none", again)
	}
}
