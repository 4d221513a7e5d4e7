package board

import "testing"

func TestResolveRemovesGroupsInIDOrder(t *testing.T) {
	g := MustParseGrid(`
		...HHH
		BBB...
		......
	`)
	d := UnionDetector{}.Detect(g)
	removed := resolve(g, d.MaxID)

	if len(removed) != 2 {
		t.Fatalf("removals = %d, want 2", len(removed))
	}
	if removed[0].group != 1 || removed[0].color != ColorShield {
		t.Errorf("first removal = %d/%v, want 1/shield", removed[0].group, removed[0].color)
	}
	if removed[1].group != 2 || removed[1].color != ColorBoot {
		t.Errorf("second removal = %d/%v, want 2/boot", removed[1].group, removed[1].color)
	}
	if n := g.EmptyCount(); n != 18 {
		t.Errorf("EmptyCount() = %d, want 18", n)
	}
}

func TestResolveSkipsEmptyIDs(t *testing.T) {
	g := MustParseGrid(`
		SSSSS.
		......
		......
	`)
	d := LegacyDetector{}.Detect(g)
	removed := resolve(g, d.MaxID)

	total := 0
	for _, r := range removed {
		total += len(r.cells)
	}
	if len(removed) != 1 {
		t.Errorf("removals = %d, want 1 for MaxID %d", len(removed), d.MaxID)
	}
	if total != d.Size() {
		t.Errorf("removed %d cells, detection had %d", total, d.Size())
	}
}

func TestResolveCellsRowMajor(t *testing.T) {
	g := MustParseGrid(`
		E.....
		EEE...
		E.....
	`)
	d := UnionDetector{}.Detect(g)
	removed := resolve(g, d.MaxID)

	if len(removed) != 1 {
		t.Fatalf("removals = %d, want 1", len(removed))
	}
	cells := removed[0].cells
	for i := 1; i < len(cells); i++ {
		prev, cur := cells[i-1], cells[i]
		if cur.Y < prev.Y || (cur.Y == prev.Y && cur.X <= prev.X) {
			t.Errorf("cells out of row-major order: %v", cells)
			break
		}
	}
}

func TestComboStepPitch(t *testing.T) {
	tests := []struct {
		step int
		want float64
	}{
		{1, 0.8},
		{2, 0.88},
		{5, 1.12},
	}

	for _, tc := range tests {
		got := ComboStep{Step: tc.step}.Pitch()
		if diff := got - tc.want; diff > 1e-9 || diff < -1e-9 {
			t.Errorf("Pitch() at step %d = %v, want %v", tc.step, got, tc.want)
		}
	}
}
