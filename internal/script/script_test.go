package script

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/orbfall/internal/core"
)

func TestParse(t *testing.T) {
	s, err := Parse([]byte(`
id: demo
seed: 42
colors: 4
detector: legacy
turns:
  - pick: [1, 2]
    drag: [[2, 2], [3, 3]]
  - pick: [0, 0]
expect:
  combos: 2
  board: |
    SHBE
`))
	require.NoError(t, err)

	require.Equal(t, "demo", s.ID)
	require.Equal(t, "demo", s.Name, "name defaults to id")
	require.Equal(t, int64(42), s.Seed)
	require.Equal(t, 4, s.Colors)
	require.Equal(t, "legacy", s.Detector)
	require.Len(t, s.Turns, 2)
	require.Equal(t, core.C(1, 2), s.Turns[0].Pick)
	require.Equal(t, []core.Coord{core.C(2, 2), core.C(3, 3)}, s.Turns[0].Drag)
	require.Empty(t, s.Turns[1].Drag)

	require.NotNil(t, s.Expect)
	require.NotNil(t, s.Expect.Combos)
	require.Equal(t, 2, *s.Expect.Combos)
	require.Nil(t, s.Expect.Swaps)
	require.Equal(t, "SHBE", s.Expect.Board)

	g, err := s.Grid()
	require.NoError(t, err)
	require.Nil(t, g, "no board means random fill")
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
		msg  string
	}{
		{"no id", "seed: 1\n", "no id"},
		{"short pick", "id: a\nturns:\n  - pick: [1]\n", "turn 1 pick"},
		{"long drag", "id: a\nturns:\n  - pick: [0, 0]\n    drag: [[1, 2, 3]]\n", "turn 1 drag 1"},
		{"bad board", "id: a\nboard: SQS\n", "unknown cell"},
		{"not yaml", "id: [\n", "yaml unmarshal"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse([]byte(tc.data))
			require.Error(t, err)
			require.Contains(t, err.Error(), tc.msg)
		})
	}
}

func TestTurnInputs(t *testing.T) {
	turn := Turn{Pick: core.C(1, 1), Drag: []core.Coord{core.C(2, 1)}}
	require.Equal(t, []core.Input{core.Pick(1, 1), core.Drag(2, 1), core.Release()}, turn.Inputs())
}

func TestLoaderLoadAll(t *testing.T) {
	scripts, err := NewLoader("testdata").LoadAll()
	require.NoError(t, err)

	// bad_coord.yaml fails to parse and notes.txt is not a script.
	require.Len(t, scripts, 2)
	require.Equal(t, "drag-walk", scripts[0].ID)
	require.Equal(t, "sword-row", scripts[1].ID)
	require.Equal(t, filepath.Join("testdata", "sword_row.yaml"), scripts[1].FilePath)

	s, err := NewLoader("testdata").LoadByID("sword-row")
	require.NoError(t, err)
	require.Len(t, s.Turns, 1)

	_, err = NewLoader("testdata").LoadByID("missing")
	require.Error(t, err)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join("testdata", "missing.yaml"))
	require.Error(t, err)
	require.Contains(t, err.Error(), "reading file")
}

// fakeEngine records gestures and accepts everything while idle.
type fakeEngine struct {
	w, h    int
	inputs  []core.Input
	held    bool
	settles int
}

func (f *fakeEngine) PickUp(x, y int) bool {
	f.inputs = append(f.inputs, core.Pick(x, y))
	f.held = true
	return true
}

func (f *fakeEngine) DragTo(x, y int) bool {
	f.inputs = append(f.inputs, core.Drag(x, y))
	return f.held
}

func (f *fakeEngine) Release() bool {
	f.inputs = append(f.inputs, core.Release())
	f.held = false
	return true
}

func (f *fakeEngine) Settle() int {
	f.settles++
	return 1
}

func (f *fakeEngine) Dimensions() (int, int) { return f.w, f.h }
func (f *fakeEngine) String() string         { return "board" }

func TestRunClampsAndSettlesEveryTurn(t *testing.T) {
	s, err := Load(filepath.Join("testdata", "drag_walk.yaml"))
	require.NoError(t, err)
	s.Turns = append(s.Turns, Turn{Pick: core.C(-3, 7)})

	e := &fakeEngine{w: 6, h: 5}
	res := Run(e, s)

	require.Equal(t, []core.Input{
		core.Pick(0, 0), core.Drag(0, 1), core.Drag(0, 4), core.Release(),
		core.Pick(0, 4), core.Release(),
	}, e.inputs)
	require.Equal(t, 2, e.settles)
	require.Equal(t, Result{Turns: 2, Swaps: 2, Cascades: 2, Board: "board"}, res)
}
