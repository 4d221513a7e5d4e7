package session

import (
	"bytes"
	"math/rand"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/orbfall/internal/board"
	"github.com/vovakirdan/orbfall/internal/config"
	"github.com/vovakirdan/orbfall/internal/core"
	"github.com/vovakirdan/orbfall/internal/script"
)

const swordRowScript = `
id: sword-row
seed: 7
board: |
  SSSHBE
  HBEXSH
  BEXSHB
  EXSHBE
  XSHBEX
turns:
  - pick: [5, 4]
expect:
  swaps: 0
`

func TestReplayScript(t *testing.T) {
	sc, err := script.Parse([]byte(swordRowScript))
	require.NoError(t, err)

	s, err := FromScript(config.DefaultBoardConfig(), sc, nil)
	require.NoError(t, err)
	require.Equal(t, int64(7), s.Seed)

	res, err := s.Replay(sc)
	require.NoError(t, err)
	require.Equal(t, 1, res.Turns)
	require.Equal(t, 0, res.Swaps)
	require.GreaterOrEqual(t, res.Cascades, 1)

	// Refill colors depend on the seed, so only the first step is fixed.
	require.NotEmpty(t, s.Recorder.Combos)
	first := s.Recorder.Combos[0]
	require.Equal(t, board.ColorSword, first.Color)
	require.Equal(t, 1, first.Step)
	require.Equal(t, 3, first.Size)
	require.GreaterOrEqual(t, s.Recorder.Charges()["sword"], 1)
	require.NotContains(t, s.Recorder.Charges(), "x")
	require.Equal(t, res.Board, s.Engine.String())
	require.False(t, s.Engine.IsLocked())
}

func TestReplayDetectsMismatch(t *testing.T) {
	sc, err := script.Parse([]byte(swordRowScript))
	require.NoError(t, err)
	none := 0
	sc.Expect.Combos = &none

	s, err := FromScript(config.DefaultBoardConfig(), sc, nil)
	require.NoError(t, err)
	_, err = s.Replay(sc)
	require.Error(t, err)
	require.Contains(t, err.Error(), "combo steps, want 0")
}

func TestReplayChecksFinalBoard(t *testing.T) {
	sc, err := script.Parse([]byte(swordRowScript))
	require.NoError(t, err)
	sc.Expect.Board = "SSSSSS\nSSSSSS\nSSSSSS\nSSSSSS\nSSSSSS"

	s, err := FromScript(config.DefaultBoardConfig(), sc, nil)
	require.NoError(t, err)
	_, err = s.Replay(sc)
	require.Error(t, err)
	require.Contains(t, err.Error(), "final board")
}

func TestFromScriptOverrides(t *testing.T) {
	sc := script.Script{
		ID:       "overrides",
		Seed:     5,
		Colors:   4,
		Detector: board.DetectorLegacy,
	}
	s, err := FromScript(config.DefaultBoardConfig(), sc, nil)
	require.NoError(t, err)

	require.Equal(t, 4, s.Config.Board.Colors)
	require.Equal(t, board.DetectorLegacy, s.Engine.DetectorName())
	require.True(t, s.Engine.Board().IsFull(4))

	sc.Detector = "greedy"
	_, err = FromScript(config.DefaultBoardConfig(), sc, nil)
	require.Error(t, err)
}

func TestScriptBoardSetsDimensions(t *testing.T) {
	sc, err := script.Parse([]byte("id: tiny\nboard: |\n  SHB\n  HBS\n  BSH\n"))
	require.NoError(t, err)

	s, err := FromScript(config.DefaultBoardConfig(), sc, nil)
	require.NoError(t, err)
	w, h := s.Engine.Dimensions()
	require.Equal(t, 3, w)
	require.Equal(t, 3, h)
	require.Equal(t, 3, s.Config.Board.Width)
}

func TestSameSeedSameSession(t *testing.T) {
	play := func() *Session {
		s, err := New(config.DefaultBoardConfig(), core.RuntimeConfig{Seed: 2024}, nil)
		require.NoError(t, err)
		rng := rand.New(rand.NewSource(9))
		for i := 0; i < 30; i++ {
			s.Play(RandomTurn(rng, 6, 5, 4))
		}
		return s
	}

	a, b := play(), play()
	require.Equal(t, a.Engine.String(), b.Engine.String())
	if diff := cmp.Diff(a.Recorder.Combos, b.Recorder.Combos); diff != "" {
		t.Errorf("combo steps differ (-first +second):\n%s", diff)
	}
	require.Equal(t, 30, a.Turns())
	require.NotEqual(t, a.ID, b.ID)
}

func TestRandomTurnWalksNeighbors(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 200; i++ {
		turn := RandomTurn(rng, 5, 4, 6)
		require.True(t, turn.Pick.Within(5, 4), "pick %v outside board", turn.Pick)
		require.LessOrEqual(t, len(turn.Drag), 6)

		prev := turn.Pick
		for _, c := range turn.Drag {
			require.True(t, c.Within(5, 4), "drag %v outside board", c)
			require.True(t, prev.Adjacent(c), "drag %v -> %v skips cells", prev, c)
			prev = c
		}
	}
}

func TestRecorderTallies(t *testing.T) {
	r := NewRecorder()
	r.OnComboStep(board.ComboStep{Step: 1, Cascade: 1, Color: board.ColorShield, Size: 3})
	r.OnComboStep(board.ComboStep{Step: 2, Cascade: 1, Color: board.ColorX, Size: 4})
	r.OnComboStep(board.ComboStep{Step: 3, Cascade: 2, Color: board.ColorShield, Size: 5})
	r.OnSwap(board.SwapHint{})
	r.OnDrop(board.DropHint{})

	require.Equal(t, 2, r.Tally(board.ColorShield))
	require.Equal(t, 1, r.Tally(board.ColorX))
	require.Equal(t, 0, r.Tally(board.NoColor))
	require.Equal(t, map[string]int{"sword": 0, "shield": 2, "boot": 0, "estus": 0}, r.Charges())
	require.Equal(t, 3, r.BestStep())
	require.Equal(t, 2, r.BestCascade())
	require.Equal(t, 12, r.Removed())
	require.Equal(t, 1, r.Swaps)
	require.Equal(t, 1, r.Drops)
}

func TestSessionLogsWithID(t *testing.T) {
	var buf bytes.Buffer
	logger := log.New(&buf)

	s, err := New(config.DefaultBoardConfig(), core.RuntimeConfig{Seed: 1}, logger)
	require.NoError(t, err)

	out := buf.String()
	require.Contains(t, out, "session started")
	require.Contains(t, out, s.ID)
}

func TestSummary(t *testing.T) {
	sc, err := script.Parse([]byte(swordRowScript))
	require.NoError(t, err)
	s, err := FromScript(config.DefaultBoardConfig(), sc, nil)
	require.NoError(t, err)
	_, err = s.Replay(sc)
	require.NoError(t, err)

	sum := s.Summary()
	require.True(t, strings.HasPrefix(sum, s.Engine.String()))
	require.Contains(t, sum, "turns: 1")
	require.Contains(t, sum, "S sword")
}

func TestBundledScripts(t *testing.T) {
	scripts, err := script.NewLoader("../../scripts").LoadAll()
	require.NoError(t, err)
	require.NotEmpty(t, scripts)

	for _, sc := range scripts {
		t.Run(sc.ID, func(t *testing.T) {
			s, err := FromScript(config.DefaultBoardConfig(), sc, nil)
			require.NoError(t, err)
			res, err := s.Replay(sc)
			require.NoError(t, err)
			require.Equal(t, len(sc.Turns), res.Turns)
			require.True(t, s.Engine.Board().IsFull(s.Config.Board.Colors))
		})
	}
}
