package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/orbfall/internal/script"
	"github.com/vovakirdan/orbfall/internal/session"
)

var replayCmd = &cobra.Command{
	Use:   "replay <script.yaml|dir>",
	Short: "Replay scripted sessions",
	Long: `Replays a session script, or every script in a directory, and checks
its expectations. A script fixes the seed and optionally the start board:

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
      drag: [[4, 4], [3, 4]]
  expect:
    swaps: 2

Letters: S sword, H shield, B boot, E estus, X obstacle.
Exits non-zero if any expectation fails.`,
	Args: cobra.ExactArgs(1),
	Run:  runReplay,
}

func runReplay(cmd *cobra.Command, args []string) {
	logger, err := newLogger()
	exitOnError(err)
	cfg, err := loadConfig()
	exitOnError(err)

	scripts, err := loadScripts(args[0])
	exitOnError(err)
	if len(scripts) == 0 {
		exitOnError(fmt.Errorf("no scripts found in %s", args[0]))
	}

	failed := 0
	for _, sc := range scripts {
		s, err := session.FromScript(cfg, sc, logger)
		exitOnError(err)

		res, err := s.Replay(sc)
		fmt.Printf("== %s (%s)\n", sc.ID, sc.Name)
		fmt.Printf("%d turns, %d swaps, %d cascades\n", res.Turns, res.Swaps, res.Cascades)
		fmt.Print(s.Summary())
		if err != nil {
			failed++
			fmt.Printf("FAIL: %v\n", err)
		}
		fmt.Println()
	}

	if failed > 0 {
		fmt.Fprintf(os.Stderr, "%d of %d scripts failed\n", failed, len(scripts))
		os.Exit(1)
	}
}

func loadScripts(path string) ([]script.Script, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	if info.IsDir() {
		return script.NewLoader(path).LoadAll()
	}
	sc, err := script.Load(path)
	if err != nil {
		return nil, err
	}
	return []script.Script{sc}, nil
}
