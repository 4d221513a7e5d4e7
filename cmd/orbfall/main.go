// orbfall is a match-3 board engine driven from the command line.
//
// Usage:
//
//	orbfall sim                 - Play seeded random turns and print the result
//	orbfall replay <script>     - Replay a scripted session (file or directory)
//	orbfall list                - List presets, detectors and colors
//	orbfall config              - Print the effective board configuration
//
// Global flags:
//
//	--config <path>     - Board config YAML (default search: ~/.orbfall/configs, ./configs)
//	--preset <name>     - Board size preset: small, standard, large
//	--seed <value>      - RNG seed for reproducible boards
//	--log-level <lvl>   - debug, info, warn, error
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/orbfall/internal/config"
)

var (
	// Global flags
	flagConfig   string
	flagPreset   string
	flagSeed     int64
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "orbfall",
	Short: "orbfall - match-3 board engine",
	Long: `orbfall runs the match-3 board engine without a renderer: pick up an
orb, drag it across the board, release, and watch the cascade resolve.

Available commands:
  sim      - Play seeded random turns
  replay   - Replay scripted sessions
  list     - Show presets, detectors and colors
  config   - Print the effective configuration

Examples:
  orbfall sim --seed 42 --turns 50
  orbfall sim --preset large --log-level debug
  orbfall replay ./scripts/sword_row.yaml
  orbfall config --preset small`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom board config YAML")
	rootCmd.PersistentFlags().StringVar(&flagPreset, "preset", "", "Board size preset: small, standard, large")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "warn", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(replayCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(configCmd)
}

// newLogger builds the stderr logger from --log-level.
// Output switches to JSON when stderr is not a terminal.
func newLogger() (*log.Logger, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}

	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "orbfall",
		Level:           level,
	})
	if !term.IsTerminal(int(os.Stderr.Fd())) {
		logger.SetFormatter(log.JSONFormatter)
	}
	return logger, nil
}

// loadConfig resolves the board config from --config and --preset.
func loadConfig() (config.BoardConfig, error) {
	cfg, err := config.LoadBoard(flagConfig)
	if err != nil {
		return cfg, err
	}
	if flagPreset != "" {
		preset, err := config.ParsePreset(flagPreset)
		if err != nil {
			return cfg, err
		}
		if err := config.ApplyPreset(&cfg, preset); err != nil {
			return cfg, err
		}
	}
	return cfg, cfg.Validate()
}

// exitOnError prints err and exits.
func exitOnError(err error) {
	if err == nil {
		return
	}
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}
