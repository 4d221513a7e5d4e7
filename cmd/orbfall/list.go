package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/orbfall/internal/board"
	"github.com/vovakirdan/orbfall/internal/config"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List presets, detectors and colors",
	Long:  `Shows the board presets, match detectors and orb colors orbfall knows.`,
	Run:   runList,
}

func runList(cmd *cobra.Command, args []string) {
	fmt.Println("Presets:")
	for _, p := range config.Presets() {
		w, h, _ := p.Dimensions()
		fmt.Printf("  %-9s %dx%d\n", p, w, h)
	}

	fmt.Println()
	fmt.Println("Detectors:")
	for i, name := range board.DetectorNames() {
		suffix := ""
		if i == 0 {
			suffix = " (default)"
		}
		fmt.Printf("  %s%s\n", name, suffix)
	}

	fmt.Println()
	fmt.Println("Colors:")
	for _, c := range board.Palette(int(board.ColorCount)) {
		fmt.Printf("  %c  %s\n", c.Char(), c)
	}

	fmt.Println()
	fmt.Println("Run 'orbfall sim' to play random turns.")
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective board configuration",
	Long:  `Resolves --config and --preset the same way sim and replay do and prints the result as YAML.`,
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := loadConfig()
		exitOnError(err)
		data, err := cfg.Marshal()
		exitOnError(err)
		fmt.Print(string(data))
	},
}
