package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/flapper/internal/platform/window"
)

var flagWindowScale float64

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a desktop window",
	Long: `Start a game in a desktop window.

Controls:
  Any key / click / tap - Flap
  Esc                   - Quit

Examples:
  flapper window
  flapper window --scale 1.5`,
	Args: cobra.NoArgs,
	Run:  runWindow,
}

func init() {
	windowCmd.Flags().Float64Var(&flagWindowScale, "scale", 1, "Initial window size relative to the playfield")
}

func runWindow(_ *cobra.Command, _ []string) {
	cfg := loadConfig()
	logger := newLogger(os.Stderr)

	store := openStoreIfRecording()
	if store != nil {
		defer store.Close()
	}

	err := window.Run(window.Options{
		Game:    cfg,
		Runtime: runtimeConfig(),
		Store:   store,
		Logger:  logger,
		Scale:   flagWindowScale,
	})
	if err != nil {
		fatalf("%v", err)
	}
}
