package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/flapper/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start a game in the terminal.

Controls:
  Any key / click  - Flap (start, flap, and after a crash: back to start)
  Ctrl+S           - Save a text screenshot to ~/.flapper/screenshots
  Q / Esc / Ctrl+C - Quit

Examples:
  flapper play
  flapper play --seed 42
  flapper play --record
  flapper play --config ./my-flappy.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, _ []string) {
	cfg := loadConfig()
	logger, closeLog := fileLogger()
	defer closeLog()

	store := openStoreIfRecording()
	if store != nil {
		defer store.Close()
	}

	width, height := terminalSize()
	err := tui.Run(tui.Options{
		Game:    cfg,
		Runtime: runtimeConfig(),
		Store:   store,
		Logger:  logger,
		Width:   width,
		Height:  height,
	})
	if err != nil {
		fatalf("%v", err)
	}
}
