package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/flapper/internal/core"
	"github.com/vovakirdan/flapper/internal/game"
	"github.com/vovakirdan/flapper/internal/platform/raster"
	"github.com/vovakirdan/flapper/internal/platform/tui"
	"github.com/vovakirdan/flapper/internal/storage"
)

var (
	flagReplayHeadless bool
	flagReplayPNG      string
	flagReplayScale    float64
)

var replayCmd = &cobra.Command{
	Use:   "replay <id|file>",
	Short: "Watch or re-simulate a recorded run",
	Long: `Play back a run from the database (by ID) or from a replay YAML file.

By default the run is shown in the terminal at --fps speed. With
--headless it is simulated instantly and the result is printed, which
also checks that the stored score is reproduced.

Examples:
  flapper replay 3
  flapper replay ./best.yaml
  flapper replay 3 --headless
  flapper replay 3 --png last.png`,
	Args: cobra.ExactArgs(1),
	Run:  runReplay,
}

var exportCmd = &cobra.Command{
	Use:   "export <id>",
	Short: "Print a recorded run as YAML",
	Long: `Write a recorded run to stdout as a replay YAML file that
"flapper replay <file>" can read.

Examples:
  flapper export 3 > best.yaml`,
	Args: cobra.ExactArgs(1),
	Run:  runExport,
}

func init() {
	replayCmd.Flags().BoolVar(&flagReplayHeadless, "headless", false, "Simulate without drawing and print the result")
	replayCmd.Flags().StringVar(&flagReplayPNG, "png", "", "Save the last frame to this PNG path")
	replayCmd.Flags().Float64Var(&flagReplayScale, "scale", 1, "PNG size relative to the playfield")
}

func runReplay(_ *cobra.Command, args []string) {
	r := loadReplay(args[0])

	switch {
	case flagReplayPNG != "":
		surf, err := raster.New(r.Config.Playfield, flagReplayScale)
		if err != nil {
			fatalf("creating surface: %v", err)
		}
		defer surf.Close()

		g := game.Simulate(r, surf)
		if err := surf.SavePNG(expandHome(flagReplayPNG)); err != nil {
			fatalf("saving image: %v", err)
		}
		fmt.Printf("Saved %s (frame %d, score %d)\n", flagReplayPNG, g.Frames(), g.Score())

	case flagReplayHeadless:
		g := game.Simulate(r, core.Discard)
		fmt.Printf("Frames:   %d\n", g.Frames())
		fmt.Printf("Inputs:   %d\n", len(r.Inputs))
		fmt.Printf("Score:    %d\n", g.Score())
		fmt.Printf("Mode:     %s\n", g.Mode())
		if g.Score() != r.Score {
			fatalf("replay diverged: recorded score %d, simulated %d", r.Score, g.Score())
		}

	default:
		logger, closeLog := fileLogger()
		defer closeLog()
		width, height := terminalSize()
		err := tui.Run(tui.Options{
			Game:    r.Config,
			Runtime: runtimeConfig(),
			Logger:  logger,
			Replay:  &r,
			Width:   width,
			Height:  height,
		})
		if err != nil {
			fatalf("%v", err)
		}
	}
}

func runExport(_ *cobra.Command, args []string) {
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		fatalf("invalid run ID %q", args[0])
	}

	store := openStore()
	defer store.Close()

	run, err := store.RunByID(id)
	if err != nil {
		fatalf("%v", err)
	}
	os.Stdout.Write(run.Replay)
}

// loadReplay reads a replay from the database when arg is a run ID and
// from a file otherwise.
func loadReplay(arg string) game.Replay {
	var data []byte
	if id, err := strconv.ParseInt(arg, 10, 64); err == nil {
		store := openStore()
		defer store.Close()
		run, err := store.RunByID(id)
		if err != nil {
			fatalf("%v", err)
		}
		data = run.Replay
	} else {
		data, err = os.ReadFile(expandHome(arg))
		if err != nil {
			fatalf("reading replay: %v", err)
		}
	}

	r, err := game.DecodeReplay(data)
	if err != nil {
		fatalf("%v", err)
	}
	return r
}

// watchRun plays back a stored run in the terminal.
func watchRun(store *storage.Store, id int64) {
	run, err := store.RunByID(id)
	if err != nil {
		fatalf("%v", err)
	}
	r, err := game.DecodeReplay(run.Replay)
	if err != nil {
		fatalf("%v", err)
	}

	logger, closeLog := fileLogger()
	defer closeLog()
	width, height := terminalSize()
	err = tui.Run(tui.Options{
		Game:    r.Config,
		Runtime: runtimeConfig(),
		Logger:  logger,
		Replay:  &r,
		Width:   width,
		Height:  height,
	})
	if err != nil {
		fatalf("%v", err)
	}
}
