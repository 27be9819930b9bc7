package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/flapper/internal/platform/tui"
)

var (
	flagReplaysLimit  int
	flagReplaysBrowse bool
)

var replaysCmd = &cobra.Command{
	Use:   "replays",
	Short: "List or browse recorded runs",
	Long: `Display runs recorded with --record.

With --browse, opens an interactive list where a run can be watched
(Enter) or deleted (d).

Examples:
  flapper replays
  flapper replays --limit 5
  flapper replays --browse`,
	Args: cobra.NoArgs,
	Run:  runReplays,
}

func init() {
	replaysCmd.Flags().IntVar(&flagReplaysLimit, "limit", 20, "Maximum number of runs to list")
	replaysCmd.Flags().BoolVarP(&flagReplaysBrowse, "browse", "b", false, "Open the interactive replay browser")
}

func runReplays(_ *cobra.Command, _ []string) {
	store := openStore()
	defer store.Close()

	if flagReplaysBrowse {
		width, height := terminalSize()
		id, err := tui.RunReplays(store, width, height)
		if err != nil {
			fatalf("%v", err)
		}
		if id == 0 {
			return
		}
		watchRun(store, id)
		return
	}

	runs, err := store.RecentRuns(flagReplaysLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading runs: %v\n", err)
		os.Exit(1)
	}

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet. Play with --record to keep your runs!")
		return
	}

	fmt.Println("Recorded Runs")
	fmt.Println("=============")
	fmt.Println()
	fmt.Printf("%-6s  %-6s  %-8s  %-20s  %s\n", "Run", "Score", "Frames", "Seed", "Date")
	fmt.Println("------  ------  --------  --------------------  ----------------")

	for _, run := range runs {
		fmt.Printf("%-6d  %-6d  %-8d  %-20d  %s\n",
			run.ID,
			run.Score,
			run.Frames,
			run.Seed,
			run.CreatedAt.Format("2006-01-02 15:04"))
	}

	if total, err := store.CountRuns(); err == nil && total > len(runs) {
		fmt.Printf("\n%d of %d runs shown\n", len(runs), total)
	}
}
