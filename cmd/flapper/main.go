// flapper is a Flappy Bird-style arcade game for the terminal, the desktop
// and SSH.
//
// Usage:
//
//	flapper play             - Play in the terminal
//	flapper window           - Play in a desktop window
//	flapper serve            - Start SSH server for remote play
//	flapper snapshot         - Render a frame to PNG
//	flapper replays          - List or browse recorded runs
//	flapper replay <id|file> - Watch or re-simulate a recorded run
//	flapper export <id>      - Print a recorded run as YAML
//	flapper config           - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>        - Set tick rate (default: 60)
//	--seed <value>      - Set RNG seed for reproducible gameplay
//	--config <path>     - Load game config from a YAML file
//	--db <path>         - Set database path (default: ~/.flapper/runs.db)
//	--log-level <level> - debug, info, warn or error
//	--record            - Store runs for later replay
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/flapper/internal/config"
	"github.com/vovakirdan/flapper/internal/core"
	"github.com/vovakirdan/flapper/internal/storage"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagConfig   string
	flagDBPath   string
	flagLogLevel string
	flagRecord   bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "flapper",
	Short: "Flapper - a Flappy Bird-style arcade game",
	Long: `Flapper is a one-button arcade game: keep the bird in the air and fly
through the gaps between the pipes. Every pipe cleared scores a point.

Available commands:
  play      - Play in the terminal
  window    - Play in a desktop window
  serve     - Start SSH server for remote play
  snapshot  - Render a frame to PNG
  replays   - List or browse recorded runs
  replay    - Watch or re-simulate a recorded run
  export    - Print a recorded run as YAML
  config    - Print the effective configuration

Examples:
  flapper play
  flapper play --record --seed 42
  flapper window
  flapper serve --ssh :2222
  flapper replay 3 --png run3.png`,
	SilenceUsage: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.flapper/runs.db", "Path to runs database")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().BoolVar(&flagRecord, "record", false, "Store runs in the database for later replay")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(snapshotCmd)
	rootCmd.AddCommand(replaysCmd)
	rootCmd.AddCommand(replayCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(configCmd)
}

// fatalf prints an error and exits.
func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}

// newLogger creates a logger writing to w at the --log-level level.
func newLogger(w io.Writer) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "flapper",
	})
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		logger.Warn("unknown log level, using info", "level", flagLogLevel)
		level = log.InfoLevel
	}
	logger.SetLevel(level)
	return logger
}

// fileLogger returns a logger for full-screen commands, which cannot write
// to the terminal they draw on. Logs go to ~/.flapper/flapper.log.
func fileLogger() (*log.Logger, func()) {
	path := expandHome("~/.flapper/flapper.log")
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return newLogger(io.Discard), func() {}
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return newLogger(io.Discard), func() {}
	}
	return newLogger(f), func() { f.Close() }
}

// expandHome replaces a leading ~ with the user's home directory.
func expandHome(path string) string {
	if path == "" || path[0] != '~' {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[1:])
}

// loadConfig loads and validates the game configuration.
func loadConfig() config.FlappyConfig {
	cfg, err := config.LoadFlappy(flagConfig)
	if err != nil {
		fatalf("cannot load config: %v", err)
	}
	return cfg
}

// runtimeConfig builds the runtime settings from global flags.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	cfg.Record = flagRecord
	return cfg
}

// openStore opens the runs database.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fatalf("cannot open runs database: %v", err)
	}
	return store
}

// openStoreIfRecording opens the runs database only when --record is set.
func openStoreIfRecording() *storage.Store {
	if !flagRecord {
		return nil
	}
	return openStore()
}

// terminalSize returns the terminal size, or 80x24 if it is unknown.
func terminalSize() (width, height int) {
	width, height = 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width, height = w, h
	}
	return width, height
}
