package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/flapper/internal/config"
)

var flagConfigDefaults bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the game configuration as YAML.

The configuration is looked up in this order:
  --config <path>
  ~/.flapper/configs/flappy.yaml
  ./configs/flappy.yaml
  built-in defaults

Examples:
  flapper config
  flapper config --defaults > ~/.flapper/configs/flappy.yaml`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagConfigDefaults, "defaults", false, "Print the built-in defaults instead")
}

func runConfig(_ *cobra.Command, _ []string) {
	if flagConfigDefaults {
		os.Stdout.Write(config.DefaultYAML())
		return
	}

	data, err := config.Marshal(loadConfig())
	if err != nil {
		fatalf("encoding config: %v", err)
	}
	os.Stdout.Write(data)
}
