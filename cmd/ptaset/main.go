// Command ptaset is the CLI driver for the points-to / alias set engine.
// It has no real IR loader to point at (nothing in this stack ships an
// LLVM binding), so every subcommand operates on a small synthetic
// module built in-process; this is enough to exercise construction,
// querying, save/load, and reporting end to end.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"ptaset/internal/config"
	"ptaset/internal/telemetry"
)

var (
	debug      bool
	configPath string
)

func main() {
	root := &cobra.Command{
		Use:           "ptaset",
		Short:         "Whole-program points-to / alias set engine",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			telemetry.Configure(debug)
		},
	}
	root.PersistentFlags().BoolVar(&debug, "debug", false, "print debug-level log messages")
	root.PersistentFlags().StringVar(&configPath, "config", "", "path to a YAML configuration file")

	root.AddCommand(newAnalyzeCmd(), newSaveCmd(), newLoadCmd(), newDistributionCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func loadConfig() (config.Config, error) {
	if configPath == "" {
		return config.Default(), nil
	}
	return config.Load(configPath)
}
