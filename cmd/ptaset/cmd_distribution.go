package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"ptaset/pointsto"
)

func newDistributionCmd() *cobra.Command {
	var peak int

	cmd := &cobra.Command{
		Use:   "distribution",
		Short: "Print a histogram of points-to set sizes over the demo module",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return fmt.Errorf("loading config: %w", err)
			}
			engine := pointsto.New(buildDemoProgram(), cfg)
			engine.DistributionReport(os.Stdout, peak)
			return nil
		},
	}
	cmd.Flags().IntVar(&peak, "peak", 0, "dump up to N members of the largest points-to set (0 disables)")
	return cmd
}
