package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"ptaset/pointsto"
)

func newLoadCmd() *cobra.Command {
	var in string

	cmd := &cobra.Command{
		Use:   "load",
		Short: "Load a previously saved engine state over the demo module and print it",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return fmt.Errorf("loading config: %w", err)
			}
			engine, err := pointsto.NewFromFile(buildDemoProgram(), in, cfg)
			if err != nil {
				return fmt.Errorf("loading engine state: %w", err)
			}
			fmt.Print(engine.Print())
			return nil
		},
	}
	cmd.Flags().StringVar(&in, "in", "ptaset.state", "input path for a saved engine state")
	return cmd
}
