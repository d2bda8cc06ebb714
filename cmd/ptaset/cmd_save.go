package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"ptaset/pointsto"
)

func newSaveCmd() *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "save",
		Short: "Build the engine over the demo module and save its state to a file",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return fmt.Errorf("loading config: %w", err)
			}
			engine := pointsto.New(buildDemoProgram(), cfg)
			if err := engine.SaveFile(out); err != nil {
				return fmt.Errorf("saving engine state: %w", err)
			}
			fmt.Println("saved to", out)
			return nil
		},
	}
	cmd.Flags().StringVar(&out, "out", "ptaset.state", "output path for the saved engine state")
	return cmd
}
