package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"ptaset/pointsto"
)

func newAnalyzeCmd() *cobra.Command {
	var query string

	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Build the engine over the demo module and print its points-to sets",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return fmt.Errorf("loading config: %w", err)
			}

			prog := buildDemoProgram()
			engine := pointsto.New(prog, cfg)

			if query == "" {
				fmt.Print(engine.Print())
				return nil
			}

			names := strings.SplitN(query, ",", 2)
			if len(names) != 2 {
				return fmt.Errorf("--query wants \"name1,name2\", got %q", query)
			}
			index := byName(prog)
			v1, ok1 := index[strings.TrimSpace(names[0])]
			v2, ok2 := index[strings.TrimSpace(names[1])]
			if !ok1 || !ok2 {
				return fmt.Errorf("unknown value name in query %q", query)
			}
			fmt.Println(engine.Alias(v1, v2))
			return nil
		},
	}
	cmd.Flags().StringVar(&query, "query", "", "alias query as \"name1,name2\" against two demo module values")
	return cmd
}
