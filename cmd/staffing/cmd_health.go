package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func healthCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Check backend reachability",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger()
			client := newClient(logger)

			skills, err := client.ListSkills(cmd.Context())
			if err != nil {
				return fmt.Errorf("health: backend unreachable at %s: %w", client.BaseURL(), err)
			}

			fmt.Printf("Backend OK at %s (%d skills in catalog)\n", client.BaseURL(), len(skills))
			return nil
		},
	}
}
