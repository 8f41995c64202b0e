package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func listCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all consultants",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger()
			client := newClient(logger)

			consultants, err := client.ListConsultants(cmd.Context())
			if err != nil {
				return fmt.Errorf("list: %w", err)
			}

			for i := range consultants {
				c := &consultants[i]
				status := "assigned"
				if c.Availability {
					status = "available"
				}
				fmt.Printf("[%d] %s <%s> - %d years, %s\n", i+1, c.Name, c.Email, c.YearsOfExperience, status)
				fmt.Printf("    ID: %s | Skills: %d | Assignments: %d\n", c.ID, len(c.Skills), len(c.ProjectAssignments))
			}

			if len(consultants) == 0 {
				fmt.Println("No consultants found.")
			}

			return nil
		},
	}
}
