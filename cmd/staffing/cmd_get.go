package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func getCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get [id]",
		Short: "Show one consultant",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger()
			client := newClient(logger)

			c, err := client.GetConsultant(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("get: %w", err)
			}

			status := "assigned"
			if c.Availability {
				status = "available"
			}
			fmt.Printf("%s <%s>\n", c.Name, c.Email)
			fmt.Printf("ID: %s\n", c.ID)
			fmt.Printf("Experience: %d years | Status: %s\n", c.YearsOfExperience, status)
			fmt.Printf("Wants new project: %t | Open to remote: %t\n", c.WantsNewProject, c.OpenToRemote)

			if len(c.Skills) > 0 {
				fmt.Println("Skills:")
				for _, s := range c.Skills {
					fmt.Printf("  %s (%d years)\n", s.SkillName, s.SkillYearsOfExperience)
				}
			}
			if len(c.ProjectAssignments) > 0 {
				fmt.Println("Assignments:")
				for _, a := range c.ProjectAssignments {
					state := "inactive"
					if a.IsActive {
						state = "active"
					}
					fmt.Printf("  %s as %s (%d%%, %s)\n", a.ProjectName, a.Role, a.AllocationPercent, state)
				}
			}

			return nil
		},
	}
}
