package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/BachelorAccenture/datadrevet-staffing-web/internal/models"
	"github.com/BachelorAccenture/datadrevet-staffing-web/internal/search"
)

func searchCmd() *cobra.Command {
	var (
		skills    []string
		roles     []string
		companies []string
		minYears  int
		available bool
		wantsNew  bool
		remote    bool
		startDate string
		endDate   string
	)

	cmd := &cobra.Command{
		Use:   "search",
		Short: "Search consultants by skill, role, company, and availability",
		Long:  "Search runs a backend-side consultant search. Only flags that are actually set are sent; an unset boolean flag means \"don't filter on this dimension\", not false.",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger()
			ctx := cmd.Context()
			client := newClient(logger)

			filters := &search.Filters{
				SkillNames:        skills,
				Roles:             roles,
				PreviousCompanies: companies,
				StartDate:         startDate,
				EndDate:           endDate,
			}
			// Boolean dimensions are tri-state: only an explicitly set flag
			// becomes a query parameter.
			if cmd.Flags().Changed("min-years") {
				filters.MinYearsOfExperience = search.Int(minYears)
			}
			if cmd.Flags().Changed("available") {
				filters.Availability = search.Bool(available)
			}
			if cmd.Flags().Changed("wants-new-project") {
				filters.WantsNewProject = search.Bool(wantsNew)
			}
			if cmd.Flags().Changed("open-to-remote") {
				filters.OpenToRemote = search.Bool(remote)
			}

			results, err := client.SearchConsultants(ctx, filters)
			if err != nil {
				return fmt.Errorf("search: %w", err)
			}

			printConsultants(results)
			return nil
		},
	}

	cmd.Flags().StringArrayVar(&skills, "skill", nil, "filter by skill name (repeatable)")
	cmd.Flags().StringArrayVar(&roles, "role", nil, "filter by assignment role (repeatable)")
	cmd.Flags().StringArrayVar(&companies, "company", nil, "filter by previous company (repeatable)")
	cmd.Flags().IntVar(&minYears, "min-years", 0, "minimum years of experience")
	cmd.Flags().BoolVar(&available, "available", false, "filter on availability")
	cmd.Flags().BoolVar(&wantsNew, "wants-new-project", false, "filter on wanting a new project")
	cmd.Flags().BoolVar(&remote, "open-to-remote", false, "filter on remote openness")
	cmd.Flags().StringVar(&startDate, "from", "", "assignment period start (YYYY-MM-DD)")
	cmd.Flags().StringVar(&endDate, "to", "", "assignment period end (YYYY-MM-DD)")
	return cmd
}

func printConsultants(consultants []models.Consultant) {
	for i := range consultants {
		c := &consultants[i]
		status := "assigned"
		if c.Availability {
			status = "available"
		}
		fmt.Printf("[%d] %s <%s> - %d years, %s\n", i+1, c.Name, c.Email, c.YearsOfExperience, status)
		for _, s := range c.Skills {
			fmt.Printf("    skill: %s (%d years)\n", s.SkillName, s.SkillYearsOfExperience)
		}
		for _, a := range c.ProjectAssignments {
			state := "inactive"
			if a.IsActive {
				state = "active"
			}
			fmt.Printf("    project: %s as %s (%d%%, %s)\n", a.ProjectName, a.Role, a.AllocationPercent, state)
		}
	}

	if len(consultants) == 0 {
		fmt.Println("No consultants found.")
	}
}
