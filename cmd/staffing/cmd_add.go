package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/BachelorAccenture/datadrevet-staffing-web/internal/api"
	"github.com/BachelorAccenture/datadrevet-staffing-web/internal/refdata"
	"github.com/BachelorAccenture/datadrevet-staffing-web/internal/staging"
)

func addCmd() *cobra.Command {
	var (
		fields      consultantFlags
		stagingOpts stagingFlags
		interactive bool
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a consultant",
		Long: "Add creates a consultant. Without flags an interactive form opens; with flags the " +
			"staged changes are committed directly. Nothing is persisted until the save step runs.",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger()
			ctx := cmd.Context()
			client := newClient(logger)

			catalog, err := refdata.Load(ctx, client, false)
			if err != nil {
				return fmt.Errorf("add: %w", err)
			}

			cs := staging.NewDraft()
			seq := staging.NewSequencer(client, logger)

			hasFlags := fields.set(cmd) || stagingOpts.set(cmd)
			if interactive || !hasFlags {
				return runForm(cs, catalog, seq)
			}

			cs.SetFields(api.ConsultantFields{
				Name:              fields.name,
				Email:             fields.email,
				YearsOfExperience: fields.years,
				WantsNewProject:   fields.wantsNew,
				OpenToRemote:      fields.remote,
			})
			if err := stagingOpts.apply(cs, catalog); err != nil {
				return fmt.Errorf("add: %w", err)
			}

			return reportResult(seq.Commit(ctx, cs))
		},
	}

	fields.register(cmd)
	stagingOpts.register(cmd)
	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "open the interactive form")
	return cmd
}
