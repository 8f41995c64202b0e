package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/BachelorAccenture/datadrevet-staffing-web/internal/refdata"
	"github.com/BachelorAccenture/datadrevet-staffing-web/internal/staging"
)

func editCmd() *cobra.Command {
	var (
		fields      consultantFlags
		stagingOpts stagingFlags
		deactivate  []string
		remove      []string
		interactive bool
	)

	cmd := &cobra.Command{
		Use:   "edit [id]",
		Short: "Edit a consultant",
		Long: "Edit stages changes against an existing consultant and commits them in one save: " +
			"deactivations first, then removals, skill additions, project assignments, and finally " +
			"the base-field update. A failing step aborts the remainder without rolling back.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger()
			ctx := cmd.Context()
			client := newClient(logger)

			consultant, err := client.GetConsultant(ctx, args[0])
			if err != nil {
				return fmt.Errorf("edit: %w", err)
			}
			catalog, err := refdata.Load(ctx, client, false)
			if err != nil {
				return fmt.Errorf("edit: %w", err)
			}

			cs := staging.NewFor(consultant)
			seq := staging.NewSequencer(client, logger)

			hasFlags := fields.set(cmd) || stagingOpts.set(cmd) || len(deactivate) > 0 || len(remove) > 0
			if interactive || !hasFlags {
				return runForm(cs, catalog, seq)
			}

			base := cs.Fields()
			fields.overlay(cmd, &base)
			cs.SetFields(base)

			for _, projectID := range deactivate {
				if err := cs.StageDeactivation(projectID); err != nil {
					return fmt.Errorf("edit: %w", err)
				}
			}
			for _, projectID := range remove {
				if err := cs.StageRemoval(projectID); err != nil {
					return fmt.Errorf("edit: %w", err)
				}
			}
			if err := stagingOpts.apply(cs, catalog); err != nil {
				return fmt.Errorf("edit: %w", err)
			}

			return reportResult(seq.Commit(ctx, cs))
		},
	}

	fields.register(cmd)
	stagingOpts.register(cmd)
	cmd.Flags().StringArrayVar(&deactivate, "deactivate", nil, "stage a deactivation of the assignment on this project id (repeatable)")
	cmd.Flags().StringArrayVar(&remove, "remove", nil, "stage a removal of the assignment on this project id (repeatable)")
	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "open the interactive form")
	return cmd
}
