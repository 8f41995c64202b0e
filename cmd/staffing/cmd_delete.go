package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

func deleteCmd() *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "delete [id]",
		Short: "Delete a consultant",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger()
			ctx := cmd.Context()
			client := newClient(logger)
			id := args[0]

			c, err := client.GetConsultant(ctx, id)
			if err != nil {
				return fmt.Errorf("delete: %w", err)
			}

			if !yes {
				fmt.Printf("Delete consultant %s <%s>? [y/N] ", c.Name, c.Email)
				reader := bufio.NewReader(os.Stdin)
				answer, _ := reader.ReadString('\n')
				if strings.ToLower(strings.TrimSpace(answer)) != "y" {
					fmt.Println("Aborted.")
					return nil
				}
			}

			if err := client.DeleteConsultant(ctx, id); err != nil {
				return fmt.Errorf("delete: %w", err)
			}

			fmt.Printf("Deleted consultant %s.\n", c.Name)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "skip the confirmation prompt")
	return cmd
}
