package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/BachelorAccenture/datadrevet-staffing-web/internal/graph"
)

func graphCmd() *cobra.Command {
	var cypher string

	cmd := &cobra.Command{
		Use:   "graph [query]",
		Short: "Explore the staffing graph",
		Long: "Graph runs a canned exploration query (or a custom Cypher query via --cypher) " +
			"against the staffing graph database and prints the resulting nodes and relationships.\n\n" +
			"Canned queries:\n" + queryHelp(),
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger()
			ctx := cmd.Context()

			query := cypher
			if query == "" {
				name := "all"
				if len(args) == 1 {
					name = args[0]
				}
				canned, ok := graph.QueryByName(name)
				if !ok {
					return fmt.Errorf("graph: unknown query %q, expected one of: %s", name, queryNames())
				}
				query = canned.Cypher
			}

			explorer, err := newExplorer(logger)
			if err != nil {
				return fmt.Errorf("graph: %w", err)
			}
			defer func() { _ = explorer.Close(ctx) }()

			g, err := explorer.Run(ctx, query)
			if err != nil {
				return fmt.Errorf("graph: %w", err)
			}

			printGraph(g)
			return nil
		},
	}

	cmd.Flags().StringVar(&cypher, "cypher", "", "custom Cypher query (overrides the canned query)")
	return cmd
}

func printGraph(g *graph.Graph) {
	captions := make(map[string]string, len(g.Nodes))
	for _, n := range g.Nodes {
		captions[n.ID] = n.Caption
		fmt.Printf("(%s) %s\n", strings.Join(n.Labels, ":"), n.Caption)
	}
	for _, r := range g.Rels {
		fmt.Printf("%s -[%s]-> %s\n", captions[r.From], r.Type, captions[r.To])
	}
	if len(g.Nodes) == 0 {
		fmt.Println("Empty graph.")
	}
}

func queryHelp() string {
	var b strings.Builder
	for _, q := range graph.Queries {
		fmt.Fprintf(&b, "  %-13s %s\n", q.Name, q.Label)
	}
	return b.String()
}

func queryNames() string {
	names := make([]string, len(graph.Queries))
	for i, q := range graph.Queries {
		names[i] = q.Name
	}
	return strings.Join(names, ", ")
}
