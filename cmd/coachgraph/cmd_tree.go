// SPDX-License-Identifier: MIT
package main

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/coachgraph/spanning"
)

func newTreeCmd(a *app) *cobra.Command {
	var graph string
	cmd := &cobra.Command{
		Use:   "tree",
		Short: "Print the spanning tree used by limited infection",
		RunE: func(cmd *cobra.Command, _ []string) error {
			g, err := a.loadGraph(graph)
			if err != nil {
				return err
			}
			tr, err := spanning.Build(g)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "Users: %d  Components: %d\n", g.UserCount(), len(tr.Children[tr.Root]))
			t := a.newTable("User", "Parent", "Subtree size")
			t.AppendRow(table.Row{rootLabel, "", tr.Size[tr.Root]})
			for _, id := range tr.Order {
				parent := tr.Parent[id]
				if parent == spanning.RootID {
					parent = rootLabel
				}
				t.AppendRow(table.Row{id, parent, tr.Size[id]})
			}
			a.render(w, t)

			return nil
		},
	}
	cmd.Flags().StringVar(&graph, "graph", "", "Graph fixture, YAML or JSON (required)")
	_ = cmd.MarkFlagRequired("graph")

	return cmd
}
