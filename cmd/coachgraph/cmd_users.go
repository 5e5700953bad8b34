// SPDX-License-Identifier: MIT
package main

import (
	"fmt"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

func newUsersCmd(a *app) *cobra.Command {
	var graph string
	cmd := &cobra.Command{
		Use:   "users",
		Short: "List users with their versions and coaching relationships",
		RunE: func(cmd *cobra.Command, _ []string) error {
			g, err := a.loadGraph(graph)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			st := g.Stats()
			fmt.Fprintf(w, "Users: %d  Links: %d  Coaches: %d  Roots: %d\n",
				st.UserCount, st.LinkCount, st.CoachCount, st.RootCount)
			t := a.newTable("User", "Name", "Version", "Coaches", "Coachees")
			for _, u := range g.Users() {
				v, set := u.Version()
				if !set {
					v = "-"
				}
				coaches, _ := g.Coaches(u.ID)
				coachees, _ := g.Coachees(u.ID)
				t.AppendRow(table.Row{u.ID, u.Name, v, strings.Join(coaches, ","), strings.Join(coachees, ",")})
			}
			a.render(w, t)

			return nil
		},
	}
	cmd.Flags().StringVar(&graph, "graph", "", "Graph fixture, YAML or JSON (required)")
	_ = cmd.MarkFlagRequired("graph")

	return cmd
}
