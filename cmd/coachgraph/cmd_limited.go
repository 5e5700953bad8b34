// SPDX-License-Identifier: MIT
package main

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/coachgraph/infection"
)

func newLimitedCmd(a *app) *cobra.Command {
	var flags struct {
		graph   string
		version string
		count   int
		out     string
	}
	cmd := &cobra.Command{
		Use:   "limited",
		Short: "Set a version on one coaching subtree of roughly --count users",
		RunE: func(cmd *cobra.Command, _ []string) error {
			g, err := a.loadGraph(flags.graph)
			if err != nil {
				return err
			}
			res, err := infection.Limited(g, flags.version, flags.count, a.runOptions(cmd)...)
			if err != nil {
				return err
			}

			return a.finishRun(cmd, g, res, flags.out)
		},
	}

	f := cmd.Flags()
	f.StringVar(&flags.graph, "graph", "", "Graph fixture, YAML or JSON (required)")
	f.StringVar(&flags.version, "version", "", "Version to roll out (required)")
	f.IntVarP(&flags.count, "count", "n", 0, "Approximate number of users to infect (required)")
	f.StringVarP(&flags.out, "out", "o", "", "Write the updated graph to this file")
	_ = cmd.MarkFlagRequired("graph")
	_ = cmd.MarkFlagRequired("version")
	_ = cmd.MarkFlagRequired("count")

	return cmd
}
