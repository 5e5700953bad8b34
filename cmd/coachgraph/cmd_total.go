// SPDX-License-Identifier: MIT
package main

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/coachgraph/infection"
)

func newTotalCmd(a *app) *cobra.Command {
	var flags struct {
		graph   string
		start   string
		version string
		out     string
	}
	cmd := &cobra.Command{
		Use:   "total",
		Short: "Set a version on everyone connected to a start user",
		RunE: func(cmd *cobra.Command, _ []string) error {
			g, err := a.loadGraph(flags.graph)
			if err != nil {
				return err
			}
			res, err := infection.Total(g, flags.start, flags.version, a.runOptions(cmd)...)
			if err != nil {
				return err
			}

			return a.finishRun(cmd, g, res, flags.out)
		},
	}

	f := cmd.Flags()
	f.StringVar(&flags.graph, "graph", "", "Graph fixture, YAML or JSON (required)")
	f.StringVar(&flags.start, "start", "", "ID of the first infected user (required)")
	f.StringVar(&flags.version, "version", "", "Version to roll out (required)")
	f.StringVarP(&flags.out, "out", "o", "", "Write the updated graph to this file")
	_ = cmd.MarkFlagRequired("graph")
	_ = cmd.MarkFlagRequired("start")
	_ = cmd.MarkFlagRequired("version")

	return cmd
}
