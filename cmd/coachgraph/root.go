// SPDX-License-Identifier: MIT
package main

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/coachgraph/core"
	"github.com/katalvlaran/coachgraph/fixture"
	"github.com/katalvlaran/coachgraph/infection"
	"github.com/katalvlaran/coachgraph/metrics"
)

// app carries the global flags and the per-invocation plumbing built from them.
type app struct {
	logLevel  string
	logFormat string
	metrics   bool
	markdown  bool
	strict    bool

	logger    *slog.Logger
	registry  *prometheus.Registry
	collector *metrics.Collector
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   "coachgraph",
		Short: "Roll a version out over a coaching graph",
		Long: "coachgraph loads users and coaching relationships from a YAML or JSON\n" +
			"fixture and propagates a version tag through them, either to a whole\n" +
			"connected group (total) or to a subtree of roughly a given size (limited).",
		SilenceUsage: true,
		CompletionOptions: cobra.CompletionOptions{
			HiddenDefaultCmd: true,
		},
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd.ErrOrStderr())
		},
	}
	root.Version = buildVersion

	f := root.PersistentFlags()
	f.StringVar(&a.logLevel, "log-level", "info", "Log level: debug, info, warn, error")
	f.StringVar(&a.logFormat, "log-format", "text", "Log format: text or json")
	f.BoolVar(&a.metrics, "metrics", false, "Print Prometheus metrics after the run")
	f.BoolVar(&a.markdown, "markdown", false, "Render tables as Markdown")
	f.BoolVar(&a.strict, "strict-links", false, "Reject repeated coaching links in the fixture")

	root.AddCommand(newTotalCmd(a))
	root.AddCommand(newLimitedCmd(a))
	root.AddCommand(newTreeCmd(a))
	root.AddCommand(newUsersCmd(a))

	return root
}

// setup builds the logger and metrics registry from the global flags.
func (a *app) setup(w io.Writer) error {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(a.logLevel)); err != nil {
		return fmt.Errorf("log level: %w", err)
	}
	opts := &slog.HandlerOptions{Level: lvl}
	switch strings.ToLower(a.logFormat) {
	case "text":
		a.logger = slog.New(slog.NewTextHandler(w, opts))
	case "json":
		a.logger = slog.New(slog.NewJSONHandler(w, opts))
	default:
		return fmt.Errorf("log format %q: want text or json", a.logFormat)
	}

	a.registry = prometheus.NewRegistry()
	c, err := metrics.NewCollector(a.registry)
	if err != nil {
		return fmt.Errorf("metrics: %w", err)
	}
	a.collector = c

	return nil
}

// loadGraph reads and builds the fixture at path.
func (a *app) loadGraph(path string) (*core.Graph, error) {
	f, err := fixture.LoadFromPath(path)
	if err != nil {
		return nil, err
	}
	var opts []core.GraphOption
	if a.strict {
		opts = append(opts, core.WithStrictLinks())
	}
	g, err := fixture.Build(f, nil, opts...)
	if err != nil {
		return nil, err
	}
	a.logger.Debug("graph loaded", "path", path, "users", g.UserCount(), "links", g.LinkCount())

	return g, nil
}

// runOptions wires the logger and metrics collector into an infection run.
func (a *app) runOptions(cmd *cobra.Command) []infection.Option {
	return []infection.Option{
		infection.WithContext(cmd.Context()),
		infection.WithLogger(a.logger),
		infection.WithRecorder(a.collector),
	}
}

// newTable returns a table writer styled for the terminal.
func (a *app) newTable(header ...any) table.Writer {
	t := table.NewWriter()
	if !a.markdown {
		t.SetStyle(table.StyleLight)
	}
	t.AppendHeader(table.Row(header))

	return t
}

func (a *app) render(w io.Writer, t table.Writer) {
	if a.markdown {
		fmt.Fprintln(w, t.RenderMarkdown())
		return
	}
	fmt.Fprintln(w, t.Render())
}

// dumpMetrics writes the registry in the Prometheus text format when --metrics is set.
func (a *app) dumpMetrics(w io.Writer) error {
	if !a.metrics {
		return nil
	}
	mfs, err := a.registry.Gather()
	if err != nil {
		return fmt.Errorf("gather metrics: %w", err)
	}
	for _, mf := range mfs {
		if _, err = expfmt.MetricFamilyToText(w, mf); err != nil {
			return fmt.Errorf("write metrics: %w", err)
		}
	}

	return nil
}

// finishRun prints the infected users, saves the graph when out is set and dumps metrics.
func (a *app) finishRun(cmd *cobra.Command, g *core.Graph, res *infection.Result, out string) error {
	w := cmd.OutOrStdout()
	selected := res.Selected
	if res.Mode == infection.ModeLimited && selected == "" {
		selected = rootLabel
	}
	fmt.Fprintf(w, "Mode:     %s\n", res.Mode)
	fmt.Fprintf(w, "Version:  %s\n", res.Version)
	fmt.Fprintf(w, "Selected: %s\n", selected)
	if res.Mode == infection.ModeLimited {
		fmt.Fprintf(w, "Infected: %d (requested %d)\n", len(res.Infected), res.Requested)
	} else {
		fmt.Fprintf(w, "Infected: %d\n", len(res.Infected))
	}

	t := a.newTable("#", "User", "Name")
	for i, id := range res.Infected {
		u, err := g.User(id)
		if err != nil {
			return err
		}
		t.AppendRow(table.Row{i + 1, id, u.Name})
	}
	a.render(w, t)

	if out != "" {
		if err := fixture.SaveToPath(fixture.FromGraph(g), out); err != nil {
			return err
		}
		a.logger.Info("graph saved", "path", out)
	}

	return a.dumpMetrics(w)
}

// rootLabel stands in for the virtual root, whose ID is empty.
const rootLabel = "(root)"
