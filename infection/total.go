// SPDX-License-Identifier: MIT
package infection

import (
	"fmt"

	"github.com/katalvlaran/coachgraph/core"
)

// Total sets version on every user in the weakly connected component of
// startID: coaching edges are followed in both directions.
//
// The component is computed on a snapshot first and then written in one
// SetVersions batch, so each user is written exactly once and users outside
// the component are never touched. A user is marked the moment it is
// enqueued, so cycles and parallel paths cannot enqueue it twice.
//
// Errors: ErrGraphNil, core.ErrUnknownVertex (wrapped), ctx.Err().
func Total(g *core.Graph, startID, version string, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := buildOptions(opts)

	s := g.Snapshot()
	if !s.Has(startID) {
		return nil, fmt.Errorf("infection: start %q: %w", startID, core.ErrUnknownVertex)
	}

	infected, err := component(&o, s, startID)
	if err != nil {
		return nil, err
	}
	o.Logger.Debug("component collected", "start", startID, "size", len(infected))

	if err = g.SetVersions(infected, version); err != nil {
		return nil, fmt.Errorf("infection: apply: %w", err)
	}

	res := &Result{Mode: ModeTotal, Version: version, Infected: infected, Selected: startID}
	finish(&o, res)

	return res, nil
}

// component returns the undirected reachability set of start in BFS order.
func component(o *Options, s *core.Snapshot, start string) ([]string, error) {
	seen := map[string]bool{start: true}
	queue := []string{start}
	for i := 0; i < len(queue); i++ {
		if err := o.done(); err != nil {
			return nil, err
		}
		id := queue[i]
		for _, rel := range [2][]string{s.Coachees[id], s.Coaches[id]} {
			for _, nbr := range rel {
				if !seen[nbr] {
					seen[nbr] = true
					queue = append(queue, nbr)
				}
			}
		}
	}

	return queue, nil
}

// finish logs and records a successful run.
func finish(o *Options, res *Result) {
	o.Logger.Info("infection applied",
		"mode", string(res.Mode),
		"version", res.Version,
		"selected", res.Selected,
		"infected", len(res.Infected),
	)
	if o.Recorder != nil {
		o.Recorder.Observe(res)
	}
}
