// SPDX-License-Identifier: MIT
package infection

import (
	"fmt"

	"github.com/katalvlaran/coachgraph/core"
	"github.com/katalvlaran/coachgraph/spanning"
)

// Limited sets version on one spanning subtree whose size is closest to count.
//
// Steps:
//  1. Snapshot g and build its spanning tree under the virtual root.
//  2. Annotate subtree sizes (done by the builder).
//  3. Select the subtree via SelectApprox(count).
//  4. Collect that subtree through tree children only and write it in one
//     SetVersions batch. The virtual root is never written.
//
// Original coaching edges leaving the subtree are never followed, so the
// infected set is exactly the selected subtree.
//
// Errors: ErrGraphNil, ErrInvalidCount, ErrEmptyGraph, ctx.Err().
func Limited(g *core.Graph, version string, count int, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if count < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidCount, count)
	}
	o := buildOptions(opts)

	s := g.Snapshot()
	if s.Len() == 0 {
		return nil, ErrEmptyGraph
	}

	tree, err := spanning.FromSnapshot(s)
	if err != nil {
		return nil, fmt.Errorf("infection: spanning tree: %w", err)
	}
	o.Logger.Debug("spanning tree built",
		"users", s.Len(),
		"components", len(tree.Children[spanning.RootID]),
	)

	pick, err := tree.SelectApprox(count)
	if err != nil {
		return nil, fmt.Errorf("infection: select: %w", err)
	}
	o.Logger.Debug("subtree selected", "root", pick.ID, "size", pick.Size, "requested", count)

	infected := make([]string, 0, pick.Size)
	for _, id := range tree.Subtree(pick.ID) {
		if err = o.done(); err != nil {
			return nil, err
		}
		if id != spanning.RootID {
			infected = append(infected, id)
		}
	}

	if err = g.SetVersions(infected, version); err != nil {
		return nil, fmt.Errorf("infection: apply: %w", err)
	}

	res := &Result{
		Mode:      ModeLimited,
		Version:   version,
		Infected:  infected,
		Requested: count,
		Selected:  pick.ID,
	}
	finish(&o, res)

	return res, nil
}
