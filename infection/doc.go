// SPDX-License-Identifier: MIT
//
// Package infection propagates a version tag through a core.Graph.
//
//   - Total(g, start, version):  infect the weakly connected component of
//     start, following coaching edges in both directions.
//   - Limited(g, version, n):    infect the single spanning subtree whose size
//     is closest to n (see package spanning).
//
// Both run on one g.Snapshot() and write back with one g.SetVersions batch:
// validation and traversal finish before anything is written, and a failed
// or cancelled run leaves every version as it was.
//
// Options
//
//   - WithContext(ctx)   cancellation, checked once per visited user.
//   - WithLogger(l)      structured log/slog output (discarded by default).
//   - WithRecorder(r)    observe successful runs (e.g. metrics.Collector).
//
// Errors
//
//   - ErrGraphNil         nil graph.
//   - core.ErrUnknownVertex  Total with an unregistered start (wrapped).
//   - ErrInvalidCount     Limited with n < 1.
//   - ErrEmptyGraph       Limited on a graph with no users.
//   - context errors      when the supplied context is done.
package infection
