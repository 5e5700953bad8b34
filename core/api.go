// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Read-only facade: policy flags and a diagnostic summary.
// Policy:
//   - No algorithms or hidden state here.
//   - Concurrency model and invariants are defined in types.go/doc.go.

package core

// GraphStats is a point-in-time summary of the store.
type GraphStats struct {
	StrictLinks bool // duplicate links rejected instead of ignored
	UserCount   int  // registered users
	LinkCount   int  // distinct coach→coachee edges
	CoachCount  int  // users with at least one coachee
	RootCount   int  // users with no coach
}

// StrictLinks reports whether repeated links fail with ErrDuplicateLink.
func (g *Graph) StrictLinks() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.strictLinks
}

// Stats produces a deterministic snapshot of flags and counts under one
// read lock.
//
// Complexity: O(V).
func (g *Graph) Stats() *GraphStats {
	g.mu.RLock()
	defer g.mu.RUnlock()

	stats := GraphStats{
		StrictLinks: g.strictLinks,
		UserCount:   len(g.users),
		LinkCount:   g.links,
	}
	for id := range g.users {
		if len(g.coachees[id]) > 0 {
			stats.CoachCount++
		}
		if len(g.coaches[id]) == 0 {
			stats.RootCount++
		}
	}

	return &stats
}
