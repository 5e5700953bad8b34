// SPDX-License-Identifier: MIT
//
// File: methods_clone.go
// Role: Snapshots and deep copies.
// Concurrency:
//   - Read lock for the whole copy; the source is never mutated.

package core

import "github.com/katalvlaran/coachgraph/user"

// Snapshot returns a consistent copy of the topology taken under a single
// read lock. Mutating the snapshot does not affect g.
//
// Complexity: O(V log V + E).
func (g *Graph) Snapshot() *Snapshot {
	g.mu.RLock()
	defer g.mu.RUnlock()

	s := &Snapshot{
		IDs:      sortedIDs(g.users),
		Coachees: make(map[string][]string, len(g.users)),
		Coaches:  make(map[string][]string, len(g.users)),
	}
	for id := range g.users {
		s.Coachees[id] = append([]string(nil), g.coachees[id]...)
		s.Coaches[id] = append([]string(nil), g.coaches[id]...)
	}

	return s
}

// Clone returns a deep copy of g: configuration, users (copied records)
// and both relations in the same insertion order.
//
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	c := &Graph{
		strictLinks: g.strictLinks,
		capHint:     g.capHint,
		users:       make(map[string]*user.User, len(g.users)),
		coachees:    make(map[string][]string, len(g.coachees)),
		coaches:     make(map[string][]string, len(g.coaches)),
		linked:      make(map[string]map[string]struct{}, len(g.linked)),
		links:       g.links,
	}
	for id, u := range g.users {
		c.users[id] = u.Clone()
		c.coachees[id] = append([]string(nil), g.coachees[id]...)
		c.coaches[id] = append([]string(nil), g.coaches[id]...)
	}
	for coach, set := range g.linked {
		cs := make(map[string]struct{}, len(set))
		for to := range set {
			cs[to] = struct{}{}
		}
		c.linked[coach] = cs
	}

	return c
}
