// SPDX-License-Identifier: MIT
//
// File: methods_edges.go
// Role: Coaching relationship lifecycle and queries.
//
// Determinism:
//   - Coachees() and Coaches() return insertion order, never sorted.
//
// Concurrency:
//   - Link under mu write lock; queries under mu read lock; results are copies.
package core

import "fmt"

// Link records that coachID coaches coacheeID.
//
// Implementation:
//   - Stage 1: Under the write lock, both IDs must be registered (ErrUnknownVertex).
//   - Stage 2: Reject coachID == coacheeID (ErrSelfReference).
//   - Stage 3: If the pair already exists, return nil (or ErrDuplicateLink in strict mode).
//   - Stage 4: Append to coachees[coach] and coaches[coachee] together.
//
// Behavior highlights:
//   - Validation order is fixed: an unknown ID wins over a self reference.
//   - Repeated pairs never duplicate an entry on either side, so both
//     relations remain exact inverses of each other.
//
// Errors:
//   - ErrUnknownVertex, ErrSelfReference, ErrDuplicateLink (strict only).
//
// Complexity:
//   - Time O(1) amortized, Space O(1).
func (g *Graph) Link(coachID, coacheeID string) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	for _, id := range [2]string{coachID, coacheeID} {
		if _, ok := g.users[id]; !ok {
			return fmt.Errorf("%w: %q", ErrUnknownVertex, id)
		}
	}
	if coachID == coacheeID {
		return fmt.Errorf("%w: %q", ErrSelfReference, coachID)
	}

	set := g.linked[coachID]
	if _, dup := set[coacheeID]; dup {
		if g.strictLinks {
			return fmt.Errorf("%w: %q -> %q", ErrDuplicateLink, coachID, coacheeID)
		}

		return nil
	}
	if set == nil {
		set = make(map[string]struct{})
		g.linked[coachID] = set
	}

	set[coacheeID] = struct{}{}
	g.coachees[coachID] = append(g.coachees[coachID], coacheeID)
	g.coaches[coacheeID] = append(g.coaches[coacheeID], coachID)
	g.links++

	return nil
}

// HasLink reports whether coachID coaches coacheeID.
// Complexity: O(1).
func (g *Graph) HasLink(coachID, coacheeID string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.linked[coachID][coacheeID]

	return ok
}

// Coachees returns the users coached by id, in link order.
func (g *Graph) Coachees(id string) ([]string, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if _, ok := g.users[id]; !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownVertex, id)
	}

	return append([]string(nil), g.coachees[id]...), nil
}

// Coaches returns the users coaching id, in link order. The first element
// is the "first recorded coach" used by spanning-tree construction.
func (g *Graph) Coaches(id string) ([]string, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if _, ok := g.users[id]; !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownVertex, id)
	}

	return append([]string(nil), g.coaches[id]...), nil
}

// LinkCount returns the number of distinct coaching relationships.
// Complexity: O(1).
func (g *Graph) LinkCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.links
}

// CoachCount returns how many users have at least one coachee.
func (g *Graph) CoachCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	n := 0
	for _, cs := range g.coachees {
		if len(cs) > 0 {
			n++
		}
	}

	return n
}
