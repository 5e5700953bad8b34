// SPDX-License-Identifier: MIT
//
// File: methods_vertices.go
// Role: User lifecycle, queries and version writes.
//
// Determinism:
//   - Users() and IDs() return results sorted by ID ascending.
//
// Concurrency:
//   - Mutations under mu write lock; queries under mu read lock.
package core

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/coachgraph/user"
)

// Register inserts u with empty adjacency.
//
// Implementation:
//   - Stage 1: Validate u (ErrNilUser, ErrEmptyUserID).
//   - Stage 2: Under the write lock, reject a known ID (ErrDuplicateVertex).
//   - Stage 3: Store the record and bootstrap both adjacency buckets.
//
// Behavior highlights:
//   - Not idempotent: a second registration of the same ID fails and leaves
//     the store unchanged.
//   - The graph keeps the pointer; later SetVersions calls mutate u.
//
// Errors:
//   - ErrNilUser, ErrEmptyUserID, ErrDuplicateVertex (wrapped with the ID).
//
// Complexity:
//   - Time O(1) amortized, Space O(1).
func (g *Graph) Register(u *user.User) error {
	if u == nil {
		return ErrNilUser
	}
	if u.ID == "" {
		return ErrEmptyUserID
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if _, exists := g.users[u.ID]; exists {
		return fmt.Errorf("%w: %q", ErrDuplicateVertex, u.ID)
	}

	g.users[u.ID] = u
	g.coachees[u.ID] = nil
	g.coaches[u.ID] = nil

	return nil
}

// HasUser reports whether id is registered (empty ID ⇒ false).
// Complexity: O(1).
func (g *Graph) HasUser(id string) bool {
	if id == "" {
		return false
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.users[id]

	return ok
}

// User returns the registered record for id.
// The pointer is live; treat it as read-only and write versions through SetVersions.
func (g *Graph) User(id string) (*user.User, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	u, ok := g.users[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownVertex, id)
	}

	return u, nil
}

// Users returns every registered user sorted by ID.
// Complexity: O(V log V).
func (g *Graph) Users() []*user.User {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]*user.User, 0, len(g.users))
	for _, u := range g.users {
		out = append(out, u)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out
}

// IDs returns every registered ID in ascending order.
// Complexity: O(V log V).
func (g *Graph) IDs() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return sortedIDs(g.users)
}

// UserCount returns the number of registered users.
// Complexity: O(1).
func (g *Graph) UserCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.users)
}

// Version returns the version tag of id and whether one is set.
func (g *Graph) Version(id string) (string, bool, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	u, ok := g.users[id]
	if !ok {
		return "", false, fmt.Errorf("%w: %q", ErrUnknownVertex, id)
	}
	v, set := u.Version()

	return v, set, nil
}

// SetVersions assigns version to every user in ids as one batch.
//
// Implementation:
//   - Stage 1: Under the write lock, verify every ID is registered.
//   - Stage 2: Only then assign the version to each user.
//
// Behavior highlights:
//   - All-or-nothing: one unknown ID rejects the batch and nothing changes.
//   - Repeated IDs in the batch are harmless (same value written twice).
//
// Errors:
//   - ErrUnknownVertex wrapped with the first offending ID.
//
// Complexity:
//   - Time O(k) for k = len(ids), Space O(1).
func (g *Graph) SetVersions(ids []string, version string) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	for _, id := range ids {
		if _, ok := g.users[id]; !ok {
			return fmt.Errorf("%w: %q", ErrUnknownVertex, id)
		}
	}
	for _, id := range ids {
		g.users[id].SetVersion(version)
	}

	return nil
}

// sortedIDs collects the keys of m in ascending order. Caller holds mu.
func sortedIDs(m map[string]*user.User) []string {
	ids := make([]string, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return ids
}
