// SPDX-License-Identifier: MIT
//
// Package core provides the in-memory coaching graph: a store of users and
// the directed coach→coachee relationships between them.
//
// The Graph G = (V,E) keeps:
//
//   - V: registered users, keyed by their immutable ID.
//   - E: coaching edges, stored twice so both directions are O(1):
//     coachees[coach] (who a coach supervises) and coaches[coachee]
//     (who supervises a coachee).
//
// Both relations are insertion-ordered slices. Order is part of the
// contract: downstream algorithms pick "the first recorded coach" of a user,
// so the same sequence of Register/Link calls always yields the same result.
//
// Invariants enforced on mutation:
//
//   - every edge endpoint is a registered user;
//   - no self-loops (coach != coachee);
//   - IDs are unique; re-registering an ID is rejected;
//   - coachee ∈ coachees[coach] ⇔ coach ∈ coaches[coachee].
//
// Cycles and multiple coaches per user are allowed, so G is a general
// directed graph rather than a forest.
//
// Core Methods:
//
//	// User lifecycle
//	Register(u *user.User) error               // O(1)
//	HasUser(id string) bool                    // O(1)
//	User(id string) (*user.User, error)        // O(1)
//	Users() []*user.User                       // O(V·log V), sorted by ID
//
//	// Coaching relationships
//	Link(coachID, coacheeID string) error      // O(1)
//	Coachees(id string) ([]string, error)      // O(d), insertion order
//	Coaches(id string) ([]string, error)       // O(d), insertion order
//
//	// Versions
//	Version(id string) (string, bool, error)   // O(1)
//	SetVersions(ids []string, v string) error  // O(k), all-or-nothing
//
//	// Snapshots
//	Snapshot() *Snapshot                       // O(V+E) consistent copy
//	Clone() *Graph                             // O(V+E) deep copy
//
// Concurrency: a single sync.RWMutex guards the whole store. Algorithms
// read one Snapshot and write back through one SetVersions batch, so every
// infection observes a single point-in-time view of the relationships.
//
// Errors:
//
//	ErrNilUser         – Register(nil)
//	ErrEmptyUserID     – user with zero-length ID
//	ErrDuplicateVertex – ID already registered
//	ErrUnknownVertex   – operation references an unregistered ID
//	ErrSelfReference   – Link(x, x)
//	ErrDuplicateLink   – repeated Link under WithStrictLinks
package core
