// SPDX-License-Identifier: MIT
//
// This file declares Graph, GraphOption, Snapshot, sentinel errors,
// and the NewGraph constructor.
package core

import (
	"errors"
	"sync"

	"github.com/katalvlaran/coachgraph/user"
)

// Sentinel errors for core graph operations.
var (
	// ErrNilUser indicates Register was called with a nil user.
	ErrNilUser = errors.New("core: user is nil")

	// ErrEmptyUserID indicates that the provided user has an empty ID.
	ErrEmptyUserID = errors.New("core: user ID is empty")

	// ErrDuplicateVertex indicates a user with the same ID is already registered.
	ErrDuplicateVertex = errors.New("core: user already registered")

	// ErrUnknownVertex indicates an operation referenced an unregistered user.
	ErrUnknownVertex = errors.New("core: user not registered")

	// ErrSelfReference indicates a user was linked as their own coach.
	ErrSelfReference = errors.New("core: user cannot coach themselves")

	// ErrDuplicateLink indicates a repeated coach→coachee pair when strict links are enabled.
	ErrDuplicateLink = errors.New("core: coaching relationship already exists")
)

// GraphOption configures a Graph before creation.
type GraphOption func(g *Graph)

// WithStrictLinks makes a repeated Link(coach, coachee) fail with
// ErrDuplicateLink instead of being a silent no-op.
func WithStrictLinks() GraphOption {
	return func(g *Graph) { g.strictLinks = true }
}

// WithCapacity pre-sizes the internal maps for n users.
func WithCapacity(n int) GraphOption {
	return func(g *Graph) {
		if n > 0 {
			g.capHint = n
		}
	}
}

// Graph is the coaching graph store.
//
// mu guards every field below it. users maps ID → record; coachees and
// coaches are the two directions of the same edge set, each kept in
// insertion order; linked mirrors coachees as a set for O(1) duplicate checks.
type Graph struct {
	mu sync.RWMutex

	// Configuration flags
	strictLinks bool // reject repeated links
	capHint     int  // initial map capacity

	// Storage
	users    map[string]*user.User
	coachees map[string][]string            // coach → coachees, insertion order
	coaches  map[string][]string            // coachee → coaches, insertion order
	linked   map[string]map[string]struct{} // coach → set(coachee)
	links    int                            // number of distinct edges
}

// NewGraph creates an empty Graph.
// By default repeated links are idempotent no-ops.
// Complexity: O(1)
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{}
	for _, opt := range opts {
		opt(g)
	}
	g.users = make(map[string]*user.User, g.capHint)
	g.coachees = make(map[string][]string, g.capHint)
	g.coaches = make(map[string][]string, g.capHint)
	g.linked = make(map[string]map[string]struct{}, g.capHint)

	return g
}

// Snapshot is a read-only, point-in-time copy of the graph topology.
//
// IDs is sorted ascending. Coachees and Coaches hold an entry for every ID
// (possibly empty) and preserve the store's insertion order.
type Snapshot struct {
	IDs      []string
	Coachees map[string][]string
	Coaches  map[string][]string
}

// Has reports whether id is a vertex of the snapshot.
func (s *Snapshot) Has(id string) bool {
	_, ok := s.Coaches[id]

	return ok
}

// Len returns the number of vertices in the snapshot.
func (s *Snapshot) Len() int { return len(s.IDs) }
