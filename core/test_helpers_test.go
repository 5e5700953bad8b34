// SPDX-License-Identifier: MIT
// Package core_test contains test helpers for coachgraph/core.
//
// Purpose:
//   - Provide small, deterministic fixtures for core.Graph.
//   - Keep IDs short and stable so failure output stays readable.

package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/coachgraph/core"
	"github.com/katalvlaran/coachgraph/user"
)

// Common user IDs used across core tests.
const (
	UserEmpty = ""

	UserA = "A"
	UserB = "B"
	UserC = "C"
	UserD = "D"

	UserX = "X"
)

// Common concurrency sizes used across core tests.
const (
	NConcurrentRegisters = 200
	NReaders             = 50
)

// NewGraphWith returns a graph with one registered user per id.
func NewGraphWith(t testing.TB, ids ...string) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for _, id := range ids {
		require.NoError(t, g.Register(user.New(id, "user "+id)), "Register(%s)", id)
	}

	return g
}

// MustLink links every consecutive (coach, coachee) pair in pairs.
func MustLink(t testing.TB, g *core.Graph, pairs ...[2]string) {
	t.Helper()
	for _, p := range pairs {
		require.NoError(t, g.Link(p[0], p[1]), "Link(%s,%s)", p[0], p[1])
	}
}
