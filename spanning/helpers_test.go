// SPDX-License-Identifier: MIT
package spanning_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/coachgraph/core"
	"github.com/katalvlaran/coachgraph/user"
)

// buildGraph registers ids in order and links pairs in order.
func buildGraph(t testing.TB, ids []string, pairs [][2]string) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for _, id := range ids {
		require.NoError(t, g.Register(user.New(id, "test user "+id)))
	}
	for _, p := range pairs {
		require.NoError(t, g.Link(p[0], p[1]))
	}

	return g
}

// exampleGraph is seven users with a cycle V→VI→VII→V hanging off II:
//
//	    I
//	   / \
//	  II  IV
//	 /  \
//	III  V ⇄ VI ⇄ VII (V→VI→VII→V)
func exampleGraph(t testing.TB) *core.Graph {
	return buildGraph(t,
		[]string{"I", "II", "III", "IV", "V", "VI", "VII"},
		[][2]string{
			{"I", "II"}, {"II", "III"}, {"I", "IV"}, {"II", "V"},
			{"V", "VI"}, {"VI", "VII"}, {"VII", "V"},
		})
}
