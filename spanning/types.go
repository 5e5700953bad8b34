// SPDX-License-Identifier: MIT
package spanning

import "errors"

// RootID identifies the virtual root. It lies outside the user ID space.
const RootID = ""

// Sentinel errors for spanning-tree construction and selection.
var (
	// ErrGraphNil is returned if a nil graph or snapshot is passed.
	ErrGraphNil = errors.New("spanning: graph is nil")

	// ErrIncomplete indicates some vertex has no path to the virtual root.
	ErrIncomplete = errors.New("spanning: tree does not cover every vertex")

	// ErrNotAnnotated is returned when sizes are requested before Annotate.
	ErrNotAnnotated = errors.New("spanning: subtree sizes not annotated")

	// ErrInvalidTarget is returned for a selection target below one.
	ErrInvalidTarget = errors.New("spanning: target size must be at least 1")
)

// Tree is a rooted spanning tree over a coaching graph snapshot.
type Tree struct {
	// Root is always RootID.
	Root string

	// Parent maps every real vertex to its single tree parent.
	Parent map[string]string

	// Children is the inverse of Parent, in attachment order.
	Children map[string][]string

	// Size holds subtree sizes after Annotate, including the root.
	Size map[string]int

	// Order lists real vertices in attachment order.
	Order []string

	index []Entry // sorted by (Size, ID); built by Annotate
}

// Entry pairs a vertex with its subtree size.
type Entry struct {
	ID   string
	Size int
}

// Len returns the number of vertices in the tree, virtual root included.
func (t *Tree) Len() int { return len(t.Parent) + 1 }

// Subtree returns id and all of its tree descendants in BFS order.
// Only Children is followed, never the original coaching edges.
func (t *Tree) Subtree(id string) []string {
	if id != t.Root {
		if _, ok := t.Parent[id]; !ok {
			return nil
		}
	}
	out := []string{id}
	for i := 0; i < len(out); i++ {
		out = append(out, t.Children[out[i]]...)
	}

	return out
}
