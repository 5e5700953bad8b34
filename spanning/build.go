// SPDX-License-Identifier: MIT
package spanning

import (
	"fmt"

	"github.com/katalvlaran/coachgraph/core"
)

// builder encapsulates mutable construction state.
type builder struct {
	snap   *core.Snapshot
	tree   *Tree
	queued map[string]bool
	queue  []string
}

// Build snapshots g and returns its annotated spanning tree.
func Build(g *core.Graph) (*Tree, error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	return FromSnapshot(g.Snapshot())
}

// FromSnapshot builds and annotates the spanning tree of s.
// An empty snapshot yields a tree holding only the virtual root.
func FromSnapshot(s *core.Snapshot) (*Tree, error) {
	if s == nil {
		return nil, ErrGraphNil
	}
	n := s.Len()
	b := &builder{
		snap: s,
		tree: &Tree{
			Root:     RootID,
			Parent:   make(map[string]string, n),
			Children: make(map[string][]string, n+1),
			Order:    make([]string, 0, n),
		},
		queued: make(map[string]bool, n),
		queue:  make([]string, 0, n),
	}

	// Pass 1: every coach-less user seeds the same queue.
	for _, id := range s.IDs {
		if len(s.Coaches[id]) == 0 {
			b.enqueue(id)
		}
	}
	b.drain()

	// Pass 2: rootless components, one local root at a time.
	for _, id := range s.IDs {
		if _, ok := b.tree.Parent[id]; ok {
			continue
		}
		b.enqueue(id)
		b.drain()
	}

	if len(b.tree.Parent) != n {
		return nil, fmt.Errorf("%w: %d of %d attached", ErrIncomplete, len(b.tree.Parent), n)
	}
	b.tree.Annotate()

	return b.tree, nil
}

func (b *builder) enqueue(id string) {
	b.queued[id] = true
	b.queue = append(b.queue, id)
}

// drain attaches queued vertices and walks their coachees until the queue empties.
func (b *builder) drain() {
	for len(b.queue) > 0 {
		id := b.queue[0]
		b.queue = b.queue[1:]

		b.attach(id, b.parentOf(id))
		for _, c := range b.snap.Coachees[id] {
			if !b.queued[c] {
				b.enqueue(c)
			}
		}
	}
}

// parentOf picks the first recorded coach already in the tree. A vertex
// with no attached coach is a seed or a local root and hangs off the root.
func (b *builder) parentOf(id string) string {
	for _, coach := range b.snap.Coaches[id] {
		if _, ok := b.tree.Parent[coach]; ok {
			return coach
		}
	}

	return RootID
}

func (b *builder) attach(id, parent string) {
	b.tree.Parent[id] = parent
	b.tree.Children[parent] = append(b.tree.Children[parent], id)
	b.tree.Order = append(b.tree.Order, id)
}
