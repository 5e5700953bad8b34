// SPDX-License-Identifier: MIT
package spanning

import "sort"

// Annotate computes every subtree size with a post-order walk from the root
// and rebuilds the selection index. Build calls it; call it again only after
// editing Parent/Children by hand.
func (t *Tree) Annotate() {
	t.Size = make(map[string]int, t.Len())
	t.sizeOf(t.Root)

	t.index = make([]Entry, 0, len(t.Size))
	for id, s := range t.Size {
		t.index = append(t.index, Entry{ID: id, Size: s})
	}
	sort.Slice(t.index, func(i, j int) bool {
		if t.index[i].Size != t.index[j].Size {
			return t.index[i].Size < t.index[j].Size
		}
		return t.index[i].ID < t.index[j].ID
	})
}

// sizeOf records and returns the subtree size of id.
func (t *Tree) sizeOf(id string) int {
	size := 1
	for _, c := range t.Children[id] {
		size += t.sizeOf(c)
	}
	t.Size[id] = size

	return size
}

// Sizes returns all (vertex, size) pairs ordered by size, then ID.
func (t *Tree) Sizes() []Entry {
	return append([]Entry(nil), t.index...)
}
