// SPDX-License-Identifier: MIT
package spanning

import (
	"fmt"
	"sort"
)

// SelectApprox returns the vertex whose subtree size is closest to target.
//
// Rules:
//   - an exact size match wins (the virtual root included);
//   - otherwise the nearest size below and the nearest size above compete on
//     absolute distance; on a tie the smaller subtree wins, so a rollout
//     never overshoots when undershooting is equally close;
//   - a target larger than every subtree yields the virtual root;
//   - a target smaller than every subtree yields the smallest one.
//
// Among equal sizes the lowest ID is returned for an exact match or an
// above candidate, and the highest ID for a below candidate.
//
// Complexity: O(log V) binary search over the index built by Annotate.
func (t *Tree) SelectApprox(target int) (Entry, error) {
	if target < 1 {
		return Entry{}, fmt.Errorf("%w: got %d", ErrInvalidTarget, target)
	}
	if len(t.index) == 0 {
		return Entry{}, ErrNotAnnotated
	}

	// i is the first entry with Size >= target.
	i := sort.Search(len(t.index), func(k int) bool { return t.index[k].Size >= target })
	switch {
	case i == len(t.index):
		return t.index[len(t.index)-1], nil
	case t.index[i].Size == target, i == 0:
		return t.index[i], nil
	}

	below, above := t.index[i-1], t.index[i]
	if above.Size-target < target-below.Size {
		return above, nil
	}

	return below, nil
}
