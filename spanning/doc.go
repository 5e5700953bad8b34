// SPDX-License-Identifier: MIT
//
// Package spanning derives a single rooted tree from a coaching graph and
// answers "which subtree is closest to k users?".
//
// What
//
//   - Build / FromSnapshot: one tree per weakly connected component, all
//     hung under a synthetic virtual root (RootID). Parent→child mirrors a
//     real coach→coachee edge for every vertex that is not directly under
//     the root.
//   - Annotate: post-order pass writing Size[v] = 1 + Σ Size[children].
//   - SelectApprox: the vertex whose subtree size is nearest to a target.
//
// Construction
//
//  1. Seeds are users with no coach. All seeds share one BFS queue and are
//     attached directly under the root.
//  2. Every other vertex is attached when first dequeued, under its first
//     recorded coach that is already in the tree. The vertex was discovered
//     from an attached coach, so one always exists; when the first recorded
//     coach is attached this is exactly "first coach", and the parent map can
//     never close a cycle.
//  3. Vertices left over belong to rootless components made only of cycles.
//     In ascending ID order each leftover becomes a local root under the
//     virtual root and its coachees are walked the same way.
//
// The virtual root is the empty string. core rejects empty user IDs, so it
// can never collide with a real user and never needs a record in the store.
//
// Complexity (V = users, E = links)
//
//   - Build:        O(V + E) plus O(V log V) for selector preparation.
//   - Annotate:     O(V), recursion depth ≤ tree height ≤ V+1.
//   - SelectApprox: O(log V) after the sorted index is built.
//
// Errors
//
//   - ErrGraphNil       nil graph or snapshot.
//   - ErrIncomplete     a vertex could not be attached (broken snapshot).
//   - ErrNotAnnotated   SelectApprox before Annotate.
//   - ErrInvalidTarget  SelectApprox(target < 1).
package spanning
