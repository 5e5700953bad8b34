// Package coachgraph rolls software versions out across a coaching network
// so that people who work together see the same version of a product.
//
// Users are vertices; "A coaches B" is a directed edge. Two rollout modes
// are offered:
//
//   - Total infection: a version reaches the whole group connected to a
//     start user, following coaching relationships in both directions.
//   - Limited infection: a version reaches one coaching subtree whose size is
//     as close as possible to a requested count, so no coach/coachee pair
//     inside the chosen group is split.
//
// Packages:
//
//	user/           User record and the uuid-backed Factory
//	core/           thread-safe Graph store: Register, Link, Snapshot, SetVersions
//	spanning/       spanning tree under a virtual root, subtree sizes, SelectApprox
//	infection/      Total and Limited, with slog logging and a metrics Recorder
//	metrics/        Prometheus collector implementing infection.Recorder
//	fixture/        YAML/JSON graph descriptions: load, build, save
//	cmd/coachgraph/ cobra CLI over fixtures
//	examples/       runnable rollout scenarios
//
// Quick ASCII example:
//
//	    I
//	   / \
//	  II  IV          limited(5) → {II, III, V, VI, VII}
//	 /  \
//	III  V → VI → VII → V
//
//	go get github.com/katalvlaran/coachgraph
package coachgraph
