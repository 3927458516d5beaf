// errors.go — sentinel errors for the wdag package.
//
// Error policy (matches builder/errors.go and matrix/errors.go):
//   • Only sentinel variables are exposed; callers use errors.Is.
//   • Sentinels are never wrapped with formatted strings at definition site.
//   • Validation errors are returned, never panicked.
package wdag

import "errors"

var (
	// ErrBackwardEdge indicates AddEdge was called with parent.id >= child.id,
	// violating the construction-order topological guarantee.
	ErrBackwardEdge = errors.New("wdag: parent id must be smaller than child id")

	// ErrUnknownNode indicates a NodeID outside the graph's current range.
	ErrUnknownNode = errors.New("wdag: unknown node id")

	// ErrNoStart indicates a solver ran before SetStart was called.
	ErrNoStart = errors.New("wdag: start node not set")

	// ErrNoEnd indicates a solver ran before SetEnd was called.
	ErrNoEnd = errors.New("wdag: end node not set")

	// ErrNoPath indicates the best-path weight to the end node is LogZero:
	// the current parameters forbid every trajectory consistent with the
	// observations.
	ErrNoPath = errors.New("wdag: no path of non-zero weight from start to end")

	// ErrNaN indicates a NaN value appeared during solver accumulation.
	// Should be impossible if hmm validated its inputs; surfaced rather
	// than silently propagated.
	ErrNaN = errors.New("wdag: NaN encountered during solve")
)
