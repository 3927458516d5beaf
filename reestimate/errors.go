package reestimate

import "errors"

// ErrEdgeCountMismatch indicates Baum-Welch did not see exactly N*T
// emission edges while walking the posterior — a structural invariant of
// every trellis ToWDAG builds. Seeing it means the *wdag.Graph passed in
// was not built by trellis.ToWDAG, or the HMM's dimensions and the
// trellis disagree.
var ErrEdgeCountMismatch = errors.New("reestimate: emission edge count did not match N*T")
