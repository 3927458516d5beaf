// Package trellis unrolls an *hmm.HMM and its observations into a
// *wdag.Graph: the time-unrolled DAG whose paths are in bijection with
// hidden-state sequences.
//
// 🚀 What is trellis?
//
//	ToWDAG is the only function here. For T timepoints and N states it
//	builds exactly 2*N*T + 2 nodes — a start node, T pairs of "state
//	reached" / "symbol emitted" layers of N nodes each, and an end node —
//	and wires them with the four edge kinds wdag knows about (S, T, E, F).
//	Continuous HMMs have each timepoint's emission row normalised by its
//	row-max before use, which cancels out of every posterior and best-path
//	computation (a per-row additive constant) but keeps the trellis's raw
//	log-weights close to zero instead of drifting with the caller's
//	arbitrary likelihood scale.
//
// The returned graph is meant to be solved once (FindBestPath or
// FindPosteriorProbs) and discarded; ToWDAG itself never mutates the HMM.
package trellis
