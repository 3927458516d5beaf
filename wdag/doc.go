// Package wdag implements a weighted directed acyclic graph engine
// specialised for HMM trellises: an arena of nodes with weighted, named
// in-edges, a required start and end node, and the two log-space solvers
// every HMM training algorithm is built on.
//
// 🚀 What is wdag?
//
//	A trellis is a DAG whose paths are in bijection with hidden-state
//	sequences. wdag stores that DAG compactly — nodes addressed by a plain
//	integer index, edges carrying only a parent index, a tagged edge name,
//	and a log-weight — and exposes two solvers:
//
//	  • FindBestPath        — longest-weight (max-plus) path: Viterbi decoding.
//	  • FindPosteriorProbs  — forward/backward (log-sum) message passing:
//	                          the core of Baum–Welch re-estimation.
//
// ✨ Key properties:
//   - Topologically ordered by construction: every parent index is smaller
//     than its child's, so AddEdge itself enforces acyclicity.
//   - Edge names are a tagged variant (EdgeKind + integer fields), not a
//     parsed string — re-estimators switch on Kind directly.
//   - All arithmetic routes through logspace.LnSum; LogZero-weighted edges
//     are permitted and simply never win a max or contribute to a sum.
//
// A Graph is built fresh for every training call by the trellis package and
// discarded once solved; it is never shared across goroutines and carries
// no locking.
package wdag
