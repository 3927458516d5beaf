// Package lvlath is a Hidden Markov Model inference and training engine
// built on a generic weighted directed acyclic graph (trellis).
//
// 🚀 What is lvlath?
//
//	An HMM's hidden-state sequence can always be unrolled into a DAG: one
//	path per trajectory, one edge per transition or emission, edge weight
//	= log-probability. Decoding the most likely trajectory, scoring the
//	data's total likelihood, and re-estimating parameters from data are
//	then all instances of two generic graph algorithms — max-plus best
//	path and log-space forward/backward message passing — run over that
//	one DAG shape.
//
// ✨ Why this split?
//
//   - wdag/       — the generic trellis engine: best path, forward/backward
//     posterior, all in log space, knowing nothing about HMMs
//   - hmm/        — the parameter store: discrete or continuous emissions,
//     validated distributions, nothing about graphs
//   - trellis/    — the one function that connects them: unrolls an *hmm.HMM
//     into the *wdag.Graph shape described above
//   - reestimate/ — Viterbi (hard-count) and Baum-Welch (soft-count)
//     re-estimation, each consuming a solved trellis
//   - engine/     — the façade: one HMM, one call per training iteration
//   - align/      — optional: derives continuous emissions from DTW
//     template-distance instead of a fitted density
//   - logspace/   — the shared arithmetic: numerically stable log-sum-exp
//
// Quick ASCII sketch of one timepoint's slice of the trellis:
//
//	A_t[i] --E i s--> B_t[i] --T i j--> A_t+1[j]
//
//	go get github.com/katalvlaran/lvlath
package lvlath
