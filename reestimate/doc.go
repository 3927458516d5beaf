// Package reestimate consumes a solved *wdag.Graph and produces updated
// *hmm.HMM parameters: the two maximum-likelihood re-estimation
// algorithms this module supports.
//
// 🚀 What is reestimate?
//
//	Viterbi takes the best path's edge names and turns them into hard
//	counts — how many times each transition and emission fired along the
//	single winning trajectory — then renormalises each row, falling back
//	to a uniform distribution for any state the path never visited.
//
//	BaumWelch takes a solved forward/backward Posterior and, for every
//	edge in the trellis, accumulates its posterior log-mass into the
//	matching parameter cell in log space, then normalises.
//
// ✨ Shared contract:
//   - Both return a changed bool: true iff any updated log-probability
//     differs bit-for-bit from what was there before. Re-estimation is
//     deterministic, so an unchanged bit pattern really does mean the
//     parameters have converged — no tolerance is used or needed.
//   - Only BaumWelch touches InitLog; Viterbi leaves it alone. This
//     asymmetry is intentional (see the module's design notes) and is not
//     "fixed" here.
package reestimate
