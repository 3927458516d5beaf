// Package align adapts github.com/katalvlaran/lvlath/dtw into a
// convenience constructor for continuous-emission HMMs: given a reference
// template series per hidden state and one observed series, it returns a
// TimeEmissLog table ready for hmm.HMM.SetTimeEmiss.
//
// This is template-distance, not density estimation: each state's
// log-likelihood at time t is the negative of its DTW alignment cost to
// the observation at t, not a fitted probability density. Nothing in
// trellis.ToWDAG calls this package; a caller who already has
// log-likelihoods of its own has no reason to.
package align
