// Package hmm holds the parameter store for a discrete- or
// continuous-emission Hidden Markov Model: initial, transition and
// emission distributions, kept in log space, plus the observation
// sequence (discrete) or precomputed per-timepoint log-likelihoods
// (continuous).
//
// 🚀 What is hmm?
//
//	HMM owns exactly the numbers a training step reads and rewrites. It
//	never builds a trellis and never runs an algorithm; it only validates
//	what's set on it and reports whether it has enough data to train
//	(HasAllData). The trellis package builds a wdag.Graph from an *HMM,
//	and the reestimate package is the only other code that is allowed to
//	mutate an HMM's tables.
//
// ✨ Key properties:
//   - Setters validate real-probability-space inputs (length, range,
//     sum-to-one) and log-convert them; SetTimeEmiss takes data that
//     arrives already in log space, per the continuous-variant contract.
//   - N >= 1 always; M == 0 selects the continuous variant, M >= 1 the
//     discrete variant — exactly one of SetSymbolEmiss/SetObservations or
//     SetTimeEmiss is valid for a given HMM, enforced by ErrVariantMismatch.
//   - StateFreqs is populated by training and stored real-valued, never
//     logged, matching the boundary convention in spec §6.
package hmm
