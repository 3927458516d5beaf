// Package engine is the façade a caller actually uses: it owns an *hmm.HMM
// and drives one training iteration at a time, rebuilding the trellis fresh
// for every call and discarding it once re-estimation completes. Nothing
// here is cheap to call in a tight loop by accident — each call is O(N*T)
// to O(N^2*T) depending on which training method runs, per the module's
// single-trellis-alive-at-a-time resource model.
package engine
