// Package logspace provides the single numerical primitive every other
// package in this module builds on: a numerically stable addition of two
// probabilities stored as natural logarithms.
//
// 🚀 What is logspace?
//
//	Probabilities in an HMM trellis are chained by multiplication across
//	hundreds of timepoints; done in real space they underflow to zero long
//	before a sequence ends. Keeping everything as a natural log and summing
//	via LnSum instead of multiplying raw probabilities avoids that entirely.
//
// ✨ Key features:
//   - LnSum     — stable log(exp(a)+exp(b)), the only addition primitive used
//   - LogZero   — a finite sentinel standing in for -Inf, safe to add and compare
//   - IsLogZero — robust comparison against the sentinel after repeated sums
//
// Everything here is a pure function: no allocation, no shared state.
package logspace
