// Package builder provides deterministic synthetic sequence generators used
// to feed continuous-emission HMMs (directly, or via the align package's DTW
// template distance) without depending on a real dataset.
//
// The package offers the following key components:
//
//   - Configuration primitives:
//     – BuilderOption:   a function that mutates builderConfig before use.
//     – builderConfig:   holds an optional shared RNG plus the amplitude,
//     frequency, trend, and noise knobs the generators read.
//   - Sequence generators:
//     – BuildPulse:       rectangular or triangular pulse train, optional
//     linear trend and Gaussian noise.
//     – BuildAudioChirp:  linear frequency sweep (chirp), same trend/noise
//     policy as BuildPulse.
//     – BuildOHLCSeries:  open/high/low/close arrays from a discrete-time
//     geometric Brownian motion with intraday steps.
//
// Guarantees:
//
//   - Strict determinism per (n, seed, options): a fixed seed and options
//     reproduce the same sequence, whether the RNG comes from WithSeed,
//     WithRand, or the call's own seed argument.
//   - No panics from the generators themselves; BuilderOption constructors
//     panic on parameter values that can never produce a sequence (A≤0,
//     f0≤0, sigma<0), per the package's fail-fast-at-construction rule.
//   - O(n) time and memory for BuildPulse/BuildAudioChirp, O(days*steps) for
//     BuildOHLCSeries, with steps a small fixed constant.
//
// See individual function documentation for detailed contracts, panic
// conditions, and parameter descriptions.
package builder
