// SPDX-License-Identifier: MIT
// Package: lvlath/builder
//
// sequence_primitives.go - shared defaults and helpers for sequence
// builders (BuildPulse/BuildAudioChirp/BuildOHLCSeries).
package builder

import (
	"math/rand"
)

// Shared defaults (cross-file).
const (
	defAmp        = 1.0 // Default amplitude for Pulse/Chirp A (>0).
	defSigma      = 0.0 // Default Gaussian noise sigma (≥0); 0 disables noise.
	defTrendSlope = 0.0 // Default linear trend increment per sample.
)

// Tiny numeric named constants.
const (
	unitZero  = 0.0 // named zero to avoid magic 0.0
	unitOne   = 1.0 // named one to avoid magic 1.0
	triDouble = 2.0 // factor used in triangular wave: 2*frac-1
	triCenter = 1.0 // center offset used in triangular wave
)

// rngFrom returns cfg.rng if present (a stream shared across calls via
// WithRand, or a fresh stream seeded by WithSeed), else a local *rand.Rand
// seeded by seed.
func rngFrom(cfg builderConfig, seed int64) *rand.Rand {
	if cfg.rng != nil {
		return cfg.rng
	}

	return rand.New(rand.NewSource(seed))
}
