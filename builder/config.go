// SPDX-License-Identifier: MIT
// Package: lvlath/builder
//
// config.go — functional options for the sequence generators
// (BuildPulse/BuildAudioChirp/BuildOHLCSeries).
//
// Contract (strict):
//   - Options are functional: type BuilderOption func(*builderConfig).
//   - Option constructors validate and panic on meaningless inputs (lvlath
//     rule: algorithms themselves must not panic, constructors may).
//   - Determinism is explicit: seeding is done via WithSeed or WithRand.
package builder

import "math/rand"

// builderConfig holds the knobs a sequence generator may read. Amplitude,
// frequency, and trend each carry a "was it set" flag rather than relying
// on a zero value, since 0 is a legitimate trend and not a legitimate
// amplitude or frequency.
type builderConfig struct {
	rng *rand.Rand

	amplitude    float64
	hasAmplitude bool

	frequency    float64
	hasFrequency bool

	trendK    float64
	hasTrendK bool

	noiseSigma    float64
	hasNoiseSigma bool
}

// BuilderOption customizes a builderConfig before a sequence is generated.
type BuilderOption func(*builderConfig)

// newBuilderConfig applies opts in order over a zero-value builderConfig.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	var cfg builderConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithRand provides an explicit RNG source, taking priority over the seed
// argument passed directly to a Build* call. Panics on nil.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}

	return func(c *builderConfig) { c.rng = r }
}

// WithSeed creates a new *rand.Rand seeded deterministically and attaches
// it to the config, taking priority over the seed argument passed directly
// to a Build* call.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithAmplitude overrides a sequence generator's amplitude A. Panics if
// A <= 0.
func WithAmplitude(a float64) BuilderOption {
	if a <= 0 {
		panic("builder: WithAmplitude(A<=0)")
	}

	return func(c *builderConfig) { c.amplitude, c.hasAmplitude = a, true }
}

// WithFrequency overrides a sequence generator's base frequency f0 (pulse)
// or start frequency (chirp). Panics if f0 <= 0.
func WithFrequency(f0 float64) BuilderOption {
	if f0 <= 0 {
		panic("builder: WithFrequency(f0<=0)")
	}

	return func(c *builderConfig) { c.frequency, c.hasFrequency = f0, true }
}

// WithTrend overrides the linear trend coefficient k added to every
// sample as k*i. Any real value is accepted, including 0.
func WithTrend(k float64) BuilderOption {
	return func(c *builderConfig) { c.trendK, c.hasTrendK = k, true }
}

// WithNoise overrides the additive Gaussian noise sigma. Panics if
// sigma < 0.
func WithNoise(sigma float64) BuilderOption {
	if sigma < 0 {
		panic("builder: WithNoise(sigma<0)")
	}

	return func(c *builderConfig) { c.noiseSigma, c.hasNoiseSigma = sigma, true }
}
