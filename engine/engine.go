/*
Engine — Train-One-Iteration Façade

Description:

	Wraps an *hmm.HMM and exposes the two training methods the rest of this
	module builds toward: one Viterbi (hard re-estimation) step and one
	Baum-Welch (soft re-estimation) step. Each call assembles its own
	trellis via trellis.ToWDAG, solves it, re-estimates, and lets the
	trellis go — callers loop externally until changed comes back false.

Algorithm outline:
 1. Assert e.HMM.HasAllData(); refuse ErrMissingData otherwise.
 2. Build g, _ := trellis.ToWDAG(e.HMM).
 3. ViterbiTraining: bp, _ := g.FindBestPath(); reestimate.Viterbi(e.HMM, bp).
    BaumWelchTraining: post, _ := g.FindPosteriorProbs();
    reestimate.BaumWelch(e.HMM, g, post).
 4. Return whatever the re-estimator returned, unwrapped.
*/
package engine

import (
	"github.com/katalvlaran/lvlath/hmm"
	"github.com/katalvlaran/lvlath/reestimate"
	"github.com/katalvlaran/lvlath/trellis"
)

// Engine trains a single *hmm.HMM one iteration at a time. The zero value
// is not usable; construct with New.
type Engine struct {
	HMM *hmm.HMM
}

// New wraps h in an Engine. h must eventually satisfy HasAllData before
// either training method is called.
func New(h *hmm.HMM) *Engine {
	return &Engine{HMM: h}
}

// ViterbiTraining runs one hard-assignment re-estimation pass: decode the
// single best hidden-state path, then recount transitions and (discrete)
// emissions from it. InitLog is left untouched.
func (e *Engine) ViterbiTraining() (changed bool, predictedStates []int, err error) {
	if !e.HMM.HasAllData() {
		return false, nil, hmm.ErrMissingData
	}

	g, err := trellis.ToWDAG(e.HMM)
	if err != nil {
		return false, nil, err
	}

	bp, err := g.FindBestPath()
	if err != nil {
		return false, nil, err
	}

	return reestimate.Viterbi(e.HMM, bp)
}

// BaumWelchTraining runs one soft-assignment re-estimation pass: solve the
// forward/backward posterior over the full trellis, then accumulate every
// edge's posterior mass into init, transition, and (discrete) emission.
func (e *Engine) BaumWelchTraining() (changed bool, logLikelihoodBits float64, err error) {
	if !e.HMM.HasAllData() {
		return false, 0, hmm.ErrMissingData
	}

	g, err := trellis.ToWDAG(e.HMM)
	if err != nil {
		return false, 0, err
	}

	post, err := g.FindPosteriorProbs()
	if err != nil {
		return false, 0, err
	}

	return reestimate.BaumWelch(e.HMM, g, post)
}
