package engine_test

import (
	"errors"
	"math"
	"testing"

	"github.com/katalvlaran/lvlath/engine"
	"github.com/katalvlaran/lvlath/hmm"
	"github.com/katalvlaran/lvlath/wdag"
)

// fairBiasedCoin is the canonical 2-state discrete HMM this module's
// packages all exercise: a fair coin (state 0) and a biased coin (state
// 1), observed for 10 flips.
func fairBiasedCoin(t *testing.T) *hmm.HMM {
	t.Helper()
	h, err := hmm.New(2, 2)
	if err != nil {
		t.Fatal(err)
	}
	if err := h.SetInit([]float64{0.5, 0.5}); err != nil {
		t.Fatal(err)
	}
	if err := h.SetTrans([][]float64{{0.9, 0.1}, {0.1, 0.9}}); err != nil {
		t.Fatal(err)
	}
	if err := h.SetSymbolEmiss([][]float64{{0.5, 0.5}, {0.1, 0.9}}); err != nil {
		t.Fatal(err)
	}
	if err := h.SetObservations([]int{0, 0, 1, 1, 1, 1, 1, 0, 1, 1}); err != nil {
		t.Fatal(err)
	}

	return h
}

// TestS1_ViterbiTrainingProducesAFullLengthPath exercises S1: a standard
// fair/biased coin HMM decodes to one state per observation.
func TestS1_ViterbiTrainingProducesAFullLengthPath(t *testing.T) {
	e := engine.New(fairBiasedCoin(t))
	_, predicted, err := e.ViterbiTraining()
	if err != nil {
		t.Fatal(err)
	}
	if len(predicted) != e.HMM.NumTimepoints() {
		t.Fatalf("len(predicted)=%d; want %d", len(predicted), e.HMM.NumTimepoints())
	}
}

// TestS2_DegenerateInitStillHasAPath exercises S2: init_log[1]=LogZero must
// not make the trellis unsolvable as long as state 0 can explain the data.
func TestS2_DegenerateInitStillHasAPath(t *testing.T) {
	h, _ := hmm.New(2, 2)
	_ = h.SetInit([]float64{1.0, 0.0})
	_ = h.SetTrans([][]float64{{0.9, 0.1}, {0.1, 0.9}})
	_ = h.SetSymbolEmiss([][]float64{{0.5, 0.5}, {0.1, 0.9}})
	_ = h.SetObservations([]int{0, 1})

	e := engine.New(h)
	_, predicted, err := e.ViterbiTraining()
	if err != nil {
		t.Fatalf("degenerate init must not raise NoPath: %v", err)
	}
	if len(predicted) != 2 {
		t.Fatalf("len(predicted)=%d; want 2", len(predicted))
	}
}

// TestS3_ForbiddenTrajectoryIsNoPath exercises S3: an absorbing transition
// table paired with a symbol the absorbed state cannot emit is unsolvable.
func TestS3_ForbiddenTrajectoryIsNoPath(t *testing.T) {
	h, _ := hmm.New(2, 2)
	_ = h.SetInit([]float64{0.5, 0.5})
	_ = h.SetTrans([][]float64{{1, 0}, {0, 1}})
	_ = h.SetSymbolEmiss([][]float64{{1.0, 0.0}, {0.0, 1.0}})
	_ = h.SetObservations([]int{0, 1})

	e := engine.New(h)
	if _, _, err := e.ViterbiTraining(); !errors.Is(err, wdag.ErrNoPath) {
		t.Fatalf("err=%v; want ErrNoPath", err)
	}
}

// TestS4_ContinuousBaumWelchIsShiftInvariant exercises S4: a constant
// per-row shift added to TimeEmissLog must not move the reported
// log-likelihood, since trellis.ToWDAG subtracts each row's max before
// building emission edges.
func TestS4_ContinuousBaumWelchIsShiftInvariant(t *testing.T) {
	build := func(shift float64) *hmm.HMM {
		h, _ := hmm.New(2, 0)
		_ = h.SetInit([]float64{0.5, 0.5})
		_ = h.SetTrans([][]float64{{0.6, 0.4}, {0.3, 0.7}})
		_ = h.SetTimeEmiss([][]float64{
			{-1.0 + shift, -2.0 + shift},
			{-0.5 + shift, -3.0 + shift},
		})

		return h
	}

	e1 := engine.New(build(0))
	e2 := engine.New(build(12.0))

	_, bits1, err := e1.BaumWelchTraining()
	if err != nil {
		t.Fatal(err)
	}
	_, bits2, err := e2.BaumWelchTraining()
	if err != nil {
		t.Fatal(err)
	}

	if math.Abs(bits1-bits2) > 1e-9 {
		t.Errorf("log-likelihood not shift invariant: %v vs %v", bits1, bits2)
	}
}

// TestS5_RepeatedBaumWelchConvergesThenIdempotent exercises S5: iterating
// Baum-Welch must monotonically (non-strictly) increase the
// log-likelihood and eventually report changed=false.
func TestS5_RepeatedBaumWelchConvergesThenIdempotent(t *testing.T) {
	e := engine.New(fairBiasedCoin(t))

	var last float64
	converged := false
	for i := 0; i < 50; i++ {
		changed, bits, err := e.BaumWelchTraining()
		if err != nil {
			t.Fatal(err)
		}
		if i > 0 && bits < last-1e-9 {
			t.Fatalf("iteration %d: log-likelihood decreased %v -> %v", i, last, bits)
		}
		last = bits
		if !changed {
			converged = true

			break
		}
	}
	if !converged {
		t.Fatal("Baum-Welch did not converge within 50 iterations")
	}

	changed, _, err := e.BaumWelchTraining()
	if err != nil {
		t.Fatal(err)
	}
	if changed {
		t.Fatal("re-running Baum-Welch at a fixed point reported a change")
	}
}

// TestS6_UnreachableStateFallsBackToUniform exercises S6: a state that
// receives zero posterior mass across an entire pass must fall back to the
// uniform distribution rather than carry LogZero or NaN forward.
func TestS6_UnreachableStateFallsBackToUniform(t *testing.T) {
	h, _ := hmm.New(2, 2)
	_ = h.SetInit([]float64{1.0, 0.0})
	_ = h.SetTrans([][]float64{{1, 0}, {0, 1}})
	_ = h.SetSymbolEmiss([][]float64{{1.0, 0.0}, {0.0, 1.0}})
	_ = h.SetObservations([]int{0, 0, 0})

	e := engine.New(h)
	if _, _, err := e.BaumWelchTraining(); err != nil {
		t.Fatal(err)
	}

	want := -math.Log(2)
	for _, logp := range h.TransLog[1] {
		if math.Abs(logp-want) > 1e-9 {
			t.Errorf("TransLog[1]=%v; want uniform %v", h.TransLog[1], want)
		}
	}
}

func TestViterbiTraining_RefusesIncompleteHMM(t *testing.T) {
	h, _ := hmm.New(2, 2)
	e := engine.New(h)
	if _, _, err := e.ViterbiTraining(); !errors.Is(err, hmm.ErrMissingData) {
		t.Errorf("err=%v; want ErrMissingData", err)
	}
}

func TestBaumWelchTraining_RefusesIncompleteHMM(t *testing.T) {
	h, _ := hmm.New(2, 2)
	e := engine.New(h)
	if _, _, err := e.BaumWelchTraining(); !errors.Is(err, hmm.ErrMissingData) {
		t.Errorf("err=%v; want ErrMissingData", err)
	}
}
