package reestimate_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/lvlath/hmm"
	"github.com/katalvlaran/lvlath/reestimate"
	"github.com/katalvlaran/lvlath/trellis"
)

func solve(t *testing.T, h *hmm.HMM) (changed bool, bits float64) {
	t.Helper()
	g, err := trellis.ToWDAG(h)
	if err != nil {
		t.Fatal(err)
	}
	post, err := g.FindPosteriorProbs()
	if err != nil {
		t.Fatal(err)
	}
	changed, bits, err = reestimate.BaumWelch(h, g, post)
	if err != nil {
		t.Fatal(err)
	}

	return changed, bits
}

func TestBaumWelch_PreservesStochasticity(t *testing.T) {
	h := fairBiasedCoin(t)
	solve(t, h)

	rowSumsToOne(t, h.InitLog)
	for _, row := range h.TransLog {
		rowSumsToOne(t, row)
	}
	for _, row := range h.SymbolEmissLog {
		rowSumsToOne(t, row)
	}
}

func TestBaumWelch_StateFreqsIsARealDistribution(t *testing.T) {
	h := fairBiasedCoin(t)
	solve(t, h)

	sum := 0.0
	for i, f := range h.StateFreqs {
		if f < -1e-9 {
			t.Errorf("StateFreqs[%d]=%v; want >= 0", i, f)
		}
		sum += f
	}
	if math.Abs(sum-1) > 1e-9 {
		t.Errorf("StateFreqs sums to %v; want 1", sum)
	}
}

func TestBaumWelch_ConvergesToFixedPoint(t *testing.T) {
	h := fairBiasedCoin(t)

	var lastBits float64
	for iter := 0; iter < 50; iter++ {
		changed, bits := solve(t, h)
		if !changed {
			return
		}
		if iter > 0 && bits < lastBits-1e-9 {
			t.Fatalf("iteration %d: log-likelihood decreased %v -> %v", iter, lastBits, bits)
		}
		lastBits = bits
	}
	t.Fatal("Baum-Welch did not converge within 50 iterations")
}

func TestBaumWelch_IdempotentAtConvergence(t *testing.T) {
	h := fairBiasedCoin(t)
	for i := 0; i < 50; i++ {
		if changed, _ := solve(t, h); !changed {
			break
		}
	}

	changed, _ := solve(t, h)
	if changed {
		t.Fatal("re-running Baum-Welch at a fixed point reported a change")
	}
}

func TestBaumWelch_ContinuousShiftInvariance(t *testing.T) {
	build := func(shift float64) *hmm.HMM {
		h, _ := hmm.New(2, 0)
		_ = h.SetInit([]float64{0.5, 0.5})
		_ = h.SetTrans([][]float64{{0.6, 0.4}, {0.3, 0.7}})
		_ = h.SetTimeEmiss([][]float64{
			{-1.0 + shift, -2.0 + shift},
			{-0.5 + shift, -3.0 + shift},
			{-2.0 + shift, -0.2 + shift},
		})

		return h
	}

	h1 := build(0)
	h2 := build(37.5) // per-row shifts cancel in ToWDAG's row-max normalisation

	_, bits1 := solve(t, h1)
	_, bits2 := solve(t, h2)

	if math.Abs(bits1-bits2) > 1e-9 {
		t.Errorf("log-likelihood not shift invariant: %v vs %v", bits1, bits2)
	}
	for i := range h1.TransLog {
		for j := range h1.TransLog[i] {
			if math.Abs(h1.TransLog[i][j]-h2.TransLog[i][j]) > 1e-9 {
				t.Errorf("TransLog[%d][%d] differs under shift: %v vs %v", i, j, h1.TransLog[i][j], h2.TransLog[i][j])
			}
		}
	}
}

func TestBaumWelch_PseudocountFallbackWhenStateUnreachable(t *testing.T) {
	h, _ := hmm.New(2, 2)
	_ = h.SetInit([]float64{1.0, 0.0})
	_ = h.SetTrans([][]float64{{1, 0}, {0, 1}})
	_ = h.SetSymbolEmiss([][]float64{{1.0, 0.0}, {0.0, 1.0}})
	_ = h.SetObservations([]int{0, 0, 0})

	solve(t, h)

	// state 1 receives no posterior mass at all (init forbids it, and the
	// absorbing transition table can never reach it from state 0); its
	// rows must fall back to uniform rather than carry NaN or all-LogZero.
	want := -math.Log(2)
	for _, logp := range h.TransLog[1] {
		if math.Abs(logp-want) > 1e-9 {
			t.Errorf("TransLog[1]=%v; want uniform %v", h.TransLog[1], want)
		}
	}
	for _, logp := range h.SymbolEmissLog[1] {
		if math.Abs(logp-want) > 1e-9 {
			t.Errorf("SymbolEmissLog[1]=%v; want uniform %v", h.SymbolEmissLog[1], want)
		}
	}
}
