package trellis_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/lvlath/hmm"
	"github.com/katalvlaran/lvlath/trellis"
)

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

func TestToWDAG_NodeCount(t *testing.T) {
	h := fairBiasedCoin(t)
	g, err := trellis.ToWDAG(h)
	if err != nil {
		t.Fatal(err)
	}
	want := 2*h.N*h.NumTimepoints() + 2
	if g.NumNodes() != want {
		t.Errorf("NumNodes=%d; want %d", g.NumNodes(), want)
	}
}

func TestToWDAG_EmptySequence(t *testing.T) {
	h, _ := hmm.New(2, 2)
	_ = h.SetInit([]float64{0.5, 0.5})
	_ = h.SetTrans([][]float64{{0.9, 0.1}, {0.1, 0.9}})
	_ = h.SetSymbolEmiss([][]float64{{0.5, 0.5}, {0.1, 0.9}})
	_ = h.SetObservations(nil)

	if _, err := trellis.ToWDAG(h); err != trellis.ErrEmptySequence {
		t.Errorf("err=%v; want ErrEmptySequence", err)
	}
}

func TestToWDAG_DegenerateStartHasAPath(t *testing.T) {
	h, _ := hmm.New(2, 2)
	_ = h.SetInit([]float64{1.0, 0.0})
	_ = h.SetTrans([][]float64{{0.9, 0.1}, {0.1, 0.9}})
	_ = h.SetSymbolEmiss([][]float64{{0.5, 0.5}, {0.1, 0.9}})
	_ = h.SetObservations([]int{0, 1})

	g, err := trellis.ToWDAG(h)
	if err != nil {
		t.Fatal(err)
	}
	bp, err := g.FindBestPath()
	if err != nil {
		t.Fatalf("degenerate init_log[1]=LogZero must not raise NoPath: %v", err)
	}
	if len(bp.Names) == 0 {
		t.Fatal("expected a non-empty best path")
	}
}

func TestToWDAG_ForbiddenTrajectoryIsNoPath(t *testing.T) {
	h, _ := hmm.New(2, 2)
	_ = h.SetInit([]float64{0.5, 0.5})
	_ = h.SetTrans([][]float64{{1, 0}, {0, 1}}) // absorbing states
	// state 0 can never emit symbol 1; observation forces state 0 to see a
	// symbol it assigns zero probability to after absorption.
	_ = h.SetSymbolEmiss([][]float64{{1.0, 0.0}, {0.0, 1.0}})
	_ = h.SetObservations([]int{0, 1})

	g, err := trellis.ToWDAG(h)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := g.FindBestPath(); err == nil {
		t.Fatal("expected NoPath: state 0 is absorbing and cannot emit symbol 1")
	}
}

func TestToWDAG_ContinuousRowMaxNormalisation(t *testing.T) {
	h, _ := hmm.New(2, 0)
	_ = h.SetInit([]float64{0.5, 0.5})
	_ = h.SetTrans([][]float64{{0.5, 0.5}, {0.5, 0.5}})
	_ = h.SetTimeEmiss([][]float64{{-1.0, -2.0}, {-0.5, -3.0}})

	g, err := trellis.ToWDAG(h)
	if err != nil {
		t.Fatal(err)
	}
	post, err := g.FindPosteriorProbs()
	if err != nil {
		t.Fatal(err)
	}
	if math.IsNaN(post.Alpha()) || math.IsInf(post.Alpha(), 0) {
		t.Fatalf("alpha=%v; want finite", post.Alpha())
	}
}
