package align_test

import (
	"testing"

	"github.com/katalvlaran/lvlath/align"
	"github.com/katalvlaran/lvlath/dtw"
	"github.com/katalvlaran/lvlath/hmm"
)

func TestTimeEmissionLog_ShapeAndSign(t *testing.T) {
	templates := [][]float64{
		{0, 0, 0, 0},
		{5, 5, 5, 5},
	}
	observed := []float64{0.1, 0.2, 0.1, 0.3}

	got, err := align.TimeEmissionLog(templates, observed, dtw.DefaultOptions())
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != len(observed) {
		t.Fatalf("len(got)=%d; want %d", len(got), len(observed))
	}
	for _, row := range got {
		if len(row) != len(templates) {
			t.Fatalf("row width=%d; want %d", len(row), len(templates))
		}
	}

	// the near-zero template should score higher (less negative) than the
	// far-away template at every timepoint, since observed is close to 0.
	for tIdx, row := range got {
		if row[0] <= row[1] {
			t.Errorf("t=%d: expected template 0 to score higher than template 1, got %v vs %v", tIdx, row[0], row[1])
		}
	}
}

func TestTimeEmissionLog_FeedsAContinuousHMM(t *testing.T) {
	templates := [][]float64{{0, 0, 0}, {9, 9, 9}}
	observed := []float64{0.0, 0.2, 9.1}

	table, err := align.TimeEmissionLog(templates, observed, dtw.DefaultOptions())
	if err != nil {
		t.Fatal(err)
	}

	h, _ := hmm.New(2, 0)
	if err := h.SetInit([]float64{0.5, 0.5}); err != nil {
		t.Fatal(err)
	}
	if err := h.SetTrans([][]float64{{0.9, 0.1}, {0.1, 0.9}}); err != nil {
		t.Fatal(err)
	}
	if err := h.SetTimeEmiss(table); err != nil {
		t.Fatal(err)
	}
	if !h.HasAllData() {
		t.Fatal("HMM should be trainable after loading DTW-derived emissions")
	}
}

func TestTimeEmissionLog_PropagatesDTWErrors(t *testing.T) {
	_, err := align.TimeEmissionLog([][]float64{{}}, []float64{1, 2}, dtw.DefaultOptions())
	if err == nil {
		t.Fatal("expected an error for an empty template series")
	}
}
