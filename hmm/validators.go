package hmm

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvlath/logspace"
)

// probSumEpsilon is the tolerance a real-valued probability vector's sum
// must fall within of 1.0 to be accepted.
const probSumEpsilon = 1e-6

// validateDistribution checks that probs has the expected length, every
// entry lies in [0,1], and the entries sum to 1 within probSumEpsilon.
func validateDistribution(probs []float64, wantLen int) error {
	if len(probs) != wantLen {
		return fmt.Errorf("hmm: want length %d, got %d: %w", wantLen, len(probs), ErrDimensionMismatch)
	}

	sum := 0.0
	for _, p := range probs {
		if p < 0 || p > 1 {
			return fmt.Errorf("hmm: entry %v outside [0,1]: %w", p, ErrNotAProbability)
		}
		sum += p
	}
	if math.Abs(sum-1) > probSumEpsilon {
		return fmt.Errorf("hmm: row sums to %v, want 1: %w", sum, ErrNotAProbability)
	}

	return nil
}

// logRow converts a validated real-probability row to log space in place
// into a fresh slice.
func logRow(probs []float64) []float64 {
	out := make([]float64, len(probs))
	for i, p := range probs {
		if p == 0 {
			out[i] = logspace.LogZero

			continue
		}
		out[i] = math.Log(p)
	}

	return out
}

// SetInit validates probs as a length-N distribution and stores its log.
func (h *HMM) SetInit(probs []float64) error {
	if err := validateDistribution(probs, h.N); err != nil {
		return err
	}
	h.InitLog = logRow(probs)
	h.hasInit = true

	return nil
}

// SetTrans validates rows as N distributions of length N (trans[i][j] =
// P(state j | state i)) and stores their logs.
func (h *HMM) SetTrans(rows [][]float64) error {
	if len(rows) != h.N {
		return fmt.Errorf("hmm: want %d transition rows, got %d: %w", h.N, len(rows), ErrDimensionMismatch)
	}

	logged := make([][]float64, h.N)
	for i, row := range rows {
		if err := validateDistribution(row, h.N); err != nil {
			return err
		}
		logged[i] = logRow(row)
	}
	h.TransLog = logged
	h.hasTrans = true

	return nil
}

// SetSymbolEmiss validates rows as N distributions of length M (discrete
// emission probabilities) and stores their logs. Discrete HMMs only.
func (h *HMM) SetSymbolEmiss(rows [][]float64) error {
	if !h.Discrete() {
		return ErrVariantMismatch
	}
	if len(rows) != h.N {
		return fmt.Errorf("hmm: want %d emission rows, got %d: %w", h.N, len(rows), ErrDimensionMismatch)
	}

	logged := make([][]float64, h.N)
	for i, row := range rows {
		if err := validateDistribution(row, h.M); err != nil {
			return err
		}
		logged[i] = logRow(row)
	}
	h.SymbolEmissLog = logged
	h.hasSymbolEmiss = true

	return nil
}

// SetObservations validates obs as symbols in [0, M) and stores them.
// Discrete HMMs only.
func (h *HMM) SetObservations(obs []int) error {
	if !h.Discrete() {
		return ErrVariantMismatch
	}
	for _, o := range obs {
		if o < 0 || o >= h.M {
			return fmt.Errorf("hmm: symbol %d outside [0,%d): %w", o, h.M, ErrObservationOutOfRange)
		}
	}
	h.Observations = append([]int(nil), obs...)
	h.hasObservations = true

	return nil
}

// SetTimeEmiss validates rows as T x N finite log-likelihoods and stores
// them verbatim (already in log space, per the continuous-variant
// contract). Continuous HMMs only.
func (h *HMM) SetTimeEmiss(rows [][]float64) error {
	if h.Discrete() {
		return ErrVariantMismatch
	}

	logged := make([][]float64, len(rows))
	for t, row := range rows {
		if len(row) != h.N {
			return fmt.Errorf("hmm: time emission row %d has length %d, want %d: %w", t, len(row), h.N, ErrDimensionMismatch)
		}
		rowCopy := make([]float64, h.N)
		for i, v := range row {
			if math.IsNaN(v) || math.IsInf(v, 0) || logspace.IsLogZero(v) {
				return fmt.Errorf("hmm: time emission [%d][%d]=%v: %w", t, i, v, ErrLogZeroEmission)
			}
			rowCopy[i] = v
		}
		logged[t] = rowCopy
	}
	h.TimeEmissLog = logged
	h.hasTimeEmiss = true

	return nil
}
