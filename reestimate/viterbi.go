/*
Viterbi — Hard-Assignment Re-estimation

Description:

	Turns a single best-path edge-name sequence into updated transition
	and (discrete) emission distributions by counting how often each
	transition and emission fired along that one path, then renormalising
	each source row. A state the path never visits gets no counts at all;
	its row falls back to the uniform distribution rather than being left
	undefined, which is the pseudocount policy spec'd for this algorithm.

Algorithm outline:
 1. Walk bp.Names once:
      KindTrans i j -> transCounts[i][j]++
      KindEmit  i s -> stateCounts[i]++; predictedStates = append(..., i);
                       discrete: emissCounts[i][s]++
      KindStart, KindFinish -> ignored (no counts)
 2. Per source state i: if its transition row has zero total count, assign
    log(1/N) uniformly; else assign log(count/total) per entry (which may
    legitimately be LogZero for an unseen (i,j) pair).
 3. Discrete only: repeat step 2 for the emission row, uniform over M.
 4. StateFreqs[i] = stateCounts[i] / T, real-valued.
 5. InitLog is NOT touched (see the module's open design decision).

Time complexity:   O(T)
Memory complexity: O(N^2 + N*M)
*/
package reestimate

import (
	"math"

	"github.com/katalvlaran/lvlath/hmm"
	"github.com/katalvlaran/lvlath/logspace"
	"github.com/katalvlaran/lvlath/wdag"
)

// Viterbi re-estimates h's transition (and, if discrete, emission)
// distributions from the edge names of a solved best path, and returns
// whether any log-probability changed and the predicted state sequence.
func Viterbi(h *hmm.HMM, bp wdag.BestPath) (changed bool, predictedStates []int, err error) {
	n, m := h.N, h.M
	discrete := h.Discrete()

	transCounts := make([][]int, n)
	for i := range transCounts {
		transCounts[i] = make([]int, n)
	}
	stateCounts := make([]int, n)
	var emissCounts [][]int
	if discrete {
		emissCounts = make([][]int, n)
		for i := range emissCounts {
			emissCounts[i] = make([]int, m)
		}
	}

	for _, name := range bp.Names {
		switch name.Kind {
		case wdag.KindTrans:
			transCounts[name.I][name.J]++
		case wdag.KindEmit:
			stateCounts[name.I]++
			predictedStates = append(predictedStates, name.I)
			if discrete {
				emissCounts[name.I][name.S]++
			}
		case wdag.KindStart, wdag.KindFinish:
			// no counts contributed
		}
	}

	newTrans := make([][]float64, n)
	for i := 0; i < n; i++ {
		newTrans[i] = normalizeCountRow(transCounts[i], n)
	}
	changed = changed || !rowsEqual(h.TransLog, newTrans)
	h.TransLog = newTrans

	if discrete {
		newEmiss := make([][]float64, n)
		for i := 0; i < n; i++ {
			newEmiss[i] = normalizeCountRow(emissCounts[i], m)
		}
		changed = changed || !rowsEqual(h.SymbolEmissLog, newEmiss)
		h.SymbolEmissLog = newEmiss
	}

	h.StateFreqs = make([]float64, n)
	t := float64(h.NumTimepoints())
	for i, c := range stateCounts {
		h.StateFreqs[i] = float64(c) / t
	}

	h.RanViterbi = true

	return changed, predictedStates, nil
}

// normalizeCountRow turns integer counts into a log-space distribution
// row of the given size. A row with zero total count falls back to the
// uniform distribution log(1/size); otherwise each entry is
// log(count/total), which is logspace.LogZero for any unseen count.
func normalizeCountRow(counts []int, size int) []float64 {
	total := 0
	for _, c := range counts {
		total += c
	}

	row := make([]float64, size)
	if total == 0 {
		uniform := -math.Log(float64(size))
		for i := range row {
			row[i] = uniform
		}

		return row
	}

	for i, c := range counts {
		if c == 0 {
			row[i] = logspace.LogZero

			continue
		}
		row[i] = math.Log(float64(c) / float64(total))
	}

	return row
}

// rowsEqual reports whether two equal-shaped log-probability tables are
// bit-for-bit identical. Re-estimation is deterministic, so exact equality
// is the right convergence signal, not a tolerance threshold.
func rowsEqual(a, b [][]float64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if len(a[i]) != len(b[i]) {
			return false
		}
		for j := range a[i] {
			if a[i][j] != b[i][j] {
				return false
			}
		}
	}

	return true
}
