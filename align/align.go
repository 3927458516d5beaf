/*
TimeEmissionLog — DTW Template Distance as Continuous Log-Likelihood

Description:

	Builds a continuous-emission TimeEmissLog table: for each hidden state
	i, aligns templates[i] against observed with dtw.DTW and sets
	TimeEmissLog[t][i] = -cost, where cost is the local alignment cost
	attributed to observation index t along the warp path. A closer
	template match (lower DTW cost) produces a higher (less negative)
	log-likelihood, matching the sign convention hmm.HMM expects.

Algorithm outline:
 1. For each state i, run dtw.DTW(templates[i], observed, opts) with
    ReturnPath forced true and MemoryMode forced FullMatrix (path
    reconstruction needs the full matrix; these overrides take priority
    over whatever opts the caller supplied for those two fields).
 2. Walk the returned path; for each (tplIdx, obsIdx) pair, the local cost
    is |templates[i][tplIdx] - observed[obsIdx]|. Record it at
    costAtT[obsIdx], overwriting any earlier entry for the same obsIdx —
    the path is monotone in obsIdx, so the last write per index is the
    alignment step that settles there.
 3. TimeEmissLog[t][i] = -costAtT[t].

Time complexity:   O(states * len(templates[i]) * len(observed))
Memory complexity: O(len(templates[i]) * len(observed)) per state (DTW's
FullMatrix mode)
*/
package align

import (
	"math"

	"github.com/katalvlaran/lvlath/dtw"
)

// TimeEmissionLog aligns each row of templates against observed via DTW
// and returns a TimeEmissLog table shaped [len(observed)][len(templates)],
// suitable for hmm.HMM.SetTimeEmiss.
func TimeEmissionLog(templates [][]float64, observed []float64, opts dtw.Options) ([][]float64, error) {
	n := len(templates)
	t := len(observed)

	opts.ReturnPath = true
	opts.MemoryMode = dtw.FullMatrix

	out := make([][]float64, t)
	for row := range out {
		out[row] = make([]float64, n)
	}

	for i, template := range templates {
		_, path, err := dtw.DTW(template, observed, &opts)
		if err != nil {
			return nil, err
		}

		costAtT := make([]float64, t)
		for _, c := range path {
			costAtT[c.J] = math.Abs(template[c.I] - observed[c.J])
		}
		for tIdx := 0; tIdx < t; tIdx++ {
			out[tIdx][i] = -costAtT[tIdx]
		}
	}

	return out, nil
}
