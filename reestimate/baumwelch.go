/*
BaumWelch — Soft-Assignment Re-estimation

Description:

	Walks every edge of a solved trellis and accumulates its posterior
	log-mass into the matching parameter cell — init, transition, or
	(discrete) emission — instead of the single hard count Viterbi uses.
	This is the expectation step of EM restated over the generic WDAG:
	every edge contributes in proportion to how much of the total
	probability mass flows through it.

Algorithm outline:
 1. Start every accumulator cell at logspace.LogZero.
 2. Walk g.EdgesInto(id) for every node id; for each in-edge (parent,
    name, weight):
      posterior = post.EdgePosterior(parent, id, weight) - post.Alpha()
      KindStart i:   newInit[i]        = lnsum(newInit[i], posterior)
      KindTrans i j: newTrans[i][j]    = lnsum(newTrans[i][j], posterior)
      KindEmit  i s: newEmiss[i][s]    = lnsum(newEmiss[i][s], posterior)
                     stateMass[i]      = lnsum(stateMass[i], posterior)
                     emissionEdges++   (discrete only feeds newEmiss)
      KindFinish:    ignored
    stateMass accumulates emission-edge posteriors only (spec §4.6: "E i s
    -> ... always: new_state_freqs[i] = lnsum(..., p)"); transition edges
    feed newTrans but not stateMass.
 3. Require emissionEdges == N*T (ErrEdgeCountMismatch otherwise — the
    graph wasn't built by trellis.ToWDAG for this h).
 4. Normalise: newInit by its own lnsum total; each newTrans/newEmiss row
    by its own row total, falling back to uniform if a row's total is
    LogZero (a state Baum-Welch assigned no mass to this pass).
 5. StateFreqs[i] = exp(stateMass[i]) / T. stateMass already has alpha
    subtracted out per-edge (step 2's posterior term), so exp(stateMass[i])
    is already the expected count gamma_i; subtracting alpha again here
    would scale every StateFreqs entry by exp(-alpha).

Time complexity:   O(V + E)
Memory complexity: O(N + N^2 + N*M)
*/
package reestimate

import (
	"math"

	"github.com/katalvlaran/lvlath/hmm"
	"github.com/katalvlaran/lvlath/logspace"
	"github.com/katalvlaran/lvlath/wdag"
)

// BaumWelch re-estimates h's initial, transition, and (if discrete)
// emission distributions from a solved Posterior over a trellis built for
// h, and returns whether any log-probability changed along with the total
// log-likelihood in bits (log2), a conventional unit for reporting
// convergence.
func BaumWelch(h *hmm.HMM, g *wdag.Graph, post *wdag.Posterior) (changed bool, logLikelihoodBits float64, err error) {
	n, m := h.N, h.M
	discrete := h.Discrete()
	t := h.NumTimepoints()

	newInit := fillLogZero(n)
	newTrans := fillLogZeroRows(n, n)
	var newEmiss [][]float64
	if discrete {
		newEmiss = fillLogZeroRows(n, m)
	}
	stateMass := fillLogZero(n)

	alpha := post.Alpha()
	emissionEdges := 0

	for id := 0; id < g.NumNodes(); id++ {
		for _, e := range g.EdgesInto(wdag.NodeID(id)) {
			p := post.EdgePosterior(e.Parent, wdag.NodeID(id), e.Weight) - alpha

			switch e.Name.Kind {
			case wdag.KindStart:
				newInit[e.Name.I] = logspace.LnSum(newInit[e.Name.I], p)
			case wdag.KindTrans:
				i, j := e.Name.I, e.Name.J
				newTrans[i][j] = logspace.LnSum(newTrans[i][j], p)
			case wdag.KindEmit:
				i := e.Name.I
				stateMass[i] = logspace.LnSum(stateMass[i], p)
				if discrete {
					newEmiss[i][e.Name.S] = logspace.LnSum(newEmiss[i][e.Name.S], p)
				}
				emissionEdges++
			case wdag.KindFinish:
				// zero-weight bookkeeping edge, no parameter to update
			}
		}
	}

	if emissionEdges != n*t {
		return false, 0, ErrEdgeCountMismatch
	}

	// normalizeLogRow's uniform fallback is spec'd for trans/emiss rows
	// only; applying it to newInit too is a harmless superset, since the
	// N start edges always give newInit a non-LogZero total and the
	// fallback branch never actually fires here.
	normalizeLogRow(newInit)
	changed = changed || !floatsEqual(h.InitLog, newInit)
	h.InitLog = newInit

	for i := 0; i < n; i++ {
		normalizeLogRow(newTrans[i])
	}
	changed = changed || !rowsEqual(h.TransLog, newTrans)
	h.TransLog = newTrans

	if discrete {
		for i := 0; i < n; i++ {
			normalizeLogRow(newEmiss[i])
		}
		changed = changed || !rowsEqual(h.SymbolEmissLog, newEmiss)
		h.SymbolEmissLog = newEmiss
	}

	h.StateFreqs = make([]float64, n)
	for i := 0; i < n; i++ {
		// stateMass[i] already had alpha subtracted per-edge above (p is a
		// normalized log-posterior), so exp(stateMass[i]) is already the
		// expected count gamma_i; do not subtract alpha again here.
		h.StateFreqs[i] = math.Exp(stateMass[i]) / float64(t)
	}

	h.RanBaumWelch = true

	return changed, alpha / math.Ln2, nil
}

// fillLogZero returns a size-n slice initialised to logspace.LogZero.
func fillLogZero(n int) []float64 {
	row := make([]float64, n)
	for i := range row {
		row[i] = logspace.LogZero
	}

	return row
}

// fillLogZeroRows returns an n-by-m table initialised to logspace.LogZero.
func fillLogZeroRows(n, m int) [][]float64 {
	rows := make([][]float64, n)
	for i := range rows {
		rows[i] = fillLogZero(m)
	}

	return rows
}

// normalizeLogRow divides row by its own lnsum total in place (log-space
// subtraction), falling back to the uniform distribution if the row's
// total mass is still logspace.LogZero.
func normalizeLogRow(row []float64) {
	total := logspace.LogZero
	for _, v := range row {
		total = logspace.LnSum(total, v)
	}

	if logspace.IsLogZero(total) {
		uniform := -math.Log(float64(len(row)))
		for i := range row {
			row[i] = uniform
		}

		return
	}

	for i := range row {
		row[i] -= total
	}
}

// floatsEqual reports whether two equal-length float64 slices are
// bit-for-bit identical.
func floatsEqual(a, b []float64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}
