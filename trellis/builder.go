/*
ToWDAG — Unroll an HMM Into a Trellis

Description:

	Builds the WDAG whose start-to-end paths are in bijection with
	length-T hidden-state sequences for the given HMM and its loaded
	observations (discrete) or precomputed emission log-likelihoods
	(continuous).

Topology (T timepoints, N states):
  - One start node, one end node.
  - Per timepoint t: a layer A_t of N "state reached" nodes and a layer
    B_t of N "symbol emitted" nodes.
  - S i:  start    -> A_0[i],        weight = InitLog[i]
  - T i j: B_{t-1}[i] -> A_t[j],     weight = TransLog[i][j]   (t >= 1)
  - E i s: A_t[i]  -> B_t[i],        weight = emission log-weight at t,i
  - F:     B_{T-1}[i] -> end,        weight = 0

Total nodes: 2*N*T + 2. Total edges: N (start) + N^2*(T-1) (transitions)
+ N*T (emissions) + N (finish).
*/
package trellis

import (
	"github.com/katalvlaran/lvlath/hmm"
	"github.com/katalvlaran/lvlath/wdag"
)

// ToWDAG unrolls h into a fresh *wdag.Graph. h must report HasAllData();
// callers needing that assertion enforced should check it themselves (the
// engine façade does) — ToWDAG itself only refuses an empty sequence.
func ToWDAG(h *hmm.HMM) (*wdag.Graph, error) {
	T := h.NumTimepoints()
	if T == 0 {
		return nil, ErrEmptySequence
	}
	n := h.N

	g := wdag.New()
	start := g.AddNode()

	a := make([][]wdag.NodeID, T)
	b := make([][]wdag.NodeID, T)
	for t := 0; t < T; t++ {
		a[t] = make([]wdag.NodeID, n)
		for i := 0; i < n; i++ {
			a[t][i] = g.AddNode()
		}
		b[t] = make([]wdag.NodeID, n)
		for i := 0; i < n; i++ {
			b[t][i] = g.AddNode()
		}
	}
	end := g.AddNode()

	if err := g.SetStart(start); err != nil {
		return nil, err
	}
	if err := g.SetEnd(end); err != nil {
		return nil, err
	}

	// S i: start -> A_0[i]
	for i := 0; i < n; i++ {
		if err := g.AddEdge(a[0][i], start, wdag.Start(i), h.InitLog[i]); err != nil {
			return nil, err
		}
	}

	// T i j: B_{t-1}[i] -> A_t[j], t >= 1
	for t := 1; t < T; t++ {
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				w := h.TransLog[i][j]
				if err := g.AddEdge(a[t][j], b[t-1][i], wdag.Trans(i, j), w); err != nil {
					return nil, err
				}
			}
		}
	}

	// E i s: A_t[i] -> B_t[i]
	discrete := h.Discrete()
	for t := 0; t < T; t++ {
		var rowMax float64
		if !discrete {
			rowMax = rowMaxOf(h.TimeEmissLog[t])
		}
		for i := 0; i < n; i++ {
			var s int
			var w float64
			if discrete {
				s = h.Observations[t]
				w = h.SymbolEmissLog[i][s]
			} else {
				s = -1
				w = h.TimeEmissLog[t][i] - rowMax
			}
			if err := g.AddEdge(b[t][i], a[t][i], wdag.Emit(i, s), w); err != nil {
				return nil, err
			}
		}
	}

	// F: B_{T-1}[i] -> end
	for i := 0; i < n; i++ {
		if err := g.AddEdge(end, b[T-1][i], wdag.Finish, 0); err != nil {
			return nil, err
		}
	}

	return g, nil
}

// rowMaxOf returns the maximum entry of row. row is assumed non-empty;
// hmm.SetTimeEmiss rejects empty rows implicitly via the N-length check.
func rowMaxOf(row []float64) float64 {
	m := row[0]
	for _, v := range row[1:] {
		if v > m {
			m = v
		}
	}

	return m
}
