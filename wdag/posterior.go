/*
FindPosteriorProbs — Forward/Backward Message Passing Over a Log-Space Trellis

Description:

	Computes, for every node, the log-mass of all paths reaching it from
	start (fw) and the log-mass of all paths reaching end from it (bw).
	Together these give the posterior probability of any edge being
	traversed, which is the quantity Baum–Welch re-estimation accumulates.

Algorithm outline:
 1. Require a start and end node (ErrNoStart / ErrNoEnd).
 2. Forward pass, increasing id order:
      fw[start] = 0
      fw[v] = lnsum over in-edges (u, w) of fw[u] + w
 3. Backward pass, decreasing id order, using each node's in-edges read in
    reverse (an in-edge (u,v) is an out-edge of u):
      bw[end] = 0
      bw[u] = lnsum over out-edges (v, w) of bw[v] + w
 4. alpha = fw[end] (equivalently bw[start] within rounding; not checked).

Time complexity:   O(V + E)
Memory complexity: O(V)
*/
package wdag

import "github.com/katalvlaran/lvlath/logspace"

// Posterior is the result of a solved FindPosteriorProbs call: forward and
// backward log-mass per node, plus the total log-likelihood alpha.
type Posterior struct {
	fw, bw []float64
	alpha  float64
}

// FindPosteriorProbs runs the forward and backward passes and returns a
// Posterior exposing per-node fw/bw and the total log-likelihood.
//
// Complexity: O(V + E) time, O(V) memory.
func (g *Graph) FindPosteriorProbs() (*Posterior, error) {
	if !g.hasStart {
		return nil, ErrNoStart
	}
	if !g.hasEnd {
		return nil, ErrNoEnd
	}

	n := len(g.nodes)
	fw := make([]float64, n)
	bw := make([]float64, n)

	// Forward pass: increasing id order is topological order by construction.
	for id := 0; id < n; id++ {
		nid := NodeID(id)
		if nid == g.start {
			fw[id] = 0

			continue
		}

		acc := logspace.LogZero
		for _, e := range g.nodes[id].parents {
			acc = logspace.LnSum(acc, fw[e.parent]+e.weight)
			if err := logspace.Check(acc); err != nil {
				return nil, ErrNaN
			}
		}
		fw[id] = acc
	}

	// Backward pass: walk in-edges but accumulate onto the parent, which
	// is exactly "for each out-edge of the parent" since every in-edge of
	// a child is, symmetrically, an out-edge of its parent.
	for id := 0; id < n; id++ {
		bw[id] = logspace.LogZero
	}
	bw[g.end] = 0
	for id := n - 1; id >= 0; id-- {
		for _, e := range g.nodes[id].parents {
			acc := logspace.LnSum(bw[e.parent], bw[id]+e.weight)
			if err := logspace.Check(acc); err != nil {
				return nil, ErrNaN
			}
			bw[e.parent] = acc
		}
	}

	return &Posterior{fw: fw, bw: bw, alpha: fw[g.end]}, nil
}

// Alpha returns the total log-likelihood of the trellis in nats: fw[end],
// which equals bw[start] within floating-point rounding.
func (p *Posterior) Alpha() float64 {
	return p.alpha
}

// Forward returns fw[id], the log-mass of all paths from start to id.
func (p *Posterior) Forward(id NodeID) float64 {
	return p.fw[id]
}

// Backward returns bw[id], the log-mass of all paths from id to end.
func (p *Posterior) Backward(id NodeID) float64 {
	return p.bw[id]
}

// EdgePosterior returns the posterior log-mass fw[parent] + weight +
// bw[child] of a single edge. Subtracting Alpha() yields the log-posterior
// probability that the edge is traversed.
func (p *Posterior) EdgePosterior(parent, child NodeID, weight float64) float64 {
	return p.fw[parent] + weight + p.bw[child]
}
