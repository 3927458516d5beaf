/*
FindBestPath — Longest-Weight Path Over a Log-Space Trellis

Description:

	Computes the maximum a posteriori hidden-state sequence for an HMM: the
	single start-to-end path through the trellis whose summed log-weight is
	largest. This is Viterbi decoding restated as a generic max-plus
	shortest-path problem on a DAG.

Algorithm outline:
 1. Require a start and end node (ErrNoStart / ErrNoEnd).
 2. Process nodes in increasing id order (construction order IS topological
    order, by the parent.id < child.id invariant):
      best[start] = 0
      best[v] = max over in-edges (u, name, w) of best[u] + w
    recording, for each v, which in-edge achieved the max.
 3. If best[end] is LogZero, no trajectory survives: return ErrNoPath.
 4. Reconstruct the edge-name sequence by following recorded back-pointers
    from end to start, then reverse it into start-to-end order.

Time complexity:   O(V + E)
Memory complexity: O(V)
*/
package wdag

import "github.com/katalvlaran/lvlath/logspace"

// BestPath is the result of a solved FindBestPath call: the winning path's
// total log-weight and the sequence of edge names along it, from start to
// end.
type BestPath struct {
	Weight float64
	Names  []EdgeName
}

// FindBestPath computes the maximum-weight start-to-end path and returns
// the edge names along it in traversal order.
//
// Complexity: O(V + E) time, O(V) memory.
func (g *Graph) FindBestPath() (BestPath, error) {
	if !g.hasStart {
		return BestPath{}, ErrNoStart
	}
	if !g.hasEnd {
		return BestPath{}, ErrNoEnd
	}

	for id := range g.nodes {
		nid := NodeID(id)
		if nid == g.start {
			g.nodes[id].best = 0
			g.nodes[id].bestFrom = -1

			continue
		}

		best := logspace.LogZero
		bestFrom := -1
		for i, e := range g.nodes[id].parents {
			cand := g.nodes[e.parent].best + e.weight
			if err := logspace.Check(cand); err != nil {
				return BestPath{}, ErrNaN
			}
			if bestFrom == -1 || cand > best {
				best = cand
				bestFrom = i
			}
		}
		g.nodes[id].best = best
		g.nodes[id].bestFrom = bestFrom
	}

	if logspace.IsLogZero(g.nodes[g.end].best) {
		return BestPath{}, ErrNoPath
	}

	var names []EdgeName
	cur := g.end
	for cur != g.start {
		idx := g.nodes[cur].bestFrom
		e := g.nodes[cur].parents[idx]
		names = append(names, e.name)
		cur = e.parent
	}
	reverseEdgeNames(names)

	return BestPath{Weight: g.nodes[g.end].best, Names: names}, nil
}

// reverseEdgeNames reverses names in place.
func reverseEdgeNames(names []EdgeName) {
	for l, r := 0, len(names)-1; l < r; l, r = l+1, r-1 {
		names[l], names[r] = names[r], names[l]
	}
}
