package wdag

// EdgeKind tags the four edge shapes the HMM trellis builder ever emits.
// Using a tagged variant here (rather than the source's parsed ASCII
// string) removes string parsing and a global parser buffer from the hot
// path, per the module's edge-name redesign: re-estimators switch on Kind
// exhaustively instead of re-parsing a name at consumption time.
type EdgeKind int

const (
	// KindStart marks an initial-state assignment edge: "S i".
	KindStart EdgeKind = iota
	// KindTrans marks a state transition edge: "T i j".
	KindTrans
	// KindEmit marks an emission edge: "E i s" (s == -1 for continuous).
	KindEmit
	// KindFinish marks the zero-weight finish edge: "F".
	KindFinish
)

// String renders an EdgeKind the way the source's ASCII tag looked, which
// keeps any diagnostic rendering of a trellis readable without reviving
// the string grammar as a data format.
func (k EdgeKind) String() string {
	switch k {
	case KindStart:
		return "S"
	case KindTrans:
		return "T"
	case KindEmit:
		return "E"
	case KindFinish:
		return "F"
	default:
		return "?"
	}
}

// EdgeName is the tagged payload that used to be a parsed string. Field
// meaning depends on Kind:
//
//	KindStart:  I = initial state
//	KindTrans:  I = source state, J = destination state
//	KindEmit:   I = state, S = symbol (-1 for continuous emissions)
//	KindFinish: no payload
type EdgeName struct {
	Kind EdgeKind
	I, J int
	S    int
}

// Start builds a KindStart edge name for initial-state assignment to i.
func Start(i int) EdgeName { return EdgeName{Kind: KindStart, I: i} }

// Trans builds a KindTrans edge name for the transition i -> j.
func Trans(i, j int) EdgeName { return EdgeName{Kind: KindTrans, I: i, J: j} }

// Emit builds a KindEmit edge name for state i emitting symbol s
// (s == -1 for continuous emissions).
func Emit(i, s int) EdgeName { return EdgeName{Kind: KindEmit, I: i, S: s} }

// Finish is the single KindFinish edge name; all finish edges share it.
var Finish = EdgeName{Kind: KindFinish}

// NodeID addresses a node by its position in the Graph's arena. Ids are
// assigned in strictly increasing order by AddNode, which is what lets
// AddEdge enforce "parent.id < child.id" as a simple integer comparison.
type NodeID int

// inEdge is one parent edge stored on a child node.
type inEdge struct {
	parent NodeID
	name   EdgeName
	weight float64
}

// node is an arena entry: just its incoming edges plus solver scratch
// fields. best/bestFrom are populated by FindBestPath and are meaningless
// before it runs. fw/bw are never written: FindPosteriorProbs keeps its
// forward/backward mass in the returned Posterior instead.
type node struct {
	parents []inEdge

	best     float64 // FindBestPath: best log-weight to this node
	bestFrom int      // index into parents of the edge that achieves best, -1 if none

	fw float64 // unused; see Posterior.Forward
	bw float64 // unused; see Posterior.Backward
}

// Graph is the trellis arena: nodes addressed by NodeID, each storing only
// its own in-edges. There is no parent-to-pointer linkage, so cyclic
// ownership is structurally impossible.
type Graph struct {
	nodes []node

	start    NodeID
	end      NodeID
	hasStart bool
	hasEnd   bool
}

// New returns an empty Graph with no nodes, start, or end set.
func New() *Graph {
	return &Graph{}
}

// AddNode appends a new node and returns its id. Ids are assigned in
// strictly increasing order starting at 0.
//
// Complexity: O(1) amortized.
func (g *Graph) AddNode() NodeID {
	id := NodeID(len(g.nodes))
	g.nodes = append(g.nodes, node{bestFrom: -1})

	return id
}

// NumNodes returns the number of nodes currently in the graph.
func (g *Graph) NumNodes() int {
	return len(g.nodes)
}

// valid reports whether id addresses an existing node.
func (g *Graph) valid(id NodeID) bool {
	return id >= 0 && int(id) < len(g.nodes)
}

// AddEdge records an edge from parent to child with the given name and
// log-weight. It asserts parent.id < child.id, which is what keeps the
// arena topologically ordered by construction alone.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(child, parent NodeID, name EdgeName, logWeight float64) error {
	if !g.valid(child) || !g.valid(parent) {
		return ErrUnknownNode
	}
	if parent >= child {
		return ErrBackwardEdge
	}

	g.nodes[child].parents = append(g.nodes[child].parents, inEdge{
		parent: parent,
		name:   name,
		weight: logWeight,
	})

	return nil
}

// SetStart designates id as the graph's required start node.
func (g *Graph) SetStart(id NodeID) error {
	if !g.valid(id) {
		return ErrUnknownNode
	}
	g.start, g.hasStart = id, true

	return nil
}

// SetEnd designates id as the graph's required end node.
func (g *Graph) SetEnd(id NodeID) error {
	if !g.valid(id) {
		return ErrUnknownNode
	}
	g.end, g.hasEnd = id, true

	return nil
}

// InEdge is the accessor view of a single parent edge, returned by
// EdgesInto so callers never see the unexported arena representation.
type InEdge struct {
	Parent NodeID
	Name   EdgeName
	Weight float64
}

// EdgesInto returns the parent, name and weight of every in-edge of id, in
// the order they were added.
//
// Complexity: O(in-degree).
func (g *Graph) EdgesInto(id NodeID) []InEdge {
	if !g.valid(id) {
		return nil
	}

	parents := g.nodes[id].parents
	out := make([]InEdge, len(parents))
	for i, p := range parents {
		out[i] = InEdge{Parent: p.parent, Name: p.name, Weight: p.weight}
	}

	return out
}
