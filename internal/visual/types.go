// Package visual defines the renderer-facing node/edge description shared by
// every structure kind, plus the placement helpers used to lay nodes out.
package visual

// Node is a positioned value in a snapshot
type Node struct {
	ID    string  `json:"id"`
	Value any     `json:"value"`
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
}

// Edge connects two nodes of the same snapshot
type Edge struct {
	From  string `json:"from"`
	To    string `json:"to"`
	Label string `json:"label,omitempty"`
}

// State is the complete visualization of one structure at one point in time.
// Nodes is never nil once a State has been normalized.
type State struct {
	Nodes   []Node `json:"nodes"`
	Edges   []Edge `json:"edges,omitempty"`
	Message string `json:"message,omitempty"`
}

// Empty returns a state with no nodes
func Empty() State {
	return State{Nodes: []Node{}}
}

// WithMessage returns an empty state carrying an explanatory message
func WithMessage(msg string) State {
	return State{Nodes: []Node{}, Message: msg}
}

// Normalize guarantees a non-nil node list and drops every edge whose
// endpoints are not both present in the node list.
func (s State) Normalize() State {
	out := State{Nodes: s.Nodes, Message: s.Message}
	if out.Nodes == nil {
		out.Nodes = []Node{}
	}
	if len(s.Edges) == 0 {
		return out
	}

	ids := make(map[string]struct{}, len(out.Nodes))
	for _, n := range out.Nodes {
		ids[n.ID] = struct{}{}
	}

	edges := make([]Edge, 0, len(s.Edges))
	for _, e := range s.Edges {
		_, okFrom := ids[e.From]
		_, okTo := ids[e.To]
		if okFrom && okTo {
			edges = append(edges, e)
		}
	}
	if len(edges) > 0 {
		out.Edges = edges
	}
	return out
}

// Node looks up a node by id
func (s State) Node(id string) (Node, bool) {
	for _, n := range s.Nodes {
		if n.ID == id {
			return n, true
		}
	}
	return Node{}, false
}
