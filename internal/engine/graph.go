package engine

import (
	"container/list"
	"slices"
	"strings"

	"github.com/GriffinCanCode/dsaviz/internal/visual"
)

var graphLayout = visual.Circle{CenterX: 400, CenterY: 250, Radius: 150}

// neighborSet keeps neighbors in insertion order
type neighborSet struct {
	order []string
	index map[string]struct{}
}

func newNeighborSet() *neighborSet {
	return &neighborSet{index: make(map[string]struct{})}
}

func (s *neighborSet) add(v string) {
	if _, ok := s.index[v]; ok {
		return
	}
	s.index[v] = struct{}{}
	s.order = append(s.order, v)
}

func (s *neighborSet) remove(v string) {
	if _, ok := s.index[v]; !ok {
		return
	}
	delete(s.index, v)
	s.order = slices.DeleteFunc(s.order, func(x string) bool { return x == v })
}

func (s *neighborSet) has(v string) bool {
	_, ok := s.index[v]
	return ok
}

// Graph is an undirected graph over case-sensitive vertex names. Vertices
// and each vertex's neighbors iterate in insertion order.
type Graph struct {
	order []string
	adj   map[string]*neighborSet
}

// NewGraph creates an empty graph
func NewGraph() *Graph {
	return &Graph{adj: make(map[string]*neighborSet)}
}

func (g *Graph) ensure(v string) *neighborSet {
	if s, ok := g.adj[v]; ok {
		return s
	}
	s := newNeighborSet()
	g.adj[v] = s
	g.order = append(g.order, v)
	return s
}

// AddVertex adds an isolated vertex
func (g *Graph) AddVertex(v string) (Result, error) {
	if g.HasVertex(v) {
		return Result{}, opError("addVertex", ErrDuplicateVertex, "Vertex \"%s\" already exists", v)
	}
	g.ensure(v)
	return result("addVertex", v, "Added vertex \"%s\"", v), nil
}

// AddEdge connects from and to in both directions, creating missing vertices
func (g *Graph) AddEdge(from, to string) Result {
	a := g.ensure(from)
	b := g.ensure(to)
	a.add(to)
	b.add(from)
	return result("addEdge", []string{from, to}, "Added edge between \"%s\" and \"%s\"", from, to)
}

// RemoveVertex deletes v and every edge touching it
func (g *Graph) RemoveVertex(v string) (Result, error) {
	if !g.HasVertex(v) {
		return Result{}, opError("removeVertex", ErrNotFound, "Vertex \"%s\" not found", v)
	}
	for _, s := range g.adj {
		s.remove(v)
	}
	delete(g.adj, v)
	g.order = slices.DeleteFunc(g.order, func(x string) bool { return x == v })
	return result("removeVertex", v, "Removed vertex \"%s\"", v), nil
}

// RemoveEdge disconnects from and to. Both vertices must exist; removing an
// edge that is not there is a no-op.
func (g *Graph) RemoveEdge(from, to string) (Result, error) {
	if !g.HasVertex(from) || !g.HasVertex(to) {
		return Result{}, opError("removeEdge", ErrNotFound, "One or both vertices not found")
	}
	g.adj[from].remove(to)
	g.adj[to].remove(from)
	return result("removeEdge", []string{from, to}, "Removed edge between \"%s\" and \"%s\"", from, to), nil
}

// HasVertex reports whether v exists
func (g *Graph) HasVertex(v string) bool {
	_, ok := g.adj[v]
	return ok
}

// HasEdge reports whether from and to are adjacent
func (g *Graph) HasEdge(from, to string) bool {
	s, ok := g.adj[from]
	return ok && s.has(to)
}

// Neighbors returns the vertices adjacent to v in insertion order
func (g *Graph) Neighbors(v string) ([]string, error) {
	s, ok := g.adj[v]
	if !ok {
		return nil, opError("getNeighbors", ErrNotFound, "Vertex \"%s\" not found", v)
	}
	return slices.Clone(s.order), nil
}

// NeighborsResult is the display form of Neighbors
func (g *Graph) NeighborsResult(v string) (Result, error) {
	ns, err := g.Neighbors(v)
	if err != nil {
		return Result{}, err
	}
	if len(ns) == 0 {
		return result("getNeighbors", ns, "Vertex \"%s\" has no neighbors", v), nil
	}
	return result("getNeighbors", ns, "Neighbors of \"%s\": [%s]", v, strings.Join(ns, ", ")), nil
}

// Vertices returns every vertex in insertion order
func (g *Graph) Vertices() []string {
	return slices.Clone(g.order)
}

// BFS visits vertices reachable from start breadth first
func (g *Graph) BFS(start string) ([]string, error) {
	if !g.HasVertex(start) {
		return nil, opError("bfs", ErrNotFound, "Vertex \"%s\" not found", start)
	}
	return g.breadthFirst(start, map[string]bool{}), nil
}

func (g *Graph) breadthFirst(start string, visited map[string]bool) []string {
	var out []string
	queue := list.New()
	queue.PushBack(start)
	visited[start] = true

	for queue.Len() > 0 {
		v, _ := queue.Remove(queue.Front()).(string)
		out = append(out, v)
		for _, n := range g.adj[v].order {
			if !visited[n] {
				visited[n] = true
				queue.PushBack(n)
			}
		}
	}
	return out
}

// DFS visits vertices reachable from start depth first, preorder
func (g *Graph) DFS(start string) ([]string, error) {
	if !g.HasVertex(start) {
		return nil, opError("dfs", ErrNotFound, "Vertex \"%s\" not found", start)
	}
	var out []string
	visited := map[string]bool{}
	var walk func(string)
	walk = func(v string) {
		visited[v] = true
		out = append(out, v)
		for _, n := range g.adj[v].order {
			if !visited[n] {
				walk(n)
			}
		}
	}
	walk(start)
	return out, nil
}

// ConnectedComponents groups vertices by reachability. Components are ordered
// by their earliest inserted vertex and list members in BFS order.
func (g *Graph) ConnectedComponents() [][]string {
	visited := map[string]bool{}
	var out [][]string
	for _, v := range g.order {
		if visited[v] {
			continue
		}
		out = append(out, g.breadthFirst(v, visited))
	}
	return out
}

// EdgeCount is the number of distinct undirected edges
func (g *Graph) EdgeCount() int {
	return len(g.edges())
}

// Traverse lists every adjacency row
func (g *Graph) Traverse() string {
	if len(g.order) == 0 {
		return "Graph is empty"
	}
	rows := make([]string, 0, len(g.order))
	for _, v := range g.order {
		rows = append(rows, "\""+v+"\": ["+strings.Join(g.adj[v].order, ", ")+"]")
	}
	return "Graph:\n" + strings.Join(rows, "\n")
}

func (g *Graph) Size() int     { return len(g.order) }
func (g *Graph) IsEmpty() bool { return len(g.order) == 0 }

// edgeKey canonicalizes an undirected edge by ordering its endpoints with an
// exact, case-sensitive comparison.
type edgeKey struct{ lo, hi string }

func canonical(a, b string) edgeKey {
	if b < a {
		a, b = b, a
	}
	return edgeKey{lo: a, hi: b}
}

func (g *Graph) edges() []visual.Edge {
	seen := make(map[edgeKey]struct{})
	var out []visual.Edge
	for _, from := range g.order {
		for _, to := range g.adj[from].order {
			k := canonical(from, to)
			if _, dup := seen[k]; dup {
				continue
			}
			seen[k] = struct{}{}
			out = append(out, visual.Edge{From: from, To: to})
		}
	}
	return out
}

// Snapshot places vertices evenly on a circle; node ids are vertex names and
// each undirected edge appears once.
func (g *Graph) Snapshot() visual.State {
	state := visual.State{Nodes: make([]visual.Node, 0, len(g.order)), Edges: g.edges()}
	for i, v := range g.order {
		p := graphLayout.At(i, len(g.order))
		state.Nodes = append(state.Nodes, visual.Node{ID: v, Value: v, X: p.X, Y: p.Y})
	}
	if state.Edges == nil {
		state.Edges = []visual.Edge{}
	}
	return state
}
