package facade

import (
	"github.com/GriffinCanCode/dsaviz/internal/engine"
	"github.com/GriffinCanCode/dsaviz/internal/shared/types"
	"github.com/GriffinCanCode/dsaviz/internal/visual"
)

// Graph adapts engine.Graph
type Graph struct {
	graph *engine.Graph
}

// NewGraph creates an empty graph
func NewGraph() *Graph {
	return &Graph{graph: engine.NewGraph()}
}

// AddVertex adds an isolated vertex; existing names fail
func (g *Graph) AddVertex(v string) error {
	_, err := g.graph.AddVertex(v)
	return err
}

// AddEdge connects a and b, creating either endpoint if needed
func (g *Graph) AddEdge(a, b string) {
	g.graph.AddEdge(a, b)
}

// RemoveVertex deletes v and its edges
func (g *Graph) RemoveVertex(v string) error {
	_, err := g.graph.RemoveVertex(v)
	return err
}

// RemoveEdge disconnects a and b
func (g *Graph) RemoveEdge(a, b string) error {
	_, err := g.graph.RemoveEdge(a, b)
	return err
}

func (g *Graph) HasVertex(v string) bool              { return g.graph.HasVertex(v) }
func (g *Graph) HasEdge(a, b string) bool             { return g.graph.HasEdge(a, b) }
func (g *Graph) Neighbors(v string) ([]string, error) { return g.graph.Neighbors(v) }
func (g *Graph) Vertices() []string                   { return g.graph.Vertices() }
func (g *Graph) BFS(start string) ([]string, error)   { return g.graph.BFS(start) }
func (g *Graph) DFS(start string) ([]string, error)   { return g.graph.DFS(start) }
func (g *Graph) Components() [][]string               { return g.graph.ConnectedComponents() }
func (g *Graph) VertexCount() int                     { return g.graph.Size() }
func (g *Graph) EdgeCount() int                       { return g.graph.EdgeCount() }
func (g *Graph) String() string                       { return g.graph.Traverse() }
func (g *Graph) Kind() types.Kind                     { return types.KindGraph }
func (g *Graph) Capture() types.Capture               { return types.CaptureGraph }
func (g *Graph) Snapshot() visual.State               { return g.graph.Snapshot() }
