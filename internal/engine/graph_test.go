package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGraphEdgeSymmetry(t *testing.T) {
	g := NewGraph()
	g.AddEdge("A", "B")
	assert.True(t, g.HasEdge("A", "B"))
	assert.True(t, g.HasEdge("B", "A"))
	assert.Equal(t, []string{"A", "B"}, g.Vertices())

	_, err := g.RemoveEdge("B", "A")
	require.NoError(t, err)
	assert.False(t, g.HasEdge("A", "B"))
	assert.False(t, g.HasEdge("B", "A"))
	assert.Equal(t, 2, g.Size())
}

func TestGraphRemoveVertexCascades(t *testing.T) {
	g := NewGraph()
	g.AddEdge("A", "B")
	g.AddEdge("A", "C")
	g.AddEdge("B", "C")

	_, err := g.RemoveVertex("A")
	require.NoError(t, err)
	assert.False(t, g.HasVertex("A"))
	for _, v := range g.Vertices() {
		ns, err := g.Neighbors(v)
		require.NoError(t, err)
		assert.NotContains(t, ns, "A")
	}
	assert.Equal(t, 1, g.EdgeCount())

	_, err = g.RemoveVertex("A")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGraphDuplicateVertex(t *testing.T) {
	g := NewGraph()
	_, err := g.AddVertex("X")
	require.NoError(t, err)
	_, err = g.AddVertex("X")
	assert.ErrorIs(t, err, ErrDuplicateVertex)
	assert.Equal(t, `Vertex "X" already exists`, err.Error())
	assert.Equal(t, "DuplicateVertex", KindName(err))

	// case-sensitive names
	_, err = g.AddVertex("x")
	assert.NoError(t, err)
	assert.Equal(t, 2, g.Size())
}

func TestGraphRemoveEdgeUnknownVertex(t *testing.T) {
	g := NewGraph()
	g.AddEdge("A", "B")
	_, err := g.RemoveEdge("A", "Z")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, "One or both vertices not found", err.Error())
	assert.True(t, g.HasEdge("A", "B"))
}

func TestGraphTraversals(t *testing.T) {
	g := NewGraph()
	g.AddEdge("A", "B")
	g.AddEdge("A", "C")
	g.AddEdge("B", "D")
	g.AddEdge("C", "D")
	g.AddEdge("E", "F")

	bfs, err := g.BFS("A")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C", "D"}, bfs)

	dfs, err := g.DFS("A")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "D", "C"}, dfs)

	_, err = g.BFS("Q")
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = g.DFS("Q")
	assert.ErrorIs(t, err, ErrNotFound)

	assert.Equal(t, [][]string{{"A", "B", "C", "D"}, {"E", "F"}}, g.ConnectedComponents())
}

func TestGraphNeighbors(t *testing.T) {
	g := NewGraph()
	_, err := g.AddVertex("lonely")
	require.NoError(t, err)
	res, err := g.NeighborsResult("lonely")
	require.NoError(t, err)
	assert.Equal(t, `Vertex "lonely" has no neighbors`, res.Message)

	g.AddEdge("A", "B")
	g.AddEdge("A", "C")
	res, err = g.NeighborsResult("A")
	require.NoError(t, err)
	assert.Equal(t, `Neighbors of "A": [B, C]`, res.Message)

	_, err = g.Neighbors("nope")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGraphSnapshot(t *testing.T) {
	g := NewGraph()
	s := g.Snapshot()
	assert.Empty(t, s.Nodes)
	assert.NotNil(t, s.Edges)
	assert.Equal(t, "Graph is empty", g.Traverse())

	g.AddEdge("A", "B")
	g.AddEdge("B", "A")
	g.AddEdge("B", "C")
	g.AddEdge("a-b", "c")
	s = g.Snapshot()
	require.Len(t, s.Nodes, 5)
	assert.Len(t, s.Edges, 3)

	a, ok := s.Node("A")
	require.True(t, ok)
	assert.Equal(t, "A", a.Value)
	assert.InDelta(t, 550.0, a.X, 1e-9)
	assert.InDelta(t, 250.0, a.Y, 1e-9)

	assert.Equal(t, "Graph:\n\"A\": [B]\n\"B\": [A, C]\n\"C\": [B]\n\"a-b\": [c]\n\"c\": [a-b]", g.Traverse())
}
