package projector

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GriffinCanCode/dsaviz/internal/facade"
	"github.com/GriffinCanCode/dsaviz/internal/sandbox"
	"github.com/GriffinCanCode/dsaviz/internal/shared/types"
	"github.com/GriffinCanCode/dsaviz/internal/visual"
)

// stub reports a fixed snapshot
type stub struct {
	facade.Adapter
	state visual.State
}

func (s stub) Snapshot() visual.State { return s.state }

func items(n int) []any {
	out := make([]any, n)
	for i := range out {
		out[i] = float64(i)
	}
	return out
}

func TestProjectEmpty(t *testing.T) {
	s := Project(sandbox.Capture{})
	assert.NotNil(t, s.Nodes)
	assert.Empty(t, s.Nodes)
	assert.Nil(t, s.Edges)
}

func TestProjectArrayGrid(t *testing.T) {
	s := Project(sandbox.Capture{Tag: types.CaptureArray, Items: items(10)})
	require.Len(t, s.Nodes, 10)
	assert.Equal(t, visual.Node{ID: "node-0", Value: 0.0, X: 80, Y: 80}, s.Nodes[0])
	assert.Equal(t, 640.0, s.Nodes[7].X)
	assert.Equal(t, 80.0, s.Nodes[8].X)
	assert.Equal(t, 160.0, s.Nodes[8].Y)

	q := Project(sandbox.Capture{Tag: types.CaptureQueue, Items: items(10)})
	assert.Equal(t, s.Nodes, q.Nodes)
}

func TestProjectThreeElementArray(t *testing.T) {
	s := Project(sandbox.Capture{Tag: types.CaptureArray, Items: []any{1.0, 2.0, 3.0}})
	require.Len(t, s.Nodes, 3)
	for i, n := range s.Nodes {
		assert.Equal(t, 80.0+80*float64(i), n.X)
		assert.Equal(t, 80.0, n.Y)
	}
}

func TestProjectStack(t *testing.T) {
	s := Project(sandbox.Capture{Tag: types.CaptureStack, Items: items(3)})
	require.Len(t, s.Nodes, 3)
	assert.Equal(t, 150.0, s.Nodes[2].X)
	assert.Equal(t, 500.0, s.Nodes[0].Y)
	assert.Equal(t, 340.0, s.Nodes[2].Y)
}

func TestProjectMap(t *testing.T) {
	entries := make([]sandbox.Entry, 6)
	for i := range entries {
		entries[i] = sandbox.Entry{Key: "k", Value: float64(i), Label: "k:" + string(rune('0'+i))}
	}
	s := Project(sandbox.Capture{Tag: types.CaptureMap, Entries: entries})
	require.Len(t, s.Nodes, 6)
	assert.Equal(t, "k:0", s.Nodes[0].Value)
	assert.Equal(t, 580.0, s.Nodes[4].X)
	assert.Equal(t, 100.0, s.Nodes[5].X)
	assert.Equal(t, 180.0, s.Nodes[5].Y)
}

func TestProjectFacadeDelegates(t *testing.T) {
	g := facade.NewGraph()
	g.AddEdge("A", "B")
	s := Project(sandbox.Capture{Tag: types.CaptureGraph, Structure: g})
	assert.Equal(t, g.Snapshot().Normalize(), s)
	assert.Len(t, s.Edges, 1)
}

func TestProjectDropsDanglingEdges(t *testing.T) {
	st := stub{state: visual.State{
		Nodes: []visual.Node{{ID: "a"}, {ID: "b"}},
		Edges: []visual.Edge{{From: "a", To: "b"}, {From: "a", To: "ghost"}},
	}}
	s := Project(sandbox.Capture{Tag: types.CaptureBST, Structure: st})
	require.Len(t, s.Edges, 1)
	assert.Equal(t, "b", s.Edges[0].To)
}

func TestProjectMessage(t *testing.T) {
	s := Project(sandbox.Capture{Tag: types.CaptureLinkedList, Message: "list is not a LinkedList instance"})
	assert.Empty(t, s.Nodes)
	assert.Equal(t, "list is not a LinkedList instance", s.Message)
}
