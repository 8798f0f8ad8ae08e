package facade

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GriffinCanCode/dsaviz/internal/engine"
	"github.com/GriffinCanCode/dsaviz/internal/shared/types"
)

func TestLinkedList(t *testing.T) {
	l := NewLinkedList(engine.Doubly)
	l.Add(10)
	l.Add(30)
	require.NoError(t, l.AddAt(1, 20))

	assert.Equal(t, []float64{10, 20, 30}, l.ToArray())
	assert.True(t, l.Contains(20))
	assert.Equal(t, 3, l.Size())
	assert.Equal(t, "List: 10 -> 20 -> 30 -> null", l.String())
	assert.Equal(t, types.KindDoublyLinkedList, l.Kind())
	assert.Equal(t, types.CaptureLinkedList, l.Capture())

	v, err := l.RemoveAt(0)
	require.NoError(t, err)
	assert.Equal(t, 10.0, v)

	err = l.Remove(99)
	assert.ErrorIs(t, err, engine.ErrNotFound)
	assert.Equal(t, "Value 99 not found", err.Error())

	_, err = l.RemoveAt(5)
	assert.ErrorIs(t, err, engine.ErrIndexOutOfRange)
}

func TestLinkedListSnapshotForwarded(t *testing.T) {
	l := NewLinkedList(engine.Singly)
	l.Add(1)
	l.Add(2)
	assert.Equal(t, l.list.Snapshot(), l.Snapshot())
}

func TestVariantFor(t *testing.T) {
	assert.Equal(t, engine.Singly, VariantFor(types.KindLinkedList))
	assert.Equal(t, engine.Doubly, VariantFor(types.KindDoublyLinkedList))
	assert.Equal(t, engine.Circular, VariantFor(types.KindCircularLinkedList))
	assert.Equal(t, engine.Singly, VariantFor(types.KindGraph))
}

func TestBinarySearchTree(t *testing.T) {
	b := NewBinarySearchTree()
	for _, v := range []float64{50, 30, 70} {
		require.NoError(t, b.Insert(v))
	}
	assert.ErrorIs(t, b.Insert(30), engine.ErrDuplicateKey)

	assert.Equal(t, []float64{30, 50, 70}, b.Inorder())
	assert.Equal(t, []float64{50, 30, 70}, b.Preorder())
	assert.Equal(t, []float64{30, 70, 50}, b.Postorder())
	assert.Equal(t, 2, b.Height())

	lo, ok := b.Min()
	require.True(t, ok)
	assert.Equal(t, 30.0, lo)

	require.NoError(t, b.Remove(50))
	assert.False(t, b.Contains(50))
	assert.Equal(t, 2, b.Size())
	assert.Equal(t, types.KindBST, b.Kind())
	assert.Equal(t, b.tree.Snapshot(), b.Snapshot())
}

func TestGraph(t *testing.T) {
	g := NewGraph()
	require.NoError(t, g.AddVertex("A"))
	assert.ErrorIs(t, g.AddVertex("A"), engine.ErrDuplicateVertex)

	g.AddEdge("A", "B")
	g.AddEdge("B", "C")
	assert.True(t, g.HasEdge("B", "A"))

	ns, err := g.Neighbors("B")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "C"}, ns)
	assert.Equal(t, []string{"A", "B", "C"}, g.Vertices())

	order, err := g.BFS("A")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C"}, order)

	require.NoError(t, g.RemoveVertex("B"))
	assert.Equal(t, [][]string{{"A"}, {"C"}}, g.Components())
	assert.Equal(t, 2, g.VertexCount())
	assert.Equal(t, 0, g.EdgeCount())
	assert.ErrorIs(t, g.RemoveEdge("A", "B"), engine.ErrNotFound)
	assert.Len(t, g.Snapshot().Nodes, 2)
}
