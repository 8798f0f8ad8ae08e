package engine

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArrayInsertGrowsByOne(t *testing.T) {
	a := NewArray()
	for i := 0; i < 5; i++ {
		before := a.Size()
		_, err := a.Insert(float64(i))
		require.NoError(t, err)
		assert.Equal(t, before+1, a.Size())
	}

	before := a.Size()
	_, err := a.Delete(3)
	require.NoError(t, err)
	assert.Equal(t, before-1, a.Size())
}

func TestArrayCapacity(t *testing.T) {
	a := NewArray()
	for i := 0; i < ArrayCapacity; i++ {
		_, err := a.Insert(float64(i))
		require.NoError(t, err)
	}

	_, err := a.Insert(21)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrCapacityExceeded))
	assert.Equal(t, "Array overflow! Maximum size reached.", err.Error())
	assert.Equal(t, "CapacityExceeded", KindName(err))

	_, err = a.InsertAt(0, 1)
	assert.ErrorIs(t, err, ErrCapacityExceeded)
	assert.Equal(t, ArrayCapacity, a.Size())
}

func TestArrayInsertAtDeleteAtRoundTrip(t *testing.T) {
	a := NewArray()
	for _, v := range []float64{10, 20, 30} {
		_, err := a.Insert(v)
		require.NoError(t, err)
	}
	before := a.Values()

	for index := 0; index <= len(before); index++ {
		res, err := a.InsertAt(index, 99)
		require.NoError(t, err)
		assert.Contains(t, res.Message, "Inserted 99 at index")

		_, err = a.DeleteAt(index)
		require.NoError(t, err)
		assert.Equal(t, before, a.Values())
	}
}

func TestArrayOperations(t *testing.T) {
	a := NewArray()
	res, err := a.Insert(5)
	require.NoError(t, err)
	assert.Equal(t, "Inserted 5 at index 0", res.Message)

	_, err = a.Insert(2.5)
	require.NoError(t, err)

	res = a.Search(2.5)
	assert.Equal(t, "Found 2.5 at index 1", res.Message)
	assert.Equal(t, 1, res.Data)

	res = a.Search(7)
	assert.Equal(t, "Value 7 not found", res.Message)

	res, err = a.Update(0, 6)
	require.NoError(t, err)
	assert.Equal(t, "Updated index 0 from 5 to 6", res.Message)

	_, err = a.Update(9, 1)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
	assert.Equal(t, "Invalid index 9. Valid range: 0-1", err.Error())

	_, err = a.InsertAt(-1, 1)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)

	_, err = a.Delete(42)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, "Value 42 not found in array", err.Error())

	assert.Equal(t, "Array: [6, 2.5]", a.Traverse())

	v, err := a.Get(1)
	require.NoError(t, err)
	assert.Equal(t, 2.5, v)
}

func TestArrayDuplicatesAllowed(t *testing.T) {
	a := NewArray()
	_, _ = a.Insert(1)
	_, _ = a.Insert(1)
	assert.Equal(t, 2, a.Size())

	_, err := a.Delete(1)
	require.NoError(t, err)
	assert.Equal(t, []float64{1}, a.Values())
}

func TestArraySnapshot(t *testing.T) {
	a := NewArray()
	assert.Equal(t, "Array is empty", a.Traverse())
	assert.Empty(t, a.Snapshot().Nodes)

	_, _ = a.Insert(3)
	_, _ = a.Insert(4)
	s := a.Snapshot()
	require.Len(t, s.Nodes, 2)
	assert.Equal(t, "node-1", s.Nodes[1].ID)
	assert.Equal(t, 180.0, s.Nodes[1].X)
	assert.Equal(t, 200.0, s.Nodes[1].Y)
	assert.Equal(t, 4.0, s.Nodes[1].Value)
}

func TestStackPushPop(t *testing.T) {
	s := NewStack()
	_, err := s.Push(10)
	require.NoError(t, err)
	_, err = s.Push(20)
	require.NoError(t, err)

	res, err := s.Pop()
	require.NoError(t, err)
	assert.Equal(t, 20.0, res.Data)
	assert.Equal(t, "Popped 20 from stack", res.Message)
	assert.Equal(t, []float64{10}, s.Values())
}

func TestStackUnderflow(t *testing.T) {
	s := NewStack()
	_, err := s.Pop()
	assert.ErrorIs(t, err, ErrUnderflow)
	assert.Equal(t, "Stack underflow! Stack is empty.", err.Error())

	_, err = s.Peek()
	assert.ErrorIs(t, err, ErrUnderflow)
	assert.Equal(t, "Stack is empty", err.Error())
}

func TestStackCapacity(t *testing.T) {
	s := NewStack()
	for i := 0; i < StackCapacity; i++ {
		_, err := s.Push(float64(i))
		require.NoError(t, err)
	}
	_, err := s.Push(99)
	assert.ErrorIs(t, err, ErrCapacityExceeded)
}

func TestStackSearchFromTop(t *testing.T) {
	s := NewStack()
	for _, v := range []float64{1, 2, 1, 3} {
		_, _ = s.Push(v)
	}
	res := s.Search(1)
	assert.Equal(t, 1, res.Data)
	assert.Equal(t, "Found 1 at position 1 from top", res.Message)
	assert.Equal(t, -1, s.Search(9).Data)

	peek, err := s.Peek()
	require.NoError(t, err)
	assert.Equal(t, "Top element: 3", peek.Message)
	assert.Equal(t, "Stack (top to bottom): [3, 1, 2, 1]", s.Traverse())

	snap := s.Snapshot()
	assert.Equal(t, 400.0, snap.Nodes[0].Y)
	assert.Equal(t, 250.0, snap.Nodes[3].Y)
}

func TestQueueFIFO(t *testing.T) {
	q := NewQueue()
	_, err := q.Enqueue(1)
	require.NoError(t, err)
	_, err = q.Enqueue(2)
	require.NoError(t, err)

	res, err := q.Dequeue()
	require.NoError(t, err)
	assert.Equal(t, 1.0, res.Data)
	assert.Equal(t, "Dequeued 1", res.Message)
	assert.Equal(t, []float64{2}, q.Values())

	front, err := q.Front()
	require.NoError(t, err)
	assert.Equal(t, "Front element: 2", front.Message)
	rear, err := q.Rear()
	require.NoError(t, err)
	assert.Equal(t, "Rear element: 2", rear.Message)
}

func TestQueueUnderflowAndCapacity(t *testing.T) {
	q := NewQueue()
	_, err := q.Dequeue()
	assert.ErrorIs(t, err, ErrUnderflow)
	_, err = q.Front()
	assert.ErrorIs(t, err, ErrUnderflow)
	_, err = q.Rear()
	assert.ErrorIs(t, err, ErrUnderflow)

	for i := 0; i < QueueCapacity; i++ {
		_, err := q.Enqueue(float64(i))
		require.NoError(t, err)
	}
	_, err = q.Enqueue(100)
	assert.ErrorIs(t, err, ErrCapacityExceeded)
	assert.Equal(t, "Queue overflow! Maximum size reached.", err.Error())

	assert.Equal(t, "Found 4 at position 4", q.Search(4).Message)
}

func TestHashMapOverwrite(t *testing.T) {
	m := NewHashMap()
	res := m.Put("a", 1.0)
	assert.Equal(t, `Inserted key "a" with value 1`, res.Message)

	res = m.Put("a", 2.0)
	assert.Equal(t, `Updated key "a" from 1 to 2`, res.Message)
	assert.Equal(t, 1.0, res.Data)

	v, ok := m.Lookup("a")
	require.True(t, ok)
	assert.Equal(t, 2.0, v)
	assert.Equal(t, `Value for key "a": 2`, m.Get("a").Message)
	assert.Equal(t, 1, m.Size())
}

func TestHashMapMissingKeys(t *testing.T) {
	m := NewHashMap()
	assert.Equal(t, `Key "zz" not found`, m.Get("zz").Message)
	assert.False(t, m.Has("zz"))

	_, err := m.Delete("zz")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, `Key "zz" not found`, err.Error())
}

func TestHashMapCollisions(t *testing.T) {
	// "a" (97) and "k" (107) both land in bucket 7
	require.Equal(t, Hash("a"), Hash("k"))

	m := NewHashMap()
	m.Put("a", "x")
	m.Put("k", "y")
	assert.Equal(t, 2, m.Size())
	assert.Equal(t, 2, m.BucketSizes()[Hash("a")])

	res, err := m.Delete("a")
	require.NoError(t, err)
	assert.Equal(t, `Deleted key "a" with value x`, res.Message)
	assert.True(t, m.Has("k"))
	assert.Equal(t, 1, m.Size())

	_, err = m.Delete("k")
	require.NoError(t, err)
	assert.True(t, m.IsEmpty())
	assert.Nil(t, m.buckets[Hash("k")])
}

func TestHashRolling(t *testing.T) {
	// ((0*31+97)%10*31+98)%10 = (7*31+98)%10 = 315%10 = 5
	assert.Equal(t, 5, Hash("ab"))
	assert.Equal(t, 0, Hash(""))
}

func TestHashMapSnapshot(t *testing.T) {
	m := NewHashMap()
	assert.Equal(t, "HashMap is empty", m.Traverse())
	for _, k := range []string{"b", "c", "d", "e", "f", "g"} {
		m.Put(k, 1.0)
	}
	s := m.Snapshot()
	require.Len(t, s.Nodes, 6)
	// bucket order: d(0) e(1) f(2) g(3) b(8) c(9)
	assert.Equal(t, "d:1", s.Nodes[0].Value)
	assert.Equal(t, "b:1", s.Nodes[4].Value)
	assert.Equal(t, 100.0, s.Nodes[5].X)
	assert.Equal(t, 180.0, s.Nodes[5].Y)
	assert.Contains(t, m.Traverse(), `"b" => 1`)
}
