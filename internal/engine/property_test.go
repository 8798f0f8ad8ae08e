package engine

import (
	"slices"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

func propertyParameters() *gopter.TestParameters {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	return parameters
}

func floats(values []int) []float64 {
	out := make([]float64, len(values))
	for i, v := range values {
		out[i] = float64(v)
	}
	return out
}

// TestLinearInvariants checks ordering and capacity for the bounded structures
func TestLinearInvariants(t *testing.T) {
	properties := gopter.NewProperties(propertyParameters())

	properties.Property("stack pops in reverse push order", prop.ForAll(
		func(raw []int) bool {
			s := NewStack()
			var accepted []float64
			for _, v := range floats(raw) {
				if _, err := s.Push(v); err == nil {
					accepted = append(accepted, v)
				}
			}
			if s.Size() > StackCapacity || len(accepted) != min(len(raw), StackCapacity) {
				return false
			}

			var popped []float64
			for !s.IsEmpty() {
				res, err := s.Pop()
				if err != nil {
					return false
				}
				popped = append(popped, res.Data.(float64))
			}
			slices.Reverse(popped)
			return slices.Equal(popped, accepted)
		},
		gen.SliceOf(gen.IntRange(-100, 100)),
	))

	properties.Property("queue dequeues in enqueue order", prop.ForAll(
		func(raw []int) bool {
			q := NewQueue()
			var accepted []float64
			for _, v := range floats(raw) {
				if _, err := q.Enqueue(v); err == nil {
					accepted = append(accepted, v)
				}
			}
			if q.Size() > QueueCapacity {
				return false
			}

			var dequeued []float64
			for !q.IsEmpty() {
				res, err := q.Dequeue()
				if err != nil {
					return false
				}
				dequeued = append(dequeued, res.Data.(float64))
			}
			return slices.Equal(dequeued, accepted)
		},
		gen.SliceOf(gen.IntRange(-100, 100)),
	))

	properties.Property("array snapshot mirrors values", prop.ForAll(
		func(raw []int) bool {
			a := NewArray()
			for _, v := range floats(raw) {
				_, _ = a.Insert(v)
			}
			state := a.Snapshot()
			if a.Size() > ArrayCapacity || len(state.Nodes) != a.Size() {
				return false
			}
			for i, v := range a.Values() {
				if state.Nodes[i].Value != v {
					return false
				}
			}
			return true
		},
		gen.SliceOf(gen.IntRange(-100, 100)),
	))

	properties.TestingRun(t)
}

// TestBSTInvariants checks ordering after arbitrary inserts and deletes
func TestBSTInvariants(t *testing.T) {
	properties := gopter.NewProperties(propertyParameters())

	properties.Property("inorder is strictly increasing and deduplicated", prop.ForAll(
		func(inserts, deletes []int) bool {
			tree := NewBST()
			expected := map[float64]bool{}
			for _, v := range floats(inserts) {
				_, err := tree.Insert(v)
				if expected[v] != (err != nil) {
					return false
				}
				expected[v] = true
			}
			for _, v := range floats(deletes) {
				_, err := tree.Delete(v)
				if expected[v] != (err == nil) {
					return false
				}
				delete(expected, v)
			}

			inorder := tree.Inorder()
			if len(inorder) != len(expected) || tree.Size() != len(expected) {
				return false
			}
			for i := 1; i < len(inorder); i++ {
				if inorder[i-1] >= inorder[i] {
					return false
				}
			}
			return len(tree.Snapshot().Nodes) == len(expected)
		},
		gen.SliceOf(gen.IntRange(0, 40)),
		gen.SliceOf(gen.IntRange(0, 40)),
	))

	properties.TestingRun(t)
}

// TestGraphInvariants checks adjacency symmetry and snapshot shape
func TestGraphInvariants(t *testing.T) {
	properties := gopter.NewProperties(propertyParameters())

	vertex := gen.IntRange(0, 5).Map(func(i int) string {
		return string(rune('A' + i))
	})

	properties.Property("edges are symmetric and drawn once", prop.ForAll(
		func(froms, tos []string) bool {
			g := NewGraph()
			n := min(len(froms), len(tos))
			for i := 0; i < n; i++ {
				if froms[i] == tos[i] {
					continue
				}
				g.AddEdge(froms[i], tos[i])
			}

			for _, a := range g.Vertices() {
				for _, b := range g.Vertices() {
					if g.HasEdge(a, b) != g.HasEdge(b, a) {
						return false
					}
				}
			}

			state := g.Snapshot()
			return len(state.Nodes) == g.Size() &&
				len(state.Edges) == g.EdgeCount() &&
				len(state.Normalize().Edges) == len(state.Edges)
		},
		gen.SliceOf(vertex),
		gen.SliceOf(vertex),
	))

	properties.Property("removing a vertex drops its edges", prop.ForAll(
		func(froms, tos []string, victim string) bool {
			g := NewGraph()
			n := min(len(froms), len(tos))
			for i := 0; i < n; i++ {
				if froms[i] != tos[i] {
					g.AddEdge(froms[i], tos[i])
				}
			}
			if !g.HasVertex(victim) {
				return true
			}
			if _, err := g.RemoveVertex(victim); err != nil {
				return false
			}
			for _, e := range g.Snapshot().Edges {
				if e.From == victim || e.To == victim {
					return false
				}
			}
			return !g.HasVertex(victim)
		},
		gen.SliceOf(vertex),
		gen.SliceOf(vertex),
		vertex,
	))

	properties.TestingRun(t)
}

// TestHashMapInvariants checks last-write-wins and size accounting
func TestHashMapInvariants(t *testing.T) {
	properties := gopter.NewProperties(propertyParameters())

	properties.Property("lookup returns the last put value", prop.ForAll(
		func(keys []string, values []int) bool {
			m := NewHashMap()
			expected := map[string]int{}
			n := min(len(keys), len(values))
			for i := 0; i < n; i++ {
				m.Put(keys[i], values[i])
				expected[keys[i]] = values[i]
			}
			if m.Size() != len(expected) || len(m.Entries()) != len(expected) {
				return false
			}
			for k, v := range expected {
				got, ok := m.Lookup(k)
				if !ok || got != v {
					return false
				}
			}
			total := 0
			for _, size := range m.BucketSizes() {
				total += size
			}
			return total == len(expected)
		},
		gen.SliceOf(gen.AlphaString()),
		gen.SliceOf(gen.IntRange(-10, 10)),
	))

	properties.TestingRun(t)
}
