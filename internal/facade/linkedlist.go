package facade

import (
	"github.com/GriffinCanCode/dsaviz/internal/engine"
	"github.com/GriffinCanCode/dsaviz/internal/shared/types"
	"github.com/GriffinCanCode/dsaviz/internal/visual"
)

var variantKinds = map[engine.ListVariant]types.Kind{
	engine.Singly:   types.KindLinkedList,
	engine.Doubly:   types.KindDoublyLinkedList,
	engine.Circular: types.KindCircularLinkedList,
}

// VariantFor maps a linked list kind to its engine variant
func VariantFor(kind types.Kind) engine.ListVariant {
	for v, k := range variantKinds {
		if k == kind {
			return v
		}
	}
	return engine.Singly
}

// LinkedList adapts engine.LinkedList
type LinkedList struct {
	list *engine.LinkedList
}

// NewLinkedList creates an empty list
func NewLinkedList(variant engine.ListVariant) *LinkedList {
	return &LinkedList{list: engine.NewLinkedList(variant)}
}

// Add appends v
func (l *LinkedList) Add(v float64) {
	l.list.Insert(v)
}

// AddAt inserts v before index
func (l *LinkedList) AddAt(index int, v float64) error {
	_, err := l.list.InsertAt(index, v)
	return err
}

// Remove deletes the first occurrence of v
func (l *LinkedList) Remove(v float64) error {
	_, err := l.list.Delete(v)
	return err
}

// RemoveAt deletes the element at index and returns it
func (l *LinkedList) RemoveAt(index int) (float64, error) {
	res, err := l.list.DeleteAt(index)
	if err != nil {
		return 0, err
	}
	v, _ := res.Data.(float64)
	return v, nil
}

func (l *LinkedList) Contains(v float64) bool { return l.list.Contains(v) }
func (l *LinkedList) IndexOf(v float64) int   { return l.list.IndexOf(v) }
func (l *LinkedList) ToArray() []float64      { return l.list.Values() }
func (l *LinkedList) Size() int               { return l.list.Size() }
func (l *LinkedList) String() string          { return l.list.Traverse() }

// Variant is the list flavour requested at construction
func (l *LinkedList) Variant() engine.ListVariant { return l.list.Variant }

func (l *LinkedList) Kind() types.Kind {
	if k, ok := variantKinds[l.list.Variant]; ok {
		return k
	}
	return types.KindLinkedList
}

func (l *LinkedList) Capture() types.Capture { return types.CaptureLinkedList }

// Snapshot forwards the engine snapshot
func (l *LinkedList) Snapshot() visual.State { return l.list.Snapshot() }
