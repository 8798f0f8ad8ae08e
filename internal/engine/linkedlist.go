package engine

import (
	"strings"

	"github.com/GriffinCanCode/dsaviz/internal/visual"
)

// ListVariant records which list flavour was requested. All variants share
// singly linked behavior.
type ListVariant string

const (
	Singly   ListVariant = "singly"
	Doubly   ListVariant = "doubly"
	Circular ListVariant = "circular"
)

var listLayout = visual.Grid{OriginX: 100, OriginY: 200, StepX: 120}

type listNode struct {
	value float64
	next  *listNode
}

// LinkedList is an unbounded singly linked list
type LinkedList struct {
	Variant ListVariant

	head  *listNode
	count int
}

// NewLinkedList creates an empty list of the given variant
func NewLinkedList(variant ListVariant) *LinkedList {
	if variant == "" {
		variant = Singly
	}
	return &LinkedList{Variant: variant}
}

// Insert appends v at the tail
func (l *LinkedList) Insert(v float64) Result {
	n := &listNode{value: v}
	if l.head == nil {
		l.head = n
	} else {
		cur := l.head
		for cur.next != nil {
			cur = cur.next
		}
		cur.next = n
	}
	l.count++
	return result("insert", v, "Inserted %s at the end", FormatNumber(v))
}

// InsertAt links v in before position index; index may equal Size
func (l *LinkedList) InsertAt(index int, v float64) (Result, error) {
	if index < 0 || index > l.count {
		return Result{}, opError("insertAt", ErrIndexOutOfRange, "Invalid index %d. Valid range: 0-%d", index, l.count)
	}
	n := &listNode{value: v}
	if index == 0 {
		n.next = l.head
		l.head = n
	} else {
		prev := l.nodeAt(index - 1)
		n.next = prev.next
		prev.next = n
	}
	l.count++
	return result("insertAt", v, "Inserted %s at index %d", FormatNumber(v), index), nil
}

// Delete unlinks the first node holding v
func (l *LinkedList) Delete(v float64) (Result, error) {
	if l.head == nil {
		return Result{}, opError("delete", ErrNotFound, "List is empty")
	}
	if l.head.value == v {
		l.head = l.head.next
		l.count--
		return result("delete", v, "Deleted %s", FormatNumber(v)), nil
	}

	cur := l.head
	for cur.next != nil && cur.next.value != v {
		cur = cur.next
	}
	if cur.next == nil {
		return Result{}, opError("delete", ErrNotFound, "Value %s not found", FormatNumber(v))
	}
	cur.next = cur.next.next
	l.count--
	return result("delete", v, "Deleted %s", FormatNumber(v)), nil
}

// DeleteAt unlinks the node at index; Data holds its value
func (l *LinkedList) DeleteAt(index int) (Result, error) {
	if index < 0 || index >= l.count {
		return Result{}, opError("deleteAt", ErrIndexOutOfRange, "Invalid index %d. Valid range: 0-%d", index, l.count-1)
	}
	var v float64
	if index == 0 {
		v = l.head.value
		l.head = l.head.next
	} else {
		prev := l.nodeAt(index - 1)
		v = prev.next.value
		prev.next = prev.next.next
	}
	l.count--
	return result("deleteAt", v, "Deleted %s from index %d", FormatNumber(v), index), nil
}

// Search reports the index of the first v; Data holds the index or -1
func (l *LinkedList) Search(v float64) Result {
	index := l.IndexOf(v)
	if index == -1 {
		return result("search", -1, "Value %s not found", FormatNumber(v))
	}
	return result("search", index, "Found %s at index %d", FormatNumber(v), index)
}

// IndexOf returns the position of the first v or -1
func (l *LinkedList) IndexOf(v float64) int {
	i := 0
	for cur := l.head; cur != nil; cur = cur.next {
		if cur.value == v {
			return i
		}
		i++
	}
	return -1
}

// Contains reports whether v is in the list
func (l *LinkedList) Contains(v float64) bool {
	return l.IndexOf(v) >= 0
}

// Values returns the contents head to tail
func (l *LinkedList) Values() []float64 {
	out := make([]float64, 0, l.count)
	for cur := l.head; cur != nil; cur = cur.next {
		out = append(out, cur.value)
	}
	return out
}

// Traverse summarizes the chain
func (l *LinkedList) Traverse() string {
	if l.head == nil {
		return "List is empty"
	}
	var sb strings.Builder
	sb.WriteString("List: ")
	sb.WriteString(joinNumbers(l.Values(), " -> "))
	sb.WriteString(" -> null")
	return sb.String()
}

func (l *LinkedList) Size() int     { return l.count }
func (l *LinkedList) IsEmpty() bool { return l.head == nil }

// Snapshot lays the chain out left to right with one edge per next pointer
func (l *LinkedList) Snapshot() visual.State {
	state := visual.State{Nodes: []visual.Node{}, Edges: []visual.Edge{}}
	i := 0
	for cur := l.head; cur != nil; cur = cur.next {
		p := listLayout.At(i)
		state.Nodes = append(state.Nodes, visual.Node{ID: visual.IndexID(i), Value: cur.value, X: p.X, Y: p.Y})
		if cur.next != nil {
			state.Edges = append(state.Edges, visual.Edge{From: visual.IndexID(i), To: visual.IndexID(i + 1)})
		}
		i++
	}
	return state
}

func (l *LinkedList) nodeAt(index int) *listNode {
	cur := l.head
	for i := 0; i < index; i++ {
		cur = cur.next
	}
	return cur
}
