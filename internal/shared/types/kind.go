package types

import "fmt"

// Kind identifies one of the supported data structure categories
type Kind string

const (
	KindArray              Kind = "array"
	KindLinkedList         Kind = "linkedlist"
	KindDoublyLinkedList   Kind = "doublylinkedlist"
	KindCircularLinkedList Kind = "circularlinkedlist"
	KindStack              Kind = "stack"
	KindQueue              Kind = "queue"
	KindHashMap            Kind = "hashmap"
	KindBST                Kind = "bst"
	KindGraph              Kind = "graph"
)

// Kinds lists every kind in display order
var Kinds = []Kind{
	KindArray,
	KindLinkedList,
	KindDoublyLinkedList,
	KindCircularLinkedList,
	KindStack,
	KindQueue,
	KindHashMap,
	KindBST,
	KindGraph,
}

var displayNames = map[Kind]string{
	KindArray:              "Array",
	KindLinkedList:         "Linked List",
	KindDoublyLinkedList:   "Doubly Linked List",
	KindCircularLinkedList: "Circular Linked List",
	KindStack:              "Stack",
	KindQueue:              "Queue",
	KindHashMap:            "Hash Map",
	KindBST:                "Binary Search Tree",
	KindGraph:              "Graph",
}

// ParseKind validates a kind tag
func ParseKind(s string) (Kind, error) {
	k := Kind(s)
	if _, ok := displayNames[k]; !ok {
		return "", fmt.Errorf("unknown structure kind %q", s)
	}
	return k, nil
}

// Valid reports whether k is a known kind
func (k Kind) Valid() bool {
	_, ok := displayNames[k]
	return ok
}

// DisplayName returns the human readable name of the kind
func (k Kind) DisplayName() string {
	return displayNames[k]
}

// String implements fmt.Stringer
func (k Kind) String() string { return string(k) }

// Capture tags the structure found at the end of a run
type Capture string

const (
	CaptureNone       Capture = ""
	CaptureArray      Capture = "array"
	CaptureStack      Capture = "stack"
	CaptureQueue      Capture = "queue"
	CaptureMap        Capture = "map"
	CaptureLinkedList Capture = "linkedlist"
	CaptureBST        Capture = "bst"
	CaptureGraph      Capture = "graph"
)

// Binding pairs a well-known top-level variable name with its capture tag
type Binding struct {
	Name    string
	Capture Capture
}

// Bindings is the ordered capture convention; the first binding present wins
var Bindings = []Binding{
	{Name: "arr", Capture: CaptureArray},
	{Name: "stack", Capture: CaptureStack},
	{Name: "queue", Capture: CaptureQueue},
	{Name: "map", Capture: CaptureMap},
	{Name: "list", Capture: CaptureLinkedList},
	{Name: "bst", Capture: CaptureBST},
	{Name: "graph", Capture: CaptureGraph},
}

// IsFacade reports whether the capture is backed by an injected adapter
// rather than a plain collection
func (c Capture) IsFacade() bool {
	switch c {
	case CaptureLinkedList, CaptureBST, CaptureGraph:
		return true
	}
	return false
}
