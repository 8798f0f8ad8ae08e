package engine

import (
	"slices"

	"github.com/GriffinCanCode/dsaviz/internal/visual"
)

// StackCapacity is the maximum depth of a Stack
const StackCapacity = 15

var stackLayout = visual.Column{X: 300, BaseY: 400, StepY: 50}

// Stack is a bounded LIFO
type Stack struct {
	items []float64
}

// NewStack creates an empty stack
func NewStack() *Stack {
	return &Stack{items: []float64{}}
}

// Push adds v on top
func (s *Stack) Push(v float64) (Result, error) {
	if len(s.items) >= StackCapacity {
		return Result{}, opError("push", ErrCapacityExceeded, "Stack overflow! Maximum size reached.")
	}
	s.items = append(s.items, v)
	return result("push", v, "Pushed %s onto stack", FormatNumber(v)), nil
}

// Pop removes the top element; Data holds the removed value
func (s *Stack) Pop() (Result, error) {
	if len(s.items) == 0 {
		return Result{}, opError("pop", ErrUnderflow, "Stack underflow! Stack is empty.")
	}
	v := s.items[len(s.items)-1]
	s.items = s.items[:len(s.items)-1]
	return result("pop", v, "Popped %s from stack", FormatNumber(v)), nil
}

// Peek reports the top element without removing it
func (s *Stack) Peek() (Result, error) {
	if len(s.items) == 0 {
		return Result{}, opError("peek", ErrUnderflow, "Stack is empty")
	}
	v := s.items[len(s.items)-1]
	return result("peek", v, "Top element: %s", FormatNumber(v)), nil
}

// Search reports the distance of the topmost v from the top; Data holds
// the distance or -1
func (s *Stack) Search(v float64) Result {
	index := -1
	for i := len(s.items) - 1; i >= 0; i-- {
		if s.items[i] == v {
			index = i
			break
		}
	}
	if index == -1 {
		return result("search", -1, "Value %s not found", FormatNumber(v))
	}
	distance := len(s.items) - index - 1
	return result("search", distance, "Found %s at position %d from top", FormatNumber(v), distance)
}

// Values returns the contents bottom to top
func (s *Stack) Values() []float64 {
	return slices.Clone(s.items)
}

// Traverse summarizes the contents top to bottom
func (s *Stack) Traverse() string {
	if len(s.items) == 0 {
		return "Stack is empty"
	}
	top := slices.Clone(s.items)
	slices.Reverse(top)
	return "Stack (top to bottom): [" + joinNumbers(top, ", ") + "]"
}

func (s *Stack) Size() int     { return len(s.items) }
func (s *Stack) IsEmpty() bool { return len(s.items) == 0 }

// Snapshot stacks the elements bottom to top
func (s *Stack) Snapshot() visual.State {
	return visual.State{Nodes: visual.Sequence(numbersToAny(s.items), stackLayout.At)}
}
