package engine

import (
	"slices"

	"github.com/GriffinCanCode/dsaviz/internal/visual"
)

// QueueCapacity is the maximum length of a Queue
const QueueCapacity = 15

var queueLayout = visual.Grid{OriginX: 100, OriginY: 200, StepX: 80}

// Queue is a bounded FIFO
type Queue struct {
	items []float64
}

// NewQueue creates an empty queue
func NewQueue() *Queue {
	return &Queue{items: []float64{}}
}

// Enqueue adds v at the rear
func (q *Queue) Enqueue(v float64) (Result, error) {
	if len(q.items) >= QueueCapacity {
		return Result{}, opError("enqueue", ErrCapacityExceeded, "Queue overflow! Maximum size reached.")
	}
	q.items = append(q.items, v)
	return result("enqueue", v, "Enqueued %s", FormatNumber(v)), nil
}

// Dequeue removes the front element; Data holds the removed value
func (q *Queue) Dequeue() (Result, error) {
	if len(q.items) == 0 {
		return Result{}, opError("dequeue", ErrUnderflow, "Queue underflow! Queue is empty.")
	}
	v := q.items[0]
	q.items = slices.Delete(q.items, 0, 1)
	return result("dequeue", v, "Dequeued %s", FormatNumber(v)), nil
}

// Front reports the element that would be dequeued next
func (q *Queue) Front() (Result, error) {
	if len(q.items) == 0 {
		return Result{}, opError("front", ErrUnderflow, "Queue is empty")
	}
	return result("front", q.items[0], "Front element: %s", FormatNumber(q.items[0])), nil
}

// Rear reports the most recently enqueued element
func (q *Queue) Rear() (Result, error) {
	if len(q.items) == 0 {
		return Result{}, opError("rear", ErrUnderflow, "Queue is empty")
	}
	v := q.items[len(q.items)-1]
	return result("rear", v, "Rear element: %s", FormatNumber(v)), nil
}

// Search reports the distance of the first v from the front; Data holds the
// distance or -1
func (q *Queue) Search(v float64) Result {
	index := slices.Index(q.items, v)
	if index == -1 {
		return result("search", -1, "Value %s not found", FormatNumber(v))
	}
	return result("search", index, "Found %s at position %d", FormatNumber(v), index)
}

// Values returns the contents front to rear
func (q *Queue) Values() []float64 {
	return slices.Clone(q.items)
}

// Traverse summarizes the contents front to rear
func (q *Queue) Traverse() string {
	if len(q.items) == 0 {
		return "Queue is empty"
	}
	return "Queue (front to rear): [" + joinNumbers(q.items, ", ") + "]"
}

func (q *Queue) Size() int     { return len(q.items) }
func (q *Queue) IsEmpty() bool { return len(q.items) == 0 }

// Snapshot lays the elements out front to rear in a single row
func (q *Queue) Snapshot() visual.State {
	return visual.State{Nodes: visual.Sequence(numbersToAny(q.items), queueLayout.At)}
}
