package engine

import (
	"slices"

	"github.com/GriffinCanCode/dsaviz/internal/visual"
)

// ArrayCapacity is the maximum number of elements an Array holds
const ArrayCapacity = 20

var arrayLayout = visual.Grid{OriginX: 100, OriginY: 200, StepX: 80}

// Array is a bounded sequence allowing duplicates
type Array struct {
	items []float64
}

// NewArray creates an empty array
func NewArray() *Array {
	return &Array{items: []float64{}}
}

// Insert appends a value
func (a *Array) Insert(v float64) (Result, error) {
	if len(a.items) >= ArrayCapacity {
		return Result{}, opError("insert", ErrCapacityExceeded, "Array overflow! Maximum size reached.")
	}
	a.items = append(a.items, v)
	return result("insert", v, "Inserted %s at index %d", FormatNumber(v), len(a.items)-1), nil
}

// InsertAt inserts a value before position index; index may equal Size
func (a *Array) InsertAt(index int, v float64) (Result, error) {
	if index < 0 || index > len(a.items) {
		return Result{}, opError("insertAt", ErrIndexOutOfRange, "Invalid index %d. Valid range: 0-%d", index, len(a.items))
	}
	if len(a.items) >= ArrayCapacity {
		return Result{}, opError("insertAt", ErrCapacityExceeded, "Array overflow! Maximum size reached.")
	}
	a.items = slices.Insert(a.items, index, v)
	return result("insertAt", v, "Inserted %s at index %d", FormatNumber(v), index), nil
}

// Delete removes the first occurrence of v
func (a *Array) Delete(v float64) (Result, error) {
	index := slices.Index(a.items, v)
	if index == -1 {
		return Result{}, opError("delete", ErrNotFound, "Value %s not found in array", FormatNumber(v))
	}
	a.items = slices.Delete(a.items, index, index+1)
	return result("delete", v, "Deleted %s from index %d", FormatNumber(v), index), nil
}

// DeleteAt removes the element at index
func (a *Array) DeleteAt(index int) (Result, error) {
	if index < 0 || index >= len(a.items) {
		return Result{}, opError("deleteAt", ErrIndexOutOfRange, "Invalid index %d. Valid range: 0-%d", index, len(a.items)-1)
	}
	v := a.items[index]
	a.items = slices.Delete(a.items, index, index+1)
	return result("deleteAt", v, "Deleted %s from index %d", FormatNumber(v), index), nil
}

// Update replaces the element at index
func (a *Array) Update(index int, v float64) (Result, error) {
	if index < 0 || index >= len(a.items) {
		return Result{}, opError("update", ErrIndexOutOfRange, "Invalid index %d. Valid range: 0-%d", index, len(a.items)-1)
	}
	old := a.items[index]
	a.items[index] = v
	return result("update", v, "Updated index %d from %s to %s", index, FormatNumber(old), FormatNumber(v)), nil
}

// Search reports where v first occurs; Data holds the index or -1
func (a *Array) Search(v float64) Result {
	index := a.IndexOf(v)
	if index == -1 {
		return result("search", -1, "Value %s not found", FormatNumber(v))
	}
	return result("search", index, "Found %s at index %d", FormatNumber(v), index)
}

// IndexOf returns the first index of v or -1
func (a *Array) IndexOf(v float64) int {
	return slices.Index(a.items, v)
}

// Get returns the element at index
func (a *Array) Get(index int) (float64, error) {
	if index < 0 || index >= len(a.items) {
		return 0, opError("get", ErrIndexOutOfRange, "Invalid index %d. Valid range: 0-%d", index, len(a.items)-1)
	}
	return a.items[index], nil
}

// Values returns a copy of the contents
func (a *Array) Values() []float64 {
	return slices.Clone(a.items)
}

// Traverse summarizes the contents
func (a *Array) Traverse() string {
	if len(a.items) == 0 {
		return "Array is empty"
	}
	return "Array: [" + joinNumbers(a.items, ", ") + "]"
}

func (a *Array) Size() int     { return len(a.items) }
func (a *Array) IsEmpty() bool { return len(a.items) == 0 }

// Snapshot lays the elements out in a single row
func (a *Array) Snapshot() visual.State {
	return visual.State{Nodes: visual.Sequence(numbersToAny(a.items), arrayLayout.At)}
}
