// Package projector maps a captured structure to its visualization state.
// Plain collections get projector-owned layouts; facades delegate to their
// engine snapshot.
package projector

import (
	"github.com/GriffinCanCode/dsaviz/internal/sandbox"
	"github.com/GriffinCanCode/dsaviz/internal/shared/types"
	"github.com/GriffinCanCode/dsaviz/internal/visual"
)

// Layouts for raw collections
var (
	ArrayLayout = visual.Grid{OriginX: 80, OriginY: 80, StepX: 80, StepY: 80, PerRow: 8}
	StackLayout = visual.Column{X: 150, BaseY: 500, StepY: 80}
	MapLayout   = visual.Grid{OriginX: 100, OriginY: 100, StepX: 120, StepY: 80, PerRow: 5}
)

// Project renders a capture. An empty capture yields an empty state; a
// capture that could not be read yields an empty state with its message.
func Project(c sandbox.Capture) visual.State {
	if c.Message != "" {
		return visual.WithMessage(c.Message)
	}

	switch c.Tag {
	case types.CaptureArray, types.CaptureQueue:
		return visual.State{Nodes: visual.Sequence(c.Items, ArrayLayout.At)}
	case types.CaptureStack:
		return visual.State{Nodes: visual.Sequence(c.Items, StackLayout.At)}
	case types.CaptureMap:
		labels := make([]any, len(c.Entries))
		for i, e := range c.Entries {
			labels[i] = e.Label
		}
		return visual.State{Nodes: visual.Sequence(labels, MapLayout.At)}
	case types.CaptureLinkedList, types.CaptureBST, types.CaptureGraph:
		if c.Structure == nil {
			return visual.Empty()
		}
		return c.Structure.Snapshot().Normalize()
	}
	return visual.Empty()
}
