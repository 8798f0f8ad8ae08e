package facade

import (
	"github.com/GriffinCanCode/dsaviz/internal/shared/types"
	"github.com/GriffinCanCode/dsaviz/internal/visual"
)

// Adapter is implemented by every facade
type Adapter interface {
	// Kind is the structure kind the adapter was created as
	Kind() types.Kind
	// Capture is the capture tag the adapter is reported under
	Capture() types.Capture
	Snapshot() visual.State
	String() string
}

var (
	_ Adapter = (*LinkedList)(nil)
	_ Adapter = (*BinarySearchTree)(nil)
	_ Adapter = (*Graph)(nil)
)
