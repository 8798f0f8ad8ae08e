package engine

import "github.com/GriffinCanCode/dsaviz/internal/visual"

// Structure is the capability set shared by every engine
type Structure interface {
	Traverse() string
	Size() int
	IsEmpty() bool
	Snapshot() visual.State
}

var (
	_ Structure = (*Array)(nil)
	_ Structure = (*Stack)(nil)
	_ Structure = (*Queue)(nil)
	_ Structure = (*HashMap)(nil)
	_ Structure = (*LinkedList)(nil)
	_ Structure = (*BST)(nil)
	_ Structure = (*Graph)(nil)
)
