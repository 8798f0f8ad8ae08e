package facade

import (
	"github.com/GriffinCanCode/dsaviz/internal/engine"
	"github.com/GriffinCanCode/dsaviz/internal/shared/types"
	"github.com/GriffinCanCode/dsaviz/internal/visual"
)

// BinarySearchTree adapts engine.BST
type BinarySearchTree struct {
	tree *engine.BST
}

// NewBinarySearchTree creates an empty tree
func NewBinarySearchTree() *BinarySearchTree {
	return &BinarySearchTree{tree: engine.NewBST()}
}

// Insert adds v; duplicates fail
func (b *BinarySearchTree) Insert(v float64) error {
	_, err := b.tree.Insert(v)
	return err
}

// Remove deletes v
func (b *BinarySearchTree) Remove(v float64) error {
	_, err := b.tree.Delete(v)
	return err
}

func (b *BinarySearchTree) Contains(v float64) bool { return b.tree.Contains(v) }
func (b *BinarySearchTree) Inorder() []float64      { return b.tree.Inorder() }
func (b *BinarySearchTree) Preorder() []float64     { return b.tree.Preorder() }
func (b *BinarySearchTree) Postorder() []float64    { return b.tree.Postorder() }
func (b *BinarySearchTree) Min() (float64, bool)    { return b.tree.Min() }
func (b *BinarySearchTree) Max() (float64, bool)    { return b.tree.Max() }
func (b *BinarySearchTree) Height() int             { return b.tree.Height() }
func (b *BinarySearchTree) Size() int               { return b.tree.Size() }
func (b *BinarySearchTree) String() string          { return b.tree.Traverse() }
func (b *BinarySearchTree) Kind() types.Kind        { return types.KindBST }
func (b *BinarySearchTree) Capture() types.Capture  { return types.CaptureBST }
func (b *BinarySearchTree) Snapshot() visual.State  { return b.tree.Snapshot() }
