package engine

import (
	"github.com/GriffinCanCode/dsaviz/internal/visual"
)

// Tree layout constants
const (
	treeRootX      = 400
	treeRootY      = 50
	treeBaseOffset = 150
	treeRowHeight  = 80
)

type treeNode struct {
	value       float64
	left, right *treeNode
}

// BST is an unbalanced binary search tree of distinct numbers
type BST struct {
	root  *treeNode
	count int
}

// NewBST creates an empty tree
func NewBST() *BST {
	return &BST{}
}

// Insert adds v; inserting an existing value fails and leaves the tree unchanged
func (t *BST) Insert(v float64) (Result, error) {
	root, err := insertNode(t.root, v)
	if err != nil {
		return Result{}, err
	}
	t.root = root
	t.count++
	return result("insert", v, "Inserted %s", FormatNumber(v)), nil
}

func insertNode(n *treeNode, v float64) (*treeNode, error) {
	if n == nil {
		return &treeNode{value: v}, nil
	}
	var err error
	switch {
	case v < n.value:
		n.left, err = insertNode(n.left, v)
	case v > n.value:
		n.right, err = insertNode(n.right, v)
	default:
		return n, opError("insert", ErrDuplicateKey, "Value %s already exists in BST", FormatNumber(v))
	}
	return n, err
}

// Delete removes v. A node with two children takes its in-order successor's
// value and the successor is removed from the right subtree.
func (t *BST) Delete(v float64) (Result, error) {
	if !t.Contains(v) {
		return Result{}, opError("delete", ErrNotFound, "Value %s not found", FormatNumber(v))
	}
	t.root = deleteNode(t.root, v)
	t.count--
	return result("delete", v, "Deleted %s", FormatNumber(v)), nil
}

func deleteNode(n *treeNode, v float64) *treeNode {
	if n == nil {
		return nil
	}
	switch {
	case v < n.value:
		n.left = deleteNode(n.left, v)
	case v > n.value:
		n.right = deleteNode(n.right, v)
	default:
		if n.left == nil {
			return n.right
		}
		if n.right == nil {
			return n.left
		}
		succ := n.right
		for succ.left != nil {
			succ = succ.left
		}
		n.value = succ.value
		n.right = deleteNode(n.right, succ.value)
	}
	return n
}

// Contains reports whether v is in the tree
func (t *BST) Contains(v float64) bool {
	n := t.root
	for n != nil {
		switch {
		case v == n.value:
			return true
		case v < n.value:
			n = n.left
		default:
			n = n.right
		}
	}
	return false
}

// Find describes whether v is present; Data holds the boolean
func (t *BST) Find(v float64) Result {
	if t.Contains(v) {
		return result("find", true, "Found %s in BST", FormatNumber(v))
	}
	return result("find", false, "Value %s not found", FormatNumber(v))
}

// Min returns the smallest value
func (t *BST) Min() (float64, bool) {
	if t.root == nil {
		return 0, false
	}
	n := t.root
	for n.left != nil {
		n = n.left
	}
	return n.value, true
}

// Max returns the largest value
func (t *BST) Max() (float64, bool) {
	if t.root == nil {
		return 0, false
	}
	n := t.root
	for n.right != nil {
		n = n.right
	}
	return n.value, true
}

// Height is the number of nodes on the longest root-to-leaf path
func (t *BST) Height() int {
	return height(t.root)
}

func height(n *treeNode) int {
	if n == nil {
		return 0
	}
	return 1 + max(height(n.left), height(n.right))
}

// Inorder returns the values in ascending order
func (t *BST) Inorder() []float64 {
	out := make([]float64, 0, t.count)
	var walk func(*treeNode)
	walk = func(n *treeNode) {
		if n == nil {
			return
		}
		walk(n.left)
		out = append(out, n.value)
		walk(n.right)
	}
	walk(t.root)
	return out
}

// Preorder returns node, left subtree, right subtree
func (t *BST) Preorder() []float64 {
	out := make([]float64, 0, t.count)
	var walk func(*treeNode)
	walk = func(n *treeNode) {
		if n == nil {
			return
		}
		out = append(out, n.value)
		walk(n.left)
		walk(n.right)
	}
	walk(t.root)
	return out
}

// Postorder returns left subtree, right subtree, node
func (t *BST) Postorder() []float64 {
	out := make([]float64, 0, t.count)
	var walk func(*treeNode)
	walk = func(n *treeNode) {
		if n == nil {
			return
		}
		walk(n.left)
		walk(n.right)
		out = append(out, n.value)
	}
	walk(t.root)
	return out
}

// InorderResult is the display form of Inorder
func (t *BST) InorderResult() Result { return traversalResult("Inorder", t.Inorder()) }

// PreorderResult is the display form of Preorder
func (t *BST) PreorderResult() Result { return traversalResult("Preorder", t.Preorder()) }

// PostorderResult is the display form of Postorder
func (t *BST) PostorderResult() Result { return traversalResult("Postorder", t.Postorder()) }

func traversalResult(name string, values []float64) Result {
	if len(values) == 0 {
		return result(name, values, "Tree is empty")
	}
	return result(name, values, "%s: [%s]", name, joinNumbers(values, ", "))
}

// Traverse is the inorder summary
func (t *BST) Traverse() string {
	return t.InorderResult().Message
}

func (t *BST) Size() int     { return t.count }
func (t *BST) IsEmpty() bool { return t.root == nil }

// Snapshot places the root at (400, 50); each child sits one row lower and
// offset horizontally by half its parent's offset. Node ids are tree paths
// such as root-L-R.
func (t *BST) Snapshot() visual.State {
	state := visual.State{Nodes: []visual.Node{}, Edges: []visual.Edge{}}
	var place func(n *treeNode, x, y, offset float64, id string)
	place = func(n *treeNode, x, y, offset float64, id string) {
		state.Nodes = append(state.Nodes, visual.Node{ID: id, Value: n.value, X: x, Y: y})
		if n.left != nil {
			leftID := id + "-L"
			state.Edges = append(state.Edges, visual.Edge{From: id, To: leftID, Label: "L"})
			place(n.left, x-offset, y+treeRowHeight, offset/2, leftID)
		}
		if n.right != nil {
			rightID := id + "-R"
			state.Edges = append(state.Edges, visual.Edge{From: id, To: rightID, Label: "R"})
			place(n.right, x+offset, y+treeRowHeight, offset/2, rightID)
		}
	}
	if t.root != nil {
		place(t.root, treeRootX, treeRootY, treeBaseOffset, "root")
	}
	return state
}
