package visual

import (
	"fmt"
	"math"
)

// Point is a 2D canvas coordinate
type Point struct {
	X float64
	Y float64
}

// Grid places items left to right, wrapping after PerRow items.
// PerRow <= 0 means a single unbounded row.
type Grid struct {
	OriginX float64
	OriginY float64
	StepX   float64
	StepY   float64
	PerRow  int
}

// At returns the position of the i-th item
func (g Grid) At(i int) Point {
	if g.PerRow <= 0 {
		return Point{X: g.OriginX + float64(i)*g.StepX, Y: g.OriginY}
	}
	row := i / g.PerRow
	col := i % g.PerRow
	return Point{
		X: g.OriginX + float64(col)*g.StepX,
		Y: g.OriginY + float64(row)*g.StepY,
	}
}

// Column places items bottom to top starting at the base
type Column struct {
	X     float64
	BaseY float64
	StepY float64
}

// At returns the position of the i-th item counted from the bottom
func (c Column) At(i int) Point {
	return Point{X: c.X, Y: c.BaseY - float64(i)*c.StepY}
}

// Circle places n items evenly around a circle, first item at angle zero
type Circle struct {
	CenterX float64
	CenterY float64
	Radius  float64
}

// At returns the position of the i-th of n items
func (c Circle) At(i, n int) Point {
	if n <= 0 {
		return Point{X: c.CenterX, Y: c.CenterY}
	}
	angle := 2 * math.Pi * float64(i) / float64(n)
	return Point{
		X: c.CenterX + c.Radius*math.Cos(angle),
		Y: c.CenterY + c.Radius*math.Sin(angle),
	}
}

// IndexID is the positional node id used by sequence layouts
func IndexID(i int) string {
	return fmt.Sprintf("node-%d", i)
}

// Sequence lays values out positionally with ids node-0..node-n
func Sequence(values []any, at func(i int) Point) []Node {
	nodes := make([]Node, 0, len(values))
	for i, v := range values {
		p := at(i)
		nodes = append(nodes, Node{ID: IndexID(i), Value: v, X: p.X, Y: p.Y})
	}
	return nodes
}
