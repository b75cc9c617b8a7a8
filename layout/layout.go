package layout

import (
	"fmt"
)

type Point struct {
	X float64
	Y float64
}

func NewPoint(x, y float64) Point {
	return Point{
		X: x,
		Y: y,
	}
}

func (p Point) String() string {
	return fmt.Sprintf("(%.2f, %.2f)", p.X, p.Y)
}

// Rect is expressed in screen space: Top is above Bottom.
type Rect struct {
	Left   float64
	Top    float64
	Right  float64
	Bottom float64
}

func NewRect(left, top, right, bottom float64) Rect {
	return Rect{
		Left:   left,
		Top:    top,
		Right:  right,
		Bottom: bottom,
	}
}

func (r Rect) Width() float64 {
	return r.Right - r.Left
}

func (r Rect) Height() float64 {
	return r.Bottom - r.Top
}

func (r Rect) Inverted() bool {
	return r.Left > r.Right || r.Top > r.Bottom
}

func (r Rect) Empty() bool {
	return r.Left >= r.Right || r.Top >= r.Bottom
}

// Contains reports whether (x, y) lies in r. Right and bottom edges are
// excluded, like the pixels of a raster.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.Left && x < r.Right && y >= r.Top && y < r.Bottom
}

func (r Rect) ContainsRect(other Rect) bool {
	return other.Left >= r.Left && other.Top >= r.Top && other.Right <= r.Right && other.Bottom <= r.Bottom
}

func (r Rect) Offset(dx, dy float64) Rect {
	r.Left += dx
	r.Right += dx
	r.Top += dy
	r.Bottom += dy
	return r
}

func (r Rect) Normalize() Rect {
	return Rect{
		Left:   min(r.Left, r.Right),
		Top:    min(r.Top, r.Bottom),
		Right:  max(r.Left, r.Right),
		Bottom: max(r.Top, r.Bottom),
	}
}

func (r Rect) String() string {
	return fmt.Sprintf("%.2f,%.2f,%.2f,%.2f", r.Left, r.Top, r.Right, r.Bottom)
}

// Negotiate returns the area both requests agree on: the inner value of
// each edge.
func Negotiate(a, b Rect) Rect {
	return Rect{
		Left:   max(a.Left, b.Left),
		Top:    max(a.Top, b.Top),
		Right:  min(a.Right, b.Right),
		Bottom: min(a.Bottom, b.Bottom),
	}
}
