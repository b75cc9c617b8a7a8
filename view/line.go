package view

import (
	"github.com/midbel/chartview/canvas"
	"github.com/midbel/chartview/chart"
	"github.com/midbel/chartview/layout"
)

const (
	DefaultClickRadius = 10
	DefaultDotRadius   = 3
)

// Line joins the entries of every visible set and optionally marks them
// with a dot. The region of an entry is a square around its point.
type Line struct {
	ClickRadius float64
}

func NewLine() *Line {
	return &Line{
		ClickRadius: DefaultClickRadius,
	}
}

func (*Line) Orientation() chart.Orientation {
	return chart.Vertical
}

func (*Line) MandatoryBorder() bool {
	return false
}

func (*Line) Prepare(_ Geometry, _ []*chart.Set) {}

func (n *Line) Regions(_ Geometry, sets []*chart.Set) [][]Region {
	rs := makeRegions(sets)
	for i := range sets {
		for j, e := range sets[i].Entries() {
			rs[i][j] = NewRectRegion(layout.NewRect(e.X()-n.ClickRadius, e.Y()-n.ClickRadius, e.X()+n.ClickRadius, e.Y()+n.ClickRadius))
		}
	}
	return rs
}

func (n *Line) Draw(c canvas.Canvas, _ Geometry, sets []*chart.Set) {
	for _, s := range sets {
		if !s.Visible() {
			continue
		}
		var (
			paint = paintOf(s)
			es    = s.Entries()
		)
		paint.Dash = s.Dash
		for i := 1; i < len(es); i++ {
			c.Line(es[i-1].X(), es[i-1].Y(), es[i].X(), es[i].Y(), paint)
		}
		if s.Dots {
			drawDots(c, s)
		}
	}
}

// Point only marks the entries. The region of an entry is a disc around
// its point.
type Point struct {
	ClickRadius float64
}

func NewPoint() *Point {
	return &Point{
		ClickRadius: DefaultClickRadius,
	}
}

func (*Point) Orientation() chart.Orientation {
	return chart.Vertical
}

func (*Point) MandatoryBorder() bool {
	return false
}

func (*Point) Prepare(_ Geometry, _ []*chart.Set) {}

func (p *Point) Regions(_ Geometry, sets []*chart.Set) [][]Region {
	rs := makeRegions(sets)
	for i := range sets {
		for j, e := range sets[i].Entries() {
			rs[i][j] = NewCircleRegion(e.X(), e.Y(), p.ClickRadius)
		}
	}
	return rs
}

func (p *Point) Draw(c canvas.Canvas, _ Geometry, sets []*chart.Set) {
	for _, s := range sets {
		if s.Visible() {
			drawDots(c, s)
		}
	}
}

func drawDots(c canvas.Canvas, s *chart.Set) {
	radius := s.DotRadius
	if radius <= 0 {
		radius = DefaultDotRadius
	}
	for _, e := range s.Entries() {
		c.Circle(e.X(), e.Y(), radius, entryPaint(s, e))
	}
}
