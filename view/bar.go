package view

import (
	"github.com/midbel/chartview/canvas"
	"github.com/midbel/chartview/chart"
	"github.com/midbel/chartview/layout"
)

const (
	DefaultBarSpacing = 10
	DefaultSetSpacing = 2
)

type bars struct {
	BarSpacing float64
	SetSpacing float64

	width  float64
	offset float64
}

// size computes the width of one bar so that the bars of all the sets fit
// in the space between two labels, then the offset of the first bar of a
// group from the label position.
func (b *bars) size(n int, span, barSpacing float64) {
	b.width = (span - barSpacing/2 - b.SetSpacing*float64(n-1)) / float64(n)
	b.width = max(b.width, 0)
	if n%2 == 0 {
		b.offset = float64(n)*b.width/2 + float64(n-1)*(b.SetSpacing/2)
	} else {
		b.offset = float64(n)*b.width/2 + float64((n-1)/2)*b.SetSpacing
	}
}

// each walks the bars group by group. A group starts at the position of
// its label on the first set minus the offset.
func (b *bars) each(sets []*chart.Set, label func(*chart.Entry) float64, fn func(set, index int, start, end float64)) {
	if len(sets) == 0 {
		return
	}
	for i := 0; i < sets[0].Size(); i++ {
		pos := label(sets[0].Entries()[i]) - b.offset
		for j := range sets {
			fn(j, i, pos, pos+b.width)
			pos += b.width + b.SetSpacing
		}
	}
}

// Bar draws vertical bars going from the zero line to the value of each
// entry. Bars of the same index are grouped around their label.
type Bar struct {
	bars
}

func NewBar() *Bar {
	return &Bar{
		bars: bars{
			BarSpacing: DefaultBarSpacing,
			SetSpacing: DefaultSetSpacing,
		},
	}
}

func (b *Bar) Orientation() chart.Orientation {
	return chart.Vertical
}

func (b *Bar) MandatoryBorder() bool {
	return true
}

func (b *Bar) Prepare(g Geometry, sets []*chart.Set) {
	if len(sets) == 0 || sets[0].Size() == 0 {
		return
	}
	first := sets[0].Entries()
	if len(first) == 1 {
		b.size(len(sets), g.Inner.Width()-2*g.BorderSpacing, 0)
		return
	}
	b.size(len(sets), first[1].X()-first[0].X(), b.BarSpacing)
}

func (b *Bar) Regions(g Geometry, sets []*chart.Set) [][]Region {
	rs := makeRegions(sets)
	b.each(sets, (*chart.Entry).X, func(set, index int, left, right float64) {
		e := sets[set].Entries()[index]
		rs[set][index] = NewRectRegion(layout.NewRect(left, e.Y(), right, g.Zero))
	})
	return rs
}

func (b *Bar) Draw(c canvas.Canvas, g Geometry, sets []*chart.Set) {
	b.each(sets, (*chart.Entry).X, func(set, index int, left, right float64) {
		s := sets[set]
		if !s.Visible() {
			return
		}
		e := s.Entries()[index]
		c.Rect(layout.NewRect(left, e.Y(), right, g.Zero), entryPaint(s, e))
	})
}

// HorizontalBar draws bars going from the zero line of the horizontal axis
// to the value of each entry.
type HorizontalBar struct {
	bars
}

func NewHorizontalBar() *HorizontalBar {
	return &HorizontalBar{
		bars: bars{
			BarSpacing: DefaultBarSpacing,
			SetSpacing: DefaultSetSpacing,
		},
	}
}

func (b *HorizontalBar) Orientation() chart.Orientation {
	return chart.Horizontal
}

func (b *HorizontalBar) MandatoryBorder() bool {
	return true
}

func (b *HorizontalBar) Prepare(g Geometry, sets []*chart.Set) {
	if len(sets) == 0 || sets[0].Size() == 0 {
		return
	}
	first := sets[0].Entries()
	if len(first) == 1 {
		b.size(len(sets), g.Inner.Height()-2*g.BorderSpacing, 0)
		return
	}
	span := first[0].Y() - first[1].Y()
	if span < 0 {
		span = -span
	}
	b.size(len(sets), span, b.BarSpacing)
}

func (b *HorizontalBar) Regions(g Geometry, sets []*chart.Set) [][]Region {
	rs := makeRegions(sets)
	b.each(sets, (*chart.Entry).Y, func(set, index int, top, bottom float64) {
		e := sets[set].Entries()[index]
		rs[set][index] = NewRectRegion(layout.NewRect(g.Zero, top, e.X(), bottom))
	})
	return rs
}

func (b *HorizontalBar) Draw(c canvas.Canvas, g Geometry, sets []*chart.Set) {
	b.each(sets, (*chart.Entry).Y, func(set, index int, top, bottom float64) {
		s := sets[set]
		if !s.Visible() {
			return
		}
		e := s.Entries()[index]
		c.Rect(layout.NewRect(g.Zero, top, e.X(), bottom), entryPaint(s, e))
	})
}

func entryPaint(s *chart.Set, e *chart.Entry) canvas.Paint {
	p := paintOf(s)
	if !e.Paint.Color.IsZero() {
		p.Color = e.Paint.Color
	}
	p.Fill = true
	return p
}

func makeRegions(sets []*chart.Set) [][]Region {
	rs := make([][]Region, len(sets))
	for i := range sets {
		rs[i] = make([]Region, sets[i].Size())
	}
	return rs
}
