package anim

import (
	"slices"

	"github.com/midbel/chartview/chart"
	"github.com/midbel/chartview/layout"
)

// Frame holds the screen coordinates of every entry of every set, indexed
// the same way as the sets.
type Frame [][]layout.Point

func Snapshot(sets []*chart.Set) Frame {
	f := make(Frame, len(sets))
	for i, s := range sets {
		f[i] = s.ScreenPoints()
	}
	return f
}

func (f Frame) Clone() Frame {
	c := make(Frame, len(f))
	for i := range f {
		c[i] = slices.Clone(f[i])
	}
	return c
}

// Collapse gives a copy of f where every point is moved onto the zero line
// of the value axis.
func (f Frame) Collapse(o chart.Orientation, zero float64) Frame {
	c := f.Clone()
	for i := range c {
		for j := range c[i] {
			if o == chart.Horizontal {
				c[i][j].X = zero
			} else {
				c[i][j].Y = zero
			}
		}
	}
	return c
}

func (f Frame) SameShape(other Frame) bool {
	if len(f) != len(other) {
		return false
	}
	for i := range f {
		if len(f[i]) != len(other[i]) {
			return false
		}
	}
	return true
}

// Apply writes the coordinates of the frame into copies of the sets.
func (f Frame) Apply(sets []*chart.Set) ([]*chart.Set, error) {
	cs := chart.CloneSets(sets)
	if len(f) != len(cs) {
		return nil, chart.ErrSizeMismatch
	}
	for i := range cs {
		if err := cs[i].Apply(f[i]); err != nil {
			return nil, err
		}
	}
	return cs, nil
}

func Interpolate(from, to Frame, t float64) Frame {
	if !from.SameShape(to) {
		return to.Clone()
	}
	t = max(0, min(t, 1))
	res := make(Frame, len(to))
	for i := range to {
		res[i] = make([]layout.Point, len(to[i]))
		for j := range to[i] {
			res[i][j] = layout.Point{
				X: from[i][j].X + (to[i][j].X-from[i][j].X)*t,
				Y: from[i][j].Y + (to[i][j].Y-from[i][j].Y)*t,
			}
		}
	}
	return res
}
