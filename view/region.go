package view

import (
	"fmt"
	"math"

	"github.com/midbel/chartview/chart"
	"github.com/midbel/chartview/layout"
)

type Region interface {
	Contains(x, y float64) bool
	Bounds() layout.Rect
}

type RectRegion struct {
	layout.Rect
}

func NewRectRegion(r layout.Rect) RectRegion {
	return RectRegion{
		Rect: r.Normalize(),
	}
}

func (r RectRegion) Bounds() layout.Rect {
	return r.Rect
}

type CircleRegion struct {
	Center layout.Point
	Radius float64
}

func NewCircleRegion(x, y, radius float64) CircleRegion {
	return CircleRegion{
		Center: layout.NewPoint(x, y),
		Radius: math.Abs(radius),
	}
}

func (c CircleRegion) Contains(x, y float64) bool {
	dx, dy := x-c.Center.X, y-c.Center.Y
	return dx*dx+dy*dy <= c.Radius*c.Radius
}

func (c CircleRegion) Bounds() layout.Rect {
	return layout.NewRect(c.Center.X-c.Radius, c.Center.Y-c.Radius, c.Center.X+c.Radius, c.Center.Y+c.Radius)
}

// RegionTable holds one region per entry, indexed like the sets it has been
// built from.
type RegionTable struct {
	regions [][]Region
}

func NewRegionTable(regions [][]Region, sets []*chart.Set) (RegionTable, error) {
	var rt RegionTable
	if len(regions) != len(sets) {
		return rt, fmt.Errorf("%w: %d rows for %d sets", ErrMisaligned, len(regions), len(sets))
	}
	for i := range regions {
		if sets[i] == nil {
			return rt, fmt.Errorf("%w: set %d", ErrNilSet, i)
		}
		if len(regions[i]) != sets[i].Size() {
			return rt, fmt.Errorf("%w: set %d has %d regions for %d entries", ErrMisaligned, i, len(regions[i]), sets[i].Size())
		}
	}
	rt.regions = regions
	return rt, nil
}

func (rt RegionTable) Len() int {
	return len(rt.regions)
}

func (rt RegionTable) Size(set int) int {
	if set < 0 || set >= len(rt.regions) {
		return 0
	}
	return len(rt.regions[set])
}

func (rt RegionTable) Empty() bool {
	return len(rt.regions) == 0
}

func (rt RegionTable) At(set, index int) (Region, bool) {
	if set < 0 || set >= len(rt.regions) {
		return nil, false
	}
	if index < 0 || index >= len(rt.regions[set]) {
		return nil, false
	}
	return rt.regions[set][index], true
}

// Lookup returns the first region containing the point, scanning sets
// first and entries second.
func (rt RegionTable) Lookup(x, y float64) (int, int, bool) {
	for s := range rt.regions {
		for i, r := range rt.regions[s] {
			if r.Contains(x, y) {
				return s, i, true
			}
		}
	}
	return -1, -1, false
}

func (rt RegionTable) Bounds(set int) []layout.Rect {
	if set < 0 || set >= len(rt.regions) {
		return nil
	}
	rs := make([]layout.Rect, len(rt.regions[set]))
	for i, r := range rt.regions[set] {
		rs[i] = r.Bounds()
	}
	return rs
}

func BuildRegions(v Variant, g Geometry, sets []*chart.Set) (RegionTable, error) {
	if err := chart.CheckSets(sets); err != nil {
		return RegionTable{}, err
	}
	return NewRegionTable(v.Regions(g, sets), sets)
}
