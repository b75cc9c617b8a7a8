package view

import (
	"fmt"

	"github.com/midbel/chartview/canvas"
	"github.com/midbel/chartview/chart"
	"github.com/midbel/chartview/layout"
)

// Geometry is what a variant knows of the layout once the axes have been
// disposed.
type Geometry struct {
	Inner         layout.Rect
	Zero          float64
	Step          float64
	BorderSpacing float64
}

// Variant gives its shape to a chart: how entries are drawn and which area
// of the screen belongs to each of them.
type Variant interface {
	Orientation() chart.Orientation
	MandatoryBorder() bool
	Prepare(Geometry, []*chart.Set)
	Regions(Geometry, []*chart.Set) [][]Region
	Draw(canvas.Canvas, Geometry, []*chart.Set)
}

func NewVariant(t chart.Type) (Variant, error) {
	switch t {
	case chart.TypeBar:
		return NewBar(), nil
	case chart.TypeHorizontalBar:
		return NewHorizontalBar(), nil
	case chart.TypeLine:
		return NewLine(), nil
	case chart.TypePoint:
		return NewPoint(), nil
	default:
		return nil, fmt.Errorf("%s: unsupported chart type", t)
	}
}

func paintOf(s *chart.Set) canvas.Paint {
	p := s.Paint
	if p.Color.IsZero() {
		p.Color = canvas.Black
	}
	if p.Width <= 0 {
		p.Width = 1
	}
	return p
}
