package axis

import (
	"github.com/midbel/chartview/canvas"
	"github.com/midbel/chartview/layout"
)

// X is the horizontal axis. It carries the labels of the entries unless
// the chart is horizontal.
type X struct {
	Renderer
}

func NewX() *X {
	var x X
	x.horizontal = true
	return &x
}

// Measure computes the inner bounds the horizontal axis needs inside frame:
// room below the chart for the axis and its labels, and half of the first
// and last labels on each side.
func (x *X) Measure(frame layout.Rect) {
	x.inner = frame
	if x.style == nil {
		return
	}
	if x.style.HasXAxis() {
		x.inner.Bottom -= x.style.AxisThickness
	}
	if x.Position == Outside {
		x.inner.Bottom -= x.fontHeight() + x.style.LabelsDistance
	}
	if x.Position == None || len(x.widths) == 0 {
		return
	}
	if d := x.widths[0]/2 - x.borderSpacing; d > 0 {
		x.inner.Left += d
	}
	if d := x.widths[len(x.widths)-1]/2 - x.borderSpacing; d > 0 {
		x.inner.Right -= d
	}
}

func (x *X) Draw(c canvas.Canvas) {
	if x.style == nil {
		return
	}
	var thickness float64
	if x.style.HasXAxis() {
		thickness = x.style.AxisThickness
		var (
			pos  = x.inner.Bottom + thickness/2
			left = x.inner.Left
		)
		if x.style.HasYAxis() {
			left -= x.style.AxisThickness
		}
		c.Line(left, pos, x.inner.Right, pos, x.style.AxisPaint())
	}
	var baseline float64
	switch x.Position {
	case Outside:
		baseline = x.inner.Bottom + thickness + x.style.LabelsDistance + x.fontHeight()
	case Inside:
		baseline = x.inner.Bottom - x.style.LabelsDistance
	default:
		return
	}
	paint := x.style.LabelsPaint()
	for i := range x.positions {
		c.Text(x.labels[i], x.positions[i]-x.widths[i]/2, baseline, paint)
	}
}
