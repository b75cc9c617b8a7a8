package axis

import (
	"github.com/midbel/chartview/canvas"
	"github.com/midbel/chartview/layout"
)

// Y is the vertical axis. It carries the values of the entries unless the
// chart is horizontal.
type Y struct {
	Renderer
}

func NewY() *Y {
	var y Y
	y.handleValues = true
	return &y
}

func (y *Y) Measure(frame layout.Rect) {
	y.inner = frame
	if y.style == nil {
		return
	}
	if y.style.HasYAxis() {
		y.inner.Left += y.style.AxisThickness
	}
	if y.Position == Outside {
		y.inner.Left += y.maxWidth() + y.style.LabelsDistance
	}
}

func (y *Y) Draw(c canvas.Canvas) {
	if y.style == nil {
		return
	}
	var thickness float64
	if y.style.HasYAxis() {
		thickness = y.style.AxisThickness
		var (
			pos    = y.inner.Left - thickness/2
			bottom = y.inner.Bottom
		)
		if y.style.HasXAxis() {
			bottom += y.style.AxisThickness
		}
		c.Line(pos, y.inner.Top, pos, bottom, y.style.AxisPaint())
	}
	if y.Position == None {
		return
	}
	var (
		paint = y.style.LabelsPaint()
		half  = y.fontHeight() / 2
	)
	for i := range y.positions {
		var left float64
		if y.Position == Outside {
			left = y.inner.Left - thickness - y.style.LabelsDistance - y.widths[i]
		} else {
			left = y.inner.Left + y.style.LabelsDistance
		}
		c.Text(y.labels[i], left, y.positions[i]+half, paint)
	}
}
