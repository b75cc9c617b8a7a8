package view

import (
	"github.com/midbel/chartview/canvas"
	"github.com/midbel/chartview/chart"
	"github.com/midbel/chartview/layout"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

const (
	DefaultGridRows    = 5
	DefaultGridColumns = 5
)

var defaultLinePaint = canvas.Stroke(drawing.ColorFromHex("b4b4b4"), 1)

type grid struct {
	kind chart.GridType
	rows int
	cols int
}

func defaultGrid() grid {
	return grid{
		kind: chart.GridNone,
		rows: DefaultGridRows,
		cols: DefaultGridColumns,
	}
}

type threshold struct {
	hasValues  bool
	startValue float64
	endValue   float64
	startPos   float64
	endPos     float64

	hasLabels  bool
	startLabel int
	endLabel   int
}

func (t *threshold) resolve(s Scaler) {
	if !t.hasValues {
		return
	}
	t.startPos = s.Pos(0, t.startValue)
	t.endPos = s.Pos(0, t.endValue)
}

func (v *View) gridPaint() canvas.Paint {
	if v.style.GridPaint.IsZero() {
		return defaultLinePaint
	}
	return v.style.GridPaint
}

func (v *View) thresholdPaint() canvas.Paint {
	if v.style.ThresholdPaint.IsZero() {
		return defaultLinePaint
	}
	return v.style.ThresholdPaint
}

func (v *View) drawVerticalGrid(c canvas.Canvas) {
	var (
		paint  = v.gridPaint()
		offset = v.inner.Width() / float64(v.grid.cols)
		first  = 0
	)
	if offset <= 0 {
		return
	}
	if v.style.HasYAxis() {
		first++
	}
	for i := first; i < v.grid.cols; i++ {
		marker := v.inner.Left + float64(i)*offset
		c.Line(marker, v.inner.Top, marker, v.inner.Bottom, paint)
	}
	c.Line(v.inner.Right, v.inner.Top, v.inner.Right, v.inner.Bottom, paint)
}

func (v *View) drawHorizontalGrid(c canvas.Canvas) {
	var (
		paint  = v.gridPaint()
		offset = v.inner.Height() / float64(v.grid.rows)
	)
	if offset <= 0 {
		return
	}
	for i := 0; i < v.grid.rows; i++ {
		marker := v.inner.Top + float64(i)*offset
		c.Line(v.inner.Left, marker, v.inner.Right, marker, paint)
	}
	if !v.style.HasXAxis() {
		c.Line(v.inner.Left, v.inner.Bottom, v.inner.Right, v.inner.Bottom, paint)
	}
}

// drawThresholds draws the value band across the value axis and the label
// band between the entries of the first set. A band with no extent is
// drawn as a line.
func (v *View) drawThresholds(c canvas.Canvas) {
	horizontal := v.Orientation() == chart.Horizontal
	if v.threshold.hasValues {
		if horizontal {
			v.drawBand(c, v.threshold.startPos, v.inner.Top, v.threshold.endPos, v.inner.Bottom)
		} else {
			v.drawBand(c, v.inner.Left, v.threshold.startPos, v.inner.Right, v.threshold.endPos)
		}
	}
	if v.threshold.hasLabels && len(v.data) > 0 && v.threshold.endLabel < v.data[0].Size() {
		var (
			first = v.data[0]
			start = first.Entries()[v.threshold.startLabel]
			end   = first.Entries()[v.threshold.endLabel]
		)
		if horizontal {
			v.drawBand(c, v.inner.Left, start.Y(), v.inner.Right, end.Y())
		} else {
			v.drawBand(c, start.X(), v.inner.Top, end.X(), v.inner.Bottom)
		}
	}
}

func (v *View) drawBand(c canvas.Canvas, left, top, right, bottom float64) {
	paint := v.thresholdPaint()
	if left == right || top == bottom {
		c.Line(left, top, right, bottom, paint)
		return
	}
	paint.Fill = true
	c.Rect(layout.NewRect(left, top, right, bottom), paint)
}
