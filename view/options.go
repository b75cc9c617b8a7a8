package view

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/midbel/chartview/axis"
	"github.com/midbel/chartview/canvas"
	"github.com/midbel/chartview/chart"
	"github.com/midbel/chartview/format"
	"github.com/midbel/chartview/layout"
)

func (v *View) SetGrid(kind chart.GridType, rows, cols int, paint canvas.Paint) error {
	if rows < 1 || cols < 1 {
		err := fmt.Errorf("%w: %d rows and %d columns", ErrGrid, rows, cols)
		v.logger.Error("grid not updated", "err", err)
		return err
	}
	v.grid = grid{
		kind: kind,
		rows: rows,
		cols: cols,
	}
	v.style.GridPaint = paint
	return nil
}

func (v *View) SetStep(step float64) error {
	if err := v.valueAxis().Config().SetStep(step); err != nil {
		v.logger.Error("step not updated", "err", err)
		return err
	}
	return nil
}

func (v *View) SetAxisBorderValues(min, max, step float64) error {
	if err := v.valueAxis().Config().SetBorderValues(min, max, step); err != nil {
		v.logger.Error("border values not updated", "err", err)
		return err
	}
	return nil
}

// SetBorderSpacing sets the space left between the inner bounds and the
// first and last labels.
func (v *View) SetBorderSpacing(spacing float64) {
	v.labelAxis().Config().SetBorderSpacing(spacing)
}

// SetTopSpacing sets the space left between the highest value label and
// the end of the inner bounds.
func (v *View) SetTopSpacing(spacing float64) {
	v.valueAxis().Config().SetTopSpacing(spacing)
}

func (v *View) SetXLabels(pos axis.LabelPosition) {
	v.x.Config().Position = pos
}

func (v *View) SetYLabels(pos axis.LabelPosition) {
	v.y.Config().Position = pos
}

func (v *View) SetLabelsFormat(f format.Formatter) {
	v.valueAxis().Config().Format = f
}

func (v *View) SetAxisLabelsSpacing(spacing float64) {
	v.style.LabelsDistance = max(spacing, 0)
}

func (v *View) SetValueThreshold(start, end float64, paint canvas.Paint) {
	v.threshold.hasValues = true
	v.threshold.startValue = start
	v.threshold.endValue = end
	v.style.ThresholdPaint = paint
	if v.Ready() {
		v.threshold.resolve(v.valueAxis())
	}
}

func (v *View) SetLabelThreshold(start, end int, paint canvas.Paint) error {
	if start > end {
		start, end = end, start
	}
	if start < 0 || (len(v.data) > 0 && end >= v.data[0].Size()) {
		err := fmt.Errorf("%w: label threshold [%d, %d]", ErrIndex, start, end)
		v.logger.Error("label threshold not updated", "err", err)
		return err
	}
	v.threshold.hasLabels = true
	v.threshold.startLabel = start
	v.threshold.endLabel = end
	v.style.ThresholdPaint = paint
	return nil
}

func (v *View) SetStyle(style *chart.Style) {
	if style == nil {
		style = chart.DefaultStyle()
	}
	v.style = style
}

// SetMeasurer sets what is used to measure the labels. It should be the
// canvas the chart is drawn on.
func (v *View) SetMeasurer(m canvas.Measurer) {
	v.measurer = m
}

func (v *View) SetPadding(left, top, right, bottom float64) {
	v.padding = layout.NewRect(left, top, right, bottom)
}

func (v *View) SetTooltip(t Tooltip) {
	v.tooltip = t
}

func (v *View) OnEntryClick(fn func(set, index int, area layout.Rect)) {
	v.onEntry = fn
}

func (v *View) OnClick(fn func()) {
	v.onClick = fn
}

func (v *View) SetLogger(logger *log.Logger) {
	if logger == nil {
		logger = DefaultLogger()
	}
	v.logger = logger
}

// Reset brings the chart back to its initial state. Only the configuration
// of the axes survives.
func (v *View) Reset() {
	if v.animating() {
		v.animation.Cancel()
	}
	v.state = Disposed
	v.requested = false
	v.drawing = false
	v.data = nil
	v.regions = RegionTable{}
	v.threshold = threshold{}
	v.grid = defaultGrid()
	v.style.Clean()
	v.inner = layout.Rect{}
	v.frame = layout.Rect{}
	v.clearPressed()
	if v.x.Config().HasMandatoryBorderSpacing() {
		v.x.Reset()
	}
	if v.y.Config().HasMandatoryBorderSpacing() {
		v.y.Reset()
	}
	v.state = NotReady
}
