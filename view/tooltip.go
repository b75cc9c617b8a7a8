package view

import (
	"slices"

	"github.com/midbel/chartview/canvas"
	"github.com/midbel/chartview/format"
	"github.com/midbel/chartview/layout"
)

type Tooltip interface {
	On() bool
	SetOn(bool)
	Prepare(area layout.Rect, value float64)
	CorrectPosition(bounds layout.Rect)
}

// Animated is implemented by tooltips that animate when they appear or
// disappear. done may be nil and must be called once the animation is over.
type Animated interface {
	Enter(done func())
	Exit(done func())
}

// ShowTooltip adds a tooltip on the chart, moved inside the chart frame
// when correct is set.
func (v *View) ShowTooltip(t Tooltip, correct bool) {
	if correct {
		t.CorrectPosition(v.frame)
	}
	if a, ok := t.(Animated); ok {
		a.Enter(nil)
	}
	if !slices.Contains(v.shown, t) {
		v.shown = append(v.shown, t)
	}
	t.SetOn(true)
}

func (v *View) DismissAllTooltips() {
	v.shown = v.shown[:0]
	if v.tooltip != nil {
		v.tooltip.SetOn(false)
	}
}

func (v *View) Tooltips() []Tooltip {
	return slices.Clone(v.shown)
}

func (v *View) toggleTooltip(area layout.Rect, value float64) {
	if !v.tooltip.On() {
		v.tooltip.Prepare(area, value)
		v.ShowTooltip(v.tooltip, true)
		return
	}
	v.dismissTooltip(&area, value)
}

// dismissTooltip removes the tooltip then shows it again on area if one is
// given.
func (v *View) dismissTooltip(area *layout.Rect, value float64) {
	t := v.tooltip
	done := func() {
		v.removeTooltip(t)
		if area != nil {
			v.toggleTooltip(*area, value)
		}
	}
	if a, ok := t.(Animated); ok {
		a.Exit(done)
		return
	}
	done()
}

func (v *View) removeTooltip(t Tooltip) {
	v.shown = slices.DeleteFunc(v.shown, func(other Tooltip) bool {
		return other == t
	})
	t.SetOn(false)
}

const (
	tooltipPadding = 4
	tooltipHeight  = 20
)

// Box is a tooltip showing the value of the entry in a frame above it.
type Box struct {
	Format   format.Formatter
	Paint    canvas.Paint
	Measurer canvas.Measurer
	Padding  float64
	Height   float64

	on   bool
	area layout.Rect
	text string
}

func NewBox(m canvas.Measurer) *Box {
	return &Box{
		Paint:    canvas.Stroke(canvas.Black, 1),
		Measurer: m,
		Padding:  tooltipPadding,
		Height:   tooltipHeight,
	}
}

func (b *Box) On() bool {
	return b.on
}

func (b *Box) SetOn(on bool) {
	b.on = on
}

func (b *Box) Text() string {
	return b.text
}

func (b *Box) Area() layout.Rect {
	return b.area
}

func (b *Box) Prepare(area layout.Rect, value float64) {
	b.text = format.Must(b.Format, value)
	width := 2 * b.Padding
	if b.Measurer != nil {
		width += b.Measurer.TextWidth(b.text)
	}
	var (
		center = area.Left + area.Width()/2
		top    = min(area.Top, area.Bottom)
	)
	b.area = layout.NewRect(center-width/2, top-b.Height, center+width/2, top)
}

func (b *Box) CorrectPosition(bounds layout.Rect) {
	if b.area.Left < bounds.Left {
		b.area = b.area.Offset(bounds.Left-b.area.Left, 0)
	}
	if b.area.Right > bounds.Right {
		b.area = b.area.Offset(bounds.Right-b.area.Right, 0)
	}
	if b.area.Top < bounds.Top {
		b.area = b.area.Offset(0, bounds.Top-b.area.Top)
	}
	if b.area.Bottom > bounds.Bottom {
		b.area = b.area.Offset(0, bounds.Bottom-b.area.Bottom)
	}
}

func (b *Box) Draw(c canvas.Canvas) {
	if !b.on {
		return
	}
	c.Rect(b.area, b.Paint)
	var (
		x = b.area.Left + b.Padding
		y = b.area.Bottom - b.Padding
	)
	c.Text(b.text, x, y, canvas.Paint{Color: b.Paint.Color})
}
