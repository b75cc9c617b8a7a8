package view

import (
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/midbel/chartview/anim"
	"github.com/midbel/chartview/axis"
	"github.com/midbel/chartview/canvas"
	"github.com/midbel/chartview/chart"
	"github.com/midbel/chartview/layout"
)

type State int8

const (
	NotReady State = iota
	Negotiating
	Ready
	Digesting
	Disposed
)

func (s State) String() string {
	switch s {
	case NotReady:
		return "not-ready"
	case Negotiating:
		return "negotiating"
	case Ready:
		return "ready"
	case Digesting:
		return "digesting"
	case Disposed:
		return "disposed"
	default:
		return "unknown"
	}
}

// Axis is what the view needs from an axis renderer.
type Axis interface {
	Scaler

	Config() *axis.Scale
	SetValues(bool)
	Init([]*chart.Set, *chart.Style) error
	Measure(layout.Rect)
	InnerBounds() layout.Rect
	SetInnerBounds(layout.Rect)
	Dispose()
	ScreenStep() float64
	Reset()
	Draw(canvas.Canvas)
}

type View struct {
	variant  Variant
	x        Axis
	y        Axis
	style    *chart.Style
	measurer canvas.Measurer
	logger   *log.Logger

	state     State
	requested bool
	drawing   bool
	padding   layout.Rect
	frame     layout.Rect
	inner     layout.Rect

	data    []*chart.Set
	regions RegionTable

	grid      grid
	threshold threshold

	animation anim.Animation

	tooltip Tooltip
	shown   []Tooltip
	onEntry func(set, index int, area layout.Rect)
	onClick func()

	pressedSet   int
	pressedIndex int
}

func New(variant Variant) *View {
	return NewWithAxes(variant, axis.NewX(), axis.NewY())
}

func NewWithAxes(variant Variant, x, y Axis) *View {
	v := View{
		variant: variant,
		x:       x,
		y:       y,
		style:   chart.DefaultStyle(),
		logger:  DefaultLogger(),
		grid:    defaultGrid(),
	}
	vertical := variant.Orientation() == chart.Vertical
	v.y.SetValues(vertical)
	v.x.SetValues(!vertical)
	if variant.MandatoryBorder() {
		v.labelAxis().Config().SetMandatoryBorderSpacing(true)
	}
	v.clearPressed()
	return &v
}

func DefaultLogger() *log.Logger {
	return log.NewWithOptions(os.Stderr, log.Options{
		Prefix: "chartview",
		Level:  log.WarnLevel,
	})
}

// PreDraw runs the layout of the chart when a display has been requested
// since the last layout. It returns whether the chart can be drawn.
func (v *View) PreDraw(frame layout.Rect) bool {
	if !v.requested {
		return v.Ready()
	}
	if err := chart.CheckSets(v.data); err != nil {
		v.logger.Warn("layout skipped", "err", err)
		return v.Ready()
	}
	v.requested = false
	v.state = Negotiating
	if err := v.negotiate(frame); err != nil {
		v.logger.Error("layout failed", "err", err)
		v.regions = RegionTable{}
		v.state = NotReady
		return false
	}
	v.state = Ready
	v.logger.Debug("layout done", "frame", v.frame.String(), "inner", v.inner.String(), "sets", len(v.data))
	return true
}

func (v *View) negotiate(frame layout.Rect) error {
	v.style.Init(v.measurer)
	if err := v.y.Init(v.data, v.style); err != nil {
		return err
	}
	if err := v.x.Init(v.data, v.style); err != nil {
		return err
	}
	v.frame = layout.Rect{
		Left:   frame.Left + v.padding.Left,
		Top:    frame.Top + v.padding.Top + v.style.FontMaxHeight()/2,
		Right:  frame.Right - v.padding.Right,
		Bottom: frame.Bottom - v.padding.Bottom,
	}
	v.y.Measure(v.frame)
	v.x.Measure(v.frame)

	v.inner = layout.Negotiate(v.y.InnerBounds(), v.x.InnerBounds())
	if v.inner.Inverted() {
		v.logger.Warn("axes leave no room for the chart", "inner", v.inner.String())
	}
	v.y.SetInnerBounds(v.inner)
	v.x.SetInnerBounds(v.inner)
	v.y.Dispose()
	v.x.Dispose()

	v.threshold.resolve(v.valueAxis())

	if err := Digest(v.data, v.x, v.y); err != nil {
		return err
	}
	g := v.geometry()
	v.variant.Prepare(g, v.data)
	rt, err := BuildRegions(v.variant, g, v.data)
	if err != nil {
		return err
	}
	v.regions = rt
	if v.animation != nil {
		curr := anim.Snapshot(v.data)
		v.animation.Play(curr.Collapse(v.Orientation(), g.Zero), curr)
	}
	return nil
}

// Draw paints the chart: grid, vertical axis, thresholds, data and finally
// the horizontal axis.
func (v *View) Draw(c canvas.Canvas) {
	if !v.Ready() {
		return
	}
	v.drawing = true
	defer func() {
		v.drawing = false
	}()

	if v.grid.kind.HasVertical() {
		v.drawVerticalGrid(c)
	}
	if v.grid.kind.HasHorizontal() {
		v.drawHorizontalGrid(c)
	}
	v.y.Draw(c)
	v.drawThresholds(c)
	v.variant.Draw(c, v.geometry(), v.drawSets())
	v.x.Draw(c)
	for _, t := range v.shown {
		if d, ok := t.(interface{ Draw(canvas.Canvas) }); ok {
			d.Draw(c)
		}
	}
}

// Advance moves the attached animation forward. It returns whether the
// animation is still playing.
func (v *View) Advance(dt time.Duration) bool {
	if v.animation == nil || !v.animation.Playing() {
		return false
	}
	_, playing := v.animation.Advance(dt)
	return playing
}

func (v *View) drawSets() []*chart.Set {
	if !v.animating() {
		return v.data
	}
	sets, err := v.animation.Current().Apply(v.data)
	if err != nil {
		return v.data
	}
	return sets
}

func (v *View) geometry() Geometry {
	label := v.labelAxis()
	return Geometry{
		Inner:         v.inner,
		Zero:          v.ZeroPosition(),
		Step:          label.ScreenStep(),
		BorderSpacing: label.Config().BorderSpacing(),
	}
}

func (v *View) animating() bool {
	return v.animation != nil && v.animation.Playing()
}

func (v *View) valueAxis() Axis {
	if v.Orientation() == chart.Horizontal {
		return v.x
	}
	return v.y
}

func (v *View) labelAxis() Axis {
	if v.Orientation() == chart.Horizontal {
		return v.y
	}
	return v.x
}

func (v *View) Orientation() chart.Orientation {
	return v.variant.Orientation()
}

func (v *View) State() State {
	return v.state
}

func (v *View) Ready() bool {
	return v.state == Ready
}

func (v *View) Drawing() bool {
	return v.drawing
}

func (v *View) CanDraw() bool {
	return !v.drawing
}

func (v *View) Frame() layout.Rect {
	return v.frame
}

func (v *View) InnerBounds() layout.Rect {
	return v.inner
}

// ZeroPosition is the screen coordinate of the value zero on the axis
// carrying the values.
func (v *View) ZeroPosition() float64 {
	return v.valueAxis().Pos(0, 0)
}

func (v *View) Step() float64 {
	return v.valueAxis().Config().Step()
}

func (v *View) BorderSpacing() float64 {
	return v.labelAxis().Config().BorderSpacing()
}

func (v *View) Regions() RegionTable {
	return v.regions
}

func (v *View) Animation() anim.Animation {
	return v.animation
}

func (v *View) Style() *chart.Style {
	return v.style
}

func (v *View) Variant() Variant {
	return v.variant
}

func (v *View) XAxis() Axis {
	return v.x
}

func (v *View) YAxis() Axis {
	return v.y
}
