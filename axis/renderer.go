package axis

import (
	"fmt"
	"math"

	"github.com/aclements/go-moremath/scale"
	"github.com/midbel/chartview/chart"
	"github.com/midbel/chartview/format"
	"github.com/midbel/chartview/layout"
)

// Renderer is the state shared by the horizontal and the vertical axis: the
// labels, their screen positions and the mapping of values onto the inner
// bounds of the chart.
type Renderer struct {
	Scale

	handleValues bool
	horizontal   bool

	labels           []string
	widths           []float64
	values           []float64
	positions        []float64
	screenStep       float64
	mandatorySpacing float64
	linear           scale.Linear

	inner layout.Rect
	style *chart.Style
}

func (r *Renderer) Config() *Scale {
	return &r.Scale
}

// SetValues tells the axis that it carries the values of the entries
// instead of their labels.
func (r *Renderer) SetValues(values bool) {
	r.handleValues = values
}

func (r *Renderer) HandleValues() bool {
	return r.handleValues
}

func (r *Renderer) Init(sets []*chart.Set, style *chart.Style) error {
	if err := chart.CheckSets(sets); err != nil {
		return err
	}
	if style == nil {
		style = chart.DefaultStyle()
	}
	r.style = style
	r.mandatorySpacing = 0
	r.positions = nil
	r.screenStep = 0
	if r.handleValues {
		lo, hi := math.Inf(1), math.Inf(-1)
		for _, s := range sets {
			lo = min(lo, s.Min())
			hi = max(hi, s.Max())
		}
		r.resolve(lo, hi)
		r.values = r.Scale.values()
		if len(r.values) == 0 {
			return fmt.Errorf("%w: no label between %v and %v", ErrBorders, r.min, r.max)
		}
		r.labels = make([]string, len(r.values))
		f := r.formatter()
		for i := range r.values {
			r.labels[i] = format.Must(f, r.values[i])
		}
		r.linear = scale.Linear{
			Min: r.values[0],
			Max: r.values[len(r.values)-1],
		}
	} else {
		r.values = nil
		r.labels = sets[0].Labels()
	}
	r.widths = make([]float64, len(r.labels))
	for i := range r.labels {
		r.widths[i] = style.TextWidth(r.labels[i])
	}
	return nil
}

func (r *Renderer) InnerBounds() layout.Rect {
	return r.inner
}

func (r *Renderer) SetInnerBounds(inner layout.Rect) {
	r.inner = inner
}

// Dispose computes the final position of every label once the inner bounds
// have been negotiated.
func (r *Renderer) Dispose() {
	n := len(r.labels)
	if n == 0 {
		return
	}
	length := r.length()
	if r.Scale.mandatory {
		r.mandatorySpacing = (length - 2*r.borderSpacing) / float64(n) / 2
	} else {
		r.mandatorySpacing = 0
	}
	start, end := r.span()
	if n > 1 {
		r.screenStep = (end - start) / float64(n-1)
	} else {
		r.screenStep = 0
	}
	r.positions = make([]float64, n)
	for i := range r.positions {
		r.positions[i] = start + float64(i)*r.screenStep
	}
}

// Pos gives the screen coordinate of an entry on this axis: from its value
// when the axis carries the values, from its index otherwise.
func (r *Renderer) Pos(index int, value float64) float64 {
	start, end := r.span()
	if r.handleValues {
		return start + r.linear.Map(value)*(end-start)
	}
	if index >= 0 && index < len(r.positions) {
		return r.positions[index]
	}
	return start + float64(index)*r.screenStep
}

func (r *Renderer) ScreenStep() float64 {
	return math.Abs(r.screenStep)
}

func (r *Renderer) MandatoryBorderSpacing() float64 {
	return r.mandatorySpacing
}

func (r *Renderer) Labels() []string {
	return r.labels
}

func (r *Renderer) LabelValues() []float64 {
	return r.values
}

func (r *Renderer) Positions() []float64 {
	return r.positions
}

// Reset drops everything derived from the data and the layout. The
// configuration given explicitly is kept.
func (r *Renderer) Reset() {
	r.labels = nil
	r.widths = nil
	r.values = nil
	r.positions = nil
	r.screenStep = 0
	r.mandatorySpacing = 0
	r.linear = scale.Linear{}
	r.inner = layout.Rect{}
	r.style = nil
	r.Scale.clear()
}

func (r *Renderer) length() float64 {
	if r.horizontal {
		return r.inner.Width()
	}
	return r.inner.Height()
}

// span returns the coordinates of the first and the last label. The
// vertical axis grows upward so its first label is at the bottom.
func (r *Renderer) span() (float64, float64) {
	offset := r.borderSpacing + r.mandatorySpacing
	if r.horizontal {
		return r.inner.Left + offset, r.inner.Right - r.topSpacing - offset
	}
	return r.inner.Bottom - offset, r.inner.Top + r.topSpacing + offset
}

func (r *Renderer) maxWidth() float64 {
	var w float64
	for i := range r.widths {
		w = max(w, r.widths[i])
	}
	return w
}

func (r *Renderer) fontHeight() float64 {
	if r.style == nil {
		return 0
	}
	return r.style.FontMaxHeight()
}
