package chart

import (
	"github.com/midbel/chartview/canvas"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

const (
	DefaultAxisThickness  = 1.0
	DefaultFontSize       = 10.0
	DefaultLabelsDistance = 4.0
)

type Style struct {
	AxisColor      drawing.Color
	AxisThickness  float64
	LabelsColor    drawing.Color
	FontSize       float64
	LabelsDistance float64
	XAxis          bool
	YAxis          bool

	ThresholdPaint canvas.Paint
	GridPaint      canvas.Paint

	measurer      canvas.Measurer
	fontMaxHeight float64
	initialized   bool
}

func DefaultStyle() *Style {
	return &Style{
		AxisColor:      canvas.Black,
		AxisThickness:  DefaultAxisThickness,
		LabelsColor:    canvas.Black,
		FontSize:       DefaultFontSize,
		LabelsDistance: DefaultLabelsDistance,
		XAxis:          true,
		YAxis:          true,
	}
}

// Init binds the style to the measurer of the current canvas and computes
// the derived font metrics.
func (s *Style) Init(m canvas.Measurer) {
	if m == nil {
		m = canvas.NewFaceMeasurer()
	}
	s.measurer = m
	s.fontMaxHeight = m.FontHeight()
	s.initialized = true
}

func (s *Style) Clean() {
	s.measurer = nil
	s.fontMaxHeight = 0
	s.initialized = false
	s.ThresholdPaint = canvas.Paint{}
	s.GridPaint = canvas.Paint{}
}

func (s *Style) Initialized() bool {
	return s.initialized
}

func (s *Style) HasXAxis() bool {
	return s.XAxis
}

func (s *Style) HasYAxis() bool {
	return s.YAxis
}

func (s *Style) FontMaxHeight() float64 {
	return s.fontMaxHeight
}

func (s *Style) TextWidth(str string) float64 {
	if s.measurer == nil {
		return 0
	}
	return s.measurer.TextWidth(str)
}

func (s *Style) AxisPaint() canvas.Paint {
	return canvas.Stroke(s.AxisColor, s.AxisThickness)
}

func (s *Style) LabelsPaint() canvas.Paint {
	return canvas.Paint{
		Color: s.LabelsColor,
		Fill:  true,
	}
}
