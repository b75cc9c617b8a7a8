package canvas

import (
	"math"

	"github.com/midbel/chartview/layout"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

var (
	Black       = drawing.ColorBlack
	White       = drawing.ColorWhite
	Transparent = drawing.ColorTransparent
)

type Paint struct {
	Color drawing.Color
	Width float64
	Fill  bool
	Dash  []float64
}

func Stroke(c drawing.Color, width float64) Paint {
	return Paint{
		Color: c,
		Width: width,
	}
}

func Filled(c drawing.Color) Paint {
	return Paint{
		Color: c,
		Fill:  true,
	}
}

func (p Paint) IsZero() bool {
	return p.Color.IsZero() && p.Width == 0 && !p.Fill
}

// ParseColor accepts colors written as #rgb or #rrggbb.
func ParseColor(str string) drawing.Color {
	return drawing.ColorFromHex(str)
}

type Canvas interface {
	Line(x0, y0, x1, y1 float64, p Paint)
	Rect(r layout.Rect, p Paint)
	Circle(x, y, radius float64, p Paint)
	Text(str string, x, y float64, p Paint)
}

type Measurer interface {
	TextWidth(string) float64
	FontHeight() float64
}

func round(f float64) int {
	return int(math.Round(f))
}
