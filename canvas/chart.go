package canvas

import (
	"fmt"
	"io"

	"github.com/midbel/chartview/layout"
	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

const DefaultFontSize = 10.0

// Chart draws on a go-chart renderer and saves the result as PNG or SVG.
type Chart struct {
	r        chart.Renderer
	width    int
	height   int
	fontSize float64
}

func PNG(width, height int) (*Chart, error) {
	return newChart(chart.PNG, width, height)
}

func SVG(width, height int) (*Chart, error) {
	return newChart(chart.SVG, width, height)
}

func newChart(rp chart.RendererProvider, width, height int) (*Chart, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid canvas size %dx%d", width, height)
	}
	r, err := rp(width, height)
	if err != nil {
		return nil, err
	}
	f, err := chart.GetDefaultFont()
	if err != nil {
		return nil, err
	}
	r.SetFont(f)
	c := Chart{
		r:        r,
		width:    width,
		height:   height,
		fontSize: DefaultFontSize,
	}
	c.Background(White)
	return &c, nil
}

func (c *Chart) Frame() layout.Rect {
	return layout.NewRect(0, 0, float64(c.width), float64(c.height))
}

func (c *Chart) SetFontSize(size float64) {
	if size > 0 {
		c.fontSize = size
	}
}

func (c *Chart) Background(col drawing.Color) {
	c.r.ResetStyle()
	c.r.SetFillColor(col)
	c.r.SetStrokeColor(col)
	c.r.SetStrokeWidth(0)
	c.path(0, 0, float64(c.width), float64(c.height))
	c.r.FillStroke()
}

func (c *Chart) Line(x0, y0, x1, y1 float64, p Paint) {
	c.stroke(p)
	c.r.MoveTo(round(x0), round(y0))
	c.r.LineTo(round(x1), round(y1))
	c.r.Stroke()
}

func (c *Chart) Rect(r layout.Rect, p Paint) {
	r = r.Normalize()
	if p.Fill {
		c.r.ResetStyle()
		c.r.SetFillColor(p.Color)
		c.r.SetStrokeColor(p.Color)
		c.r.SetStrokeWidth(0)
		c.path(r.Left, r.Top, r.Right, r.Bottom)
		c.r.FillStroke()
		return
	}
	c.stroke(p)
	c.path(r.Left, r.Top, r.Right, r.Bottom)
	c.r.Stroke()
}

func (c *Chart) Circle(x, y, radius float64, p Paint) {
	c.stroke(p)
	if p.Fill {
		c.r.SetFillColor(p.Color)
	}
	c.r.Circle(radius, round(x), round(y))
	if p.Fill {
		c.r.FillStroke()
	} else {
		c.r.Stroke()
	}
}

func (c *Chart) Text(str string, x, y float64, p Paint) {
	c.r.ResetStyle()
	c.r.SetFontColor(p.Color)
	c.r.SetFontSize(c.fontSize)
	c.r.Text(str, round(x), round(y))
}

func (c *Chart) TextWidth(str string) float64 {
	c.r.SetFontSize(c.fontSize)
	return float64(c.r.MeasureText(str).Width())
}

func (c *Chart) FontHeight() float64 {
	c.r.SetFontSize(c.fontSize)
	return float64(c.r.MeasureText("Mg").Height())
}

func (c *Chart) Save(w io.Writer) error {
	return c.r.Save(w)
}

func (c *Chart) stroke(p Paint) {
	c.r.ResetStyle()
	c.r.SetStrokeColor(p.Color)
	width := p.Width
	if width <= 0 {
		width = 1
	}
	c.r.SetStrokeWidth(width)
	if len(p.Dash) > 0 {
		c.r.SetStrokeDashArray(p.Dash)
	}
}

func (c *Chart) path(left, top, right, bottom float64) {
	c.r.MoveTo(round(left), round(top))
	c.r.LineTo(round(right), round(top))
	c.r.LineTo(round(right), round(bottom))
	c.r.LineTo(round(left), round(bottom))
	c.r.Close()
}
