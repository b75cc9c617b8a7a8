package config

import (
	"io"
	"os"

	"github.com/midbel/chartview/canvas"
	"github.com/midbel/chartview/chart"
	"gopkg.in/yaml.v3"
)

type Line struct {
	Color string  `yaml:"color"`
	Width float64 `yaml:"width"`
	Fill  bool    `yaml:"fill"`
}

func (i *Line) paint() canvas.Paint {
	if i == nil || i.Color == "" {
		return canvas.Paint{}
	}
	return canvas.Paint{
		Color: canvas.ParseColor(i.Color),
		Width: i.Width,
		Fill:  i.Fill,
	}
}

// Style is the content of a style file. Fields left out of the file keep
// the value of the style they are applied to.
type Style struct {
	AxisColor      string   `yaml:"axis-color"`
	AxisThickness  *float64 `yaml:"axis-thickness"`
	LabelsColor    string   `yaml:"labels-color"`
	FontSize       *float64 `yaml:"font-size"`
	LabelsDistance *float64 `yaml:"labels-distance"`
	XAxis          *bool    `yaml:"x-axis"`
	YAxis          *bool    `yaml:"y-axis"`

	Grid      *Line `yaml:"grid"`
	Threshold *Line `yaml:"threshold"`

	Colors []string `yaml:"colors"`
}

func LoadStyle(file string) (*Style, error) {
	r, err := os.Open(file)
	if err != nil {
		return nil, err
	}
	defer r.Close()
	return DecodeStyle(r)
}

func DecodeStyle(r io.Reader) (*Style, error) {
	var s Style
	if err := yaml.NewDecoder(r).Decode(&s); err != nil && err != io.EOF {
		return nil, err
	}
	return &s, nil
}

func (s *Style) Apply(base *chart.Style) *chart.Style {
	if base == nil {
		base = chart.DefaultStyle()
	}
	if s.AxisColor != "" {
		base.AxisColor = canvas.ParseColor(s.AxisColor)
	}
	if s.LabelsColor != "" {
		base.LabelsColor = canvas.ParseColor(s.LabelsColor)
	}
	if s.AxisThickness != nil {
		base.AxisThickness = max(*s.AxisThickness, 0)
	}
	if s.FontSize != nil {
		base.FontSize = *s.FontSize
	}
	if s.LabelsDistance != nil {
		base.LabelsDistance = max(*s.LabelsDistance, 0)
	}
	if s.XAxis != nil {
		base.XAxis = *s.XAxis
	}
	if s.YAxis != nil {
		base.YAxis = *s.YAxis
	}
	if p := s.Grid.paint(); !p.IsZero() {
		base.GridPaint = p
	}
	if p := s.Threshold.paint(); !p.IsZero() {
		base.ThresholdPaint = p
	}
	return base
}

// Colorize gives a color of the palette to every set without one.
func (s *Style) Colorize(sets []*chart.Set) {
	if len(s.Colors) == 0 {
		return
	}
	for i, set := range sets {
		if !set.Paint.Color.IsZero() {
			continue
		}
		set.Paint.Color = canvas.ParseColor(s.Colors[i%len(s.Colors)])
	}
}
