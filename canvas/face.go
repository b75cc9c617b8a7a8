package canvas

import (
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// FaceMeasurer measures text with a fixed bitmap face so that layouts are
// reproducible across machines.
type FaceMeasurer struct {
	face font.Face
}

func NewFaceMeasurer() *FaceMeasurer {
	return &FaceMeasurer{
		face: basicfont.Face7x13,
	}
}

func (m *FaceMeasurer) TextWidth(str string) float64 {
	return float64(font.MeasureString(m.face, str).Ceil())
}

func (m *FaceMeasurer) FontHeight() float64 {
	mt := m.face.Metrics()
	return float64((mt.Ascent + mt.Descent).Ceil())
}
