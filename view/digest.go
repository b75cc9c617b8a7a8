package view

import (
	"github.com/midbel/chartview/chart"
)

// Scaler maps an entry, given by its index and its value, to a screen
// coordinate on one axis.
type Scaler interface {
	Pos(index int, value float64) float64
}

type ScalerFunc func(int, float64) float64

func (f ScalerFunc) Pos(index int, value float64) float64 {
	return f(index, value)
}

// Digest writes the screen coordinates of every entry. The sets are
// checked first so that nothing is written when they are not valid.
func Digest(sets []*chart.Set, x, y Scaler) error {
	if err := chart.CheckSets(sets); err != nil {
		return err
	}
	for _, s := range sets {
		for i, e := range s.Entries() {
			e.SetCoordinates(x.Pos(i, e.Value()), y.Pos(i, e.Value()))
		}
	}
	return nil
}
