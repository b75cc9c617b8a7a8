package chart

import (
	"fmt"
	"slices"

	"github.com/midbel/chartview/canvas"
	"github.com/midbel/chartview/layout"
)

type Entry struct {
	Label string
	Paint canvas.Paint

	value float64
	x     float64
	y     float64
}

func NewEntry(label string, value float64) *Entry {
	return &Entry{
		Label: label,
		value: value,
	}
}

func (e *Entry) Value() float64 {
	return e.value
}

func (e *Entry) SetValue(v float64) {
	e.value = v
}

func (e *Entry) X() float64 {
	return e.x
}

func (e *Entry) Y() float64 {
	return e.y
}

func (e *Entry) Point() layout.Point {
	return layout.NewPoint(e.x, e.y)
}

func (e *Entry) SetCoordinates(x, y float64) {
	e.x = x
	e.y = y
}

type Set struct {
	Name  string
	Paint canvas.Paint

	// line and point sets
	Dots      bool
	DotRadius float64
	Dash      []float64

	entries []*Entry
	visible bool
}

func NewSet(name string) *Set {
	return &Set{
		Name: name,
		Dots: true,
	}
}

func MakeSet(name string, labels []string, values []float64) (*Set, error) {
	if len(labels) != len(values) {
		return nil, fmt.Errorf("%w: %d labels for %d values", ErrSizeMismatch, len(labels), len(values))
	}
	s := NewSet(name)
	for i := range values {
		s.Add(labels[i], values[i])
	}
	return s, nil
}

func (s *Set) Add(label string, value float64) {
	s.entries = append(s.entries, NewEntry(label, value))
}

func (s *Set) AddEntry(e *Entry) {
	if e == nil {
		return
	}
	s.entries = append(s.entries, e)
}

func (s *Set) Size() int {
	return len(s.entries)
}

func (s *Set) Entries() []*Entry {
	return s.entries
}

func (s *Set) Entry(i int) (*Entry, error) {
	if i < 0 || i >= len(s.entries) {
		return nil, fmt.Errorf("%w: entry %d", ErrIndex, i)
	}
	return s.entries[i], nil
}

func (s *Set) Value(i int) float64 {
	return s.entries[i].value
}

func (s *Set) Label(i int) string {
	return s.entries[i].Label
}

func (s *Set) Values() []float64 {
	vs := make([]float64, len(s.entries))
	for i, e := range s.entries {
		vs[i] = e.value
	}
	return vs
}

func (s *Set) Labels() []string {
	ls := make([]string, len(s.entries))
	for i, e := range s.entries {
		ls[i] = e.Label
	}
	return ls
}

func (s *Set) UpdateValues(values []float64) error {
	if len(values) != len(s.entries) {
		return fmt.Errorf("%w: got %d values for %d entries", ErrSizeMismatch, len(values), len(s.entries))
	}
	for i := range values {
		s.entries[i].value = values[i]
	}
	return nil
}

func (s *Set) ScreenPoints() []layout.Point {
	ps := make([]layout.Point, len(s.entries))
	for i, e := range s.entries {
		ps[i] = e.Point()
	}
	return ps
}

// Apply overwrites the screen coordinates of the entries with the given
// points. It is used on copies of the sets while an animation plays.
func (s *Set) Apply(points []layout.Point) error {
	if len(points) != len(s.entries) {
		return fmt.Errorf("%w: got %d points for %d entries", ErrSizeMismatch, len(points), len(s.entries))
	}
	for i, p := range points {
		s.entries[i].SetCoordinates(p.X, p.Y)
	}
	return nil
}

func (s *Set) Visible() bool {
	return s.visible
}

func (s *Set) SetVisible(visible bool) {
	s.visible = visible
}

func (s *Set) Min() float64 {
	return slices.Min(s.Values())
}

func (s *Set) Max() float64 {
	return slices.Max(s.Values())
}

func (s *Set) Clone() *Set {
	c := *s
	c.Dash = slices.Clone(s.Dash)
	c.entries = make([]*Entry, len(s.entries))
	for i, e := range s.entries {
		x := *e
		c.entries[i] = &x
	}
	return &c
}

// CheckSets verifies that sets are not nil and all have the same number of
// entries.
func CheckSets(sets []*Set) error {
	if len(sets) == 0 {
		return ErrEmpty
	}
	size := -1
	for i, s := range sets {
		if s == nil {
			return fmt.Errorf("%w: set %d", ErrNilSet, i)
		}
		if size < 0 {
			size = s.Size()
		}
		if s.Size() != size {
			return fmt.Errorf("%w: set %d has %d entries, want %d", ErrSizeMismatch, i, s.Size(), size)
		}
	}
	if size == 0 {
		return ErrEmpty
	}
	return nil
}

func CloneSets(sets []*Set) []*Set {
	cs := make([]*Set, len(sets))
	for i := range sets {
		cs[i] = sets[i].Clone()
	}
	return cs
}
