package chart

import (
	"errors"
	"slices"
	"testing"

	"github.com/midbel/chartview/layout"
)

func TestMakeSet(t *testing.T) {
	s, err := MakeSet("s", []string{"a", "b", "c"}, []float64{1, 5, 3})
	if err != nil {
		t.Fatalf("fail to create set: %s", err)
	}
	if s.Size() != 3 {
		t.Errorf("size: results mismatched! want 3 - got %d", s.Size())
	}
	if got := s.Labels(); !slices.Equal(got, []string{"a", "b", "c"}) {
		t.Errorf("labels: results mismatched! want [a b c] - got %v", got)
	}
	if s.Min() != 1 || s.Max() != 5 {
		t.Errorf("min/max: results mismatched! want 1/5 - got %v/%v", s.Min(), s.Max())
	}
	if _, err := MakeSet("s", []string{"a"}, []float64{1, 2}); !errors.Is(err, ErrSizeMismatch) {
		t.Errorf("expected size mismatch error but got %v", err)
	}
}

func TestUpdateValues(t *testing.T) {
	s, _ := MakeSet("s", []string{"a", "b"}, []float64{1, 2})
	s.entries[0].SetCoordinates(10, 20)
	if err := s.UpdateValues([]float64{1, 2, 3}); !errors.Is(err, ErrSizeMismatch) {
		t.Errorf("expected size mismatch error but got %v", err)
	}
	if got := s.Values(); !slices.Equal(got, []float64{1, 2}) {
		t.Errorf("values changed after rejected update: %v", got)
	}
	if err := s.UpdateValues([]float64{4, 8}); err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if got := s.Values(); !slices.Equal(got, []float64{4, 8}) {
		t.Errorf("values: results mismatched! want [4 8] - got %v", got)
	}
	if p := s.entries[0].Point(); p != layout.NewPoint(10, 20) {
		t.Errorf("coordinates changed by value update: %s", p)
	}
}

func TestCloneIsolated(t *testing.T) {
	s, _ := MakeSet("s", []string{"a", "b"}, []float64{1, 2})
	c := s.Clone()
	if err := c.Apply([]layout.Point{{X: 1, Y: 1}, {X: 2, Y: 2}}); err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if p := s.entries[1].Point(); p != (layout.Point{}) {
		t.Errorf("clone shares entries with original: %s", p)
	}
	if err := c.Apply(nil); !errors.Is(err, ErrSizeMismatch) {
		t.Errorf("expected size mismatch error but got %v", err)
	}
}

func TestCheckSets(t *testing.T) {
	a, _ := MakeSet("a", []string{"x", "y"}, []float64{1, 2})
	b, _ := MakeSet("b", []string{"x"}, []float64{1})
	tests := []struct {
		Sets []*Set
		Want error
	}{
		{Sets: nil, Want: ErrEmpty},
		{Sets: []*Set{a, nil}, Want: ErrNilSet},
		{Sets: []*Set{a, b}, Want: ErrSizeMismatch},
		{Sets: []*Set{NewSet("empty")}, Want: ErrEmpty},
		{Sets: []*Set{a, a.Clone()}, Want: nil},
	}
	for i, c := range tests {
		err := CheckSets(c.Sets)
		if !errors.Is(err, c.Want) {
			t.Errorf("%d: results mismatched! want %v - got %v", i, c.Want, err)
		}
	}
}

func TestParseType(t *testing.T) {
	tests := map[string]Type{
		"":        TypeBar,
		"BAR":     TypeBar,
		"hbar":    TypeHorizontalBar,
		"line":    TypeLine,
		"scatter": TypePoint,
	}
	for str, want := range tests {
		got, err := ParseType(str)
		if err != nil {
			t.Errorf("%s: unexpected error: %s", str, err)
			continue
		}
		if got != want {
			t.Errorf("%s: results mismatched! want %s - got %s", str, want, got)
		}
	}
	if _, err := ParseType("pie"); err == nil {
		t.Errorf("pie: expected error but got none")
	}
}
