package canvas

import (
	"bytes"
	"strings"
	"testing"

	"github.com/midbel/chartview/layout"
)

func TestFaceMeasurer(t *testing.T) {
	m := NewFaceMeasurer()
	tests := []struct {
		Input string
		Want  float64
	}{
		{Input: "", Want: 0},
		{Input: "1", Want: 7},
		{Input: "100", Want: 21},
	}
	for _, c := range tests {
		got := m.TextWidth(c.Input)
		if got != c.Want {
			t.Errorf("%q: results mismatched! want %.0f - got %.0f", c.Input, c.Want, got)
		}
	}
	if h := m.FontHeight(); h != 13 {
		t.Errorf("font height: results mismatched! want 13 - got %.0f", h)
	}
}

func TestTermLine(t *testing.T) {
	tc := NewTerm(5, 3)
	tc.Line(0, 1, 4, 1, Stroke(Black, 1))
	tc.Line(2, 0, 2, 2, Stroke(Black, 1))

	want := "  │  \n──│──\n  │  "
	if got := tc.String(); got != want {
		t.Errorf("lines: results mismatched!\nwant:\n%s\ngot:\n%s", want, got)
	}
}

func TestTermRect(t *testing.T) {
	tc := NewTerm(4, 3)
	tc.Rect(layout.NewRect(0, 0, 4, 3), Stroke(Black, 1))
	want := "┌──┐\n│  │\n└──┘"
	if got := tc.String(); got != want {
		t.Errorf("rect: results mismatched!\nwant:\n%s\ngot:\n%s", want, got)
	}

	tc.Clear()
	tc.Rect(layout.NewRect(1, 1, 3, 2), Filled(Black))
	want = "    \n ██ \n    "
	if got := tc.String(); got != want {
		t.Errorf("filled rect: results mismatched!\nwant:\n%s\ngot:\n%s", want, got)
	}
}

func TestTermText(t *testing.T) {
	tc := NewTerm(6, 2)
	tc.Text("abc", 1, 1, Paint{})
	tc.Text("toolong", 4, 2, Paint{})
	want := " abc  \n    to"
	if got := tc.String(); got != want {
		t.Errorf("text: results mismatched!\nwant:\n%s\ngot:\n%s", want, got)
	}
	if w := tc.TextWidth("漢字"); w != 4 {
		t.Errorf("wide text: results mismatched! want 4 - got %.0f", w)
	}
}

func TestTermRenderKeepsContent(t *testing.T) {
	tc := NewTerm(3, 1)
	tc.Line(0, 0, 2, 0, Stroke(ParseColor("#ff0000"), 1))
	if got := tc.Render(); !strings.Contains(got, "─") {
		t.Errorf("render lost drawn cells: %q", got)
	}
}

func TestChartSave(t *testing.T) {
	for _, fn := range []func(int, int) (*Chart, error){PNG, SVG} {
		c, err := fn(120, 80)
		if err != nil {
			t.Fatalf("fail to create canvas: %s", err)
		}
		c.Line(0, 0, 100, 60, Stroke(Black, 1))
		c.Rect(layout.NewRect(10, 10, 40, 40), Filled(ParseColor("#336699")))
		c.Circle(60, 40, 4, Filled(Black))
		c.Text("5", 2, 12, Paint{Color: Black})

		var buf bytes.Buffer
		if err := c.Save(&buf); err != nil {
			t.Fatalf("fail to save canvas: %s", err)
		}
		if buf.Len() == 0 {
			t.Errorf("empty output")
		}
	}
	if _, err := PNG(0, 10); err == nil {
		t.Errorf("expected error for empty canvas")
	}
}
