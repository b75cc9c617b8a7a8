package canvas

import (
	"image/color"
	"math"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/mattn/go-runewidth"
	"github.com/midbel/chartview/layout"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

const (
	runeHLine  = '─'
	runeVLine  = '│'
	runeDot    = '·'
	runeFill   = '█'
	runeCircle = '●'
	runeTL     = '┌'
	runeTR     = '┐'
	runeBL     = '└'
	runeBR     = '┘'
)

type cell struct {
	char rune
	fg   color.Color
	wide bool
}

// Term draws on a grid of terminal cells. One unit of the coordinate space
// is one cell.
type Term struct {
	width  int
	height int
	cells  [][]cell
}

func NewTerm(width, height int) *Term {
	t := Term{
		width:  max(width, 0),
		height: max(height, 0),
	}
	t.Clear()
	return &t
}

func (t *Term) Frame() layout.Rect {
	return layout.NewRect(0, 0, float64(t.width), float64(t.height))
}

func (t *Term) Clear() {
	t.cells = make([][]cell, t.height)
	for i := range t.cells {
		t.cells[i] = make([]cell, t.width)
		for j := range t.cells[i] {
			t.cells[i][j].char = ' '
		}
	}
}

func (t *Term) TextWidth(str string) float64 {
	return float64(runewidth.StringWidth(str))
}

func (t *Term) FontHeight() float64 {
	return 1
}

func (t *Term) Line(x0, y0, x1, y1 float64, p Paint) {
	var (
		c0 = cellOf(x0)
		r0 = cellOf(y0)
		c1 = cellOf(x1)
		r1 = cellOf(y1)
	)
	switch {
	case r0 == r1:
		for c := min(c0, c1); c <= max(c0, c1); c++ {
			t.set(c, r0, runeHLine, p.Color)
		}
	case c0 == c1:
		for r := min(r0, r1); r <= max(r0, r1); r++ {
			t.set(c0, r, runeVLine, p.Color)
		}
	default:
		t.bresenham(c0, r0, c1, r1, p.Color)
	}
}

func (t *Term) Rect(r layout.Rect, p Paint) {
	r = r.Normalize()
	var (
		left   = cellOf(r.Left)
		top    = cellOf(r.Top)
		right  = int(math.Ceil(r.Right)) - 1
		bottom = int(math.Ceil(r.Bottom)) - 1
	)
	if right < left {
		right = left
	}
	if bottom < top {
		bottom = top
	}
	if p.Fill {
		for y := top; y <= bottom; y++ {
			for x := left; x <= right; x++ {
				t.set(x, y, runeFill, p.Color)
			}
		}
		return
	}
	for x := left; x <= right; x++ {
		t.set(x, top, runeHLine, p.Color)
		t.set(x, bottom, runeHLine, p.Color)
	}
	for y := top; y <= bottom; y++ {
		t.set(left, y, runeVLine, p.Color)
		t.set(right, y, runeVLine, p.Color)
	}
	t.set(left, top, runeTL, p.Color)
	t.set(right, top, runeTR, p.Color)
	t.set(left, bottom, runeBL, p.Color)
	t.set(right, bottom, runeBR, p.Color)
}

func (t *Term) Circle(x, y, radius float64, p Paint) {
	if radius < 1 || p.Fill {
		t.set(cellOf(x), cellOf(y), runeCircle, p.Color)
		return
	}
	steps := int(math.Ceil(2 * math.Pi * radius))
	for i := 0; i < steps; i++ {
		a := 2 * math.Pi * float64(i) / float64(steps)
		t.set(cellOf(x+radius*math.Cos(a)), cellOf(y+radius*math.Sin(a)), runeDot, p.Color)
	}
}

// Text writes str on the row right above its baseline y.
func (t *Term) Text(str string, x, y float64, p Paint) {
	var (
		col = cellOf(x)
		row = int(math.Ceil(y)) - 1
	)
	for _, r := range str {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		t.set(col, row, r, p.Color)
		if w > 1 && t.inside(col+1, row) {
			t.cells[row][col+1] = cell{wide: true}
		}
		col += w
	}
}

func (t *Term) Render() string {
	var lines []string
	for _, row := range t.cells {
		var (
			buf  strings.Builder
			run  strings.Builder
			curr color.Color
		)
		flush := func() {
			if run.Len() == 0 {
				return
			}
			if curr == nil {
				buf.WriteString(run.String())
			} else {
				buf.WriteString(lipgloss.NewStyle().Foreground(curr).Render(run.String()))
			}
			run.Reset()
		}
		for _, c := range row {
			if c.wide {
				continue
			}
			if !sameColor(c.fg, curr) {
				flush()
				curr = c.fg
			}
			run.WriteRune(c.char)
		}
		flush()
		lines = append(lines, buf.String())
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

// String returns the content of the grid without any styling.
func (t *Term) String() string {
	var buf strings.Builder
	for i, row := range t.cells {
		if i > 0 {
			buf.WriteByte('\n')
		}
		for _, c := range row {
			if c.wide {
				continue
			}
			buf.WriteRune(c.char)
		}
	}
	return buf.String()
}

func (t *Term) Cell(x, y int) rune {
	if !t.inside(x, y) {
		return 0
	}
	return t.cells[y][x].char
}

func (t *Term) bresenham(x0, y0, x1, y1 int, col drawing.Color) {
	var (
		dx  = abs(x1 - x0)
		dy  = -abs(y1 - y0)
		sx  = 1
		sy  = 1
		err = dx + dy
	)
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	for {
		t.set(x0, y0, runeDot, col)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

func (t *Term) set(x, y int, char rune, col drawing.Color) {
	if !t.inside(x, y) {
		return
	}
	var fg color.Color
	if !col.IsZero() {
		fg = col
	}
	t.cells[y][x] = cell{
		char: char,
		fg:   fg,
	}
}

func (t *Term) inside(x, y int) bool {
	return x >= 0 && x < t.width && y >= 0 && y < t.height
}

func sameColor(a, b color.Color) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	r1, g1, b1, a1 := a.RGBA()
	r2, g2, b2, a2 := b.RGBA()
	return r1 == r2 && g1 == g2 && b1 == b2 && a1 == a2
}

// cellOf gives the index of the cell covering f. A cell covers [n, n+1).
func cellOf(f float64) int {
	return int(math.Floor(f))
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
