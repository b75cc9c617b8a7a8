package anim

import (
	"testing"
	"time"

	"github.com/midbel/chartview/chart"
	"github.com/midbel/chartview/layout"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleFrame() Frame {
	return Frame{
		{{X: 0, Y: 10}, {X: 10, Y: 20}},
		{{X: 0, Y: 30}, {X: 10, Y: 40}},
	}
}

func TestLinearAdvance(t *testing.T) {
	var (
		to   = sampleFrame()
		from = to.Collapse(chart.Vertical, 100)
		a    = NewLinear(time.Second)
		done int
	)
	a.SetEndAction(func() { done++ })
	a.Play(from, to)
	require.True(t, a.Playing())

	f, playing := a.Advance(500 * time.Millisecond)
	assert.True(t, playing)
	assert.Equal(t, layout.Point{X: 0, Y: 55}, f[0][0])
	assert.Equal(t, layout.Point{X: 10, Y: 70}, f[1][1])

	f, playing = a.Advance(time.Second)
	assert.False(t, playing)
	assert.Equal(t, to, f)
	assert.Equal(t, 1, done)

	_, playing = a.Advance(time.Second)
	assert.False(t, playing)
	assert.Equal(t, 1, done)
}

func TestLinearCancel(t *testing.T) {
	var (
		to   = sampleFrame()
		a    = NewLinear(time.Second)
		done bool
	)
	a.SetEndAction(func() { done = true })
	a.Play(to.Collapse(chart.Horizontal, 0), to)
	a.Advance(100 * time.Millisecond)
	a.Cancel()

	assert.False(t, a.Playing())
	assert.Equal(t, to, a.Current())
	assert.False(t, done)
}

func TestPlayCopiesFrames(t *testing.T) {
	var (
		to = sampleFrame()
		a  = NewLinear(time.Second)
	)
	a.Play(to, to)
	to[0][0].X = 99
	f, _ := a.Advance(time.Second)
	assert.Equal(t, 0.0, f[0][0].X)
}

func TestEase(t *testing.T) {
	a := NewLinear(time.Second)
	a.Ease = func(t float64) float64 { return t * t }
	from := Frame{{{X: 0, Y: 0}}}
	to := Frame{{{X: 100, Y: 0}}}
	a.Play(from, to)
	f, _ := a.Advance(500 * time.Millisecond)
	assert.Equal(t, 25.0, f[0][0].X)
}

func TestInterpolateShape(t *testing.T) {
	var (
		from = Frame{{{X: 0, Y: 0}}}
		to   = sampleFrame()
	)
	got := Interpolate(from, to, 0.5)
	assert.Equal(t, to, got)
}

func TestApply(t *testing.T) {
	s, err := chart.MakeSet("s", []string{"a", "b"}, []float64{1, 2})
	require.NoError(t, err)
	frame := Frame{{{X: 1, Y: 2}, {X: 3, Y: 4}}}

	cs, err := frame.Apply([]*chart.Set{s})
	require.NoError(t, err)
	assert.Equal(t, frame[0], cs[0].ScreenPoints())
	assert.Equal(t, []layout.Point{{}, {}}, s.ScreenPoints())

	_, err = sampleFrame().Apply([]*chart.Set{s})
	assert.Error(t, err)
}
