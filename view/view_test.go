package view

import (
	"errors"
	"io"
	"slices"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/midbel/chartview/anim"
	"github.com/midbel/chartview/axis"
	"github.com/midbel/chartview/canvas"
	"github.com/midbel/chartview/chart"
	"github.com/midbel/chartview/layout"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAxis struct {
	name    string
	scale   axis.Scale
	request layout.Rect
	inner   layout.Rect
	values  bool
	pos     func(inner layout.Rect, index int, value float64) float64
	trace   *[]string

	resets int
}

func (a *fakeAxis) Config() *axis.Scale                       { return &a.scale }
func (a *fakeAxis) SetValues(values bool)                     { a.values = values }
func (a *fakeAxis) Init(_ []*chart.Set, _ *chart.Style) error { return nil }
func (a *fakeAxis) Measure(_ layout.Rect)                     { a.inner = a.request }
func (a *fakeAxis) InnerBounds() layout.Rect                  { return a.inner }
func (a *fakeAxis) SetInnerBounds(r layout.Rect)              { a.inner = r }
func (a *fakeAxis) Dispose()                                  {}
func (a *fakeAxis) ScreenStep() float64                       { return 50 }
func (a *fakeAxis) Reset()                                    { a.resets++ }

func (a *fakeAxis) Pos(index int, value float64) float64 {
	return a.pos(a.inner, index, value)
}

func (a *fakeAxis) Draw(_ canvas.Canvas) {
	if a.trace != nil {
		*a.trace = append(*a.trace, a.name)
	}
}

// fakeAxes negotiate to the inner bounds (10, 10, 110, 60). Values are
// mapped linearly from [0, 5] onto [60, 10] and entries are spread every 50
// pixels from the left.
func fakeAxes(trace *[]string) (*fakeAxis, *fakeAxis) {
	x := fakeAxis{
		name:    "x-axis",
		request: layout.NewRect(0, 5, 110, 80),
		trace:   trace,
		pos: func(inner layout.Rect, index int, _ float64) float64 {
			return inner.Left + float64(index)*50
		},
	}
	y := fakeAxis{
		name:    "y-axis",
		request: layout.NewRect(10, 10, 200, 60),
		trace:   trace,
		pos: func(inner layout.Rect, _ int, value float64) float64 {
			return inner.Bottom - value/5*inner.Height()
		},
	}
	return &x, &y
}

type recorder struct {
	calls []string
}

func (r *recorder) Line(_, _, _, _ float64, _ canvas.Paint) {
	r.calls = append(r.calls, "line")
}

func (r *recorder) Rect(_ layout.Rect, _ canvas.Paint) {
	r.calls = append(r.calls, "rect")
}

func (r *recorder) Circle(_, _, _ float64, _ canvas.Paint) {
	r.calls = append(r.calls, "circle")
}

func (r *recorder) Text(_ string, _, _ float64, _ canvas.Paint) {
	r.calls = append(r.calls, "text")
}

func quietLogger() *log.Logger {
	return log.New(io.Discard)
}

func sampleSets(t *testing.T, values ...[]float64) []*chart.Set {
	t.Helper()
	if len(values) == 0 {
		values = append(values, []float64{1, 5, 3})
	}
	var sets []*chart.Set
	for _, vs := range values {
		labels := make([]string, len(vs))
		for i := range labels {
			labels[i] = string(rune('a' + i))
		}
		s, err := chart.MakeSet("set", labels, vs)
		require.NoError(t, err)
		sets = append(sets, s)
	}
	return sets
}

func fakeView(t *testing.T, variant Variant, sets []*chart.Set) *View {
	t.Helper()
	x, y := fakeAxes(nil)
	v := NewWithAxes(variant, x, y)
	v.SetLogger(quietLogger())
	v.SetMeasurer(canvas.NewFaceMeasurer())
	require.NoError(t, v.SetData(sets))
	v.Show()
	require.True(t, v.PreDraw(layout.NewRect(0, 0, 200, 100)))
	return v
}

func TestDigestIdempotent(t *testing.T) {
	var (
		sets = sampleSets(t, []float64{1, 5, 3}, []float64{2, 0, 4})
		x    = ScalerFunc(func(i int, _ float64) float64 { return float64(i)*10 + 0.1 })
		y    = ScalerFunc(func(_ int, v float64) float64 { return 100 - v*3.3 })
	)
	require.NoError(t, Digest(sets, x, y))
	first := anim.Snapshot(sets)
	require.NoError(t, Digest(sets, x, y))
	assert.Equal(t, first, anim.Snapshot(sets))
}

func TestDigestRejectsInvalidSets(t *testing.T) {
	var (
		sets = sampleSets(t, []float64{1, 5, 3}, []float64{2, 0})
		x    = ScalerFunc(func(i int, _ float64) float64 { return 1 })
	)
	err := Digest(sets, x, x)
	assert.ErrorIs(t, err, ErrSizeMismatch)
	for _, s := range sets {
		for _, p := range s.ScreenPoints() {
			assert.Equal(t, layout.Point{}, p)
		}
	}
	assert.ErrorIs(t, Digest(nil, x, x), ErrEmpty)
	assert.ErrorIs(t, Digest([]*chart.Set{nil}, x, x), ErrNilSet)
}

func TestBuildRegionsShape(t *testing.T) {
	variants := []Variant{NewBar(), NewHorizontalBar(), NewLine(), NewPoint()}
	for _, vr := range variants {
		sets := sampleSets(t, []float64{1, 5, 3}, []float64{2, 0, 4})
		v := fakeView(t, vr, sets)
		rt := v.Regions()
		require.Equal(t, len(sets), rt.Len())
		for i := range sets {
			assert.Equal(t, sets[i].Size(), rt.Size(i))
		}
	}
}

func TestRegionTableMisaligned(t *testing.T) {
	sets := sampleSets(t, []float64{1, 2})
	_, err := NewRegionTable([][]Region{{NewRectRegion(layout.Rect{})}}, sets)
	assert.ErrorIs(t, err, ErrMisaligned)
	_, err = NewRegionTable(nil, sets)
	assert.ErrorIs(t, err, ErrMisaligned)
}

func TestNegotiatedScenario(t *testing.T) {
	v := fakeView(t, NewLine(), sampleSets(t))

	assert.Equal(t, layout.NewRect(10, 10, 110, 60), v.InnerBounds())
	entries := v.Data()[0].Entries()
	assert.Equal(t, 10.0, entries[1].Y())
	assert.Equal(t, 50.0, entries[0].Y())
	assert.Equal(t, 60.0, v.ZeroPosition())
	assert.Equal(t, Ready, v.State())
}

func TestPreDrawOncePerRequest(t *testing.T) {
	x, y := fakeAxes(nil)
	v := NewWithAxes(NewLine(), x, y)
	v.SetLogger(quietLogger())
	assert.False(t, v.PreDraw(layout.NewRect(0, 0, 200, 100)))

	v.Show()
	assert.False(t, v.PreDraw(layout.NewRect(0, 0, 200, 100)))

	require.NoError(t, v.SetData(sampleSets(t)))
	assert.True(t, v.PreDraw(layout.NewRect(0, 0, 200, 100)))

	y.request = layout.NewRect(20, 10, 200, 60)
	assert.True(t, v.PreDraw(layout.NewRect(0, 0, 200, 100)))
	assert.Equal(t, 10.0, v.InnerBounds().Left)

	v.Show()
	assert.True(t, v.PreDraw(layout.NewRect(0, 0, 200, 100)))
	assert.Equal(t, 20.0, v.InnerBounds().Left)
}

func TestHitTest(t *testing.T) {
	var (
		v       = fakeView(t, NewPoint(), sampleSets(t))
		entries []int
		clicks  int
	)
	v.OnEntryClick(func(set, index int, _ layout.Rect) {
		entries = append(entries, set, index)
	})
	v.OnClick(func() { clicks++ })

	// entry 1 is at (60, 10)
	v.Touch(Press(61, 11))
	v.Touch(Release(60, 12))
	assert.Equal(t, []int{0, 1}, entries)
	assert.Zero(t, clicks)
	_, _, pressed := v.Pressed()
	assert.False(t, pressed)

	entries = nil
	v.Touch(Press(60, 10))
	v.Touch(Release(150, 90))
	assert.Empty(t, entries)
	assert.Equal(t, 1, clicks)
	_, _, pressed = v.Pressed()
	assert.False(t, pressed)

	v.Touch(Release(60, 10))
	assert.Empty(t, entries)
	assert.Equal(t, 2, clicks)
}

func TestHitTestLatestPressWins(t *testing.T) {
	var (
		v       = fakeView(t, NewPoint(), sampleSets(t))
		entries []int
		clicks  int
	)
	v.OnEntryClick(func(set, index int, _ layout.Rect) {
		entries = append(entries, set, index)
	})
	v.OnClick(func() { clicks++ })

	// the release of the first press is lost
	v.Touch(Press(60, 10))
	v.Touch(Press(150, 90))
	_, _, pressed := v.Pressed()
	assert.False(t, pressed)

	v.Touch(Release(60, 10))
	assert.Empty(t, entries)
	assert.Equal(t, 1, clicks)
}

func TestHitTestFirstRegionWins(t *testing.T) {
	var (
		sets = sampleSets(t, []float64{1, 5, 3}, []float64{1, 5, 3})
		v    = fakeView(t, NewPoint(), sets)
		got  []int
	)
	v.OnEntryClick(func(set, index int, _ layout.Rect) {
		got = []int{set, index}
	})
	v.Touch(Press(10, 50))
	v.Touch(Release(10, 50))
	assert.Equal(t, []int{0, 0}, got)
}

func TestUpdateValuesMismatch(t *testing.T) {
	v := fakeView(t, NewLine(), sampleSets(t))
	before := anim.Snapshot(v.Data())

	err := v.UpdateValues(0, []float64{1, 2})
	assert.ErrorIs(t, err, ErrSizeMismatch)
	require.NoError(t, v.NotifyDataUpdate())
	assert.Equal(t, before, anim.Snapshot(v.Data()))

	assert.ErrorIs(t, v.UpdateValues(3, []float64{1, 2, 3}), ErrIndex)
}

func TestNotifyDataUpdateTwice(t *testing.T) {
	v := fakeView(t, NewBar(), sampleSets(t, []float64{1, 5, 3}, []float64{2, 2, 2}))
	size := v.Regions().Size(0)

	require.NoError(t, v.UpdateValues(0, []float64{5, 5, 5}))
	require.NoError(t, v.NotifyDataUpdate())
	require.NoError(t, v.NotifyDataUpdate())

	rt := v.Regions()
	assert.Equal(t, 2, rt.Len())
	assert.Equal(t, size, rt.Size(0))
	for _, e := range v.Data()[0].Entries() {
		assert.Equal(t, 10.0, e.Y())
	}
	r, ok := rt.At(0, 0)
	require.True(t, ok)
	assert.Equal(t, 10.0, r.Bounds().Top)
}

func TestLifecycleMisuse(t *testing.T) {
	x, y := fakeAxes(nil)
	v := NewWithAxes(NewLine(), x, y)
	v.SetLogger(quietLogger())
	require.NoError(t, v.SetData(sampleSets(t)))
	assert.ErrorIs(t, v.NotifyDataUpdate(), ErrNotReady)

	a := anim.NewLinear(time.Second)
	v.ShowWith(a)
	require.True(t, v.PreDraw(layout.NewRect(0, 0, 200, 100)))
	require.True(t, a.Playing())

	before := anim.Snapshot(v.Data())
	require.NoError(t, v.UpdateValues(0, []float64{0, 0, 0}))
	assert.ErrorIs(t, v.NotifyDataUpdate(), ErrAnimating)
	assert.Equal(t, before, anim.Snapshot(v.Data()))
	assert.False(t, v.Touch(Press(60, 10)))

	for v.Advance(100 * time.Millisecond) {
	}
	require.NoError(t, v.NotifyDataUpdate())
	assert.True(t, a.Playing())
}

func TestResetReproducesBounds(t *testing.T) {
	layoutOnce := func(v *View) layout.Rect {
		require.NoError(t, v.SetData(sampleSets(t, []float64{1, 5, 3, 7})))
		v.Show()
		require.True(t, v.PreDraw(layout.NewRect(0, 0, 320, 200)))
		return v.InnerBounds()
	}
	v := New(NewBar())
	v.SetLogger(quietLogger())
	v.SetMeasurer(canvas.NewFaceMeasurer())
	require.NoError(t, v.SetAxisBorderValues(0, 8, 2))
	v.SetBorderSpacing(4)

	first := layoutOnce(v)
	regions := v.Regions().Bounds(0)

	v.Reset()
	assert.Equal(t, NotReady, v.State())
	assert.Empty(t, v.Data())
	assert.True(t, v.Regions().Empty())

	assert.Equal(t, first, layoutOnce(v))
	assert.Equal(t, regions, v.Regions().Bounds(0))
	assert.Equal(t, 2.0, v.Step())
	assert.Equal(t, 4.0, v.BorderSpacing())
}

func TestResetOnlyMandatoryAxes(t *testing.T) {
	x, y := fakeAxes(nil)
	x.scale.SetMandatoryBorderSpacing(true)
	v := NewWithAxes(NewLine(), x, y)
	v.SetLogger(quietLogger())
	v.Reset()
	assert.Equal(t, 1, x.resets)
	assert.Equal(t, 0, y.resets)
}

func TestConfigurationErrors(t *testing.T) {
	v := fakeView(t, NewPoint(), sampleSets(t))
	rec := recorder{}

	assert.ErrorIs(t, v.SetGrid(chart.GridFull, 0, 5, canvas.Paint{}), ErrGrid)
	assert.ErrorIs(t, v.SetGrid(chart.GridFull, 5, -1, canvas.Paint{}), ErrGrid)
	v.Draw(&rec)
	assert.NotContains(t, rec.calls, "line", "grid drawn after rejected configuration")

	assert.ErrorIs(t, v.SetStep(0), ErrStep)
	assert.ErrorIs(t, v.SetAxisBorderValues(0, 5, 2), ErrBorders)
	assert.ErrorIs(t, v.SetLabelThreshold(0, 3, canvas.Paint{}), ErrIndex)
	assert.ErrorIs(t, v.AddSet(nil), ErrNilSet)
	assert.ErrorIs(t, v.AddSet(sampleSets(t, []float64{1})[0]), ErrSizeMismatch)
	assert.ErrorIs(t, v.SetData(nil), ErrEmpty)
	assert.Len(t, v.Data(), 1)
	assert.False(t, v.Regions().Empty())
}

func TestDrawOrder(t *testing.T) {
	var (
		trace []string
		x, y  = fakeAxes(&trace)
		v     = NewWithAxes(NewPoint(), x, y)
	)
	v.SetLogger(quietLogger())
	require.NoError(t, v.SetData(sampleSets(t)))
	require.NoError(t, v.SetGrid(chart.GridVertical, 5, 2, canvas.Paint{}))
	v.SetValueThreshold(1, 2, canvas.Paint{})
	v.Show()
	require.True(t, v.PreDraw(layout.NewRect(0, 0, 200, 100)))

	rec := recorder{}
	v.Draw(&rec)
	want := []string{"line", "line", "rect", "circle", "circle", "circle"}
	assert.Equal(t, want, rec.calls)
	assert.Equal(t, []string{"y-axis", "x-axis"}, trace)
	assert.False(t, v.Drawing())
	assert.True(t, v.CanDraw())
}

func TestThresholdLine(t *testing.T) {
	v := fakeView(t, NewPoint(), sampleSets(t))
	v.SetValueThreshold(2, 2, canvas.Paint{})
	require.NoError(t, v.SetLabelThreshold(2, 0, canvas.Paint{}))

	rec := recorder{}
	v.Draw(&rec)
	assert.Equal(t, []string{"line", "rect"}, rec.calls[:2])
}

func TestDismissWithAnimation(t *testing.T) {
	v := fakeView(t, NewLine(), sampleSets(t))
	var ended bool
	a := anim.NewLinear(time.Second)
	a.SetEndAction(func() { ended = true })

	v.DismissWith(a)
	require.True(t, a.Playing())
	assert.Len(t, v.Data(), 1)

	v.Advance(500 * time.Millisecond)
	rec := recorder{}
	v.Draw(&rec)
	assert.Len(t, v.Data(), 1)
	assert.Equal(t, 50.0, v.Data()[0].Entries()[0].Y())

	assert.False(t, v.Advance(time.Second))
	assert.True(t, ended)
	assert.Empty(t, v.Data())
	assert.True(t, v.Regions().Empty())
}

func TestDismissSet(t *testing.T) {
	v := fakeView(t, NewPoint(), sampleSets(t, []float64{1, 2, 3}, []float64{3, 2, 1}))
	require.NoError(t, v.DismissSet(1))
	rec := recorder{}
	v.Draw(&rec)
	assert.Equal(t, 3, countCalls(rec.calls, "circle"))
	assert.ErrorIs(t, v.DismissSet(2), ErrIndex)

	v.Dismiss()
	assert.Empty(t, v.Data())
}

func TestEntriesArea(t *testing.T) {
	x, y := fakeAxes(nil)
	v := NewWithAxes(NewPoint(), x, y)
	v.SetLogger(quietLogger())
	v.SetPadding(5, 5, 0, 0)
	require.NoError(t, v.SetData(sampleSets(t)))
	v.Show()
	require.True(t, v.PreDraw(layout.NewRect(0, 0, 200, 100)))

	areas, err := v.EntriesArea(0)
	require.NoError(t, err)
	require.Len(t, areas, 3)
	assert.Equal(t, layout.NewRect(45, -5, 65, 15), areas[1])

	_, err = v.EntriesArea(1)
	assert.ErrorIs(t, err, ErrIndex)
}

func TestTooltipToggle(t *testing.T) {
	v := fakeView(t, NewPoint(), sampleSets(t))
	tip := NewBox(canvas.NewFaceMeasurer())
	v.SetTooltip(tip)

	v.Touch(Press(60, 10))
	v.Touch(Release(60, 10))
	require.True(t, tip.On())
	assert.Equal(t, "5", tip.Text())
	assert.True(t, v.Frame().ContainsRect(tip.Area()))

	v.Touch(Press(110, 30))
	v.Touch(Release(110, 30))
	require.True(t, tip.On())
	assert.Equal(t, "3", tip.Text())
	assert.Len(t, v.Tooltips(), 1)

	v.Touch(Press(190, 90))
	v.Touch(Release(190, 90))
	assert.False(t, tip.On())
	assert.Empty(t, v.Tooltips())
}

type slowTip struct {
	Box
	exits []func()
}

func (s *slowTip) Enter(_ func()) {}

func (s *slowTip) Exit(done func()) {
	s.exits = append(s.exits, done)
}

func TestTooltipExitHook(t *testing.T) {
	v := fakeView(t, NewPoint(), sampleSets(t))
	tip := slowTip{Box: *NewBox(nil)}
	v.SetTooltip(&tip)

	v.Touch(Press(60, 10))
	v.Touch(Release(60, 10))
	require.True(t, tip.On())

	v.Touch(Press(190, 90))
	v.Touch(Release(190, 90))
	assert.True(t, tip.On())
	require.Len(t, tip.exits, 1)
	tip.exits[0]()
	assert.False(t, tip.On())
}

func TestDataChangeDropsRegions(t *testing.T) {
	v := fakeView(t, NewPoint(), sampleSets(t))
	added := sampleSets(t, []float64{4, 2, 1})[0]
	added.SetVisible(true)
	require.NoError(t, v.AddSet(added))
	assert.True(t, v.Regions().Empty())
	assert.False(t, v.Ready())
	assert.Equal(t, NotReady, v.State())

	var rec recorder
	v.Draw(&rec)
	assert.Empty(t, rec.calls)
	assert.ErrorIs(t, v.NotifyDataUpdate(), ErrNotReady)

	require.True(t, v.PreDraw(layout.NewRect(0, 0, 200, 100)))
	assert.Equal(t, 2, v.Regions().Len())
	assert.Equal(t, 10.0, added.Entries()[0].X())
	require.NoError(t, v.NotifyDataUpdate())
}

func TestRealAxesLayout(t *testing.T) {
	v := New(NewLine())
	v.SetLogger(quietLogger())
	v.SetMeasurer(canvas.NewFaceMeasurer())
	require.NoError(t, v.SetData(sampleSets(t)))
	v.Show()
	require.True(t, v.PreDraw(layout.NewRect(0, 0, 300, 200)))

	var (
		inner   = v.InnerBounds()
		entries = v.Data()[0].Entries()
	)
	assert.False(t, inner.Inverted())
	assert.True(t, v.Frame().ContainsRect(inner))
	assert.Equal(t, inner.Top, entries[1].Y())
	assert.Equal(t, inner.Bottom, v.ZeroPosition())
	xs := []float64{entries[0].X(), entries[1].X(), entries[2].X()}
	assert.True(t, slices.IsSorted(xs))
}

func TestStateString(t *testing.T) {
	for s, want := range map[State]string{NotReady: "not-ready", Ready: "ready", Disposed: "disposed"} {
		if got := s.String(); got != want {
			t.Errorf("state: results mismatched! want %s - got %s", want, got)
		}
	}
	if !errors.Is(ErrStep, axis.ErrStep) {
		t.Errorf("step error not shared with axis package")
	}
}

func countCalls(calls []string, name string) int {
	var n int
	for _, c := range calls {
		if c == name {
			n++
		}
	}
	return n
}
