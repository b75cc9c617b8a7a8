package view

import (
	"fmt"
	"slices"

	"github.com/midbel/chartview/anim"
	"github.com/midbel/chartview/chart"
	"github.com/midbel/chartview/layout"
)

// Show makes every set visible and requests a new layout.
func (v *View) Show() {
	for _, s := range v.data {
		s.SetVisible(true)
	}
	v.requested = true
}

func (v *View) ShowSet(index int) error {
	s, err := v.set(index)
	if err != nil {
		return err
	}
	s.SetVisible(true)
	v.requested = true
	return nil
}

// ShowWith attaches an animation that plays every time the chart enters.
func (v *View) ShowWith(a anim.Animation) {
	v.animation = a
	v.Show()
}

func (v *View) Dismiss() {
	v.DismissWith(v.animation)
}

// DismissWith plays the exit animation and clears the data when it ends.
// Without animation, the data are cleared immediately.
func (v *View) DismissWith(a anim.Animation) {
	if a == nil || !v.Ready() || len(v.data) == 0 {
		v.Clear()
		return
	}
	v.animation = a
	prev := a.EndAction()
	a.SetEndAction(func() {
		if prev != nil {
			prev()
		}
		v.Clear()
	})
	curr := anim.Snapshot(v.data)
	a.Play(curr, curr.Collapse(v.Orientation(), v.ZeroPosition()))
}

func (v *View) DismissSet(index int) error {
	s, err := v.set(index)
	if err != nil {
		return err
	}
	s.SetVisible(false)
	return nil
}

func (v *View) AddSet(s *chart.Set) error {
	if s == nil {
		v.logger.Error("set can not be added", "err", ErrNilSet)
		return ErrNilSet
	}
	if len(v.data) > 0 && s.Size() != v.data[0].Size() {
		err := fmt.Errorf("%w: set has %d entries, want %d", ErrSizeMismatch, s.Size(), v.data[0].Size())
		v.logger.Error("set can not be added", "err", err)
		return err
	}
	v.data = append(v.data, s)
	v.invalidate()
	return nil
}

func (v *View) SetData(sets []*chart.Set) error {
	if err := chart.CheckSets(sets); err != nil {
		v.logger.Error("data can not be replaced", "err", err)
		return err
	}
	v.data = slices.Clone(sets)
	v.invalidate()
	return nil
}

// UpdateValues changes the values of a set. Screen coordinates are left
// untouched until NotifyDataUpdate is called.
func (v *View) UpdateValues(index int, values []float64) error {
	s, err := v.set(index)
	if err != nil {
		return err
	}
	if err := s.UpdateValues(values); err != nil {
		v.logger.Error("values can not be updated", "set", index, "err", err)
		return err
	}
	return nil
}

func (v *View) Clear() {
	v.data = nil
	v.regions = RegionTable{}
	v.clearPressed()
}

func (v *View) Data() []*chart.Set {
	return slices.Clone(v.data)
}

// NotifyDataUpdate computes again the coordinates of the entries and their
// regions after their values have changed. The layout is kept.
func (v *View) NotifyDataUpdate() error {
	if v.state != Ready {
		v.logger.Warn("unexpected data update notification", "state", v.state)
		return ErrNotReady
	}
	if v.animating() {
		v.logger.Warn("unexpected data update notification", "err", ErrAnimating)
		return ErrAnimating
	}
	if err := chart.CheckSets(v.data); err != nil {
		v.logger.Error("data can not be updated", "err", err)
		return err
	}
	v.state = Digesting
	defer func() {
		v.state = Ready
	}()

	prev := anim.Snapshot(v.data)
	if err := Digest(v.data, v.x, v.y); err != nil {
		return err
	}
	next := anim.Snapshot(v.data)
	rt, err := BuildRegions(v.variant, v.geometry(), v.data)
	if err != nil {
		for i, s := range v.data {
			s.Apply(prev[i])
		}
		v.logger.Error("regions can not be built", "err", err)
		return err
	}
	v.regions = rt
	if v.animation != nil {
		v.animation.Play(prev, next)
	}
	return nil
}

// EntriesArea gives the area of every entry of a set relative to the
// padding of the chart.
func (v *View) EntriesArea(index int) ([]layout.Rect, error) {
	if index < 0 || index >= v.regions.Len() {
		return nil, fmt.Errorf("%w: set %d", ErrIndex, index)
	}
	rs := v.regions.Bounds(index)
	for i := range rs {
		rs[i] = v.entryArea(rs[i])
	}
	return rs, nil
}

func (v *View) entryArea(r layout.Rect) layout.Rect {
	return r.Offset(-v.padding.Left, -v.padding.Top)
}

func (v *View) set(index int) (*chart.Set, error) {
	if index < 0 || index >= len(v.data) {
		err := fmt.Errorf("%w: set %d", ErrIndex, index)
		v.logger.Error("invalid set", "err", err)
		return nil, err
	}
	return v.data[index], nil
}

// invalidate drops the regions once the structure of the data has changed
// so that they are never looked up against sets they were not built for.
// A ready view goes back to NotReady until the next layout digests the
// new sets.
func (v *View) invalidate() {
	v.regions = RegionTable{}
	v.clearPressed()
	if v.state == Ready {
		v.state = NotReady
		v.requested = true
	}
}
