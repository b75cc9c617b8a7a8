package view

import (
	"github.com/midbel/chartview/layout"
)

type Action int8

const (
	Down Action = iota
	Up
	Cancel
)

type TouchEvent struct {
	Action Action
	X      float64
	Y      float64
}

func Press(x, y float64) TouchEvent {
	return TouchEvent{Action: Down, X: x, Y: y}
}

func Release(x, y float64) TouchEvent {
	return TouchEvent{Action: Up, X: x, Y: y}
}

// Touch resolves pointer events. An entry is clicked when it is both
// pressed and released on; any other release is a click on the chart.
// It returns whether the event has been handled.
func (v *View) Touch(ev TouchEvent) bool {
	if v.animating() {
		return false
	}
	switch ev.Action {
	case Down:
		v.clearPressed()
		if v.tooltip == nil && v.onEntry == nil {
			break
		}
		if v.regions.Empty() {
			break
		}
		if s, i, ok := v.regions.Lookup(ev.X, ev.Y); ok {
			v.pressedSet, v.pressedIndex = s, i
		}
	case Up:
		defer v.clearPressed()
		r, ok := v.regions.At(v.pressedSet, v.pressedIndex)
		if ok && r.Contains(ev.X, ev.Y) {
			v.clickEntry(v.pressedSet, v.pressedIndex, r.Bounds())
			break
		}
		if v.onClick != nil {
			v.onClick()
		}
		if v.tooltip != nil && v.tooltip.On() {
			v.dismissTooltip(nil, 0)
		}
	case Cancel:
		v.clearPressed()
	default:
		return false
	}
	return true
}

func (v *View) Pressed() (int, int, bool) {
	return v.pressedSet, v.pressedIndex, v.pressedSet >= 0
}

func (v *View) clickEntry(set, index int, bounds layout.Rect) {
	if v.onEntry != nil {
		v.onEntry(set, index, v.entryArea(bounds))
	}
	if v.tooltip != nil && set < len(v.data) {
		v.toggleTooltip(bounds, v.data[set].Value(index))
	}
}

func (v *View) clearPressed() {
	v.pressedSet = -1
	v.pressedIndex = -1
}
