package anim

import (
	"time"
)

const DefaultDuration = 500 * time.Millisecond

type Animation interface {
	Play(from, to Frame)
	Playing() bool
	Cancel()
	Advance(time.Duration) (Frame, bool)
	Current() Frame
	SetEndAction(func())
	EndAction() func()
}

// Linear moves every point in a straight line from its first to its last
// position. Ease reshapes the progress and defaults to the identity.
type Linear struct {
	Duration time.Duration
	Ease     func(float64) float64

	from    Frame
	to      Frame
	current Frame
	elapsed time.Duration
	playing bool
	end     func()
}

func NewLinear(d time.Duration) *Linear {
	if d <= 0 {
		d = DefaultDuration
	}
	return &Linear{
		Duration: d,
	}
}

func (a *Linear) Play(from, to Frame) {
	a.from = from.Clone()
	a.to = to.Clone()
	a.current = a.from.Clone()
	a.elapsed = 0
	a.playing = true
}

func (a *Linear) Playing() bool {
	return a.playing
}

// Cancel stops the animation on its last frame. The end action is not run.
func (a *Linear) Cancel() {
	if !a.playing {
		return
	}
	a.playing = false
	a.current = a.to.Clone()
}

func (a *Linear) Advance(dt time.Duration) (Frame, bool) {
	if !a.playing {
		return a.current.Clone(), false
	}
	a.elapsed += dt
	progress := 1.0
	if a.Duration > 0 {
		progress = min(float64(a.elapsed)/float64(a.Duration), 1)
	}
	a.current = Interpolate(a.from, a.to, a.ease(progress))
	if progress >= 1 {
		a.playing = false
		a.current = a.to.Clone()
		if fn := a.end; fn != nil {
			a.end = nil
			fn()
		}
	}
	return a.current.Clone(), a.playing
}

func (a *Linear) Current() Frame {
	return a.current.Clone()
}

func (a *Linear) SetEndAction(fn func()) {
	a.end = fn
}

func (a *Linear) EndAction() func() {
	return a.end
}

func (a *Linear) ease(t float64) float64 {
	if a.Ease == nil {
		return t
	}
	return a.Ease(t)
}
