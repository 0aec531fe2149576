package overlay

import (
	"fmt"
	"strings"
	"time"

	"github.com/wesen/sanpo/pkg/perimeter"
)

// Easing maps linear progress in [0,1] to eased progress in [0,1].
type Easing func(t float64) float64

// Linear is the identity easing.
func Linear(t float64) float64 { return t }

// EaseInOut is the smoothstep curve.
func EaseInOut(t float64) float64 { return t * t * (3 - 2*t) }

// ParseEasing returns the easing with the given name ("linear" or
// "ease-in-out"). An empty name is linear.
func ParseEasing(name string) (Easing, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "linear":
		return Linear, nil
	case "ease-in-out", "easeinout", "smooth":
		return EaseInOut, nil
	}
	return nil, fmt.Errorf("unknown easing %q", name)
}

// Transition moves a point from From to To over Duration starting at
// Start. It interpolates the points, not the angles.
type Transition struct {
	From, To perimeter.Point
	Start    time.Time
	Duration time.Duration
	Ease     Easing
}

// NewTransition creates a transition starting at start.
func NewTransition(from, to perimeter.Point, start time.Time, d time.Duration, ease Easing) Transition {
	if ease == nil {
		ease = Linear
	}
	return Transition{From: from, To: to, Start: start, Duration: d, Ease: ease}
}

// Progress returns the linear progress at now, clamped to [0,1].
func (tr Transition) Progress(now time.Time) float64 {
	if tr.Duration <= 0 {
		return 1
	}
	p := float64(now.Sub(tr.Start)) / float64(tr.Duration)
	switch {
	case p < 0:
		return 0
	case p > 1:
		return 1
	}
	return p
}

// At returns the interpolated point at now.
func (tr Transition) At(now time.Time) perimeter.Point {
	p := tr.Progress(now)
	if p >= 1 {
		return tr.To
	}
	ease := tr.Ease
	if ease == nil {
		ease = Linear
	}
	return tr.From.Lerp(tr.To, ease(p))
}

// Done reports whether the transition has reached To at now.
func (tr Transition) Done(now time.Time) bool {
	return tr.Progress(now) >= 1
}
