// Package overlay keeps the four compass markers that travel around the
// screen border and animates them as the heading changes.
//
// An Overlay is not safe for concurrent use; every call is expected to
// come from the one goroutine that owns the UI.
package overlay

import (
	"image/color"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/wesen/sanpo/pkg/perimeter"
)

// DefaultDuration is how long a marker takes to reach a new target.
const DefaultDuration = 150 * time.Millisecond

// Direction identifies a cardinal marker.
type Direction int

const (
	North Direction = iota
	East
	South
	West
)

// Directions lists the markers in drawing order.
var Directions = [...]Direction{North, East, South, West}

// Base returns the compass angle of the direction at heading 0.
func (d Direction) Base() float64 { return float64(d) * 90 }

// Label returns the one-letter label ("N", "E", ...).
func (d Direction) Label() string {
	switch d {
	case North:
		return "N"
	case East:
		return "E"
	case South:
		return "S"
	case West:
		return "W"
	}
	return "?"
}

func (d Direction) String() string {
	switch d {
	case North:
		return "North"
	case East:
		return "East"
	case South:
		return "South"
	case West:
		return "West"
	}
	return "Direction(?)"
}

// Default marker colors: red north, white for the rest.
var (
	ColorNorth = color.RGBA{R: 0xff, G: 0x3b, B: 0x30, A: 0xff}
	ColorOther = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
)

// Marker is the state of one cardinal marker.
type Marker struct {
	ID    Direction
	Color color.Color
	// Angle is the raw target angle, Base() minus the heading.
	Angle float64
	// Current is the point computed for the latest heading, Previous the
	// one computed for the heading before it.
	Current, Previous perimeter.Point

	anim Transition
}

// Sink receives draw instructions.
type Sink interface {
	DrawMarker(id Direction, p perimeter.Point, c color.Color)
}

// Overlay owns the markers for one rounded rectangle.
type Overlay struct {
	spec     perimeter.RoundedRect
	duration time.Duration
	ease     Easing
	markers  [len(Directions)]Marker

	heading, prevHeading float64
	hasHeading           bool
	updates              int
}

// Option configures an Overlay.
type Option func(*Overlay)

// WithDuration sets the transition duration.
func WithDuration(d time.Duration) Option {
	return func(o *Overlay) { o.duration = d }
}

// WithEasing sets the transition easing.
func WithEasing(e Easing) Option {
	return func(o *Overlay) {
		if e != nil {
			o.ease = e
		}
	}
}

// WithColor overrides the color of one marker.
func WithColor(id Direction, c color.Color) Option {
	return func(o *Overlay) { o.markers[id].Color = c }
}

func logger() *zerolog.Logger {
	l := log.With().Str("module", "overlay").Logger()
	return &l
}

// New creates an overlay with all markers placed for heading 0.
func New(spec perimeter.RoundedRect, opts ...Option) *Overlay {
	o := &Overlay{spec: spec, duration: DefaultDuration, ease: Linear}
	for _, id := range Directions {
		c := color.Color(ColorOther)
		if id == North {
			c = ColorNorth
		}
		o.markers[id] = Marker{ID: id, Color: c}
	}
	for _, opt := range opts {
		opt(o)
	}
	o.place(spec)
	return o
}

// place puts every marker on its target for spec without animating.
func (o *Overlay) place(spec perimeter.RoundedRect) {
	o.spec = spec
	for i := range o.markers {
		m := &o.markers[i]
		m.Angle = m.ID.Base() - o.heading
		m.Current = perimeter.PointOnPerimeter(spec, m.Angle)
		m.Previous = m.Current
		m.anim = NewTransition(m.Current, m.Current, time.Time{}, 0, o.ease)
	}
}

// Spec returns the rounded rectangle the markers travel on.
func (o *Overlay) Spec() perimeter.RoundedRect { return o.spec }

// Duration returns the transition duration.
func (o *Overlay) Duration() time.Duration { return o.duration }

// SetHeading applies a new heading at time now. Every marker gets a new
// target and starts exactly one transition toward it from wherever it
// is drawn at now; a transition still in flight is superseded.
func (o *Overlay) SetHeading(h float64, now time.Time) {
	for i := range o.markers {
		m := &o.markers[i]
		from := m.anim.At(now)
		m.Angle = m.ID.Base() - h
		m.Previous = m.Current
		m.Current = perimeter.PointOnPerimeter(o.spec, m.Angle)
		m.anim = NewTransition(from, m.Current, now, o.duration, o.ease)
	}
	o.prevHeading, o.heading = o.heading, h
	o.hasHeading = true
	o.updates++

	l := logger()
	l.Debug().Float64("heading", h).Int("update", o.updates).Msg("heading applied")
}

// Resize moves the markers onto a new rectangle immediately, keeping
// the current heading.
func (o *Overlay) Resize(spec perimeter.RoundedRect) {
	o.place(spec)
	rect, r := spec.Effective()
	l := logger()
	l.Debug().Float64("w", rect.Width).Float64("h", rect.Height).Float64("radius", r).Msg("overlay resized")
}

// Heading returns the last applied heading and whether one was ever
// applied. Without one the markers sit at their heading-0 positions.
func (o *Overlay) Heading() (float64, bool) { return o.heading, o.hasHeading }

// PreviousHeading returns the heading applied before the current one.
func (o *Overlay) PreviousHeading() float64 { return o.prevHeading }

// Updates returns how many headings have been applied.
func (o *Overlay) Updates() int { return o.updates }

// Marker returns a copy of the marker's state.
func (o *Overlay) Marker(id Direction) Marker { return o.markers[id] }

// Markers returns copies of all markers in drawing order.
func (o *Overlay) Markers() []Marker {
	out := make([]Marker, len(o.markers))
	copy(out, o.markers[:])
	return out
}

// Transition returns the marker's current transition.
func (o *Overlay) Transition(id Direction) Transition { return o.markers[id].anim }

// Position returns where the marker is drawn at now.
func (o *Overlay) Position(id Direction, now time.Time) perimeter.Point {
	return o.markers[id].anim.At(now)
}

// Animating reports whether any marker is still moving at now.
func (o *Overlay) Animating(now time.Time) bool {
	for i := range o.markers {
		if !o.markers[i].anim.Done(now) {
			return true
		}
	}
	return false
}

// Draw sends one instruction per marker to sink.
func (o *Overlay) Draw(sink Sink, now time.Time) {
	for i := range o.markers {
		m := &o.markers[i]
		sink.DrawMarker(m.ID, m.anim.At(now), m.Color)
	}
}
