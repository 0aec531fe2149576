package heading

import (
	"context"
	"time"

	"github.com/wesen/sanpo/pkg/perimeter"
)

// Manual is a source driven from the keyboard. Nudge may be called from
// any goroutine; Run applies the nudges in order.
type Manual struct {
	initial float64
	nudges  chan float64
}

// NewManual creates a manual source that starts at initial degrees.
func NewManual(initial float64) *Manual {
	return &Manual{
		initial: initial,
		nudges:  make(chan float64, 16),
	}
}

// Name implements Named.
func (m *Manual) Name() string { return "manual" }

// Nudge turns the heading by delta degrees. Nudges that arrive faster
// than Run can apply them are dropped.
func (m *Manual) Nudge(delta float64) {
	select {
	case m.nudges <- delta:
	default:
		l := logger()
		l.Warn().Float64("delta", delta).Msg("manual nudge dropped")
	}
}

// Run implements Source.
func (m *Manual) Run(ctx context.Context, emit func(Reading)) error {
	h := perimeter.Normalize(m.initial)
	emit(NewReading(h, time.Now()))
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case d := <-m.nudges:
			h = perimeter.Normalize(h + d)
			emit(NewReading(h, time.Now()))
		}
	}
}

// Static emits a single fixed heading and then idles.
type Static struct {
	Degrees float64
}

// Name implements Named.
func (s Static) Name() string { return "static" }

// Run implements Source.
func (s Static) Run(ctx context.Context, emit func(Reading)) error {
	emit(NewReading(s.Degrees, time.Now()))
	<-ctx.Done()
	return ctx.Err()
}

// None never delivers a heading, like a device without a compass or an
// app without location permission.
type None struct{}

// Name implements Named.
func (None) Name() string { return "none" }

// Run implements Source.
func (None) Run(ctx context.Context, _ func(Reading)) error {
	<-ctx.Done()
	return ctx.Err()
}
