package overlay

import (
	"image/color"
	"math"
	"testing"
	"time"

	"github.com/wesen/sanpo/pkg/perimeter"
)

func phone() perimeter.RoundedRect {
	return perimeter.RoundedRect{Rect: perimeter.R(0, 0, 300, 600), CornerRadius: 52}
}

var t0 = time.Date(2025, 8, 26, 9, 41, 0, 0, time.UTC)

func near(p, q perimeter.Point) bool { return p.Distance(q) < 1e-6 }

type recordingSink struct {
	calls []sinkCall
}

type sinkCall struct {
	id Direction
	p  perimeter.Point
	c  color.Color
}

func (s *recordingSink) DrawMarker(id Direction, p perimeter.Point, c color.Color) {
	s.calls = append(s.calls, sinkCall{id, p, c})
}

// ── Initial state ──

func TestNewPlacesAtHeadingZero(t *testing.T) {
	o := New(phone())
	want := map[Direction]perimeter.Point{
		North: perimeter.Pt(150, 0),
		East:  perimeter.Pt(300, 300),
		South: perimeter.Pt(150, 600),
		West:  perimeter.Pt(0, 300),
	}
	for id, p := range want {
		m := o.Marker(id)
		if !near(m.Current, p) || !near(m.Previous, p) {
			t.Errorf("%v: current %+v previous %+v, want %+v", id, m.Current, m.Previous, p)
		}
		if !near(o.Position(id, t0), p) {
			t.Errorf("%v: drawn at %+v, want %+v", id, o.Position(id, t0), p)
		}
	}
	if _, ok := o.Heading(); ok {
		t.Error("new overlay should report no heading")
	}
	if o.Animating(t0) {
		t.Error("new overlay should not be animating")
	}
}

func TestDefaultColors(t *testing.T) {
	o := New(phone())
	if o.Marker(North).Color != color.Color(ColorNorth) {
		t.Errorf("north color = %v", o.Marker(North).Color)
	}
	for _, id := range []Direction{East, South, West} {
		if o.Marker(id).Color != color.Color(ColorOther) {
			t.Errorf("%v color = %v", id, o.Marker(id).Color)
		}
	}
	blue := color.RGBA{B: 0xff, A: 0xff}
	o = New(phone(), WithColor(South, blue))
	if o.Marker(South).Color != color.Color(blue) {
		t.Errorf("WithColor not applied: %v", o.Marker(South).Color)
	}
}

// ── Heading updates ──

func TestSetHeadingTargets(t *testing.T) {
	o := New(phone())
	o.SetHeading(90, t0)

	// Turning to face east puts north on the left edge.
	if got := o.Marker(North).Current; !near(got, perimeter.Pt(0, 300)) {
		t.Errorf("north target %+v, want left midpoint", got)
	}
	if got := o.Marker(East).Current; !near(got, perimeter.Pt(150, 0)) {
		t.Errorf("east target %+v, want top midpoint", got)
	}
	if got := o.Marker(North).Previous; !near(got, perimeter.Pt(150, 0)) {
		t.Errorf("north previous %+v, want top midpoint", got)
	}
	if h, ok := o.Heading(); !ok || h != 90 {
		t.Errorf("Heading = %v,%v; want 90,true", h, ok)
	}
}

func TestHeadingWraparound(t *testing.T) {
	o := New(phone())
	var angles []float64
	var points []perimeter.Point
	for i, h := range []float64{0, 10, 350} {
		o.SetHeading(h, t0.Add(time.Duration(i)*time.Second))
		angles = append(angles, perimeter.Signed(o.Marker(North).Angle))
		points = append(points, o.Marker(North).Current)
	}
	want := []float64{0, -10, 10}
	for i := range want {
		if math.Abs(angles[i]-want[i]) > 1e-9 {
			t.Errorf("tick %d: north angle %v, want %v", i, angles[i], want[i])
		}
	}

	// 10 → 350 is a 20° turn: the marker slides along the top edge.
	tr := o.Transition(North)
	if !near(tr.From, points[1]) || !near(tr.To, points[2]) {
		t.Fatalf("transition %+v → %+v, want %+v → %+v", tr.From, tr.To, points[1], points[2])
	}
	mid := tr.At(t0.Add(2*time.Second + DefaultDuration/2))
	if math.Abs(mid.Y) > 1e-9 {
		t.Errorf("midpoint left the top edge: %+v", mid)
	}
	if d := tr.From.Distance(tr.To); d > 100 {
		t.Errorf("transition spans %v, expected a short hop", d)
	}
}

func TestOneTransitionPerUpdate(t *testing.T) {
	o := New(phone())
	for i := 1; i <= 5; i++ {
		now := t0.Add(time.Duration(i) * time.Second)
		o.SetHeading(float64(i*30), now)
		for _, id := range Directions {
			tr := o.Transition(id)
			if !tr.Start.Equal(now) {
				t.Fatalf("update %d %v: transition started at %v, want %v", i, id, tr.Start, now)
			}
			if !near(tr.To, o.Marker(id).Current) {
				t.Fatalf("update %d %v: transition heads to %+v, want %+v", i, id, tr.To, o.Marker(id).Current)
			}
		}
	}
	if o.Updates() != 5 {
		t.Errorf("Updates = %d, want 5", o.Updates())
	}
}

func TestTransitionTiming(t *testing.T) {
	o := New(phone())
	o.SetHeading(90, t0)

	start := perimeter.Pt(150, 0)
	end := perimeter.Pt(0, 300)
	if got := o.Position(North, t0); !near(got, start) {
		t.Errorf("at start: %+v, want %+v", got, start)
	}
	half := o.Position(North, t0.Add(75*time.Millisecond))
	if !near(half, start.Lerp(end, 0.5)) {
		t.Errorf("halfway: %+v, want %+v (straight line, not along the border)", half, start.Lerp(end, 0.5))
	}
	if !o.Animating(t0.Add(100 * time.Millisecond)) {
		t.Error("should still be animating at 100ms")
	}
	if got := o.Position(North, t0.Add(150*time.Millisecond)); !near(got, end) {
		t.Errorf("at end: %+v, want %+v", got, end)
	}
	if o.Animating(t0.Add(150 * time.Millisecond)) {
		t.Error("should be done at 150ms")
	}
}

func TestSupersedeStartsFromDrawnPosition(t *testing.T) {
	o := New(phone())
	o.SetHeading(90, t0)
	mid := t0.Add(75 * time.Millisecond)
	drawn := o.Position(North, mid)

	o.SetHeading(180, mid)
	tr := o.Transition(North)
	if !near(tr.From, drawn) {
		t.Errorf("new transition starts at %+v, want drawn position %+v", tr.From, drawn)
	}
	// Previous is the last computed target, not the drawn position.
	if got := o.Marker(North).Previous; !near(got, perimeter.Pt(0, 300)) {
		t.Errorf("previous = %+v, want last target (0,300)", got)
	}
	if got := o.Marker(North).Current; !near(got, perimeter.Pt(150, 600)) {
		t.Errorf("current = %+v, want bottom midpoint", got)
	}
	if o.PreviousHeading() != 90 {
		t.Errorf("PreviousHeading = %v, want 90", o.PreviousHeading())
	}
}

func TestWithDurationAndEasing(t *testing.T) {
	o := New(phone(), WithDuration(time.Second), WithEasing(EaseInOut))
	o.SetHeading(180, t0)
	start, end := perimeter.Pt(150, 0), perimeter.Pt(150, 600)
	q := o.Position(North, t0.Add(250*time.Millisecond))
	want := start.Lerp(end, EaseInOut(0.25))
	if !near(q, want) {
		t.Errorf("quarter: %+v, want %+v", q, want)
	}
	if o.Duration() != time.Second {
		t.Errorf("Duration = %v", o.Duration())
	}
}

func TestZeroDurationJumps(t *testing.T) {
	o := New(phone(), WithDuration(0))
	o.SetHeading(90, t0)
	if o.Animating(t0) {
		t.Error("zero duration should never animate")
	}
	if got := o.Position(North, t0); !near(got, perimeter.Pt(0, 300)) {
		t.Errorf("got %+v, want (0,300)", got)
	}
}

// ── Resize / Draw ──

func TestResizeKeepsHeading(t *testing.T) {
	o := New(phone())
	o.SetHeading(90, t0)
	spec := perimeter.RoundedRect{Rect: perimeter.R(0, 0, 100, 50), CornerRadius: 5}
	o.Resize(spec)

	if o.Animating(t0) {
		t.Error("resize should not animate")
	}
	if got := o.Position(North, t0); !near(got, perimeter.Pt(0, 25)) {
		t.Errorf("north after resize: %+v, want (0,25)", got)
	}
	if o.Spec() != spec {
		t.Errorf("Spec not updated")
	}
}

func TestDraw(t *testing.T) {
	o := New(phone())
	sink := &recordingSink{}
	o.Draw(sink, t0)
	if len(sink.calls) != 4 {
		t.Fatalf("expected 4 draw calls, got %d", len(sink.calls))
	}
	for i, call := range sink.calls {
		if call.id != Directions[i] {
			t.Errorf("call %d: id %v, want %v", i, call.id, Directions[i])
		}
		if !near(call.p, o.Position(call.id, t0)) {
			t.Errorf("call %d: point %+v", i, call.p)
		}
	}
	if sink.calls[0].c != color.Color(ColorNorth) {
		t.Errorf("north drawn with %v", sink.calls[0].c)
	}
}

func TestDirectionLabels(t *testing.T) {
	tests := []struct {
		d           Direction
		label, name string
		base        float64
	}{
		{North, "N", "North", 0},
		{East, "E", "East", 90},
		{South, "S", "South", 180},
		{West, "W", "West", 270},
	}
	for _, tc := range tests {
		if tc.d.Label() != tc.label || tc.d.String() != tc.name || tc.d.Base() != tc.base {
			t.Errorf("%d: got %q %q %v", tc.d, tc.d.Label(), tc.d.String(), tc.d.Base())
		}
	}
}
