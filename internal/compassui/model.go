package compassui

import (
	"time"

	"charm.land/bubbles/v2/help"
	tea "charm.land/bubbletea/v2"

	"github.com/wesen/sanpo/internal/heading"
	"github.com/wesen/sanpo/internal/overlay"
	"github.com/wesen/sanpo/pkg/cellbuf"
	"github.com/wesen/sanpo/pkg/perimeter"
	"github.com/wesen/sanpo/pkg/tealayout"
)

// Options configures the compass UI. Lengths are in braille dots.
type Options struct {
	Padding       float64
	CornerRadius  float64
	Duration      time.Duration
	Easing        overlay.Easing
	FrameInterval time.Duration
	Outline       bool

	// Sub feeds headings into the UI. The caller owns it and closes it
	// after the program exits.
	Sub *heading.Subscription
	// Manual, when set, receives ←/→ nudges of Step degrees.
	Manual *heading.Manual
	Step   float64

	// Now is the clock used for animation. Defaults to time.Now.
	Now func() time.Time
}

// Model is the compass application state.
type Model struct {
	Width, Height int

	opts    Options
	overlay *overlay.Overlay
	keys    keyMap
	help    help.Model

	ShowHelp bool
	Outline  bool
	Ticking  bool

	Reading  heading.Reading
	Received bool
	Status   string
	SrcErr   error
	Clock    time.Time
}

// NewModel creates the model. The overlay starts on an empty canvas and
// is resized on the first WindowSizeMsg.
func NewModel(opts Options) Model {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.FrameInterval <= 0 {
		opts.FrameInterval = time.Second / 30
	}
	if opts.Step == 0 {
		opts.Step = 5
	}
	ov := overlay.New(perimeter.RoundedRect{},
		overlay.WithDuration(opts.Duration),
		overlay.WithEasing(opts.Easing),
	)
	status := "waiting for heading"
	if opts.Sub != nil {
		status = "waiting for " + opts.Sub.Name()
	}
	return Model{
		opts:    opts,
		overlay: ov,
		keys:    defaultKeys(opts.Manual != nil),
		help:    help.New(),
		Outline: opts.Outline,
		Status:  status,
		Clock:   opts.Now(),
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(waitHeading(m.opts.Sub), clockTick())
}

// Overlay returns the marker overlay.
func (m Model) Overlay() *overlay.Overlay { return m.overlay }

// layout splits the terminal into the canvas and the footer row.
func (m Model) layout() tealayout.Layout {
	return tealayout.NewLayoutBuilder(m.Width, m.Height).
		BottomFixed("footer", 1).
		Remaining("canvas").
		Build()
}

// CanvasSpec returns the rounded rectangle for a canvas of w×h cells in
// dot coordinates. Dots run 0..2w-1 and 0..4h-1 so that every boundary
// point falls inside a cell.
func CanvasSpec(w, h int, opts Options) perimeter.RoundedRect {
	dw := float64(max(w*cellbuf.DotsPerCellX-1, 0))
	dh := float64(max(h*cellbuf.DotsPerCellY-1, 0))
	return perimeter.RoundedRect{
		Rect:         perimeter.R(0, 0, dw, dh),
		CornerRadius: opts.CornerRadius,
		Padding:      opts.Padding,
	}
}
