package compassui

import (
	"errors"
	"time"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"github.com/rs/zerolog/log"

	"github.com/wesen/sanpo/internal/heading"
)

// Update implements tea.Model. It is the only place overlay state
// changes.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		cv := m.layout().Get("canvas").Rect
		m.overlay.Resize(CanvasSpec(cv.Dx(), cv.Dy(), m.opts))
		return m, nil

	case HeadingMsg:
		m.overlay.SetHeading(msg.Degrees, m.opts.Now())
		m.Reading = msg.Reading
		m.Received = true
		m.Status = ""
		frames := m.startFrames()
		return m, tea.Batch(waitHeading(m.opts.Sub), frames)

	case SourceErrMsg:
		m.SrcErr = msg.Err
		if errors.Is(msg.Err, heading.ErrClosed) {
			m.Status = "heading source stopped"
		} else {
			m.Status = "heading unavailable: " + msg.Err.Error()
		}
		log.Warn().Str("module", "compassui").Err(msg.Err).Msg("heading source ended")
		return m, nil

	case FrameMsg:
		if m.overlay.Animating(m.opts.Now()) {
			return m, frameTick(m.opts.FrameInterval)
		}
		m.Ticking = false
		return m, nil

	case ClockMsg:
		m.Clock = time.Time(msg)
		return m, clockTick()

	case tea.KeyPressMsg:
		return m.handleKeys(msg)
	}

	return m, nil
}

// startFrames arms the frame ticker unless it is already running.
func (m *Model) startFrames() tea.Cmd {
	if m.Ticking {
		return nil
	}
	m.Ticking = true
	return frameTick(m.opts.FrameInterval)
}

func (m Model) handleKeys(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Outline):
		m.Outline = !m.Outline
	case key.Matches(msg, m.keys.Help):
		m.ShowHelp = !m.ShowHelp
		m.help.ShowAll = m.ShowHelp
	case key.Matches(msg, m.keys.Left):
		m.opts.Manual.Nudge(-m.opts.Step)
	case key.Matches(msg, m.keys.Right):
		m.opts.Manual.Nudge(m.opts.Step)
	}
	return m, nil
}
