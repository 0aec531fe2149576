package compassui

import (
	"context"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/wesen/sanpo/internal/heading"
)

// HeadingMsg carries a reading taken from the subscription.
type HeadingMsg struct {
	heading.Reading
}

// SourceErrMsg reports that the heading source stopped.
type SourceErrMsg struct {
	Err error
}

// FrameMsg asks for a redraw while markers are moving.
type FrameMsg time.Time

// ClockMsg updates the center clock.
type ClockMsg time.Time

// waitHeading blocks on the subscription for the next reading.
func waitHeading(sub *heading.Subscription) tea.Cmd {
	if sub == nil {
		return nil
	}
	return func() tea.Msg {
		r, err := sub.Next(context.Background())
		if err != nil {
			return SourceErrMsg{Err: err}
		}
		return HeadingMsg{Reading: r}
	}
}

func frameTick(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg { return FrameMsg(t) })
}

// clockTick fires on the next wall-clock second.
func clockTick() tea.Cmd {
	return tea.Every(time.Second, func(t time.Time) tea.Msg { return ClockMsg(t) })
}
