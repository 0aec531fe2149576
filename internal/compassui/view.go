package compassui

import (
	"fmt"
	"image/color"
	"math"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/wesen/sanpo/internal/heading"
	"github.com/wesen/sanpo/internal/overlay"
	"github.com/wesen/sanpo/pkg/cellbuf"
	"github.com/wesen/sanpo/pkg/drawutil"
	"github.com/wesen/sanpo/pkg/perimeter"
	"github.com/wesen/sanpo/pkg/tealayout"
)

// cellSink draws overlay markers into a cell buffer. Marker colors are
// resolved through canvasStyles, so the color argument is not needed.
type cellSink struct {
	buf *cellbuf.Buffer
}

func (s cellSink) DrawMarker(id overlay.Direction, p perimeter.Point, _ color.Color) {
	drawutil.DrawMarker(s.buf, p, markerGlyph, markerKey(id))
}

// RenderCanvas draws the outline and markers for a w×h cell canvas at
// now. Extra plots dots in the outline style before the markers go on
// top. It is shared by the TUI and the one-shot demo.
func RenderCanvas(ov *overlay.Overlay, w, h int, outline bool, now time.Time, extra ...func(*cellbuf.Canvas, cellbuf.StyleKey)) *cellbuf.Buffer {
	buf := cellbuf.New(w, h, styleBG)
	cv := cellbuf.NewCanvas(buf)
	if outline {
		drawutil.DrawOutline(cv, ov.Spec(), styleOutline)
	}
	for _, fn := range extra {
		fn(cv, styleOutline)
	}
	cv.Flush()
	ov.Draw(cellSink{buf: buf}, now)
	return buf
}

// Styles returns the render styles for buffers produced by RenderCanvas.
func Styles(ov *overlay.Overlay) map[cellbuf.StyleKey]lipgloss.Style {
	return canvasStyles(ov.Markers())
}

// readout formats the heading under the clock.
func (m Model) readout() string {
	if !m.Received {
		return "--°"
	}
	d := m.Reading.Degrees
	return fmt.Sprintf("%d° %s", int(math.Round(d))%360, heading.ShortCompass(d))
}

// View implements tea.Model.
func (m Model) View() tea.View {
	v := tea.NewView(m.render())
	v.AltScreen = true
	return v
}

// render composes all layers into the screen string.
func (m Model) render() string {
	if m.Width == 0 || m.Height == 0 {
		return ""
	}

	layout := m.layout()
	canvasRegion := layout.Get("canvas")
	footerRegion := layout.Get("footer")
	cv := canvasRegion.Rect

	var layers []*lipgloss.Layer
	layers = append(layers,
		tealayout.FillLayer(canvasRegion, bgStyle, "canvas-bg", 0),
		tealayout.FillLayer(footerRegion, footerStyle, "footer-bg", 0),
	)

	// Outline + markers (Z=1)
	if cv.Dx() > 0 && cv.Dy() > 0 {
		buf := RenderCanvas(m.overlay, cv.Dx(), cv.Dy(), m.Outline, m.opts.Now())
		layers = append(layers,
			lipgloss.NewLayer(buf.Render(Styles(m.overlay))).
				X(cv.Min.X).Y(cv.Min.Y).Z(1).ID("canvas"),
		)

		// Center clock + heading (Z=2)
		center := lipgloss.JoinVertical(lipgloss.Center,
			clockStyle.Render(m.Clock.Format("15:04")),
			readoutStyle.Render(m.readout()),
		)
		layers = append(layers, tealayout.CenteredLayer(center, canvasRegion, bgStyle, "clock", 2))
	}

	// Footer
	status := m.Status
	st := footerStyle
	if m.SrcErr != nil && status != "" {
		st = errorStyle
	}
	if status == "" && m.opts.Sub != nil {
		status = m.opts.Sub.Name()
	}
	ft := fmt.Sprintf(" %s  │  %s", st.Render(status), m.help.ShortHelpView(m.keys.ShortHelp()))
	if !footerRegion.Rect.Empty() {
		layers = append(layers, tealayout.FooterLayer(ft, m.Width, footerRegion.Rect.Min.Y, footerStyle))
	}

	// Help modal
	if m.ShowHelp {
		layers = append(layers, tealayout.ModalLayer(m.help.FullHelpView(m.keys.FullHelp()), m.Width, m.Height, modalStyle))
	}

	comp := lipgloss.NewCompositor(layers...)
	canvas := lipgloss.NewCanvas(m.Width, m.Height)
	canvas.Compose(comp)
	return canvas.Render()
}
