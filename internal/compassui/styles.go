package compassui

import (
	"image/color"

	"charm.land/lipgloss/v2"

	"github.com/wesen/sanpo/internal/overlay"
	"github.com/wesen/sanpo/pkg/cellbuf"
)

// c is shorthand for lipgloss.Color.
func c(hex string) color.Color { return lipgloss.Color(hex) }

// Palette: black screen, faint white outline (the outline is drawn at
// 10% white, which is #1a1a1a on black).
var (
	colorBG      = c("#000000")
	colorOutline = c("#1a1a1a")
	colorClock   = c("#ffffff")
	colorReadout = c("#8e8e93")
	colorFooter  = c("#636366")
	colorError   = c("#ff453a")
)

// cellbuf style keys for the canvas layer. Marker keys follow
// styleMarker in Direction order.
const (
	styleBG      cellbuf.StyleKey = 0
	styleOutline cellbuf.StyleKey = 1
	styleMarker  cellbuf.StyleKey = 2
)

const markerGlyph = '●'

func markerKey(d overlay.Direction) cellbuf.StyleKey {
	return styleMarker + cellbuf.StyleKey(d)
}

// canvasStyles maps the canvas style keys to lipgloss styles, taking
// marker colors from the overlay.
func canvasStyles(markers []overlay.Marker) map[cellbuf.StyleKey]lipgloss.Style {
	base := lipgloss.NewStyle().Background(colorBG)
	styles := map[cellbuf.StyleKey]lipgloss.Style{
		styleBG:      base,
		styleOutline: base.Foreground(colorOutline),
	}
	for _, mk := range markers {
		styles[markerKey(mk.ID)] = base.Foreground(mk.Color).Bold(true)
	}
	return styles
}

var (
	bgStyle = lipgloss.NewStyle().Background(colorBG)

	clockStyle = lipgloss.NewStyle().
		Foreground(colorClock).
		Background(colorBG).
		Bold(true)

	readoutStyle = lipgloss.NewStyle().
		Foreground(colorReadout).
		Background(colorBG)

	footerStyle = lipgloss.NewStyle().
		Foreground(colorFooter).
		Background(colorBG)

	errorStyle = lipgloss.NewStyle().
		Foreground(colorError).
		Background(colorBG)

	modalStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorReadout).
		Background(colorBG).
		Padding(1, 2)
)
