package tealayout

import (
	"strings"

	"charm.land/lipgloss/v2"
)

// FooterLayer creates a Layer for a footer row at y.
func FooterLayer(content string, width, y int, style lipgloss.Style) *lipgloss.Layer {
	rendered := style.Width(width).MaxHeight(1).Render(content)
	return lipgloss.NewLayer(rendered).X(0).Y(y).Z(1).ID("footer")
}

// CenteredLayer renders content and centers it inside r.
func CenteredLayer(content string, r Region, style lipgloss.Style, id string, z int) *lipgloss.Layer {
	rendered := style.Render(content)
	rect := CenterIn(r.Rect, lipgloss.Width(rendered), lipgloss.Height(rendered))
	return lipgloss.NewLayer(rendered).X(rect.Min.X).Y(rect.Min.Y).Z(z).ID(id)
}

// ModalLayer creates a centered high-Z overlay Layer.
// The content is rendered inside boxStyle, then centered on the terminal.
func ModalLayer(content string, termW, termH int, boxStyle lipgloss.Style) *lipgloss.Layer {
	rendered := boxStyle.Render(content)
	w := lipgloss.Width(rendered)
	h := lipgloss.Height(rendered)
	cx := max((termW-w)/2, 0)
	cy := max((termH-h)/2, 0)
	return lipgloss.NewLayer(rendered).X(cx).Y(cy).Z(100).ID("modal")
}

// FillLayer creates a Layer filled with style over a region.
func FillLayer(r Region, style lipgloss.Style, id string, z int) *lipgloss.Layer {
	w := r.Rect.Dx()
	h := r.Rect.Dy()
	if w <= 0 || h <= 0 {
		return lipgloss.NewLayer("").X(r.Rect.Min.X).Y(r.Rect.Min.Y).Z(z).ID(id)
	}
	lines := make([]string, h)
	for i := range lines {
		lines[i] = strings.Repeat(" ", w)
	}
	rendered := style.Render(strings.Join(lines, "\n"))
	return lipgloss.NewLayer(rendered).X(r.Rect.Min.X).Y(r.Rect.Min.Y).Z(z).ID(id)
}
