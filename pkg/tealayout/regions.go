// Package tealayout computes terminal regions and builds the chrome
// layers (fills, footer, centered text, modal) for a Bubbletea v2 +
// Lipgloss v2 view.
package tealayout

import "image"

// Region is a named rectangular area of the terminal.
type Region struct {
	Name string
	Rect image.Rectangle
}

// Layout holds the computed regions for a given terminal size.
type Layout struct {
	TermW, TermH int
	Regions      map[string]Region
}

// Get returns the region with the given name, or a zero Region.
func (l Layout) Get(name string) Region {
	return l.Regions[name]
}

// LayoutBuilder carves fixed rows off the bottom of the terminal and
// hands the rest to one remaining region.
type LayoutBuilder struct {
	termW, termH int
	bottom       int // rows consumed from the bottom
	margin       int
	regions      []Region
}

// NewLayoutBuilder creates a builder for the given terminal size.
func NewLayoutBuilder(termW, termH int) *LayoutBuilder {
	return &LayoutBuilder{termW: max(termW, 0), termH: max(termH, 0)}
}

// BottomFixed reserves rows from the bottom. Returns the builder for chaining.
func (b *LayoutBuilder) BottomFixed(name string, height int) *LayoutBuilder {
	y := b.termH - b.bottom - height
	b.regions = append(b.regions, Region{
		Name: name,
		Rect: image.Rect(0, y, b.termW, y+height),
	})
	b.bottom += height
	return b
}

// Margin shrinks the remaining region by n cells on every side.
func (b *LayoutBuilder) Margin(n int) *LayoutBuilder {
	b.margin = max(n, 0)
	return b
}

// Remaining assigns whatever rectangle is left after fixed allocations
// and margins. A degenerate remainder becomes an empty rectangle.
func (b *LayoutBuilder) Remaining(name string) *LayoutBuilder {
	var rect image.Rectangle
	if h := b.termH - b.bottom; h > 0 && b.termW > 0 {
		rect = image.Rect(0, 0, b.termW, h).Inset(b.margin)
	}
	b.regions = append(b.regions, Region{Name: name, Rect: rect})
	return b
}

// Build computes and returns the final Layout.
func (b *LayoutBuilder) Build() Layout {
	l := Layout{
		TermW:   b.termW,
		TermH:   b.termH,
		Regions: make(map[string]Region, len(b.regions)),
	}
	for _, r := range b.regions {
		// Regions pushed off-screen or inverted collapse to empty.
		if r.Rect.Min.X >= r.Rect.Max.X || r.Rect.Min.Y >= r.Rect.Max.Y || r.Rect.Min.Y < 0 {
			r.Rect = image.Rectangle{}
		}
		l.Regions[r.Name] = r
	}
	return l
}

// CenterIn returns a w×h rectangle centered in outer, clipped to it.
func CenterIn(outer image.Rectangle, w, h int) image.Rectangle {
	x := outer.Min.X + (outer.Dx()-w)/2
	y := outer.Min.Y + (outer.Dy()-h)/2
	return image.Rect(x, y, x+w, y+h).Intersect(outer)
}
