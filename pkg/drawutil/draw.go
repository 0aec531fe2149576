package drawutil

import (
	"math"

	"github.com/wesen/sanpo/pkg/cellbuf"
	"github.com/wesen/sanpo/pkg/perimeter"
)

// DotLine plots a Bresenham line of dots. Coordinates are in dots.
func DotLine(c *cellbuf.Canvas, x0, y0, x1, y1 int, style cellbuf.StyleKey) {
	for _, p := range Line(x0, y0, x1, y1) {
		c.Plot(p.X, p.Y, style)
	}
}

// DashedDotLine plots a dot line skipping every third dot.
func DashedDotLine(c *cellbuf.Canvas, x0, y0, x1, y1 int, style cellbuf.StyleKey) {
	for i, p := range Line(x0, y0, x1, y1) {
		if i%3 != 2 {
			c.Plot(p.X, p.Y, style)
		}
	}
}

// Polyline joins consecutive points with dot lines. When closed is set
// the last point is joined back to the first.
func Polyline(c *cellbuf.Canvas, pts []perimeter.Point, closed bool, style cellbuf.StyleKey) {
	if len(pts) == 0 {
		return
	}
	if len(pts) == 1 {
		c.PlotF(pts[0].X, pts[0].Y, style)
		return
	}
	n := len(pts) - 1
	if closed {
		n = len(pts)
	}
	for i := 0; i < n; i++ {
		a, b := dot(pts[i]), dot(pts[(i+1)%len(pts)])
		DotLine(c, a[0], a[1], b[0], b[1], style)
	}
}

// DrawOutline plots the border of spec. spec is in dot coordinates.
func DrawOutline(c *cellbuf.Canvas, spec perimeter.RoundedRect, style cellbuf.StyleKey) {
	Polyline(c, perimeter.Outline(spec, outlineSamples(spec)), true, style)
}

// outlineSamples picks roughly one sample per dot of border length.
func outlineSamples(spec perimeter.RoundedRect) int {
	rect, _ := spec.Effective()
	n := int(2 * (rect.Width + rect.Height))
	return min(max(n, 8), 8192)
}

// DrawMarker writes glyph over the cell that contains the dot point p
// and returns that cell. ok is false when p falls outside the buffer.
func DrawMarker(buf *cellbuf.Buffer, p perimeter.Point, glyph rune, style cellbuf.StyleKey) (x, y int, ok bool) {
	if math.IsNaN(p.X) || math.IsNaN(p.Y) {
		return 0, 0, false
	}
	x, y = cellbuf.CellOf(p.X, p.Y)
	if !buf.InBounds(x, y) {
		return x, y, false
	}
	buf.Set(x, y, glyph, style)
	return x, y, true
}

func dot(p perimeter.Point) [2]int {
	return [2]int{int(math.Floor(p.X)), int(math.Floor(p.Y))}
}
