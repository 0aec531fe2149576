// Package drawutil draws onto a cellbuf braille canvas: Bresenham dot
// lines, polylines, the rounded-rect outline and cell-sized markers.
package drawutil

import (
	"image"
	"iter"
)

// Line yields the step index and integer point of every dot on the line
// from (x0,y0) to (x1,y1), both endpoints included, without allocating.
func Line(x0, y0, x1, y1 int) iter.Seq2[int, image.Point] {
	return func(yield func(int, image.Point) bool) {
		dx, dy := abs(x1-x0), -abs(y1-y0)
		sx, sy := sign(x1-x0), sign(y1-y0)
		e := dx + dy
		x, y := x0, y0
		for i := 0; ; i++ {
			if !yield(i, image.Pt(x, y)) || (x == x1 && y == y1) {
				return
			}
			e2 := 2 * e
			if e2 >= dy {
				e += dy
				x += sx
			}
			if e2 <= dx {
				e += dx
				y += sy
			}
		}
	}
}

// Bresenham collects Line into a slice.
func Bresenham(x0, y0, x1, y1 int) []image.Point {
	pts := make([]image.Point, 0, max(abs(x1-x0), abs(y1-y0))+1)
	for _, p := range Line(x0, y0, x1, y1) {
		pts = append(pts, p)
	}
	return pts
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func sign(x int) int {
	switch {
	case x < 0:
		return -1
	case x > 0:
		return 1
	}
	return 0
}
