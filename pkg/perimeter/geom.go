// Package perimeter maps compass angles onto the border of a rounded
// rectangle.
//
// Coordinates are screen coordinates: x grows to the right, y grows
// downward. Angles are compass degrees: 0 is up, 90 is right, and they
// increase clockwise.
package perimeter

import "math"

// Point is a 2D point or vector.
type Point struct {
	X, Y float64
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y float64) Point { return Point{X: x, Y: y} }

// Add returns p+q.
func (p Point) Add(q Point) Point { return Point{X: p.X + q.X, Y: p.Y + q.Y} }

// Sub returns p-q.
func (p Point) Sub(q Point) Point { return Point{X: p.X - q.X, Y: p.Y - q.Y} }

// Mul returns p scaled by s.
func (p Point) Mul(s float64) Point { return Point{X: p.X * s, Y: p.Y * s} }

// Distance returns the Euclidean distance between p and q.
func (p Point) Distance(q Point) float64 { return math.Hypot(p.X-q.X, p.Y-q.Y) }

// Lerp interpolates linearly from p (t=0) to q (t=1).
func (p Point) Lerp(q Point, t float64) Point {
	return Point{X: p.X + (q.X-p.X)*t, Y: p.Y + (q.Y-p.Y)*t}
}

// Rect is an axis-aligned rectangle.
type Rect struct {
	MinX, MinY    float64
	Width, Height float64
}

// R is shorthand for Rect{MinX: x, MinY: y, Width: w, Height: h}.
func R(x, y, w, h float64) Rect { return Rect{MinX: x, MinY: y, Width: w, Height: h} }

func (r Rect) MaxX() float64 { return r.MinX + r.Width }
func (r Rect) MaxY() float64 { return r.MinY + r.Height }
func (r Rect) MidX() float64 { return r.MinX + r.Width/2 }
func (r Rect) MidY() float64 { return r.MinY + r.Height/2 }

// Center returns the midpoint of the rectangle.
func (r Rect) Center() Point { return Point{X: r.MidX(), Y: r.MidY()} }

// Inset shrinks the rectangle by d on all four sides, keeping its
// center. Width and height never go below zero.
func (r Rect) Inset(d float64) Rect {
	w := r.Width - 2*d
	h := r.Height - 2*d
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	c := r.Center()
	return Rect{MinX: c.X - w/2, MinY: c.Y - h/2, Width: w, Height: h}
}

// Normalize maps an angle in degrees to [0, 360). NaN and infinities
// map to 0.
func Normalize(deg float64) float64 {
	if math.IsNaN(deg) || math.IsInf(deg, 0) {
		return 0
	}
	a := math.Mod(math.Mod(deg, 360)+360, 360)
	if a >= 360 {
		// -tiny + 360 rounds up to 360.
		a = 0
	}
	return a
}

// Signed maps an angle in degrees to (-180, 180].
func Signed(deg float64) float64 {
	a := Normalize(deg)
	if a > 180 {
		a -= 360
	}
	return a
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
