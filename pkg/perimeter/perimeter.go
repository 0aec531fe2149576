package perimeter

import "math"

// RoundedRect describes the border that markers travel on: Rect shrunk
// by Padding on every side, with corners of CornerRadius.
type RoundedRect struct {
	Rect         Rect
	CornerRadius float64
	Padding      float64
}

// Effective returns the padded rectangle and the corner radius that
// PointOnPerimeter actually uses. Negative padding and radius are
// treated as zero, and the radius is clamped to half the smaller side.
func (s RoundedRect) Effective() (Rect, float64) {
	rect := s.Rect.Inset(math.Max(s.Padding, 0))
	maxR := math.Min(rect.Width, rect.Height) / 2
	r := s.CornerRadius
	if math.IsNaN(r) {
		r = 0
	}
	return rect, clamp(r, 0, maxR)
}

// corner indexes, clockwise from the top-right.
const (
	topRight = iota
	bottomRight
	bottomLeft
	topLeft
)

// cornerCenter returns the arc center of corner c.
func cornerCenter(rect Rect, r float64, c int) Point {
	switch c {
	case topRight:
		return Pt(rect.MaxX()-r, rect.MinY+r)
	case bottomRight:
		return Pt(rect.MaxX()-r, rect.MaxY()-r)
	case bottomLeft:
		return Pt(rect.MinX+r, rect.MaxY()-r)
	default:
		return Pt(rect.MinX+r, rect.MinY+r)
	}
}

// cornerStart is the screen angle (radians, clockwise from +x) where
// the arc of corner c begins when walking the border clockwise. Each
// arc spans a quarter turn from there.
func cornerStart(c int) float64 {
	return -math.Pi/2 + float64(c)*math.Pi/2
}

// arcPoint returns the point at screen angle phi on the circle of
// radius r around center.
func arcPoint(center Point, r, phi float64) Point {
	return Pt(center.X+r*math.Cos(phi), center.Y+r*math.Sin(phi))
}

// sectors are indexed clockwise from the top: 0 top, 1 right,
// 2 bottom, 3 left. Sector s runs from the middle of corner s-1 to the
// middle of corner s, so each corner arc is shared by two sectors.
func leadingCorner(s int) int { return (s + 3) % 4 }
func trailingCorner(s int) int { return s }

// PointOnPerimeter returns the point on the rounded rectangle border
// for the compass angle angleDeg.
//
// The border is split into four 90° sectors centered on the edge
// midpoints. Inside a sector the angle advances linearly through half
// of the leading corner arc, the straight edge, and half of the
// trailing corner arc. The corner share of a sector is
// CornerRadius/halfDimension, which is the same share the two half
// arcs take of the edge's length.
func PointOnPerimeter(spec RoundedRect, angleDeg float64) Point {
	rect, r := spec.Effective()

	// Shift so that 315° (top-left seam) becomes 0, then split.
	shifted := Normalize(Normalize(angleDeg) + 45)
	s := int(shifted / 90)
	if s > 3 {
		s = 3
	}
	progress := clamp((shifted-float64(s)*90)/90, 0, 1)

	halfDim := rect.Width / 2
	if s == 1 || s == 3 {
		halfDim = rect.Height / 2
	}
	var frac float64
	if halfDim > 0 {
		frac = r / halfDim
	}
	half := frac / 2

	switch {
	case progress < half:
		// Second half of the leading corner: arc midpoint to tangent.
		c := leadingCorner(s)
		t := progress / half
		phi := cornerStart(c) + math.Pi/4 + t*math.Pi/4
		return arcPoint(cornerCenter(rect, r, c), r, phi)
	case progress > 1-half:
		// First half of the trailing corner: tangent to arc midpoint.
		c := trailingCorner(s)
		t := (progress - (1 - half)) / half
		phi := cornerStart(c) + t*math.Pi/4
		return arcPoint(cornerCenter(rect, r, c), r, phi)
	}

	// Straight run between the two tangent points.
	lc, tc := leadingCorner(s), trailingCorner(s)
	from := arcPoint(cornerCenter(rect, r, lc), r, cornerStart(lc)+math.Pi/2)
	to := arcPoint(cornerCenter(rect, r, tc), r, cornerStart(tc))
	var straight float64
	if span := 1 - frac; span > 0 {
		straight = clamp((progress-half)/span, 0, 1)
	}
	p := from.Lerp(to, straight)

	// Pin the fixed edge coordinate so trig rounding never leaves the edge.
	switch s {
	case 0:
		p.Y = rect.MinY
	case 1:
		p.X = rect.MaxX()
	case 2:
		p.Y = rect.MaxY()
	case 3:
		p.X = rect.MinX
	}
	return p
}

// OnBoundary reports whether p lies on the border of spec within eps:
// either on one of the straight edge segments or at distance
// CornerRadius from a corner center inside that corner's quadrant.
func OnBoundary(spec RoundedRect, p Point, eps float64) bool {
	rect, r := spec.Effective()
	minX, maxX := rect.MinX, rect.MaxX()
	minY, maxY := rect.MinY, rect.MaxY()

	inX := p.X >= minX+r-eps && p.X <= maxX-r+eps
	inY := p.Y >= minY+r-eps && p.Y <= maxY-r+eps
	if inX && (math.Abs(p.Y-minY) <= eps || math.Abs(p.Y-maxY) <= eps) {
		return true
	}
	if inY && (math.Abs(p.X-minX) <= eps || math.Abs(p.X-maxX) <= eps) {
		return true
	}

	for c := topRight; c <= topLeft; c++ {
		cc := cornerCenter(rect, r, c)
		if math.Abs(p.Distance(cc)-r) > eps {
			continue
		}
		// The point must sit in the corner's outer quadrant.
		dx, dy := p.X-cc.X, p.Y-cc.Y
		switch c {
		case topRight:
			if dx >= -eps && dy <= eps {
				return true
			}
		case bottomRight:
			if dx >= -eps && dy >= -eps {
				return true
			}
		case bottomLeft:
			if dx <= eps && dy >= -eps {
				return true
			}
		case topLeft:
			if dx <= eps && dy <= eps {
				return true
			}
		}
	}
	return false
}

// Outline samples n points evenly spaced in angle around the border,
// starting at 0°. It returns nil for n <= 0.
func Outline(spec RoundedRect, n int) []Point {
	if n <= 0 {
		return nil
	}
	pts := make([]Point, n)
	step := 360 / float64(n)
	for i := range n {
		pts[i] = PointOnPerimeter(spec, float64(i)*step)
	}
	return pts
}
