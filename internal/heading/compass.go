package heading

import (
	"math"

	"github.com/wesen/sanpo/pkg/perimeter"
)

// ShortCompass returns the closest of the eight compass points ("N",
// "NE", ...) for a heading in degrees.
func ShortCompass(deg float64) string {
	idx := int(perimeter.Normalize(deg+22.5) / 45)
	return [...]string{"N", "NE", "E", "SE", "S", "SW", "W", "NW"}[idx%8]
}

// Difference returns the smallest angle between two headings, in
// [0, 180].
func Difference(a, b float64) float64 {
	return math.Abs(perimeter.Signed(a - b))
}
