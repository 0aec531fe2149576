package cellbuf

import "math"

// Braille cells hold a 2×4 grid of dots.
const (
	DotsPerCellX = 2
	DotsPerCellY = 4

	brailleBase = 0x2800
)

// dotBits[row][col] is the braille pattern bit for a dot inside a cell.
var dotBits = [DotsPerCellY][DotsPerCellX]uint8{
	{0x01, 0x08},
	{0x02, 0x10},
	{0x04, 0x20},
	{0x40, 0x80},
}

// Canvas is a dot-addressable surface over a Buffer. Dots accumulate per
// cell and are written out as braille runes by Flush; the last style
// plotted into a cell wins.
type Canvas struct {
	buf   *Buffer
	masks [][]uint8
	style [][]StyleKey
}

// NewCanvas creates a canvas over buf.
func NewCanvas(buf *Buffer) *Canvas {
	c := &Canvas{
		buf:   buf,
		masks: make([][]uint8, buf.H),
		style: make([][]StyleKey, buf.H),
	}
	for y := range c.masks {
		c.masks[y] = make([]uint8, buf.W)
		c.style[y] = make([]StyleKey, buf.W)
	}
	return c
}

// Buffer returns the underlying cell buffer.
func (c *Canvas) Buffer() *Buffer { return c.buf }

// DotsW returns the canvas width in dots.
func (c *Canvas) DotsW() int { return c.buf.W * DotsPerCellX }

// DotsH returns the canvas height in dots.
func (c *Canvas) DotsH() int { return c.buf.H * DotsPerCellY }

// Plot sets the dot at (x, y). Out-of-range dots are ignored.
func (c *Canvas) Plot(x, y int, style StyleKey) {
	if x < 0 || y < 0 {
		return
	}
	cx, cy := x/DotsPerCellX, y/DotsPerCellY
	if !c.buf.InBounds(cx, cy) {
		return
	}
	c.masks[cy][cx] |= dotBits[y%DotsPerCellY][x%DotsPerCellX]
	c.style[cy][cx] = style
}

// PlotF sets the dot containing the point (x, y) in dot coordinates.
func (c *Canvas) PlotF(x, y float64, style StyleKey) {
	if math.IsNaN(x) || math.IsNaN(y) {
		return
	}
	c.Plot(int(math.Floor(x)), int(math.Floor(y)), style)
}

// IsSet reports whether the dot at (x, y) is set.
func (c *Canvas) IsSet(x, y int) bool {
	if x < 0 || y < 0 {
		return false
	}
	cx, cy := x/DotsPerCellX, y/DotsPerCellY
	if !c.buf.InBounds(cx, cy) {
		return false
	}
	return c.masks[cy][cx]&dotBits[y%DotsPerCellY][x%DotsPerCellX] != 0
}

// CellOf returns the cell containing the dot point (x, y).
func CellOf(x, y float64) (int, int) {
	return int(math.Floor(x / DotsPerCellX)), int(math.Floor(y / DotsPerCellY))
}

// Clear drops every plotted dot.
func (c *Canvas) Clear() {
	for y := range c.masks {
		clear(c.masks[y])
	}
}

// Flush writes every cell that has dots as a braille rune. Cells without
// dots are left untouched, so text written to the buffer afterwards
// draws over the dots and text written before survives empty cells.
func (c *Canvas) Flush() {
	for y, row := range c.masks {
		for x, m := range row {
			if m != 0 {
				c.buf.Set(x, y, Braille(m), c.style[y][x])
			}
		}
	}
}

// Braille returns the braille rune for a dot mask.
func Braille(mask uint8) rune { return rune(brailleBase + int(mask)) }
