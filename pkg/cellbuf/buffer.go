// Package cellbuf is a terminal cell grid with per-cell style keys and a
// braille dot canvas layered on top of it.
//
// Cells are styled by StyleKey; the caller supplies the StyleKey →
// lipgloss.Style mapping at render time, so colors stay out of the
// drawing code. All runes are assumed to be single-width.
package cellbuf

import "unicode/utf8"

// StyleKey identifies a visual style.
type StyleKey int

// Cell is a single character in the buffer with an associated style.
type Cell struct {
	Ch    rune
	Style StyleKey
}

// Buffer is a 2D grid of styled cells.
type Buffer struct {
	W, H  int
	Cells [][]Cell // [row][col]
}

// New creates a Buffer of w×h blank cells in style bg. Negative sizes
// are treated as 0.
func New(w, h int, bg StyleKey) *Buffer {
	w, h = max(w, 0), max(h, 0)
	b := &Buffer{W: w, H: h, Cells: make([][]Cell, h)}
	for y := range b.Cells {
		b.Cells[y] = make([]Cell, w)
	}
	b.Fill(bg)
	return b
}

// InBounds reports whether (x, y) is inside the buffer.
func (b *Buffer) InBounds(x, y int) bool {
	return x >= 0 && x < b.W && y >= 0 && y < b.H
}

// At returns the cell at (x, y), or a zero Cell when out of bounds.
func (b *Buffer) At(x, y int) Cell {
	if !b.InBounds(x, y) {
		return Cell{}
	}
	return b.Cells[y][x]
}

// Set writes one character. Out-of-bounds writes are ignored.
func (b *Buffer) Set(x, y int, ch rune, style StyleKey) {
	if b.InBounds(x, y) {
		b.Cells[y][x] = Cell{Ch: ch, Style: style}
	}
}

// SetString writes s starting at (x, y), one rune per cell, clipping
// whatever falls outside.
func (b *Buffer) SetString(x, y int, s string, style StyleKey) {
	i := 0
	for _, ch := range s {
		b.Set(x+i, y, ch, style)
		i++
	}
}

// CenterString writes s horizontally centered on row y and returns the
// column it starts at.
func (b *Buffer) CenterString(y int, s string, style StyleKey) int {
	x := (b.W - utf8.RuneCountInString(s)) / 2
	b.SetString(x, y, s, style)
	return x
}

// Fill resets every cell to a space in style.
func (b *Buffer) Fill(style StyleKey) {
	for y := range b.Cells {
		for x := range b.Cells[y] {
			b.Cells[y][x] = Cell{Ch: ' ', Style: style}
		}
	}
}
