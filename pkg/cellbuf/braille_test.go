package cellbuf

import "testing"

func TestBrailleRunes(t *testing.T) {
	tests := []struct {
		mask uint8
		want rune
	}{
		{0x00, '⠀'},
		{0x01, '⠁'},
		{0x09, '⠉'},
		{0x47, '⡇'},
		{0xff, '⣿'},
	}
	for _, tc := range tests {
		if got := Braille(tc.mask); got != tc.want {
			t.Errorf("Braille(%#x) = %q, want %q", tc.mask, got, tc.want)
		}
	}
}

func TestPlotDotLayout(t *testing.T) {
	b := New(2, 1, keyBG)
	c := NewCanvas(b)
	if c.DotsW() != 4 || c.DotsH() != 4 {
		t.Fatalf("dots: %dx%d, want 4x4", c.DotsW(), c.DotsH())
	}
	// Left column of the first cell.
	for y := 0; y < 4; y++ {
		c.Plot(0, y, keyRing)
	}
	// Top-right dot of the second cell.
	c.Plot(3, 0, keyMarker)
	c.Flush()

	if got := b.At(0, 0); got.Ch != '⡇' || got.Style != keyRing {
		t.Errorf("cell 0 = %q/%d, want ⡇/keyRing", got.Ch, got.Style)
	}
	if got := b.At(1, 0); got.Ch != '⠈' || got.Style != keyMarker {
		t.Errorf("cell 1 = %q/%d, want ⠈/keyMarker", got.Ch, got.Style)
	}
}

func TestPlotBounds(t *testing.T) {
	b := New(2, 2, keyBG)
	c := NewCanvas(b)
	c.Plot(-1, 0, keyRing)
	c.Plot(0, -1, keyRing)
	c.Plot(4, 0, keyRing)
	c.Plot(0, 8, keyRing)
	c.PlotF(-0.5, 1, keyRing)
	c.Flush()
	if got := b.Plain(); got != "  \n  " {
		t.Errorf("out-of-range plots drew something: %q", got)
	}
}

func TestPlotFFloors(t *testing.T) {
	c := NewCanvas(New(3, 2, keyBG))
	c.PlotF(3.99, 4.01, keyRing)
	if !c.IsSet(3, 4) {
		t.Error("expected dot (3,4) set")
	}
	if c.IsSet(4, 4) || c.IsSet(3, 5) {
		t.Error("neighbouring dots should be clear")
	}
}

func TestFlushKeepsEmptyCells(t *testing.T) {
	b := New(3, 1, keyBG)
	b.SetString(0, 0, "abc", keyMarker)
	c := NewCanvas(b)
	c.Plot(2, 0, keyRing) // middle cell
	c.Flush()
	if got := b.Plain(); got != "a⠁c" {
		t.Errorf("got %q, want %q", got, "a⠁c")
	}
}

func TestClear(t *testing.T) {
	b := New(1, 1, keyBG)
	c := NewCanvas(b)
	c.Plot(0, 0, keyRing)
	c.Clear()
	if c.IsSet(0, 0) {
		t.Error("Clear left a dot set")
	}
}

func TestCellOf(t *testing.T) {
	tests := []struct {
		x, y   float64
		cx, cy int
	}{
		{0, 0, 0, 0},
		{1.9, 3.9, 0, 0},
		{2, 4, 1, 1},
		{199, 599, 99, 149},
		{-0.1, -0.1, -1, -1},
	}
	for _, tc := range tests {
		cx, cy := CellOf(tc.x, tc.y)
		if cx != tc.cx || cy != tc.cy {
			t.Errorf("CellOf(%v,%v) = (%d,%d), want (%d,%d)", tc.x, tc.y, cx, cy, tc.cx, tc.cy)
		}
	}
}
