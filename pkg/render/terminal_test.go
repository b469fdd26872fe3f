package render

import (
	"image"
	"image/color"
	"testing"
)

func TestCellHalfBlocks(t *testing.T) {
	fb := NewFramebuffer(4, 4)
	fb.SetPixel(1, 2, ColorRed)
	fb.SetPixel(1, 3, ColorBlue)

	cell := fb.Cell(1, 1)
	if cell == nil {
		t.Fatal("Cell returned nil")
	}
	if cell.Content != "▀" {
		t.Errorf("Content = %q, want upper half block", cell.Content)
	}
	if cell.Style.Fg != color.Color(ColorRed) {
		t.Errorf("Fg = %v, want red", cell.Style.Fg)
	}
	if cell.Style.Bg != color.Color(ColorBlue) {
		t.Errorf("Bg = %v, want blue", cell.Style.Bg)
	}

	empty := fb.Cell(0, 0)
	if empty.Style.Fg != nil || empty.Style.Bg != nil {
		t.Error("transparent pixels should map to no color")
	}

	if fb.Cell(4, 0) != nil || fb.Cell(-1, 0) != nil {
		t.Error("Cell outside the width should be nil")
	}
}

func TestTerminalRows(t *testing.T) {
	tests := []struct {
		height, rows int
	}{
		{64, 32},
		{63, 32},
		{1, 1},
	}
	for _, tc := range tests {
		fb := NewFramebuffer(1, tc.height)
		if got := fb.TerminalRows(); got != tc.rows {
			t.Errorf("TerminalRows(%d) = %d, want %d", tc.height, got, tc.rows)
		}
	}
}

func TestTerminalArea(t *testing.T) {
	fb := NewFramebuffer(128, 64)

	tests := []struct {
		name   string
		bounds image.Rectangle
		want   image.Rectangle
	}{
		{"large terminal", image.Rect(0, 0, 200, 50), image.Rect(0, 0, 128, 32)},
		{"small terminal", image.Rect(0, 0, 80, 24), image.Rect(0, 0, 80, 24)},
		{"offset", image.Rect(5, 2, 300, 100), image.Rect(5, 2, 133, 34)},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := fb.TerminalArea(tc.bounds); got != tc.want {
				t.Errorf("TerminalArea(%v) = %v, want %v", tc.bounds, got, tc.want)
			}
		})
	}
}

func TestParseRGB(t *testing.T) {
	tests := []struct {
		in      string
		want    color.RGBA
		wantErr bool
	}{
		{"255,0,128", RGB(255, 0, 128), false},
		{"0, 10, 20", RGB(0, 10, 20), false},
		{"1,2", color.RGBA{}, true},
		{"1,2,3x", color.RGBA{}, true},
		{"300,0,0", color.RGBA{}, true},
		{"red", color.RGBA{}, true},
	}

	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			got, err := ParseRGB(tc.in)
			if (err != nil) != tc.wantErr {
				t.Fatalf("err = %v, wantErr %v", err, tc.wantErr)
			}
			if got != tc.want {
				t.Errorf("ParseRGB(%q) = %v, want %v", tc.in, got, tc.want)
			}
		})
	}
}
