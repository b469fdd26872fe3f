package render

import (
	"fmt"
	"image/color"

	uv "github.com/charmbracelet/ultraviolet"
)

// Draw converts the framebuffer to terminal cells and draws them on the
// screen. The top-left cell of area shows framebuffer rows 0 and 1.
func (fb *Framebuffer) Draw(scr uv.Screen, area uv.Rectangle) {
	for row := area.Min.Y; row < area.Max.Y; row++ {
		for col := area.Min.X; col < area.Max.X; col++ {
			cell := fb.Cell(col-area.Min.X, row-area.Min.Y)
			if cell == nil {
				break
			}
			scr.SetCell(col, row, cell)
		}
	}
}

// Cell returns the terminal cell for column col and text row row. Each cell
// covers two framebuffer rows: ▀ with fg = top pixel and bg = bottom pixel.
// It returns nil past the right edge.
func (fb *Framebuffer) Cell(col, row int) *uv.Cell {
	if col < 0 || col >= fb.Width {
		return nil
	}
	top := fb.GetPixel(col, row*2)
	bot := fb.GetPixel(col, row*2+1)
	return &uv.Cell{
		Content: "▀",
		Width:   1,
		Style: uv.Style{
			Fg: rgbaToColor(top),
			Bg: rgbaToColor(bot),
		},
	}
}

// TerminalRows returns the number of text rows needed to show fb.
func (fb *Framebuffer) TerminalRows() int {
	return (fb.Height + 1) / 2
}

// TerminalArea shrinks bounds to the cells fb covers, anchored at the
// top-left of bounds.
func (fb *Framebuffer) TerminalArea(bounds uv.Rectangle) uv.Rectangle {
	area := bounds
	area.Max.X = min(area.Max.X, area.Min.X+fb.Width)
	area.Max.Y = min(area.Max.Y, area.Min.Y+fb.TerminalRows())
	return area
}

// rgbaToColor converts color.RGBA to Go's color.Color interface.
func rgbaToColor(c color.RGBA) color.Color {
	if c.A == 0 {
		return nil // Transparent = no color
	}
	return c
}

// Color is an alias for color.RGBA for convenience.
type Color = color.RGBA

// Colors for convenience
var (
	ColorBlack   = color.RGBA{0, 0, 0, 255}
	ColorWhite   = color.RGBA{255, 255, 255, 255}
	ColorRed     = color.RGBA{255, 0, 0, 255}
	ColorGreen   = color.RGBA{0, 255, 0, 255}
	ColorBlue    = color.RGBA{0, 0, 255, 255}
	ColorYellow  = color.RGBA{255, 255, 0, 255}
	ColorCyan    = color.RGBA{0, 255, 255, 255}
	ColorMagenta = color.RGBA{255, 0, 255, 255}
	ColorGray    = color.RGBA{128, 128, 128, 255}

	// ColorPhosphor is the default foreground, a monochrome OLED green.
	ColorPhosphor = color.RGBA{51, 255, 102, 255}
)

// RGB creates a color from RGB values.
func RGB(r, g, b uint8) color.RGBA {
	return color.RGBA{r, g, b, 255}
}

// ParseRGB parses an "R,G,B" string with components in 0..255.
func ParseRGB(s string) (color.RGBA, error) {
	var r, g, b int
	var rest string
	n, _ := fmt.Sscanf(s, "%d,%d,%d%s", &r, &g, &b, &rest)
	if n < 3 {
		return color.RGBA{}, fmt.Errorf("parse color %q: want R,G,B", s)
	}
	if n > 3 {
		return color.RGBA{}, fmt.Errorf("parse color %q: trailing %q", s, rest)
	}
	for _, v := range []int{r, g, b} {
		if v < 0 || v > 255 {
			return color.RGBA{}, fmt.Errorf("parse color %q: component %d out of range", s, v)
		}
	}
	return RGB(uint8(r), uint8(g), uint8(b)), nil
}
