// Package render provides the line sinks the pipeline draws into: an RGBA
// framebuffer with terminal and PNG output, a TinyGo display adapter, a
// camera and wireframe helpers.
package render

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"math"
	"os"

	"golang.org/x/image/draw"

	"github.com/taigrr/wirepipe/pkg/pipeline"
)

// Framebuffer is a 2D array of pixels that can be rendered to the terminal.
// We use double vertical resolution by using half-block characters (▀▄).
type Framebuffer struct {
	Width  int          // Width in "pixels" (same as terminal columns)
	Height int          // Height in "pixels" (2x terminal rows due to half-blocks)
	Pixels []color.RGBA // Row-major pixel data
}

// NewFramebuffer creates a new framebuffer with the given dimensions.
// Height should be 2x the desired terminal rows for half-block rendering.
func NewFramebuffer(width, height int) *Framebuffer {
	return &Framebuffer{
		Width:  width,
		Height: height,
		Pixels: make([]color.RGBA, width*height),
	}
}

// Viewport returns the pipeline viewport covering the whole buffer.
func (fb *Framebuffer) Viewport() pipeline.Viewport {
	return pipeline.Viewport{MinX: 0, MaxX: fb.Width - 1, MinY: 0, MaxY: fb.Height - 1}
}

// Clear fills the framebuffer with a solid color.
func (fb *Framebuffer) Clear(c color.RGBA) {
	for i := range fb.Pixels {
		fb.Pixels[i] = c
	}
}

// SetPixel sets a pixel at (x, y) to the given color.
// Bounds checking is performed.
func (fb *Framebuffer) SetPixel(x, y int, c color.RGBA) {
	if x < 0 || x >= fb.Width || y < 0 || y >= fb.Height {
		return
	}
	fb.Pixels[y*fb.Width+x] = c
}

// GetPixel returns the color at (x, y).
// Returns transparent black if out of bounds.
func (fb *Framebuffer) GetPixel(x, y int) color.RGBA {
	if x < 0 || x >= fb.Width || y < 0 || y >= fb.Height {
		return color.RGBA{}
	}
	return fb.Pixels[y*fb.Width+x]
}

// DrawLine draws a line from (x0, y0) to (x1, y1) inclusive using
// Bresenham's algorithm. It satisfies pipeline.LineDrawer.
//
// The segment is clipped to the buffer first, so endpoints far outside it
// (a projected w=0 point lands near math.MinInt) cost no more than a line
// across the buffer.
func (fb *Framebuffer) DrawLine(x0, y0, x1, y1 int, c color.RGBA) {
	x0, y0, x1, y1, ok := clipSegment(x0, y0, x1, y1, fb.Width, fb.Height)
	if !ok {
		return
	}
	bresenham(x0, y0, x1, y1, func(x, y int) {
		fb.SetPixel(x, y, c)
	})
}

// DrawRect draws a filled rectangle.
func (fb *Framebuffer) DrawRect(x, y, w, h int, c color.RGBA) {
	for py := y; py < y+h; py++ {
		for px := x; px < x+w; px++ {
			fb.SetPixel(px, py, c)
		}
	}
}

// clipSegment clips a segment to the w x h surface [0, w) x [0, h). It
// reports false when no part of the segment is on the surface. Segments
// already inside are returned unchanged.
func clipSegment(x0, y0, x1, y1, w, h int) (int, int, int, int, bool) {
	maxX, maxY := w-1, h-1
	if maxX < 0 || maxY < 0 {
		return 0, 0, 0, 0, false
	}
	inside := func(x, y int) bool {
		return x >= 0 && x <= maxX && y >= 0 && y <= maxY
	}
	if inside(x0, y0) && inside(x1, y1) {
		return x0, y0, x1, y1, true
	}
	if (x0 < 0 && x1 < 0) || (x0 > maxX && x1 > maxX) ||
		(y0 < 0 && y1 < 0) || (y0 > maxY && y1 > maxY) {
		return 0, 0, 0, 0, false
	}

	// Liang-Barsky in float64; the int differences can overflow.
	fx, fy := float64(x0), float64(y0)
	dx, dy := float64(x1)-fx, float64(y1)-fy
	t0, t1 := 0.0, 1.0
	edges := [4][2]float64{
		{-dx, fx},
		{dx, float64(maxX) - fx},
		{-dy, fy},
		{dy, float64(maxY) - fy},
	}
	for _, e := range edges {
		p, q := e[0], e[1]
		if p == 0 {
			if q < 0 {
				return 0, 0, 0, 0, false
			}
			continue
		}
		r := q / p
		if p < 0 {
			if r > t1 {
				return 0, 0, 0, 0, false
			}
			t0 = math.Max(t0, r)
		} else {
			if r < t0 {
				return 0, 0, 0, 0, false
			}
			t1 = math.Min(t1, r)
		}
	}

	round := func(v float64, hi int) int {
		return min(max(int(math.Round(v)), 0), hi)
	}
	return round(fx+t0*dx, maxX), round(fy+t0*dy, maxY),
		round(fx+t1*dx, maxX), round(fy+t1*dy, maxY), true
}

// bresenham calls plot for every pixel on the line, endpoints included.
func bresenham(x0, y0, x1, y1 int, plot func(x, y int)) {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx := 1
	if x0 > x1 {
		sx = -1
	}
	sy := 1
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy

	for {
		plot(x0, y0)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// ToImage converts the framebuffer to a standard Go image.RGBA.
func (fb *Framebuffer) ToImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, fb.Width, fb.Height))
	for y := 0; y < fb.Height; y++ {
		for x := 0; x < fb.Width; x++ {
			img.SetRGBA(x, y, fb.Pixels[y*fb.Width+x])
		}
	}
	return img
}

// ScaledImage returns the framebuffer enlarged by an integer factor with
// nearest-neighbour sampling, so panel pixels stay crisp. A scale below 1 is
// treated as 1.
func (fb *Framebuffer) ScaledImage(scale int) *image.RGBA {
	src := fb.ToImage()
	if scale <= 1 {
		return src
	}
	dst := image.NewRGBA(image.Rect(0, 0, fb.Width*scale, fb.Height*scale))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
	return dst
}

// SavePNG saves the framebuffer as a PNG file, enlarged by scale.
func (fb *Framebuffer) SavePNG(path string, scale int) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create png: %w", err)
	}
	if err := png.Encode(f, fb.ScaledImage(scale)); err != nil {
		f.Close()
		return fmt.Errorf("encode png: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close png: %w", err)
	}
	return nil
}
