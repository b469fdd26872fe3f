package render

import (
	"image/color"

	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"

	"github.com/taigrr/wirepipe/pkg/pipeline"
)

// DisplayerSink draws pipeline output straight onto a TinyGo display
// driver, such as an SSD1306 panel. Pixels outside the display are dropped.
type DisplayerSink struct {
	d drivers.Displayer
}

// NewDisplayerSink wraps d.
func NewDisplayerSink(d drivers.Displayer) *DisplayerSink {
	return &DisplayerSink{d: d}
}

// Viewport returns the pipeline viewport covering the whole display.
func (s *DisplayerSink) Viewport() pipeline.Viewport {
	w, h := s.d.Size()
	return pipeline.Viewport{MinX: 0, MaxX: int(w) - 1, MinY: 0, MaxY: int(h) - 1}
}

// DrawLine implements pipeline.LineDrawer.
func (s *DisplayerSink) DrawLine(x0, y0, x1, y1 int, c color.RGBA) {
	w, h := s.d.Size()
	x0, y0, x1, y1, ok := clipSegment(x0, y0, x1, y1, int(w), int(h))
	if !ok {
		return
	}
	bresenham(x0, y0, x1, y1, func(x, y int) {
		s.d.SetPixel(int16(x), int16(y), c)
	})
}

// Display flushes the driver's buffer to the panel.
func (s *DisplayerSink) Display() error {
	return s.d.Display()
}

// Display adapts a Framebuffer to drivers.Displayer so TinyGo libraries can
// draw into it.
type Display struct {
	fb *Framebuffer
}

// Displayer returns a drivers.Displayer view of fb.
func (fb *Framebuffer) Displayer() *Display {
	return &Display{fb: fb}
}

func (d *Display) Size() (x, y int16) {
	return int16(d.fb.Width), int16(d.fb.Height)
}

func (d *Display) SetPixel(x, y int16, c color.RGBA) {
	d.fb.SetPixel(int(x), int(y), c)
}

// Display is a no-op; the framebuffer is presented separately.
func (d *Display) Display() error {
	return nil
}

var _ drivers.Displayer = (*Display)(nil)

// HUDFont is the font used for on-screen text. TomThumb is 3x5 pixels, small
// enough for a 128x64 panel.
var HUDFont tinyfont.Fonter = &tinyfont.TomThumb

// HUDLineHeight is the baseline-to-baseline distance of HUDFont.
const HUDLineHeight = 6

// DrawText writes s with its top-left corner at (x, y).
func (fb *Framebuffer) DrawText(x, y int, s string, c color.RGBA) {
	tinyfont.WriteLine(fb.Displayer(), HUDFont, int16(x), int16(y+HUDLineHeight-1), s, c)
}

// TextWidth returns the width of s in pixels.
func TextWidth(s string) int {
	_, outbox := tinyfont.LineWidth(HUDFont, s)
	return int(outbox)
}
