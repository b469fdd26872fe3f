// Package pipeline implements a four-stage move/draw line pipeline for small
// displays.
//
// Points given in object space are multiplied by the current transformation
// (stage 4), clipped in homogeneous coordinates against the view frustum
// (stage 3), projected into the pixel viewport (stage 2) and finally handed
// to a LineDrawer (stage 1). Every stage keeps state between calls, so a
// shape is drawn as a sequence of MoveTo/LineTo calls much like a pen
// plotter.
//
// The pipeline never returns errors. Degenerate input (w = 0, malformed
// matrices) produces garbage coordinates rather than a fault.
package pipeline

import (
	"image/color"

	"github.com/taigrr/wirepipe/pkg/math3d"
)

// MaxStackDepth is the number of transforms Push can save.
const MaxStackDepth = 8

// LineDrawer draws a line between two device pixels. It is the display the
// pipeline renders into.
type LineDrawer interface {
	DrawLine(x0, y0, x1, y1 int, c color.RGBA)
}

// Viewport is the device-space rectangle clip space is mapped onto.
// Bounds are inclusive pixel coordinates with the origin at the top left.
type Viewport struct {
	MinX, MaxX int
	MinY, MaxY int
}

// Size returns the width and height in pixels.
func (v Viewport) Size() (w, h int) {
	return v.MaxX - v.MinX + 1, v.MaxY - v.MinY + 1
}

// Project maps a visible clip-space point to device pixels. The y axis is
// flipped so +y is up on screen. The scaled offset is truncated before it is
// added, so results lean toward MinX and MaxY.
func (v Viewport) Project(c math3d.Vec4) (x, y int) {
	tmp := (1 + c.X/c.W) / 2
	x = v.MinX + int(float64(v.MaxX-v.MinX)*tmp)
	tmp = (1 + c.Y/c.W) / 2
	y = v.MaxY - int(float64(v.MaxY-v.MinY)*tmp)
	return x, y
}

// Aspect returns width / height of the viewport.
func (v Viewport) Aspect() float32 {
	w, h := v.Size()
	return float32(w) / float32(h)
}

// Stats counts what the clipper did with each call.
type Stats struct {
	Moves    int // move calls
	Accepted int // segments drawn without clipping
	Clipped  int // segments drawn after clipping
	Rejected int // segments found invisible
}

// Pipeline is a stateful 3D line renderer. It is not safe for concurrent use.
type Pipeline struct {
	// Transform converts object-space points to clip space. Callers may
	// modify it directly between calls.
	Transform math3d.Mat4

	// Color is passed to the LineDrawer for every segment.
	Color color.RGBA

	Stats Stats

	sink     LineDrawer
	viewport Viewport

	// stage 1
	xpos, ypos int

	// stage 3
	oldPos     math3d.Vec4
	oldOutCode OutCode

	stack [MaxStackDepth]math3d.Mat4
	depth int
}

// New creates a pipeline that draws into sink inside viewport vp. The
// transformation starts as the identity.
//
// The first call on a new pipeline should be a move; there is no previous
// point to draw from.
func New(sink LineDrawer, vp Viewport) *Pipeline {
	return &Pipeline{
		Transform: math3d.Identity(),
		Color:     color.RGBA{255, 255, 255, 255},
		sink:      sink,
		viewport:  vp,
	}
}

// Viewport returns the device rectangle.
func (p *Pipeline) Viewport() Viewport {
	return p.viewport
}

// MoveTo moves the pen to (x, y, z) without drawing.
func (p *Pipeline) MoveTo(x, y, z float64) {
	p.transform(false, math3d.V4(x, y, z, 1))
}

// LineTo draws from the previous point to (x, y, z).
func (p *Pipeline) LineTo(x, y, z float64) {
	p.transform(true, math3d.V4(x, y, z, 1))
}

// MoveToVec moves the pen to the homogeneous point v without drawing.
func (p *Pipeline) MoveToVec(v math3d.Vec4) {
	p.transform(false, v)
}

// LineToVec draws from the previous point to the homogeneous point v.
func (p *Pipeline) LineToVec(v math3d.Vec4) {
	p.transform(true, v)
}

// Polyline moves to the first point and draws through the rest. If closed is
// set the last point is joined back to the first.
func (p *Pipeline) Polyline(points []math3d.Vec3, closed bool) {
	if len(points) == 0 {
		return
	}
	p.MoveTo(points[0].X, points[0].Y, points[0].Z)
	for _, pt := range points[1:] {
		p.LineTo(pt.X, pt.Y, pt.Z)
	}
	if closed && len(points) > 2 {
		p.LineTo(points[0].X, points[0].Y, points[0].Z)
	}
}

// Reset clears the pen and clipper state. The transform and stack are kept.
func (p *Pipeline) Reset() {
	p.xpos, p.ypos = 0, 0
	p.oldPos = math3d.Vec4{}
	p.oldOutCode = 0
}

// ResetStats zeroes the counters.
func (p *Pipeline) ResetStats() {
	p.Stats = Stats{}
}

// plot moves or draws in device space.
func (p *Pipeline) plot(draw bool, x, y int) {
	if draw {
		p.sink.DrawLine(p.xpos, p.ypos, x, y, p.Color)
	}
	p.xpos = x
	p.ypos = y
}

// project maps a clip-space point that is known to be inside the frustum to
// device pixels.
func (p *Pipeline) project(draw bool, v math3d.Vec4) {
	x, y := p.viewport.Project(v)
	p.plot(draw, x, y)
}

// transform converts an object-space point into clip space.
func (p *Pipeline) transform(draw bool, v math3d.Vec4) {
	var t math3d.Vec4
	t.Multiply(p.Transform, v)
	p.clip(draw, t)
}
