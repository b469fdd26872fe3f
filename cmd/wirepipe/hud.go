package main

import (
	"fmt"
	"image/color"
	"time"

	"github.com/taigrr/wirepipe/pkg/pipeline"
	"github.com/taigrr/wirepipe/pkg/render"
)

// HUD renders an overlay with model info into the framebuffer
type HUD struct {
	filename  string
	edgeCount int
	fps       float64
	fpsFrames int
	fpsTime   time.Time
}

// NewHUD creates a new HUD
func NewHUD(filename string, edgeCount int) *HUD {
	return &HUD{
		filename:  filename,
		edgeCount: edgeCount,
		fpsTime:   time.Now(),
	}
}

// UpdateFPS updates the FPS counter (call once per frame)
func (h *HUD) UpdateFPS() {
	h.fpsFrames++
	elapsed := time.Since(h.fpsTime)
	if elapsed >= time.Second {
		h.fps = float64(h.fpsFrames) / elapsed.Seconds()
		h.fpsFrames = 0
		h.fpsTime = time.Now()
	}
}

// FPS returns the last measured frame rate.
func (h *HUD) FPS() float64 {
	return h.fps
}

// Lines returns the overlay text, one entry per row.
func (h *HUD) Lines(stats pipeline.Stats) []string {
	return []string{
		h.filename,
		fmt.Sprintf("%d EDGES %.0f FPS", h.edgeCount, h.fps),
		fmt.Sprintf("A%d C%d R%d", stats.Accepted, stats.Clipped, stats.Rejected),
	}
}

// Render draws the overlay in the top-left corner of fb, on a bg box so
// the text stays readable over the model.
func (h *HUD) Render(fb *render.Framebuffer, stats pipeline.Stats, fg, bg color.RGBA) {
	lines := h.Lines(stats)
	w, hgt := h.boxSize(lines)
	fb.DrawRect(0, 0, w, hgt, bg)
	for i, line := range lines {
		fb.DrawText(1, 1+i*render.HUDLineHeight, line, fg)
	}
}

// boxSize returns the backdrop size for lines, with a 1 pixel margin.
func (h *HUD) boxSize(lines []string) (w, hgt int) {
	for _, line := range lines {
		w = max(w, render.TextWidth(line))
	}
	return w + 2, len(lines)*render.HUDLineHeight + 2
}
