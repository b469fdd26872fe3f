package main

import (
	"image/color"
	"math"
	"math/rand/v2"

	"github.com/taigrr/wirepipe/pkg/math3d"
	"github.com/taigrr/wirepipe/pkg/models"
	"github.com/taigrr/wirepipe/pkg/pipeline"
	"github.com/taigrr/wirepipe/pkg/render"
)

const (
	defaultDistance = 5.0
	minDistance     = 1.5
	maxDistance     = 20.0
	torqueStrength  = 3.0
)

// Scene ties a mesh, camera and pipeline together for one output surface.
type Scene struct {
	Mesh     *models.Mesh
	Camera   *render.Camera
	FB       *render.Framebuffer
	Rotation *RotationState
	HUD      *HUD
	FG, BG   color.RGBA
	ShowHUD  bool

	// MeshColor draws with the mesh's own color when it has one.
	MeshColor bool

	pipe     *pipeline.Pipeline
	wire     *render.Wireframe
	edges    []models.Edge
	distance float64
	torque   struct{ pitch, yaw float64 }
}

// NewScene prepares mesh for display on a width x height panel. The mesh is
// normalized in place to fit a 2-unit cube.
func NewScene(mesh *models.Mesh, width, height, fps int, fg, bg color.RGBA) *Scene {
	mesh.Normalize(2)

	fb := render.NewFramebuffer(width, height)
	cam := render.NewCamera()
	cam.SetViewport(fb.Viewport())

	pipe := pipeline.New(fb, fb.Viewport())
	s := &Scene{
		Mesh:     mesh,
		Camera:   cam,
		FB:       fb,
		Rotation: NewRotationState(fps),
		FG:       fg,
		BG:       bg,
		pipe:     pipe,
		wire:     render.NewWireframe(cam, pipe),
		edges:    mesh.Edges(),
	}
	s.HUD = NewHUD(mesh.Name, len(s.edges))
	s.Reset()
	return s
}

// Pipeline returns the scene's pipeline.
func (s *Scene) Pipeline() *pipeline.Pipeline {
	return s.pipe
}

// ModelMatrix returns the current rotation of the mesh.
func (s *Scene) ModelMatrix() math3d.Mat4 {
	m := math3d.Rotate(math3d.AxisX, float32(s.Rotation.Pitch.Position))
	m.Multiply(math3d.Rotate(math3d.AxisY, float32(s.Rotation.Yaw.Position)))
	m.Multiply(math3d.Rotate(math3d.AxisZ, float32(s.Rotation.Roll.Position)))
	return m
}

// Step advances the rotation springs by one frame of dt seconds.
func (s *Scene) Step(dt float64) {
	if dt > 0.1 {
		dt = 0.1
	}
	s.Rotation.ApplyImpulse(s.torque.pitch*dt, s.torque.yaw*dt, 0)
	// Key release events are unreliable, so held torque decays.
	s.torque.pitch *= 0.9
	s.torque.yaw *= 0.9
	s.Rotation.Update()
}

// Render draws one frame into FB. It reports whether the mesh was drawn.
func (s *Scene) Render() bool {
	s.FB.Clear(s.BG)
	s.pipe.ResetStats()
	s.wire.Begin()

	c := s.FG
	if s.MeshColor && s.Mesh.Color.A != 0 {
		c = s.Mesh.Color
	}
	drawn := s.wire.DrawMesh(s.Mesh, s.ModelMatrix(), c)

	s.HUD.UpdateFPS()
	if s.ShowHUD {
		s.HUD.Render(s.FB, s.pipe.Stats, s.FG, s.BG)
	}
	return drawn
}

// Torque pushes the model around the pitch and yaw axes. Directions are -1,
// 0 or 1.
func (s *Scene) Torque(pitch, yaw float64) {
	if pitch != 0 {
		s.torque.pitch = pitch * torqueStrength
	}
	if yaw != 0 {
		s.torque.yaw = yaw * torqueStrength
	}
}

// Spin applies a random impulse.
func (s *Scene) Spin(rng *rand.Rand) {
	s.Rotation.ApplyImpulse(
		(rng.Float64()-0.5)*1.5,
		(rng.Float64()-0.5)*1.5,
		(rng.Float64()-0.5)*1.5,
	)
}

// Zoom moves the camera toward (negative delta) or away from the model.
func (s *Scene) Zoom(delta float64) {
	s.distance = math.Min(maxDistance, math.Max(minDistance, s.distance+delta))
	s.Camera.SetPosition(math3d.V3(0, 0, s.distance))
}

// Distance returns the camera distance from the model.
func (s *Scene) Distance() float64 {
	return s.distance
}

// Reset stops the rotation and restores the default view.
func (s *Scene) Reset() {
	s.Rotation.Reset()
	s.torque.pitch, s.torque.yaw = 0, 0
	s.distance = defaultDistance
	s.Camera.SetPosition(math3d.V3(0, 0, s.distance))
	s.Camera.LookAt(math3d.Zero3())
}

// ToggleHUD shows or hides the overlay.
func (s *Scene) ToggleHUD() {
	s.ShowHUD = !s.ShowHUD
}
