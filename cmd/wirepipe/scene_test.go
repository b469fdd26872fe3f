package main

import (
	"math/rand/v2"
	"testing"

	"github.com/taigrr/wirepipe/pkg/models"
	"github.com/taigrr/wirepipe/pkg/render"
)

func newTestScene() *Scene {
	return NewScene(models.NewCube(4), 128, 64, 30, render.ColorWhite, render.ColorBlack)
}

func countColor(fb *render.Framebuffer, c render.Color) int {
	n := 0
	for _, p := range fb.Pixels {
		if p == c {
			n++
		}
	}
	return n
}

func TestNewSceneNormalizesMesh(t *testing.T) {
	s := newTestScene()
	size := s.Mesh.Size()
	if size.X != 2 || size.Y != 2 || size.Z != 2 {
		t.Errorf("mesh size = %v, want 2x2x2", size)
	}
	if s.Distance() != defaultDistance {
		t.Errorf("Distance = %v, want %v", s.Distance(), defaultDistance)
	}
}

func TestSceneRender(t *testing.T) {
	s := newTestScene()
	if !s.Render() {
		t.Fatal("cube was culled")
	}
	if countColor(s.FB, render.ColorWhite) == 0 {
		t.Error("nothing drawn")
	}
	if st := s.Pipeline().Stats; st.Accepted+st.Clipped == 0 {
		t.Errorf("stats = %+v", st)
	}
	if s.FB.GetPixel(0, 0) != render.ColorBlack {
		t.Error("background not cleared")
	}
}

func TestSceneRenderResetsStats(t *testing.T) {
	s := newTestScene()
	s.Render()
	first := s.Pipeline().Stats
	s.Render()
	if s.Pipeline().Stats != first {
		t.Errorf("stats accumulated across frames: %+v then %+v", first, s.Pipeline().Stats)
	}
}

func TestSceneMeshColor(t *testing.T) {
	mesh := models.NewCube(2)
	mesh.Color = render.ColorMagenta
	s := NewScene(mesh, 64, 32, 30, render.ColorWhite, render.ColorBlack)

	s.Render()
	if countColor(s.FB, render.ColorMagenta) != 0 {
		t.Error("mesh color used without MeshColor")
	}

	s.MeshColor = true
	s.Render()
	if countColor(s.FB, render.ColorMagenta) == 0 {
		t.Error("mesh color not used")
	}
}

func TestSceneHUD(t *testing.T) {
	s := newTestScene()
	s.Zoom(maxDistance) // shrink the model away from the corner
	s.Render()
	plain := countColor(s.FB, render.ColorWhite)

	s.ToggleHUD()
	s.Render()
	if countColor(s.FB, render.ColorWhite) <= plain {
		t.Error("HUD text not drawn")
	}
}

func TestSceneZoomClamps(t *testing.T) {
	s := newTestScene()
	s.Zoom(-100)
	if s.Distance() != minDistance {
		t.Errorf("Distance = %v, want %v", s.Distance(), minDistance)
	}
	s.Zoom(100)
	if s.Distance() != maxDistance {
		t.Errorf("Distance = %v, want %v", s.Distance(), maxDistance)
	}
	if s.Camera.Position.Z != maxDistance {
		t.Errorf("camera Z = %v, want %v", s.Camera.Position.Z, maxDistance)
	}
}

func TestSceneSpinAndReset(t *testing.T) {
	s := newTestScene()
	s.Spin(rand.New(rand.NewPCG(1, 2)))
	s.Torque(1, -1)
	s.Zoom(2)
	for range 10 {
		s.Step(1.0 / 30)
	}
	if s.Rotation.Yaw.Position == 0 && s.Rotation.Pitch.Position == 0 {
		t.Error("rotation did not move")
	}

	s.Reset()
	if s.Rotation.Yaw.Position != 0 || s.Rotation.Moving() {
		t.Error("Reset did not stop the rotation")
	}
	if s.Distance() != defaultDistance {
		t.Errorf("Distance = %v after Reset", s.Distance())
	}
}
