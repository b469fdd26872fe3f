package render

import (
	"math"
	"testing"

	"github.com/taigrr/wirepipe/pkg/math3d"
	"github.com/taigrr/wirepipe/pkg/pipeline"
)

var panel = pipeline.Viewport{MinX: 0, MaxX: 127, MinY: 0, MaxY: 63}

func TestWorldToScreen(t *testing.T) {
	cam := NewCamera()

	tests := []struct {
		name    string
		pos     math3d.Vec3
		x, y    int
		visible bool
	}{
		{"origin", math3d.V3(0, 0, 0), 63, 32, true},
		{"right", math3d.V3(1, 0, 0), 76, 32, true},
		{"behind", math3d.V3(0, 0, 10), 0, 0, false},
		{"too close", math3d.V3(0, 0, 4.5), 0, 0, false},
		{"far left", math3d.V3(-50, 0, 0), 0, 0, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			x, y, ok := cam.WorldToScreen(tc.pos, panel)
			if ok != tc.visible || x != tc.x || y != tc.y {
				t.Errorf("WorldToScreen(%v) = (%d, %d, %v), want (%d, %d, %v)",
					tc.pos, x, y, ok, tc.x, tc.y, tc.visible)
			}
		})
	}
}

func TestCameraYaw(t *testing.T) {
	cam := NewCamera()
	cam.SetPosition(math3d.Zero3())
	cam.SetRotation(0, math.Pi/2, 0)

	// Yawing a quarter turn left looks down -X.
	fwd := cam.Forward()
	if math.Abs(fwd.X+1) > 1e-9 || math.Abs(fwd.Z) > 1e-9 {
		t.Errorf("Forward = %v, want (-1, 0, 0)", fwd)
	}

	x, y, ok := cam.WorldToScreen(math3d.V3(-5, 0, 0), panel)
	if !ok || x != 63 || y != 32 {
		t.Errorf("point ahead = (%d, %d, %v), want (63, 32, true)", x, y, ok)
	}
	if _, _, ok := cam.WorldToScreen(math3d.V3(0, 0, -5), panel); ok {
		t.Error("point at the old forward should now be off screen")
	}
}

func TestCameraLookAt(t *testing.T) {
	cam := NewCamera()
	cam.SetPosition(math3d.V3(0, 5, 5))
	cam.LookAt(math3d.Zero3())

	if math.Abs(cam.Pitch+math.Pi/4) > 1e-9 {
		t.Errorf("Pitch = %v, want -pi/4", cam.Pitch)
	}
	if math.Abs(cam.Yaw) > 1e-9 {
		t.Errorf("Yaw = %v, want 0", cam.Yaw)
	}

	fwd := cam.Forward()
	want := math3d.V3(0, -1, -1).Normalize()
	if fwd.Sub(want).Len() > 1e-9 {
		t.Errorf("Forward = %v, want %v", fwd, want)
	}
}

func TestCameraRotateClampsPitch(t *testing.T) {
	cam := NewCamera()
	cam.Rotate(10, 0, 0)
	if cam.Pitch >= math.Pi/2 {
		t.Errorf("Pitch = %v, should be clamped below pi/2", cam.Pitch)
	}
	cam.Rotate(-20, 0, 0)
	if cam.Pitch <= -math.Pi/2 {
		t.Errorf("Pitch = %v, should be clamped above -pi/2", cam.Pitch)
	}
}

func TestCameraMove(t *testing.T) {
	cam := NewCamera()
	cam.MoveForward(2)
	if math.Abs(cam.Position.Z-3) > 1e-9 {
		t.Errorf("after MoveForward Z = %v, want 3", cam.Position.Z)
	}
	cam.MoveRight(1)
	cam.MoveUp(4)
	if math.Abs(cam.Position.X-1) > 1e-9 || cam.Position.Y != 4 {
		t.Errorf("Position = %v, want (1, 4, 3)", cam.Position)
	}
}

func TestCameraZoom(t *testing.T) {
	cam := NewCamera()
	cam.Zoom(1.5)
	if cam.FOV != 3 {
		t.Errorf("FOV = %v, want 3", cam.FOV)
	}
	cam.Zoom(0)
	cam.Zoom(-2)
	if cam.FOV != 3 {
		t.Errorf("non-positive zoom changed FOV to %v", cam.FOV)
	}
}

func TestCameraApply(t *testing.T) {
	cam := NewCamera()
	cam.SetViewport(pipeline.Viewport{MinX: 0, MaxX: 63, MinY: 0, MaxY: 63})
	if cam.Aspect != 1 {
		t.Errorf("Aspect = %v, want 1", cam.Aspect)
	}

	p := pipeline.New(&recorder{}, panel)
	cam.Apply(p)

	want := cam.ProjectionMatrix().Mul(cam.ViewMatrix())
	if p.Transform != want {
		t.Errorf("Apply set %v, want %v", p.Transform, want)
	}
}
