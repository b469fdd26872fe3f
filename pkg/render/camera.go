package render

import (
	"math"

	"github.com/taigrr/wirepipe/pkg/math3d"
	"github.com/taigrr/wirepipe/pkg/pipeline"
)

// Camera represents a 3D camera with position and orientation.
type Camera struct {
	// Position in world space
	Position math3d.Vec3

	// Orientation (Euler angles in radians)
	Pitch float64 // Rotation around X axis (look up/down)
	Yaw   float64 // Rotation around Y axis (look left/right)
	Roll  float64 // Rotation around Z axis (tilt)

	// Projection parameters, see math3d.Perspective.
	FOV    float32 // focal scale; larger values zoom in
	Aspect float32 // viewport width / height
	Near   float32 // depth scale; points closer than 1/Near are clipped
}

// NewCamera creates a camera five units back from the origin looking down
// -Z, set up for a 2:1 panel.
func NewCamera() *Camera {
	return &Camera{
		Position: math3d.V3(0, 0, 5),
		FOV:      2,
		Aspect:   2,
		Near:     1,
	}
}

// SetPosition sets the camera position.
func (c *Camera) SetPosition(pos math3d.Vec3) {
	c.Position = pos
}

// SetRotation sets the camera rotation (pitch, yaw, roll in radians).
func (c *Camera) SetRotation(pitch, yaw, roll float64) {
	c.Pitch = pitch
	c.Yaw = yaw
	c.Roll = roll
}

// SetViewport matches the aspect ratio to vp.
func (c *Camera) SetViewport(vp pipeline.Viewport) {
	c.Aspect = vp.Aspect()
}

// Forward returns the forward direction vector.
func (c *Camera) Forward() math3d.Vec3 {
	// Forward is -Z in camera space, rotated by yaw and pitch
	return math3d.V3(
		-math.Sin(c.Yaw)*math.Cos(c.Pitch),
		math.Sin(c.Pitch),
		-math.Cos(c.Yaw)*math.Cos(c.Pitch),
	)
}

// Right returns the right direction vector.
func (c *Camera) Right() math3d.Vec3 {
	return math3d.V3(
		math.Cos(c.Yaw),
		0,
		-math.Sin(c.Yaw),
	)
}

// Up returns the up direction vector.
func (c *Camera) Up() math3d.Vec3 {
	return c.Right().Cross(c.Forward())
}

// ViewMatrix returns the world-to-camera matrix.
func (c *Camera) ViewMatrix() math3d.Mat4 {
	// View = Rotation * Translation(-position), built by multiplying each
	// step onto the right.
	m := math3d.Rotate(math3d.AxisZ, float32(c.Roll))
	m.Multiply(math3d.Rotate(math3d.AxisX, float32(-c.Pitch)))
	m.Multiply(math3d.Rotate(math3d.AxisY, float32(-c.Yaw)))
	m.Multiply(math3d.Translate(
		float32(-c.Position.X),
		float32(-c.Position.Y),
		float32(-c.Position.Z),
	))
	return m
}

// ProjectionMatrix returns the clipper's perspective matrix.
func (c *Camera) ProjectionMatrix() math3d.Mat4 {
	return math3d.Perspective(c.FOV, c.Aspect, c.Near)
}

// Matrix returns projection * view, ready to be used as a pipeline
// transform.
func (c *Camera) Matrix() math3d.Mat4 {
	m := c.ProjectionMatrix()
	m.Multiply(c.ViewMatrix())
	return m
}

// Apply loads the camera matrix into p.
func (c *Camera) Apply(p *pipeline.Pipeline) {
	p.SetTransform(c.Matrix())
}

// MoveForward moves the camera forward (or backward if negative).
func (c *Camera) MoveForward(distance float64) {
	c.Position = c.Position.Add(c.Forward().Scale(distance))
}

// MoveRight moves the camera right (or left if negative).
func (c *Camera) MoveRight(distance float64) {
	c.Position = c.Position.Add(c.Right().Scale(distance))
}

// MoveUp moves the camera up (or down if negative).
func (c *Camera) MoveUp(distance float64) {
	c.Position = c.Position.Add(math3d.V3(0, distance, 0))
}

// Rotate rotates the camera by the given angles (in radians).
func (c *Camera) Rotate(deltaPitch, deltaYaw, deltaRoll float64) {
	c.Pitch += deltaPitch
	c.Yaw += deltaYaw
	c.Roll += deltaRoll

	// Clamp pitch to avoid gimbal lock issues
	const maxPitch = math.Pi/2 - 0.01
	if c.Pitch > maxPitch {
		c.Pitch = maxPitch
	}
	if c.Pitch < -maxPitch {
		c.Pitch = -maxPitch
	}
}

// Zoom multiplies the focal scale by factor. Non-positive factors are
// ignored.
func (c *Camera) Zoom(factor float32) {
	if factor > 0 {
		c.FOV *= factor
	}
}

// LookAt makes the camera look at a target point.
func (c *Camera) LookAt(target math3d.Vec3) {
	dir := target.Sub(c.Position).Normalize()

	c.Pitch = math.Asin(dir.Y)
	c.Yaw = math.Atan2(-dir.X, -dir.Z)
	c.Roll = 0
}

// WorldToScreen projects a world point into vp. visible is false when the
// point falls outside any clip plane, in which case x and y are zero.
func (c *Camera) WorldToScreen(worldPos math3d.Vec3, vp pipeline.Viewport) (x, y int, visible bool) {
	clip := c.Matrix().MulVec4(math3d.V4FromV3(worldPos, 1))
	if pipeline.Classify(clip) != 0 {
		return 0, 0, false
	}
	x, y = vp.Project(clip)
	return x, y, true
}
