package render

import (
	"github.com/taigrr/wirepipe/pkg/logging"
	"github.com/taigrr/wirepipe/pkg/math3d"
	"github.com/taigrr/wirepipe/pkg/models"
	"github.com/taigrr/wirepipe/pkg/pipeline"
)

// Wireframe renders 3D wireframe objects through a pipeline as seen from a
// camera.
type Wireframe struct {
	camera *Camera
	pipe   *pipeline.Pipeline
}

// NewWireframe creates a new wireframe renderer.
func NewWireframe(camera *Camera, pipe *pipeline.Pipeline) *Wireframe {
	return &Wireframe{
		camera: camera,
		pipe:   pipe,
	}
}

// Pipeline returns the pipeline the wireframe draws through.
func (w *Wireframe) Pipeline() *pipeline.Pipeline {
	return w.pipe
}

// Begin starts a frame: the pipeline transform is reset to the camera
// matrix and the transform stack must be empty.
func (w *Wireframe) Begin() {
	for w.pipe.Pop() {
	}
	w.camera.Apply(w.pipe)
	w.pipe.Reset()
}

// DrawLine3D draws a line in world space.
func (w *Wireframe) DrawLine3D(p1, p2 math3d.Vec3, color Color) {
	w.pipe.Color = color
	w.pipe.MoveTo(p1.X, p1.Y, p1.Z)
	w.pipe.LineTo(p2.X, p2.Y, p2.Z)
}

// DrawMesh draws every edge of mesh transformed by model. It returns false
// without drawing when the mesh's bounding box is entirely off screen.
func (w *Wireframe) DrawMesh(mesh *models.Mesh, model math3d.Mat4, color Color) bool {
	if !w.pipe.Push() {
		logging.Logger().Warn("transform stack full", "mesh", mesh.Name)
		return false
	}
	defer w.pipe.Pop()
	w.pipe.Compose(model)

	if w.pipe.CullBox(mesh.GetBounds()) {
		logging.Logger().Debug("mesh culled", "name", mesh.Name)
		return false
	}

	w.pipe.Color = color
	drawEdges(w.pipe, mesh.Vertices, mesh.Edges())
	return true
}

// drawEdges draws edges as pen strokes, skipping the move when an edge
// starts where the previous one ended.
func drawEdges(p *pipeline.Pipeline, verts []math3d.Vec3, edges []models.Edge) {
	last := -1
	for _, e := range edges {
		a, b := e.A, e.B
		if b == last {
			a, b = b, a
		}
		if a != last {
			v := verts[a]
			p.MoveTo(v.X, v.Y, v.Z)
		}
		v := verts[b]
		p.LineTo(v.X, v.Y, v.Z)
		last = b
	}
}

// DrawCube draws a wireframe cube.
func (w *Wireframe) DrawCube(center math3d.Vec3, size float64, color Color) {
	w.DrawTransformedCube(math3d.Translate(float32(center.X), float32(center.Y), float32(center.Z)), size, color)
}

// DrawTransformedCube draws a wireframe cube with a transformation matrix.
func (w *Wireframe) DrawTransformedCube(transform math3d.Mat4, size float64, color Color) bool {
	return w.DrawMesh(models.NewCube(size), transform, color)
}

// DrawAxes draws the coordinate axes at the origin.
func (w *Wireframe) DrawAxes(length float64) {
	origin := math3d.Zero3()
	w.DrawLine3D(origin, math3d.V3(length, 0, 0), ColorRed)   // X axis
	w.DrawLine3D(origin, math3d.V3(0, length, 0), ColorGreen) // Y axis
	w.DrawLine3D(origin, math3d.V3(0, 0, length), ColorBlue)  // Z axis
}

// DrawGrid draws a grid on the XZ plane at y=0.
func (w *Wireframe) DrawGrid(size, step float64, color Color) {
	w.DrawMesh(models.NewGrid(size, step), math3d.Identity(), color)
}

// DrawPoint draws a point as a small cross.
func (w *Wireframe) DrawPoint(pos math3d.Vec3, size float64, color Color) {
	halfSize := size / 2
	w.DrawLine3D(
		math3d.V3(pos.X-halfSize, pos.Y, pos.Z),
		math3d.V3(pos.X+halfSize, pos.Y, pos.Z),
		color,
	)
	w.DrawLine3D(
		math3d.V3(pos.X, pos.Y-halfSize, pos.Z),
		math3d.V3(pos.X, pos.Y+halfSize, pos.Z),
		color,
	)
	w.DrawLine3D(
		math3d.V3(pos.X, pos.Y, pos.Z-halfSize),
		math3d.V3(pos.X, pos.Y, pos.Z+halfSize),
		color,
	)
}
