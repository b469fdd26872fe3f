// Package models provides wireframe meshes for the line pipeline: built-in
// shapes, edge extraction and a glTF/GLB loader.
package models

import (
	"image/color"

	"github.com/taigrr/wirepipe/pkg/math3d"
)

// Mesh is a set of vertices joined by triangle faces and loose line
// segments. Only edges are ever drawn; faces are kept so shared edges can be
// found.
type Mesh struct {
	Name     string
	Vertices []math3d.Vec3
	Faces    []Face
	Lines    []Edge

	// Color is the suggested line color. A zero alpha means none was given.
	Color color.RGBA

	// Bounding box (calculated on load)
	BoundsMin math3d.Vec3
	BoundsMax math3d.Vec3
}

// Face is a triangle given by three indices into Mesh.Vertices.
type Face struct {
	V [3]int
}

// Edge is an undirected segment between two vertex indices.
type Edge struct {
	A, B int
}

// key orders the indices so (a, b) and (b, a) compare equal.
func (e Edge) key() Edge {
	if e.A > e.B {
		return Edge{e.B, e.A}
	}
	return e
}

// NewMesh creates an empty mesh.
func NewMesh(name string) *Mesh {
	return &Mesh{
		Name:     name,
		Vertices: make([]math3d.Vec3, 0),
		Faces:    make([]Face, 0),
		Lines:    make([]Edge, 0),
	}
}

// AddVertex appends a vertex and returns its index.
func (m *Mesh) AddVertex(v math3d.Vec3) int {
	m.Vertices = append(m.Vertices, v)
	return len(m.Vertices) - 1
}

// AddFace appends a triangle.
func (m *Mesh) AddFace(a, b, c int) {
	m.Faces = append(m.Faces, Face{V: [3]int{a, b, c}})
}

// AddLine appends a line segment.
func (m *Mesh) AddLine(a, b int) {
	m.Lines = append(m.Lines, Edge{a, b})
}

// Edges returns every distinct undirected edge of the mesh in the order it
// is first seen: triangle sides first, then lines. Degenerate edges and
// edges referencing missing vertices are dropped.
func (m *Mesh) Edges() []Edge {
	n := len(m.Faces)*3/2 + len(m.Lines)
	seen := make(map[Edge]struct{}, n)
	edges := make([]Edge, 0, n)

	add := func(a, b int) {
		if a == b || a < 0 || b < 0 || a >= len(m.Vertices) || b >= len(m.Vertices) {
			return
		}
		e := Edge{a, b}
		k := e.key()
		if _, ok := seen[k]; ok {
			return
		}
		seen[k] = struct{}{}
		edges = append(edges, e)
	}

	for _, f := range m.Faces {
		add(f.V[0], f.V[1])
		add(f.V[1], f.V[2])
		add(f.V[2], f.V[0])
	}
	for _, l := range m.Lines {
		add(l.A, l.B)
	}
	return edges
}

// CalculateBounds computes the axis-aligned bounding box.
func (m *Mesh) CalculateBounds() {
	if len(m.Vertices) == 0 {
		m.BoundsMin = math3d.Zero3()
		m.BoundsMax = math3d.Zero3()
		return
	}

	m.BoundsMin = m.Vertices[0]
	m.BoundsMax = m.Vertices[0]

	for _, v := range m.Vertices[1:] {
		m.BoundsMin = m.BoundsMin.Min(v)
		m.BoundsMax = m.BoundsMax.Max(v)
	}
}

// Center returns the center of the bounding box.
func (m *Mesh) Center() math3d.Vec3 {
	return m.BoundsMin.Add(m.BoundsMax).Scale(0.5)
}

// Size returns the dimensions of the bounding box.
func (m *Mesh) Size() math3d.Vec3 {
	return m.BoundsMax.Sub(m.BoundsMin)
}

// VertexCount returns the number of vertices.
func (m *Mesh) VertexCount() int {
	return len(m.Vertices)
}

// TriangleCount returns the number of triangles.
func (m *Mesh) TriangleCount() int {
	return len(m.Faces)
}

// Transform applies a transformation matrix to all vertices.
func (m *Mesh) Transform(mat math3d.Mat4) {
	for i := range m.Vertices {
		m.Vertices[i] = mat.MulVec3(m.Vertices[i])
	}
	m.CalculateBounds()
}

// Normalize centers the mesh on the origin and scales it so its largest
// dimension equals size. Empty and flat-to-a-point meshes are only centered.
func (m *Mesh) Normalize(size float64) {
	m.CalculateBounds()
	center := m.Center()
	maxDim := m.Size().MaxComponent()

	for i := range m.Vertices {
		v := m.Vertices[i].Sub(center)
		if maxDim > 0 {
			v = v.Scale(size / maxDim)
		}
		m.Vertices[i] = v
	}
	m.CalculateBounds()
}

// Clone creates a deep copy of the mesh.
func (m *Mesh) Clone() *Mesh {
	clone := &Mesh{
		Name:      m.Name,
		Vertices:  make([]math3d.Vec3, len(m.Vertices)),
		Faces:     make([]Face, len(m.Faces)),
		Lines:     make([]Edge, len(m.Lines)),
		Color:     m.Color,
		BoundsMin: m.BoundsMin,
		BoundsMax: m.BoundsMax,
	}
	copy(clone.Vertices, m.Vertices)
	copy(clone.Faces, m.Faces)
	copy(clone.Lines, m.Lines)
	return clone
}

// GetBounds returns the axis-aligned bounding box.
func (m *Mesh) GetBounds() (min, max math3d.Vec3) {
	return m.BoundsMin, m.BoundsMax
}
