package models

import "github.com/taigrr/wirepipe/pkg/math3d"

// NewCube returns an axis-aligned cube of edge length size centered on the
// origin, built from its twelve edges.
func NewCube(size float64) *Mesh {
	h := size / 2
	m := NewMesh("cube")
	for i := range 8 {
		v := math3d.V3(-h, -h, -h)
		if i&1 != 0 {
			v.X = h
		}
		if i&2 != 0 {
			v.Y = h
		}
		if i&4 != 0 {
			v.Z = h
		}
		m.AddVertex(v)
	}

	// Corner i has bit 0 = +x, bit 1 = +y, bit 2 = +z. Each face is walked
	// around its perimeter so consecutive edges chain.
	for _, loop := range [][4]int{
		{0, 1, 3, 2}, // back
		{4, 5, 7, 6}, // front
	} {
		for j := range 4 {
			m.AddLine(loop[j], loop[(j+1)%4])
		}
	}
	for i := range 4 {
		m.AddLine(i, i+4)
	}
	m.CalculateBounds()
	return m
}

// NewOctahedron returns a regular octahedron whose vertices lie size/2 from
// the origin on each axis.
func NewOctahedron(size float64) *Mesh {
	h := size / 2
	m := NewMesh("octahedron")
	top := m.AddVertex(math3d.V3(0, h, 0))
	bottom := m.AddVertex(math3d.V3(0, -h, 0))
	ring := []int{
		m.AddVertex(math3d.V3(h, 0, 0)),
		m.AddVertex(math3d.V3(0, 0, h)),
		m.AddVertex(math3d.V3(-h, 0, 0)),
		m.AddVertex(math3d.V3(0, 0, -h)),
	}
	for i := range ring {
		a, b := ring[i], ring[(i+1)%len(ring)]
		m.AddFace(top, a, b)
		m.AddFace(bottom, b, a)
	}
	m.CalculateBounds()
	return m
}

// NewGrid returns a square grid on the XZ plane at y = 0, size wide, with a
// line every step units. A non-positive step yields only the border.
func NewGrid(size, step float64) *Mesh {
	half := size / 2
	m := NewMesh("grid")

	n := 1
	if step > 0 {
		n = int(size/step + 1e-9)
		if n < 1 {
			n = 1
		}
	}
	for i := 0; i <= n; i++ {
		t := -half + size*float64(i)/float64(n)
		a := m.AddVertex(math3d.V3(t, 0, -half))
		b := m.AddVertex(math3d.V3(t, 0, half))
		m.AddLine(a, b)
		c := m.AddVertex(math3d.V3(-half, 0, t))
		d := m.AddVertex(math3d.V3(half, 0, t))
		m.AddLine(c, d)
	}
	m.CalculateBounds()
	return m
}
