package math3d

import "github.com/chewxy/math32"

// Mat4 is a 4x4 transformation matrix stored row-major as m[row][col].
// Cells are float32 so a matrix fits in 64 bytes on small targets.
//
// For an affine transform:
// | Xx Yx Zx Tx |   X,Y,Z = basis vectors (rotation/scale)
// | Xy Yy Zy Ty |   T = translation
// | Xz Yz Zz Tz |
// | 0  0  0  1  |
//
// The zero value is the zero matrix, not the identity.
type Mat4 [4][4]float32

// Axis selects a rotation axis for SetRotate.
type Axis uint8

const (
	AxisX Axis = iota
	AxisY
	AxisZ
)

// Identity returns the identity matrix.
func Identity() Mat4 {
	var m Mat4
	m.SetIdentity()
	return m
}

// Translate creates a translation matrix.
func Translate(x, y, z float32) Mat4 {
	var m Mat4
	m.SetTranslate(x, y, z)
	return m
}

// Scale creates a scaling matrix.
func Scale(x, y, z float32) Mat4 {
	var m Mat4
	m.SetScale(x, y, z)
	return m
}

// ScaleUniform creates a uniform scaling matrix.
func ScaleUniform(s float32) Mat4 {
	var m Mat4
	m.SetScaleUniform(s)
	return m
}

// Rotate creates a rotation matrix around one of the principal axes.
func Rotate(axis Axis, angle float32) Mat4 {
	var m Mat4
	m.SetRotate(axis, angle)
	return m
}

// Perspective creates the clipper's perspective projection matrix.
// See SetPerspective.
func Perspective(fov, aspect, near float32) Mat4 {
	var m Mat4
	m.SetPerspective(fov, aspect, near)
	return m
}

// SetIdentity sets m to the identity matrix.
func (m *Mat4) SetIdentity() {
	for i := range 4 {
		for j := range 4 {
			if i == j {
				m[i][j] = 1
			} else {
				m[i][j] = 0
			}
		}
	}
}

// SetTranslate sets m to a translation by (x, y, z).
func (m *Mat4) SetTranslate(x, y, z float32) {
	m.SetIdentity()
	m[0][3] = x
	m[1][3] = y
	m[2][3] = z
}

// SetScale sets m to a scale of (x, y, z).
func (m *Mat4) SetScale(x, y, z float32) {
	m.SetIdentity()
	m[0][0] = x
	m[1][1] = y
	m[2][2] = z
}

// SetScaleUniform sets m to a uniform scale of s.
func (m *Mat4) SetScaleUniform(s float32) {
	m.SetScale(s, s, s)
}

// SetRotate sets m to a rotation of angle radians around axis.
// An unknown axis leaves m as the identity.
func (m *Mat4) SetRotate(axis Axis, angle float32) {
	m.SetIdentity()
	c := math32.Cos(angle)
	s := math32.Sin(angle)

	switch axis {
	case AxisX:
		m[1][1] = c
		m[2][2] = c
		m[1][2] = -s
		m[2][1] = s
	case AxisY:
		m[0][0] = c
		m[2][2] = c
		m[0][2] = s
		m[2][0] = -s
	case AxisZ:
		m[0][0] = c
		m[1][1] = c
		m[0][1] = s
		m[1][0] = -s
	}
}

// SetPerspective sets m to the perspective matrix matched to the pipeline's
// clip planes. There is no far plane: after projection w = -near*z and z is
// pinned to -1 for points with w = 1, so only the z < -w test clips depth.
//
//	| fov/aspect 0   0     0  |
//	| 0          fov 0     0  |
//	| 0          0   0    -1  |
//	| 0          0   -near 0  |
func (m *Mat4) SetPerspective(fov, aspect, near float32) {
	m.SetIdentity()
	m[0][0] = fov / aspect
	m[1][1] = fov
	m[2][2] = 0
	m[3][3] = 0
	m[2][3] = -1
	m[3][2] = -near
}

// Multiply replaces m with m * b.
//
// Composing this way means the last matrix multiplied in is the first one
// applied to a point, so a chain starts with the projection and pushes the
// model transforms after it.
func (m *Mat4) Multiply(b Mat4) {
	var tmp [4]float32
	for i := range 4 {
		for j := range 4 {
			var n float32
			for k := range 4 {
				n += m[i][k] * b[k][j]
			}
			tmp[j] = n
		}
		m[i] = tmp
	}
}

// Mul returns the product a * b without modifying a.
//
//nolint:st1016 // a*b naming convention is clearer for matrix multiplication
func (a Mat4) Mul(b Mat4) Mat4 {
	a.Multiply(b)
	return a
}

// MulVec4 transforms a Vec4.
func (m Mat4) MulVec4(v Vec4) Vec4 {
	var r Vec4
	r.Multiply(m, v)
	return r
}

// MulVec3 transforms a Vec3 as a point (w=1) and divides by the resulting w.
func (m Mat4) MulVec3(v Vec3) Vec3 {
	r := m.MulVec4(V4FromV3(v, 1))
	if r.W == 0 {
		r.W = 1
	}
	return Vec3{r.X / r.W, r.Y / r.W, r.Z / r.W}
}

// Transpose returns the transposed matrix.
func (m Mat4) Transpose() Mat4 {
	var t Mat4
	for i := range 4 {
		for j := range 4 {
			t[j][i] = m[i][j]
		}
	}
	return t
}

// Get returns the element at (row, col).
func (m Mat4) Get(row, col int) float32 {
	return m[row][col]
}

// Set sets the element at (row, col).
func (m *Mat4) Set(row, col int, val float32) {
	m[row][col] = val
}
