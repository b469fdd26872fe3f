package math3d

// Vec4 represents a homogeneous 3D point. Dividing X, Y, Z by W gives the
// Euclidean position.
type Vec4 struct {
	X, Y, Z, W float64
}

// V4 creates a new Vec4.
func V4(x, y, z, w float64) Vec4 {
	return Vec4{x, y, z, w}
}

// V4FromV3 creates a Vec4 from Vec3 with specified W.
func V4FromV3(v Vec3, w float64) Vec4 {
	return Vec4{v.X, v.Y, v.Z, w}
}

// Vec3 returns the Vec3 portion (ignoring W).
func (v Vec4) Vec3() Vec3 {
	return Vec3{v.X, v.Y, v.Z}
}

// Multiply sets v to m * u.
func (v *Vec4) Multiply(m Mat4, u Vec4) {
	x := float64(m[0][0])*u.X + float64(m[0][1])*u.Y + float64(m[0][2])*u.Z + float64(m[0][3])*u.W
	y := float64(m[1][0])*u.X + float64(m[1][1])*u.Y + float64(m[1][2])*u.Z + float64(m[1][3])*u.W
	z := float64(m[2][0])*u.X + float64(m[2][1])*u.Y + float64(m[2][2])*u.Z + float64(m[2][3])*u.W
	w := float64(m[3][0])*u.X + float64(m[3][1])*u.Y + float64(m[3][2])*u.Z + float64(m[3][3])*u.W
	v.X, v.Y, v.Z, v.W = x, y, z, w
}

// Add returns the vector sum.
//
//nolint:st1016 // a+b naming convention is clearer for vector operations
func (a Vec4) Add(b Vec4) Vec4 {
	return Vec4{a.X + b.X, a.Y + b.Y, a.Z + b.Z, a.W + b.W}
}

// Sub returns the vector difference.
//
//nolint:st1016 // a-b naming convention is clearer for vector operations
func (a Vec4) Sub(b Vec4) Vec4 {
	return Vec4{a.X - b.X, a.Y - b.Y, a.Z - b.Z, a.W - b.W}
}

// Scale returns the scalar product.
func (v Vec4) Scale(s float64) Vec4 {
	return Vec4{v.X * s, v.Y * s, v.Z * s, v.W * s}
}

// Dot returns the dot product.
//
//nolint:st1016 // a·b naming convention is clearer for vector operations
func (a Vec4) Dot(b Vec4) float64 {
	return a.X*b.X + a.Y*b.Y + a.Z*b.Z + a.W*b.W
}

// Lerp returns (1-alpha)*a + alpha*b. alpha 0 yields a, 1 yields b.
//
//nolint:st1016 // a,b naming convention is clearer for interpolation
func (a Vec4) Lerp(b Vec4, alpha float64) Vec4 {
	a1 := 1 - alpha
	return Vec4{
		a1*a.X + alpha*b.X,
		a1*a.Y + alpha*b.Y,
		a1*a.Z + alpha*b.Z,
		a1*a.W + alpha*b.W,
	}
}
