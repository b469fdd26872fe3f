package pipeline

import "github.com/taigrr/wirepipe/pkg/math3d"

// Transformation returns a pointer to the active transform so callers can
// modify it in place.
func (p *Pipeline) Transformation() *math3d.Mat4 {
	return &p.Transform
}

// SetTransform replaces the active transform.
func (p *Pipeline) SetTransform(m math3d.Mat4) {
	p.Transform = m
}

// Compose multiplies m into the active transform (Transform = Transform * m),
// so m is applied to points before everything already composed.
func (p *Pipeline) Compose(m math3d.Mat4) {
	p.Transform.Multiply(m)
}

// Push saves the active transform. It reports false, and saves nothing, when
// MaxStackDepth transforms are already saved.
func (p *Pipeline) Push() bool {
	if p.depth >= MaxStackDepth {
		return false
	}
	p.stack[p.depth] = p.Transform
	p.depth++
	return true
}

// Pop restores the most recently pushed transform. It reports false and
// leaves the transform alone when the stack is empty.
func (p *Pipeline) Pop() bool {
	if p.depth == 0 {
		return false
	}
	p.depth--
	p.Transform = p.stack[p.depth]
	return true
}

// Depth returns the number of saved transforms.
func (p *Pipeline) Depth() int {
	return p.depth
}

// BoxOutCode returns the out-codes of the eight corners of the object-space
// box [min, max] under the active transform, ANDed together. A nonzero
// result means every corner is outside the same plane, so nothing inside
// the box can be visible.
func (p *Pipeline) BoxOutCode(min, max math3d.Vec3) OutCode {
	code := OutCode(0xff)
	for i := range 8 {
		corner := math3d.V4(min.X, min.Y, min.Z, 1)
		if i&1 != 0 {
			corner.X = max.X
		}
		if i&2 != 0 {
			corner.Y = max.Y
		}
		if i&4 != 0 {
			corner.Z = max.Z
		}

		var t math3d.Vec4
		t.Multiply(p.Transform, corner)
		code &= Classify(t)
		if code == 0 {
			break
		}
	}
	return code
}

// CullBox reports whether the box [min, max] is entirely outside the view.
func (p *Pipeline) CullBox(min, max math3d.Vec3) bool {
	return p.BoxOutCode(min, max) != 0
}
