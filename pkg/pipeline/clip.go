package pipeline

import "github.com/taigrr/wirepipe/pkg/math3d"

// OutCode classifies a clip-space point against the six clip planes. A set
// bit means the point is on the outside of that plane.
type OutCode uint8

const (
	OutXMin OutCode = 1 << iota // x < -w
	OutXMax                     // x > w
	OutYMin                     // y < -w
	OutYMax                     // y > w
	OutZMin                     // z < -w
	OutZMax                     // z > 0

	numPlanes = 6
)

// Classify returns the out-code of the clip-space point v.
//
// The z planes are not symmetric: the far test is z > 0 rather than z > w.
// Together with math3d.Perspective this leaves only a near plane in effect.
func Classify(v math3d.Vec4) OutCode {
	var m OutCode

	if v.X < -v.W {
		m |= OutXMin
	}
	if v.X > v.W {
		m |= OutXMax
	}
	if v.Y < -v.W {
		m |= OutYMin
	}
	if v.Y > v.W {
		m |= OutYMax
	}
	if v.Z < -v.W {
		m |= OutZMin
	}
	if v.Z > 0 {
		m |= OutZMax
	}

	return m
}

// planeAlpha returns where segment a->b crosses clip plane i, as a fraction
// of the way from a (0) to b (1). Each case is alpha = f(a) / (f(a) - f(b))
// for the plane's signed distance f.
func planeAlpha(i int, a, b math3d.Vec4) float64 {
	var fa, fb float64
	switch i {
	default:
		fa, fb = a.X+a.W, b.X+b.W // (1,0,0,1)
	case 1:
		fa, fb = a.X-a.W, b.X-b.W // (1,0,0,-1)
	case 2:
		fa, fb = a.Y+a.W, b.Y+b.W // (0,1,0,1)
	case 3:
		fa, fb = a.Y-a.W, b.Y-b.W // (0,1,0,-1)
	case 4:
		fa, fb = a.Z+a.W, b.Z+b.W // (0,0,1,1)
	case 5:
		fa, fb = a.Z, b.Z // (0,0,1,0)
	}
	return fa / (fa - fb)
}

// clip runs the clipper on a clip-space point.
//
// A move only reaches the projection stage if the point is inside. A draw
// is trivially accepted when both ends are inside and trivially rejected
// when both ends are outside the same plane. Anything else is clipped
// parametrically (Liang-Barsky): planes the old point is outside of give an
// entry alpha, the rest give an exit alpha, and the segment is invisible as
// soon as entry passes exit.
//
// The point and its out-code are always remembered for the next call.
func (p *Pipeline) clip(draw bool, v math3d.Vec4) {
	newOutCode := Classify(v)

	if !draw {
		p.Stats.Moves++
		if newOutCode == 0 {
			p.project(false, v)
		}
		p.oldOutCode = newOutCode
		p.oldPos = v
		return
	}

	switch mask := newOutCode | p.oldOutCode; {
	case newOutCode&p.oldOutCode != 0:
		p.Stats.Rejected++

	case mask == 0:
		// The old point was already projected; only draw to the new one.
		p.Stats.Accepted++
		p.project(true, v)

	default:
		aold := 0.0 // entry: (1-aold)*old + aold*new
		anew := 1.0 // exit
		visible := true

		for i := range numPlanes {
			bit := OutCode(1) << i
			if mask&bit == 0 {
				continue
			}

			alpha := planeAlpha(i, p.oldPos, v)
			if p.oldOutCode&bit != 0 {
				if aold < alpha {
					aold = alpha
				}
			} else {
				if anew > alpha {
					anew = alpha
				}
			}

			if aold > anew {
				visible = false
				break
			}
		}

		if !visible {
			p.Stats.Rejected++
			break
		}

		p.Stats.Clipped++
		if p.oldOutCode != 0 {
			p.project(false, p.oldPos.Lerp(v, aold))
		}
		if newOutCode != 0 {
			p.project(true, p.oldPos.Lerp(v, anew))
		} else {
			p.project(true, v)
		}
	}

	p.oldOutCode = newOutCode
	p.oldPos = v
}
