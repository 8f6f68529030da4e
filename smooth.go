package potrace

import (
	"math"

	"github.com/gogpu/potrace/internal/numeric"
)

// dorthInfty returns the direction, "at infinity", orthogonal to the line
// through a and b: its components are each a coordinate-wise sign, not a
// unit vector, matching potrace's reference dorth_infty.
func dorthInfty(a, b DPoint) DPoint {
	return DPoint{
		X: -float64(sgn(b.Y - a.Y)),
		Y: float64(sgn(b.X - a.X)),
	}
}

func sgn(v float64) int {
	return numeric.Sign(v)
}

// ddenom returns the denominator used to normalize dpara(p0, p1, p2) into
// a dimensionless corner-sharpness measure, independent of the segment's
// absolute scale.
func ddenom(p0, p2 DPoint) float64 {
	r := dorthInfty(p2, p0)
	return r.Y*(p2.X-p0.X) - r.X*(p2.Y-p0.Y)
}

// interval linearly interpolates from a to b at parameter t (t may lie
// outside [0, 1]).
func interval(t float64, a, b DPoint) DPoint {
	return DPoint{X: a.X + t*(b.X-a.X), Y: a.Y + t*(b.Y-a.Y)}
}

// smooth classifies each polygon vertex as a corner or a curve and
// computes its Bezier control points, given the adjusted real-valued
// vertices (spec 4.6). alphamax is the corner-vs-curve threshold; segments
// with alpha >= alphamax become CORNER, the rest become CURVE with alpha
// clamped to [0.55, 1].
func smooth(pp *privPath, alphamax float64) {
	m := pp.m
	if m == 0 {
		pp.curve = nil
		return
	}
	pp.curve = make(Curve, m)

	for i := 0; i < m; i++ {
		j := mod(i+1, m)
		k := mod(i+2, m)

		vi := pp.vertex[i]
		vj := pp.vertex[j]
		vk := pp.vertex[k]

		p4 := interval(0.5, vk, vj)

		var alpha float64
		denom := ddenom(vi, vk)
		if denom != 0 {
			dd := dpara(vi, vj, vk) / denom
			dd = math.Abs(dd)
			if dd > 1 {
				alpha = 1 - 1.0/dd
			} else {
				alpha = 0
			}
			alpha /= 0.75
		} else {
			alpha = 4.0 / 3.0
		}

		seg := Segment{Vertex: vj, Alpha0: alpha, Beta: 0.5}

		if alpha >= alphamax {
			seg.Tag = Corner
			seg.C[1] = vj
			seg.C[2] = p4
			seg.Alpha = alpha
		} else {
			clamped := alpha
			if clamped < 0.55 {
				clamped = 0.55
			} else if clamped > 1 {
				clamped = 1
			}
			p2 := interval(0.5+0.5*clamped, vi, vj)
			p3 := interval(0.5+0.5*clamped, vk, vj)
			seg.Tag = CurveSeg
			seg.C[0] = p2
			seg.C[1] = p3
			seg.C[2] = p4
			seg.Alpha = clamped
		}

		pp.curve[j] = seg
	}
}
