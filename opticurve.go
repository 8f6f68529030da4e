package potrace

import "math"

// cos179 is cos(179 degrees), the maximum-bend threshold opticurve enforces
// when merging a run of CURVE segments: two consecutive edges may not fold
// back on themselves more sharply than this.
const cos179 = -0.999847695156391239

// cprod returns the 2D cross product of (b-a) and (d-c).
func cprod(a, b, c, d DPoint) float64 {
	bx, by := b.X-a.X, b.Y-a.Y
	dx, dy := d.X-c.X, d.Y-c.Y
	return bx*dy - by*dx
}

// bezierPoint evaluates the cubic Bezier (p0, p1, p2, p3) at parameter t.
func bezierPoint(t float64, p0, p1, p2, p3 DPoint) DPoint {
	s := 1 - t
	return DPoint{
		X: s*s*s*p0.X + 3*s*s*t*p1.X + 3*t*t*s*p2.X + t*t*t*p3.X,
		Y: s*s*s*p0.Y + 3*s*s*t*p1.Y + 3*t*t*s*p2.Y + t*t*t*p3.Y,
	}
}

// tangent returns the Bezier parameter t in [0, 1] at which the tangent of
// the curve (p0, p1, p2, p3) is parallel to the line through q0, q1, or -1
// if there is no such parameter. optiPenalty uses this to measure how far an
// original jagged edge or curve control point strays from a candidate
// merged curve.
func tangent(p0, p1, p2, p3, q0, q1 DPoint) float64 {
	A := cprod(p0, p1, q0, q1)
	B := cprod(p1, p2, q0, q1)
	C := cprod(p2, p3, q0, q1)

	a := A - 2*B + C
	b := -2*A + 2*B
	c := A

	d := b*b - 4*a*c
	if a == 0 || d < 0 {
		return -1
	}
	s := math.Sqrt(d)
	r1 := (-b + s) / (2 * a)
	r2 := (-b - s) / (2 * a)
	if r1 >= 0 && r1 <= 1 {
		return r1
	}
	if r2 >= 0 && r2 <= 1 {
		return r2
	}
	return -1
}

// opti is a single candidate produced by optiPenalty: the merged curve's
// two interior control points, its tangent parameters, its alpha, and its
// accumulated fit-error penalty.
type opti struct {
	pen   float64
	c     [2]DPoint
	t, s  float64
	alpha float64
}

// optiPenalty decides whether the run of vertices (i, j] can be replaced
// by one cubic Bezier within opttolerance (spec 4.7). It rejects the merge
// (returns true) when: the run isn't uniformly convex/concave, any turn
// within it bends more sharply than 179 degrees, the tangent system is
// degenerate, the resulting alpha falls outside [0.55, 1], or the
// candidate's total squared deviation from the original geometry exceeds
// opttolerance. On acceptance res holds the candidate curve.
func optiPenalty(pp *privPath, i, j int, res *opti, opttolerance float64, convc []int, areac []float64) bool {
	m := pp.m
	if i == j {
		return true
	}

	k := i
	i1 := mod(i+1, m)
	k1 := mod(k+1, m)
	conv := convc[k1]
	if conv == 0 {
		return true
	}
	d := ddist(pp.vertex[k], pp.vertex[i1])
	for k1 != j {
		k2 := mod(k+2, m)
		if convc[k1] != conv {
			return true
		}
		if sgn(cprod(pp.vertex[i], pp.vertex[k1], pp.vertex[k], pp.vertex[k2])) != conv {
			return true
		}
		if iprod2(pp.vertex[k], pp.vertex[k1], pp.vertex[k1], pp.vertex[k2]) < d*ddist(pp.vertex[k1], pp.vertex[k2])*cos179 {
			return true
		}
		k = k1
		k1 = mod(k+1, m)
		d = ddist(pp.vertex[k], pp.vertex[k1])
	}

	p0 := pp.curve[mod(i, m)].C[2]
	p1 := pp.vertex[mod(i+1, m)]
	p2 := pp.vertex[mod(j, m)]
	p3 := pp.curve[mod(j, m)].C[2]

	area := areac[j] - areac[i]
	area -= dpara(pp.vertex[0], pp.curve[mod(i, m)].C[2], pp.curve[mod(j, m)].C[2]) / 2
	if i >= j {
		area += areac[m]
	}

	a1 := dpara(p0, p1, p2)
	a2 := dpara(p0, p1, p3)
	a3 := dpara(p0, p2, p3)
	a4 := a1 + a3 - a2

	if a2 == a1 {
		return true
	}

	t := a3 / (a3 - a4)
	s := a2 / (a2 - a1)
	A := a2 * t / 2.0

	if A == 0.0 {
		return true
	}

	R := area / A
	disc := 4 - R/0.3
	if disc < 0 {
		return true
	}
	alpha := 2 - math.Sqrt(disc)

	res.c[0] = interval(t, p0, p1)
	res.c[1] = interval(s, p3, p2)
	res.alpha = alpha
	res.t = t
	res.s = s

	if alpha < 0.55 || alpha > 1 {
		return true
	}

	pen := 0.0

	k = mod(i+1, m)
	for k != j {
		k1 = mod(k+1, m)
		tt := tangent(p0, res.c[0], res.c[1], p3, pp.curve[k].C[2], pp.curve[k1].C[2])
		if tt < -0.5 {
			return true
		}
		pt := bezierPoint(tt, p0, res.c[0], res.c[1], p3)
		dd := ddist(pp.curve[k].C[2], pp.curve[k1].C[2])
		if dd == 0.0 {
			return true
		}
		d1 := dpara(pp.curve[k].C[2], pp.curve[k1].C[2], pt) / dd
		pen += d1 * d1
		k = k1
	}

	k = i
	for k != j {
		k1 = mod(k+1, m)
		tt := tangent(p0, res.c[0], res.c[1], p3, pp.vertex[k], pp.vertex[k1])
		if tt < -0.5 {
			return true
		}
		pt := bezierPoint(1-tt, p3, res.c[1], res.c[0], p0)
		dd := ddist(pp.vertex[k], pp.vertex[k1])
		if dd == 0.0 {
			return true
		}
		d1 := dpara(pp.vertex[k], pp.vertex[k1], pt) / dd
		pen += d1 * d1
		k = k1
	}

	res.pen = pen
	return pen > opttolerance
}

// opticurve merges runs of adjacent CURVE segments into single cubic
// Beziers wherever the fit error stays within opttolerance, writing the
// result to pp.ocurve (spec 4.7). A CORNER segment always breaks a run,
// since convc is 0 there; the DP below always has a valid fallback chain
// (every segment kept as-is), so it never leaves pp.ocurve empty.
func opticurve(pp *privPath, opttolerance float64) error {
	m := pp.m
	if m == 0 {
		pp.ocurve = nil
		return nil
	}

	convc := make([]int, m)
	areac := make([]float64, m+1)

	for i := 0; i < m; i++ {
		if pp.curve[i].Tag == CurveSeg {
			convc[i] = sgn(dpara(pp.vertex[mod(i-1, m)], pp.vertex[i], pp.vertex[mod(i+1, m)]))
		} else {
			convc[i] = 0
		}
	}

	area := 0.0
	areac[0] = 0
	p0 := pp.vertex[0]
	for i := 0; i < m; i++ {
		i1 := mod(i+1, m)
		if pp.curve[i1].Tag == CurveSeg {
			alpha := pp.curve[i1].Alpha
			area += 0.3 * alpha * (4 - alpha) * dpara(pp.curve[i].C[2], pp.vertex[i1], pp.curve[i1].C[2]) / 2
			area += dpara(p0, pp.curve[i].C[2], pp.curve[i1].C[2]) / 2
		}
		areac[i+1] = area
	}

	pt := make([]int, m+1)
	pen := make([]float64, m+1)
	length := make([]int, m+1)
	opt := make([]opti, m+1)

	pt[0] = -1
	pen[0] = 0
	length[0] = 0

	for j := 1; j <= m; j++ {
		pt[j] = j - 1
		pen[j] = pen[j-1]
		length[j] = length[j-1] + 1

		for i := j - 2; i >= 0; i-- {
			var o opti
			if optiPenalty(pp, i, mod(j, m), &o, opttolerance, convc, areac) {
				break
			}
			if length[i]+1 < length[j] || (length[i]+1 == length[j] && pen[i]+o.pen < pen[j]) {
				pt[j] = i
				pen[j] = pen[i] + o.pen
				length[j] = length[i] + 1
				opt[j] = o
			}
		}
	}

	om := length[m]
	ocurve := make(Curve, om)

	j := m
	for i := om - 1; i >= 0; i-- {
		if pt[j] == j-1 {
			ocurve[i] = pp.curve[mod(j, m)]
		} else {
			src := pp.curve[mod(j, m)]
			ocurve[i] = Segment{
				Tag:    CurveSeg,
				C:      [3]DPoint{opt[j].c[0], opt[j].c[1], src.C[2]},
				Vertex: interval(opt[j].s, src.Vertex, pp.vertex[mod(j, m)]),
				Alpha:  opt[j].alpha,
				Alpha0: opt[j].alpha,
				Beta:   src.Beta,
			}
		}
		j = pt[j]
	}

	pp.ocurve = ocurve
	return nil
}
