package potrace

import "math"

// quad is a 3x3 symmetric matrix representing the quadratic form
// w^T Q w used by adjustVertices to find each vertex's sub-pixel
// position (spec 4.5).
type quad [9]float64

func (q *quad) at(i, j int) float64 { return q[i*3+j] }

func (q *quad) add(o *quad) {
	for i := range q {
		q[i] += o[i]
	}
}

// quadform evaluates w^T Q w for w = (x, y, 1).
func quadform(q *quad, x, y float64) float64 {
	v := [3]float64{x, y, 1}
	var sum float64
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			sum += v[i] * q.at(i, j) * v[j]
		}
	}
	return sum
}

// pointslope computes the best-fit line through the jagged sub-path
// [i, j] (cyclically, possibly wrapping more than once): ctr is the
// centroid and dir is the unit direction vector of the fitted line's
// major axis (via the 2x2 covariance matrix's dominant eigenvector).
func pointslope(pp *privPath, i, j int) (ctr, dir DPoint) {
	n := pp.cyclicLen()
	sums := pp.sums
	r := 0

	for j >= n {
		j -= n
		r++
	}
	for i >= n {
		i -= n
		r--
	}
	for j < 0 {
		j += n
		r--
	}
	for i < 0 {
		i += n
		r++
	}

	x := sums[j+1].X - sums[i].X + float64(r)*sums[n].X
	y := sums[j+1].Y - sums[i].Y + float64(r)*sums[n].Y
	x2 := sums[j+1].X2 - sums[i].X2 + float64(r)*sums[n].X2
	xy := sums[j+1].XY - sums[i].XY + float64(r)*sums[n].XY
	y2 := sums[j+1].Y2 - sums[i].Y2 + float64(r)*sums[n].Y2
	k := float64(j + 1 - i + r*n)

	ctr = DPoint{X: x / k, Y: y / k}

	a := (x2 - x*x/k) / k
	b := (xy - x*y/k) / k
	c := (y2 - y*y/k) / k

	lambda2 := (a + c + math.Sqrt((a-c)*(a-c)+4*b*b)) / 2
	a -= lambda2
	c -= lambda2

	var l float64
	if math.Abs(a) >= math.Abs(c) {
		l = math.Sqrt(a*a + b*b)
		if l != 0 {
			dir = DPoint{X: -b / l, Y: a / l}
		}
	} else {
		l = math.Sqrt(c*c + b*b)
		if l != 0 {
			dir = DPoint{X: -c / l, Y: b / l}
		}
	}
	if l == 0 {
		dir = DPoint{}
	}
	return ctr, dir
}

// adjustVertices computes the refined real-valued vertex for each polygon
// edge by minimizing the quadratic form built from the two incident
// edges' line fits, constrained to the unit square centered on the
// original integer corner (spec 4.5, testable property 4).
func adjustVertices(pp *privPath) {
	m := pp.m
	if m == 0 {
		pp.vertex = nil
		return
	}
	po := pp.po
	n := pp.cyclicLen()
	pts := pp.path.Points
	x0 := float64(pts[0].X)
	y0 := float64(pts[0].Y)

	ctr := make([]DPoint, m)
	dir := make([]DPoint, m)
	q := make([]quad, m)

	for i := 0; i < m; i++ {
		j := po[mod(i+1, m)]
		j = mod(j-po[i], n) + po[i]
		ctr[i], dir[i] = pointslope(pp, po[i], j)
	}

	for i := 0; i < m; i++ {
		d := dir[i].X*dir[i].X + dir[i].Y*dir[i].Y
		if d == 0 {
			continue
		}
		v := [3]float64{dir[i].Y, -dir[i].X, 0}
		v[2] = -v[1]*ctr[i].Y - v[0]*ctr[i].X
		for l := 0; l < 3; l++ {
			for k := 0; k < 3; k++ {
				q[i][l*3+k] = v[l] * v[k] / d
			}
		}
	}

	pp.vertex = make([]DPoint, m)
	for i := 0; i < m; i++ {
		var Q quad
		j := mod(i-1, m)
		Q.add(&q[j])
		Q.add(&q[i])

		sx := float64(pts[po[i]].X) - x0
		sy := float64(pts[po[i]].Y) - y0

		wx, wy := solveVertex(&Q, sx, sy)

		dx := math.Abs(wx - sx)
		dy := math.Abs(wy - sy)
		if dx <= 0.5 && dy <= 0.5 {
			pp.vertex[i] = DPoint{X: wx + x0, Y: wy + y0}
			continue
		}

		xmin, ymin := constrainedMinimum(&Q, sx, sy)
		pp.vertex[i] = DPoint{X: xmin + x0, Y: ymin + y0}
	}
}

// solveVertex solves the unconstrained 2x2 linear system for the minimizer
// of w^T Q w, perturbing Q toward a nearby direction when singular
// (det == 0) until it becomes solvable, exactly as potrace's reference
// adjust_vertices does.
func solveVertex(Q *quad, sx, sy float64) (wx, wy float64) {
	for {
		det := Q.at(0, 0)*Q.at(1, 1) - Q.at(0, 1)*Q.at(1, 0)
		if det != 0 {
			wx = (-Q.at(0, 2)*Q.at(1, 1) + Q.at(1, 2)*Q.at(0, 1)) / det
			wy = (Q.at(0, 2)*Q.at(1, 0) - Q.at(1, 2)*Q.at(0, 0)) / det
			return wx, wy
		}
		var v0, v1 float64
		switch {
		case Q.at(0, 0) > Q.at(1, 1):
			v0, v1 = -Q.at(0, 1), Q.at(0, 0)
		case Q.at(1, 1) != 0:
			v0, v1 = -Q.at(1, 1), Q.at(1, 0)
		default:
			v0, v1 = 1, 0
		}
		d := v0*v0 + v1*v1
		v2 := -v1*sy - v0*sx
		v := [3]float64{v0, v1, v2}
		for l := 0; l < 3; l++ {
			for k := 0; k < 3; k++ {
				Q[l*3+k] += v[l] * v[k] / d
			}
		}
	}
}

// constrainedMinimum finds the minimum of w^T Q w over the closed unit
// square centered on (sx, sy): potrace's reference checks the four edge
// minima plus the four corners.
func constrainedMinimum(Q *quad, sx, sy float64) (xmin, ymin float64) {
	min := quadform(Q, sx, sy)
	xmin, ymin = sx, sy

	if Q.at(0, 0) != 0 {
		for z := 0; z < 2; z++ {
			wy := sy - 0.5 + float64(z)
			wx := -(Q.at(0, 1)*wy + Q.at(0, 2)) / Q.at(0, 0)
			if math.Abs(wx-sx) <= 0.5 {
				if cand := quadform(Q, wx, wy); cand < min {
					min, xmin, ymin = cand, wx, wy
				}
			}
		}
	}

	if Q.at(1, 1) != 0 {
		for z := 0; z < 2; z++ {
			wx := sx - 0.5 + float64(z)
			wy := -(Q.at(1, 0)*wx + Q.at(1, 2)) / Q.at(1, 1)
			if math.Abs(wy-sy) <= 0.5 {
				if cand := quadform(Q, wx, wy); cand < min {
					min, xmin, ymin = cand, wx, wy
				}
			}
		}
	}

	for l := 0; l < 2; l++ {
		for k := 0; k < 2; k++ {
			wx := sx - 0.5 + float64(l)
			wy := sy - 0.5 + float64(k)
			if cand := quadform(Q, wx, wy); cand < min {
				min, xmin, ymin = cand, wx, wy
			}
		}
	}

	return xmin, ymin
}
