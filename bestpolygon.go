package potrace

import "math"

// penalty3 returns the RMS orthogonal deviation of the jagged points
// between cyclic indices i and j (inclusive) from the best-fit line
// through them, computed in O(1) from the path's prefix sums (spec 4.4).
func penalty3(pp *privPath, i, j int) float64 {
	pts := pp.path.Points
	n := len(pts)
	sums := pp.sums

	r := 0
	if j >= n {
		j -= n
		r = 1
	}

	var x, y, xy, x2, y2 float64
	var k float64
	if r == 0 {
		x = sums[j+1].X - sums[i].X
		y = sums[j+1].Y - sums[i].Y
		x2 = sums[j+1].X2 - sums[i].X2
		xy = sums[j+1].XY - sums[i].XY
		y2 = sums[j+1].Y2 - sums[i].Y2
		k = float64(j + 1 - i)
	} else {
		x = sums[j+1].X - sums[i].X + sums[n].X
		y = sums[j+1].Y - sums[i].Y + sums[n].Y
		x2 = sums[j+1].X2 - sums[i].X2 + sums[n].X2
		xy = sums[j+1].XY - sums[i].XY + sums[n].XY
		y2 = sums[j+1].Y2 - sums[i].Y2 + sums[n].Y2
		k = float64(j + 1 - i + n)
	}

	px := (float64(pts[i].X)+float64(pts[j].X))/2.0 - float64(pts[0].X)
	py := (float64(pts[i].Y)+float64(pts[j].Y))/2.0 - float64(pts[0].Y)
	ey := float64(pts[j].X - pts[i].X)
	ex := -float64(pts[j].Y - pts[i].Y)

	a := (x2-2*x*px)/k + px*px
	b := (xy-x*py-y*px)/k + px*py
	c := (y2-2*y*py)/k + py*py

	s := ex*ex*a + 2*ex*ey*b + ey*ey*c
	if s < 0 {
		s = 0
	}
	return math.Sqrt(s)
}

// bestPolygon computes the minimum-segment polygon po[0..m) within the
// per-vertex lon bounds, minimizing total penalty3 among polygons with the
// minimum achievable segment count (spec 4.4). This transcribes potrace's
// reference bestpolygon(): a clip-chain pass establishes the minimum
// segment count m and, for each segment index j, the feasible range of
// jagged-path indices; a DP pass then picks the lowest-penalty chain
// within that range.
func bestPolygon(pp *privPath) {
	n := pp.cyclicLen()
	if n == 0 {
		pp.m = 0
		pp.po = nil
		return
	}

	clip0 := make([]int, n)
	for i := 0; i < n; i++ {
		c := mod(pp.lon[mod(i-1, n)]-1, n)
		if c == i {
			c = mod(i+1, n)
		}
		if c < i {
			clip0[i] = n
		} else {
			clip0[i] = c
		}
	}

	clip1 := make([]int, n+1)
	j := 1
	for i := 0; i < n; i++ {
		for j <= clip0[i] {
			clip1[j] = i
			j++
		}
	}

	seg0 := make([]int, n+1)
	i := 0
	m := 0
	for ; i < n; m++ {
		seg0[m] = i
		i = clip0[i]
	}
	seg0[m] = n

	seg1 := make([]int, m+1)
	i = n
	for j = m; j > 0; j-- {
		seg1[j] = i
		i = clip1[i]
	}
	seg1[0] = 0

	pen := make([]float64, n+1)
	prev := make([]int, n+1)
	pen[0] = 0
	for j := 1; j <= m; j++ {
		for i := seg1[j]; i <= seg0[j]; i++ {
			best := -1.0
			for k := seg0[j-1]; k >= clip1[i]; k-- {
				thisPen := penalty3(pp, k, i) + pen[k]
				if best < 0 || thisPen < best {
					prev[i] = k
					best = thisPen
				}
			}
			pen[i] = best
		}
	}

	pp.m = m
	pp.po = make([]int, m)
	for i, j := n, m-1; i > 0; j-- {
		i = prev[i]
		pp.po[j] = i
	}
}
