package potrace

// sumEntry is one cumulative prefix-sum entry: (x, y, xy, x^2, y^2) over
// all path points up to (not including) the entry's index, offset by the
// path's first point for numerical stability.
type sumEntry struct {
	X, Y, XY, X2, Y2 float64
}

// privPath is the per-Path workspace that each pipeline stage populates in
// turn (spec 3, "PrivPath (derived)").
type privPath struct {
	path *Path

	sums []sumEntry // length L+1, sums[0] == 0

	lon []int // length L: farthest cyclic index reachable by a straight run from i

	m  int   // number of polygon vertices
	po []int // length m: indices into path.Points, strictly cyclically increasing

	vertex []DPoint // length m: adjusted sub-pixel vertex for each polygon edge

	curve  Curve // length m, CORNER/CURVE per vertex
	ocurve Curve // optional optimized (fewer-segment) curve
	usingO bool  // true if fcurve() should return ocurve
}

// newPrivPath allocates (but does not populate) the workspace for p.
func newPrivPath(p *Path) *privPath {
	return &privPath{path: p}
}

// fcurve returns whichever of curve/ocurve is the pipeline's final output.
func (pp *privPath) fcurve() Curve {
	if pp.usingO && pp.ocurve != nil {
		return pp.ocurve
	}
	return pp.curve
}

// cyclicLen returns the jagged path length L.
func (pp *privPath) cyclicLen() int { return len(pp.path.Points) }

// mod returns i modulo n, always in [0, n).
func mod(i, n int) int {
	if n == 0 {
		return 0
	}
	i %= n
	if i < 0 {
		i += n
	}
	return i
}

// cyclic reports whether b lies in the cyclic open interval (a, c) modulo
// n — i.e. walking forward from a, b is reached strictly before c.
func cyclic(a, b, c, n int) bool {
	a, b, c = mod(a, n), mod(b, n), mod(c, n)
	if a <= c {
		return a < b && b < c
	}
	return a < b || b < c
}

// calcSums populates pp.sums with prefix sums of the jagged path's points,
// offset by the first point so that intermediate products stay small
// (spec 4.8 step 1, "calc_sums").
func calcSums(pp *privPath) {
	pts := pp.path.Points
	n := len(pts)
	pp.sums = make([]sumEntry, n+1)

	x0, y0 := float64(pts[0].X), float64(pts[0].Y)
	var s sumEntry
	pp.sums[0] = sumEntry{}
	for i := 0; i < n; i++ {
		x := float64(pts[i].X) - x0
		y := float64(pts[i].Y) - y0
		s.X += x
		s.Y += y
		s.XY += x * y
		s.X2 += x * x
		s.Y2 += y * y
		pp.sums[i+1] = s
	}
}
