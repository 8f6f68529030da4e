package potrace

import "github.com/gogpu/potrace/internal/numeric"

// calcLon computes, for every vertex i of the jagged path, the farthest
// cyclic index lon[i] reachable by a single "straight" sub-path starting
// at i (spec 4.3, Selinger's algorithm). It classifies each edge by
// cardinal direction and walks forward while a legal turning direction
// remains, using two accumulated constraint vectors to detect when the
// admissible-direction cone collapses.
func calcLon(pp *privPath) {
	pts := pp.path.Points
	n := len(pts)
	pp.lon = make([]int, n)
	if n == 0 {
		return
	}

	nc := make([]int, n)
	for i, k := n-1, 0; i >= 0; i-- {
		if pts[i].X != pts[k].X && pts[i].Y != pts[k].Y {
			k = i + 1
		}
		nc[i] = k
	}

	pivk := make([]int, n)
	for i := n - 1; i >= 0; i-- {
		var ct [4]int
		cur := Point{}
		var c0, c1 Point // constraint[0], constraint[1]

		dir := dirClass(pts[mod(i+1, n)].Sub(pts[i]))
		ct[dir]++

		k := nc[i]
		k1 := i
		foundk := false

		for {
			dir = dirClass(Point{
				X: sign32(pts[k].X - pts[k1].X),
				Y: sign32(pts[k].Y - pts[k1].Y),
			})
			ct[dir]++

			if ct[0] != 0 && ct[1] != 0 && ct[2] != 0 && ct[3] != 0 {
				pivk[i] = k1
				foundk = true
				break
			}

			cur = pts[k].Sub(pts[i])

			if xprod(c0, cur) < 0 || xprod(c1, cur) > 0 {
				break
			}

			if abs32(cur.X) > 1 || abs32(cur.Y) > 1 {
				off := Point{
					X: cur.X + offComponent(cur.Y >= 0, cur.Y > 0, cur.X < 0),
					Y: cur.Y + offComponent(cur.X <= 0, cur.X < 0, cur.Y < 0),
				}
				if xprod(c0, off) >= 0 {
					c0 = off
				}
				off = Point{
					X: cur.X + offComponent(cur.Y <= 0, cur.Y < 0, cur.X < 0),
					Y: cur.Y + offComponent(cur.X >= 0, cur.X > 0, cur.Y < 0),
				}
				if xprod(c1, off) <= 0 {
					c1 = off
				}
			}

			k1 = k
			k = nc[k1]
			if !lonCyclic(k, i, k1) {
				break
			}
		}
		if !foundk {
			pivk[i] = k1
		}
	}

	j := pivk[n-1]
	pp.lon[n-1] = j
	for i := n - 2; i >= 0; i-- {
		if lonCyclic(i+1, pivk[i], j) {
			j = pivk[i]
		}
		pp.lon[i] = j
	}
	for i := n - 1; i >= 0 && lonCyclic(mod(i+1, n), j, pp.lon[i]); i-- {
		pp.lon[i] = j
	}
}

// offComponent packages the "+1 unless" ternary the reference algorithm
// applies when computing the two corner-offset candidates of the
// constraint cone: it evaluates to -1 unless cond holds, in which case it
// follows either-case into +1/-1 per the two sub-conditions.
func offComponent(primary, strict, alt bool) int32 {
	if primary && (strict || alt) {
		return 1
	}
	return -1
}

func dirClass(d Point) int {
	return int((3 + 3*sign32(d.X) + sign32(d.Y)) / 2)
}

func sign32(v int32) int32 {
	return int32(numeric.Sign(v))
}

func abs32(v int32) int32 {
	return numeric.Abs(v)
}

// xprod returns the integer 2D cross product of two (small) direction
// vectors.
func xprod(a, b Point) int32 {
	return a.X*b.Y - a.Y*b.X
}

// lonCyclic is the un-normalized cyclic-order test calc_lon itself uses:
// unlike the general spec "cyclic" helper, inputs are assumed already in
// [0, n) and the lower bound is inclusive (a <= b), matching Selinger's
// reference algorithm exactly.
func lonCyclic(a, b, c int) bool {
	if a <= c {
		return a <= b && b < c
	}
	return a <= b || b < c
}
