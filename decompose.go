package potrace

// Decompose scans bitmap b and returns the flat list of jagged contour
// paths enclosing connected black regions of at least turdSize+1 pixels,
// resolving ambiguous corner turns according to policy (spec 4.2,
// "bm_to_pathlist").
//
// The walk itself (findNext / trace / scanline erase) follows the classic
// potrace reference algorithm; Bitmap.FindNext and Bitmap.FlipRange
// provide the O(1)/O(W/word) primitives spec 4.1 requires, grounded on
// gogpu-gg/pixmap.go's bounds-checked accessor shape.
func Decompose(b *Bitmap, turdSize int, policy TurnPolicy) []*Path {
	scratch := b.Copy()
	var paths []*Path

	x, y := 0, 0
	for {
		nx, ny, ok := scratch.FindNext(x, y)
		if !ok {
			break
		}
		x, y = nx, ny

		sign := SignMinus
		if b.Get(x, y) {
			sign = SignPlus
		}

		pts, maxX := traceContour(scratch, x, y, sign, policy)
		erasePath(scratch, pts, maxX)

		area := signedArea(pts)
		absArea := area
		if absArea < 0 {
			absArea = -absArea
		}
		if absArea <= turdSize {
			continue
		}
		paths = append(paths, &Path{
			Points: pts,
			Area:   area,
			Sign:   sign,
		})
	}
	return paths
}

// traceContour walks the pixel-edge boundary starting at the top-left
// corner of the black pixel at (x0, y0), turning at each step according to
// the 2x2 neighborhood ahead and, at ambiguous configurations, according
// to policy. It returns the closed cyclic point sequence and the contour's
// maximum X coordinate (needed by erasePath's scanline fill).
func traceContour(scratch *Bitmap, x0, y0 int, sign Sign, policy TurnPolicy) ([]Point, int32) {
	x, y := x0, y0
	dirx, diry := 0, 1

	var pts []Point
	maxX := int32(x0)

	for {
		pts = append(pts, Pt(int32(x), int32(y)))
		if int32(x) > maxX {
			maxX = int32(x)
		}

		x += dirx
		y += diry

		if x == x0 && y == y0 {
			break
		}

		// l/r sample the two pixels diagonally ahead of the current
		// heading: l is "ahead and to the left", r is "ahead and to
		// the right".
		l := scratch.Get(x+(dirx+diry-1)/2, y+(diry-dirx-1)/2)
		r := scratch.Get(x+(dirx-diry-1)/2, y+(diry+dirx-1)/2)

		switch {
		case r && !l:
			if resolveAmbiguousTurn(scratch, x, y, sign, policy) {
				dirx, diry = -diry, dirx // turn left
			} else {
				dirx, diry = diry, -dirx // turn right
			}
		case r:
			dirx, diry = -diry, dirx // turn left
		case !l:
			dirx, diry = diry, -dirx // turn right
		}
	}
	return pts, maxX
}

// resolveAmbiguousTurn decides, for the ambiguous 2x2 configuration at
// (x, y), whether the contour should turn left (true) or right (false),
// per spec 4.2 step 4.
func resolveAmbiguousTurn(scratch *Bitmap, x, y int, sign Sign, policy TurnPolicy) bool {
	switch policy {
	case TurnRight:
		return false
	case TurnLeft:
		return true
	case TurnBlack:
		return sign == SignPlus
	case TurnWhite:
		return sign == SignMinus
	case TurnMajority:
		return majority(scratch, x, y)
	case TurnMinority:
		return !majority(scratch, x, y)
	default:
		return majority(scratch, x, y)
	}
}

// majority votes over expanding square rings around (x, y) to find the
// deterministic, position-dependent "majority color" tie-break spec 9
// describes ("Randomness"): each candidate ring width is tried in turn and
// the first ring with a nonzero vote decides the outcome, so the same
// coordinate always yields the same bit.
func majority(b *Bitmap, x, y int) bool {
	for i := 2; i < 5; i++ {
		ct := 0
		for a := -i + 1; a <= i-1; a++ {
			ct += vote(b, x+a, y+i-1)
			ct += vote(b, x+i-1, y+a-1)
			ct += vote(b, x+a-1, y-i)
			ct += vote(b, x-i, y+a)
		}
		if ct > 0 {
			return true
		}
		if ct < 0 {
			return false
		}
	}
	return false
}

func vote(b *Bitmap, x, y int) int {
	if b.Get(x, y) {
		return 1
	}
	return -1
}

// erasePath XORs pts' interior out of scratch so the traced region is not
// rediscovered by a later FindNext (spec 4.2 step 7). For every edge
// between consecutive points that crosses a scanline (i.e. has a vertical
// component), it flips the bits on that scanline from the edge's column to
// the contour's right bound.
func erasePath(scratch *Bitmap, pts []Point, maxX int32) {
	if len(pts) == 0 {
		return
	}
	y1 := pts[0].Y
	for i := 1; i < len(pts); i++ {
		x, y := pts[i].X, pts[i].Y
		if y != y1 {
			row := y1
			if y < row {
				row = y
			}
			scratch.FlipRange(int(row), int(x), int(maxX)+1)
			y1 = y
		}
	}
}
