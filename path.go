package potrace

// Sign distinguishes outer contours from holes.
type Sign byte

const (
	// SignPlus marks an outer ("+") contour, counterclockwise in image
	// coordinates.
	SignPlus Sign = '+'
	// SignMinus marks a hole ("-") contour, clockwise in image
	// coordinates.
	SignMinus Sign = '-'
)

// Path is a closed polyline of integer edge points bounding a connected
// region of one color, together with its place in the containment tree.
//
// Modeled after gogpu-gg's Path (a sequence of path elements with a
// start/current point), but jagged Potrace contours are always closed
// integer polylines rather than a free mix of line/curve elements, so the
// element-tag union is replaced by a flat point slice plus the
// area/sign/tree bookkeeping the decomposition stage needs.
type Path struct {
	Points []Point // cyclic, closed: Points[0] == Points[len-1] is implied, not stored twice
	Area   int
	Sign   Sign

	Parent   *Path
	Children []*Path

	priv *privPath
}

// Len returns the number of points in the jagged contour.
func (p *Path) Len() int { return len(p.Points) }

// At returns the point at cyclic index i (i may be negative or >= Len()).
func (p *Path) At(i int) Point {
	n := len(p.Points)
	i = ((i % n) + n) % n
	return p.Points[i]
}

// PathList is the flat result of bitmap decomposition, later organized
// into a containment tree via BuildTree.
type PathList struct {
	Paths []*Path
}

// signedArea computes the integer signed area enclosed by a closed integer
// polyline using the negated shoelace sum -sum(x_i * (y_{i+1} - y_i)).
// Contours traced by Decompose come out positive: a single black pixel
// gives 1 and a filled 5x5 square gives 25.
func signedArea(points []Point) int {
	var area int
	n := len(points)
	for i := 0; i < n; i++ {
		p0 := points[i]
		p1 := points[(i+1)%n]
		area -= int(p0.X) * int(p1.Y-p0.Y)
	}
	return area
}

// pointInPolygon tests whether pt lies strictly inside the closed integer
// polygon using a horizontal ray-casting test. Used to build the
// containment tree (spec 4.2 step 9).
func pointInPolygon(points []Point, pt Point) bool {
	inside := false
	n := len(points)
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		pi, pj := points[i], points[j]
		if (pi.Y > pt.Y) != (pj.Y > pt.Y) {
			xCross := float64(pj.X-pi.X)*float64(pt.Y-pi.Y)/float64(pj.Y-pi.Y) + float64(pi.X)
			if float64(pt.X) < xCross {
				inside = !inside
			}
		}
	}
	return inside
}

// BuildTree assigns Parent/Children links among the flat path list by
// nesting depth: for each path, its parent is the smallest-area path that
// contains one of its points. Outer "+" paths end up with "-" children and
// vice versa (spec 4.2 step 9, testable property 7).
func BuildTree(paths []*Path) {
	for _, p := range paths {
		p.Parent = nil
		p.Children = nil
	}
	for _, p := range paths {
		if len(p.Points) == 0 {
			continue
		}
		probe := p.Points[0]
		var best *Path
		bestArea := 0
		for _, cand := range paths {
			if cand == p || len(cand.Points) == 0 {
				continue
			}
			if !pointInPolygon(cand.Points, probe) {
				continue
			}
			area := cand.Area
			if area < 0 {
				area = -area
			}
			if best == nil || area < bestArea {
				best = cand
				bestArea = area
			}
		}
		if best != nil {
			p.Parent = best
			best.Children = append(best.Children, p)
		}
	}
}
