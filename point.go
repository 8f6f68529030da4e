package potrace

import "math"

// Point is an integer pixel-edge coordinate, as produced by contour
// tracing over a Bitmap.
type Point struct {
	X, Y int32
}

// Pt is a convenience constructor for Point.
func Pt(x, y int32) Point {
	return Point{X: x, Y: y}
}

// Add returns the vector sum of two points.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns the vector difference of two points.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// DPoint is a floating-point 2D coordinate used for control points and
// smoothed geometry.
type DPoint struct {
	X, Y float64
}

// DPt is a convenience constructor for DPoint.
func DPt(x, y float64) DPoint {
	return DPoint{X: x, Y: y}
}

// FromPoint converts an integer Point to a DPoint.
func FromPoint(p Point) DPoint {
	return DPoint{X: float64(p.X), Y: float64(p.Y)}
}

// Add returns the vector sum of two points.
func (p DPoint) Add(q DPoint) DPoint {
	return DPoint{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns the vector difference of two points.
func (p DPoint) Sub(q DPoint) DPoint {
	return DPoint{X: p.X - q.X, Y: p.Y - q.Y}
}

// Mul returns the point scaled by a scalar.
func (p DPoint) Mul(s float64) DPoint {
	return DPoint{X: p.X * s, Y: p.Y * s}
}

// Dot returns the dot product of two vectors.
func (p DPoint) Dot(q DPoint) float64 {
	return p.X*q.X + p.Y*q.Y
}

// Cross returns the 2D cross product (scalar): (p x q).
func (p DPoint) Cross(q DPoint) float64 {
	return p.X*q.Y - p.Y*q.X
}

// Length returns the Euclidean length of the vector.
func (p DPoint) Length() float64 {
	return math.Sqrt(p.X*p.X + p.Y*p.Y)
}

// Lerp linearly interpolates between p and q at parameter t.
func (p DPoint) Lerp(q DPoint, t float64) DPoint {
	return DPoint{
		X: p.X + (q.X-p.X)*t,
		Y: p.Y + (q.Y-p.Y)*t,
	}
}

// Midpoint returns the midpoint between p and q.
func (p DPoint) Midpoint(q DPoint) DPoint {
	return DPoint{X: (p.X + q.X) / 2, Y: (p.Y + q.Y) / 2}
}

// dpara returns twice the signed area of the triangle (a, b, c):
// cross(b-a, c-a). Positive when a->b->c turns counterclockwise in image
// coordinates (y down).
func dpara(a, b, c DPoint) float64 {
	return b.Sub(a).Cross(c.Sub(a))
}

// iprod returns the dot product (b-a).(c-a).
func iprod(a, b, c DPoint) float64 {
	return b.Sub(a).Dot(c.Sub(a))
}

// iprod2 returns the dot product (b-a).(d-c), the two-segment variant
// used by the vertex-adjustment quadratic form.
func iprod2(a, b, c, d DPoint) float64 {
	return b.Sub(a).Dot(d.Sub(c))
}

// ddist returns the Euclidean distance between a and b.
func ddist(a, b DPoint) float64 {
	return a.Sub(b).Length()
}
