package potrace

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// processedSquarePath runs the full per-path pipeline on a simple filled
// square and returns the traced Path, asserting no stage errors.
func processedSquarePath(t *testing.T, optCurve bool) *Path {
	t.Helper()
	b := squareBitmap(20, 20, 4, 4, 14, 14)
	paths := Decompose(b, 0, TurnMinority)
	if !assert.Len(t, paths, 1) {
		t.FailNow()
	}
	params := DefaultParams()
	params.OptCurve = optCurve
	err := processPath(paths[0], params)
	assert.NoError(t, err)
	return paths[0]
}

func TestProcessPathProducesClosedCurve(t *testing.T) {
	p := processedSquarePath(t, false)
	curve := p.priv.fcurve()
	assert.NotEmpty(t, curve)
	assert.GreaterOrEqual(t, len(curve), 4) // a square needs at least 4 vertices
}

func TestProcessPathHoleReversesWinding(t *testing.T) {
	b := squareBitmap(30, 30, 2, 2, 26, 26)
	for y := 10; y < 18; y++ {
		for x := 10; x < 18; x++ {
			b.ClearPixel(x, y)
		}
	}
	paths := Decompose(b, 0, TurnMinority)
	if !assert.Len(t, paths, 2) {
		t.FailNow()
	}
	BuildTree(paths)

	params := DefaultParams()
	optIncomplete := ProcessPaths(paths, params, nil)
	assert.False(t, optIncomplete)

	for _, p := range paths {
		assert.NotEmpty(t, p.priv.fcurve())
	}

	// Both contours are traced in the same direction, so after the hole's
	// vertices are reversed the two polygons wind in opposite directions.
	area := func(v []DPoint) float64 {
		s := 0.0
		for i := range v {
			s += v[i].Cross(v[(i+1)%len(v)])
		}
		return s
	}
	var outer, hole float64
	for _, p := range paths {
		if p.Sign == SignMinus {
			hole = area(p.priv.vertex)
		} else {
			outer = area(p.priv.vertex)
		}
	}
	assert.Less(t, outer*hole, 0.0)
}

func TestProcessPathsReportsProgress(t *testing.T) {
	b1 := squareBitmap(10, 10, 1, 1, 4, 4)
	b2 := squareBitmap(10, 10, 6, 6, 9, 9)
	var paths []*Path
	paths = append(paths, Decompose(b1, 0, TurnMinority)...)
	paths = append(paths, Decompose(b2, 0, TurnMinority)...)
	if !assert.Len(t, paths, 2) {
		t.FailNow()
	}

	var seen []float64
	ProcessPaths(paths, DefaultParams(), func(f float64) { seen = append(seen, f) })
	if assert.NotEmpty(t, seen) {
		assert.Equal(t, 1.0, seen[len(seen)-1])
	}
}

func TestProcessPathsEmptyListReportsComplete(t *testing.T) {
	var done bool
	optIncomplete := ProcessPaths(nil, DefaultParams(), func(f float64) {
		if f == 1 {
			done = true
		}
	})
	assert.False(t, optIncomplete)
	assert.True(t, done)
}

func TestSubrangeMapsNestedProgress(t *testing.T) {
	var got float64
	outer := func(f float64) { got = f }
	inner := subrange(outer, 0.5, 1.0)
	inner(0.5)
	assert.InDelta(t, 0.75, got, 1e-9)

	assert.Nil(t, subrange(nil, 0, 1))
}
