package potrace

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func squareBitmap(w, h, x0, y0, x1, y1 int) *Bitmap {
	b := NewBitmap(w, h)
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			b.Set(x, y)
		}
	}
	return b
}

func TestDecomposeSingleSquare(t *testing.T) {
	b := squareBitmap(10, 10, 3, 3, 6, 6) // 3x3 black square
	paths := Decompose(b, 0, TurnMinority)
	if assert.Len(t, paths, 1) {
		p := paths[0]
		assert.Equal(t, SignPlus, p.Sign)
		area := p.Area
		if area < 0 {
			area = -area
		}
		assert.Equal(t, 9, area)
	}
}

func TestDecomposeTurdSizeFiltersSmallRegions(t *testing.T) {
	b := squareBitmap(10, 10, 3, 3, 4, 4) // single pixel, area 1
	paths := Decompose(b, 2, TurnMinority)
	assert.Empty(t, paths)

	paths = Decompose(b, 0, TurnMinority)
	assert.Len(t, paths, 1)
}

func TestDecomposeAllWhiteProducesNoPaths(t *testing.T) {
	b := NewBitmap(20, 20)
	paths := Decompose(b, 0, TurnMinority)
	assert.Empty(t, paths)
}

func TestDecomposeSquareWithHole(t *testing.T) {
	b := squareBitmap(20, 20, 2, 2, 14, 14)
	for y := 5; y < 9; y++ {
		for x := 5; x < 9; x++ {
			b.ClearPixel(x, y)
		}
	}
	paths := Decompose(b, 0, TurnMinority)
	if !assert.Len(t, paths, 2) {
		return
	}
	BuildTree(paths)

	var outer, hole *Path
	for _, p := range paths {
		if p.Sign == SignPlus {
			outer = p
		} else {
			hole = p
		}
	}
	if assert.NotNil(t, outer) && assert.NotNil(t, hole) {
		assert.Equal(t, outer, hole.Parent)
		assert.Contains(t, outer.Children, hole)
	}
}

func TestDecomposeCheckerTurnPolicies(t *testing.T) {
	b := NewBitmap(8, 8)
	// Two diagonally touching black cells share an ambiguous corner.
	b.Set(2, 2)
	b.Set(3, 3)

	for _, tp := range []TurnPolicy{TurnBlack, TurnWhite, TurnLeft, TurnRight, TurnMinority, TurnMajority} {
		paths := Decompose(b, 0, tp)
		assert.NotEmptyf(t, paths, "policy %s produced no paths", tp)
	}
}
