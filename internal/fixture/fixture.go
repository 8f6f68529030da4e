// Package fixture generates synthetic bitmaps and images for tests,
// standing in for decoded photographs without requiring test-data files
// on disk.
package fixture

import (
	"image"
	"image/color"
	"math"

	"golang.org/x/image/vector"
)

// White returns a w x h all-white grayscale image.
func White(w, h int) *image.Gray {
	img := image.NewGray(image.Rect(0, 0, w, h))
	for i := range img.Pix {
		img.Pix[i] = 0xff
	}
	return img
}

// Square returns a w x h white image with a filled black rectangle over
// [x0, y0, x1, y1) — a minimal single-contour fixture.
func Square(w, h, x0, y0, x1, y1 int) *image.Gray {
	img := White(w, h)
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			img.SetGray(x, y, color.Gray{Y: 0})
		}
	}
	return img
}

// Checker returns a w x h image tiled with cell x cell black/white
// squares, starting black at the origin — the ambiguous-turn fixture
// every ambiguous 2x2 block in a checkerboard exercises a turn policy.
func Checker(w, h, cell int) *image.Gray {
	img := image.NewGray(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			black := ((x/cell)+(y/cell))%2 == 0
			v := uint8(0xff)
			if black {
				v = 0
			}
			img.SetGray(x, y, color.Gray{Y: v})
		}
	}
	return img
}

// Circle returns a size x size white image with a filled black disc of
// the given radius centered in the frame, rasterized with
// golang.org/x/image/vector for an antialiased (non-axis-aligned) contour
// fixture.
func Circle(size int, radius float32) *image.Gray {
	z := vector.NewRasterizer(size, size)
	cx, cy := float32(size)/2, float32(size)/2
	const segments = 64
	z.MoveTo(cx+radius, cy)
	for i := 1; i <= segments; i++ {
		theta := 2 * math.Pi * float64(i) / segments
		sin, cos := math.Sincos(theta)
		z.LineTo(cx+radius*float32(cos), cy+radius*float32(sin))
	}
	z.ClosePath()

	alpha := image.NewAlpha(image.Rect(0, 0, size, size))
	z.Draw(alpha, alpha.Bounds(), image.NewUniform(color.Alpha{A: 0xff}), image.Point{})

	img := image.NewGray(image.Rect(0, 0, size, size))
	for i, a := range alpha.Pix {
		img.Pix[i] = 0xff - a // opaque coverage -> black disc on white
	}
	return img
}

// Bimodal returns luminance samples split between a dark cluster centered
// near lo and a light cluster centered near hi, for histogram/Otsu tests
// that need a clearly separable two-peak distribution.
func Bimodal(count int, lo, hi uint8, spread int) []uint8 {
	samples := make([]uint8, count)
	for i := range samples {
		center := lo
		if i%2 == 1 {
			center = hi
		}
		offset := (i%(2*spread+1) - spread)
		v := int(center) + offset
		if v < 0 {
			v = 0
		}
		if v > 255 {
			v = 255
		}
		samples[i] = uint8(v)
	}
	return samples
}
