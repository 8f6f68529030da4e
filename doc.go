// Package potrace traces bitmap images into vector paths and composes
// multi-level posterized SVGs from grayscale images.
//
// # Overview
//
// potrace decomposes a 1-bit Bitmap into a tree of nested Path contours,
// fits each contour to a minimal-segment polygon, adjusts the polygon's
// vertices to sub-pixel positions, and smooths the result into a sequence
// of Bezier curve and corner segments, optionally merging adjacent curve
// segments to reduce the output's size. A Posterizer builds on the same
// pipeline to trace a grayscale image at several brightness thresholds and
// layer the resulting paths into a single multi-color SVG.
//
// # Quick Start
//
//	import "github.com/gogpu/potrace"
//
//	tp, err := potrace.New(potrace.WithTurdSize(4), potrace.WithOptCurve(true))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if err := tp.LoadImage(img); err != nil {
//	    log.Fatal(err)
//	}
//	svg, err := tp.GetSVG()
//
// # Architecture
//
// The library is organized into:
//   - Public API: Potrace, Posterizer, Params, functional Option constructors
//   - Pipeline stages: decompose, calc_sums/calc_lon, bestpolygon, adjust_vertices, smooth, opticurve
//   - Supporting types: Bitmap (packed bit storage), Path/PathList (contour tree), Curve/Segment
//   - Histogram: Otsu/multilevel thresholding feeding the posterizer's color stops
//   - cmd/potrace: the CLI front end (image decoding and file I/O live only there)
//
// # Coordinate System
//
// Uses standard image coordinates: origin (0,0) at top-left, X increases
// right, Y increases down. Output paths preserve this convention so they
// drop directly into an SVG viewBox.
//
// # Performance
//
// The pipeline is CPU-bound and single-threaded per path; ProcessPaths
// processes a PathList's paths sequentially, reporting progress as it
// goes. Callers needing parallelism across independent images should
// run separate Potrace instances concurrently.
package potrace
