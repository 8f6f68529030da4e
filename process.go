package potrace

import "fmt"

// ProgressFunc receives a completion fraction in [0, 1]. Progress is
// reported synchronously; implementations must not re-enter the tracing
// engine from within the callback (spec 5).
type ProgressFunc func(fraction float64)

// subrange returns a ProgressFunc that maps its own [0,1] domain onto the
// [lo, hi] slice of an outer ProgressFunc's domain, so nested stages can
// report progress without the outer caller knowing about the nesting.
// Modeled after the teacher's preference for small composable helpers over
// global state (gogpu-gg has no direct analogue for progress reporting
// itself, since its pipeline is a single synchronous draw call; this
// reuses the same "no leaking globals" discipline).
func subrange(outer ProgressFunc, lo, hi float64) ProgressFunc {
	if outer == nil {
		return nil
	}
	return func(fraction float64) {
		outer(lo + (hi-lo)*fraction)
	}
}

// processPath runs the full tracing pipeline on one jagged Path: prefix
// sums, longest-straight-run, optimal polygon, vertex adjustment,
// winding-consistent reversal, smoothing, and (optionally) curve
// optimization (spec 4.8).
func processPath(p *Path, params Params) error {
	pp := newPrivPath(p)
	p.priv = pp

	calcSums(pp)
	Logger().Debug("path stage", "stage", "calc_sums", "points", len(p.Points))

	calcLon(pp)
	bestPolygon(pp)
	adjustVertices(pp)

	if p.Sign == SignMinus {
		reverseVertices(pp)
	}

	smooth(pp, params.AlphaMax)

	if params.OptCurve {
		if err := opticurve(pp, params.OptTolerance); err != nil {
			pp.usingO = false
			Logger().Warn("curve optimization skipped", "error", err, "vertices", pp.m)
			return fmt.Errorf("%w: %v", ErrOptimizationIncomplete, err)
		}
		pp.usingO = true
		Logger().Debug("path stage", "stage", "opticurve", "vertices", pp.m, "segments", len(pp.ocurve))
	}
	return nil
}

// reverseVertices reverses the adjusted vertex order of a hole ("-")
// contour. Holes and outer ("+") contours are traced in the same direction,
// so after reversal a hole's curve winds opposite to its outer contour
// (spec 4.8 step 5).
func reverseVertices(pp *privPath) {
	v := pp.vertex
	for i, j := 0, len(v)-1; i < j; i, j = i+1, j-1 {
		v[i], v[j] = v[j], v[i]
	}
}

// ProcessPaths runs processPath over every path in the list, in order,
// reporting progress subdivided evenly across the paths. A per-path
// optimization failure (ErrOptimizationIncomplete from processPath) is
// non-fatal: the path falls back to its unoptimized curve, the returned
// optIncomplete is set to true, and tracing continues for the remaining
// paths.
func ProcessPaths(paths []*Path, params Params, progress ProgressFunc) (optIncomplete bool) {
	n := len(paths)
	if n == 0 {
		if progress != nil {
			progress(1)
		}
		return false
	}
	for i, p := range paths {
		stageProgress := subrange(progress, float64(i)/float64(n), float64(i+1)/float64(n))
		if err := processPath(p, params); err != nil {
			optIncomplete = true
		}
		if stageProgress != nil {
			stageProgress(1)
		}
	}
	return optIncomplete
}
