package potrace

import (
	"math"
	"sort"
)

// defaultPosterizeSteps is used when Steps == StepsAuto.
const defaultPosterizeSteps = 4

// extraStopThreshold is the reference heuristic constant (spec 9, Open
// Question 1): when Steps is StepsAuto and the posterizer's last auto/equal
// range is wider than this many luminance units, an extra stop is inserted
// to preserve dark/bright detail. An explicit Steps count or StepsList gets
// no extra stop. Preserved exactly for byte-compatible output.
const extraStopThreshold = 25

// PosterizerParams extends Params with the posterizer's multi-threshold
// layering controls (spec 4.10, spec 6 "Posterizer").
type PosterizerParams struct {
	Params
	Steps             int   // step count, or StepsAuto; ignored if StepsList is set
	StepsList         []int // explicit thresholds, each 0..255, strictly increasing
	FillStrategy      string
	RangeDistribution string
}

// DefaultPosterizerParams returns the posterizer's conventional defaults.
func DefaultPosterizerParams() PosterizerParams {
	return PosterizerParams{
		Params:            DefaultParams(),
		Steps:             StepsAuto,
		FillStrategy:      FillSpread,
		RangeDistribution: RangesAuto,
	}
}

// ColorStop is a single posterizer layer: a threshold paired with the
// fill intensity computed for it (spec 3, "Posterizer layer").
type ColorStop struct {
	Threshold      int
	ColorIntensity float64
}

func validFillStrategy(s string) bool {
	switch s {
	case FillSpread, FillDominant, FillMean, FillMedian:
		return true
	default:
		return false
	}
}

func validRangeDistribution(s string) bool {
	switch s {
	case RangesAuto, RangesEqual:
		return true
	default:
		return false
	}
}

// resolvePosterizerRange returns the [min, max] luminance band the
// posterizer subdivides into steps: the dark side of threshold when
// blackOnWhite, else the light side (spec 4.10 step 2).
func resolvePosterizerRange(threshold int, blackOnWhite bool) (min, max int) {
	if blackOnWhite {
		return 0, threshold
	}
	return threshold, 255
}

// getRangesEqualInRange partitions [min, max] into `steps` equally spaced
// stops, each rounded to the nearest integer; the last stop always equals
// max.
func getRangesEqualInRange(min, max, steps int) []int {
	if steps <= 0 {
		return nil
	}
	span := float64(max - min)
	stops := make([]int, steps)
	for i := 1; i <= steps; i++ {
		stops[i-1] = min + int(math.Round(span*float64(i)/float64(steps)))
	}
	return stops
}

// getRangesAutoInRange places `steps` stops via multilevel Otsu on the
// histogram restricted to [min, max]; the last stop always equals max so
// every stop set reaches the band's outer edge.
func getRangesAutoInRange(hist *Histogram, min, max, steps int) []int {
	if steps <= 1 {
		return []int{max}
	}
	interior := hist.MultilevelThresholds(steps-1, min, max-1)
	stops := append(append([]int{}, interior...), max)
	sort.Ints(stops)
	return stops
}

// extraStopNeeded reports whether the final range spans more than
// extraStopThreshold units (spec 4.10 step 2).
func extraStopNeeded(stops []int, min int) bool {
	if len(stops) == 0 {
		return false
	}
	prev := min
	if len(stops) > 1 {
		prev = stops[len(stops)-2]
	}
	return stops[len(stops)-1]-prev > extraStopThreshold
}

// insertExtraStop splits the final range in half, inserting a new stop at
// its midpoint.
func insertExtraStop(stops []int, min int) []int {
	prev := min
	if len(stops) > 1 {
		prev = stops[len(stops)-2]
	}
	last := stops[len(stops)-1]
	mid := prev + (last-prev)/2
	out := append([]int{}, stops[:len(stops)-1]...)
	out = append(out, mid, last)
	return out
}

// buildColorStops computes the ordered stop thresholds for a resolved
// top-level threshold, honoring an explicit StepsList when given
// (spec 4.10 step 2).
func buildColorStops(hist *Histogram, p PosterizerParams, resolvedThreshold int) []int {
	if len(p.StepsList) > 0 {
		stops := append([]int(nil), p.StepsList...)
		sort.Ints(stops)
		return stops
	}

	steps := p.Steps
	if steps == StepsAuto {
		steps = defaultPosterizeSteps
	}

	min, max := resolvePosterizerRange(resolvedThreshold, p.BlackOnWhite)

	var stops []int
	if p.RangeDistribution == RangesEqual {
		stops = getRangesEqualInRange(min, max, steps)
	} else {
		stops = getRangesAutoInRange(hist, min, max, steps)
	}

	if p.Steps == StepsAuto && extraStopNeeded(stops, min) {
		stops = insertExtraStop(stops, min)
	}
	return stops
}

// colorIntensity computes the fill intensity for one stop (spec 4.10
// step 3). segMin/segMax is the histogram segment between the previous
// stop and this one; stopIndex/totalStops place this stop within the
// SPREAD sequence.
func colorIntensity(hist *Histogram, strategy string, segMin, segMax, stopIndex, totalStops int, blackOnWhite bool) float64 {
	if strategy == FillSpread {
		return float64(stopIndex+1) / float64(totalStops)
	}

	if segMin > segMax {
		return 0
	}
	count, _ := hist.rangeStats(segMin, segMax)
	if count == 0 {
		return 0
	}

	baseColor := 0.0
	if blackOnWhite {
		baseColor = 255
	}

	var g float64
	switch strategy {
	case FillMean:
		g = hist.StatsRange(segMin, segMax).Mean
	case FillMedian:
		g = hist.StatsRange(segMin, segMax).Median
	default: // FillDominant
		g = float64(hist.Dominant(segMin, segMax, 1))
	}
	return math.Abs(g-baseColor) / 255.0
}

// buildLayers resolves stop thresholds into ColorStops with their
// intensities computed, filtering out zero-intensity stops (spec 4.10
// steps 3-4).
func buildLayers(hist *Histogram, p PosterizerParams, resolvedThreshold int) []ColorStop {
	min, _ := resolvePosterizerRange(resolvedThreshold, p.BlackOnWhite)
	stops := buildColorStops(hist, p, resolvedThreshold)

	layers := make([]ColorStop, 0, len(stops))
	prev := min
	for i, stop := range stops {
		intensity := colorIntensity(hist, p.FillStrategy, prev, stop, i, len(stops), p.BlackOnWhite)
		if intensity > 0 {
			layers = append(layers, ColorStop{Threshold: stop, ColorIntensity: intensity})
		}
		prev = stop + 1
	}
	return layers
}

// layerFillColor blends from the canvas's base side (white when
// blackOnWhite, black otherwise) toward the requested foreground color by
// colorIntensity, for opaque stacked layers (spec 4.10, "Fill color
// derivation"): a low-intensity stop (a faint tonal band) stays close to
// the canvas base, a full-intensity stop (the darkest/brightest band)
// resolves to the foreground color itself.
func layerFillColor(foreground RGBA, blackOnWhite bool, intensity float64) RGBA {
	start := RGBA{R: 1, G: 1, B: 1, A: 1}
	if !blackOnWhite {
		start = RGBA{R: 0, G: 0, B: 0, A: 1}
	}
	return start.Blend(foreground, intensity)
}

// layerCascadeAlpha returns the per-layer opacity used by the
// steps>10 transparent-cascade compositing path (spec 4.10 step 6,
// spec 9 Open Question 2): each successive back-to-front layer gets a
// smaller share of the remaining opacity, so overdraw brightening stays
// bounded regardless of layer count.
func layerCascadeAlpha(index, total int) float64 {
	if total <= 0 {
		return 1
	}
	return 1 - float64(index)/float64(total)
}
