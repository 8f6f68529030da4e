package potrace

import (
	"math"
	"sort"

	lru "github.com/hashicorp/golang-lru"

	"github.com/gogpu/potrace/internal/numeric"
)

// Histogram is a 256-bin count of an 8-bit channel (luminance by default),
// plus lazily built cumulative tables used by Otsu-style thresholding
// (spec 4.9). Construct with NewHistogram or NewLuminanceHistogram.
type Histogram struct {
	bins   [256]int
	pixels int

	cumCount [256]int // cumCount[i] = count of samples with value <= i
	cumSum   [256]int // cumSum[i] = sum of values <= i, weighted by count
	cumReady bool

	otsuH    [256][256]float64 // otsuH[a][b] = w(a..b) * mean(a..b)^2, a<=b
	otsuBuilt bool

	statsCache *lru.Cache // (levelMin,levelMax) -> *Stats
}

// NewHistogram builds a histogram over raw 8-bit samples (one channel's
// worth of pixel values).
func NewHistogram(samples []uint8) *Histogram {
	h := &Histogram{}
	for _, s := range samples {
		h.bins[s]++
	}
	h.pixels = len(samples)
	h.statsCache, _ = lru.New(64)
	return h
}

// luminanceWeights are the Rec. 709 luma coefficients (spec 4.9).
const (
	lumaR = 0.2126
	lumaG = 0.7152
	lumaB = 0.0722
)

// Luminance8 converts an RGB triple to an 8-bit luminance sample, rounded
// to nearest.
func Luminance8(r, g, b uint8) uint8 {
	v := lumaR*float64(r) + lumaG*float64(g) + lumaB*float64(b)
	return uint8(clamp255(v))
}

// NewLuminanceHistogram builds a histogram from interleaved RGBA pixel
// data (len(pixels) a multiple of 4, alpha ignored).
func NewLuminanceHistogram(pixels []byte) *Histogram {
	n := len(pixels) / 4
	samples := make([]uint8, n)
	for i := 0; i < n; i++ {
		p := pixels[i*4:]
		samples[i] = Luminance8(p[0], p[1], p[2])
	}
	return NewHistogram(samples)
}

func (h *Histogram) ensureCumulative() {
	if h.cumReady {
		return
	}
	count, sum := 0, 0
	for v := 0; v < 256; v++ {
		count += h.bins[v]
		sum += v * h.bins[v]
		h.cumCount[v] = count
		h.cumSum[v] = sum
	}
	h.cumReady = true
}

// rangeStats returns (count, sum) of samples with value in [a, b].
func (h *Histogram) rangeStats(a, b int) (count, sum int) {
	h.ensureCumulative()
	if a > b || b < 0 || a > 255 {
		return 0, 0
	}
	a = numeric.Clamp(a, 0, 255)
	b = numeric.Clamp(b, 0, 255)
	count = h.cumCount[b]
	sum = h.cumSum[b]
	if a > 0 {
		count -= h.cumCount[a-1]
		sum -= h.cumSum[a-1]
	}
	return count, sum
}

func (h *Histogram) ensureOtsuTable() {
	if h.otsuBuilt {
		return
	}
	total := float64(h.pixels)
	for a := 0; a < 256; a++ {
		for b := a; b < 256; b++ {
			count, sum := h.rangeStats(a, b)
			if count == 0 || total == 0 {
				h.otsuH[a][b] = 0
				continue
			}
			w := float64(count) / total
			mu := float64(sum) / float64(count)
			h.otsuH[a][b] = w * mu * mu
		}
	}
	h.otsuBuilt = true
}

// betweenClassScore returns the multilevel-Otsu objective (sum of
// within-segment w*mu^2 across the k+1 segments implied by boundaries
// min, t_1, ..., t_k, max) — maximizing this is equivalent to maximizing
// between-class variance since the overall mean/variance are fixed.
func (h *Histogram) betweenClassScore(min int, thresholds []int, max int) float64 {
	h.ensureOtsuTable()
	bounds := make([]int, 0, len(thresholds)+2)
	bounds = append(bounds, min)
	bounds = append(bounds, thresholds...)
	bounds = append(bounds, max+1)

	score := 0.0
	for i := 0; i < len(bounds)-1; i++ {
		a, b := bounds[i], bounds[i+1]-1
		if a > b {
			continue
		}
		score += h.otsuH[a][b]
	}
	return score
}

// AutoThreshold picks the single threshold t in [min, max] maximizing
// between-class variance (multilevel Otsu with k=1), computed in O(range)
// from the cached weight table (spec 4.9, "Auto threshold"). When a run of
// adjacent thresholds ties for the best score (an empty gap between two
// clusters), the middle of that run is returned.
func (h *Histogram) AutoThreshold(min, max int) int {
	if min >= max {
		return min
	}
	h.ensureOtsuTable()
	best, bestScore, last := min, -1.0, min
	for t := min; t < max; t++ {
		score := h.betweenClassScore(min, []int{t + 1}, max)
		if score > bestScore {
			bestScore = score
			best = t
			last = t
		} else if score == bestScore && last == t-1 {
			last = t
		}
	}
	return (best + last) / 2
}

// MultilevelThresholds enumerates increasing k-tuples t_1 < ... < t_k in
// (min, max] and returns the tuple maximizing between-class variance
// (spec 4.9, "Multilevel thresholds"). Brute-force: interactive for k<=4;
// for k>=5 the search space grows combinatorially, as documented.
func (h *Histogram) MultilevelThresholds(amount, min, max int) []int {
	if amount <= 0 {
		return nil
	}
	h.ensureOtsuTable()

	best := make([]int, amount)
	bestScore := -1.0
	combo := make([]int, amount)

	var rec func(pos, lo int)
	rec = func(pos, lo int) {
		if pos == amount {
			score := h.betweenClassScore(min, combo, max)
			if score > bestScore {
				bestScore = score
				copy(best, combo)
			}
			return
		}
		hi := max - (amount - pos - 1)
		for t := lo; t <= hi; t++ {
			combo[pos] = t
			rec(pos+1, t+1)
		}
	}
	rec(0, min+1)
	return best
}

// Dominant returns the bin in [min, max] with the highest count. When
// tolerance > 0, it instead picks the center of the (2*tolerance+1)-wide
// window with the highest summed count (spec 4.9, "Dominant color").
func (h *Histogram) Dominant(min, max, tolerance int) int {
	if min > max {
		return min
	}
	if tolerance <= 0 {
		best, bestCount := min, -1
		for v := min; v <= max; v++ {
			if h.bins[v] > bestCount {
				bestCount = h.bins[v]
				best = v
			}
		}
		return best
	}

	best, bestCount := min, -1
	for center := min; center <= max; center++ {
		lo := numeric.Clamp(center-tolerance, min, max)
		hi := numeric.Clamp(center+tolerance, min, max)
		count, _ := h.rangeStats(lo, hi)
		if count > bestCount {
			bestCount = count
			best = center
		}
	}
	return best
}

// Stats summarizes a histogram range (spec 4.9, "Stats").
type Stats struct {
	Pixels int
	Mean   float64
	Median float64
	StdDev float64
	Unique int
	Min    int
	Max    int
}

type statsKey struct{ min, max int }

// StatsRange returns (and caches by (min,max)) summary statistics over the
// inclusive range [min, max].
func (h *Histogram) StatsRange(min, max int) Stats {
	key := statsKey{min, max}
	if h.statsCache != nil {
		if cached, ok := h.statsCache.Get(key); ok {
			return cached.(Stats)
		}
	}

	var s Stats
	s.Min, s.Max = 255, 0
	count, sum := h.rangeStats(min, max)
	s.Pixels = count
	if count == 0 {
		if h.statsCache != nil {
			h.statsCache.Add(key, s)
		}
		return s
	}
	s.Mean = float64(sum) / float64(count)

	var sqDiff float64
	cumulative := 0
	medianTarget := (count + 1) / 2
	medianFound := false
	for v := min; v <= max; v++ {
		c := h.bins[v]
		if c == 0 {
			continue
		}
		s.Unique++
		if v < s.Min {
			s.Min = v
		}
		if v > s.Max {
			s.Max = v
		}
		d := float64(v) - s.Mean
		sqDiff += d * d * float64(c)
		cumulative += c
		if !medianFound && cumulative >= medianTarget {
			s.Median = float64(v)
			medianFound = true
		}
	}
	s.StdDev = math.Sqrt(sqDiff / float64(count))

	if h.statsCache != nil {
		h.statsCache.Add(key, s)
	}
	return s
}

// sortedByFrequency returns bin values in [min,max] ordered by descending
// count, ties broken by ascending value. The order is computed afresh on
// every call; nothing is cached.
func (h *Histogram) sortedByFrequency(min, max int) []int {
	vals := make([]int, 0, max-min+1)
	for v := min; v <= max; v++ {
		if h.bins[v] > 0 {
			vals = append(vals, v)
		}
	}
	sort.Slice(vals, func(i, j int) bool {
		if h.bins[vals[i]] != h.bins[vals[j]] {
			return h.bins[vals[i]] > h.bins[vals[j]]
		}
		return vals[i] < vals[j]
	})
	return vals
}
