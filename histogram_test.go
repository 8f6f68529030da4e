package potrace

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func bimodalSamples(n int, lo, hi uint8) []uint8 {
	samples := make([]uint8, 0, n)
	for i := 0; i < n/2; i++ {
		samples = append(samples, lo)
	}
	for i := 0; i < n-n/2; i++ {
		samples = append(samples, hi)
	}
	return samples
}

func TestHistogramRangeStats(t *testing.T) {
	h := NewHistogram([]uint8{10, 10, 20, 30})
	count, sum := h.rangeStats(0, 255)
	assert.Equal(t, 4, count)
	assert.Equal(t, 70, sum)

	count, sum = h.rangeStats(10, 20)
	assert.Equal(t, 3, count)
	assert.Equal(t, 40, sum)

	count, _ = h.rangeStats(21, 29)
	assert.Equal(t, 0, count)
}

func TestHistogramAutoThresholdSeparatesBimodalClusters(t *testing.T) {
	h := NewHistogram(bimodalSamples(200, 10, 200))
	th := h.AutoThreshold(0, 255)
	assert.Greater(t, th, 10)
	assert.Less(t, th, 200)
}

func TestHistogramAutoThresholdDegenerateRange(t *testing.T) {
	h := NewHistogram([]uint8{100, 100, 100})
	assert.Equal(t, 5, h.AutoThreshold(5, 5))
}

func TestHistogramMultilevelThresholdsOrderedAndInRange(t *testing.T) {
	samples := bimodalSamples(100, 20, 60)
	samples = append(samples, bimodalSamples(100, 120, 220)...)
	h := NewHistogram(samples)

	ts := h.MultilevelThresholds(3, 0, 255)
	if assert.Len(t, ts, 3) {
		for i := 1; i < len(ts); i++ {
			assert.Less(t, ts[i-1], ts[i])
		}
		for _, v := range ts {
			assert.GreaterOrEqual(t, v, 1)
			assert.LessOrEqual(t, v, 254)
		}
	}
}

func TestHistogramDominant(t *testing.T) {
	samples := append(bimodalSamples(10, 50, 50), bimodalSamples(40, 200, 200)...)
	h := NewHistogram(samples)
	assert.Equal(t, 200, h.Dominant(0, 255, 0))
}

func TestHistogramStatsRangeMeanMedian(t *testing.T) {
	h := NewHistogram([]uint8{10, 20, 30, 40, 50})
	s := h.StatsRange(0, 255)
	assert.Equal(t, 5, s.Pixels)
	assert.InDelta(t, 30, s.Mean, 1e-9)
	assert.Equal(t, float64(30), s.Median)
	assert.Equal(t, 5, s.Unique)
	assert.Equal(t, 10, s.Min)
	assert.Equal(t, 50, s.Max)

	// repeated call hits the LRU cache path
	s2 := h.StatsRange(0, 255)
	assert.Equal(t, s, s2)
}

func TestLuminance8Grayscale(t *testing.T) {
	assert.Equal(t, uint8(0), Luminance8(0, 0, 0))
	assert.Equal(t, uint8(255), Luminance8(255, 255, 255))
}
