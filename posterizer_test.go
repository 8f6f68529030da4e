package potrace

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogpu/potrace/internal/fixture"
)

func TestGetRangesEqualInRangeMatchesReferenceExample(t *testing.T) {
	// spec worked example: steps=4, blackOnWhite range [0,255] -> 64,128,191,255
	got := getRangesEqualInRange(0, 255, 4)
	assert.Equal(t, []int{64, 128, 191, 255}, got)
}

func TestColorIntensitySpreadMatchesReferenceExample(t *testing.T) {
	h := NewHistogram([]uint8{0})
	total := 4
	want := []float64{0.25, 0.5, 0.75, 1.0}
	for i := 0; i < total; i++ {
		got := colorIntensity(h, FillSpread, 0, 0, i, total, true)
		assert.InDelta(t, want[i], got, 1e-9)
	}
}

func TestExtraStopNeededThreshold(t *testing.T) {
	assert.False(t, extraStopNeeded([]int{10, 20}, 0)) // span 10
	assert.True(t, extraStopNeeded([]int{10, 200}, 0)) // span 190 > 25
}

func TestBuildColorStopsHonorsExplicitStepsList(t *testing.T) {
	p := DefaultPosterizerParams()
	p.StepsList = []int{200, 50, 120}
	stops := buildColorStops(nil, p, 255)
	assert.Equal(t, []int{50, 120, 200}, stops)
}

func TestNewPosterizerDefaults(t *testing.T) {
	p, err := NewPosterizer()
	require.NoError(t, err)
	assert.Equal(t, StepsAuto, p.params.Steps)
	assert.Equal(t, FillSpread, p.params.FillStrategy)
}

func TestSetPosterizerParamsValidation(t *testing.T) {
	p, err := NewPosterizer()
	require.NoError(t, err)

	err = p.SetPosterizerParams(PosterizerParams{
		Params:       p.Params(),
		Steps:        4,
		FillStrategy: "not-a-strategy",
	})
	assert.Error(t, err)

	err = p.SetPosterizerParams(PosterizerParams{
		Params:    p.Params(),
		StepsList: []int{100, 50}, // not strictly increasing
	})
	assert.Error(t, err)

	err = p.SetPosterizerParams(PosterizerParams{
		Params:            p.Params(),
		Steps:             3,
		FillStrategy:      FillSpread,
		RangeDistribution: RangesEqual,
	})
	assert.NoError(t, err)
}

func TestPosterizerGetSVGEqualDistribution(t *testing.T) {
	p, err := NewPosterizer()
	require.NoError(t, err)
	require.NoError(t, p.SetPosterizerParams(PosterizerParams{
		Params:            p.Params(),
		Steps:             4,
		FillStrategy:      FillSpread,
		RangeDistribution: RangesEqual,
	}))
	require.NoError(t, p.LoadImage(fixture.Circle(80, 30)))

	svg, err := p.GetSVG()
	require.NoError(t, err)
	assert.Contains(t, svg, "<svg")
	assert.Contains(t, svg, "<path")
}

func TestGetRangesMatchesStepsListBeforeTracing(t *testing.T) {
	p, err := NewPosterizer()
	require.NoError(t, err)
	require.NoError(t, p.SetPosterizerParams(PosterizerParams{
		Params:            p.Params(),
		StepsList:         []int{50, 120, 200},
		FillStrategy:      FillSpread,
		RangeDistribution: RangesAuto,
	}))
	require.NoError(t, p.LoadImage(fixture.Circle(80, 30)))

	ranges, err := p.GetRanges()
	require.NoError(t, err)
	assert.Equal(t, []int{50, 120, 200}, ranges)
}

func TestGetRangesErrorsBeforeLoadImage(t *testing.T) {
	p, err := NewPosterizer()
	require.NoError(t, err)
	_, err = p.GetRanges()
	assert.ErrorIs(t, err, ErrUnloadedImage)
}

func TestGetLayersFillIntensityIncreasesTowardForeground(t *testing.T) {
	p, err := NewPosterizer()
	require.NoError(t, err)
	require.NoError(t, p.SetPosterizerParams(PosterizerParams{
		Params:            p.Params(),
		Steps:             4,
		FillStrategy:      FillSpread,
		RangeDistribution: RangesEqual,
	}))
	require.NoError(t, p.LoadImage(fixture.Circle(80, 30)))

	layers, err := p.GetLayers()
	require.NoError(t, err)
	require.Len(t, layers, 4)

	// blackOnWhite: foreground is black, so higher intensity stops should
	// sit closer to black (lower sum of channels) than lower ones.
	sum := func(c RGBA) float64 { return c.R + c.G + c.B }
	for i := 1; i < len(layers); i++ {
		assert.LessOrEqual(t, sum(layers[i].Fill), sum(layers[i-1].Fill))
	}
}

func TestGetLayersErrorsBeforeLoadImage(t *testing.T) {
	p, err := NewPosterizer()
	require.NoError(t, err)
	_, err = p.GetLayers()
	assert.ErrorIs(t, err, ErrUnloadedImage)
}

func TestPosterizerGetSVGExplicitStepsList(t *testing.T) {
	p, err := NewPosterizer()
	require.NoError(t, err)
	require.NoError(t, p.SetPosterizerParams(PosterizerParams{
		Params:            p.Params(),
		StepsList:         []int{64, 128, 255},
		FillStrategy:      FillSpread,
		RangeDistribution: RangesAuto,
	}))
	require.NoError(t, p.LoadImage(fixture.Circle(80, 30)))

	svg, err := p.GetSVG()
	require.NoError(t, err)
	assert.Contains(t, svg, "<svg")
}
