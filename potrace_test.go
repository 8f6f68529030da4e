package potrace

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogpu/potrace/internal/fixture"
)

func TestNewAppliesOptions(t *testing.T) {
	tr, err := New(WithThreshold(100), WithTurdSize(5))
	require.NoError(t, err)
	assert.Equal(t, 100, tr.Params().Threshold)
	assert.Equal(t, 5, tr.Params().TurdSize)
}

func TestNewRejectsInvalidOption(t *testing.T) {
	_, err := New(WithThreshold(999))
	assert.ErrorIs(t, err, ErrInvalidParameter)
}

func TestGetSVGBeforeLoadImageErrors(t *testing.T) {
	tr, err := New()
	require.NoError(t, err)
	_, err = tr.GetSVG()
	assert.ErrorIs(t, err, ErrUnloadedImage)
}

func TestTraceSquareProducesSVGPath(t *testing.T) {
	tr, err := New()
	require.NoError(t, err)
	require.NoError(t, tr.LoadImage(fixture.Square(40, 40, 10, 10, 30, 30)))

	svg, err := tr.GetSVG()
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(svg, "<svg"))
	assert.Contains(t, svg, "<path")
	assert.Contains(t, svg, `width="40" height="40"`)
}

func TestGetSVGIsIdempotent(t *testing.T) {
	tr, err := New()
	require.NoError(t, err)
	require.NoError(t, tr.LoadImage(fixture.Square(30, 30, 5, 5, 20, 20)))

	first, err := tr.GetSVG()
	require.NoError(t, err)
	second, err := tr.GetSVG()
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestSetParametersInvalidatesCache(t *testing.T) {
	tr, err := New()
	require.NoError(t, err)
	require.NoError(t, tr.LoadImage(fixture.Square(30, 30, 5, 5, 20, 20)))

	first, err := tr.GetSVG()
	require.NoError(t, err)

	require.NoError(t, tr.SetParameters(WithThreshold(50)))
	assert.True(t, tr.dirty)
	assert.False(t, tr.cachedSVGValid)
	second, err := tr.GetSVG()
	require.NoError(t, err)

	// A different threshold may or may not change the traced geometry for
	// this fixture, so the two SVGs are not compared; the property under
	// test is that the change marks the trace dirty and the SVG cache stale.
	_ = first
	_ = second
}

func TestSetParametersRejectsInvalidLeavesStateUnchanged(t *testing.T) {
	tr, err := New(WithThreshold(77))
	require.NoError(t, err)
	err = tr.SetParameters(WithThreshold(77), WithTurdSize(-5))
	assert.Error(t, err)
	assert.Equal(t, 77, tr.Params().Threshold) // staged atomically, rejected as a whole
}

func TestLoadImageRejectsEmptyBounds(t *testing.T) {
	tr, err := New()
	require.NoError(t, err)
	err = tr.LoadImage(fixture.White(0, 0))
	assert.ErrorIs(t, err, ErrImageDecodingFailed)
}

func TestGetSymbolOmitsFillAndBackground(t *testing.T) {
	tr, err := New()
	require.NoError(t, err)
	require.NoError(t, tr.LoadImage(fixture.Square(20, 20, 4, 4, 16, 16)))

	sym, err := tr.GetSymbol("shape")
	require.NoError(t, err)
	assert.Contains(t, sym, "<symbol")
	assert.Contains(t, sym, `id="shape"`)
	assert.NotContains(t, sym, "fill=\"#")
}

func TestAllWhiteImageProducesEmptyPath(t *testing.T) {
	tr, err := New(WithThreshold(128))
	require.NoError(t, err)
	require.NoError(t, tr.LoadImage(fixture.White(10, 10)))

	svg, err := tr.GetSVG()
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(svg, "<svg"))
	assert.Contains(t, svg, `<path d=""`)
}

func TestCircleFixtureTraces(t *testing.T) {
	tr, err := New()
	require.NoError(t, err)
	require.NoError(t, tr.LoadImage(fixture.Circle(100, 40)))

	svg, err := tr.GetSVG()
	require.NoError(t, err)
	assert.Contains(t, svg, "<path")
	assert.Contains(t, svg, `d="M`)
}
