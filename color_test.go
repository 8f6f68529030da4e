package potrace

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseCSSColorNamed(t *testing.T) {
	c, err := parseCSSColor("black")
	assert.NoError(t, err)
	assert.Equal(t, RGBA{0, 0, 0, 1}, c)

	c, err = parseCSSColor("WHITE")
	assert.NoError(t, err)
	assert.Equal(t, RGBA{1, 1, 1, 1}, c)
}

func TestParseCSSColorHex(t *testing.T) {
	c, err := parseCSSColor("#ff0000")
	assert.NoError(t, err)
	assert.InDelta(t, 1.0, c.R, 1e-9)
	assert.InDelta(t, 0.0, c.G, 1e-9)
	assert.InDelta(t, 0.0, c.B, 1e-9)

	c, err = parseCSSColor("#f00")
	assert.NoError(t, err)
	assert.InDelta(t, 1.0, c.R, 1e-9)

	_, err = parseCSSColor("#zzz")
	assert.Error(t, err)
}

func TestParseCSSColorRGBFunc(t *testing.T) {
	c, err := parseCSSColor("rgb(255, 0, 128)")
	assert.NoError(t, err)
	assert.InDelta(t, 1.0, c.R, 1e-9)
	assert.InDelta(t, 0.0, c.G, 1e-9)
	assert.InDelta(t, 128.0/255.0, c.B, 1e-9)

	c, err = parseCSSColor("rgba(0, 0, 0, 0.5)")
	assert.NoError(t, err)
	assert.InDelta(t, 0.5, c.A, 1e-9)
}

func TestParseCSSColorOrAutoTransparent(t *testing.T) {
	c, err := parseCSSColorOrAuto("auto")
	assert.NoError(t, err)
	assert.Equal(t, RGBA{}, c)

	c, err = parseCSSColorOrTransparent("transparent")
	assert.NoError(t, err)
	assert.Equal(t, RGBA{0, 0, 0, 0}, c)
}

func TestRGBAHex(t *testing.T) {
	assert.Equal(t, "#ff0000", RGBA{1, 0, 0, 1}.Hex())
	assert.Equal(t, "#ff000080", RGBA{1, 0, 0, 0.5019607843137255}.Hex())
}

func TestRGBABlend(t *testing.T) {
	a := RGBA{0, 0, 0, 1}
	b := RGBA{1, 1, 1, 1}
	mid := a.Blend(b, 0.5)
	assert.InDelta(t, 0.5, mid.R, 1e-9)
	assert.Equal(t, a, a.Blend(b, 0))
	assert.Equal(t, b, a.Blend(b, 1))
}

func TestResolveColorAuto(t *testing.T) {
	fallback := RGBA{0, 0, 0, 1}
	assert.Equal(t, fallback, resolveColor("auto", fallback))
	assert.Equal(t, RGBA{1, 0, 0, 1}, resolveColor("red", fallback))
	assert.Equal(t, fallback, resolveColor("not-a-color", fallback))
}

func TestResolveBackgroundTransparent(t *testing.T) {
	_, ok := resolveBackground("transparent")
	assert.False(t, ok)

	c, ok := resolveBackground("white")
	assert.True(t, ok)
	assert.Equal(t, RGBA{1, 1, 1, 1}, c)
}
