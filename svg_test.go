package potrace

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatCoordTrimsTrailingZeros(t *testing.T) {
	assert.Equal(t, "1", formatCoord(1.0))
	assert.Equal(t, "1.5", formatCoord(1.5))
	assert.Equal(t, "1.234", formatCoord(1.2344))
	assert.Equal(t, "1.235", formatCoord(1.2346))
	assert.Equal(t, "0", formatCoord(-0.0001))
	assert.Equal(t, "-2.5", formatCoord(-2.5))
}

func TestCurveToDCornerAndCurveSegments(t *testing.T) {
	curve := Curve{
		{Tag: Corner, C: [3]DPoint{{}, {X: 0, Y: 0}, {X: 1, Y: 0}}},
		{Tag: CurveSeg, C: [3]DPoint{{X: 1.5, Y: 0.5}, {X: 1.5, Y: 1.5}, {X: 1, Y: 2}}},
		{Tag: Corner, C: [3]DPoint{{}, {X: 0, Y: 2}, {X: 0, Y: 0}}},
	}
	var b strings.Builder
	curveToD(&b, curve, 1, 1)
	d := b.String()

	assert.True(t, strings.HasPrefix(d, "M0,0"), d)
	assert.Contains(t, d, "C1.5,0.5 1.5,1.5 1,2")
	assert.Contains(t, d, "L0,2 L0,0")
	assert.True(t, strings.HasSuffix(d, "Z"), d)
}

func TestCurveToDAppliesScale(t *testing.T) {
	curve := Curve{
		{Tag: Corner, C: [3]DPoint{{}, {X: 1, Y: 1}, {X: 2, Y: 1}}},
	}
	var b strings.Builder
	curveToD(&b, curve, 2, 3)
	d := b.String()
	// M starts at the (only) segment's own C[2], scaled; then its L/L pair,
	// scaled the same way.
	assert.Equal(t, "M4,3L2,3 L4,3Z", d)
}

func TestPathElementAndSymbolElement(t *testing.T) {
	pe := PathElement("M0,0Z", RGBA{0, 0, 0, 1})
	assert.Contains(t, pe, `d="M0,0Z"`)
	assert.Contains(t, pe, `fill="#000000"`)
	assert.Contains(t, pe, "fill-rule=\"evenodd\"")

	sym := SymbolElement("icon", 10, 20, "M0,0Z")
	assert.Contains(t, sym, `id="icon"`)
	assert.Contains(t, sym, `viewBox="0 0 10 20"`)
}

func TestDocumentAssemblesSVGWithOptionalBackground(t *testing.T) {
	doc := Document(10, 10, nil, []string{"<path/>"})
	assert.Contains(t, doc, `width="10" height="10"`)
	assert.NotContains(t, doc, "<rect")
	assert.Contains(t, doc, "<path/>")
	assert.True(t, strings.HasSuffix(doc, "</svg>"))

	bg := RGBA{1, 1, 1, 1}
	doc = Document(10, 10, &bg, nil)
	assert.Contains(t, doc, `<rect x="0" y="0" width="10" height="10" fill="#ffffff"/>`)
}
