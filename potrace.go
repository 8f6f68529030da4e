package potrace

import (
	"fmt"
	"image"
)

// Potrace is the tracing engine's object-style public surface (spec 6):
// LoadImage, SetParameters, and the GetPathTag/GetSymbol/GetSVG trio.
// Modeled after gogpu-gg's Context lifecycle (a `closed bool` dirty guard
// around an otherwise synchronous, single-owner pipeline).
type Potrace struct {
	params Params
	loaded bool

	width, height int
	luminance     []uint8
	hist          *Histogram

	bitmap *Bitmap
	paths  []*Path
	dirty  bool

	cachedSVG       string
	cachedSVGParams Params
	cachedSVGValid  bool
}

// New creates a Potrace engine with default parameters, optionally
// overridden by opts.
func New(opts ...Option) (*Potrace, error) {
	t := &Potrace{params: DefaultParams()}
	if err := t.SetParameters(opts...); err != nil {
		return nil, err
	}
	return t, nil
}

// SetParameters validates and applies opts to a staging copy of the
// current parameters, only taking effect if every option succeeds
// (spec 6, "set_parameters"). Changing a curve-affecting field after a
// successful load invalidates cached curves and the memoized SVG.
func (t *Potrace) SetParameters(opts ...Option) error {
	staged := t.params
	for _, opt := range opts {
		if err := opt(&staged); err != nil {
			return err
		}
	}
	if t.loaded && curveAffecting(t.params, staged) {
		t.dirty = true
	}
	if t.params != staged {
		t.cachedSVGValid = false
	}
	t.params = staged
	return nil
}

// Params returns the engine's current, canonicalized parameters
// (spec 8, testable property 8, "round-trip").
func (t *Potrace) Params() Params { return t.params }

// LoadImage extracts a luminance grid from img and sets the engine to
// "loaded", discarding any previously traced state (spec 6, "load_image";
// spec 5, "old state is released first").
func (t *Potrace) LoadImage(img image.Image) error {
	if img == nil {
		return fmt.Errorf("%w: nil image", ErrImageDecodingFailed)
	}
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if w <= 0 || h <= 0 {
		return fmt.Errorf("%w: empty image bounds", ErrImageDecodingFailed)
	}

	luminance := make([]uint8, w*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			r, g, b, _ := img.At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()
			luminance[y*w+x] = Luminance8(uint8(r>>8), uint8(g>>8), uint8(b>>8))
		}
	}

	t.width, t.height = w, h
	t.luminance = luminance
	t.hist = NewHistogram(luminance)
	t.bitmap = nil
	t.paths = nil
	t.dirty = true
	t.cachedSVGValid = false
	t.loaded = true
	Logger().Info("image loaded", "width", w, "height", h)
	return nil
}

// resolveThreshold returns the effective 0..255 luminance threshold,
// resolving ThresholdAuto via the histogram's Otsu search.
func (t *Potrace) resolveThreshold() int {
	if t.params.Threshold != ThresholdAuto {
		return t.params.Threshold
	}
	return t.hist.AutoThreshold(0, 255)
}

// thresholdBitmap builds the 1-bit foreground bitmap for the given
// threshold and blackOnWhite polarity.
func thresholdBitmap(luminance []uint8, w, h, threshold int, blackOnWhite bool) *Bitmap {
	bm := NewBitmap(w, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			v := int(luminance[y*w+x])
			foreground := v <= threshold
			if !blackOnWhite {
				foreground = v > threshold
			}
			if foreground {
				bm.Set(x, y)
			}
		}
	}
	return bm
}

// ensureTraced runs the full decomposition + pipeline once per dirty
// state, memoizing paths until a curve-affecting parameter changes or a
// new image loads.
func (t *Potrace) ensureTraced() error {
	if !t.loaded {
		return ErrUnloadedImage
	}
	if !t.dirty && t.bitmap != nil {
		return nil
	}

	threshold := t.resolveThreshold()
	t.bitmap = thresholdBitmap(t.luminance, t.width, t.height, threshold, t.params.BlackOnWhite)
	t.paths = Decompose(t.bitmap, t.params.TurdSize, t.params.TurnPolicy)
	BuildTree(t.paths)
	ProcessPaths(t.paths, t.params, nil)

	t.dirty = false
	t.cachedSVGValid = false
	Logger().Debug("trace complete", "threshold", threshold, "paths", len(t.paths))
	return nil
}

// outputSize returns the effective output dimensions, honoring an
// explicit Params.Width/Height override.
func (t *Potrace) outputSize() (w, h int) {
	w, h = t.width, t.height
	if t.params.Width > 0 {
		w = t.params.Width
	}
	if t.params.Height > 0 {
		h = t.params.Height
	}
	return w, h
}

func (t *Potrace) scale() (sx, sy float64) {
	if t.width == 0 || t.height == 0 {
		return 1, 1
	}
	w, h := t.outputSize()
	return float64(w) / float64(t.width), float64(h) / float64(t.height)
}

// GetPathTag returns an SVG <path> element covering every traced contour
// (spec 6, "get_path_tag"). An empty fillColor uses Params.Color.
func (t *Potrace) GetPathTag(fillColor string) (string, error) {
	if err := t.ensureTraced(); err != nil {
		return "", err
	}
	if fillColor == "" {
		fillColor = t.params.Color
	}
	auto := RGBA{0, 0, 0, 1}
	if !t.params.BlackOnWhite {
		auto = RGBA{1, 1, 1, 1}
	}
	fill := resolveColor(fillColor, auto)
	sx, sy := t.scale()
	d := PathsToD(t.paths, sx, sy)
	return PathElement(d, fill), nil
}

// GetSymbol returns the traced contours wrapped in an SVG <symbol>,
// without fill or background (spec 6, "get_symbol").
func (t *Potrace) GetSymbol(id string) (string, error) {
	if err := t.ensureTraced(); err != nil {
		return "", err
	}
	sx, sy := t.scale()
	d := PathsToD(t.paths, sx, sy)
	w, h := t.outputSize()
	return SymbolElement(id, w, h, d), nil
}

// GetSVG returns a full standalone SVG document (spec 6, "get_svg").
// Calling it twice without an intervening parameter change returns an
// identical string without re-running the pipeline (spec 8, testable
// property 9, "idempotence").
func (t *Potrace) GetSVG() (string, error) {
	if !t.loaded {
		return "", ErrUnloadedImage
	}
	if t.cachedSVGValid && !t.dirty && t.cachedSVGParams == t.params {
		return t.cachedSVG, nil
	}
	if err := t.ensureTraced(); err != nil {
		return "", err
	}

	pathTag, err := t.GetPathTag("")
	if err != nil {
		return "", err
	}
	w, h := t.outputSize()
	bg, ok := resolveBackground(t.params.Background)
	var bgPtr *RGBA
	if ok {
		bgPtr = &bg
	}
	svg := Document(w, h, bgPtr, []string{pathTag})

	t.cachedSVG = svg
	t.cachedSVGParams = t.params
	t.cachedSVGValid = true
	return svg, nil
}

// Posterizer runs the tracing pipeline at several luminance thresholds
// and composes the results into one layered SVG (spec 4.10, spec 6
// "Posterizer").
type Posterizer struct {
	params PosterizerParams
	tracer *Potrace
}

// NewPosterizer creates a Posterizer with default parameters, optionally
// overridden by opts.
func NewPosterizer(opts ...Option) (*Posterizer, error) {
	t := &Potrace{params: DefaultParams()}
	p := &Posterizer{params: DefaultPosterizerParams(), tracer: t}
	if err := p.SetParameters(opts...); err != nil {
		return nil, err
	}
	return p, nil
}

// SetParameters applies base Potrace options to the posterizer's
// underlying tracer.
func (p *Posterizer) SetParameters(opts ...Option) error {
	return p.tracer.SetParameters(opts...)
}

// Params returns the posterizer's current base tracing parameters.
func (p *Posterizer) Params() Params { return p.tracer.params }

// SetPosterizerParams validates and applies steps/fillStrategy/
// rangeDistribution in one call (spec 6, "Posterizer").
func (p *Posterizer) SetPosterizerParams(pp PosterizerParams) error {
	if pp.Steps != StepsAuto && pp.Steps <= 0 && len(pp.StepsList) == 0 {
		return invalidf("steps %d must be positive, StepsAuto, or paired with an explicit StepsList", pp.Steps)
	}
	for i, s := range pp.StepsList {
		if s < 0 || s > 255 {
			return invalidf("stepsList[%d] = %d must be in 0..255", i, s)
		}
		if i > 0 && s <= pp.StepsList[i-1] {
			return invalidf("stepsList must be strictly increasing, got %v", pp.StepsList)
		}
	}
	if !validFillStrategy(pp.FillStrategy) {
		return invalidf("fillStrategy %q not recognized", pp.FillStrategy)
	}
	if !validRangeDistribution(pp.RangeDistribution) {
		return invalidf("rangeDistribution %q not recognized", pp.RangeDistribution)
	}
	p.tracer.params = pp.Params
	p.params = pp
	p.tracer.dirty = true
	p.tracer.cachedSVGValid = false
	return nil
}

// LoadImage extracts the posterizer's shared luminance grid.
func (p *Posterizer) LoadImage(img image.Image) error {
	return p.tracer.LoadImage(img)
}

// resolvedThreshold returns the top-level threshold the posterizer's
// range resolves from, with ThresholdAuto replaced by its Otsu value.
func (p *Posterizer) resolvedThreshold() (int, error) {
	if !p.tracer.loaded {
		return 0, ErrUnloadedImage
	}
	t := p.tracer.params.Threshold
	if t == ThresholdAuto {
		t = p.tracer.hist.AutoThreshold(0, 255)
	}
	return t, nil
}

// GetRanges returns the resolved, ascending color-stop thresholds the
// posterizer will trace, without running any tracing itself (spec 4.10
// step 2, an inspection API alongside GetLayers for callers that want the
// posterization decision without re-parsing the SVG string).
func (p *Posterizer) GetRanges() ([]int, error) {
	threshold, err := p.resolvedThreshold()
	if err != nil {
		return nil, err
	}
	return buildColorStops(p.tracer.hist, p.params, threshold), nil
}

// Layer is one posterizer stop paired with the fill color GetSVG would
// use for it, exposed by GetLayers for inspection ahead of SVG assembly.
type Layer struct {
	Threshold      int
	ColorIntensity float64
	Fill           RGBA
}

// GetLayers resolves the surviving (non-zero-intensity) color stops and
// their fill colors, in the same ascending threshold order buildLayers
// produces (GetSVG paints them back-to-front, in reverse).
func (p *Posterizer) GetLayers() ([]Layer, error) {
	threshold, err := p.resolvedThreshold()
	if err != nil {
		return nil, err
	}
	stops := buildLayers(p.tracer.hist, p.params, threshold)

	base := p.tracer.params
	auto := RGBA{0, 0, 0, 1}
	if !base.BlackOnWhite {
		auto = RGBA{1, 1, 1, 1}
	}
	baseColor := resolveColor(base.Color, auto)

	layers := make([]Layer, len(stops))
	for i, stop := range stops {
		layers[i] = Layer{
			Threshold:      stop.Threshold,
			ColorIntensity: stop.ColorIntensity,
			Fill:           layerFillColor(baseColor, base.BlackOnWhite, stop.ColorIntensity),
		}
	}
	return layers, nil
}

// GetSVG runs one Potrace trace per surviving color stop and composes
// the layers back-to-front into a single SVG document (spec 4.10).
func (p *Posterizer) GetSVG() (string, error) {
	if !p.tracer.loaded {
		return "", ErrUnloadedImage
	}

	base := p.tracer.params
	// Each layer is traced at its own threshold; restore the caller's
	// threshold afterwards so Params and later calls see it unchanged.
	defer func() { _ = p.tracer.SetParameters(WithThreshold(base.Threshold)) }()
	resolvedThreshold, err := p.resolvedThreshold()
	if err != nil {
		return "", err
	}

	layers := buildLayers(p.tracer.hist, p.params, resolvedThreshold)

	auto := RGBA{0, 0, 0, 1}
	if !base.BlackOnWhite {
		auto = RGBA{1, 1, 1, 1}
	}
	baseColor := resolveColor(base.Color, auto)

	cascade := len(layers) > 10
	elements := make([]string, 0, len(layers))

	// Back-to-front: higher thresholds (further from baseColor) first,
	// lower thresholds painted last, on top (spec 4.10 step 5).
	order := make([]ColorStop, len(layers))
	copy(order, layers)
	for i, j := 0, len(order)-1; i < j; i, j = i+1, j-1 {
		order[i], order[j] = order[j], order[i]
	}

	for i, stop := range order {
		if err := p.tracer.SetParameters(WithThreshold(stop.Threshold)); err != nil {
			return "", err
		}
		if err := p.tracer.ensureTraced(); err != nil {
			return "", err
		}
		sx, sy := p.tracer.scale()
		d := PathsToD(p.tracer.paths, sx, sy)

		fill := layerFillColor(baseColor, base.BlackOnWhite, stop.ColorIntensity)
		if cascade {
			fill.A = layerCascadeAlpha(i, len(order))
		}
		elements = append(elements, PathElement(d, fill))
	}

	w, h := p.tracer.outputSize()
	bg, ok := resolveBackground(base.Background)
	var bgPtr *RGBA
	if ok {
		bgPtr = &bg
	}
	return Document(w, h, bgPtr, elements), nil
}
