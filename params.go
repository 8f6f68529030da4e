package potrace

import "fmt"

// TurnPolicy selects how trace_contour resolves an ambiguous 2x2 pixel
// configuration during contour tracing (spec 4.2 step 4). Numeric values
// are fixed for wire/test compatibility (spec 6).
type TurnPolicy int

const (
	TurnBlack    TurnPolicy = 0
	TurnWhite    TurnPolicy = 1
	TurnLeft     TurnPolicy = 2
	TurnRight    TurnPolicy = 3
	TurnMinority TurnPolicy = 4
	TurnMajority TurnPolicy = 5
)

func (t TurnPolicy) String() string {
	switch t {
	case TurnBlack:
		return "black"
	case TurnWhite:
		return "white"
	case TurnLeft:
		return "left"
	case TurnRight:
		return "right"
	case TurnMinority:
		return "minority"
	case TurnMajority:
		return "majority"
	default:
		return "unknown"
	}
}

func (t TurnPolicy) valid() bool {
	return t >= TurnBlack && t <= TurnMajority
}

// ParseTurnPolicy parses one of the lowercase turn-policy names used by
// the public API.
func ParseTurnPolicy(s string) (TurnPolicy, error) {
	switch s {
	case "black":
		return TurnBlack, nil
	case "white":
		return TurnWhite, nil
	case "left":
		return TurnLeft, nil
	case "right":
		return TurnRight, nil
	case "minority":
		return TurnMinority, nil
	case "majority":
		return TurnMajority, nil
	default:
		return 0, fmt.Errorf("%w: unknown turnPolicy %q", ErrInvalidParameter, s)
	}
}

// ThresholdAuto requests automatic (Otsu) threshold selection.
const ThresholdAuto = -1

// StepsAuto requests an automatically chosen posterizer step count.
const StepsAuto = -1

// Fill strategies for the posterizer (spec 6).
const (
	FillSpread   = "spread"
	FillDominant = "dominant"
	FillMedian   = "median"
	FillMean     = "mean"
)

// Range distribution strategies for the posterizer (spec 6).
const (
	RangesAuto  = "auto"
	RangesEqual = "equal"
)

const (
	alphaMin = 0.0 // ALPHA_MIN
	// AlphaMax is the default corner-vs-curve smoothing threshold
	// (spec 4.6's alphamax, "typical default 1.0").
	AlphaMax           = 1.0
	alphaMaxUpperBound = 4.0 / 3.0 // ALPHA_MAX, the theoretical ceiling on alpha itself

	// DefaultTurdSize is potrace's conventional minimum kept region area.
	DefaultTurdSize = 2
	// DefaultOptTolerance is the default curve-merging tolerance.
	DefaultOptTolerance = 0.2
	// OptAlphaMax bounds the alpha parameter opticurve's closed-form fit
	// may produce before the candidate merge is rejected (spec 4.7).
	OptAlphaMax = 1.0
)

// Params holds the Potrace tracing parameters (spec 6, "set_parameters").
type Params struct {
	TurnPolicy   TurnPolicy
	TurdSize     int
	AlphaMax     float64
	OptCurve     bool
	OptTolerance float64
	Threshold    int // 0..255, or ThresholdAuto
	BlackOnWhite bool
	Color        string // CSS color, or "auto"
	Background   string // CSS color, or "transparent"
	Width        int    // 0 means "use the loaded image's width"
	Height       int    // 0 means "use the loaded image's height"
}

// DefaultParams returns potrace's conventional default parameter set.
func DefaultParams() Params {
	return Params{
		TurnPolicy:   TurnMinority,
		TurdSize:     DefaultTurdSize,
		AlphaMax:     AlphaMax,
		OptCurve:     true,
		OptTolerance: DefaultOptTolerance,
		Threshold:    ThresholdAuto,
		BlackOnWhite: true,
		Color:        "auto",
		Background:   "transparent",
	}
}

// Option mutates a staging copy of Params, validating as it goes.
// Modeled after gogpu-gg's ContextOption functional-option pattern
// (options.go), extended to return an error so SetParameters can reject
// an invalid value without taking visible effect.
type Option func(*Params) error

func invalidf(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrInvalidParameter}, args...)...)
}

// WithTurnPolicy sets the ambiguous-turn resolution policy.
func WithTurnPolicy(tp TurnPolicy) Option {
	return func(p *Params) error {
		if !tp.valid() {
			return invalidf("turnPolicy %d out of range", tp)
		}
		p.TurnPolicy = tp
		return nil
	}
}

// WithTurdSize sets the minimum kept region area in pixels.
func WithTurdSize(n int) Option {
	return func(p *Params) error {
		if n < 0 {
			return invalidf("turdSize %d must be >= 0", n)
		}
		p.TurdSize = n
		return nil
	}
}

// WithAlphaMax sets the corner-vs-curve smoothing threshold.
func WithAlphaMax(a float64) Option {
	return func(p *Params) error {
		if a < 0 {
			return invalidf("alphaMax %g must be >= 0", a)
		}
		p.AlphaMax = a
		return nil
	}
}

// WithOptCurve enables or disables curve-merge optimization.
func WithOptCurve(enabled bool) Option {
	return func(p *Params) error {
		p.OptCurve = enabled
		return nil
	}
}

// WithOptTolerance sets the curve-merge deviation tolerance.
func WithOptTolerance(t float64) Option {
	return func(p *Params) error {
		if t < 0 {
			return invalidf("optTolerance %g must be >= 0", t)
		}
		p.OptTolerance = t
		return nil
	}
}

// WithThreshold sets the luminance threshold, or ThresholdAuto.
func WithThreshold(t int) Option {
	return func(p *Params) error {
		if t != ThresholdAuto && (t < 0 || t > 255) {
			return invalidf("threshold %d must be in 0..255 or ThresholdAuto", t)
		}
		p.Threshold = t
		return nil
	}
}

// WithBlackOnWhite selects which side of the threshold is foreground.
func WithBlackOnWhite(b bool) Option {
	return func(p *Params) error {
		p.BlackOnWhite = b
		return nil
	}
}

// WithColor sets the fill color: a CSS color string, or "auto".
func WithColor(c string) Option {
	return func(p *Params) error {
		if _, err := parseCSSColorOrAuto(c); err != nil {
			return invalidf("color %q: %v", c, err)
		}
		p.Color = c
		return nil
	}
}

// WithBackground sets the background color: a CSS color string, or
// "transparent".
func WithBackground(c string) Option {
	return func(p *Params) error {
		if _, err := parseCSSColorOrTransparent(c); err != nil {
			return invalidf("background %q: %v", c, err)
		}
		p.Background = c
		return nil
	}
}

// WithSize overrides the output width/height (both must be positive).
func WithSize(w, h int) Option {
	return func(p *Params) error {
		if w <= 0 || h <= 0 {
			return invalidf("width/height must be positive, got %dx%d", w, h)
		}
		p.Width = w
		p.Height = h
		return nil
	}
}

// curveAffecting reports whether two parameter sets differ in a field
// that invalidates cached curves (spec 6: "Changing threshold,
// blackOnWhite, turdSize, turnPolicy, alphaMax, optCurve, optTolerance
// after a successful load invalidates cached curves").
func curveAffecting(a, b Params) bool {
	return a.Threshold != b.Threshold ||
		a.BlackOnWhite != b.BlackOnWhite ||
		a.TurdSize != b.TurdSize ||
		a.TurnPolicy != b.TurnPolicy ||
		a.AlphaMax != b.AlphaMax ||
		a.OptCurve != b.OptCurve ||
		a.OptTolerance != b.OptTolerance
}
