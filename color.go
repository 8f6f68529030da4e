package potrace

import (
	"fmt"
	"strconv"
	"strings"
)

// RGBA is a color with components in [0, 1], used for posterizer layer
// fills and background rects. Modeled after gogpu-gg's color.go RGBA type
// and its RGB/RGBA2/FromColor constructors.
type RGBA struct {
	R, G, B, A float64
}

// Hex renders the color as a CSS #rrggbb (or #rrggbbaa if A < 1) string.
func (c RGBA) Hex() string {
	r := clamp255(c.R * 255)
	g := clamp255(c.G * 255)
	b := clamp255(c.B * 255)
	if c.A >= 1 {
		return fmt.Sprintf("#%02x%02x%02x", r, g, b)
	}
	a := clamp255(c.A * 255)
	return fmt.Sprintf("#%02x%02x%02x%02x", r, g, b, a)
}

// Blend linearly interpolates from c toward target by t in [0, 1].
func (c RGBA) Blend(target RGBA, t float64) RGBA {
	return RGBA{
		R: c.R + (target.R-c.R)*t,
		G: c.G + (target.G-c.G)*t,
		B: c.B + (target.B-c.B)*t,
		A: c.A + (target.A-c.A)*t,
	}
}

func clamp255(v float64) int {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return int(v + 0.5)
}

var namedColors = map[string]RGBA{
	"black":       {0, 0, 0, 1},
	"white":       {1, 1, 1, 1},
	"red":         {1, 0, 0, 1},
	"green":       {0, 0.5019607843137255, 0, 1},
	"blue":        {0, 0, 1, 1},
	"transparent": {0, 0, 0, 0},
}

// parseCSSColor parses a CSS color: a #rgb/#rrggbb/#rrggbbaa hex literal,
// an rgb()/rgba() function, or a small set of named colors. Grounded on
// gogpu-gg's color.go FromColor/RGB conversions, extended with the string
// parsing spec 6 requires for the public "color"/"background" parameters.
func parseCSSColor(s string) (RGBA, error) {
	s = strings.TrimSpace(s)
	lower := strings.ToLower(s)
	if c, ok := namedColors[lower]; ok {
		return c, nil
	}
	if strings.HasPrefix(s, "#") {
		return parseHexColor(s)
	}
	if strings.HasPrefix(lower, "rgb(") || strings.HasPrefix(lower, "rgba(") {
		return parseRGBFunc(s)
	}
	return RGBA{}, fmt.Errorf("unrecognized CSS color %q", s)
}

func parseHexColor(s string) (RGBA, error) {
	hex := strings.TrimPrefix(s, "#")
	expand := func(r byte) string { return string([]byte{r, r}) }
	var rs, gs, bs, as string
	switch len(hex) {
	case 3:
		rs, gs, bs, as = expand(hex[0]), expand(hex[1]), expand(hex[2]), "ff"
	case 4:
		rs, gs, bs, as = expand(hex[0]), expand(hex[1]), expand(hex[2]), expand(hex[3])
	case 6:
		rs, gs, bs, as = hex[0:2], hex[2:4], hex[4:6], "ff"
	case 8:
		rs, gs, bs, as = hex[0:2], hex[2:4], hex[4:6], hex[6:8]
	default:
		return RGBA{}, fmt.Errorf("invalid hex color %q", s)
	}
	r, err1 := strconv.ParseUint(rs, 16, 8)
	g, err2 := strconv.ParseUint(gs, 16, 8)
	b, err3 := strconv.ParseUint(bs, 16, 8)
	a, err4 := strconv.ParseUint(as, 16, 8)
	if err1 != nil || err2 != nil || err3 != nil || err4 != nil {
		return RGBA{}, fmt.Errorf("invalid hex color %q", s)
	}
	return RGBA{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255, A: float64(a) / 255}, nil
}

func parseRGBFunc(s string) (RGBA, error) {
	open := strings.Index(s, "(")
	close := strings.LastIndex(s, ")")
	if open < 0 || close < 0 || close < open {
		return RGBA{}, fmt.Errorf("invalid rgb() color %q", s)
	}
	parts := strings.Split(s[open+1:close], ",")
	if len(parts) != 3 && len(parts) != 4 {
		return RGBA{}, fmt.Errorf("invalid rgb() color %q", s)
	}
	vals := make([]float64, len(parts))
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return RGBA{}, fmt.Errorf("invalid rgb() component %q", p)
		}
		vals[i] = v
	}
	a := 1.0
	if len(vals) == 4 {
		a = vals[3]
	}
	return RGBA{R: vals[0] / 255, G: vals[1] / 255, B: vals[2] / 255, A: a}, nil
}

// parseCSSColorOrAuto validates the "color" parameter: a CSS color, or the
// literal "auto".
func parseCSSColorOrAuto(s string) (RGBA, error) {
	if strings.EqualFold(s, "auto") {
		return RGBA{}, nil
	}
	return parseCSSColor(s)
}

// parseCSSColorOrTransparent validates the "background" parameter: a CSS
// color, or the literal "transparent".
func parseCSSColorOrTransparent(s string) (RGBA, error) {
	if strings.EqualFold(s, "transparent") {
		return RGBA{0, 0, 0, 0}, nil
	}
	return parseCSSColor(s)
}

// resolveColor resolves a color parameter to a concrete RGBA, given the
// fallback to use for "auto" (black when blackOnWhite, white otherwise).
func resolveColor(param string, autoFallback RGBA) RGBA {
	if strings.EqualFold(param, "auto") {
		return autoFallback
	}
	c, err := parseCSSColor(param)
	if err != nil {
		return autoFallback
	}
	return c
}

// resolveBackground resolves the "background" parameter, returning ok=false
// for "transparent".
func resolveBackground(param string) (RGBA, bool) {
	if strings.EqualFold(param, "transparent") {
		return RGBA{}, false
	}
	c, err := parseCSSColor(param)
	if err != nil {
		return RGBA{}, false
	}
	return c, true
}
