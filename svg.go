package potrace

import (
	"fmt"
	"strconv"
	"strings"
)

// formatCoord renders v rounded to 3 decimals, eliding a trailing ".000"
// (or any trailing zeros after the decimal point) per spec 6's SVG output
// contract ("coordinates formatted to at most 3 decimals with trailing
// .000 elided").
func formatCoord(v float64) string {
	s := strconv.FormatFloat(v, 'f', 3, 64)
	if strings.Contains(s, ".") {
		s = strings.TrimRight(s, "0")
		s = strings.TrimSuffix(s, ".")
	}
	if s == "-0" {
		s = "0"
	}
	return s
}

// curveToD appends one closed subpath's M/C/L/Z commands to b, following
// the SVG output contract in spec 6: the path starts at the last
// segment's endpoint (which equals the first segment's start), then each
// segment emits either a C command (CURVE) or two L commands (CORNER),
// closing with Z.
func curveToD(b *strings.Builder, curve Curve, scaleX, scaleY float64) {
	n := len(curve)
	if n == 0 {
		return
	}
	start := curve[n-1].C[2]
	fmt.Fprintf(b, "M%s,%s", formatCoord(start.X*scaleX), formatCoord(start.Y*scaleY))
	for i := 0; i < n; i++ {
		seg := curve[i]
		switch seg.Tag {
		case CurveSeg:
			fmt.Fprintf(b, "C%s,%s %s,%s %s,%s",
				formatCoord(seg.C[0].X*scaleX), formatCoord(seg.C[0].Y*scaleY),
				formatCoord(seg.C[1].X*scaleX), formatCoord(seg.C[1].Y*scaleY),
				formatCoord(seg.C[2].X*scaleX), formatCoord(seg.C[2].Y*scaleY))
		case Corner:
			fmt.Fprintf(b, "L%s,%s L%s,%s",
				formatCoord(seg.C[1].X*scaleX), formatCoord(seg.C[1].Y*scaleY),
				formatCoord(seg.C[2].X*scaleX), formatCoord(seg.C[2].Y*scaleY))
		}
	}
	b.WriteString("Z")
}

// PathsToD assembles the d attribute covering every processed path in the
// list. Subpath order does not matter: fill-rule="evenodd" recovers hole
// nesting regardless of winding order (spec 4.2, containment tree).
func PathsToD(paths []*Path, scaleX, scaleY float64) string {
	var b strings.Builder
	for _, p := range paths {
		if p.priv == nil {
			continue
		}
		curve := p.priv.fcurve()
		if len(curve) == 0 {
			continue
		}
		curveToD(&b, curve, scaleX, scaleY)
	}
	return b.String()
}

// PathElement wraps a d attribute in an SVG <path> element with the given
// fill (spec 6, get_path_tag).
func PathElement(d string, fill RGBA) string {
	return fmt.Sprintf(`<path d="%s" fill="%s" fill-rule="evenodd"/>`, d, fill.Hex())
}

// SymbolElement wraps a d attribute in a <symbol> with no fill/background
// (spec 6, get_symbol).
func SymbolElement(id string, width, height int, d string) string {
	return fmt.Sprintf(`<symbol id="%s" viewBox="0 0 %d %d"><path d="%s" fill-rule="evenodd"/></symbol>`, id, width, height, d)
}

// Document assembles a full <svg> document with an optional background
// rect and the given already-rendered path elements, back-to-front
// (spec 6, get_svg; spec 4.10 step 5 layer ordering).
func Document(width, height int, background *RGBA, pathElements []string) string {
	var b strings.Builder
	fmt.Fprintf(&b, `<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">`, width, height, width, height)
	if background != nil {
		fmt.Fprintf(&b, `<rect x="0" y="0" width="%d" height="%d" fill="%s"/>`, width, height, background.Hex())
	}
	for _, pe := range pathElements {
		b.WriteString(pe)
	}
	b.WriteString("</svg>")
	return b.String()
}
