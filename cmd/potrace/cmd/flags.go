package cmd

import (
	"github.com/spf13/cobra"

	"github.com/gogpu/potrace"
)

// paramFlags binds the potrace.Params fields to command-line flags shared
// by trace and posterize.
type paramFlags struct {
	turnPolicy   string
	turdSize     int
	alphaMax     float64
	optCurve     bool
	optTolerance float64
	threshold    int
	whiteOnBlack bool
	color        string
	background   string
	width        int
	height       int
	config       string
}

func (f *paramFlags) register(cmd *cobra.Command) {
	d := potrace.DefaultParams()
	cmd.Flags().StringVar(&f.turnPolicy, "turnpolicy", d.TurnPolicy.String(), "ambiguous-turn policy: black, white, left, right, minority, majority")
	cmd.Flags().IntVar(&f.turdSize, "turdsize", d.TurdSize, "suppress contours with area below this many pixels")
	cmd.Flags().Float64Var(&f.alphaMax, "alphamax", d.AlphaMax, "corner-vs-curve smoothing threshold")
	cmd.Flags().BoolVar(&f.optCurve, "optcurve", d.OptCurve, "merge adjacent curves within tolerance")
	cmd.Flags().Float64Var(&f.optTolerance, "opttolerance", d.OptTolerance, "curve-merge deviation tolerance")
	cmd.Flags().IntVar(&f.threshold, "threshold", potrace.ThresholdAuto, "luminance threshold 0..255, or -1 for automatic")
	cmd.Flags().BoolVar(&f.whiteOnBlack, "invert", false, "treat high luminance as foreground instead of low")
	cmd.Flags().StringVar(&f.color, "color", d.Color, `fill color, a CSS color or "auto"`)
	cmd.Flags().StringVar(&f.background, "background", d.Background, `background color, a CSS color or "transparent"`)
	cmd.Flags().IntVar(&f.width, "width", 0, "output width in pixels, 0 to use the source image's width")
	cmd.Flags().IntVar(&f.height, "height", 0, "output height in pixels, 0 to use the source image's height")
	cmd.Flags().StringVar(&f.config, "config", "", "TOML run config file, applied before the flags above")
}

// options resolves the base config file (if any) and this invocation's
// explicitly-set flags into a potrace.Option list. Flags only contribute
// an option when the user actually passed them, so an unset flag never
// overrides a value loaded from --config.
func (f *paramFlags) options(cmd *cobra.Command) ([]potrace.Option, error) {
	var opts []potrace.Option
	if f.config != "" {
		rc, err := loadRunConfig(f.config)
		if err != nil {
			return nil, err
		}
		cfgOpts, err := rc.options()
		if err != nil {
			return nil, err
		}
		opts = append(opts, cfgOpts...)
	}

	changed := cmd.Flags().Changed
	if changed("turnpolicy") {
		tp, err := potrace.ParseTurnPolicy(f.turnPolicy)
		if err != nil {
			return nil, err
		}
		opts = append(opts, potrace.WithTurnPolicy(tp))
	}
	if changed("turdsize") {
		opts = append(opts, potrace.WithTurdSize(f.turdSize))
	}
	if changed("alphamax") {
		opts = append(opts, potrace.WithAlphaMax(f.alphaMax))
	}
	if changed("optcurve") {
		opts = append(opts, potrace.WithOptCurve(f.optCurve))
	}
	if changed("opttolerance") {
		opts = append(opts, potrace.WithOptTolerance(f.optTolerance))
	}
	if changed("threshold") {
		opts = append(opts, potrace.WithThreshold(f.threshold))
	}
	if changed("invert") {
		opts = append(opts, potrace.WithBlackOnWhite(!f.whiteOnBlack))
	}
	if changed("color") {
		opts = append(opts, potrace.WithColor(f.color))
	}
	if changed("background") {
		opts = append(opts, potrace.WithBackground(f.background))
	}
	if f.width > 0 && f.height > 0 {
		opts = append(opts, potrace.WithSize(f.width, f.height))
	}
	return opts, nil
}
