package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gogpu/potrace"
)

var posterizeFlags paramFlags
var posterizeOutput string
var posterizePreset string
var posterizeSteps int
var posterizeStepsList string
var posterizeFillStrategy string
var posterizeRangeDistribution string

var posterizeCmd = &cobra.Command{
	Use:   "posterize INPUT",
	Short: "trace a raster image into a multi-threshold layered SVG",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		img, err := decodeImageFile(args[0])
		if err != nil {
			return err
		}

		preset := defaultPosterizerPreset()
		if posterizePreset != "" {
			preset, err = loadPosterizerPreset(posterizePreset)
			if err != nil {
				return err
			}
		}
		changed := cmd.Flags().Changed
		if changed("steps") {
			preset.Steps = posterizeSteps
		}
		if changed("stepslist") {
			list, err := parseIntList(posterizeStepsList)
			if err != nil {
				return fmt.Errorf("--stepslist: %w", err)
			}
			preset.StepsList = list
		}
		if changed("fillstrategy") {
			preset.FillStrategy = posterizeFillStrategy
		}
		if changed("rangedistribution") {
			preset.RangeDistribution = posterizeRangeDistribution
		}

		baseOpts, err := posterizeFlags.options(cmd)
		if err != nil {
			return err
		}

		p, err := potrace.NewPosterizer(baseOpts...)
		if err != nil {
			return err
		}
		if err := p.SetPosterizerParams(potrace.PosterizerParams{
			Params:            p.Params(),
			Steps:             preset.Steps,
			StepsList:         preset.StepsList,
			FillStrategy:      preset.FillStrategy,
			RangeDistribution: preset.RangeDistribution,
		}); err != nil {
			return err
		}
		if err := p.LoadImage(img); err != nil {
			return err
		}

		svg, err := p.GetSVG()
		if err != nil {
			return err
		}
		if posterizeOutput == "" || posterizeOutput == "-" {
			fmt.Println(svg)
			return nil
		}
		return writeFile(posterizeOutput, svg)
	},
}

func parseIntList(s string) ([]int, error) {
	if s == "" {
		return nil, nil
	}
	parts := strings.Split(s, ",")
	out := make([]int, len(parts))
	for i, p := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, fmt.Errorf("invalid integer %q", p)
		}
		out[i] = v
	}
	return out, nil
}

func init() {
	RootCmd.AddCommand(posterizeCmd)
	posterizeFlags.register(posterizeCmd)
	posterizeCmd.Flags().StringVarP(&posterizeOutput, "output", "o", "", "output SVG file, - or unset for stdout")
	posterizeCmd.Flags().StringVar(&posterizePreset, "preset", "", "YAML posterizer preset file")
	posterizeCmd.Flags().IntVar(&posterizeSteps, "steps", potrace.StepsAuto, "number of posterizer layers, or -1 for automatic")
	posterizeCmd.Flags().StringVar(&posterizeStepsList, "stepslist", "", "comma-separated explicit thresholds, overrides --steps")
	posterizeCmd.Flags().StringVar(&posterizeFillStrategy, "fillstrategy", potrace.FillSpread, "layer fill intensity: spread, dominant, mean, median")
	posterizeCmd.Flags().StringVar(&posterizeRangeDistribution, "rangedistribution", potrace.RangesAuto, "stop placement: auto, equal")
}
