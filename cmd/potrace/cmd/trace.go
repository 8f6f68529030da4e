package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gogpu/potrace"
)

var traceFlags paramFlags
var traceOutput string
var traceSymbol string

var traceCmd = &cobra.Command{
	Use:   "trace INPUT",
	Short: "trace a raster image into a single-layer SVG",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		img, err := decodeImageFile(args[0])
		if err != nil {
			return err
		}

		opts, err := traceFlags.options(cmd)
		if err != nil {
			return err
		}
		t, err := potrace.New(opts...)
		if err != nil {
			return err
		}
		if err := t.LoadImage(img); err != nil {
			return err
		}

		var out string
		if traceSymbol != "" {
			out, err = t.GetSymbol(traceSymbol)
		} else {
			out, err = t.GetSVG()
		}
		if err != nil {
			return err
		}

		if traceOutput == "" || traceOutput == "-" {
			fmt.Println(out)
			return nil
		}
		return writeFile(traceOutput, out)
	},
}

func init() {
	RootCmd.AddCommand(traceCmd)
	traceFlags.register(traceCmd)
	traceCmd.Flags().StringVarP(&traceOutput, "output", "o", "", "output SVG file, - or unset for stdout")
	traceCmd.Flags().StringVar(&traceSymbol, "symbol", "", "emit an SVG <symbol id=ID> fragment instead of a standalone document")
}
