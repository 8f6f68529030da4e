package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/gogpu/potrace"
)

var verbose bool

// RootCmd is the base command when potrace is called without a subcommand.
var RootCmd = &cobra.Command{
	Use:   "potrace",
	Short: "trace raster images into SVG vector paths",
	Long: `potrace traces a raster image's foreground/background regions into
smooth Bezier outlines and emits the result as SVG.

  potrace trace input.png -o output.svg
  potrace posterize input.png -o layered.svg --steps 4`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verbose {
			potrace.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
				Level: slog.LevelDebug,
			})))
		}
	},
}

// Execute runs the root command. Called once from main.main.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "potrace:", err)
		os.Exit(1)
	}
}

func init() {
	RootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log pipeline stage diagnostics to stderr")
}
