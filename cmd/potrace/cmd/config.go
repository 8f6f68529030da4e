package cmd

import (
	"bufio"
	"bytes"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"

	"github.com/gogpu/potrace"
)

// runConfig mirrors potrace.Params in TOML, for --config files shared
// across trace/posterize invocations (grounded on noisetorch's config.toml
// DecodeFile/Encode round trip).
type runConfig struct {
	TurnPolicy   string
	TurdSize     int
	AlphaMax     float64
	OptCurve     bool
	OptTolerance float64
	Threshold    int
	BlackOnWhite bool
	Color        string
	Background   string
}

func defaultRunConfig() runConfig {
	p := potrace.DefaultParams()
	return runConfig{
		TurnPolicy:   p.TurnPolicy.String(),
		TurdSize:     p.TurdSize,
		AlphaMax:     p.AlphaMax,
		OptCurve:     p.OptCurve,
		OptTolerance: p.OptTolerance,
		Threshold:    p.Threshold,
		BlackOnWhite: p.BlackOnWhite,
		Color:        p.Color,
		Background:   p.Background,
	}
}

func loadRunConfig(path string) (runConfig, error) {
	rc := defaultRunConfig()
	if _, err := toml.DecodeFile(path, &rc); err != nil {
		return rc, fmt.Errorf("read config %s: %w", path, err)
	}
	return rc, nil
}

func writeRunConfig(path string, rc runConfig) error {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(&rc); err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	return os.WriteFile(path, buf.Bytes(), 0644)
}

// options converts the decoded config into potrace.Options, to be applied
// before any command-line flag overrides.
func (rc runConfig) options() ([]potrace.Option, error) {
	tp, err := potrace.ParseTurnPolicy(rc.TurnPolicy)
	if err != nil {
		return nil, err
	}
	return []potrace.Option{
		potrace.WithTurnPolicy(tp),
		potrace.WithTurdSize(rc.TurdSize),
		potrace.WithAlphaMax(rc.AlphaMax),
		potrace.WithOptCurve(rc.OptCurve),
		potrace.WithOptTolerance(rc.OptTolerance),
		potrace.WithThreshold(rc.Threshold),
		potrace.WithBlackOnWhite(rc.BlackOnWhite),
		potrace.WithColor(rc.Color),
		potrace.WithBackground(rc.Background),
	}, nil
}

var configCmd = &cobra.Command{
	Use:   "config [FILE]",
	Short: "write a run config file prefilled with potrace's defaults",
	Long: `Write a TOML run config file, prefilled with potrace's default
parameters. Pass --config FILE to trace/posterize to load it.

If FILE is not given, 'potrace.toml' is used.`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		path := "potrace.toml"
		if len(args) == 1 {
			path = args[0]
		}
		if !confirmIfExists(path) {
			fmt.Println("aborted")
			return
		}
		check(writeRunConfig(path, defaultRunConfig()))
		fmt.Printf("config written to %s\n", path)
	},
}

func init() {
	RootCmd.AddCommand(configCmd)
}

// confirmIfExists returns true if path doesn't exist, or if the user
// confirms overwriting it (grounded on arl-go-detour's cli.go
// askForConfirmation).
func confirmIfExists(path string) bool {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return true
	}
	fmt.Printf("%s already exists, overwrite? [y/N] ", path)
	reader := bufio.NewReader(os.Stdin)
	line, _ := reader.ReadString('\n')
	switch line {
	case "y\n", "Y\n":
		return true
	default:
		return false
	}
}
