package cmd

import (
	"fmt"
	"os"

	yaml "gopkg.in/yaml.v2"

	"github.com/gogpu/potrace"
)

// posterizerPreset mirrors potrace.PosterizerParams's layering fields in
// YAML, for --preset files shared across posterize invocations (grounded
// on arl-go-detour's utils.go unmarshalYAMLFile idiom).
type posterizerPreset struct {
	Steps             int    `yaml:"steps"`
	StepsList         []int  `yaml:"stepsList"`
	FillStrategy      string `yaml:"fillStrategy"`
	RangeDistribution string `yaml:"rangeDistribution"`
}

func defaultPosterizerPreset() posterizerPreset {
	p := potrace.DefaultPosterizerParams()
	return posterizerPreset{
		Steps:             p.Steps,
		FillStrategy:      p.FillStrategy,
		RangeDistribution: p.RangeDistribution,
	}
}

func loadPosterizerPreset(path string) (posterizerPreset, error) {
	preset := defaultPosterizerPreset()
	buf, err := os.ReadFile(path)
	if err != nil {
		return preset, fmt.Errorf("read preset %s: %w", path, err)
	}
	if err := yaml.Unmarshal(buf, &preset); err != nil {
		return preset, fmt.Errorf("parse preset %s: %w", path, err)
	}
	return preset, nil
}

func writePosterizerPreset(path string, preset posterizerPreset) error {
	buf, err := yaml.Marshal(&preset)
	if err != nil {
		return fmt.Errorf("encode preset: %w", err)
	}
	return os.WriteFile(path, buf, 0644)
}
