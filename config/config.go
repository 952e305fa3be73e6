/*
Package config loads the sizing and palette of a flower field from YAML.

A configuration file may set any subset of the fields; missing fields keep
their defaults:

	palette: ["#d1495b", "#edae49", "#66a182"]
	capacity: 6
	duration: {min: 500, max: 2000}
	armLength: {min: 0.3, max: 0.5}
	seed: 42
	render: {splitCount: 8, fps: 60}

BSD License

Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/npillmayer/flowers/plant"
	"github.com/npillmayer/schuko/tracing"
	"gopkg.in/yaml.v3"
)

// tracer writes to trace with key 'flowers.config'
func tracer() tracing.Trace {
	return tracing.Select("flowers.config")
}

var (
	// ErrInvalidConfig indicates a configuration which does not validate.
	ErrInvalidConfig = errors.New("invalid configuration")
	// ErrInvalidColor indicates a palette entry which is not a hex color.
	ErrInvalidColor = errors.New("invalid palette color")
)

// Config is the file format of a field configuration.
type Config struct {
	Palette       []string     `yaml:"palette"`       // hex colors, one plant per color
	Capacity      int          `yaml:"capacity"`      // growth elements remembered per plant
	Duration      IntRange     `yaml:"duration"`      // element lifetime in milliseconds
	InitialLength FloatRange   `yaml:"initialLength"` // length of a plant's first segment
	ArmLength     FloatRange   `yaml:"armLength"`     // length of a growth step
	BranchScale   float64      `yaml:"branchScale"`   // branch size relative to a growth step
	BranchChance  int          `yaml:"branchChance"`  // one in branchChance turning steps branches
	RootWidth     float64      `yaml:"rootWidth"`
	BranchWidth   float64      `yaml:"branchWidth"`
	FlowerScale   float64      `yaml:"flowerScale"`
	Seed          uint64       `yaml:"seed"` // 0 seeds from the clock
	Render        RenderConfig `yaml:"render"`
}

// IntRange is a closed range of integers.
type IntRange struct {
	Min int `yaml:"min"`
	Max int `yaml:"max"`
}

// FloatRange is a range of floats.
type FloatRange struct {
	Min float64 `yaml:"min"`
	Max float64 `yaml:"max"`
}

// RenderConfig holds the settings of the terminal renderer.
type RenderConfig struct {
	SplitCount int `yaml:"splitCount"` // inner sample points per spline
	FPS        int `yaml:"fps"`
}

// DefaultPalette are the plant colors used if none are configured.
var DefaultPalette = []string{"#d1495b", "#edae49", "#66a182", "#8d96eb"}

// Default returns the reference configuration.
func Default() *Config {
	p := plant.DefaultParams()
	return &Config{
		Palette:       append([]string(nil), DefaultPalette...),
		Capacity:      p.Capacity,
		Duration:      IntRange{Min: p.DurationMin, Max: p.DurationMax},
		InitialLength: FloatRange{Min: p.InitialLengthMin, Max: p.InitialLengthMax},
		ArmLength:     FloatRange{Min: p.ArmLengthMin, Max: p.ArmLengthMax},
		BranchScale:   p.BranchScale,
		BranchChance:  p.BranchChance,
		RootWidth:     p.RootWidth,
		BranchWidth:   p.BranchWidth,
		FlowerScale:   p.FlowerScale,
		Render:        RenderConfig{SplitCount: 8, FPS: 60},
	}
}

// Load reads a configuration file. Fields missing from the file keep their
// default values.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config %q: %w", path, err)
	}
	c, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("config %q: %w", path, err)
	}
	tracer().Infof("loaded config %q: %d plants", path, len(c.Palette))
	return c, nil
}

// Parse decodes a YAML configuration on top of the defaults and validates it.
func Parse(data []byte) (*Config, error) {
	c := Default()
	if err := yaml.Unmarshal(data, c); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Validate checks the configuration: every palette entry has to be a color,
// the growth parameters have to be consistent and rendering needs a
// positive frame rate.
func (c *Config) Validate() error {
	if _, err := c.Colors(); err != nil {
		return err
	}
	if err := c.Params().Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if c.Render.SplitCount < 0 {
		return fmt.Errorf("%w: render split count must not be negative, is %d",
			ErrInvalidConfig, c.Render.SplitCount)
	}
	if c.Render.FPS <= 0 {
		return fmt.Errorf("%w: render fps must be positive, is %d", ErrInvalidConfig, c.Render.FPS)
	}
	return nil
}

// Params converts the growth settings.
func (c *Config) Params() plant.Params {
	return plant.Params{
		Capacity:         c.Capacity,
		DurationMin:      c.Duration.Min,
		DurationMax:      c.Duration.Max,
		InitialLengthMin: c.InitialLength.Min,
		InitialLengthMax: c.InitialLength.Max,
		ArmLengthMin:     c.ArmLength.Min,
		ArmLengthMax:     c.ArmLength.Max,
		BranchScale:      c.BranchScale,
		BranchChance:     c.BranchChance,
		RootWidth:        c.RootWidth,
		BranchWidth:      c.BranchWidth,
		FlowerScale:      c.FlowerScale,
	}
}

// Colors parses the palette. An empty palette is an error.
func (c *Config) Colors() ([]colorful.Color, error) {
	if len(c.Palette) == 0 {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, plant.ErrEmptyPalette)
	}
	colors := make([]colorful.Color, len(c.Palette))
	for i, hex := range c.Palette {
		col, err := colorful.Hex(hex)
		if err != nil {
			return nil, fmt.Errorf("%w: entry %d %q: %w", ErrInvalidColor, i, hex, err)
		}
		colors[i] = col
	}
	return colors, nil
}

// Source returns the random source for growth. Seed 0 yields nil, which
// makes the field seed itself from the clock.
func (c *Config) Source() plant.Source {
	if c.Seed == 0 {
		return nil
	}
	return plant.NewSource(c.Seed)
}

// Field creates a flower field as configured.
func (c *Config) Field() (*plant.Field, error) {
	colors, err := c.Colors()
	if err != nil {
		return nil, err
	}
	return plant.NewField(colors, c.Params(), c.Source())
}

// YAML encodes the configuration.
func (c *Config) YAML() ([]byte, error) {
	return yaml.Marshal(c)
}
