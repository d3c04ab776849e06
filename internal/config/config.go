// SPDX-License-Identifier: MIT

// Package config loads the settings of cmd/fractal from a JSON file and
// command-line flags.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/katalvlaran/lvmath/color"
	"github.com/katalvlaran/lvmath/fractal"
)

// ErrInvalid is wrapped by every error Validate reports.
var ErrInvalid = errors.New("config: invalid setting")

// Fractal kinds.
const (
	KindMultibrot      = "multibrot"
	KindMultibrotJulia = "multibrot-julia"
	KindMulticorn      = "multicorn"
	KindMulticornJulia = "multicorn-julia"
	KindLambda         = "lambda"
	KindLambdaJulia    = "lambda-julia"
)

// Defaults applied by Resolve.
const (
	DefaultOutput      = "fractal.png"
	DefaultKind        = KindMultibrot
	DefaultPower       = 2.0
	DefaultSupersample = 1
	DefaultInterior    = "#000000"
	DefaultHuePath     = "shortest"

	MaxSupersample = 8
)

// Complex is a point of the plane as written in the config file.
type Complex struct {
	Re float64 `json:"re"`
	Im float64 `json:"im"`
}

func (c Complex) point() fractal.Point { return fractal.Point{Re: c.Re, Im: c.Im} }

// Config holds the fractal, view and output settings.
type Config struct {
	Output string `json:"output"`

	// Fractal
	Kind    string   `json:"kind"`
	Power   float64  `json:"power"`
	PowerIm float64  `json:"power_im"`
	Param   *Complex `json:"param"`

	// View
	Center      *Complex `json:"center"`
	Scale       float64  `json:"scale"`
	Width       int      `json:"width"`
	Height      int      `json:"height"`
	Iterations  uint64   `json:"iterations"`
	LengthBound float64  `json:"length_bound"`

	// Colouring
	Palette  []string `json:"palette"`
	Interior string   `json:"interior"`
	HuePath  string   `json:"hue_path"`
	Cycle    float64  `json:"cycle"`

	Supersample int `json:"supersample"`
	Workers     int `json:"workers"`
}

// Load reads a JSON config file and returns Config.
// Fields not set in the file keep their zero values.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}

	return cfg, nil
}

// Flags holds CLI flag values that override config file settings.
// Zero values and nil pointers leave the file setting alone.
type Flags struct {
	Output      string
	Kind        string
	Power       float64
	Param       *Complex
	Center      *Complex
	Scale       float64
	Width       int
	Height      int
	Iterations  uint64
	Supersample int
	Workers     int
}

// Resolve applies flags over the file settings, then fills every empty
// field with its default.
func (c *Config) Resolve(flags Flags) {
	if flags.Output != "" {
		c.Output = flags.Output
	}
	if flags.Kind != "" {
		c.Kind = flags.Kind
	}
	if flags.Power != 0 {
		c.Power = flags.Power
	}
	if flags.Param != nil {
		c.Param = flags.Param
	}
	if flags.Center != nil {
		c.Center = flags.Center
	}
	if flags.Scale > 0 {
		c.Scale = flags.Scale
	}
	if flags.Width > 0 {
		c.Width = flags.Width
	}
	if flags.Height > 0 {
		c.Height = flags.Height
	}
	if flags.Iterations > 0 {
		c.Iterations = flags.Iterations
	}
	if flags.Supersample > 0 {
		c.Supersample = flags.Supersample
	}
	if flags.Workers > 0 {
		c.Workers = flags.Workers
	}

	if c.Output == "" {
		c.Output = DefaultOutput
	}
	if c.Kind == "" {
		c.Kind = DefaultKind
	}
	c.Kind = strings.ToLower(c.Kind)
	if c.Power == 0 && c.PowerIm == 0 {
		c.Power = DefaultPower
	}
	if c.Param == nil {
		p := defaultParam(c.Kind)
		c.Param = &p
	}
	if c.Center == nil {
		p, _ := defaultView(c.Kind)
		c.Center = &p
	}
	if c.Scale <= 0 {
		_, c.Scale = defaultView(c.Kind)
	}
	if c.Width <= 0 {
		c.Width = fractal.DefaultWidth
	}
	if c.Height <= 0 {
		c.Height = fractal.DefaultHeight
	}
	if c.Iterations == 0 {
		c.Iterations = fractal.DefaultIterationBound
	}
	if c.LengthBound == 0 {
		c.LengthBound = fractal.DefaultLengthBound
	}
	if c.Interior == "" {
		c.Interior = DefaultInterior
	}
	if c.HuePath == "" {
		c.HuePath = DefaultHuePath
	}
	if c.Supersample <= 0 {
		c.Supersample = DefaultSupersample
	}
	if c.Workers <= 0 {
		c.Workers = runtime.NumCPU()
	}
}

// defaultParam is the start point of the parameter-plane kinds and the
// fixed constant of the Julia kinds.
func defaultParam(kind string) Complex {
	switch kind {
	case KindMultibrotJulia, KindMulticornJulia:
		return Complex{Re: -0.8, Im: 0.156}
	case KindLambda:
		return Complex{Re: 0.5}
	case KindLambdaJulia:
		return Complex{Re: 0.85, Im: 0.6}
	}
	return Complex{}
}

func defaultView(kind string) (Complex, float64) {
	switch kind {
	case KindMultibrot, KindMulticorn:
		return Complex{Re: -0.5}, fractal.DefaultScale
	case KindLambda:
		return Complex{Re: 1}, 4
	case KindLambdaJulia:
		return Complex{Re: 0.5}, 1.5
	}
	return Complex{}, fractal.DefaultScale
}

var saveFormats = map[string]bool{
	".png": true, ".jpg": true, ".jpeg": true, ".gif": true,
	".tif": true, ".tiff": true, ".bmp": true, ".webp": true,
}

var huePaths = map[string]color.HuePath{
	color.HueShortest.String():   color.HueShortest,
	color.HueIncreasing.String(): color.HueIncreasing,
	color.HueDecreasing.String(): color.HueDecreasing,
}

// Validate checks a resolved Config and reports every problem found.
func (c *Config) Validate() error {
	var errs []error
	bad := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalid}, args...)...))
	}

	if !saveFormats[strings.ToLower(filepath.Ext(c.Output))] {
		bad("unsupported output format %q", c.Output)
	}
	if _, ok := kinds[c.Kind]; !ok {
		bad("unknown kind %q", c.Kind)
	}
	if c.Width <= 0 || c.Height <= 0 {
		bad("size %dx%d", c.Width, c.Height)
	}
	if !(c.Scale > 0) || math.IsInf(c.Scale, 0) {
		bad("scale %v", c.Scale)
	}
	if !finite(c.Power) || !finite(c.PowerIm) {
		bad("power %v%+vi", c.Power, c.PowerIm)
	}
	for _, f := range []struct {
		name string
		p    *Complex
	}{{"param", c.Param}, {"center", c.Center}} {
		if f.p == nil {
			bad("%s not set", f.name)
		} else if !finite(f.p.Re) || !finite(f.p.Im) {
			bad("%s %v%+vi", f.name, f.p.Re, f.p.Im)
		}
	}
	if c.Iterations == 0 {
		bad("iterations must be positive")
	}
	if !(c.LengthBound > 1) || math.IsInf(c.LengthBound, 0) {
		bad("length_bound %v must be greater than 1", c.LengthBound)
	}
	if c.Cycle < 0 || !finite(c.Cycle) {
		bad("cycle %v", c.Cycle)
	}
	if c.Supersample < 1 || c.Supersample > MaxSupersample {
		bad("supersample %d not in [1, %d]", c.Supersample, MaxSupersample)
	}
	if c.Workers <= 0 {
		bad("workers %d", c.Workers)
	}
	if _, ok := huePaths[strings.ToLower(c.HuePath)]; !ok {
		bad("hue_path %q", c.HuePath)
	}
	if _, err := color.ParseHex(c.Interior); err != nil {
		bad("interior: %v", err)
	}
	for i, s := range c.Palette {
		if _, err := color.ParseHex(s); err != nil {
			bad("palette[%d]: %v", i, err)
		}
	}

	return errors.Join(errs...)
}

func finite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }
