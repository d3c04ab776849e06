// SPDX-License-Identifier: MIT

package config

import (
	"strings"

	"github.com/katalvlaran/lvmath/color"
	"github.com/katalvlaran/lvmath/fractal"
)

var kinds = map[string]func(p fractal.Point, pow fractal.Power) fractal.Fractal{
	KindMultibrot: func(p fractal.Point, pow fractal.Power) fractal.Fractal {
		return fractal.Multibrot{Start: p, Power: pow}
	},
	KindMultibrotJulia: func(p fractal.Point, pow fractal.Power) fractal.Fractal {
		return fractal.MultibrotJulia{Center: p, Power: pow}
	},
	KindMulticorn: func(p fractal.Point, pow fractal.Power) fractal.Fractal {
		return fractal.Multicorn{Start: p, Power: pow}
	},
	KindMulticornJulia: func(p fractal.Point, pow fractal.Power) fractal.Fractal {
		return fractal.MulticornJulia{Center: p, Power: pow}
	},
	KindLambda: func(p fractal.Point, pow fractal.Power) fractal.Fractal {
		return fractal.Lambda{Start: p, Power: pow}
	},
	KindLambdaJulia: func(p fractal.Point, pow fractal.Power) fractal.Fractal {
		return fractal.LambdaJulia{Center: p, Power: pow}
	},
}

// power picks the cheapest exponent kind that represents the setting.
func (c *Config) power() fractal.Power {
	switch {
	case c.PowerIm != 0:
		return fractal.ComplexPower{Re: c.Power, Im: c.PowerIm}
	case c.Power >= 1 && c.Power == float64(uint32(c.Power)):
		return fractal.IntPower(uint32(c.Power))
	}
	return fractal.FloatPower(c.Power)
}

// Build turns a resolved, valid Config into a fractal and the Render
// options for it. The image size is multiplied by Supersample.
func (c *Config) Build() (fractal.Fractal, []fractal.Option, error) {
	if err := c.Validate(); err != nil {
		return nil, nil, err
	}

	f := kinds[c.Kind](c.Param.point(), c.power())

	interior, err := color.ParseHex(c.Interior)
	if err != nil {
		return nil, nil, err
	}
	opts := []fractal.Option{
		fractal.WithSize(c.Width*c.Supersample, c.Height*c.Supersample),
		fractal.WithCenter(c.Center.point()),
		fractal.WithScale(c.Scale),
		fractal.WithIterationBound(c.Iterations),
		fractal.WithLengthBound(c.LengthBound),
		fractal.WithWorkers(c.Workers),
		fractal.WithInterior(interior),
		fractal.WithCycle(c.Cycle),
	}

	if len(c.Palette) > 0 {
		stops := make([]color.Rgb, len(c.Palette))
		for i, s := range c.Palette {
			if stops[i], err = color.ParseHex(s); err != nil {
				return nil, nil, err
			}
		}
		g, err := color.NewGradient(huePaths[strings.ToLower(c.HuePath)], stops...)
		if err != nil {
			return nil, nil, err
		}
		opts = append(opts, fractal.WithGradient(g))
	}

	return f, opts, nil
}
