// SPDX-License-Identifier: MIT

package fractal

import (
	"context"
	"fmt"
	"image"
	imgcolor "image/color"
	"math"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/lvmath/color"
	"github.com/katalvlaran/lvmath/scalar"
)

// Render draws f into a new image, one row per task on a pool of at most
// WithWorkers goroutines. It stops early and returns ctx.Err() when ctx is
// cancelled.
func Render(ctx context.Context, f Fractal, opts ...Option) (*image.RGBA, error) {
	o := gatherOptions(opts)
	if o.width <= 0 || o.height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrBadSize, o.width, o.height)
	}

	img := image.NewRGBA(image.Rect(0, 0, o.width, o.height))
	unit := o.scale / float64(o.height)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(o.workers)
	for y := 0; y < o.height; y++ {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			im := o.center.Im - (float64(y)-float64(o.height)/2+0.5)*unit
			for x := 0; x < o.width; x++ {
				re := o.center.Re + (float64(x)-float64(o.width)/2+0.5)*unit
				c := o.shade(f, Point{Re: re, Im: im})
				img.SetRGBA(x, y, imgcolor.RGBA{R: c.R, G: c.G, B: c.B, A: 0xff})
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return img, nil
}

// shade colours the pixel at c.
func (o *options) shade(f Fractal, c Point) color.Rgb {
	v, escaped := Iterate(f, c, o.iterationBound, o.lengthBound)
	if !escaped || math.IsNaN(v) {
		return o.interior
	}
	var t float64
	if o.cycle > 0 {
		t = math.Mod(math.Max(v, 0), o.cycle) / o.cycle
	} else {
		t = scalar.Clamp(v/float64(o.iterationBound), 0, 1)
	}
	return o.gradient.At(t)
}
