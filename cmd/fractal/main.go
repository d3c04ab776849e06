// SPDX-License-Identifier: MIT

// Command fractal renders an escape-time fractal to an image file.
//
//	fractal -kind multibrot-julia -param -0.8,0.156 -center 0,0 -output julia.webp
//
// Settings come from an optional JSON file (-config); flags override it.
package main

import (
	"context"
	"flag"
	"fmt"
	"image"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/HugoSmits86/nativewebp"
	"github.com/disintegration/imaging"

	"github.com/katalvlaran/lvmath/fractal"
	"github.com/katalvlaran/lvmath/internal/config"
)

// complexFlag parses "re,im" into a config point.
type complexFlag struct{ p *config.Complex }

// String implements flag.Value.
func (f *complexFlag) String() string {
	if f.p == nil {
		return ""
	}
	return fmt.Sprintf("%g,%g", f.p.Re, f.p.Im)
}

// Set implements flag.Value.
func (f *complexFlag) Set(s string) error {
	re, im, ok := strings.Cut(s, ",")
	if !ok {
		return fmt.Errorf("want re,im, got %q", s)
	}
	var c config.Complex
	var err error
	if c.Re, err = strconv.ParseFloat(strings.TrimSpace(re), 64); err != nil {
		return err
	}
	if c.Im, err = strconv.ParseFloat(strings.TrimSpace(im), 64); err != nil {
		return err
	}
	f.p = &c
	return nil
}

func main() {
	configFile := flag.String("config", "", "Path to config.json file")
	output := flag.String("output", "", "Output image, format by extension (default: fractal.png)")
	kind := flag.String("kind", "", "multibrot, multibrot-julia, multicorn, multicorn-julia, lambda or lambda-julia")
	power := flag.Float64("power", 0, "Exponent (default: 2)")
	scale := flag.Float64("scale", 0, "Height of the view in plane units")
	width := flag.Int("width", 0, "Image width in pixels")
	height := flag.Int("height", 0, "Image height in pixels")
	iterations := flag.Uint64("iterations", 0, "Iteration bound per pixel")
	supersample := flag.Int("supersample", 0, "Render at k× size and downsample (1-8)")
	workers := flag.Int("workers", 0, "Number of worker goroutines (default: NumCPU)")
	var param, center complexFlag
	flag.Var(&param, "param", "Start point, or Julia constant, as re,im")
	flag.Var(&center, "center", "View centre as re,im")

	flag.Parse()

	var cfg config.Config
	if *configFile != "" {
		var err error
		cfg, err = config.Load(*configFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
	}

	cfg.Resolve(config.Flags{
		Output:      *output,
		Kind:        *kind,
		Power:       *power,
		Param:       param.p,
		Center:      center.p,
		Scale:       *scale,
		Width:       *width,
		Height:      *height,
		Iterations:  *iterations,
		Supersample: *supersample,
		Workers:     *workers,
	})

	f, opts, err := cfg.Build()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	fmt.Printf("Rendering %s %dx%d (x%d), %d iterations, %d workers\n",
		cfg.Kind, cfg.Width, cfg.Height, cfg.Supersample, cfg.Iterations, cfg.Workers)
	start := time.Now()

	img, err := render(ctx, f, cfg, opts)
	if err != nil {
		stop()
		fmt.Fprintf(os.Stderr, "Error rendering: %v\n", err)
		os.Exit(1)
	}

	if err := save(cfg.Output, img); err != nil {
		stop()
		fmt.Fprintf(os.Stderr, "Error saving %s: %v\n", cfg.Output, err)
		os.Exit(1)
	}

	fmt.Printf("Done in %.1fs: %s\n", time.Since(start).Seconds(), cfg.Output)
}

func render(ctx context.Context, f fractal.Fractal, cfg config.Config, opts []fractal.Option) (image.Image, error) {
	img, err := fractal.Render(ctx, f, opts...)
	if err != nil {
		return nil, err
	}
	if cfg.Supersample > 1 {
		return imaging.Resize(img, cfg.Width, cfg.Height, imaging.Lanczos), nil
	}
	return img, nil
}

func save(path string, img image.Image) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	if !strings.EqualFold(filepath.Ext(path), ".webp") {
		return imaging.Save(img, path)
	}

	out, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := nativewebp.Encode(out, img, nil); err != nil {
		out.Close()
		return fmt.Errorf("webp encode: %w", err)
	}
	return out.Close()
}
