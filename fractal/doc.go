// SPDX-License-Identifier: MIT

// Package fractal iterates escape-time fractals over the complex plane and
// renders them to images.
//
// A Fractal supplies three functions: the start value of z for a pixel,
// one iteration step, and a smoothing function that turns the escape
// iteration count into a continuous value. Iterate runs the loop for one
// pixel; Render runs it for every pixel of an image on a bounded pool of
// goroutines and colours escaped points through a color.Gradient.
//
// Six families are provided, each parameterized by a Power:
//
//	Multibrot       z ← zᵖ + c           z₀ = Start
//	MultibrotJulia  z ← zᵖ + Center      z₀ = c
//	Multicorn       z ← conj(z)ᵖ + c     z₀ = Start
//	MulticornJulia  z ← conj(z)ᵖ + Center
//	Lambda          z ← c·(z − zᵖ)       z₀ = Start
//	LambdaJulia     z ← Center·(z − zᵖ)  z₀ = c
//
// where c is the pixel's point in the plane.
package fractal
