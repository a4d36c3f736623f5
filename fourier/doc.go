// Package fourier decomposes a sampled closed path into epicycles and
// evaluates them.
/*
A closed path p(τ), τ ∈ [0,1), has the complex Fourier series

	p(τ) = Σ c_k · e^{i·2π·k·τ}

with coefficients

	c_k = ∫ p(τ) · e^{−i·2π·k·τ} dτ.

Given L samples p_j = p(j/L), the integral is replaced by a left Riemann sum
with step 1/L. No FFT is involved; every coefficient is a direct quadrature
over all samples, which is O(L) per coefficient and perfectly fine for the
few hundred harmonics a drawing needs.

Each term c_k · e^{i·2π·k·t} is a vector of length |c_k| rotating k times per
unit of t, starting at phase arg(c_k): an epicycle. Chaining the epicycles
tip to tail, in the order Compute emits them, draws the familiar picture of
circles riding on circles. The DC term c_0 only translates the drawing and is
left out.

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package fourier

import (
	"errors"

	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'epicycles'
func tracer() tracing.Trace {
	return tracing.Select("epicycles")
}

var (
	// ErrEmptyPath indicates a path without samples.
	ErrEmptyPath = errors.New("path has no samples")
	// ErrHarmonicBound indicates a harmonic bound below 1.
	ErrHarmonicBound = errors.New("harmonic bound must be at least 1")
)
