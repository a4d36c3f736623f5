package fourier

import (
	"fmt"

	"github.com/npillmayer/epicycles"
)

// Coefficient computes c_k for a sampled path by a left Riemann sum:
//
//	c_k = 1/L · Σ_{j=0}^{L−1} p_j · e^{−i·2π·k·j/L}
//
// path must not be empty.
func Coefficient(path []epicycles.Pair, k int) epicycles.Pair {
	L := len(path)
	var ck epicycles.Pair
	for j, p := range path {
		tau := float64(j) / float64(L)
		ck += p * epicycles.Rot(-epicycles.Pi2*float64(k)*tau)
	}
	return ck.Scaled(1 / float32(L))
}

// Compute decomposes a sampled path into epicycles for the frequencies
// ±1 … ±(n−1). The bound n itself is exclusive. For every m the epicycle for
// +m is followed by the one for −m, giving 2·(n−1) entries. Frequency 0 is
// never part of the result: a path is expected to be centered around the
// origin.
func Compute(path []epicycles.Pair, n int) ([]Epicycle, error) {
	if len(path) == 0 {
		return nil, ErrEmptyPath
	}
	if n < 1 {
		return nil, fmt.Errorf("%w: n = %d", ErrHarmonicBound, n)
	}
	es := make([]Epicycle, 0, 2*(n-1))
	for m := 1; m < n; m++ {
		es = append(es,
			Epicycle{C: Coefficient(path, m), K: m},
			Epicycle{C: Coefficient(path, -m), K: -m},
		)
	}
	tracer().Debugf("computed %d epicycles from %d samples", len(es), len(path))
	return es, nil
}
