package fourier

import (
	"fmt"

	"github.com/npillmayer/epicycles"
)

// Epicycle is a rotating vector. The magnitude of C is the radius of the
// circle, its argument is the phase at t = 0. K is the frequency in full
// turns per unit of t; negative frequencies rotate clockwise.
type Epicycle struct {
	C epicycles.Pair
	K int
}

// Radius is |C|.
func (e Epicycle) Radius() float32 {
	return e.C.Abs()
}

// Position is the vector of e at time t, i.e. C · e^{i·2π·K·t}.
func (e Epicycle) Position(t float32) epicycles.Pair {
	return e.C * epicycles.Rot(epicycles.Pi2*float64(e.K)*float64(t))
}

func (e Epicycle) String() string {
	return fmt.Sprintf("{c=%s, k=%d}", e.C, e.K)
}

// Chain returns the running sums of the epicycles at time t. The chain
// starts at the origin and holds len(es)+1 points; point i is the sum of the
// first i epicycles, the last one is the tip. The order of es is the order
// of the chain.
func Chain(es []Epicycle, t float32) []epicycles.Pair {
	chain := make([]epicycles.Pair, len(es)+1)
	var sum epicycles.Pair
	for i, e := range es {
		sum += e.Position(t)
		chain[i+1] = sum
	}
	return chain
}

// Tip is the last point of Chain(es, t), i.e. the reconstructed path point
// at time t.
func Tip(es []Epicycle, t float32) epicycles.Pair {
	var tip epicycles.Pair
	for _, e := range es {
		tip += e.Position(t)
	}
	return tip
}
