package shape

import (
	"math"

	polyclip "github.com/akavel/polyclip-go"
	"github.com/npillmayer/epicycles"
)

// Box is an axis-parallel bounding box.
type Box struct {
	Min, Max epicycles.Pair
}

// Extent is the largest distance of the box from the origin along either
// axis. A drawing centered at the origin covering the box needs at least
// this half-width and half-height.
func (b Box) Extent() epicycles.Pair {
	ex := math.Max(math.Abs(float64(b.Min.X())), math.Abs(float64(b.Max.X())))
	ey := math.Max(math.Abs(float64(b.Min.Y())), math.Abs(float64(b.Max.Y())))
	return epicycles.P(float32(ex), float32(ey))
}

// Contour returns the samples as a closed polygon contour.
func (p Path) Contour() polyclip.Contour {
	c := make(polyclip.Contour, 0, len(p))
	for _, s := range p {
		c = append(c, polyclip.Point{X: float64(s.X()), Y: float64(s.Y())})
	}
	return c
}

// Bounds is the bounding box of all samples. The empty path has an empty
// box at the origin.
func (p Path) Bounds() Box {
	if len(p) == 0 {
		return Box{}
	}
	r := p.Contour().BoundingBox()
	return Box{
		Min: epicycles.P(float32(r.Min.X), float32(r.Min.Y)),
		Max: epicycles.P(float32(r.Max.X), float32(r.Max.Y)),
	}
}
