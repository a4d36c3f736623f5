/*
Package render draws epicycles, their chain and the trail onto an integer
pixel canvas.

The canvas itself is an external collaborator; package termview provides one
for terminals, tests provide recording stubs. Complex coordinates are
projected onto the canvas by an affine map which puts the origin at the
center of the surface and lets positive imaginary parts point upwards.

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package render

import (
	"image"
	"image/color"
	"math"

	"github.com/npillmayer/epicycles"
	"github.com/npillmayer/epicycles/fourier"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'graphics'
func tracer() tracing.Trace {
	return tracing.Select("graphics")
}

// CircleEdgeCount is the number of line segments approximating a circle.
const CircleEdgeCount = 32

// CircleAlpha is the opacity of epicycle circles.
const CircleAlpha uint8 = 70

// Canvas is a drawing surface of integer pixels.
type Canvas interface {
	Size() (width, height int)                             // surface size, fixed at construction
	Clear(c color.RGBA)                                    // fill with c, alpha is ignored
	DrawPolyline(points []image.Point, c color.RGBA) error // connect consecutive points
	Present() error                                        // flush to the display
}

// Palette holds the colors of a scene.
type Palette struct {
	Background color.RGBA
	Chain      color.RGBA
	Trail      color.RGBA
}

// DefaultPalette is white epicycles and an orange trail on dark blue.
var DefaultPalette = Palette{
	Background: color.RGBA{R: 5, G: 20, B: 60, A: 255},
	Chain:      color.RGBA{R: 255, G: 255, B: 255, A: 255},
	Trail:      color.RGBA{R: 255, G: 100, B: 0, A: 255},
}

// Renderer draws scenes onto a canvas.
type Renderer struct {
	Palette    Palette
	canvas     Canvas
	scale      float32
	pixelSize  float32
	projection epicycles.AT
	unit       []epicycles.Pair // unit circle, CircleEdgeCount+1 points
}

// New creates a renderer for canvas. Scale multiplies complex coordinates,
// pixelSize is the edge length of a logical pixel in surface pixels.
func New(canvas Canvas, scale, pixelSize float32) *Renderer {
	r := &Renderer{
		Palette:   DefaultPalette,
		canvas:    canvas,
		scale:     scale,
		pixelSize: pixelSize,
	}
	w, h := canvas.Size()
	r.projection = Projection(w, h, scale, pixelSize)
	r.unit = make([]epicycles.Pair, CircleEdgeCount+1)
	for i := range r.unit {
		r.unit[i] = epicycles.Rot(epicycles.Pi2 * float64(i) / CircleEdgeCount)
	}
	tracer().Debugf("projection for %dx%d surface = %s", w, h, r.projection)
	return r
}

// Projection is the map from complex coordinates (cx, cy) to surface
// coordinates (cx·scale + W/2/pixelSize, −cy·scale + H/2/pixelSize).
func Projection(w, h int, scale, pixelSize float32) epicycles.AT {
	s := float64(scale)
	dx := float64(w) / 2 / float64(pixelSize)
	dy := float64(h) / 2 / float64(pixelSize)
	return epicycles.Scaling(s, -s).Combine(epicycles.Translation(dx, dy))
}

// FitScale finds a scale which shows a drawing of the given extent (largest
// absolute x and y) on a w×h surface, leaving a margin as a fraction of the
// surface. A degenerate extent yields scale 1.
func FitScale(extent epicycles.Pair, w, h int, pixelSize, margin float32) float32 {
	hw := float64(w) / 2 / float64(pixelSize) * float64(1-margin)
	hh := float64(h) / 2 / float64(pixelSize) * float64(1-margin)
	scale := math.Inf(1)
	if ex := float64(extent.X()); ex > 0 {
		scale = math.Min(scale, hw/ex)
	}
	if ey := float64(extent.Y()); ey > 0 {
		scale = math.Min(scale, hh/ey)
	}
	if math.IsInf(scale, 1) || scale <= 0 {
		return 1
	}
	return float32(scale)
}

// Scale is the current scale factor.
func (r *Renderer) Scale() float32 {
	return r.scale
}

// ToScreen projects a complex coordinate to a surface pixel. Coordinates are
// truncated towards zero and clamped to ±CoordLimit; NaN maps to −CoordLimit.
func (r *Renderer) ToScreen(p epicycles.Pair) image.Point {
	x, y := r.projection.Apply(float64(p.X()), float64(p.Y()))
	return image.Point{X: clampCoord(x), Y: clampCoord(y)}
}

// CoordLimit bounds projected pixel coordinates. It is far outside any
// surface while leaving room for integer arithmetic on the result.
const CoordLimit = 1 << 24

func clampCoord(v float64) int {
	switch {
	case math.IsNaN(v) || v <= -CoordLimit:
		return -CoordLimit
	case v >= CoordLimit:
		return CoordLimit
	}
	return int(v)
}

// Render draws a complete frame: background, epicycles at time t and the
// trail (oldest point first), and presents it. Failing draw calls are dropped
// for this frame.
func (r *Renderer) Render(es []fourier.Epicycle, t float32, trail []epicycles.Pair) {
	r.canvas.Clear(r.Palette.Background)
	r.DrawEpicycles(es, t, r.Palette.Chain)
	r.DrawTrail(trail, r.Palette.Trail)
	if err := r.canvas.Present(); err != nil {
		tracer().Debugf("present failed: %v", err)
	}
}

// DrawCircle draws a circle of the given radius around center.
func (r *Renderer) DrawCircle(center epicycles.Pair, radius float32, c color.RGBA) {
	points := make([]image.Point, len(r.unit))
	for i, u := range r.unit {
		points[i] = r.ToScreen(center + u.Scaled(radius))
	}
	r.polyline(points, c)
}

// DrawEpicycles draws, for each epicycle in order, a translucent circle
// around the tip of its predecessor, and then the chain connecting all tips.
func (r *Renderer) DrawEpicycles(es []fourier.Epicycle, t float32, c color.RGBA) {
	circle := c
	circle.A = CircleAlpha
	chain := fourier.Chain(es, t)
	points := make([]image.Point, len(chain))
	for i, p := range chain {
		if i < len(es) {
			r.DrawCircle(p, es[i].Radius(), circle)
		}
		points[i] = r.ToScreen(p)
	}
	r.polyline(points, c)
}

// DrawTrail draws the polyline through all trail points.
func (r *Renderer) DrawTrail(trail []epicycles.Pair, c color.RGBA) {
	points := make([]image.Point, len(trail))
	for i, p := range trail {
		points[i] = r.ToScreen(p)
	}
	r.polyline(points, c)
}

func (r *Renderer) polyline(points []image.Point, c color.RGBA) {
	if err := r.canvas.DrawPolyline(points, c); err != nil {
		tracer().Debugf("dropped polyline of %d points: %v", len(points), err)
	}
}
