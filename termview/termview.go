/*
Package termview presents epicycle drawings in a terminal.

A View turns a tcell screen into a small pixel canvas. Every character cell
holds two pixels stacked vertically: the upper one is drawn as the foreground
of an upper half block '▀', the lower one as the cell's background. A
terminal of W columns and H rows therefore offers W×2H pixels of roughly
square shape.

The view is also the source of input events: the space bar starts the
animation, Escape, Ctrl-C and 'q' quit.

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package termview

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/gdamore/tcell/v2"
	colorful "github.com/lucasb-eyer/go-colorful"
	"github.com/npillmayer/epicycles/animator"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'graphics'
func tracer() tracing.Trace {
	return tracing.Select("graphics")
}

var (
	// ErrSurfaceInit indicates a terminal screen which could not be set up.
	ErrSurfaceInit = errors.New("cannot initialize terminal surface")
	// ErrClosed indicates drawing onto a view after Close.
	ErrClosed = errors.New("view is closed")
)

const halfBlock = '▀'

// View is a pixel canvas on a terminal screen.
type View struct {
	screen tcell.Screen
	width  int          // pixels per row = columns
	height int          // pixel rows = 2 × terminal rows
	pixels []color.RGBA // row-major
	closed bool
}

// Open creates a view on the terminal tcell finds for this process.
func Open() (*View, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSurfaceInit, err)
	}
	return New(screen)
}

// New initializes screen and creates a view on it. The pixel size of the
// view is fixed to the screen size at this moment.
func New(screen tcell.Screen) (*View, error) {
	if screen == nil {
		return nil, fmt.Errorf("%w: no screen", ErrSurfaceInit)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSurfaceInit, err)
	}
	screen.HideCursor()
	v := &View{screen: screen}
	cols, rows := screen.Size()
	v.resize(cols, 2*rows)
	tracer().Infof("terminal view with %dx%d pixels", v.width, v.height)
	return v, nil
}

// Close restores the terminal.
func (v *View) Close() {
	if v.closed {
		return
	}
	v.closed = true
	v.screen.Fini()
}

func (v *View) resize(w, h int) {
	v.width, v.height = w, h
	v.pixels = make([]color.RGBA, w*h)
}

// Size is the size of the view in pixels.
func (v *View) Size() (int, int) {
	return v.width, v.height
}

// Pixel returns the color of pixel (x, y). Pixels outside the view are
// transparent black.
func (v *View) Pixel(x, y int) color.RGBA {
	if x < 0 || y < 0 || x >= v.width || y >= v.height {
		return color.RGBA{}
	}
	return v.pixels[y*v.width+x]
}

// Clear fills all pixels with c, ignoring its alpha.
func (v *View) Clear(c color.RGBA) {
	c.A = 255
	for i := range v.pixels {
		v.pixels[i] = c
	}
}

// DrawPolyline connects consecutive points with straight lines. Translucent
// colors are blended over the pixels already there. Parts outside the view
// are clipped.
func (v *View) DrawPolyline(points []image.Point, c color.RGBA) error {
	if v.closed {
		return ErrClosed
	}
	switch len(points) {
	case 0:
		return nil
	case 1:
		v.plot(points[0].X, points[0].Y, c)
		return nil
	}
	for i := 1; i < len(points); i++ {
		// skip the shared start point, so translucent strokes do not
		// darken joints twice
		v.line(points[i-1], points[i], c, i > 1)
	}
	return nil
}

// Present shows the pixels on the terminal.
func (v *View) Present() error {
	if v.closed {
		return ErrClosed
	}
	rows := v.height / 2
	for row := 0; row < rows; row++ {
		for x := 0; x < v.width; x++ {
			upper, lower := v.Pixel(x, 2*row), v.Pixel(x, 2*row+1)
			style := tcell.StyleDefault.Foreground(tcellColor(upper)).Background(tcellColor(lower))
			v.screen.SetContent(x, row, halfBlock, nil, style)
		}
	}
	v.screen.Show()
	return nil
}

// line rasterizes the segment p→q with Bresenham's algorithm, after clipping
// it to the view. skipFirst leaves out p, but only if p is inside the view.
func (v *View) line(p, q image.Point, c color.RGBA, skipFirst bool) {
	p0, q0, ok := clip(p, q, v.width, v.height)
	if !ok {
		return
	}
	skipFirst = skipFirst && p0 == p
	p, q = p0, q0
	dx, dy := abs(q.X-p.X), -abs(q.Y-p.Y)
	sx, sy := sign(q.X-p.X), sign(q.Y-p.Y)
	err := dx + dy
	x, y := p.X, p.Y
	first := true
	for {
		if !first || !skipFirst {
			v.plot(x, y, c)
		}
		first = false
		if x == q.X && y == q.Y {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x += sx
		}
		if e2 <= dx {
			err += dx
			y += sy
		}
	}
}

// clip cuts the segment p→q to the pixel area [0,w−1]×[0,h−1] following
// Liang and Barsky. It returns false if no part of the segment is inside.
func clip(p, q image.Point, w, h int) (image.Point, image.Point, bool) {
	x0, y0 := float64(p.X), float64(p.Y)
	dx, dy := float64(q.X-p.X), float64(q.Y-p.Y)
	t0, t1 := 0.0, 1.0
	edges := [4][2]float64{
		{-dx, x0},
		{dx, float64(w-1) - x0},
		{-dy, y0},
		{dy, float64(h-1) - y0},
	}
	for _, e := range edges {
		pk, qk := e[0], e[1]
		if pk == 0 {
			if qk < 0 {
				return p, q, false
			}
			continue
		}
		r := qk / pk
		if pk < 0 {
			if r > t1 {
				return p, q, false
			}
			t0 = math.Max(t0, r)
		} else {
			if r < t0 {
				return p, q, false
			}
			t1 = math.Min(t1, r)
		}
	}
	if t0 > 0 {
		p = image.Point{X: int(math.Round(x0 + t0*dx)), Y: int(math.Round(y0 + t0*dy))}
	}
	if t1 < 1 {
		q = image.Point{X: int(math.Round(x0 + t1*dx)), Y: int(math.Round(y0 + t1*dy))}
	}
	return p, q, true
}

func (v *View) plot(x, y int, c color.RGBA) {
	if x < 0 || y < 0 || x >= v.width || y >= v.height {
		return
	}
	i := y*v.width + x
	v.pixels[i] = blend(v.pixels[i], c)
}

// blend paints c with its alpha over dst.
func blend(dst, c color.RGBA) color.RGBA {
	switch c.A {
	case 255:
		return c
	case 0:
		return dst
	}
	under := colorful.Color{R: float64(dst.R) / 255, G: float64(dst.G) / 255, B: float64(dst.B) / 255}
	over := colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
	r, g, b := under.BlendRgb(over, float64(c.A)/255).Clamped().RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}
}

func tcellColor(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// Poll drains the pending terminal events without blocking and translates
// them into animator events. A resize event resizes the pixel buffer.
func (v *View) Poll() []animator.Event {
	var events []animator.Event
	for !v.closed && v.screen.HasPendingEvent() {
		switch ev := v.screen.PollEvent().(type) {
		case *tcell.EventKey:
			if e, ok := translateKey(ev); ok {
				events = append(events, e)
			}
		case *tcell.EventResize:
			cols, rows := ev.Size()
			if cols != v.width || 2*rows != v.height {
				tracer().Debugf("terminal resized to %dx%d cells", cols, rows)
				v.resize(cols, 2*rows)
				v.screen.Sync()
			}
		case nil:
			return events
		}
	}
	return events
}

func translateKey(ev *tcell.EventKey) (animator.Event, bool) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return animator.Quit, true
	case tcell.KeyRune:
		switch ev.Rune() {
		case ' ':
			return animator.Start, true
		case 'q', 'Q':
			return animator.Quit, true
		}
	}
	return animator.Start, false
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

func sign(n int) int {
	switch {
	case n < 0:
		return -1
	case n > 0:
		return 1
	}
	return 0
}
