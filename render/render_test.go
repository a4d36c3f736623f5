package render

import (
	"errors"
	"image"
	"image/color"
	"math"
	"testing"

	"github.com/npillmayer/epicycles"
	"github.com/npillmayer/epicycles/fourier"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type polyline struct {
	points []image.Point
	color  color.RGBA
}

// recorder is a canvas remembering every call.
type recorder struct {
	w, h      int
	calls     []string
	cleared   []color.RGBA
	polylines []polyline
	failDraw  bool
}

func (rec *recorder) Size() (int, int) { return rec.w, rec.h }

func (rec *recorder) Clear(c color.RGBA) {
	rec.calls = append(rec.calls, "clear")
	rec.cleared = append(rec.cleared, c)
}

func (rec *recorder) DrawPolyline(points []image.Point, c color.RGBA) error {
	rec.calls = append(rec.calls, "polyline")
	if rec.failDraw {
		return errors.New("draw failed")
	}
	rec.polylines = append(rec.polylines, polyline{points: points, color: c})
	return nil
}

func (rec *recorder) Present() error {
	rec.calls = append(rec.calls, "present")
	return nil
}

func TestProjection(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	r := New(&recorder{w: 1000, h: 800}, 0.5, 1)
	assert.Equal(t, image.Point{X: 500, Y: 400}, r.ToScreen(epicycles.Origin))
	assert.Equal(t, image.Point{X: 505, Y: 395}, r.ToScreen(epicycles.P(10, 10)))
	assert.Equal(t, image.Point{X: 450, Y: 450}, r.ToScreen(epicycles.P(-100, -100)))
	assert.Equal(t, float32(0.5), r.Scale())
	r = New(&recorder{w: 1000, h: 800}, 1, 2)
	assert.Equal(t, image.Point{X: 250, Y: 200}, r.ToScreen(epicycles.Origin))
	assert.Equal(t, image.Point{X: 251, Y: 198}, r.ToScreen(epicycles.P(1.5, 1.5)))
}

func TestRenderLayers(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	rec := &recorder{w: 200, h: 100}
	r := New(rec, 1, 1)
	es := []fourier.Epicycle{
		{C: epicycles.P(10, 0), K: 1},
		{C: epicycles.P(0, 5), K: -1},
	}
	r.Render(es, 0, []epicycles.Pair{epicycles.P(1, 1), epicycles.P(2, 2)})
	assert.Equal(t, []string{"clear", "polyline", "polyline", "polyline", "polyline", "present"}, rec.calls)
	assert.Equal(t, []color.RGBA{DefaultPalette.Background}, rec.cleared)
	require.Len(t, rec.polylines, 4)
	// circles are translucent, closed and centered at the partial sums
	first, second := rec.polylines[0], rec.polylines[1]
	assert.Equal(t, CircleAlpha, first.color.A)
	require.Len(t, first.points, CircleEdgeCount+1)
	assert.Equal(t, image.Point{X: 110, Y: 50}, first.points[0])
	assert.Equal(t, first.points[0], first.points[CircleEdgeCount])
	assert.Equal(t, image.Point{X: 115, Y: 50}, second.points[0], "second circle around first tip")
	chain := rec.polylines[2]
	assert.Equal(t, DefaultPalette.Chain, chain.color)
	assert.Equal(t, []image.Point{{X: 100, Y: 50}, {X: 110, Y: 50}, {X: 110, Y: 45}}, chain.points)
	tr := rec.polylines[3]
	assert.Equal(t, DefaultPalette.Trail, tr.color)
	assert.Equal(t, []image.Point{{X: 101, Y: 49}, {X: 102, Y: 48}}, tr.points)
}

func TestRenderSurvivesDrawFailures(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	rec := &recorder{w: 20, h: 20, failDraw: true}
	r := New(rec, 1, 1)
	es := []fourier.Epicycle{{C: epicycles.P(1, 0), K: 1}}
	r.Render(es, 0.5, []epicycles.Pair{epicycles.Origin})
	assert.Equal(t, []string{"clear", "polyline", "polyline", "polyline", "present"}, rec.calls)
	assert.Empty(t, rec.polylines)
}

func TestFitScale(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	assert.InDelta(t, 4.0, float64(FitScale(epicycles.P(100, 50), 1000, 800, 1, 0.2)), 1e-4)
	assert.InDelta(t, 3.2, float64(FitScale(epicycles.P(100, 100), 1000, 800, 1, 0.2)), 1e-4)
	assert.InDelta(t, 0.5, float64(FitScale(epicycles.P(0, 100), 200, 200, 2, 0)), 1e-4)
	assert.Equal(t, float32(1), FitScale(epicycles.Origin, 100, 100, 1, 0.1))
}

func TestToScreenClampsCoordinates(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	r := New(&recorder{w: 80, h: 48}, 1, 1)
	assert.Equal(t, image.Point{X: CoordLimit, Y: CoordLimit}, r.ToScreen(epicycles.P(3e38, -3e38)))
	assert.Equal(t, image.Point{X: -CoordLimit, Y: -CoordLimit}, r.ToScreen(epicycles.P(-3e38, 3e38)))
	nan := float32(math.NaN())
	assert.Equal(t, image.Point{X: -CoordLimit, Y: -CoordLimit}, r.ToScreen(epicycles.P(nan, nan)))
	assert.Equal(t, image.Point{X: 41, Y: 23}, r.ToScreen(epicycles.P(1, 1)))
}

func TestChainIsDrawnFromFourierChain(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	rec := &recorder{w: 400, h: 400}
	r := New(rec, 2, 1)
	es := []fourier.Epicycle{
		{C: epicycles.P(40, 0), K: 1},
		{C: epicycles.P(0, 20), K: -1},
		{C: epicycles.P(10, 10), K: 2},
	}
	const at = 0.3
	r.DrawEpicycles(es, at, DefaultPalette.Chain)
	require.Len(t, rec.polylines, len(es)+1)
	chain := fourier.Chain(es, at)
	for i := range es {
		assert.Equal(t, r.ToScreen(chain[i]+epicycles.P(es[i].Radius(), 0)), rec.polylines[i].points[0],
			"circle %d starts at angle 0 around chain point %d", i, i)
	}
	expected := make([]image.Point, len(chain))
	for i, p := range chain {
		expected[i] = r.ToScreen(p)
	}
	assert.Equal(t, expected, rec.polylines[len(es)].points)
}
