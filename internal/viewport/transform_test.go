package viewport

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const tolerance = 1e-9

func TestZoomBy_RoundTrip(t *testing.T) {
	tr := New()
	focal := Point{X: 300, Y: 200}

	tr.ZoomBy(0.4, focal) // off the lower clamp so the reverse step applies fully
	before := tr.State()

	tr.ZoomBy(ButtonStep, focal)
	tr.ZoomBy(-ButtonStep, focal)

	after := tr.State()
	assert.InDelta(t, before.Zoom, after.Zoom, tolerance)
	assert.InDelta(t, before.PanX, after.PanX, tolerance)
	assert.InDelta(t, before.PanY, after.PanY, tolerance)
}

func TestZoomBy_FocalPointStaysFixed(t *testing.T) {
	tr := New()
	tr.ZoomBy(1.0, Point{X: 100, Y: 100})

	// The map coordinate under the focal point before the zoom must still be
	// under it after.
	st := tr.State()
	focal := Point{X: 420, Y: 310}
	preX := (focal.X - st.PanX) / st.Zoom
	preY := (focal.Y - st.PanY) / st.Zoom

	tr.ZoomBy(0.7, focal)

	st = tr.State()
	assert.InDelta(t, focal.X, st.PanX+preX*st.Zoom, tolerance)
	assert.InDelta(t, focal.Y, st.PanY+preY*st.Zoom, tolerance)
}

func TestZoomBy_Clamped(t *testing.T) {
	tr := New()
	focal := Point{X: 0, Y: 0}

	tr.ZoomBy(100, focal)
	assert.Equal(t, MaxZoom, tr.Zoom())

	tr.ZoomBy(-100, focal)
	assert.Equal(t, MinZoom, tr.Zoom())

	// Clamped-out zoom must not disturb the pan.
	st := tr.State()
	tr.ZoomBy(-1, focal)
	assert.Equal(t, st, tr.State())
}

func TestPanBy_OnlyAboveBaseZoom(t *testing.T) {
	tr := New()

	tr.PanBy(50, 50)
	assert.Equal(t, State{Zoom: MinZoom}, tr.State())

	tr.ZoomBy(1.0, Point{})
	before := tr.State()
	tr.PanBy(50, -20)
	assert.Equal(t, before.PanX+50, tr.State().PanX)
	assert.Equal(t, before.PanY-20, tr.State().PanY)
}

func TestWheel_Direction(t *testing.T) {
	tr := New()
	cursor := Point{X: 600, Y: 424}

	tr.Wheel(-120, cursor) // scroll up zooms in
	assert.InDelta(t, MinZoom+WheelStep, tr.Zoom(), tolerance)

	tr.Wheel(120, cursor) // scroll down zooms out
	assert.InDelta(t, MinZoom, tr.Zoom(), tolerance)
}

func TestDrag(t *testing.T) {
	tr := New()

	// At base zoom dragging is inert.
	tr.DragStart(Point{X: 10, Y: 10})
	assert.False(t, tr.Panning())

	tr.ZoomBy(1.0, Point{})
	tr.DragStart(Point{X: 10, Y: 10})
	assert.True(t, tr.Panning())

	tr.DragMove(Point{X: 40, Y: 25})
	st := tr.State()

	tr.DragEnd()
	assert.False(t, tr.Panning())

	// Moves after release change nothing.
	tr.DragMove(Point{X: 500, Y: 500})
	assert.Equal(t, st, tr.State())
}

func TestDragMove_TracksPointerDelta(t *testing.T) {
	tr := New()
	tr.ZoomBy(1.0, Point{})
	base := tr.State()

	tr.DragStart(Point{X: 100, Y: 100})
	tr.DragMove(Point{X: 130, Y: 80})

	st := tr.State()
	assert.InDelta(t, base.PanX+30, st.PanX, tolerance)
	assert.InDelta(t, base.PanY-20, st.PanY, tolerance)
}

func TestPinch(t *testing.T) {
	tr := New()

	tr.TouchStart([]Point{{X: 100, Y: 100}, {X: 200, Y: 100}})
	// Fingers spread apart by 100px: zoom in by 100 * pinchScale.
	tr.TouchMove([]Point{{X: 50, Y: 100}, {X: 250, Y: 100}})
	assert.InDelta(t, MinZoom+1.0, tr.Zoom(), tolerance)

	// Lifting one finger disarms the pinch; the next two-finger move only
	// re-measures.
	tr.TouchEnd([]Point{{X: 50, Y: 100}})
	tr.TouchStart([]Point{{X: 50, Y: 100}, {X: 250, Y: 100}})
	tr.TouchMove([]Point{{X: 50, Y: 100}, {X: 250, Y: 100}})
	assert.InDelta(t, MinZoom+1.0, tr.Zoom(), tolerance)
}

func TestButtonZoom_UsesLastPointer(t *testing.T) {
	tr := New()
	center := Point{X: 600, Y: 424}

	tr.TrackPointer(Point{X: 100, Y: 100})
	tr.ZoomIn(center)

	expected := New()
	expected.ZoomBy(ButtonStep, Point{X: 100, Y: 100})
	assert.Equal(t, expected.State(), tr.State())
}

func TestReset(t *testing.T) {
	tr := New()
	tr.ZoomBy(2.3, Point{X: 77, Y: 13})
	tr.PanBy(40, 40)
	tr.DragStart(Point{X: 1, Y: 1})

	tr.Reset()
	assert.Equal(t, State{Zoom: MinZoom}, tr.State())
	assert.False(t, tr.Panning())
}

func TestCSSTransform(t *testing.T) {
	tr := New()
	assert.Equal(t, "translate(0px, 0px) scale(1)", tr.CSSTransform())

	tr.ZoomBy(0.5, Point{X: 0, Y: 0})
	assert.Equal(t, "translate(0px, 0px) scale(1.5)", tr.CSSTransform())
}
