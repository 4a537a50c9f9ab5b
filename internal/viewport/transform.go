// Package viewport holds the zoom/pan state of the floor map.
//
// It translates pointer and touch gestures into an affine transform for the
// rendering layer. It knows nothing about desks or bookings.
package viewport

import (
	"fmt"
	"math"
)

const (
	MinZoom = 1.0
	MaxZoom = 5.0

	WheelStep  = 0.1
	ButtonStep = 0.2

	// Pinch distance change is scaled down to a zoom delta.
	pinchScale = 0.01
)

type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// State is the full viewport state. Zero value is the identity view.
type State struct {
	Zoom float64 `json:"zoom"`
	PanX float64 `json:"panX"`
	PanY float64 `json:"panY"`
}

// Transform drives a floor-map viewport. Not safe for concurrent use; each
// rendered map owns exactly one.
type Transform struct {
	zoom float64
	panX float64
	panY float64

	// drag state
	panning   bool
	startPanX float64
	startPanY float64

	// pinch state
	lastTouchDistance float64
	lastTouchCenter   Point

	// last known pointer position, used as the default zoom focal point
	lastPointer    Point
	hasLastPointer bool
}

func New() *Transform {
	return &Transform{zoom: MinZoom}
}

func (t *Transform) State() State {
	return State{Zoom: t.zoom, PanX: t.panX, PanY: t.panY}
}

func (t *Transform) Zoom() float64 { return t.zoom }

// TrackPointer records the pointer position used as the focal point for
// button/keyboard zoom.
func (t *Transform) TrackPointer(p Point) {
	t.lastPointer = p
	t.hasLastPointer = true
}

// ZoomBy clamps zoom+delta to [MinZoom, MaxZoom] and recomputes the pan so
// the focal point stays fixed: the focal coordinate is converted to pre-zoom
// space with the current pan/zoom, then the new pan is solved for the new
// zoom and the same pre-zoom point.
func (t *Transform) ZoomBy(delta float64, focal Point) {
	oldZoom := t.zoom
	newZoom := clamp(oldZoom+delta, MinZoom, MaxZoom)
	if newZoom == oldZoom {
		return
	}

	preX := (focal.X - t.panX) / oldZoom
	preY := (focal.Y - t.panY) / oldZoom

	t.zoom = newZoom
	t.panX = focal.X - preX*newZoom
	t.panY = focal.Y - preY*newZoom
}

// ZoomIn/ZoomOut zoom by a fixed step around the last pointer position, or
// the viewport center when no pointer has been seen yet.
func (t *Transform) ZoomIn(center Point)  { t.ZoomBy(ButtonStep, t.focalOr(center)) }
func (t *Transform) ZoomOut(center Point) { t.ZoomBy(-ButtonStep, t.focalOr(center)) }

func (t *Transform) focalOr(center Point) Point {
	if t.hasLastPointer {
		return t.lastPointer
	}
	return center
}

// PanBy translates the view. Panning is a no-op at base zoom, where the whole
// map is already visible.
func (t *Transform) PanBy(dx, dy float64) {
	if t.zoom <= MinZoom {
		return
	}
	t.panX += dx
	t.panY += dy
}

func (t *Transform) Reset() {
	t.zoom = MinZoom
	t.panX = 0
	t.panY = 0
	t.panning = false
	t.lastTouchDistance = 0
}

// Wheel zooms around the cursor position.
func (t *Transform) Wheel(deltaY float64, cursor Point) {
	step := WheelStep
	if deltaY > 0 {
		step = -WheelStep
	}
	t.ZoomBy(step, cursor)
}

// DragStart begins a single-pointer pan. Only effective above base zoom.
func (t *Transform) DragStart(p Point) {
	if t.zoom <= MinZoom {
		return
	}
	t.panning = true
	t.startPanX = p.X - t.panX
	t.startPanY = p.Y - t.panY
}

func (t *Transform) DragMove(p Point) {
	if !t.panning || t.zoom <= MinZoom {
		return
	}
	t.panX = p.X - t.startPanX
	t.panY = p.Y - t.startPanY
}

func (t *Transform) DragEnd() { t.panning = false }

func (t *Transform) Panning() bool { return t.panning }

// TouchStart handles the beginning of a touch gesture. Two pointers arm a
// pinch, one arms a pan.
func (t *Transform) TouchStart(touches []Point) {
	switch len(touches) {
	case 2:
		t.lastTouchDistance = distance(touches[0], touches[1])
		t.lastTouchCenter = midpoint(touches[0], touches[1])
	case 1:
		t.DragStart(touches[0])
	}
}

// TouchMove continues a pinch or a pan. Pinch zoom converts the pairwise
// distance delta into a zoom delta focused on the midpoint.
func (t *Transform) TouchMove(touches []Point) {
	switch len(touches) {
	case 2:
		d := distance(touches[0], touches[1])
		if t.lastTouchDistance > 0 {
			mid := midpoint(touches[0], touches[1])
			t.ZoomBy((d-t.lastTouchDistance)*pinchScale, mid)
			t.lastTouchCenter = mid
		}
		t.lastTouchDistance = d
	case 1:
		t.DragMove(touches[0])
	}
}

func (t *Transform) TouchEnd(remaining []Point) {
	if len(remaining) < 2 {
		t.lastTouchDistance = 0
	}
	if len(remaining) == 0 {
		t.panning = false
	}
}

// CSSTransform renders the state as a CSS transform for the SVG layer.
func (t *Transform) CSSTransform() string {
	return fmt.Sprintf("translate(%gpx, %gpx) scale(%g)", t.panX, t.panY, t.zoom)
}

func distance(a, b Point) float64 {
	dx := a.X - b.X
	dy := a.Y - b.Y
	return math.Sqrt(dx*dx + dy*dy)
}

func midpoint(a, b Point) Point {
	return Point{X: (a.X + b.X) / 2, Y: (a.Y + b.Y) / 2}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
