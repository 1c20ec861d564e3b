package gesture

import (
	"math"
	"testing"

	"glazing-estimator/internal/annotate"
	"glazing-estimator/internal/viewport"
	"glazing-estimator/pkg/geometry"
)

// newTestController fits a 1000x800 photo into a 1000x800 surface so that
// device and image coordinates coincide (base scale 1, no letterbox).
func newTestController() (*Controller, *annotate.Set, *viewport.Viewport) {
	set := annotate.NewSet()
	view := viewport.New()
	c := NewController(set, &view)
	c.SetBaseFit(viewport.Fit(geometry.NewSize(1000, 800), geometry.NewSize(1000, 800)))
	return c, set, &view
}

func down(c *Controller, id int64, x, y float64) { c.Handle(PointerEvent{id, PhaseDown, x, y}) }
func move(c *Controller, id int64, x, y float64) { c.Handle(PointerEvent{id, PhaseMove, x, y}) }
func up(c *Controller, id int64, x, y float64)   { c.Handle(PointerEvent{id, PhaseUp, x, y}) }

func TestDragCommitsMeasurement(t *testing.T) {
	c, set, _ := newTestController()

	down(c, 1, 300, 300)
	if c.State() != StateDrawing {
		t.Fatalf("state = %v, want Drawing", c.State())
	}
	move(c, 1, 400, 350)
	draft, ok := c.Draft()
	if !ok {
		t.Fatal("draft missing during drag")
	}
	if draft.ID != annotate.DraftID {
		t.Errorf("draft ID = %d, want sentinel %d", draft.ID, annotate.DraftID)
	}
	up(c, 1, 400, 350)

	if c.State() != StateIdle {
		t.Errorf("state after release = %v, want Idle", c.State())
	}
	ms := set.Measurements()
	if len(ms) != 1 {
		t.Fatalf("got %d measurements, want 1", len(ms))
	}
	r := ms[0]
	if r.X != 300 || r.Y != 300 || r.W != 100 || r.H != 50 {
		t.Errorf("committed rect = %+v, want {300 300 100 50}", r)
	}
	if r.Label != "Window 1" {
		t.Errorf("label = %q, want %q", r.Label, "Window 1")
	}
}

func TestDragAnyDirection(t *testing.T) {
	c, set, _ := newTestController()
	// Drag up-left from the anchor.
	down(c, 1, 400, 350)
	move(c, 1, 300, 300)
	up(c, 1, 300, 300)

	ms := set.Measurements()
	if len(ms) != 1 {
		t.Fatalf("got %d measurements, want 1", len(ms))
	}
	r := ms[0]
	if r.X != 300 || r.Y != 300 || r.W != 100 || r.H != 50 {
		t.Errorf("committed rect = %+v, want normalized {300 300 100 50}", r)
	}
}

func TestTapDiscarded(t *testing.T) {
	c, set, _ := newTestController()
	down(c, 1, 300, 300)
	move(c, 1, 305, 308)
	up(c, 1, 305, 308)

	if set.Len() != 0 {
		t.Errorf("sub-threshold drag committed %d rects, want 0", set.Len())
	}
}

func TestOffImageStartRejected(t *testing.T) {
	c, set, _ := newTestController()
	down(c, 1, 1500, 300)
	if c.State() != StateIdle {
		t.Errorf("state = %v, want Idle for off-image down", c.State())
	}
	move(c, 1, 400, 350)
	up(c, 1, 400, 350)
	if set.Len() != 0 {
		t.Errorf("off-image gesture committed %d rects, want 0", set.Len())
	}
}

func TestSecondPointerDiscardsDraft(t *testing.T) {
	c, set, _ := newTestController()
	down(c, 1, 300, 300)
	move(c, 1, 400, 400)
	down(c, 2, 500, 300)

	if c.State() != StatePinching {
		t.Fatalf("state = %v, want Pinching", c.State())
	}
	if _, ok := c.Draft(); ok {
		t.Error("draft should be discarded when a second pointer lands")
	}

	up(c, 1, 400, 400)
	up(c, 2, 500, 300)
	if set.Len() != 0 {
		t.Errorf("discarded draft was committed: %d rects", set.Len())
	}
}

func TestPinchScaleClampUpper(t *testing.T) {
	c, _, view := newTestController()
	down(c, 1, 400, 400)
	down(c, 2, 420, 400) // baseline distance 20
	move(c, 1, 300, 400)
	move(c, 2, 500, 400) // distance 200, ratio 10x

	if view.Scale > viewport.MaxScale {
		t.Errorf("scale = %v, want <= %v", view.Scale, viewport.MaxScale)
	}
	if view.Scale != viewport.MaxScale {
		t.Errorf("scale = %v, want clamped to %v", view.Scale, viewport.MaxScale)
	}
}

func TestPinchScaleClampLower(t *testing.T) {
	c, _, view := newTestController()
	down(c, 1, 300, 400)
	down(c, 2, 500, 400) // baseline distance 200
	move(c, 1, 399, 400)
	move(c, 2, 401, 400) // distance 2, ratio 0.01x

	if view.Scale < viewport.MinScale {
		t.Errorf("scale = %v, want >= %v", view.Scale, viewport.MinScale)
	}
}

func TestPinchPanFollowsMidpoint(t *testing.T) {
	c, _, view := newTestController()
	down(c, 1, 300, 400)
	down(c, 2, 500, 400) // midpoint (400, 400)
	// Move both pointers right by 60 and down by 20 without changing distance.
	move(c, 1, 360, 420)
	move(c, 2, 560, 420)

	if math.Abs(view.TX-60) > 1e-9 || math.Abs(view.TY-20) > 1e-9 {
		t.Errorf("pan = (%v,%v), want (60,20)", view.TX, view.TY)
	}
	if math.Abs(view.Scale-1) > 1e-9 {
		t.Errorf("scale = %v, want unchanged 1", view.Scale)
	}
}

func TestPinchEndDoesNotResumeDrawing(t *testing.T) {
	c, set, _ := newTestController()
	down(c, 1, 300, 300)
	down(c, 2, 500, 300)
	up(c, 2, 500, 300)

	if c.State() != StateIdle {
		t.Errorf("state = %v, want Idle after pinch ends", c.State())
	}
	move(c, 1, 400, 400)
	up(c, 1, 400, 400)
	if set.Len() != 0 {
		t.Errorf("surviving pointer committed %d rects, want 0", set.Len())
	}
}

func TestCancelClearsEverything(t *testing.T) {
	c, set, view := newTestController()
	down(c, 1, 300, 300)
	move(c, 1, 450, 450)
	c.Handle(PointerEvent{ID: 1, Phase: PhaseCancel})

	if c.State() != StateIdle {
		t.Errorf("state = %v, want Idle after cancel", c.State())
	}
	if _, ok := c.Draft(); ok {
		t.Error("draft survived cancel")
	}
	if set.Len() != 0 {
		t.Errorf("cancel committed %d rects, want 0", set.Len())
	}

	// Pointer identities were evicted: a fresh down starts a fresh gesture.
	down(c, 1, 100, 100)
	if c.State() != StateDrawing {
		t.Errorf("state = %v, want Drawing after fresh down", c.State())
	}
	_ = view
}

func TestInterleavedPointerIdentities(t *testing.T) {
	c, set, _ := newTestController()
	down(c, 7, 100, 100)
	// A stray move from an unknown identity must not corrupt the drag.
	move(c, 99, 700, 700)
	move(c, 7, 200, 250)
	up(c, 7, 200, 250)

	ms := set.Measurements()
	if len(ms) != 1 {
		t.Fatalf("got %d measurements, want 1", len(ms))
	}
	if ms[0].W != 100 || ms[0].H != 150 {
		t.Errorf("rect = %+v, want 100x150 from pointer 7's events only", ms[0])
	}
}

func TestCalibrationKindCommit(t *testing.T) {
	c, set, _ := newTestController()
	c.SetKind(annotate.KindCalibration)
	down(c, 1, 100, 100)
	move(c, 1, 150, 300)
	up(c, 1, 150, 300)

	cal, ok := set.Calibration()
	if !ok {
		t.Fatal("calibration rectangle missing")
	}
	if cal.W != 50 || cal.H != 200 {
		t.Errorf("calibration = %+v, want 50x200", cal)
	}
}

func TestZoomKeepsCenterFixed(t *testing.T) {
	c, _, view := newTestController()
	fit := viewport.Fit(geometry.NewSize(1000, 800), geometry.NewSize(1000, 800))

	center := geometry.NewPoint2D(400, 300)
	imgBefore, ok := viewport.DeviceToImage(center, fit, *view)
	if !ok {
		t.Fatal("center should map before zoom")
	}
	c.Zoom(2, center.X, center.Y)
	imgAfter, ok := viewport.DeviceToImage(center, fit, *view)
	if !ok {
		t.Fatal("center should map after zoom")
	}
	if imgBefore.Distance(imgAfter) > 1e-6 {
		t.Errorf("image point under zoom center moved: %+v -> %+v", imgBefore, imgAfter)
	}
	if view.Scale != 2 {
		t.Errorf("scale = %v, want 2", view.Scale)
	}
}

func TestZoomClamped(t *testing.T) {
	c, _, view := newTestController()
	c.Zoom(100, 500, 400)
	if view.Scale != viewport.MaxScale {
		t.Errorf("scale = %v, want %v", view.Scale, viewport.MaxScale)
	}
	c.Zoom(0.0001, 500, 400)
	if view.Scale != viewport.MinScale {
		t.Errorf("scale = %v, want %v", view.Scale, viewport.MinScale)
	}
}
