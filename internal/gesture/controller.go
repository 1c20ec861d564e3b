// Package gesture turns pointer-identity-tagged input events into rectangle
// drafts, commits, and viewport pinch adjustments.
package gesture

import (
	"glazing-estimator/internal/annotate"
	"glazing-estimator/internal/viewport"
	"glazing-estimator/pkg/geometry"
)

// Phase is the lifecycle stage of a pointer event.
type Phase int

const (
	PhaseDown Phase = iota
	PhaseMove
	PhaseUp
	PhaseCancel
)

// PointerEvent is one input event in device coordinates, tagged with the
// identity of the pointer that produced it. Down/move/up for a given identity
// arrive strictly ordered; events from different identities may interleave.
type PointerEvent struct {
	ID    int64
	Phase Phase
	X     float64
	Y     float64
}

// State identifies the controller's current gesture.
type State int

const (
	StateIdle     State = iota
	StateDrawing        // One tracked pointer, a draft rectangle exists
	StatePinching       // Two tracked pointers, viewport being adjusted
)

func (s State) String() string {
	switch s {
	case StateDrawing:
		return "Drawing"
	case StatePinching:
		return "Pinching"
	default:
		return "Idle"
	}
}

// pinchBaseline captures the gesture state at the moment a second pointer
// lands: the inter-pointer distance, the device-space midpoint, and the
// viewport at that instant. Pinch updates are computed relative to it.
type pinchBaseline struct {
	first, second int64
	dist          float64
	mid           geometry.Point2D
	scale         float64
	tx, ty        float64
}

// Controller is the single owner of all gesture state. It mutates the
// annotation set and viewport it was constructed with; nothing else writes
// to them while a gesture is live. Not safe for concurrent use.
type Controller struct {
	set  *annotate.Set
	view *viewport.Viewport
	fit  viewport.BaseFit
	kind annotate.Kind

	pointers  map[int64]geometry.Point2D
	drawingID int64
	anchor    geometry.Point2D // Drag anchor in image space
	draft     *annotate.Rectangle
	pinch     *pinchBaseline

	// onChange fires after any mutation of the draft, set, or viewport.
	onChange func()
}

// NewController creates a controller operating on the given annotation set
// and viewport.
func NewController(set *annotate.Set, view *viewport.Viewport) *Controller {
	return &Controller{
		set:      set,
		view:     view,
		kind:     annotate.KindMeasurement,
		pointers: make(map[int64]geometry.Point2D),
	}
}

// OnChange registers a callback fired after each state mutation.
func (c *Controller) OnChange(fn func()) {
	c.onChange = fn
}

// SetBaseFit updates the contain fit used to interpret pointer positions.
// Call whenever the surface is resized or the photo changes.
func (c *Controller) SetBaseFit(f viewport.BaseFit) {
	c.fit = f
}

// SetKind selects the kind of rectangle the next drag will draw.
func (c *Controller) SetKind(k annotate.Kind) {
	c.kind = k
}

// Kind returns the currently selected rectangle kind.
func (c *Controller) Kind() annotate.Kind {
	return c.kind
}

// State reports the current gesture state.
func (c *Controller) State() State {
	switch {
	case c.pinch != nil:
		return StatePinching
	case c.draft != nil:
		return StateDrawing
	default:
		return StateIdle
	}
}

// Draft returns the in-progress rectangle, if a drag is underway.
func (c *Controller) Draft() (annotate.Rectangle, bool) {
	if c.draft == nil {
		return annotate.Rectangle{}, false
	}
	return *c.draft, true
}

// Handle processes one pointer event.
func (c *Controller) Handle(ev PointerEvent) {
	switch ev.Phase {
	case PhaseDown:
		c.pointerDown(ev)
	case PhaseMove:
		c.pointerMove(ev)
	case PhaseUp:
		c.pointerUp(ev)
	case PhaseCancel:
		c.Cancel()
	}
}

func (c *Controller) pointerDown(ev PointerEvent) {
	p := geometry.NewPoint2D(ev.X, ev.Y)
	c.pointers[ev.ID] = p

	switch len(c.pointers) {
	case 1:
		// Drawing starts only from a point that maps onto the photo.
		img, ok := viewport.DeviceToImage(p, c.fit, *c.view)
		if !ok {
			return
		}
		c.drawingID = ev.ID
		c.anchor = img
		c.draft = &annotate.Rectangle{
			ID:   annotate.DraftID,
			Kind: c.kind,
			X:    img.X,
			Y:    img.Y,
			W:    1,
			H:    1,
		}
		c.notify()
	case 2:
		// Two pointers means pinch; drawing is a one-finger gesture only.
		c.draft = nil
		c.beginPinch()
		c.notify()
	default:
		// Extra pointers are tracked for eviction but join no gesture.
	}
}

func (c *Controller) pointerMove(ev PointerEvent) {
	if _, tracked := c.pointers[ev.ID]; !tracked {
		return
	}
	c.pointers[ev.ID] = geometry.NewPoint2D(ev.X, ev.Y)

	if c.pinch != nil {
		if ev.ID == c.pinch.first || ev.ID == c.pinch.second {
			c.updatePinch()
			c.notify()
		}
		return
	}

	if c.draft != nil && ev.ID == c.drawingID {
		img, ok := viewport.DeviceToImage(geometry.NewPoint2D(ev.X, ev.Y), c.fit, *c.view)
		if !ok {
			// Off-image travel: the draft keeps its last valid bounds.
			return
		}
		box := geometry.RectFromCorners(c.anchor, img)
		c.draft.X, c.draft.Y = box.X, box.Y
		c.draft.W, c.draft.H = box.Width, box.Height
		c.notify()
	}
}

func (c *Controller) pointerUp(ev PointerEvent) {
	if _, tracked := c.pointers[ev.ID]; !tracked {
		return
	}
	delete(c.pointers, ev.ID)

	if c.pinch != nil {
		if ev.ID == c.pinch.first || ev.ID == c.pinch.second {
			// Fewer than two pointers: the pinch is over. A surviving
			// pointer does not resume drawing.
			c.pinch = nil
			c.notify()
		}
		return
	}

	if c.draft != nil && ev.ID == c.drawingID {
		draft := *c.draft
		c.draft = nil
		// Commit applies the minimum-size filter; sub-threshold drags
		// vanish silently as accidental taps.
		c.set.Commit(draft)
		c.notify()
	}
}

// Cancel is the forced-abort path: a platform-level cancellation clears all
// tracked pointers, the pinch baseline, and any draft without committing.
func (c *Controller) Cancel() {
	c.pointers = make(map[int64]geometry.Point2D)
	c.draft = nil
	c.pinch = nil
	c.notify()
}

// beginPinch captures the baseline from the two tracked pointers.
func (c *Controller) beginPinch() {
	ids := make([]int64, 0, 2)
	for id := range c.pointers {
		ids = append(ids, id)
	}
	a, b := c.pointers[ids[0]], c.pointers[ids[1]]
	c.pinch = &pinchBaseline{
		first:  ids[0],
		second: ids[1],
		dist:   a.Distance(b),
		mid:    a.Midpoint(b),
		scale:  c.view.Scale,
		tx:     c.view.TX,
		ty:     c.view.TY,
	}
}

// updatePinch recomputes the viewport from the baseline: scale follows the
// finger-distance ratio (clamped), pan follows the midpoint delta so the
// photo tracks the fingers.
func (c *Controller) updatePinch() {
	base := c.pinch
	a, b := c.pointers[base.first], c.pointers[base.second]

	if base.dist > 0 {
		c.view.Scale = viewport.ClampScale(base.scale * a.Distance(b) / base.dist)
	}
	mid := a.Midpoint(b)
	c.view.TX = base.tx + mid.X - base.mid.X
	c.view.TY = base.ty + mid.Y - base.mid.Y
}

// Zoom applies a stepwise zoom centered on a device point, for input sources
// without two pointers (scroll wheel, toolbar buttons). The image point under
// the center stays put. Shares the pinch path's clamp and ownership.
func (c *Controller) Zoom(factor float64, centerX, centerY float64) {
	if !c.fit.Valid() {
		return
	}
	center := geometry.NewPoint2D(centerX, centerY)
	newScale := viewport.ClampScale(c.view.Scale * factor)
	if newScale == c.view.Scale {
		return
	}

	inv, ok := geometry.Translation(c.fit.OffsetX+c.view.TX, c.fit.OffsetY+c.view.TY).
		Compose(geometry.Scaling(c.view.Scale * c.fit.Scale)).Inverse()
	if !ok {
		return
	}
	img := inv.Apply(center)

	c.view.Scale = newScale
	c.view.TX = center.X - c.fit.OffsetX - img.X*c.fit.Scale*newScale
	c.view.TY = center.Y - c.fit.OffsetY - img.Y*c.fit.Scale*newScale
	c.notify()
}

// ResetView restores the identity viewport.
func (c *Controller) ResetView() {
	c.view.Reset()
	c.notify()
}

func (c *Controller) notify() {
	if c.onChange != nil {
		c.onChange()
	}
}
