// Package canvas provides the photo canvas widget: display, drag-to-draw,
// and zoom.
package canvas

import (
	"image"

	"fyne.io/fyne/v2"
	fynecanvas "fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/mobile"
	"fyne.io/fyne/v2/widget"

	"glazing-estimator/internal/app"
	"glazing-estimator/internal/gesture"
	"glazing-estimator/internal/render"
)

const zoomStep = 1.25

// mousePointerID tags events synthesized from the single desktop pointer.
// Touch input carries real pointer identities on platforms that provide them.
const mousePointerID = 0

// PhotoCanvas displays the fitted photo with its annotations and feeds
// pointer input into the gesture controller. All drawing goes through the
// renderer; the widget itself holds no scene state.
type PhotoCanvas struct {
	widget.BaseWidget

	state  *app.State
	raster *fynecanvas.Raster

	dragging bool
	lastX    float32
	lastY    float32
}

// NewPhotoCanvas creates the canvas bound to the application state.
func NewPhotoCanvas(state *app.State) *PhotoCanvas {
	pc := &PhotoCanvas{state: state}
	pc.raster = fynecanvas.NewRaster(pc.draw)
	pc.raster.ScaleMode = fynecanvas.ImageScalePixels
	pc.ExtendBaseWidget(pc)

	state.On(app.EventPhotoLoaded, func(interface{}) { pc.Refresh() })
	state.On(app.EventAnnotationsChanged, func(interface{}) { pc.Refresh() })
	state.On(app.EventViewportChanged, func(interface{}) { pc.Refresh() })
	return pc
}

// draw is the raster drawing function. The surface size is only known here,
// so the contain fit is refreshed before rendering.
func (pc *PhotoCanvas) draw(w, h int) image.Image {
	pc.state.SetSurfaceSize(float64(w), float64(h))
	return render.Render(pc.state.Scene(), w, h)
}

// Refresh redraws the canvas.
func (pc *PhotoCanvas) Refresh() {
	pc.raster.Refresh()
	pc.BaseWidget.Refresh()
}

// MinSize implements fyne.Widget.
func (pc *PhotoCanvas) MinSize() fyne.Size {
	return fyne.NewSize(400, 300)
}

// Dragged feeds drag motion into the controller. Fyne reports no explicit
// press event for drags, so the first motion synthesizes the pointer-down at
// the drag origin.
func (pc *PhotoCanvas) Dragged(ev *fyne.DragEvent) {
	if !pc.dragging {
		pc.dragging = true
		pc.state.Controller().Handle(gesture.PointerEvent{
			ID:    mousePointerID,
			Phase: gesture.PhaseDown,
			X:     float64(ev.Position.X - ev.Dragged.DX),
			Y:     float64(ev.Position.Y - ev.Dragged.DY),
		})
	}
	pc.lastX, pc.lastY = ev.Position.X, ev.Position.Y
	pc.state.Controller().Handle(gesture.PointerEvent{
		ID:    mousePointerID,
		Phase: gesture.PhaseMove,
		X:     float64(ev.Position.X),
		Y:     float64(ev.Position.Y),
	})
}

// DragEnd releases the synthesized pointer, committing or discarding the
// draft.
func (pc *PhotoCanvas) DragEnd() {
	if !pc.dragging {
		return
	}
	pc.dragging = false
	pc.state.Controller().Handle(gesture.PointerEvent{
		ID:    mousePointerID,
		Phase: gesture.PhaseUp,
		X:     float64(pc.lastX),
		Y:     float64(pc.lastY),
	})
}

// Scrolled zooms around the cursor with the mouse wheel.
func (pc *PhotoCanvas) Scrolled(ev *fyne.ScrollEvent) {
	factor := zoomStep
	if ev.Scrolled.DY < 0 {
		factor = 1 / zoomStep
	}
	pc.state.Controller().Zoom(factor, float64(ev.Position.X), float64(ev.Position.Y))
	pc.Refresh()
}

// TouchDown implements mobile.Touchable.
func (pc *PhotoCanvas) TouchDown(ev *mobile.TouchEvent) {
	pc.state.Controller().Handle(gesture.PointerEvent{
		ID:    mousePointerID,
		Phase: gesture.PhaseDown,
		X:     float64(ev.Position.X),
		Y:     float64(ev.Position.Y),
	})
}

// TouchUp implements mobile.Touchable.
func (pc *PhotoCanvas) TouchUp(ev *mobile.TouchEvent) {
	pc.state.Controller().Handle(gesture.PointerEvent{
		ID:    mousePointerID,
		Phase: gesture.PhaseUp,
		X:     float64(ev.Position.X),
		Y:     float64(ev.Position.Y),
	})
}

// TouchCancel implements mobile.Touchable: the platform aborted the gesture.
func (pc *PhotoCanvas) TouchCancel(ev *mobile.TouchEvent) {
	pc.state.Controller().Handle(gesture.PointerEvent{
		ID:    mousePointerID,
		Phase: gesture.PhaseCancel,
	})
}

// CreateRenderer implements fyne.Widget.
func (pc *PhotoCanvas) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(pc.raster)
}
