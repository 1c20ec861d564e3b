// Package app provides application lifecycle management and shared state.
package app

import (
	"sync"

	"glazing-estimator/internal/annotate"
	"glazing-estimator/internal/export"
	"glazing-estimator/internal/gesture"
	"glazing-estimator/internal/measure"
	"glazing-estimator/internal/photo"
	"glazing-estimator/internal/pricing"
	"glazing-estimator/internal/render"
	"glazing-estimator/internal/viewport"
	"glazing-estimator/pkg/geometry"
)

// EventType identifies different application events.
type EventType int

const (
	EventPhotoLoaded EventType = iota
	EventAnnotationsChanged
	EventViewportChanged
	EventCalibrationChanged
	EventPolicyChanged
)

// EventListener is called when an event occurs.
type EventListener func(data interface{})

// State is the single owner of all interaction state: the loaded photo, the
// annotation set, the viewport, the calibration selection, and the pricing
// policy. All mutation flows through it (or through the gesture controller
// it owns), preserving the exactly-one-calibration invariant. Derived values
// (ppi, areas, quote) are recomputed on each read, never cached.
type State struct {
	mu sync.RWMutex

	photo       *photo.Photo
	annotations *annotate.Set
	view        viewport.Viewport
	fit         viewport.BaseFit
	controller  *gesture.Controller

	// Calibration selection: a preset name or a custom inches value.
	presetName   string
	customInches float64
	useCustom    bool

	policy pricing.Policy

	listeners map[EventType][]EventListener
}

// NewState creates the application state with defaults: the first built-in
// calibration preset and the standard pricing policy.
func NewState() *State {
	s := &State{
		annotations: annotate.NewSet(),
		view:        viewport.New(),
		policy:      pricing.DefaultRates(),
		listeners:   make(map[EventType][]EventListener),
	}
	if names := measure.ListPresets(); len(names) > 0 {
		s.presetName = names[0]
	}
	s.controller = gesture.NewController(s.annotations, &s.view)
	s.controller.OnChange(func() {
		s.Emit(EventAnnotationsChanged, nil)
	})
	return s
}

// On registers an event listener for the specified event type.
func (s *State) On(event EventType, listener EventListener) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners[event] = append(s.listeners[event], listener)
}

// Emit triggers all listeners for the specified event type.
func (s *State) Emit(event EventType, data interface{}) {
	s.mu.RLock()
	listeners := s.listeners[event]
	s.mu.RUnlock()

	for _, listener := range listeners {
		listener(data)
	}
}

// Controller returns the gesture controller. All pointer input funnels
// through it; it is the only writer of the viewport and the annotation set
// while a gesture is live.
func (s *State) Controller() *gesture.Controller {
	return s.controller
}

// SetPhoto installs a newly loaded photo, resets the viewport to identity,
// and clears all annotations (their coordinates belong to the old photo's
// pixel grid).
func (s *State) SetPhoto(p *photo.Photo) {
	s.mu.Lock()
	s.photo = p
	s.view.Reset()
	s.annotations.Clear()
	s.mu.Unlock()

	s.controller.Cancel()
	s.Emit(EventPhotoLoaded, p)
	s.Emit(EventViewportChanged, nil)
	s.Emit(EventAnnotationsChanged, nil)
}

// Photo returns the loaded photo, or nil.
func (s *State) Photo() *photo.Photo {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.photo
}

// SetSurfaceSize recomputes the contain fit for a new display surface size
// and hands it to the gesture controller.
func (s *State) SetSurfaceSize(w, h float64) {
	s.mu.Lock()
	if s.photo != nil {
		s.fit = viewport.Fit(
			geometry.NewSize(float64(s.photo.Width), float64(s.photo.Height)),
			geometry.NewSize(w, h),
		)
	} else {
		s.fit = viewport.BaseFit{}
	}
	fit := s.fit
	s.mu.Unlock()

	s.controller.SetBaseFit(fit)
}

// Annotations returns the annotation set. Mutation outside the gesture
// controller is limited to Remove via RemoveAnnotation.
func (s *State) Annotations() *annotate.Set {
	return s.annotations
}

// RemoveAnnotation deletes a committed rectangle by ID.
func (s *State) RemoveAnnotation(id int) {
	if s.annotations.Remove(id) {
		s.Emit(EventAnnotationsChanged, nil)
	}
}

// SelectPreset switches calibration to a named preset.
func (s *State) SelectPreset(name string) {
	s.mu.Lock()
	s.presetName = name
	s.useCustom = false
	s.mu.Unlock()
	s.Emit(EventCalibrationChanged, nil)
}

// SetCustomInches switches calibration to a user-supplied size in inches.
func (s *State) SetCustomInches(inches float64) {
	s.mu.Lock()
	s.customInches = inches
	s.useCustom = true
	s.mu.Unlock()
	s.Emit(EventCalibrationChanged, nil)
}

// RealInches resolves the selected reference size. Returns ok=false when the
// resolved value is not positive.
func (s *State) RealInches() (float64, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.useCustom {
		return s.customInches, s.customInches > 0
	}
	if p, ok := measure.GetPreset(s.presetName); ok {
		return p.Inches, p.Inches > 0
	}
	return 0, false
}

// CalibrationSelection reports the current reference selection for
// persistence: the preset name, the custom inches value, and whether the
// custom value is active.
func (s *State) CalibrationSelection() (preset string, customInches float64, useCustom bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.presetName, s.customInches, s.useCustom
}

// SetPolicy switches the pricing policy.
func (s *State) SetPolicy(p pricing.Policy) {
	s.mu.Lock()
	s.policy = p
	s.mu.Unlock()
	s.Emit(EventPolicyChanged, nil)
}

// Policy returns the active pricing policy.
func (s *State) Policy() pricing.Policy {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.policy
}

// PixelsPerInch derives the current pixel scale. Undefined without a
// calibration rectangle and a positive reference size.
func (s *State) PixelsPerInch() (float64, bool) {
	cal, ok := s.annotations.Calibration()
	if !ok {
		return 0, false
	}
	inches, ok := s.RealInches()
	if !ok {
		return 0, false
	}
	return measure.PixelsPerInch(cal, inches)
}

// TotalArea derives the aggregate window area in square feet. Defined (as 0)
// when calibrated with no windows; undefined without calibration.
func (s *State) TotalArea() (float64, bool) {
	ppi, ok := s.PixelsPerInch()
	if !ok {
		return 0, false
	}
	return measure.TotalWindowArea(s.annotations.Measurements(), ppi)
}

// Quote derives the price range for the current total area. Absent for a
// zero or undefined area.
func (s *State) Quote() (pricing.Quote, bool) {
	total, ok := s.TotalArea()
	if !ok {
		return pricing.Quote{}, false
	}
	return s.Policy().Quote(total)
}

// SummaryText renders the clipboard export. Absent whenever the quote is.
func (s *State) SummaryText() (string, bool) {
	q, ok := s.Quote()
	if !ok {
		return "", false
	}
	return export.Summary(q), true
}

// Scene builds the read-only snapshot handed to the renderer.
func (s *State) Scene() render.Scene {
	s.mu.RLock()
	img := s.photo
	fit := s.fit
	view := s.view
	s.mu.RUnlock()

	scene := render.Scene{
		Fit:   fit,
		View:  view,
		Rects: s.annotations.All(),
	}
	if img != nil {
		scene.Image = img.Image
	}
	if draft, ok := s.controller.Draft(); ok {
		scene.Draft = &draft
	}
	return scene
}
