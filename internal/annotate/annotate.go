// Package annotate holds the calibration and window rectangles drawn on a photo.
package annotate

import (
	"fmt"

	"glazing-estimator/pkg/geometry"
)

// Kind identifies what a rectangle annotation represents.
type Kind int

const (
	KindCalibration Kind = iota // Reference object of known real-world size
	KindMeasurement             // Window whose glazing area is estimated
)

func (k Kind) String() string {
	switch k {
	case KindCalibration:
		return "Reference"
	case KindMeasurement:
		return "Window"
	default:
		return "Unknown"
	}
}

// DraftID is the reserved identity of the in-progress rectangle shown while a
// drag is underway. A rectangle with this ID is never stored in a Set.
const DraftID = -1

// MinCommitSize is the minimum committed width and height in image pixels.
// Drags smaller than this on either axis are treated as accidental taps.
const MinCommitSize = 10.0

// Rectangle is a single annotation in image-pixel coordinates (the photo's
// native pixel grid, independent of display size or zoom).
type Rectangle struct {
	ID    int     `json:"id"`
	Kind  Kind    `json:"kind"`
	Label string  `json:"label"`
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	W     float64 `json:"w"`
	H     float64 `json:"h"`
}

// Bounds returns the rectangle as a geometry.Rect.
func (r Rectangle) Bounds() geometry.Rect {
	return geometry.NewRect(r.X, r.Y, r.W, r.H)
}

// TooSmall reports whether the rectangle is below the commit threshold.
func (r Rectangle) TooSmall() bool {
	return r.W < MinCommitSize || r.H < MinCommitSize
}

// Set is the collection of committed annotations. At most one calibration
// rectangle exists at any time; committing a new one replaces it. Any number
// of measurement rectangles may coexist, each with a unique ID.
//
// Set is not safe for concurrent use; all mutation happens on the event thread.
type Set struct {
	rects  []Rectangle
	nextID int
}

// NewSet creates an empty annotation set.
func NewSet() *Set {
	return &Set{nextID: 1}
}

// Commit validates and stores a rectangle, assigning its identity and, if the
// label is empty, an auto-generated one ("Window N" for measurements, keyed to
// the measurement count at creation time and never renumbered). Sub-threshold
// rectangles are discarded and reported via ok=false. Committing a calibration
// rectangle atomically replaces any existing one.
func (s *Set) Commit(r Rectangle) (Rectangle, bool) {
	if r.W < 0 || r.H < 0 || r.TooSmall() {
		return Rectangle{}, false
	}

	switch r.Kind {
	case KindCalibration:
		s.removeCalibration()
		if r.Label == "" {
			r.Label = "Reference"
		}
	case KindMeasurement:
		if r.Label == "" {
			r.Label = fmt.Sprintf("Window %d", len(s.Measurements())+1)
		}
	}

	r.ID = s.nextID
	s.nextID++
	s.rects = append(s.rects, r)
	return r, true
}

// Calibration returns the calibration rectangle, if one exists.
func (s *Set) Calibration() (Rectangle, bool) {
	for _, r := range s.rects {
		if r.Kind == KindCalibration {
			return r, true
		}
	}
	return Rectangle{}, false
}

// Measurements returns the measurement rectangles in commit order.
func (s *Set) Measurements() []Rectangle {
	var out []Rectangle
	for _, r := range s.rects {
		if r.Kind == KindMeasurement {
			out = append(out, r)
		}
	}
	return out
}

// All returns every committed rectangle in commit order.
func (s *Set) All() []Rectangle {
	out := make([]Rectangle, len(s.rects))
	copy(out, s.rects)
	return out
}

// Remove deletes the rectangle with the given ID.
func (s *Set) Remove(id int) bool {
	for i, r := range s.rects {
		if r.ID == id {
			s.rects = append(s.rects[:i], s.rects[i+1:]...)
			return true
		}
	}
	return false
}

// Clear removes all annotations. IDs are not reused.
func (s *Set) Clear() {
	s.rects = nil
}

// Len returns the number of committed rectangles.
func (s *Set) Len() int {
	return len(s.rects)
}

func (s *Set) removeCalibration() {
	for i, r := range s.rects {
		if r.Kind == KindCalibration {
			s.rects = append(s.rects[:i], s.rects[i+1:]...)
			return
		}
	}
}
