// Package viewport maps between the photo's pixel grid, its "contain"-fitted
// placement on the display surface, and raw pointer coordinates.
//
// Three coordinate spaces are involved:
//
//	image space  - the photo's native pixel grid
//	base space   - the photo scaled and letterboxed to fit the surface,
//	               before any zoom or pan
//	device space - surface-relative pointer/pixel coordinates
package viewport

import (
	"glazing-estimator/pkg/geometry"
)

// Zoom bounds for the viewport scale factor.
const (
	MinScale = 1.0
	MaxScale = 6.0
)

// BaseFit describes the photo's contain-fitted placement within the display
// surface: scaled uniformly to fit entirely, centered on the shorter axis.
// It must be recomputed whenever the surface is resized or the photo changes.
type BaseFit struct {
	ImageWidth  float64 // Photo natural width in pixels
	ImageHeight float64 // Photo natural height in pixels
	Width       float64 // Fitted width on the surface
	Height      float64 // Fitted height on the surface
	OffsetX     float64 // Letterbox offset from the surface's left edge
	OffsetY     float64 // Letterbox offset from the surface's top edge
	Scale       float64 // Width / ImageWidth
}

// Fit computes the contain fit of an image within a surface. A degenerate
// image or surface yields a zero BaseFit, which rejects all pointer mapping.
func Fit(imageSize, surfaceSize geometry.Size) BaseFit {
	if imageSize.Width <= 0 || imageSize.Height <= 0 ||
		surfaceSize.Width <= 0 || surfaceSize.Height <= 0 {
		return BaseFit{}
	}

	scale := surfaceSize.Width / imageSize.Width
	if s := surfaceSize.Height / imageSize.Height; s < scale {
		scale = s
	}

	w := imageSize.Width * scale
	h := imageSize.Height * scale
	return BaseFit{
		ImageWidth:  imageSize.Width,
		ImageHeight: imageSize.Height,
		Width:       w,
		Height:      h,
		OffsetX:     (surfaceSize.Width - w) / 2,
		OffsetY:     (surfaceSize.Height - h) / 2,
		Scale:       scale,
	}
}

// Valid reports whether the fit describes a drawable image.
func (f BaseFit) Valid() bool {
	return f.Scale > 0
}

// Viewport is the user-controlled zoom and pan applied on top of the base
// fit. Scale is a uniform factor in [MinScale, MaxScale]; TX and TY are pixel
// offsets in base space. The zero viewport is not valid; use New.
type Viewport struct {
	Scale float64
	TX    float64
	TY    float64
}

// New returns the identity viewport (no zoom, no pan).
func New() Viewport {
	return Viewport{Scale: 1}
}

// Reset restores the identity viewport. Called when a new photo is loaded or
// on explicit user reset.
func (v *Viewport) Reset() {
	*v = New()
}

// ClampScale bounds a scale factor to [MinScale, MaxScale].
func ClampScale(s float64) float64 {
	if s < MinScale {
		return MinScale
	}
	if s > MaxScale {
		return MaxScale
	}
	return s
}

// transform returns the forward image-to-device affine: scale by the base
// fit, apply zoom, apply pan, then the letterbox offset.
func transform(f BaseFit, v Viewport) geometry.AffineTransform {
	return geometry.Translation(f.OffsetX+v.TX, f.OffsetY+v.TY).
		Compose(geometry.Scaling(v.Scale)).
		Compose(geometry.Scaling(f.Scale))
}

// ImageToDevice maps an image-space point to device space. It is the exact
// inverse of DeviceToImage.
func ImageToDevice(p geometry.Point2D, f BaseFit, v Viewport) geometry.Point2D {
	return transform(f, v).Apply(p)
}

// RectToDevice maps an image-space rectangle to device space.
func RectToDevice(r geometry.Rect, f BaseFit, v Viewport) geometry.Rect {
	return transform(f, v).ApplyRect(r)
}

// DeviceToImage maps a surface-relative device point back to image space.
// Returns ok=false when no photo is fitted or the point falls outside the
// photo's bounds, which rejects gestures that start or travel off-image.
func DeviceToImage(p geometry.Point2D, f BaseFit, v Viewport) (geometry.Point2D, bool) {
	if !f.Valid() {
		return geometry.Point2D{}, false
	}
	inv, ok := transform(f, v).Inverse()
	if !ok {
		return geometry.Point2D{}, false
	}
	img := inv.Apply(p)
	if img.X < 0 || img.X > f.ImageWidth || img.Y < 0 || img.Y > f.ImageHeight {
		return geometry.Point2D{}, false
	}
	return img, true
}
