// Package render draws the fitted photo and its annotations onto an RGBA
// surface. Rendering is a pure function of the scene: it owns no state and
// is re-run after every change to the photo, annotations, draft, or viewport.
package render

import (
	"image"
	"image/color"

	xdraw "golang.org/x/image/draw"

	"glazing-estimator/internal/annotate"
	"glazing-estimator/internal/viewport"
	"glazing-estimator/pkg/geometry"
)

// Stroke colors keyed by rectangle kind.
var (
	calibrationColor = color.RGBA{R: 255, G: 170, B: 0, A: 255} // Amber
	measurementColor = color.RGBA{R: 0, G: 200, B: 255, A: 255} // Cyan
	backgroundColor  = color.RGBA{R: 40, G: 40, B: 40, A: 255}  // Dark gray
)

const strokeWidth = 2

// KindColor returns the stroke color for a rectangle kind. Exposed so the
// panel legend matches the canvas.
func KindColor(k annotate.Kind) color.RGBA {
	if k == annotate.KindCalibration {
		return calibrationColor
	}
	return measurementColor
}

// Scene is a read-only snapshot of everything the renderer needs.
type Scene struct {
	Image image.Image // nil when no photo is loaded
	Fit   viewport.BaseFit
	View  viewport.Viewport
	Rects []annotate.Rectangle
	Draft *annotate.Rectangle
}

// Render draws the scene into a fresh w x h RGBA image: background, the
// contain-fitted photo through the viewport, committed rectangles, then the
// draft on top.
func Render(s Scene, w, h int) *image.RGBA {
	out := image.NewRGBA(image.Rect(0, 0, w, h))
	fill(out, backgroundColor)

	if s.Image == nil || !s.Fit.Valid() || w <= 0 || h <= 0 {
		return out
	}

	drawPhoto(out, s)
	for _, r := range s.Rects {
		strokeRect(out, viewport.RectToDevice(r.Bounds(), s.Fit, s.View), KindColor(r.Kind))
	}
	if s.Draft != nil {
		strokeRect(out, viewport.RectToDevice(s.Draft.Bounds(), s.Fit, s.View), KindColor(s.Draft.Kind))
	}
	return out
}

func fill(img *image.RGBA, c color.RGBA) {
	for i := 0; i < len(img.Pix); i += 4 {
		img.Pix[i] = c.R
		img.Pix[i+1] = c.G
		img.Pix[i+2] = c.B
		img.Pix[i+3] = c.A
	}
}

// drawPhoto scales the photo into its device-space destination rectangle.
// The scaler clips to the output bounds, so a zoomed-in photo larger than
// the surface draws only the visible part.
func drawPhoto(out *image.RGBA, s Scene) {
	b := s.Image.Bounds()
	src := geometry.NewRect(0, 0, float64(b.Dx()), float64(b.Dy()))
	dst := viewport.RectToDevice(src, s.Fit, s.View)

	dr := image.Rect(
		int(dst.X+0.5), int(dst.Y+0.5),
		int(dst.X+dst.Width+0.5), int(dst.Y+dst.Height+0.5),
	)
	xdraw.ApproxBiLinear.Scale(out, dr, s.Image, b, xdraw.Src, nil)
}

// strokeRect outlines a device-space rectangle, clipped to the output.
func strokeRect(out *image.RGBA, r geometry.Rect, col color.RGBA) {
	x1, y1 := int(r.X+0.5), int(r.Y+0.5)
	x2, y2 := int(r.X+r.Width+0.5), int(r.Y+r.Height+0.5)
	bounds := out.Bounds()

	for t := 0; t < strokeWidth; t++ {
		for x := x1; x <= x2; x++ {
			setClipped(out, bounds, x, y1+t, col)
			setClipped(out, bounds, x, y2-t, col)
		}
		for y := y1; y <= y2; y++ {
			setClipped(out, bounds, x1+t, y, col)
			setClipped(out, bounds, x2-t, y, col)
		}
	}
}

func setClipped(out *image.RGBA, bounds image.Rectangle, x, y int, col color.RGBA) {
	if x >= bounds.Min.X && x < bounds.Max.X && y >= bounds.Min.Y && y < bounds.Max.Y {
		out.SetRGBA(x, y, col)
	}
}
