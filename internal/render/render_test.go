package render

import (
	"bytes"
	"image"
	"image/color"
	"testing"

	"glazing-estimator/internal/annotate"
	"glazing-estimator/internal/viewport"
	"glazing-estimator/pkg/geometry"
)

// solidImage returns a uniformly colored test photo.
func solidImage(w, h int, c color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, c)
		}
	}
	return img
}

func testScene() Scene {
	return Scene{
		Image: solidImage(100, 80, color.RGBA{200, 0, 0, 255}),
		Fit:   viewport.Fit(geometry.NewSize(100, 80), geometry.NewSize(100, 100)),
		View:  viewport.New(),
	}
}

func TestRenderEmptyScene(t *testing.T) {
	out := Render(Scene{}, 50, 50)
	if out.Bounds().Dx() != 50 || out.Bounds().Dy() != 50 {
		t.Fatalf("output bounds = %v, want 50x50", out.Bounds())
	}
	// No photo: everything is background.
	if got := out.RGBAAt(25, 25); got != backgroundColor {
		t.Errorf("pixel = %v, want background %v", got, backgroundColor)
	}
}

func TestRenderPhotoPlacement(t *testing.T) {
	// 100x80 photo in a 100x100 surface: fitted at scale 1, letterboxed
	// 10 px top and bottom.
	out := Render(testScene(), 100, 100)

	if got := out.RGBAAt(50, 5); got != backgroundColor {
		t.Errorf("letterbox pixel = %v, want background", got)
	}
	want := color.RGBA{200, 0, 0, 255}
	if got := out.RGBAAt(50, 50); got != want {
		t.Errorf("photo pixel = %v, want %v", got, want)
	}
	if got := out.RGBAAt(50, 97); got != backgroundColor {
		t.Errorf("bottom letterbox pixel = %v, want background", got)
	}
}

func TestRenderStrokesByKind(t *testing.T) {
	s := testScene()
	s.Rects = []annotate.Rectangle{
		{ID: 1, Kind: annotate.KindCalibration, X: 10, Y: 10, W: 30, H: 30},
		{ID: 2, Kind: annotate.KindMeasurement, X: 60, Y: 10, W: 20, H: 20},
	}
	out := Render(s, 100, 100)

	// Base fit offsets the photo 10 px down; rect (10,10) lands at (10,20).
	if got := out.RGBAAt(10, 20); got != calibrationColor {
		t.Errorf("calibration edge pixel = %v, want %v", got, calibrationColor)
	}
	if got := out.RGBAAt(60, 20); got != measurementColor {
		t.Errorf("measurement edge pixel = %v, want %v", got, measurementColor)
	}
}

func TestRenderDraftOnTop(t *testing.T) {
	s := testScene()
	s.Draft = &annotate.Rectangle{ID: annotate.DraftID, Kind: annotate.KindMeasurement, X: 20, Y: 20, W: 40, H: 30}
	out := Render(s, 100, 100)

	if got := out.RGBAAt(20, 30); got != measurementColor {
		t.Errorf("draft edge pixel = %v, want %v", got, measurementColor)
	}
}

func TestRenderIdempotent(t *testing.T) {
	s := testScene()
	s.Rects = []annotate.Rectangle{
		{ID: 1, Kind: annotate.KindMeasurement, X: 30, Y: 30, W: 40, H: 20},
	}
	a := Render(s, 100, 100)
	b := Render(s, 100, 100)
	if !bytes.Equal(a.Pix, b.Pix) {
		t.Error("two renders of the same scene differ")
	}
}

func TestKindColorDistinct(t *testing.T) {
	if KindColor(annotate.KindCalibration) == KindColor(annotate.KindMeasurement) {
		t.Error("calibration and measurement must use distinct colors")
	}
}
