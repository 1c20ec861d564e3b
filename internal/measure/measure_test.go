package measure

import (
	"math"
	"testing"

	"glazing-estimator/internal/annotate"
)

func TestPixelsPerInch(t *testing.T) {
	cal := annotate.Rectangle{Kind: annotate.KindCalibration, W: 50, H: 110}
	ppi, ok := PixelsPerInch(cal, 11)
	if !ok {
		t.Fatal("ppi should be defined")
	}
	if ppi != 10 {
		t.Errorf("ppi = %v, want 10 (height 110 / 11 in)", ppi)
	}
}

func TestPixelsPerInchUndefined(t *testing.T) {
	cal := annotate.Rectangle{Kind: annotate.KindCalibration, W: 50, H: 110}
	if _, ok := PixelsPerInch(cal, 0); ok {
		t.Error("zero inches should be undefined")
	}
	if _, ok := PixelsPerInch(cal, -4); ok {
		t.Error("negative inches should be undefined")
	}
	if _, ok := PixelsPerInch(annotate.Rectangle{}, 11); ok {
		t.Error("degenerate calibration should be undefined")
	}
}

func TestAreaSqFt(t *testing.T) {
	// 100x50 px at ppi=10 is 10x5 inches = 50/144 sq ft.
	r := annotate.Rectangle{Kind: annotate.KindMeasurement, W: 100, H: 50}
	got := AreaSqFt(r, 10)
	want := 50.0 / 144.0
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("area = %v, want %v", got, want)
	}
	if math.Abs(got-0.347) > 0.001 {
		t.Errorf("area = %v, want approximately 0.347", got)
	}
}

func TestTotalWindowArea(t *testing.T) {
	rects := []annotate.Rectangle{
		{Kind: annotate.KindMeasurement, W: 100, H: 50},
		{Kind: annotate.KindMeasurement, W: 200, H: 100},
	}
	total, ok := TotalWindowArea(rects, 10)
	if !ok {
		t.Fatal("total should be defined with a valid ppi")
	}
	want := 50.0/144.0 + 200.0/144.0
	if math.Abs(total-want) > 1e-9 {
		t.Errorf("total = %v, want %v", total, want)
	}
}

func TestTotalWindowAreaZeroVsUndefined(t *testing.T) {
	// Calibrated but no windows: a defined zero.
	total, ok := TotalWindowArea(nil, 10)
	if !ok || total != 0 {
		t.Errorf("total = (%v,%v), want defined 0 with no windows", total, ok)
	}
	// No calibration: undefined, even with windows present.
	rects := []annotate.Rectangle{{Kind: annotate.KindMeasurement, W: 100, H: 50}}
	if _, ok := TotalWindowArea(rects, 0); ok {
		t.Error("total should be undefined without calibration")
	}
}

func TestPresets(t *testing.T) {
	names := ListPresets()
	if len(names) < 2 {
		t.Fatalf("got %d presets, want at least 2 built-ins", len(names))
	}

	paper, ok := GetPreset("Letter Paper (11 in)")
	if !ok || paper.Inches != 11 {
		t.Errorf("paper preset = (%+v,%v), want 11 in", paper, ok)
	}
	door, ok := GetPreset("Entry Door (80 in)")
	if !ok || door.Inches != 80 {
		t.Errorf("door preset = (%+v,%v), want 80 in", door, ok)
	}
	if _, ok := GetPreset("no such preset"); ok {
		t.Error("unknown preset should not resolve")
	}
}

func TestWindowStats(t *testing.T) {
	rects := []annotate.Rectangle{
		{Kind: annotate.KindMeasurement, W: 120, H: 120}, // 1 sq ft at ppi 10
		{Kind: annotate.KindMeasurement, W: 240, H: 180}, // 3 sq ft
	}
	s, ok := WindowStats(rects, 10)
	if !ok {
		t.Fatal("stats should be defined")
	}
	if s.Count != 2 {
		t.Errorf("count = %d, want 2", s.Count)
	}
	if math.Abs(s.MeanSqFt-2) > 1e-9 || math.Abs(s.MinSqFt-1) > 1e-9 ||
		math.Abs(s.MaxSqFt-3) > 1e-9 || math.Abs(s.TotalSqFt-4) > 1e-9 {
		t.Errorf("stats = %+v, want mean 2, min 1, max 3, total 4", s)
	}

	if _, ok := WindowStats(nil, 10); ok {
		t.Error("stats should be undefined with no windows")
	}
	if _, ok := WindowStats(rects, 0); ok {
		t.Error("stats should be undefined without calibration")
	}
}
