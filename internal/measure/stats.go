package measure

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"glazing-estimator/internal/annotate"
)

// Stats summarizes the per-window areas for display in the side panel.
type Stats struct {
	Count     int
	MeanSqFt  float64
	MinSqFt   float64
	MaxSqFt   float64
	TotalSqFt float64
}

// WindowStats computes summary statistics over the measurement rectangles.
// Returns ok=false when ppi is undefined or there are no windows.
func WindowStats(measurements []annotate.Rectangle, ppi float64) (Stats, bool) {
	if ppi <= 0 || len(measurements) == 0 {
		return Stats{}, false
	}

	areas := make([]float64, len(measurements))
	for i, r := range measurements {
		areas[i] = AreaSqFt(r, ppi)
	}
	return Stats{
		Count:     len(areas),
		MeanSqFt:  stat.Mean(areas, nil),
		MinSqFt:   floats.Min(areas),
		MaxSqFt:   floats.Max(areas),
		TotalSqFt: floats.Sum(areas),
	}, true
}
