// Package measure derives real-world glazing measurements from annotations.
package measure

import (
	"glazing-estimator/internal/annotate"
)

// SquareInchesPerSquareFoot converts square inches to square feet.
const SquareInchesPerSquareFoot = 144.0

// PixelsPerInch derives the photo's scale from the calibration rectangle and
// the reference object's real-world height. The rectangle's height is used
// rather than its width: portrait-orientation capture skews width more.
// Returns ok=false when the rectangle is degenerate or realInches is not
// positive.
func PixelsPerInch(cal annotate.Rectangle, realInches float64) (float64, bool) {
	if cal.H <= 0 || realInches <= 0 {
		return 0, false
	}
	return cal.H / realInches, true
}

// AreaSqFt converts a rectangle's pixel dimensions to square feet at the
// given pixels-per-inch scale.
func AreaSqFt(rect annotate.Rectangle, ppi float64) float64 {
	return (rect.W / ppi) * (rect.H / ppi) / SquareInchesPerSquareFoot
}

// TotalWindowArea sums the area of all measurement rectangles. With no
// calibration (ppi <= 0) the total is undefined; with calibration but no
// windows it is a defined zero.
func TotalWindowArea(measurements []annotate.Rectangle, ppi float64) (float64, bool) {
	if ppi <= 0 {
		return 0, false
	}
	total := 0.0
	for _, r := range measurements {
		total += AreaSqFt(r, ppi)
	}
	return total, true
}
