// Command quotecalc computes a glazing quote from pixel measurements without
// the GUI. Useful for sanity-checking the arithmetic against a marked-up
// photo.
package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"glazing-estimator/internal/annotate"
	"glazing-estimator/internal/export"
	"glazing-estimator/internal/measure"
	"glazing-estimator/internal/pricing"
)

func main() {
	calHeight := flag.Float64("cal-height", 0, "Reference object height in pixels")
	inches := flag.Float64("inches", 11, "Reference object real height in inches")
	policyName := flag.String("policy", "Standard", "Pricing policy: Standard or Tiered")
	flag.Parse()

	if *calHeight <= 0 || flag.NArg() == 0 {
		fmt.Println("Usage: quotecalc -cal-height <px> [-inches 11] [-policy Standard] WxH [WxH ...]")
		fmt.Println("  Each positional argument is one window's pixel size, e.g. 320x180")
		os.Exit(1)
	}

	cal := annotate.Rectangle{Kind: annotate.KindCalibration, H: *calHeight}
	ppi, ok := measure.PixelsPerInch(cal, *inches)
	if !ok {
		fmt.Fprintln(os.Stderr, "Invalid calibration: height and inches must be positive")
		os.Exit(1)
	}
	fmt.Printf("Scale: %.2f px/in\n", ppi)

	var windows []annotate.Rectangle
	for _, arg := range flag.Args() {
		w, h, err := parseSize(arg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Bad window size %q: %v\n", arg, err)
			os.Exit(1)
		}
		r := annotate.Rectangle{Kind: annotate.KindMeasurement, W: w, H: h}
		windows = append(windows, r)
		fmt.Printf("  %gx%g px -> %.2f sq ft\n", w, h, measure.AreaSqFt(r, ppi))
	}

	total, _ := measure.TotalWindowArea(windows, ppi)
	fmt.Printf("Total: %.2f sq ft over %d windows\n\n", total, len(windows))

	policy := pricing.PolicyByName(*policyName)
	q, ok := policy.Quote(total)
	if !ok {
		fmt.Println("No quote: total area is zero")
		return
	}
	fmt.Println(export.Summary(q))
}

// parseSize parses "WxH" in pixels.
func parseSize(s string) (w, h float64, err error) {
	parts := strings.SplitN(strings.ToLower(s), "x", 2)
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("expected WxH")
	}
	w, err = strconv.ParseFloat(parts[0], 64)
	if err != nil {
		return 0, 0, err
	}
	h, err = strconv.ParseFloat(parts[1], 64)
	if err != nil {
		return 0, 0, err
	}
	if w <= 0 || h <= 0 {
		return 0, 0, fmt.Errorf("dimensions must be positive")
	}
	return w, h, nil
}
