// Package export formats the estimate as clipboard-ready text.
package export

import (
	"fmt"
	"strings"

	"glazing-estimator/internal/pricing"
)

// SummaryTitle is the first line of every exported estimate.
const SummaryTitle = "Window Glazing Estimate"

// Summary renders the estimate as a multi-line text block. The field order
// is fixed: title, total area, retail range, commission range.
func Summary(q pricing.Quote) string {
	var b strings.Builder
	fmt.Fprintln(&b, SummaryTitle)
	fmt.Fprintf(&b, "Total glazing area: %.2f sq ft\n", q.AreaSqFt)
	fmt.Fprintf(&b, "Retail: $%.2f - $%.2f\n", q.RetailLow, q.RetailHigh)
	fmt.Fprintf(&b, "Commission: $%.2f - $%.2f\n", q.CommissionLow, q.CommissionHigh)
	return b.String()
}
