// Package pricing turns a total glazing area into retail and commission
// price ranges.
package pricing

// Quote is a price range for a job. Commission is the spread between retail
// and the baseline cost.
type Quote struct {
	AreaSqFt       float64
	RetailLow      float64
	RetailHigh     float64
	CommissionLow  float64
	CommissionHigh float64
}

// Policy computes a quote from a total area in square feet. A zero or
// negative area yields no quote: an empty selection must never look like a
// zero-dollar estimate.
type Policy interface {
	Name() string
	Quote(totalAreaSqFt float64) (Quote, bool)
}

// Rates is the standard two-tier policy: a baseline cost rate plus a retail
// low/high band, all per square foot.
type Rates struct {
	CostPerSqFt       float64 `json:"cost_per_sqft"`
	RetailLowPerSqFt  float64 `json:"retail_low_per_sqft"`
	RetailHighPerSqFt float64 `json:"retail_high_per_sqft"`
}

// DefaultRates returns the standard per-square-foot rates.
func DefaultRates() Rates {
	return Rates{
		CostPerSqFt:       5,
		RetailLowPerSqFt:  10,
		RetailHighPerSqFt: 15,
	}
}

// Name implements Policy.
func (r Rates) Name() string { return "Standard" }

// Quote implements Policy.
func (r Rates) Quote(totalAreaSqFt float64) (Quote, bool) {
	if totalAreaSqFt <= 0 {
		return Quote{}, false
	}
	cost := totalAreaSqFt * r.CostPerSqFt
	low := totalAreaSqFt * r.RetailLowPerSqFt
	high := totalAreaSqFt * r.RetailHighPerSqFt
	return Quote{
		AreaSqFt:       totalAreaSqFt,
		RetailLow:      low,
		RetailHigh:     high,
		CommissionLow:  low - cost,
		CommissionHigh: high - cost,
	}, true
}

// MarginTier is one band of the tiered policy: jobs up to MaxAreaSqFt are
// marked up by Margin over cost. The final tier's MaxAreaSqFt is ignored.
type MarginTier struct {
	MaxAreaSqFt float64 `json:"max_area_sqft"`
	Margin      float64 `json:"margin"` // e.g. 1.8 = 180% of cost
}

// TieredPolicy is the alternative cost-floor/margin model, selectable in
// preferences. Retail low/high come from the matched tier's margin applied
// at 90% and 110%, with the job floor enforced on both ends.
type TieredPolicy struct {
	CostPerSqFt float64      `json:"cost_per_sqft"`
	JobFloor    float64      `json:"job_floor"` // Minimum retail for any job
	Tiers       []MarginTier `json:"tiers"`
}

// DefaultTieredPolicy returns the tiered policy with stock bands.
func DefaultTieredPolicy() TieredPolicy {
	return TieredPolicy{
		CostPerSqFt: 5,
		JobFloor:    150,
		Tiers: []MarginTier{
			{MaxAreaSqFt: 20, Margin: 3.0},
			{MaxAreaSqFt: 60, Margin: 2.5},
			{MaxAreaSqFt: 0, Margin: 2.0},
		},
	}
}

// Name implements Policy.
func (p TieredPolicy) Name() string { return "Tiered" }

// Quote implements Policy.
func (p TieredPolicy) Quote(totalAreaSqFt float64) (Quote, bool) {
	if totalAreaSqFt <= 0 || len(p.Tiers) == 0 {
		return Quote{}, false
	}

	margin := p.Tiers[len(p.Tiers)-1].Margin
	for _, tier := range p.Tiers[:len(p.Tiers)-1] {
		if totalAreaSqFt <= tier.MaxAreaSqFt {
			margin = tier.Margin
			break
		}
	}

	cost := totalAreaSqFt * p.CostPerSqFt
	mid := cost * margin
	low := mid * 0.9
	high := mid * 1.1
	if low < p.JobFloor {
		low = p.JobFloor
	}
	if high < p.JobFloor {
		high = p.JobFloor
	}
	return Quote{
		AreaSqFt:       totalAreaSqFt,
		RetailLow:      low,
		RetailHigh:     high,
		CommissionLow:  low - cost,
		CommissionHigh: high - cost,
	}, true
}

// PolicyByName resolves a policy name from preferences, falling back to the
// standard rates for unknown names.
func PolicyByName(name string) Policy {
	if name == "Tiered" {
		return DefaultTieredPolicy()
	}
	return DefaultRates()
}
