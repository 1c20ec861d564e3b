package pricing

import (
	"math"
	"testing"
)

func TestStandardQuoteProportional(t *testing.T) {
	r := DefaultRates()
	q1, ok := r.Quote(10)
	if !ok {
		t.Fatal("quote should be defined for positive area")
	}
	q2, _ := r.Quote(20)

	if math.Abs(q2.RetailLow-2*q1.RetailLow) > 1e-9 ||
		math.Abs(q2.RetailHigh-2*q1.RetailHigh) > 1e-9 {
		t.Errorf("retail not proportional: %+v vs %+v", q1, q2)
	}
	if math.Abs(q1.RetailLow-10*r.RetailLowPerSqFt) > 1e-9 {
		t.Errorf("retail low = %v, want %v", q1.RetailLow, 10*r.RetailLowPerSqFt)
	}
}

func TestCommissionIsRetailMinusCost(t *testing.T) {
	r := Rates{CostPerSqFt: 5, RetailLowPerSqFt: 10, RetailHighPerSqFt: 15}
	q, _ := r.Quote(12)
	if math.Abs(q.CommissionLow-(q.RetailLow-12*5)) > 1e-9 {
		t.Errorf("commission low = %v, want retail minus cost %v", q.CommissionLow, q.RetailLow-60)
	}
	if math.Abs(q.CommissionHigh-(q.RetailHigh-12*5)) > 1e-9 {
		t.Errorf("commission high = %v, want retail minus cost %v", q.CommissionHigh, q.RetailHigh-60)
	}
}

func TestQuoteGating(t *testing.T) {
	policies := []Policy{DefaultRates(), DefaultTieredPolicy()}
	for _, p := range policies {
		if _, ok := p.Quote(0); ok {
			t.Errorf("%s: zero area must not produce a quote", p.Name())
		}
		if _, ok := p.Quote(-3); ok {
			t.Errorf("%s: negative area must not produce a quote", p.Name())
		}
	}
}

func TestTieredMarginSelection(t *testing.T) {
	p := TieredPolicy{
		CostPerSqFt: 10,
		Tiers: []MarginTier{
			{MaxAreaSqFt: 20, Margin: 3.0},
			{MaxAreaSqFt: 0, Margin: 2.0},
		},
	}

	small, _ := p.Quote(10) // cost 100, margin 3 -> mid 300
	if math.Abs(small.RetailLow-270) > 1e-9 || math.Abs(small.RetailHigh-330) > 1e-9 {
		t.Errorf("small job quote = %+v, want retail 270-330", small)
	}

	large, _ := p.Quote(50) // cost 500, margin 2 -> mid 1000
	if math.Abs(large.RetailLow-900) > 1e-9 || math.Abs(large.RetailHigh-1100) > 1e-9 {
		t.Errorf("large job quote = %+v, want retail 900-1100", large)
	}
}

func TestTieredJobFloor(t *testing.T) {
	p := DefaultTieredPolicy()
	q, ok := p.Quote(1) // cost 5, mid 15: well under the floor
	if !ok {
		t.Fatal("tiny positive job still gets a quote")
	}
	if q.RetailLow < p.JobFloor || q.RetailHigh < p.JobFloor {
		t.Errorf("quote = %+v, want both ends at or above floor %v", q, p.JobFloor)
	}
}

func TestPolicyByName(t *testing.T) {
	if got := PolicyByName("Tiered").Name(); got != "Tiered" {
		t.Errorf("PolicyByName(Tiered) = %q", got)
	}
	if got := PolicyByName("Standard").Name(); got != "Standard" {
		t.Errorf("PolicyByName(Standard) = %q", got)
	}
	if got := PolicyByName("bogus").Name(); got != "Standard" {
		t.Errorf("unknown policy should fall back to Standard, got %q", got)
	}
}
