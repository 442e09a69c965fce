package quote

import (
	"math"
	"testing"
)

func nearlyEqual(t *testing.T, name string, got, want float64) {
	t.Helper()
	if math.Abs(got-want) > 1e-6 {
		t.Fatalf("%s = %v, want %v", name, got, want)
	}
}

// Minimal tables for arithmetic tests: one fake state, zero tax unless
// a test supplies its own.
func testTables() Tables {
	return Tables{
		Rates:             map[string]map[string]float64{"svc": {RegionNortheast: 50}},
		Tax:               map[string]float64{"XX": 0},
		Regions:           map[string]string{"XX": RegionNortheast},
		StateNames:        map[string]string{},
		DefaultState:      "XX",
		DefaultRegion:     RegionNortheast,
		DefaultHourlyRate: 85,
		DefaultTaxRate:    0,
	}
}

func standardAdjustment() TierAdjustment {
	return TierAdjustment{LaborMultiplier: 1, RateMultiplier: 1, MaterialMultiplier: 1, MarginAdjustmentPoints: 0}
}

func TestComputeCost_MarginInversionWithoutTax(t *testing.T) {
	// subtotal 100, target 25%, no tax: the achieved margin equals the
	// target exactly.
	req := ServiceRequest{
		ServiceCategory:     "svc",
		LaborHours:          2,
		TargetMarginPercent: 25,
	}
	rc := RateContext{State: "XX", Region: RegionNortheast, BaseHourlyRate: 50, TaxRate: 0}

	b := computeCost(req, rc, standardAdjustment())

	nearlyEqual(t, "rawSubtotal", b.rawSubtotal, 100)
	nearlyEqual(t, "subtotal", b.subtotal, 100/0.75)
	nearlyEqual(t, "total", b.total, 100/0.75)
	nearlyEqual(t, "actualMargin", b.actualMargin, 25)
}

func TestComputeCost_TaxDilutesMarginBelowTarget(t *testing.T) {
	// Same inversion but with taxed materials and no labor cost: the
	// realized margin lands strictly below the 25% target because the
	// tax is anchored to the raw materials cost.
	req := ServiceRequest{
		ServiceCategory:     "svc",
		LaborHours:          1,
		MaterialsCost:       100,
		TargetMarginPercent: 25,
	}
	rc := RateContext{State: "XX", Region: RegionNortheast, BaseHourlyRate: 0, TaxRate: 0.06}

	b := computeCost(req, rc, standardAdjustment())

	nearlyEqual(t, "rawLabor", b.rawLabor, 0)
	nearlyEqual(t, "materialsTax", b.materialsTax, 6)
	nearlyEqual(t, "total", b.total, 100/0.75+6)
	nearlyEqual(t, "profit", b.profit, 100/0.75-100)
	if b.actualMargin >= 25 {
		t.Fatalf("actualMargin = %v, want strictly below 25", b.actualMargin)
	}
}

func TestComputeCost_EmergencyIsExactly1_5xLabor(t *testing.T) {
	req := ServiceRequest{
		ServiceCategory:     "locksmith",
		LaborHours:          3,
		MaterialsCost:       40,
		Quantity:            1,
		TargetMarginPercent: 20,
	}
	rc := RateContext{State: "XX", Region: RegionNortheast, BaseHourlyRate: 95, TaxRate: 0.04}

	for _, tier := range AllTiers() {
		adj := AdjustmentFor(tier, ClassGeneral, ExperienceSenior)
		calm := computeCost(req, rc, adj)

		urgent := req
		urgent.Emergency = true
		rush := computeCost(urgent, rc, adj)

		nearlyEqual(t, string(tier)+" emergency laborCost", rush.laborCost, calm.laborCost*1.5)
		nearlyEqual(t, string(tier)+" emergency materialsCost", rush.materialsCost, calm.materialsCost)
	}
}

func TestQuantityDiscount_CurveAndCap(t *testing.T) {
	cases := []struct {
		quantity int
		want     float64
	}{
		{1, 0},
		{2, 0.05},
		{3, 0.10},
		{4, 0.15},
		{5, 0.20},
		{6, 0.25},
		{50, 0.25},
	}
	for _, c := range cases {
		got := quantityDiscount(c.quantity)
		nearlyEqual(t, "discount", got, c.want)
		if got > 0.25 {
			t.Fatalf("discount for quantity %d exceeds cap: %v", c.quantity, got)
		}
	}
}

func TestComputeCost_QuantityIgnoredForNonQuantityCategories(t *testing.T) {
	req := ServiceRequest{
		ServiceCategory:     "cleaning",
		LaborHours:          1,
		MaterialsCost:       30,
		Quantity:            4,
		TargetMarginPercent: 0,
	}
	rc := RateContext{State: "XX", Region: RegionNortheast, BaseHourlyRate: 50, TaxRate: 0}

	b := computeCost(req, rc, standardAdjustment())
	nearlyEqual(t, "rawMaterials", b.rawMaterials, 30)
}

func TestComputeCost_QuantityBearingMaterials(t *testing.T) {
	// phone-repair is quantity-bearing: 3 units at 5% per extra unit.
	req := ServiceRequest{
		ServiceCategory:     "phone-repair",
		LaborHours:          1,
		MaterialsCost:       80,
		Quantity:            3,
		TargetMarginPercent: 0,
	}
	rc := RateContext{State: "XX", Region: RegionNortheast, BaseHourlyRate: 0, TaxRate: 0}

	b := computeCost(req, rc, standardAdjustment())
	nearlyEqual(t, "rawMaterials", b.rawMaterials, 80*3*0.90)
}

func TestComputeCost_MarginAdjustmentClamp(t *testing.T) {
	// Premium adds +5 points; a 97% target would cross 100% without the
	// clamp and divide by zero.
	req := ServiceRequest{
		ServiceCategory:     "cleaning",
		LaborHours:          1,
		TargetMarginPercent: 97,
	}
	rc := RateContext{State: "XX", Region: RegionNortheast, BaseHourlyRate: 50, TaxRate: 0}
	adj := standardAdjustment()
	adj.MarginAdjustmentPoints = 5

	b := computeCost(req, rc, adj)
	if math.IsInf(b.total, 0) || math.IsNaN(b.total) || b.total < 0 {
		t.Fatalf("total = %v, want finite positive", b.total)
	}
	nearlyEqual(t, "effectiveMargin", b.effectiveMargin, maxEffectiveMargin)
}

func TestAssessProfit_BoundariesBelongToLowerBand(t *testing.T) {
	cases := []struct {
		margin float64
		want   string
	}{
		{5, assessmentLow},
		{14.999, assessmentLow},
		{15, assessmentAcceptable},
		{20, assessmentAcceptable},
		{25, assessmentAcceptable},
		{25.001, assessmentGood},
		{40, assessmentGood},
	}
	for _, c := range cases {
		if got := assessProfit(c.margin); got != c.want {
			t.Fatalf("assessProfit(%v) = %q, want %q", c.margin, got, c.want)
		}
	}
}
