package quote

// Emergency jobs pay 1.5x on the final effective labor rate.
const emergencyRateMultiplier = 1.5

// Per-unit discount curve: 5% per unit past the first, capped at 25%.
const (
	quantityDiscountStep = 0.05
	quantityDiscountCap  = 0.25
)

// The margin adjustment can push an already-high target over 100%,
// where the inversion divides by zero. The effective margin is clamped
// just below that; the request-level target is validated separately.
const maxEffectiveMargin = 0.99

// Profit assessment labels. Boundary margins belong to the lower band:
// exactly 25% is still "acceptable".
const (
	assessmentLow        = "Low margin - consider repricing"
	assessmentAcceptable = "Acceptable margin - room to improve"
	assessmentGood       = "Good margin"
)

// costBreakdown carries both the raw (pre-markup) figures and the
// charged line amounts for one tier.
type costBreakdown struct {
	laborHours float64 // effective hours after the labor multiplier
	laborRate  float64 // effective hourly rate, emergency included

	rawLabor     float64
	rawMaterials float64
	rawSubtotal  float64

	materialsTax float64 // on pre-markup materials, by design

	// Charged amounts: raw figures marked up by 1/(1-m) so the quote's
	// line items sum to the total the customer pays.
	laborCost     float64
	materialsCost float64
	subtotal      float64
	total         float64

	effectiveMargin float64 // m, after the tier's adjustment points
	profit          float64
	actualMargin    float64
}

// quantityDiscount returns the discount fraction for a unit count.
func quantityDiscount(quantity int) float64 {
	if quantity <= 1 {
		return 0
	}
	d := float64(quantity-1) * quantityDiscountStep
	if d > quantityDiscountCap {
		return quantityDiscountCap
	}
	return d
}

// computeCost runs the full cost arithmetic for one tier.
func computeCost(req ServiceRequest, rc RateContext, adj TierAdjustment) costBreakdown {
	var b costBreakdown

	b.laborHours = req.LaborHours * adj.LaborMultiplier
	b.laborRate = rc.BaseHourlyRate * adj.RateMultiplier
	if req.Emergency {
		b.laborRate *= emergencyRateMultiplier
	}
	b.rawLabor = b.laborRate * b.laborHours

	if IsQuantityBearing(req.ServiceCategory) && req.Quantity > 1 {
		discount := quantityDiscount(req.Quantity)
		b.rawMaterials = req.MaterialsCost * adj.MaterialMultiplier * float64(req.Quantity) * (1 - discount)
	} else {
		b.rawMaterials = req.MaterialsCost * adj.MaterialMultiplier
	}

	b.rawSubtotal = b.rawLabor + b.rawMaterials
	b.materialsTax = b.rawMaterials * rc.TaxRate

	m := (req.TargetMarginPercent + float64(adj.MarginAdjustmentPoints)) / 100
	if m < 0 {
		m = 0
	}
	if m > maxEffectiveMargin {
		m = maxEffectiveMargin
	}
	b.effectiveMargin = m

	// Margin inversion: the target is a pre-tax cost target, so the
	// markup spreads across the labor and materials lines while the tax
	// stays anchored to the raw materials cost. Tax therefore dilutes
	// the realized margin below the target.
	markup := 1 / (1 - m)
	b.laborCost = b.rawLabor * markup
	b.materialsCost = b.rawMaterials * markup
	b.subtotal = b.rawSubtotal * markup
	b.total = b.subtotal + b.materialsTax

	b.profit = b.subtotal - b.rawSubtotal
	if b.total > 0 {
		b.actualMargin = 100 * b.profit / b.total
	}

	return b
}

// assessProfit maps an achieved margin percentage to its band label.
func assessProfit(actualMarginPercent float64) string {
	switch {
	case actualMarginPercent < 15:
		return assessmentLow
	case actualMarginPercent <= 25:
		return assessmentAcceptable
	default:
		return assessmentGood
	}
}
