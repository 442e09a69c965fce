package quote

// Tier is one of the three priced service packages derived from the
// same request.
type Tier string

const (
	TierBasic    Tier = "basic"
	TierStandard Tier = "standard"
	TierPremium  Tier = "premium"
)

// AllTiers lists the tiers in display order.
func AllTiers() []Tier {
	return []Tier{TierBasic, TierStandard, TierPremium}
}

// ValidTier reports whether s names a known tier.
func ValidTier(s string) bool {
	switch Tier(s) {
	case TierBasic, TierStandard, TierPremium:
		return true
	}
	return false
}

// TierAdjustment is the fully derived multiplier set for one tier of
// one request: tier base values, class overrides, and the experience
// rate multiplier already layered in. The emergency surcharge is
// applied later, on the final effective labor rate.
type TierAdjustment struct {
	LaborMultiplier        float64
	RateMultiplier         float64
	MaterialMultiplier     float64
	MarginAdjustmentPoints int
}

// Tier base multipliers. The rate multiplier and margin adjustment are
// ordered basic <= standard <= premium, and class overrides never touch
// the rate multiplier, so that ordering survives override layering.
var tierBase = map[Tier]TierAdjustment{
	TierBasic:    {LaborMultiplier: 0.80, RateMultiplier: 0.90, MaterialMultiplier: 0.80, MarginAdjustmentPoints: -5},
	TierStandard: {LaborMultiplier: 1.00, RateMultiplier: 1.00, MaterialMultiplier: 1.00, MarginAdjustmentPoints: 0},
	TierPremium:  {LaborMultiplier: 1.20, RateMultiplier: 1.20, MaterialMultiplier: 1.50, MarginAdjustmentPoints: 5},
}

// classOverride replaces (never compounds) the labor and material
// multipliers for a tier, and optionally the margin adjustment.
type classOverride struct {
	labor     float64
	material  float64
	margin    int
	hasMargin bool
}

// Category-class overrides. Only basic and premium tiers carry full
// overrides; the single standard-tier entry is the electronics labor
// bump (base 1.00 + 0.10).
var classOverrides = map[CategoryClass]map[Tier]classOverride{
	ClassBeauty: {
		TierBasic:   {labor: 0.85, material: 0.70, margin: -3, hasMargin: true},
		TierPremium: {labor: 1.15, material: 1.60, margin: 8, hasMargin: true},
	},
	ClassElectronics: {
		TierBasic:    {labor: 0.90, material: 0.85},
		TierStandard: {labor: 1.10, material: 1.00},
		TierPremium:  {labor: 1.30, material: 1.40, margin: 6, hasMargin: true},
	},
	ClassAutomotive: {
		TierBasic:   {labor: 0.85, material: 0.90, margin: -4, hasMargin: true},
		TierPremium: {labor: 1.25, material: 1.45, margin: 7, hasMargin: true},
	},
}

// AdjustmentFor derives the multiplier set for a tier, layering the
// tier base with the category-class override and the experience rate
// multiplier.
func AdjustmentFor(tier Tier, class CategoryClass, experience ExperienceLevel) TierAdjustment {
	adj := tierBase[tier]

	if overrides, ok := classOverrides[class]; ok {
		if ov, ok := overrides[tier]; ok {
			adj.LaborMultiplier = ov.labor
			adj.MaterialMultiplier = ov.material
			if ov.hasMargin {
				adj.MarginAdjustmentPoints = ov.margin
			}
		}
	}

	adj.RateMultiplier *= experience.RateMultiplier()
	return adj
}
