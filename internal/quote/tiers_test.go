package quote

import "testing"

func TestAdjustmentFor_TierBaseValues(t *testing.T) {
	basic := AdjustmentFor(TierBasic, ClassGeneral, ExperienceIntermediate)
	standard := AdjustmentFor(TierStandard, ClassGeneral, ExperienceIntermediate)
	premium := AdjustmentFor(TierPremium, ClassGeneral, ExperienceIntermediate)

	nearlyEqual(t, "basic labor", basic.LaborMultiplier, 0.80)
	nearlyEqual(t, "basic rate", basic.RateMultiplier, 0.90)
	nearlyEqual(t, "basic material", basic.MaterialMultiplier, 0.80)
	if basic.MarginAdjustmentPoints != -5 {
		t.Fatalf("basic margin = %d, want -5", basic.MarginAdjustmentPoints)
	}

	nearlyEqual(t, "standard labor", standard.LaborMultiplier, 1.00)
	nearlyEqual(t, "standard rate", standard.RateMultiplier, 1.00)
	if standard.MarginAdjustmentPoints != 0 {
		t.Fatalf("standard margin = %d, want 0", standard.MarginAdjustmentPoints)
	}

	nearlyEqual(t, "premium labor", premium.LaborMultiplier, 1.20)
	nearlyEqual(t, "premium rate", premium.RateMultiplier, 1.20)
	nearlyEqual(t, "premium material", premium.MaterialMultiplier, 1.50)
	if premium.MarginAdjustmentPoints != 5 {
		t.Fatalf("premium margin = %d, want 5", premium.MarginAdjustmentPoints)
	}
}

func TestAdjustmentFor_ClassOverridesReplace(t *testing.T) {
	// Beauty basic replaces labor/material/margin outright.
	adj := AdjustmentFor(TierBasic, ClassBeauty, ExperienceIntermediate)
	nearlyEqual(t, "beauty basic labor", adj.LaborMultiplier, 0.85)
	nearlyEqual(t, "beauty basic material", adj.MaterialMultiplier, 0.70)
	if adj.MarginAdjustmentPoints != -3 {
		t.Fatalf("beauty basic margin = %d, want -3", adj.MarginAdjustmentPoints)
	}
	// The rate multiplier is never overridden by class.
	nearlyEqual(t, "beauty basic rate", adj.RateMultiplier, 0.90)
}

func TestAdjustmentFor_ElectronicsStandardLaborBump(t *testing.T) {
	adj := AdjustmentFor(TierStandard, ClassElectronics, ExperienceIntermediate)
	nearlyEqual(t, "electronics standard labor", adj.LaborMultiplier, 1.10)
	nearlyEqual(t, "electronics standard material", adj.MaterialMultiplier, 1.00)
	if adj.MarginAdjustmentPoints != 0 {
		t.Fatalf("electronics standard margin = %d, want 0", adj.MarginAdjustmentPoints)
	}

	// Electronics basic override has no margin entry, so the tier base
	// adjustment survives.
	basic := AdjustmentFor(TierBasic, ClassElectronics, ExperienceIntermediate)
	nearlyEqual(t, "electronics basic labor", basic.LaborMultiplier, 0.90)
	if basic.MarginAdjustmentPoints != -5 {
		t.Fatalf("electronics basic margin = %d, want -5", basic.MarginAdjustmentPoints)
	}
}

func TestAdjustmentFor_ExperienceScalesRateOnly(t *testing.T) {
	junior := AdjustmentFor(TierPremium, ClassAutomotive, ExperienceJunior)
	expert := AdjustmentFor(TierPremium, ClassAutomotive, ExperienceExpert)

	nearlyEqual(t, "junior rate", junior.RateMultiplier, 1.20*0.8)
	nearlyEqual(t, "expert rate", expert.RateMultiplier, 1.20*1.4)
	nearlyEqual(t, "labor unchanged", junior.LaborMultiplier, expert.LaborMultiplier)
	nearlyEqual(t, "material unchanged", junior.MaterialMultiplier, expert.MaterialMultiplier)
}

// The rate multiplier and margin adjustment must be ordered
// basic <= standard <= premium at the multiplier-definition layer for
// every class and experience level.
func TestAdjustmentFor_TierOrderingInvariant(t *testing.T) {
	classes := []CategoryClass{ClassGeneral, ClassBeauty, ClassElectronics, ClassAutomotive}
	levels := []ExperienceLevel{ExperienceJunior, ExperienceIntermediate, ExperienceSenior, ExperienceExpert}

	for _, class := range classes {
		for _, level := range levels {
			basic := AdjustmentFor(TierBasic, class, level)
			standard := AdjustmentFor(TierStandard, class, level)
			premium := AdjustmentFor(TierPremium, class, level)

			if basic.RateMultiplier > standard.RateMultiplier || standard.RateMultiplier > premium.RateMultiplier {
				t.Fatalf("%s/%s: rate multipliers out of order: %v %v %v",
					class, level, basic.RateMultiplier, standard.RateMultiplier, premium.RateMultiplier)
			}
			if basic.MarginAdjustmentPoints > standard.MarginAdjustmentPoints ||
				standard.MarginAdjustmentPoints > premium.MarginAdjustmentPoints {
				t.Fatalf("%s/%s: margin adjustments out of order: %d %d %d",
					class, level, basic.MarginAdjustmentPoints, standard.MarginAdjustmentPoints, premium.MarginAdjustmentPoints)
			}
		}
	}
}
