package quote

import "fmt"

// Base feature lists keyed by category class and tier.
var classBaseFeatures = map[CategoryClass]map[Tier][]string{
	ClassBeauty: {
		TierBasic:    {"Consultation included", "Standard product line", "30-day touch-up policy"},
		TierStandard: {"Extended consultation", "Professional-grade products", "60-day touch-up policy", "Style recommendations"},
		TierPremium:  {"In-depth style consultation", "Luxury product line", "90-day touch-up policy", "Complimentary add-on treatment", "Priority rebooking"},
	},
	ClassElectronics: {
		TierBasic:    {"Diagnostic included", "30-day repair warranty", "Standard replacement parts"},
		TierStandard: {"Full diagnostic report", "90-day repair warranty", "OEM-grade parts", "Data protection handling"},
		TierPremium:  {"Full diagnostic report", "1-year repair warranty", "OEM parts", "Data protection handling", "Loaner device available"},
	},
	ClassAutomotive: {
		TierBasic:    {"Multi-point inspection", "30-day parts warranty", "Standard parts"},
		TierStandard: {"Multi-point inspection", "6-month parts warranty", "OEM-equivalent parts", "Road test included"},
		TierPremium:  {"Comprehensive inspection", "12-month parts warranty", "OEM parts", "Road test included", "Complimentary fluid top-off"},
	},
}

// Specific-category lists, consulted when the category has no class
// list (general-class categories only).
var categoryBaseFeatures = map[string]map[Tier][]string{
	"locksmith": {
		TierBasic:    {"Standard lock service", "30-day guarantee"},
		TierStandard: {"Priority dispatch", "90-day guarantee", "Security assessment"},
		TierPremium:  {"Rapid dispatch", "1-year guarantee", "Full security assessment", "High-security hardware options"},
	},
	"plumbing": {
		TierBasic:    {"Standard service call", "30-day workmanship guarantee"},
		TierStandard: {"Priority dispatch", "90-day workmanship guarantee", "Camera inspection available"},
		TierPremium:  {"Rapid dispatch", "1-year workmanship guarantee", "Camera inspection included", "Preventive maintenance check"},
	},
}

var genericBaseFeatures = map[Tier][]string{
	TierBasic:    {"Standard service call", "30-day workmanship guarantee", "Flexible scheduling"},
	TierStandard: {"Priority scheduling", "90-day workmanship guarantee", "Quality materials included", "Follow-up support"},
	TierPremium:  {"Same-week scheduling", "1-year workmanship guarantee", "Premium materials included", "Dedicated support line", "Free follow-up visit"},
}

// priceThresholds are the mid/high dollar cut-offs a tier total is
// compared against. Beauty work crosses into "premium-signaling"
// territory at lower totals than electronics, which in turn sit below
// automotive.
type priceThresholds struct {
	mid  float64
	high float64
}

var classThresholds = map[CategoryClass]priceThresholds{
	ClassBeauty:      {mid: 150, high: 400},
	ClassElectronics: {mid: 250, high: 600},
	ClassAutomotive:  {mid: 350, high: 800},
	ClassGeneral:     {mid: 300, high: 750},
}

var highPriceFeatures = []string{"White-glove service experience", "Dedicated project coordinator"}
var midPriceFeatures = []string{"Enhanced service package"}

// Expert-level master/certified feature per class.
var expertFeatures = map[CategoryClass]string{
	ClassBeauty:      "Master stylist service",
	ClassElectronics: "Certified master technician",
	ClassAutomotive:  "Master-certified mechanic",
	ClassGeneral:     "Master craftsman service",
}

const seniorFeature = "Senior professional service"

// curateFeatures assembles the tier's feature list from its four
// sources in fixed order, deduplicating by exact string while keeping
// the first occurrence.
func curateFeatures(req ServiceRequest, class CategoryClass, tier Tier, total float64) []string {
	features := baseFeatures(req.ServiceCategory, class, tier)
	features = append(features, thresholdFeatures(class, total)...)
	features = append(features, experienceFeatures(req.ExperienceLevel, class)...)
	if IsQuantityBearing(req.ServiceCategory) {
		features = append(features, quantityFeatures(req.Quantity)...)
	}
	return dedupe(features)
}

func baseFeatures(category string, class CategoryClass, tier Tier) []string {
	if byTier, ok := classBaseFeatures[class]; ok {
		if list, ok := byTier[tier]; ok {
			return append([]string(nil), list...)
		}
	}
	if byTier, ok := categoryBaseFeatures[category]; ok {
		if list, ok := byTier[tier]; ok {
			return append([]string(nil), list...)
		}
	}
	return append([]string(nil), genericBaseFeatures[tier]...)
}

func thresholdFeatures(class CategoryClass, total float64) []string {
	th := classThresholds[class]
	switch {
	case total >= th.high:
		return highPriceFeatures
	case total >= th.mid:
		return midPriceFeatures
	default:
		return nil
	}
}

func experienceFeatures(level ExperienceLevel, class CategoryClass) []string {
	switch level {
	case ExperienceExpert:
		return []string{expertFeatures[class]}
	case ExperienceSenior:
		return []string{seniorFeature}
	default:
		return nil
	}
}

// quantityFeatures describes the multi-unit discount. Display caps at
// 25% even where the applied discount is still climbing the curve.
func quantityFeatures(quantity int) []string {
	switch {
	case quantity >= 5:
		return []string{"25% multi-unit discount applied", "Bulk service efficiency"}
	case quantity >= 3:
		return []string{fmt.Sprintf("%d%% multi-unit discount applied", 5*quantity)}
	case quantity == 2:
		return []string{"Second unit discount applied"}
	default:
		return nil
	}
}

func dedupe(features []string) []string {
	seen := make(map[string]bool, len(features))
	out := features[:0]
	for _, f := range features {
		if seen[f] {
			continue
		}
		seen[f] = true
		out = append(out, f)
	}
	return out
}
