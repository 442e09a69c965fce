package quote

import "strings"

// CategoryClass is the coarse grouping that drives tier multiplier
// overrides, price thresholds, and feature content. Membership is
// resolved once per request and switched on everywhere else.
type CategoryClass string

const (
	ClassGeneral     CategoryClass = "general"
	ClassBeauty      CategoryClass = "beauty"
	ClassElectronics CategoryClass = "electronics"
	ClassAutomotive  CategoryClass = "automotive"
)

// Closed membership sets. Categories outside every set are ClassGeneral
// and use only the tier base multipliers.
var categoryClasses = map[string]CategoryClass{
	"hair-styling": ClassBeauty,
	"nail-care":    ClassBeauty,
	"makeup":       ClassBeauty,
	"barbering":    ClassBeauty,

	"phone-repair":     ClassElectronics,
	"computer-repair":  ClassElectronics,
	"tablet-repair":    ClassElectronics,
	"appliance-repair": ClassElectronics,

	"auto-repair":   ClassAutomotive,
	"brake-service": ClassAutomotive,
	"oil-change":    ClassAutomotive,
}

// Quantity-bearing categories price multiple physical units and qualify
// for the per-unit discount curve.
var quantityBearing = map[string]bool{
	"phone-repair":     true,
	"computer-repair":  true,
	"tablet-repair":    true,
	"appliance-repair": true,
	"locksmith":        true,
}

// ClassOf resolves a service category key to its class.
func ClassOf(category string) CategoryClass {
	if c, ok := categoryClasses[category]; ok {
		return c
	}
	return ClassGeneral
}

// IsQuantityBearing reports whether the category prices per unit.
func IsQuantityBearing(category string) bool {
	return quantityBearing[category]
}

// DisplayName turns a category or subcategory key into a label,
// e.g. "phone-repair" -> "Phone Repair".
func DisplayName(key string) string {
	words := strings.Split(key, "-")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
