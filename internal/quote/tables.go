package quote

import "strings"

// RateContext is the resolved pricing context for one request. It is
// derived once and shared read-only by all three tiers.
type RateContext struct {
	State          string  `json:"state"`
	Region         string  `json:"region"`
	BaseHourlyRate float64 `json:"baseHourlyRate"`
	TaxRate        float64 `json:"taxRate"`
}

// Tables holds the rate, tax, and region lookup data the engine prices
// against. It is plain configuration: callers construct it (or load it
// from storage) and pass it to NewEngine; the engine never mutates it,
// so one value may be shared across concurrent requests.
type Tables struct {
	// Rates maps service category -> region -> base hourly rate.
	Rates map[string]map[string]float64
	// Tax maps state code -> sales tax fraction (materials only).
	Tax map[string]float64
	// Regions maps state code -> one of the six rate regions.
	Regions map[string]string
	// StateNames maps lowercased full state names -> state code.
	StateNames map[string]string

	// Fallbacks for lookups that miss. Unknown inputs are resolved, not
	// rejected, so new categories and territories price immediately.
	DefaultState      string
	DefaultRegion     string
	DefaultHourlyRate float64
	DefaultTaxRate    float64
}

// ResolveState normalizes a free-text location into a state code.
// Accepted forms are "City, ST" and "City, State Name"; anything else
// (bare ZIPs, unrecognized strings) resolves to the default state.
// It never fails: every downstream table keys off a guaranteed code.
func (t Tables) ResolveState(location string) string {
	_, after, found := strings.Cut(location, ",")
	if !found {
		return t.DefaultState
	}

	candidate := strings.ToUpper(strings.TrimSpace(after))
	if len(candidate) == 2 {
		if _, ok := t.Regions[candidate]; ok {
			return candidate
		}
	}
	if code, ok := t.StateNames[strings.ToLower(strings.TrimSpace(after))]; ok {
		return code
	}
	return t.DefaultState
}

// ResolveRates combines the region, base-rate, and tax lookups for a
// category and state. The three lookups are independent: an unknown
// category still prices with the state's real tax rate.
func (t Tables) ResolveRates(category, state string) RateContext {
	region, ok := t.Regions[state]
	if !ok {
		region = t.DefaultRegion
	}

	base := t.DefaultHourlyRate
	if regions, ok := t.Rates[category]; ok {
		if rate, ok := regions[region]; ok {
			base = rate
		}
	}

	tax, ok := t.Tax[state]
	if !ok {
		tax = t.DefaultTaxRate
	}

	return RateContext{
		State:          state,
		Region:         region,
		BaseHourlyRate: base,
		TaxRate:        tax,
	}
}

// Resolve derives the full rate context for a request location.
func (t Tables) Resolve(category, location string) RateContext {
	return t.ResolveRates(category, t.ResolveState(location))
}
