package quote

// Region keys used by the base-rate table.
const (
	RegionNortheast = "northeast"
	RegionMidwest   = "midwest"
	RegionSoutheast = "southeast"
	RegionSouthwest = "southwest"
	RegionWest      = "west"
	RegionSouth     = "south"
)

// DefaultTables returns the built-in production dataset. The server
// seeds its SQLite copy from this and prices against the stored rows;
// the CLI prices against it directly.
func DefaultTables() Tables {
	return Tables{
		Rates:             defaultRates(),
		Tax:               defaultTax(),
		Regions:           defaultRegions(),
		StateNames:        defaultStateNames(),
		DefaultState:      "NY",
		DefaultRegion:     RegionNortheast,
		DefaultHourlyRate: 85,
		DefaultTaxRate:    0.06,
	}
}

func defaultRates() map[string]map[string]float64 {
	return map[string]map[string]float64{
		"hair-styling": {
			RegionNortheast: 75, RegionMidwest: 60, RegionSoutheast: 58,
			RegionSouthwest: 62, RegionWest: 80, RegionSouth: 55,
		},
		"nail-care": {
			RegionNortheast: 55, RegionMidwest: 45, RegionSoutheast: 42,
			RegionSouthwest: 46, RegionWest: 60, RegionSouth: 40,
		},
		"makeup": {
			RegionNortheast: 85, RegionMidwest: 70, RegionSoutheast: 65,
			RegionSouthwest: 70, RegionWest: 95, RegionSouth: 60,
		},
		"barbering": {
			RegionNortheast: 60, RegionMidwest: 50, RegionSoutheast: 48,
			RegionSouthwest: 52, RegionWest: 68, RegionSouth: 45,
		},
		"phone-repair": {
			RegionNortheast: 70, RegionMidwest: 60, RegionSoutheast: 58,
			RegionSouthwest: 62, RegionWest: 78, RegionSouth: 55,
		},
		"computer-repair": {
			RegionNortheast: 90, RegionMidwest: 75, RegionSoutheast: 72,
			RegionSouthwest: 78, RegionWest: 100, RegionSouth: 68,
		},
		"tablet-repair": {
			RegionNortheast: 72, RegionMidwest: 62, RegionSoutheast: 60,
			RegionSouthwest: 64, RegionWest: 80, RegionSouth: 56,
		},
		"appliance-repair": {
			RegionNortheast: 95, RegionMidwest: 80, RegionSoutheast: 75,
			RegionSouthwest: 82, RegionWest: 105, RegionSouth: 72,
		},
		"auto-repair": {
			RegionNortheast: 110, RegionMidwest: 95, RegionSoutheast: 90,
			RegionSouthwest: 96, RegionWest: 120, RegionSouth: 85,
		},
		"brake-service": {
			RegionNortheast: 105, RegionMidwest: 90, RegionSoutheast: 85,
			RegionSouthwest: 92, RegionWest: 115, RegionSouth: 80,
		},
		"oil-change": {
			RegionNortheast: 65, RegionMidwest: 55, RegionSoutheast: 52,
			RegionSouthwest: 56, RegionWest: 72, RegionSouth: 48,
		},
		"locksmith": {
			RegionNortheast: 95, RegionMidwest: 80, RegionSoutheast: 75,
			RegionSouthwest: 82, RegionWest: 105, RegionSouth: 70,
		},
		"plumbing": {
			RegionNortheast: 115, RegionMidwest: 95, RegionSoutheast: 90,
			RegionSouthwest: 98, RegionWest: 125, RegionSouth: 85,
		},
		"electrical": {
			RegionNortheast: 120, RegionMidwest: 100, RegionSoutheast: 95,
			RegionSouthwest: 102, RegionWest: 130, RegionSouth: 90,
		},
		"cleaning": {
			RegionNortheast: 55, RegionMidwest: 45, RegionSoutheast: 42,
			RegionSouthwest: 46, RegionWest: 62, RegionSouth: 38,
		},
		"handyman": {
			RegionNortheast: 75, RegionMidwest: 62, RegionSoutheast: 58,
			RegionSouthwest: 64, RegionWest: 85, RegionSouth: 52,
		},
	}
}

// State sales tax fractions, applied to materials only.
func defaultTax() map[string]float64 {
	return map[string]float64{
		"AL": 0.04, "AK": 0, "AZ": 0.056, "AR": 0.065, "CA": 0.0725,
		"CO": 0.029, "CT": 0.0635, "DE": 0, "FL": 0.06, "GA": 0.04,
		"HI": 0.04, "ID": 0.06, "IL": 0.0625, "IN": 0.07, "IA": 0.06,
		"KS": 0.065, "KY": 0.06, "LA": 0.0445, "ME": 0.055, "MD": 0.06,
		"MA": 0.0625, "MI": 0.06, "MN": 0.06875, "MS": 0.07, "MO": 0.04225,
		"MT": 0, "NE": 0.055, "NV": 0.0685, "NH": 0, "NJ": 0.06625,
		"NM": 0.05125, "NY": 0.04, "NC": 0.0475, "ND": 0.05, "OH": 0.0575,
		"OK": 0.045, "OR": 0, "PA": 0.06, "RI": 0.07, "SC": 0.06,
		"SD": 0.045, "TN": 0.07, "TX": 0.0625, "UT": 0.0485, "VT": 0.06,
		"VA": 0.053, "WA": 0.065, "WV": 0.06, "WI": 0.05, "WY": 0.04,
		"DC": 0.06,
	}
}

func defaultRegions() map[string]string {
	return map[string]string{
		"CT": RegionNortheast, "MA": RegionNortheast, "ME": RegionNortheast,
		"NH": RegionNortheast, "NJ": RegionNortheast, "NY": RegionNortheast,
		"PA": RegionNortheast, "RI": RegionNortheast, "VT": RegionNortheast,

		"IA": RegionMidwest, "IL": RegionMidwest, "IN": RegionMidwest,
		"KS": RegionMidwest, "MI": RegionMidwest, "MN": RegionMidwest,
		"MO": RegionMidwest, "ND": RegionMidwest, "NE": RegionMidwest,
		"OH": RegionMidwest, "SD": RegionMidwest, "WI": RegionMidwest,

		"AL": RegionSoutheast, "DC": RegionSoutheast, "DE": RegionSoutheast,
		"FL": RegionSoutheast, "GA": RegionSoutheast, "KY": RegionSoutheast,
		"MD": RegionSoutheast, "MS": RegionSoutheast, "NC": RegionSoutheast,
		"SC": RegionSoutheast, "TN": RegionSoutheast, "VA": RegionSoutheast,
		"WV": RegionSoutheast,

		"AZ": RegionSouthwest, "NM": RegionSouthwest, "OK": RegionSouthwest,
		"TX": RegionSouthwest,

		"AK": RegionWest, "CA": RegionWest, "CO": RegionWest,
		"HI": RegionWest, "ID": RegionWest, "MT": RegionWest,
		"NV": RegionWest, "OR": RegionWest, "UT": RegionWest,
		"WA": RegionWest, "WY": RegionWest,

		"AR": RegionSouth, "LA": RegionSouth,
	}
}

func defaultStateNames() map[string]string {
	return map[string]string{
		"alabama": "AL", "alaska": "AK", "arizona": "AZ", "arkansas": "AR",
		"california": "CA", "colorado": "CO", "connecticut": "CT",
		"delaware": "DE", "florida": "FL", "georgia": "GA", "hawaii": "HI",
		"idaho": "ID", "illinois": "IL", "indiana": "IN", "iowa": "IA",
		"kansas": "KS", "kentucky": "KY", "louisiana": "LA", "maine": "ME",
		"maryland": "MD", "massachusetts": "MA", "michigan": "MI",
		"minnesota": "MN", "mississippi": "MS", "missouri": "MO",
		"montana": "MT", "nebraska": "NE", "nevada": "NV",
		"new hampshire": "NH", "new jersey": "NJ", "new mexico": "NM",
		"new york": "NY", "north carolina": "NC", "north dakota": "ND",
		"ohio": "OH", "oklahoma": "OK", "oregon": "OR",
		"pennsylvania": "PA", "rhode island": "RI", "south carolina": "SC",
		"south dakota": "SD", "tennessee": "TN", "texas": "TX",
		"utah": "UT", "vermont": "VT", "virginia": "VA",
		"washington": "WA", "west virginia": "WV", "wisconsin": "WI",
		"wyoming": "WY", "washington dc": "DC", "district of columbia": "DC",
	}
}
