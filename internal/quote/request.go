package quote

import "fmt"

// ExperienceLevel is the provider's experience bracket. It scales the
// hourly rate but never the hours.
type ExperienceLevel string

const (
	ExperienceJunior       ExperienceLevel = "junior"
	ExperienceIntermediate ExperienceLevel = "intermediate"
	ExperienceSenior       ExperienceLevel = "senior"
	ExperienceExpert       ExperienceLevel = "expert"
)

var experienceRateMultipliers = map[ExperienceLevel]float64{
	ExperienceJunior:       0.8,
	ExperienceIntermediate: 1.0,
	ExperienceSenior:       1.2,
	ExperienceExpert:       1.4,
}

// Valid reports whether the level is one of the four known brackets.
func (e ExperienceLevel) Valid() bool {
	_, ok := experienceRateMultipliers[e]
	return ok
}

// RateMultiplier returns the hourly-rate multiplier for the level.
// Unknown levels fall back to 1.0; Validate rejects them before pricing.
func (e ExperienceLevel) RateMultiplier() float64 {
	if m, ok := experienceRateMultipliers[e]; ok {
		return m
	}
	return 1.0
}

// ServiceRequest describes one job to be priced. It is constructed once
// per pricing call and never mutated by the engine.
type ServiceRequest struct {
	ServiceCategory     string          `json:"serviceCategory"`
	ServiceSubcategory  string          `json:"serviceSubcategory"`
	Location            string          `json:"location"`
	ExperienceLevel     ExperienceLevel `json:"experienceLevel"`
	LaborHours          float64         `json:"laborHours"`
	Quantity            int             `json:"quantity"`
	MaterialsCost       float64         `json:"materialsCost"`
	Emergency           bool            `json:"emergency"`
	TargetMarginPercent float64         `json:"targetMarginPercent"`
}

// ValidationError reports a request field that failed validation.
// Handlers use it to distinguish caller mistakes from engine faults.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid request: %s %s", e.Field, e.Reason)
}

func invalid(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}

// Validate checks the request before any computation begins. Unknown
// categories, states, and regions are not errors; they resolve through
// the documented table fallbacks instead.
func (r ServiceRequest) Validate() error {
	if r.ServiceCategory == "" {
		return invalid("serviceCategory", "is required")
	}
	if r.ServiceSubcategory == "" {
		return invalid("serviceSubcategory", "is required")
	}
	if r.Location == "" {
		return invalid("location", "is required")
	}
	if !r.ExperienceLevel.Valid() {
		return invalid("experienceLevel", "must be junior, intermediate, senior, or expert")
	}
	if r.LaborHours <= 0 {
		return invalid("laborHours", "must be greater than 0")
	}
	if IsQuantityBearing(r.ServiceCategory) && r.Quantity < 1 {
		return invalid("quantity", "must be at least 1 for this service category")
	}
	if r.MaterialsCost < 0 {
		return invalid("materialsCost", "must not be negative")
	}
	if r.TargetMarginPercent < 0 {
		return invalid("targetMarginPercent", "must not be negative")
	}
	// A 100% margin makes the inversion divide by zero.
	if r.TargetMarginPercent >= 100 {
		return invalid("targetMarginPercent", "must be below 100")
	}
	return nil
}
