package quote

import "errors"

// ErrNotEditable is returned when an override targets a tier whose
// editable flag is off.
var ErrNotEditable = errors.New("quote tier is not editable")

// Override is an explicit post-generation edit command. Nil fields are
// left untouched; a non-nil Features slice replaces the whole list.
type Override struct {
	Price       *float64 `json:"price,omitempty"`
	Description *string  `json:"description,omitempty"`
	Features    []string `json:"features,omitempty"`
}

// ApplyOverride applies the override to a copy of the tier and returns
// the new record; the input is never mutated, which keeps the edit
// history auditable. A price override re-spreads the new total across
// the labor and materials lines and recomputes the achieved margin
// against the unchanged cost basis.
func ApplyOverride(tier QuoteTier, o Override) (QuoteTier, error) {
	if !tier.Editable {
		return QuoteTier{}, ErrNotEditable
	}

	out := tier
	out.Features = append([]string(nil), tier.Features...)

	if o.Price != nil {
		newTotal := *o.Price
		if newTotal <= 0 {
			return QuoteTier{}, invalid("price", "must be greater than 0")
		}
		// The provider's cost basis (raw subtotal plus remitted tax)
		// does not move when the price does.
		costBasis := tier.Total - tier.ProfitAmount

		newSubtotal := newTotal - tier.MaterialsTax
		if newSubtotal < 0 {
			return QuoteTier{}, invalid("price", "must cover materials tax")
		}
		if tier.Subtotal > 0 {
			scale := newSubtotal / tier.Subtotal
			out.LaborCost = tier.LaborCost * scale
			out.MaterialsCost = tier.MaterialsCost * scale
		}
		out.Subtotal = newSubtotal
		out.Total = newTotal
		out.ProfitAmount = newTotal - costBasis
		out.ActualMarginPercent = 100 * out.ProfitAmount / newTotal
		out.ProfitAssessment = assessProfit(out.ActualMarginPercent)
	}

	if o.Description != nil {
		out.Description = *o.Description
	}
	if o.Features != nil {
		out.Features = dedupe(append([]string(nil), o.Features...))
	}

	return out, nil
}
