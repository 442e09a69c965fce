package quote

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// InvoiceLine is one line item, with the amount rounded to cents.
type InvoiceLine struct {
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
}

// Automotive materials are split into parts and consumables on the
// invoice; this is the parts share of the materials line.
const automotivePartsShare = 0.8

// InvoiceLines converts one tier of a quote into invoice line items:
// one labor line, one or two materials lines depending on the category
// class, and a tax line when tax applies. The final line absorbs any
// cent-rounding residue so the lines always sum to the rounded total.
func InvoiceLines(q *MultiQuote, tier Tier) ([]InvoiceLine, error) {
	t, ok := q.TierByName(tier)
	if !ok {
		return nil, fmt.Errorf("unknown tier %q", tier)
	}

	total := decimal.NewFromFloat(t.Total).Round(2)
	lines := []InvoiceLine{{
		Description: fmt.Sprintf("Labor - %.1f hours @ $%.2f/hr", t.LaborHours, t.LaborRate),
		Amount:      decimal.NewFromFloat(t.LaborCost).Round(2),
	}}

	if t.MaterialsCost > 0 {
		switch ClassOf(q.Category) {
		case ClassAutomotive:
			parts := decimal.NewFromFloat(t.MaterialsCost * automotivePartsShare).Round(2)
			fluids := decimal.NewFromFloat(t.MaterialsCost).Round(2).Sub(parts)
			lines = append(lines,
				InvoiceLine{Description: "Parts", Amount: parts},
				InvoiceLine{Description: "Fluids & consumables", Amount: fluids},
			)
		case ClassElectronics:
			lines = append(lines, InvoiceLine{
				Description: "Replacement parts",
				Amount:      decimal.NewFromFloat(t.MaterialsCost).Round(2),
			})
		default:
			lines = append(lines, InvoiceLine{
				Description: "Materials",
				Amount:      decimal.NewFromFloat(t.MaterialsCost).Round(2),
			})
		}
	}

	billed := decimal.Zero
	for _, l := range lines {
		billed = billed.Add(l.Amount)
	}
	if t.MaterialsTax > 0 {
		lines = append(lines, InvoiceLine{
			Description: fmt.Sprintf("Sales tax (%s)", q.Rates.State),
			Amount:      total.Sub(billed),
		})
	} else if residue := total.Sub(billed); !residue.IsZero() {
		// No tax line to carry the residue; fold it into the last line
		// so untaxed invoices still add up.
		last := len(lines) - 1
		lines[last].Amount = lines[last].Amount.Add(residue)
	}

	return lines, nil
}
