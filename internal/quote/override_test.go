package quote

import (
	"errors"
	"testing"
)

func pricedTier(t *testing.T) QuoteTier {
	t.Helper()
	engine := NewEngine(DefaultTables())
	q, err := engine.Price(validRequest())
	if err != nil {
		t.Fatalf("Price returned error: %v", err)
	}
	return q.Standard
}

func TestApplyOverride_RejectsNonEditable(t *testing.T) {
	tier := pricedTier(t)
	tier.Editable = false

	_, err := ApplyOverride(tier, Override{Description: strPtr("x")})
	if !errors.Is(err, ErrNotEditable) {
		t.Fatalf("got %v, want ErrNotEditable", err)
	}
}

func TestApplyOverride_PriceRecomputesMargin(t *testing.T) {
	tier := pricedTier(t)
	costBasis := tier.Total - tier.ProfitAmount

	price := 400.0
	out, err := ApplyOverride(tier, Override{Price: &price})
	if err != nil {
		t.Fatalf("ApplyOverride returned error: %v", err)
	}

	nearlyEqual(t, "total", out.Total, 400)
	nearlyEqual(t, "profit", out.ProfitAmount, 400-costBasis)
	nearlyEqual(t, "actualMargin", out.ActualMarginPercent, 100*(400-costBasis)/400)
	nearlyEqual(t, "subtotal", out.Subtotal, 400-out.MaterialsTax)
	nearlyEqual(t, "lines sum", out.Subtotal, out.LaborCost+out.MaterialsCost)

	// The input record is untouched.
	nearlyEqual(t, "original total", tier.Total, 322)
}

func TestApplyOverride_RejectsBadPrice(t *testing.T) {
	tier := pricedTier(t)

	for _, price := range []float64{0, -10} {
		p := price
		_, err := ApplyOverride(tier, Override{Price: &p})
		var verr *ValidationError
		if !errors.As(err, &verr) {
			t.Fatalf("price %v: got %v, want ValidationError", price, err)
		}
	}
}

func TestApplyOverride_DescriptionAndFeatures(t *testing.T) {
	tier := pricedTier(t)

	out, err := ApplyOverride(tier, Override{
		Description: strPtr("Negotiated package"),
		Features:    []string{"Custom feature", "Custom feature", "Another"},
	})
	if err != nil {
		t.Fatalf("ApplyOverride returned error: %v", err)
	}

	if out.Description != "Negotiated package" {
		t.Fatalf("description = %q", out.Description)
	}
	if len(out.Features) != 2 || out.Features[0] != "Custom feature" || out.Features[1] != "Another" {
		t.Fatalf("features = %v", out.Features)
	}
	// Price untouched by a content-only override.
	nearlyEqual(t, "total", out.Total, tier.Total)
}

func TestApplyOverride_NoopKeepsEverything(t *testing.T) {
	tier := pricedTier(t)

	out, err := ApplyOverride(tier, Override{})
	if err != nil {
		t.Fatalf("ApplyOverride returned error: %v", err)
	}
	if out.Description != tier.Description || len(out.Features) != len(tier.Features) {
		t.Fatalf("noop override changed content")
	}
	nearlyEqual(t, "total", out.Total, tier.Total)
}

func strPtr(s string) *string { return &s }
