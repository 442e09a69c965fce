// Package quote implements the tiered service-quote pricing engine:
// rate and tax resolution, tier multiplier derivation, cost and margin
// arithmetic, and feature curation. The whole pipeline is a pure
// function of the request and the injected lookup tables, so an Engine
// is safe for concurrent use.
package quote

import (
	"fmt"
	"time"
)

// QuoteTier is one priced package. LaborCost, MaterialsCost, and
// Subtotal are the charged (marked up) line amounts, so
// Subtotal = LaborCost + MaterialsCost and Total = Subtotal +
// MaterialsTax hold exactly at generation time.
type QuoteTier struct {
	Tier                Tier     `json:"tier"`
	LaborHours          float64  `json:"laborHours"`
	LaborRate           float64  `json:"laborRate"`
	LaborCost           float64  `json:"laborCost"`
	MaterialsCost       float64  `json:"materialsCost"`
	MaterialsTax        float64  `json:"materialsTax"`
	Subtotal            float64  `json:"subtotal"`
	Total               float64  `json:"total"`
	TargetMarginPercent float64  `json:"targetMarginPercent"`
	ActualMarginPercent float64  `json:"actualMarginPercent"`
	ProfitAmount        float64  `json:"profitAmount"`
	ProfitAssessment    string   `json:"profitAssessment"`
	Description         string   `json:"description"`
	Features            []string `json:"features"`
	Editable            bool     `json:"editable"`
}

// MultiQuote is the complete three-tier result for one request.
type MultiQuote struct {
	Category        string      `json:"serviceCategory"`
	CategoryName    string      `json:"categoryName"`
	Subcategory     string      `json:"serviceSubcategory"`
	SubcategoryName string      `json:"subcategoryName"`
	Location        string      `json:"location"`
	Emergency       bool        `json:"emergency"`
	Rates           RateContext `json:"rates"`
	Basic           QuoteTier   `json:"basic"`
	Standard        QuoteTier   `json:"standard"`
	Premium         QuoteTier   `json:"premium"`
	GeneratedAt     time.Time   `json:"generatedAt"`
}

// TierByName returns the named tier.
func (q *MultiQuote) TierByName(tier Tier) (QuoteTier, bool) {
	switch tier {
	case TierBasic:
		return q.Basic, true
	case TierStandard:
		return q.Standard, true
	case TierPremium:
		return q.Premium, true
	}
	return QuoteTier{}, false
}

// SetTier replaces the named tier wholesale.
func (q *MultiQuote) SetTier(t QuoteTier) bool {
	switch t.Tier {
	case TierBasic:
		q.Basic = t
	case TierStandard:
		q.Standard = t
	case TierPremium:
		q.Premium = t
	default:
		return false
	}
	return true
}

// Engine prices requests against a fixed set of tables.
type Engine struct {
	tables Tables
	now    func() time.Time
}

// NewEngine returns an engine over the given tables.
func NewEngine(tables Tables) *Engine {
	return &Engine{tables: tables, now: time.Now}
}

// Tables returns the tables the engine prices against.
func (e *Engine) Tables() Tables {
	return e.tables
}

// Price validates the request and produces the three-tier quote. It
// either returns a complete result or an error; there are no partial
// quotes. Unknown categories and locations price via table fallbacks.
func (e *Engine) Price(req ServiceRequest) (*MultiQuote, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	rc := e.tables.Resolve(req.ServiceCategory, req.Location)
	class := ClassOf(req.ServiceCategory)

	q := &MultiQuote{
		Category:        req.ServiceCategory,
		CategoryName:    DisplayName(req.ServiceCategory),
		Subcategory:     req.ServiceSubcategory,
		SubcategoryName: DisplayName(req.ServiceSubcategory),
		Location:        req.Location,
		Emergency:       req.Emergency,
		Rates:           rc,
		GeneratedAt:     e.now().UTC(),
	}

	// The three tiers are independent computations over the same rate
	// context; order does not matter.
	for _, tier := range AllTiers() {
		q.SetTier(priceTier(req, rc, class, tier))
	}
	return q, nil
}

func priceTier(req ServiceRequest, rc RateContext, class CategoryClass, tier Tier) QuoteTier {
	adj := AdjustmentFor(tier, class, req.ExperienceLevel)
	b := computeCost(req, rc, adj)

	return QuoteTier{
		Tier:                tier,
		LaborHours:          b.laborHours,
		LaborRate:           b.laborRate,
		LaborCost:           b.laborCost,
		MaterialsCost:       b.materialsCost,
		MaterialsTax:        b.materialsTax,
		Subtotal:            b.subtotal,
		Total:               b.total,
		TargetMarginPercent: req.TargetMarginPercent,
		ActualMarginPercent: b.actualMargin,
		ProfitAmount:        b.profit,
		ProfitAssessment:    assessProfit(b.actualMargin),
		Description:         tierDescription(tier, req),
		Features:            curateFeatures(req, class, tier, b.total),
		Editable:            true,
	}
}

func tierDescription(tier Tier, req ServiceRequest) string {
	name := DisplayName(req.ServiceSubcategory)
	switch tier {
	case TierBasic:
		return fmt.Sprintf("Essential %s service covering the fundamentals at the lowest price point.", name)
	case TierStandard:
		return fmt.Sprintf("Complete %s service with quality materials and priority scheduling.", name)
	case TierPremium:
		return fmt.Sprintf("Top-of-the-line %s service with premium materials and extended guarantees.", name)
	}
	return ""
}
