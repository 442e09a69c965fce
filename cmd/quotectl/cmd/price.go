package cmd

import (
	"fmt"

	json "github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/quotemill/quotemill/internal/quote"
)

var priceFlags struct {
	category    string
	subcategory string
	location    string
	experience  string
	hours       float64
	quantity    int
	materials   float64
	margin      float64
	emergency   bool
	asJSON      bool
}

var priceCmd = &cobra.Command{
	Use:   "price",
	Short: "Generate a three-tier quote for one service request",
	Example: `  quotectl price --category locksmith --subcategory lock-rekey \
    --location "Albany, NY" --hours 2 --materials 50`,
	RunE: runPrice,
}

func init() {
	f := priceCmd.Flags()
	f.StringVar(&priceFlags.category, "category", "", "service category, e.g. locksmith")
	f.StringVar(&priceFlags.subcategory, "subcategory", "", "service subcategory, e.g. lock-rekey")
	f.StringVar(&priceFlags.location, "location", "", "customer location, e.g. \"Albany, NY\"")
	f.StringVar(&priceFlags.experience, "experience", "intermediate", "provider experience level (junior|intermediate|senior|expert)")
	f.Float64Var(&priceFlags.hours, "hours", 0, "estimated labor hours")
	f.IntVar(&priceFlags.quantity, "quantity", 1, "unit count for quantity-priced categories")
	f.Float64Var(&priceFlags.materials, "materials", 0, "estimated materials cost in dollars")
	f.Float64Var(&priceFlags.margin, "margin", 25, "target profit margin percent")
	f.BoolVar(&priceFlags.emergency, "emergency", false, "price as an emergency call-out")
	f.BoolVar(&priceFlags.asJSON, "json", false, "print the full quote as JSON")

	rootCmd.AddCommand(priceCmd)
}

func runPrice(cobraCmd *cobra.Command, args []string) error {
	engine := quote.NewEngine(quote.DefaultTables())
	q, err := engine.Price(quote.ServiceRequest{
		ServiceCategory:     priceFlags.category,
		ServiceSubcategory:  priceFlags.subcategory,
		Location:            priceFlags.location,
		ExperienceLevel:     quote.ExperienceLevel(priceFlags.experience),
		LaborHours:          priceFlags.hours,
		Quantity:            priceFlags.quantity,
		MaterialsCost:       priceFlags.materials,
		TargetMarginPercent: priceFlags.margin,
		Emergency:           priceFlags.emergency,
	})
	if err != nil {
		return err
	}

	out := cobraCmd.OutOrStdout()
	if priceFlags.asJSON {
		encoder := json.NewEncoder(out)
		encoder.SetIndent("", "  ")
		return encoder.Encode(q)
	}

	fmt.Fprintf(out, "%s / %s in %s (%s, %s rate $%.2f/hr, tax %.1f%%)\n",
		q.CategoryName, q.SubcategoryName, q.Location,
		q.Rates.State, q.Rates.Region, q.Rates.BaseHourlyRate, q.Rates.TaxRate*100)
	for _, tier := range []quote.QuoteTier{q.Basic, q.Standard, q.Premium} {
		fmt.Fprintf(out, "\n%s  $%.2f\n", tierHeading(tier.Tier), tier.Total)
		fmt.Fprintf(out, "  Labor %.1fh @ $%.2f/hr: $%.2f  Materials: $%.2f  Tax: $%.2f\n",
			tier.LaborHours, tier.LaborRate, tier.LaborCost, tier.MaterialsCost, tier.MaterialsTax)
		fmt.Fprintf(out, "  Margin %.1f%% (%s)\n", tier.ActualMarginPercent, tier.ProfitAssessment)
		for _, feature := range tier.Features {
			fmt.Fprintf(out, "  - %s\n", feature)
		}
	}
	return nil
}

func tierHeading(t quote.Tier) string {
	switch t {
	case quote.TierBasic:
		return "BASIC"
	case quote.TierPremium:
		return "PREMIUM"
	default:
		return "STANDARD"
	}
}
