// Package ratestore persists the rate, tax, and region lookup tables
// so regional pricing updates do not require a redeploy.
package ratestore

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/quotemill/quotemill/internal/quote"
)

// Store reads and writes the pricing tables.
type Store struct {
	db *sql.DB
}

// New returns a store over the given database.
func New(database *sql.DB) *Store {
	return &Store{db: database}
}

// BaseRate is one row of the category x region rate table.
type BaseRate struct {
	Category   string  `json:"category"`
	Region     string  `json:"region"`
	HourlyRate float64 `json:"hourlyRate"`
}

// Load builds engine tables from the stored rows. State names and the
// fallback defaults are code-level configuration, so loading starts
// from the built-in dataset and overlays every stored row; an empty
// database yields the defaults unchanged.
func (s *Store) Load() (quote.Tables, error) {
	tables := quote.DefaultTables()

	rates, err := s.ListBaseRates()
	if err != nil {
		return quote.Tables{}, err
	}
	for _, r := range rates {
		regions, ok := tables.Rates[r.Category]
		if !ok {
			regions = make(map[string]float64)
			tables.Rates[r.Category] = regions
		}
		regions[r.Region] = r.HourlyRate
	}

	if err := s.loadTax(tables.Tax); err != nil {
		return quote.Tables{}, err
	}
	if err := s.loadRegions(tables.Regions); err != nil {
		return quote.Tables{}, err
	}

	return tables, nil
}

// ListBaseRates returns every stored base rate, ordered for display.
func (s *Store) ListBaseRates() ([]BaseRate, error) {
	rows, err := s.db.Query(`
		SELECT category, region, hourly_rate
		FROM base_rates
		ORDER BY category, region
	`)
	if err != nil {
		return nil, fmt.Errorf("query base rates: %w", err)
	}
	defer rows.Close()

	rates := make([]BaseRate, 0)
	for rows.Next() {
		var r BaseRate
		if err := rows.Scan(&r.Category, &r.Region, &r.HourlyRate); err != nil {
			return nil, fmt.Errorf("scan base rate: %w", err)
		}
		rates = append(rates, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate base rates: %w", err)
	}
	return rates, nil
}

func (s *Store) loadTax(into map[string]float64) error {
	rows, err := s.db.Query(`SELECT state, rate FROM tax_rates`)
	if err != nil {
		return fmt.Errorf("query tax rates: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var state string
		var rate float64
		if err := rows.Scan(&state, &rate); err != nil {
			return fmt.Errorf("scan tax rate: %w", err)
		}
		into[state] = rate
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterate tax rates: %w", err)
	}
	return nil
}

func (s *Store) loadRegions(into map[string]string) error {
	rows, err := s.db.Query(`SELECT state, region FROM state_regions`)
	if err != nil {
		return fmt.Errorf("query state regions: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var state, region string
		if err := rows.Scan(&state, &region); err != nil {
			return fmt.Errorf("scan state region: %w", err)
		}
		into[state] = region
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterate state regions: %w", err)
	}
	return nil
}

// SetBaseRate upserts one category x region hourly rate.
func (s *Store) SetBaseRate(r BaseRate) error {
	if r.Category == "" || r.Region == "" {
		return fmt.Errorf("category and region are required")
	}
	if r.HourlyRate <= 0 {
		return fmt.Errorf("hourly rate must be greater than 0")
	}

	_, err := s.db.Exec(`
		INSERT INTO base_rates (category, region, hourly_rate)
		VALUES (?, ?, ?)
		ON CONFLICT(category, region) DO UPDATE SET
			hourly_rate = excluded.hourly_rate,
			updated_at = CURRENT_TIMESTAMP
	`, r.Category, r.Region, r.HourlyRate)
	if err != nil {
		return fmt.Errorf("upsert base rate: %w", err)
	}
	return nil
}

// SetTaxRate upserts one state tax rate. The state key is normalized
// to the uppercase two-letter form the engine resolves against.
func (s *Store) SetTaxRate(state string, rate float64) error {
	state = strings.ToUpper(strings.TrimSpace(state))
	if state == "" {
		return fmt.Errorf("state is required")
	}
	if rate < 0 || rate >= 1 {
		return fmt.Errorf("tax rate must be a fraction in [0, 1)")
	}

	_, err := s.db.Exec(`
		INSERT INTO tax_rates (state, rate)
		VALUES (?, ?)
		ON CONFLICT(state) DO UPDATE SET
			rate = excluded.rate,
			updated_at = CURRENT_TIMESTAMP
	`, state, rate)
	if err != nil {
		return fmt.Errorf("upsert tax rate: %w", err)
	}
	return nil
}
