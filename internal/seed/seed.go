// Package seed loads the built-in pricing dataset into SQLite on
// startup so the engine has rate, tax, and region rows to price
// against. Seeding is idempotent: existing rows are never overwritten,
// so admin edits survive restarts.
package seed

import (
	"database/sql"
	"fmt"

	"github.com/quotemill/quotemill/internal/quote"
)

// Stats contains seed operation counters.
type Stats struct {
	Inserts int
}

// Run executes the startup seed in an idempotent way.
func Run(database *sql.DB) (Stats, error) {
	tx, err := database.Begin()
	if err != nil {
		return Stats{}, fmt.Errorf("begin seed transaction: %w", err)
	}

	stats := Stats{}
	tables := quote.DefaultTables()

	if err := seedBaseRates(tx, tables, &stats); err != nil {
		_ = tx.Rollback()
		return Stats{}, err
	}
	if err := seedTaxRates(tx, tables, &stats); err != nil {
		_ = tx.Rollback()
		return Stats{}, err
	}
	if err := seedStateRegions(tx, tables, &stats); err != nil {
		_ = tx.Rollback()
		return Stats{}, err
	}

	if err := tx.Commit(); err != nil {
		return Stats{}, fmt.Errorf("commit seed transaction: %w", err)
	}

	return stats, nil
}

func seedBaseRates(tx *sql.Tx, tables quote.Tables, stats *Stats) error {
	for category, regions := range tables.Rates {
		for region, rate := range regions {
			result, err := tx.Exec(`
				INSERT INTO base_rates (category, region, hourly_rate)
				VALUES (?, ?, ?)
				ON CONFLICT(category, region) DO NOTHING
			`, category, region, rate)
			if err != nil {
				return fmt.Errorf("insert base rate %s/%s: %w", category, region, err)
			}
			countInsert(result, stats)
		}
	}
	return nil
}

func seedTaxRates(tx *sql.Tx, tables quote.Tables, stats *Stats) error {
	for state, rate := range tables.Tax {
		result, err := tx.Exec(`
			INSERT INTO tax_rates (state, rate)
			VALUES (?, ?)
			ON CONFLICT(state) DO NOTHING
		`, state, rate)
		if err != nil {
			return fmt.Errorf("insert tax rate %s: %w", state, err)
		}
		countInsert(result, stats)
	}
	return nil
}

func seedStateRegions(tx *sql.Tx, tables quote.Tables, stats *Stats) error {
	for state, region := range tables.Regions {
		result, err := tx.Exec(`
			INSERT INTO state_regions (state, region)
			VALUES (?, ?)
			ON CONFLICT(state) DO NOTHING
		`, state, region)
		if err != nil {
			return fmt.Errorf("insert state region %s: %w", state, err)
		}
		countInsert(result, stats)
	}
	return nil
}

func countInsert(result sql.Result, stats *Stats) {
	if affected, err := result.RowsAffected(); err == nil && affected > 0 {
		stats.Inserts++
	}
}
