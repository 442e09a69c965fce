package seed

import (
	"path/filepath"
	"testing"

	"github.com/quotemill/quotemill/internal/db"
	"github.com/quotemill/quotemill/internal/migrations"
	"github.com/quotemill/quotemill/internal/quote"
)

func TestRunIsIdempotent(t *testing.T) {
	t.Parallel()

	dbPath := filepath.Join(t.TempDir(), "seed-test.db")
	database, err := db.Open(dbPath)
	if err != nil {
		t.Fatalf("open sqlite database: %v", err)
	}
	defer database.Close()

	if err := migrations.Up(database, "../../migrations"); err != nil {
		t.Fatalf("run migrations: %v", err)
	}

	tables := quote.DefaultTables()
	wantRates := 0
	for _, regions := range tables.Rates {
		wantRates += len(regions)
	}
	want := wantRates + len(tables.Tax) + len(tables.Regions)

	for i := 0; i < 3; i++ {
		stats, err := Run(database)
		if err != nil {
			t.Fatalf("run seed (iteration=%d): %v", i, err)
		}
		if i == 0 {
			if stats.Inserts != want {
				t.Fatalf("expected %d inserts in first run, got %d", want, stats.Inserts)
			}
			continue
		}
		if stats.Inserts != 0 {
			t.Fatalf("expected 0 inserts in run %d, got %d", i, stats.Inserts)
		}
	}
}

func TestRunPreservesExistingRows(t *testing.T) {
	t.Parallel()

	dbPath := filepath.Join(t.TempDir(), "seed-preserve-test.db")
	database, err := db.Open(dbPath)
	if err != nil {
		t.Fatalf("open sqlite database: %v", err)
	}
	defer database.Close()

	if err := migrations.Up(database, "../../migrations"); err != nil {
		t.Fatalf("run migrations: %v", err)
	}

	_, err = database.Exec(`INSERT INTO base_rates (category, region, hourly_rate) VALUES ('plumbing', 'northeast', 123.0)`)
	if err != nil {
		t.Fatalf("insert custom rate: %v", err)
	}

	if _, err := Run(database); err != nil {
		t.Fatalf("run seed: %v", err)
	}

	var rate float64
	err = database.QueryRow(`SELECT hourly_rate FROM base_rates WHERE category = 'plumbing' AND region = 'northeast'`).Scan(&rate)
	if err != nil {
		t.Fatalf("query rate: %v", err)
	}
	if rate != 123.0 {
		t.Fatalf("expected seed to preserve existing rate 123.0, got %v", rate)
	}
}
