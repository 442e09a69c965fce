// Package quotestore persists generated quotes. A quote row stores the
// full MultiQuote as JSON next to a few searchable columns; tier edits
// replace the whole record rather than patching fields, so a partially
// applied override can never be observed.
package quotestore

import (
	"database/sql"
	"errors"
	"fmt"

	json "github.com/goccy/go-json"

	"github.com/quotemill/quotemill/internal/quote"
)

// ErrNotFound is returned when a quote id does not exist.
var ErrNotFound = errors.New("quote not found")

// Store reads and writes quote history.
type Store struct {
	db *sql.DB
}

// New returns a store over the given database.
func New(database *sql.DB) *Store {
	return &Store{db: database}
}

// Summary is one quote-history list entry.
type Summary struct {
	ID            int64   `json:"id"`
	CreatedAt     string  `json:"createdAt"`
	CategoryName  string  `json:"categoryName"`
	Location      string  `json:"location"`
	Emergency     bool    `json:"emergency"`
	StandardTotal float64 `json:"standardTotal"`
}

// Save stores a complete quote and returns its id.
func (s *Store) Save(q *quote.MultiQuote) (int64, error) {
	payload, err := json.Marshal(q)
	if err != nil {
		return 0, fmt.Errorf("marshal quote: %w", err)
	}

	result, err := s.db.Exec(`
		INSERT INTO quotes (category, subcategory, location, state, emergency, quote_json)
		VALUES (?, ?, ?, ?, ?, ?)
	`, q.Category, q.Subcategory, q.Location, q.Rates.State, q.Emergency, string(payload))
	if err != nil {
		return 0, fmt.Errorf("insert quote: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("read quote id: %w", err)
	}
	return id, nil
}

// Get loads a quote by id.
func (s *Store) Get(id int64) (*quote.MultiQuote, error) {
	var payload string
	err := s.db.QueryRow(`SELECT quote_json FROM quotes WHERE id = ?`, id).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("query quote: %w", err)
	}

	var q quote.MultiQuote
	if err := json.Unmarshal([]byte(payload), &q); err != nil {
		return nil, fmt.Errorf("unmarshal quote: %w", err)
	}
	return &q, nil
}

// List returns quote summaries newest first, optionally filtered by a
// free-text search over category, subcategory, and location.
func (s *Store) List(query string) ([]Summary, error) {
	search := "%" + query + "%"
	rows, err := s.db.Query(`
		SELECT id, created_at, location, emergency, quote_json
		FROM quotes
		WHERE (? = '' OR category LIKE ? OR subcategory LIKE ? OR location LIKE ?)
		ORDER BY datetime(created_at) DESC, id DESC
	`, query, search, search, search)
	if err != nil {
		return nil, fmt.Errorf("query quotes: %w", err)
	}
	defer rows.Close()

	summaries := make([]Summary, 0)
	for rows.Next() {
		var item Summary
		var payload string
		if err := rows.Scan(&item.ID, &item.CreatedAt, &item.Location, &item.Emergency, &payload); err != nil {
			return nil, fmt.Errorf("scan quote: %w", err)
		}

		var q quote.MultiQuote
		if err := json.Unmarshal([]byte(payload), &q); err != nil {
			return nil, fmt.Errorf("unmarshal quote %d: %w", item.ID, err)
		}
		item.CategoryName = q.CategoryName
		item.StandardTotal = q.Standard.Total
		summaries = append(summaries, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate quotes: %w", err)
	}
	return summaries, nil
}

// ReplaceTier swaps one tier of a stored quote and rewrites the full
// record in a single transaction.
func (s *Store) ReplaceTier(id int64, t quote.QuoteTier) (*quote.MultiQuote, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return nil, fmt.Errorf("begin tier replace: %w", err)
	}
	defer tx.Rollback()

	var payload string
	err = tx.QueryRow(`SELECT quote_json FROM quotes WHERE id = ?`, id).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("query quote: %w", err)
	}

	var q quote.MultiQuote
	if err := json.Unmarshal([]byte(payload), &q); err != nil {
		return nil, fmt.Errorf("unmarshal quote: %w", err)
	}
	if !q.SetTier(t) {
		return nil, fmt.Errorf("unknown tier %q", t.Tier)
	}

	updated, err := json.Marshal(&q)
	if err != nil {
		return nil, fmt.Errorf("marshal quote: %w", err)
	}
	if _, err := tx.Exec(`UPDATE quotes SET quote_json = ? WHERE id = ?`, string(updated), id); err != nil {
		return nil, fmt.Errorf("update quote: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit tier replace: %w", err)
	}
	return &q, nil
}
