package main

import (
	"net/http"
	"sync"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/quotemill/quotemill/internal/config"
	"github.com/quotemill/quotemill/internal/db"
	"github.com/quotemill/quotemill/internal/logging"
	"github.com/quotemill/quotemill/internal/migrations"
	"github.com/quotemill/quotemill/internal/quote"
	"github.com/quotemill/quotemill/internal/quotestore"
	"github.com/quotemill/quotemill/internal/ratestore"
	"github.com/quotemill/quotemill/internal/seed"
)

type server struct {
	log          *zap.Logger
	quotes       *quotestore.Store
	rates        *ratestore.Store
	defaultState string

	// The engine is immutable once built; rate edits swap in a fresh
	// one rather than mutating tables under concurrent pricing.
	mu     sync.RWMutex
	engine *quote.Engine
}

func main() {
	cfg := config.Load()

	logger := logging.New(logging.Config{Level: cfg.LogLevel, Format: cfg.LogFormat})
	defer logger.Sync()

	database, err := db.Open(cfg.DBPath)
	if err != nil {
		logger.Fatal("open database", zap.String("path", cfg.DBPath), zap.Error(err))
	}
	defer database.Close()

	if cfg.IsDev() {
		if err := migrations.Up(database, "migrations"); err != nil {
			logger.Fatal("run database migrations", zap.Error(err))
		}
	}

	stats, err := seed.Run(database)
	if err != nil {
		logger.Fatal("seed pricing tables", zap.Error(err))
	}
	logger.Info("seeded pricing tables", zap.Int("inserts", stats.Inserts))

	rates := ratestore.New(database)
	tables, err := rates.Load()
	if err != nil {
		logger.Fatal("load pricing tables", zap.Error(err))
	}
	tables.DefaultState = cfg.DefaultState

	srv := &server{
		log:          logger,
		quotes:       quotestore.New(database),
		rates:        rates,
		defaultState: cfg.DefaultState,
		engine:       quote.NewEngine(tables),
	}

	addr := ":" + cfg.Port
	logger.Info("listening", zap.String("addr", addr))
	if err := http.ListenAndServe(addr, srv.router()); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}

func (s *server) router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Post("/api/quotes", s.handleQuoteCreate)
	r.Get("/api/quotes", s.handleQuoteList)
	r.Get("/api/quotes/{id}", s.handleQuoteGet)
	r.Post("/api/quotes/{id}/tiers/{tier}", s.handleTierOverride)
	r.Get("/api/quotes/{id}/invoice", s.handleInvoice)

	r.Get("/api/rates", s.handleRatesList)
	r.Get("/api/tables", s.handleTablesGet)
	r.Put("/api/rates/base", s.handleBaseRateSet)
	r.Put("/api/rates/tax/{state}", s.handleTaxRateSet)

	return r
}

// currentEngine returns the engine snapshot to price against.
func (s *server) currentEngine() *quote.Engine {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.engine
}

// reloadEngine rebuilds the pricing engine from stored tables after a
// rate edit. Requests already in flight finish on the old snapshot.
func (s *server) reloadEngine() error {
	tables, err := s.rates.Load()
	if err != nil {
		return err
	}
	if s.defaultState != "" {
		tables.DefaultState = s.defaultState
	}

	s.mu.Lock()
	s.engine = quote.NewEngine(tables)
	s.mu.Unlock()
	return nil
}
