package main

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	json "github.com/goccy/go-json"
	"go.uber.org/zap"

	"github.com/quotemill/quotemill/internal/quote"
	"github.com/quotemill/quotemill/internal/quotestore"
	"github.com/quotemill/quotemill/internal/ratestore"
)

type errorResponse struct {
	Error string `json:"error"`
	Field string `json:"field,omitempty"`
}

func (s *server) respondJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		s.log.Error("encode response", zap.Error(err))
	}
}

func (s *server) respondError(w http.ResponseWriter, status int, message string) {
	s.respondJSON(w, status, errorResponse{Error: message})
}

// requestError maps a pricing error to a response; validation failures
// carry the offending field so the client can highlight it.
func (s *server) requestError(w http.ResponseWriter, err error) {
	var verr *quote.ValidationError
	if errors.As(err, &verr) {
		s.respondJSON(w, http.StatusBadRequest, errorResponse{Error: verr.Reason, Field: verr.Field})
		return
	}
	s.log.Error("price quote", zap.Error(err))
	s.respondError(w, http.StatusInternalServerError, "internal error")
}

func quoteID(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
}

type quoteCreateResponse struct {
	ID    int64             `json:"id"`
	Quote *quote.MultiQuote `json:"quote"`
}

func (s *server) handleQuoteCreate(w http.ResponseWriter, r *http.Request) {
	var req quote.ServiceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	q, err := s.currentEngine().Price(req)
	if err != nil {
		s.requestError(w, err)
		return
	}

	id, err := s.quotes.Save(q)
	if err != nil {
		s.log.Error("save quote", zap.Error(err))
		s.respondError(w, http.StatusInternalServerError, "internal error")
		return
	}

	s.log.Info("quote created",
		zap.Int64("id", id),
		zap.String("category", q.Category),
		zap.String("state", q.Rates.State),
		zap.Float64("standardTotal", q.Standard.Total))
	s.respondJSON(w, http.StatusCreated, quoteCreateResponse{ID: id, Quote: q})
}

func (s *server) handleQuoteList(w http.ResponseWriter, r *http.Request) {
	summaries, err := s.quotes.List(r.URL.Query().Get("q"))
	if err != nil {
		s.log.Error("list quotes", zap.Error(err))
		s.respondError(w, http.StatusInternalServerError, "internal error")
		return
	}
	s.respondJSON(w, http.StatusOK, summaries)
}

func (s *server) handleQuoteGet(w http.ResponseWriter, r *http.Request) {
	id, err := quoteID(r)
	if err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid quote id")
		return
	}

	q, err := s.quotes.Get(id)
	if errors.Is(err, quotestore.ErrNotFound) {
		s.respondError(w, http.StatusNotFound, "quote not found")
		return
	}
	if err != nil {
		s.log.Error("get quote", zap.Int64("id", id), zap.Error(err))
		s.respondError(w, http.StatusInternalServerError, "internal error")
		return
	}
	s.respondJSON(w, http.StatusOK, q)
}

func (s *server) handleTierOverride(w http.ResponseWriter, r *http.Request) {
	id, err := quoteID(r)
	if err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid quote id")
		return
	}
	tierName := chi.URLParam(r, "tier")
	if !quote.ValidTier(tierName) {
		s.respondError(w, http.StatusBadRequest, "unknown tier")
		return
	}

	var override quote.Override
	if err := json.NewDecoder(r.Body).Decode(&override); err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	q, err := s.quotes.Get(id)
	if errors.Is(err, quotestore.ErrNotFound) {
		s.respondError(w, http.StatusNotFound, "quote not found")
		return
	}
	if err != nil {
		s.log.Error("get quote", zap.Int64("id", id), zap.Error(err))
		s.respondError(w, http.StatusInternalServerError, "internal error")
		return
	}

	tier, _ := q.TierByName(quote.Tier(tierName))
	edited, err := quote.ApplyOverride(tier, override)
	if errors.Is(err, quote.ErrNotEditable) {
		s.respondError(w, http.StatusConflict, "quote tier is not editable")
		return
	}
	if err != nil {
		s.respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	updated, err := s.quotes.ReplaceTier(id, edited)
	if err != nil {
		s.log.Error("replace tier", zap.Int64("id", id), zap.String("tier", tierName), zap.Error(err))
		s.respondError(w, http.StatusInternalServerError, "internal error")
		return
	}

	s.log.Info("tier overridden", zap.Int64("id", id), zap.String("tier", tierName))
	s.respondJSON(w, http.StatusOK, updated)
}

func (s *server) handleInvoice(w http.ResponseWriter, r *http.Request) {
	id, err := quoteID(r)
	if err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid quote id")
		return
	}
	tierName := r.URL.Query().Get("tier")
	if tierName == "" {
		tierName = string(quote.TierStandard)
	}
	if !quote.ValidTier(tierName) {
		s.respondError(w, http.StatusBadRequest, "unknown tier")
		return
	}

	q, err := s.quotes.Get(id)
	if errors.Is(err, quotestore.ErrNotFound) {
		s.respondError(w, http.StatusNotFound, "quote not found")
		return
	}
	if err != nil {
		s.log.Error("get quote", zap.Int64("id", id), zap.Error(err))
		s.respondError(w, http.StatusInternalServerError, "internal error")
		return
	}

	lines, err := quote.InvoiceLines(q, quote.Tier(tierName))
	if err != nil {
		s.respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	s.respondJSON(w, http.StatusOK, lines)
}

// handleTablesGet returns the tables the engine is currently pricing
// against: stored rows overlaid on the built-in defaults, which
// /api/rates alone does not show.
func (s *server) handleTablesGet(w http.ResponseWriter, r *http.Request) {
	s.respondJSON(w, http.StatusOK, s.currentEngine().Tables())
}

func (s *server) handleRatesList(w http.ResponseWriter, r *http.Request) {
	rates, err := s.rates.ListBaseRates()
	if err != nil {
		s.log.Error("list base rates", zap.Error(err))
		s.respondError(w, http.StatusInternalServerError, "internal error")
		return
	}
	s.respondJSON(w, http.StatusOK, rates)
}

func (s *server) handleBaseRateSet(w http.ResponseWriter, r *http.Request) {
	var rate ratestore.BaseRate
	if err := json.NewDecoder(r.Body).Decode(&rate); err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := s.rates.SetBaseRate(rate); err != nil {
		s.respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := s.reloadEngine(); err != nil {
		s.log.Error("reload engine", zap.Error(err))
		s.respondError(w, http.StatusInternalServerError, "internal error")
		return
	}

	s.log.Info("base rate updated",
		zap.String("category", rate.Category),
		zap.String("region", rate.Region),
		zap.Float64("hourlyRate", rate.HourlyRate))
	s.respondJSON(w, http.StatusOK, rate)
}

type taxRateUpdate struct {
	Rate float64 `json:"rate"`
}

func (s *server) handleTaxRateSet(w http.ResponseWriter, r *http.Request) {
	state := chi.URLParam(r, "state")

	var update taxRateUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := s.rates.SetTaxRate(state, update.Rate); err != nil {
		s.respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := s.reloadEngine(); err != nil {
		s.log.Error("reload engine", zap.Error(err))
		s.respondError(w, http.StatusInternalServerError, "internal error")
		return
	}

	s.log.Info("tax rate updated", zap.String("state", state), zap.Float64("rate", update.Rate))
	s.respondJSON(w, http.StatusOK, map[string]any{"state": state, "rate": update.Rate})
}
