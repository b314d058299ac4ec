// Package handlers provides HTTP handlers for the fund analytics API.
package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/kamalneel/agrawal-estate-sub000/internal/allocation"
	"github.com/kamalneel/agrawal-estate-sub000/internal/domain"
	"github.com/kamalneel/agrawal-estate-sub000/internal/projection"
	"github.com/kamalneel/agrawal-estate-sub000/internal/scan"
	"github.com/kamalneel/agrawal-estate-sub000/internal/scoring"
)

// Handlers provides HTTP handlers for the analytics engine. The engine is
// pure, so handlers only decode, delegate, and encode.
type Handlers struct {
	scorer    *scoring.Scorer
	pool      *scan.WorkerPool
	advisor   *allocation.Advisor
	projector *projection.Projector
	log       zerolog.Logger
	now       func() time.Time
}

// Config wires the engine components into the handlers.
type Config struct {
	Scorer    *scoring.Scorer
	Pool      *scan.WorkerPool
	Advisor   *allocation.Advisor
	Projector *projection.Projector
	Log       zerolog.Logger
}

// New creates the analytics handlers.
func New(cfg Config) *Handlers {
	return &Handlers{
		scorer:    cfg.Scorer,
		pool:      cfg.Pool,
		advisor:   cfg.Advisor,
		projector: cfg.Projector,
		log:       cfg.Log.With().Str("module", "analytics_handlers").Logger(),
		now:       time.Now,
	}
}

// ScoreResponse wraps a single fund's score.
type ScoreResponse struct {
	Score *domain.ScoreResult `json:"score,omitempty"`
	Error *string             `json:"error,omitempty"`
}

// HandleScoreFund handles POST /api/funds/score
func (h *Handlers) HandleScoreFund(w http.ResponseWriter, r *http.Request) {
	var fund domain.FundRecord
	if err := json.NewDecoder(r.Body).Decode(&fund); err != nil {
		h.log.Error().Err(err).Msg("Failed to decode score request")
		h.writeError(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if fund.Name == "" {
		h.writeError(w, "Fund name is required", http.StatusBadRequest)
		return
	}

	result := h.scorer.Score(fund)
	h.writeJSON(w, ScoreResponse{Score: &result})
}

// CompareRequest is a set of candidate funds to analyze together.
type CompareRequest struct {
	Funds []domain.FundRecord `json:"funds"`
}

// HandleCompareFunds handles POST /api/funds/compare
func (h *Handlers) HandleCompareFunds(w http.ResponseWriter, r *http.Request) {
	var req CompareRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.log.Error().Err(err).Msg("Failed to decode compare request")
		h.writeError(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if len(req.Funds) == 0 {
		h.writeError(w, "At least one fund is required", http.StatusBadRequest)
		return
	}

	comparison := h.pool.Compare(req.Funds, h.advisor)
	h.writeJSON(w, comparison)
}

// ProjectionRequest carries a holding's investment history. The investment
// date uses YYYY-MM-DD.
type ProjectionRequest struct {
	domain.FundRecord

	InvestmentDate          string   `json:"investment_date,omitempty"`
	InitialInvestedAmount   *float64 `json:"initial_invested_amount,omitempty"`
	ReferenceSnapshotAmount *float64 `json:"reference_snapshot_amount,omitempty"`
	CurrentAmountOverride   *float64 `json:"current_amount_override,omitempty"`
}

// ProjectionResponse reports the estimated value and historical CAGR.
// Either field may be null when its inputs make it undefined.
type ProjectionResponse struct {
	EstimatedCurrentValue *float64 `json:"estimated_current_value,omitempty"`
	HistoricalCAGR        *float64 `json:"historical_cagr,omitempty"`
	ReferenceDate         string   `json:"reference_date"`
	Error                 *string  `json:"error,omitempty"`
}

// HandleProjectHolding handles POST /api/holdings/projection
func (h *Handlers) HandleProjectHolding(w http.ResponseWriter, r *http.Request) {
	var req ProjectionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.log.Error().Err(err).Msg("Failed to decode projection request")
		h.writeError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	holding := domain.HoldingRecord{
		FundRecord:              req.FundRecord,
		InitialInvestedAmount:   req.InitialInvestedAmount,
		ReferenceSnapshotAmount: req.ReferenceSnapshotAmount,
		CurrentAmountOverride:   req.CurrentAmountOverride,
	}
	if req.InvestmentDate != "" {
		date, err := time.Parse("2006-01-02", req.InvestmentDate)
		if err != nil {
			h.writeError(w, fmt.Sprintf("Invalid investment_date %q, expected YYYY-MM-DD", req.InvestmentDate), http.StatusBadRequest)
			return
		}
		holding.InvestmentDate = &date
	}

	resp := ProjectionResponse{
		EstimatedCurrentValue: h.projector.EstimateCurrentValue(holding, h.now()),
		HistoricalCAGR:        h.projector.HistoricalCAGR(holding),
		ReferenceDate:         h.projector.ReferenceDate().Format("2006-01-02"),
	}
	h.writeJSON(w, resp)
}

func (h *Handlers) writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.log.Error().Err(err).Msg("Failed to encode response")
	}
}

func (h *Handlers) writeError(w http.ResponseWriter, message string, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": message})
}
