// Package domain provides core domain models for the N-Rank fund analytics engine.
package domain

import "time"

// FundRecord is the immutable input to the scoring engine. Optional metrics
// are pointers: a nil field means "this factor does not apply" and the
// corresponding banding rule is skipped entirely (skipping is not the same
// as contributing zero points).
type FundRecord struct {
	Name     string  `json:"name"`
	Category *string `json:"category,omitempty"`

	// Quality inputs
	QualityRating *int     `json:"quality_rating,omitempty"` // 1-5
	AUM           *float64 `json:"aum,omitempty"`            // fund size in Cr

	// Return inputs (percent)
	Return1Y  *float64 `json:"return_1y,omitempty"`
	Return3Y  *float64 `json:"return_3y,omitempty"`
	Return5Y  *float64 `json:"return_5y,omitempty"`
	Return10Y *float64 `json:"return_10y,omitempty"` // presence only (track record)

	// Risk inputs
	SharpeRatio *float64 `json:"sharpe_ratio,omitempty"`
	Alpha       *float64 `json:"alpha,omitempty"`      // percent vs benchmark
	Volatility  *float64 `json:"volatility,omitempty"` // std dev, percent

	// Cost input
	ExpenseRatio *float64 `json:"expense_ratio,omitempty"` // percent

	// Externally-assigned comparison rank (1 = top pick). Only ranks 1-3
	// participate in allocation advice.
	RecommendationRank *int `json:"recommendation_rank,omitempty"`
}

// HoldingRecord is a FundRecord plus investment history, enough to project
// a present value and compute a historical CAGR.
type HoldingRecord struct {
	FundRecord

	InvestmentDate          *time.Time `json:"investment_date,omitempty"`
	InitialInvestedAmount   *float64   `json:"initial_invested_amount,omitempty"`
	ReferenceSnapshotAmount *float64   `json:"reference_snapshot_amount,omitempty"` // value at the reference date
	CurrentAmountOverride   *float64   `json:"current_amount_override,omitempty"`
}

// Tier is the qualitative bucket derived from the composite score.
type Tier string

const (
	TierUnknown   Tier = "UNKNOWN"
	TierPoor      Tier = "POOR"
	TierCaution   Tier = "CAUTION"
	TierGood      Tier = "GOOD"
	TierExcellent Tier = "EXCELLENT"
)

// DimensionDetail explains one factor's contribution within a dimension.
type DimensionDetail struct {
	Name   string `json:"name"`
	Value  string `json:"value"`
	Points int    `json:"points"`
	Max    int    `json:"max"`
	Note   string `json:"note,omitempty"`
}

// DimensionScore is one of the five sub-scores. Score may be negative;
// only the aggregate total is floored at zero.
type DimensionScore struct {
	Score   int               `json:"score"`
	Max     int               `json:"max"`
	Details []DimensionDetail `json:"details"`
}

// Dimensions groups the five sub-scores.
type Dimensions struct {
	Quality      DimensionScore `json:"quality"`
	Returns      DimensionScore `json:"returns"`
	RiskAdjusted DimensionScore `json:"risk_adjusted"`
	Cost         DimensionScore `json:"cost"`
	StrategicFit DimensionScore `json:"strategic_fit"`
}

// ScoreResult is the full output of a scoring run. HasData disambiguates
// the zero-score sentinel: Total == 0 can mean either "no scoreable input"
// or "genuinely worst possible"; the tier contract maps both to Unknown.
type ScoreResult struct {
	Total      int        `json:"total"`
	HasData    bool       `json:"has_data"`
	Dimensions Dimensions `json:"dimensions"`
	Tier       Tier       `json:"tier"`
	Warnings   []string   `json:"warnings"`
}
