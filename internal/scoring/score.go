package scoring

import (
	"github.com/kamalneel/agrawal-estate-sub000/internal/domain"
	"github.com/kamalneel/agrawal-estate-sub000/internal/warnings"
)

// Scorer computes the composite N-Rank score. It is stateless apart from
// its banding policy and safe for concurrent use.
type Scorer struct {
	bands Bands
}

// NewScorer creates a scorer with the default banding policy.
func NewScorer() *Scorer {
	return &Scorer{bands: DefaultBands()}
}

// NewScorerWithBands creates a scorer with a custom banding policy
// (typically loaded from a YAML override file).
func NewScorerWithBands(bands Bands) *Scorer {
	return &Scorer{bands: bands}
}

// Score computes the full breakdown for a fund: five dimension scores, the
// clamped total, the tier, and the risk warnings. Individual dimensions may
// go negative; the total is clamped to [0,100] exactly once, at the end.
func (s *Scorer) Score(f domain.FundRecord) domain.ScoreResult {
	dims := domain.Dimensions{
		Quality:      s.scoreQuality(f),
		Returns:      s.scoreReturns(f),
		RiskAdjusted: s.scoreRiskAdjusted(f),
		Cost:         s.scoreCost(f),
		StrategicFit: s.scoreStrategicFit(f),
	}

	raw := dims.Quality.Score +
		dims.Returns.Score +
		dims.RiskAdjusted.Score +
		dims.Cost.Score +
		dims.StrategicFit.Score

	total := raw
	if total < 0 {
		total = 0
	}
	if total > 100 {
		total = 100
	}

	return domain.ScoreResult{
		Total:      total,
		HasData:    hasScoreableData(f),
		Dimensions: dims,
		Tier:       TierFor(total),
		Warnings:   warnings.ForRecord(f),
	}
}

// hasScoreableData reports whether any metric that feeds the banding tables
// is present. A record with only a name scores zero and tiers as Unknown;
// this flag lets callers tell that apart from a genuinely worst-possible fund.
func hasScoreableData(f domain.FundRecord) bool {
	return f.QualityRating != nil ||
		f.AUM != nil ||
		f.Return1Y != nil ||
		f.Return3Y != nil ||
		f.Return5Y != nil ||
		f.Return10Y != nil ||
		f.SharpeRatio != nil ||
		f.Alpha != nil ||
		f.Volatility != nil ||
		f.ExpenseRatio != nil
}
