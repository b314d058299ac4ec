package scoring

import (
	"fmt"

	"github.com/kamalneel/agrawal-estate-sub000/internal/domain"
)

// scoreRiskAdjusted awards points for Sharpe ratio and alpha, with a
// volatility penalty for unusually dispersed funds.
func (s *Scorer) scoreRiskAdjusted(f domain.FundRecord) domain.DimensionScore {
	dim := domain.DimensionScore{Max: MaxRiskAdjusted}

	if f.SharpeRatio != nil {
		points := s.bands.Sharpe.Points(*f.SharpeRatio)
		dim.Score += points
		dim.Details = append(dim.Details, domain.DimensionDetail{
			Name:   "Sharpe ratio",
			Value:  fmt.Sprintf("%.2f", *f.SharpeRatio),
			Points: points,
			Max:    10,
		})
	}

	if f.Alpha != nil {
		points := s.bands.Alpha.Points(*f.Alpha)
		dim.Score += points
		dim.Details = append(dim.Details, domain.DimensionDetail{
			Name:   "Alpha",
			Value:  fmt.Sprintf("%.1f%%", *f.Alpha),
			Points: points,
			Max:    7,
		})
	}

	if f.Volatility != nil {
		if points := s.bands.Volatility.Points(*f.Volatility); points != 0 {
			dim.Score += points
			dim.Details = append(dim.Details, domain.DimensionDetail{
				Name:   "Volatility",
				Value:  fmt.Sprintf("%.1f%%", *f.Volatility),
				Points: points,
				Max:    0,
				Note:   "high standard deviation of returns",
			})
		}
	}

	return dim
}
