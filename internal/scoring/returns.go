package scoring

import (
	"fmt"

	"github.com/kamalneel/agrawal-estate-sub000/internal/domain"
)

// scoreReturns is the dominant dimension: banded points for 1y/3y/5y
// returns (3y weighted heaviest) minus a momentum penalty when the recent
// 1y return trails the 3y average.
func (s *Scorer) scoreReturns(f domain.FundRecord) domain.DimensionScore {
	dim := domain.DimensionScore{Max: MaxReturns}

	if f.Return1Y != nil {
		points := s.bands.Return1Y.Points(*f.Return1Y)
		dim.Score += points
		dim.Details = append(dim.Details, domain.DimensionDetail{
			Name:   "1Y return",
			Value:  fmt.Sprintf("%.1f%%", *f.Return1Y),
			Points: points,
			Max:    15,
		})
	}

	if f.Return3Y != nil {
		points := s.bands.Return3Y.Points(*f.Return3Y)
		dim.Score += points
		dim.Details = append(dim.Details, domain.DimensionDetail{
			Name:   "3Y return (annualized)",
			Value:  fmt.Sprintf("%.1f%%", *f.Return3Y),
			Points: points,
			Max:    20,
		})
	}

	if f.Return5Y != nil {
		points := s.bands.Return5Y.Points(*f.Return5Y)
		dim.Score += points
		dim.Details = append(dim.Details, domain.DimensionDetail{
			Name:   "5Y return (annualized)",
			Value:  fmt.Sprintf("%.1f%%", *f.Return5Y),
			Points: points,
			Max:    15,
		})
	}

	if f.Return1Y != nil && f.Return3Y != nil {
		gap := *f.Return3Y - *f.Return1Y
		if points := s.bands.MomentumGap.Points(gap); points != 0 {
			dim.Score += points
			dim.Details = append(dim.Details, domain.DimensionDetail{
				Name:   "Momentum",
				Value:  fmt.Sprintf("1Y trails 3Y by %.1f%%", gap),
				Points: points,
				Max:    0,
				Note:   "recent performance deteriorating versus 3Y average",
			})
		}
	}

	return dim
}
