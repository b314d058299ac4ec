package scoring

import (
	"fmt"

	"github.com/kamalneel/agrawal-estate-sub000/internal/domain"
)

// scoreCost rewards low expense ratios. Funds above 2% are penalized.
func (s *Scorer) scoreCost(f domain.FundRecord) domain.DimensionScore {
	dim := domain.DimensionScore{Max: MaxCost}

	if f.ExpenseRatio != nil {
		points := s.bands.ExpenseRatio.Points(*f.ExpenseRatio)
		dim.Score += points
		dim.Details = append(dim.Details, domain.DimensionDetail{
			Name:   "Expense ratio",
			Value:  fmt.Sprintf("%.2f%%", *f.ExpenseRatio),
			Points: points,
			Max:    5,
		})
	}

	return dim
}
