package scoring

import (
	"fmt"

	"github.com/kamalneel/agrawal-estate-sub000/internal/domain"
)

// Maximum points per dimension. The dimension maxima sum to 100, so the
// aggregate clamp only bites when penalties drag the total below zero.
const (
	MaxQuality      = 20
	MaxReturns      = 50
	MaxRiskAdjusted = 15
	MaxCost         = 5
	MaxStrategicFit = 10
)

// scoreQuality awards points for the star rating, fund size, and fund age
// (inferred from which long-horizon returns exist).
func (s *Scorer) scoreQuality(f domain.FundRecord) domain.DimensionScore {
	dim := domain.DimensionScore{Max: MaxQuality}

	if f.QualityRating != nil {
		points := s.bands.RatingPoints[*f.QualityRating]
		dim.Score += points
		dim.Details = append(dim.Details, domain.DimensionDetail{
			Name:   "Quality rating",
			Value:  fmt.Sprintf("%d/5", *f.QualityRating),
			Points: points,
			Max:    10,
		})
	}

	if f.AUM != nil {
		points := s.bands.AUM.Points(*f.AUM)
		dim.Score += points
		detail := domain.DimensionDetail{
			Name:   "Fund size (AUM)",
			Value:  fmt.Sprintf("%.0f Cr", *f.AUM),
			Points: points,
			Max:    7,
		}
		if *f.AUM >= 50000 {
			detail.Note = "very large fund, scores below the mid-size sweet spot"
		}
		dim.Details = append(dim.Details, detail)
	}

	if points, value := trackRecordAge(f); value != "" {
		dim.Score += points
		dim.Details = append(dim.Details, domain.DimensionDetail{
			Name:   "Fund age",
			Value:  value,
			Points: points,
			Max:    3,
		})
	}

	return dim
}

// trackRecordAge infers fund age from which return horizons are reported.
func trackRecordAge(f domain.FundRecord) (points int, value string) {
	switch {
	case f.Return10Y != nil:
		return 3, "10+ years"
	case f.Return5Y != nil:
		return 2, "5+ years"
	case f.Return3Y != nil:
		return 1, "3+ years"
	default:
		return 0, ""
	}
}
