package scoring

import (
	"fmt"

	"github.com/kamalneel/agrawal-estate-sub000/internal/domain"
)

// Sector bonuses, mutually exclusive and checked in this priority order.
// Banking deliberately gets zero: it tends to dominate Indian equity
// portfolios already, so it earns no diversification credit.
const (
	sectorBonusTech          = 5
	sectorBonusHealthcare    = 4
	sectorBonusInternational = 4
	sectorBonusConsumption   = 3
	sectorBonusInfra         = 2
	sectorBonusBanking       = 0
	sectorBonusGeneral       = 1

	directPlanBonus = 2
)

// scoreStrategicFit rewards sector diversification, direct (low-cost) plan
// structure, and a long track record.
func (s *Scorer) scoreStrategicFit(f domain.FundRecord) domain.DimensionScore {
	dim := domain.DimensionScore{Max: MaxStrategicFit}

	sectors := f.Sectors()
	bonus := sectorBonus(sectors)
	dim.Score += bonus
	dim.Details = append(dim.Details, domain.DimensionDetail{
		Name:   "Sector",
		Value:  sectors.Label,
		Points: bonus,
		Max:    5,
	})

	if sectors.IsDirect {
		dim.Score += directPlanBonus
		dim.Details = append(dim.Details, domain.DimensionDetail{
			Name:   "Direct plan",
			Value:  "yes",
			Points: directPlanBonus,
			Max:    2,
		})
	}

	if points, horizon := trackRecordBonus(f); points > 0 {
		dim.Score += points
		dim.Details = append(dim.Details, domain.DimensionDetail{
			Name:   "Track record",
			Value:  horizon,
			Points: points,
			Max:    3,
			Note:   fmt.Sprintf("%s of reported returns", horizon),
		})
	}

	return dim
}

func sectorBonus(p domain.SectorProfile) int {
	switch {
	case p.IsTech:
		return sectorBonusTech
	case p.IsHealthcare:
		return sectorBonusHealthcare
	case p.IsInternational, p.IsUSEquity:
		return sectorBonusInternational
	case p.IsConsumption:
		return sectorBonusConsumption
	case p.IsInfrastructure:
		return sectorBonusInfra
	case p.IsBanking:
		return sectorBonusBanking
	default:
		return sectorBonusGeneral
	}
}

func trackRecordBonus(f domain.FundRecord) (int, string) {
	switch {
	case f.Return10Y != nil:
		return 3, "10 years"
	case f.Return5Y != nil:
		return 2, "5 years"
	default:
		return 0, ""
	}
}
