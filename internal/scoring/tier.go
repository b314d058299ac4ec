package scoring

import "github.com/kamalneel/agrawal-estate-sub000/internal/domain"

// Tier boundaries. A zero total maps to Unknown before the Poor band is
// considered: zero almost always means "no data", and callers that need to
// distinguish the two cases check ScoreResult.HasData.
const (
	tierExcellentMin = 60
	tierGoodMin      = 45
	tierCautionMin   = 30
)

// TierFor maps a clamped 0-100 total to its qualitative tier.
func TierFor(total int) domain.Tier {
	switch {
	case total == 0:
		return domain.TierUnknown
	case total >= tierExcellentMin:
		return domain.TierExcellent
	case total >= tierGoodMin:
		return domain.TierGood
	case total >= tierCautionMin:
		return domain.TierCaution
	default:
		return domain.TierPoor
	}
}
