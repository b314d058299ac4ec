// Package allocation computes suggested capital-allocation percentages for
// the top three ranked funds of a comparison set.
package allocation

import (
	"math"

	"github.com/kamalneel/agrawal-estate-sub000/internal/domain"
	"github.com/kamalneel/agrawal-estate-sub000/internal/scoring"
)

// Allocation bounds for the top two ranks. Rank 3 takes the remainder and
// is intentionally unbounded (see Advise).
const (
	rank1MinPct = 35.0
	rank1MaxPct = 45.0
	rank2MinPct = 30.0
	rank2MaxPct = 40.0
)

// Result pairs a fund (by input position) with its suggested allocation.
// Percent is nil for every fund outside ranks 1-3, and for all funds when
// the comparison set has no complete rank 1-3 trio.
type Result struct {
	Name    string   `json:"name"`
	Rank    int      `json:"rank,omitempty"`
	Percent *float64 `json:"percent,omitempty"`
}

// Advisor turns composite scores into proportional allocation advice.
type Advisor struct {
	scorer *scoring.Scorer
}

// NewAdvisor creates an advisor backed by the given scorer.
func NewAdvisor(scorer *scoring.Scorer) *Advisor {
	return &Advisor{scorer: scorer}
}

// Advise returns one Result per input fund, in input order.
//
// Allocations are proportional to the composite scores of the rank 1-3
// funds, clamped to [35,45] for rank 1 and [30,40] for rank 2, each rounded
// to the nearest 5. Rank 3 receives the remainder to 100, which keeps the
// three percentages summing exactly but leaves rank 3 unclamped: with
// heavily skewed scores the remainder can land outside sensible bounds.
// That behavior is preserved from the original policy deliberately.
//
// If any of ranks 1, 2, 3 is missing, or all three scores are zero, every
// Percent is nil: partial allocations are never produced.
func (a *Advisor) Advise(funds []domain.FundRecord) []Result {
	results := make([]Result, len(funds))
	for i, f := range funds {
		results[i] = Result{Name: f.Name}
		if f.RecommendationRank != nil {
			results[i].Rank = *f.RecommendationRank
		}
	}

	// First fund holding each of ranks 1..3.
	rankIdx := map[int]int{}
	for i, f := range funds {
		if f.RecommendationRank == nil {
			continue
		}
		r := *f.RecommendationRank
		if r >= 1 && r <= 3 {
			if _, seen := rankIdx[r]; !seen {
				rankIdx[r] = i
			}
		}
	}
	if len(rankIdx) < 3 {
		return results
	}

	var scores [3]float64
	var totalScore float64
	for r := 1; r <= 3; r++ {
		s := float64(a.scorer.Score(funds[rankIdx[r]]).Total)
		scores[r-1] = math.Max(0, s)
		totalScore += scores[r-1]
	}
	if totalScore == 0 {
		return results
	}

	alloc1 := round5(clamp(scores[0]/totalScore*100, rank1MinPct, rank1MaxPct))
	alloc2 := round5(clamp(scores[1]/totalScore*100, rank2MinPct, rank2MaxPct))
	alloc3 := 100 - alloc1 - alloc2

	results[rankIdx[1]].Percent = &alloc1
	results[rankIdx[2]].Percent = &alloc2
	results[rankIdx[3]].Percent = &alloc3

	return results
}

// round5 rounds to the nearest multiple of 5 for display.
func round5(x float64) float64 {
	return math.Round(x/5) * 5
}

func clamp(x, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, x))
}
