package scan

import (
	"gonum.org/v1/gonum/stat"

	"github.com/kamalneel/agrawal-estate-sub000/internal/domain"
)

// Summary holds descriptive statistics over a batch of composite scores.
type Summary struct {
	Count      int                 `json:"count"`
	Mean       float64             `json:"mean"`
	StdDev     float64             `json:"std_dev"`
	Min        int                 `json:"min"`
	Max        int                 `json:"max"`
	TierCounts map[domain.Tier]int `json:"tier_counts"`
}

// Summarize computes batch statistics from score results. StdDev is zero
// for batches smaller than two.
func Summarize(results []domain.ScoreResult) Summary {
	s := Summary{TierCounts: make(map[domain.Tier]int)}
	if len(results) == 0 {
		return s
	}

	totals := make([]float64, len(results))
	s.Min = results[0].Total
	s.Max = results[0].Total
	for i, r := range results {
		totals[i] = float64(r.Total)
		if r.Total < s.Min {
			s.Min = r.Total
		}
		if r.Total > s.Max {
			s.Max = r.Total
		}
		s.TierCounts[r.Tier]++
	}

	s.Count = len(results)
	s.Mean = stat.Mean(totals, nil)
	if len(totals) > 1 {
		s.StdDev = stat.StdDev(totals, nil)
	}

	return s
}
