package scan

import (
	"github.com/kamalneel/agrawal-estate-sub000/internal/allocation"
	"github.com/kamalneel/agrawal-estate-sub000/internal/domain"
)

// Entry is one fund's row in a comparison set.
type Entry struct {
	Fund       domain.FundRecord  `json:"fund"`
	Score      domain.ScoreResult `json:"score"`
	Rank       int                `json:"rank,omitempty"`
	Allocation *float64           `json:"allocation,omitempty"`
}

// Comparison is a fully analyzed fund set: per-fund scores and allocation
// advice plus batch statistics.
type Comparison struct {
	Entries []Entry `json:"entries"`
	Summary Summary `json:"summary"`
}

// Compare scores every fund in parallel and attaches allocation advice for
// the rank 1-3 trio. Entries keep the input order.
func (p *WorkerPool) Compare(funds []domain.FundRecord, advisor *allocation.Advisor) Comparison {
	results := p.ScoreBatch(funds, nil)
	allocs := advisor.Advise(funds)

	entries := make([]Entry, len(funds))
	for i := range funds {
		entries[i] = Entry{
			Fund:       funds[i],
			Score:      results[i],
			Rank:       allocs[i].Rank,
			Allocation: allocs[i].Percent,
		}
	}

	return Comparison{
		Entries: entries,
		Summary: Summarize(results),
	}
}
