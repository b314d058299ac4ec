package scan

import (
	"sync"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kamalneel/agrawal-estate-sub000/internal/allocation"
	"github.com/kamalneel/agrawal-estate-sub000/internal/domain"
	"github.com/kamalneel/agrawal-estate-sub000/internal/scoring"
)

func f64(v float64) *float64 { return &v }
func iptr(v int) *int { return &v }

func newTestPool(workers int) *WorkerPool {
	return NewWorkerPool(workers, scoring.NewScorer(), zerolog.Nop())
}

func TestNewWorkerPool(t *testing.T) {
	tests := []struct {
		name            string
		numWorkers      int
		expectedWorkers int
	}{
		{"positive workers", 5, 5},
		{"zero workers defaults to 10", 0, 10},
		{"negative workers defaults to 10", -1, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pool := newTestPool(tt.numWorkers)
			assert.Equal(t, tt.expectedWorkers, pool.numWorkers)
		})
	}
}

func TestScoreBatch_Empty(t *testing.T) {
	pool := newTestPool(2)
	assert.Empty(t, pool.ScoreBatch(nil, nil))
}

func TestScoreBatch_PreservesInputOrder(t *testing.T) {
	pool := newTestPool(4)

	// Distinct ratings give distinct totals, so order mixups are visible.
	funds := []domain.FundRecord{
		{Name: "Five", QualityRating: iptr(5)},
		{Name: "Three", QualityRating: iptr(3)},
		{Name: "One", QualityRating: iptr(1)},
	}

	results := pool.ScoreBatch(funds, nil)
	require.Len(t, results, 3)

	// rating points + general sector bonus
	assert.Equal(t, 11, results[0].Total)
	assert.Equal(t, 5, results[1].Total)
	assert.Equal(t, 1, results[2].Total)
}

func TestScoreBatch_WithProgress(t *testing.T) {
	pool := newTestPool(2)

	funds := []domain.FundRecord{
		{Name: "A", Return3Y: f64(12)},
		{Name: "B", Return3Y: f64(18)},
		{Name: "C", Return3Y: f64(22)},
	}

	var mu sync.Mutex
	var currents []int
	pool.ScoreBatch(funds, func(current, total int, message string) {
		mu.Lock()
		defer mu.Unlock()
		assert.Equal(t, 3, total, "Total should equal number of funds")
		assert.Contains(t, message, "Scoring", "Message should describe the operation")
		currents = append(currents, current)
	})

	require.Len(t, currents, 3, "Progress should be called once per fund")
	for _, c := range currents {
		assert.GreaterOrEqual(t, c, 1)
		assert.LessOrEqual(t, c, 3)
	}
}

func TestScoreBatch_MatchesSequentialScoring(t *testing.T) {
	pool := newTestPool(8)
	scorer := scoring.NewScorer()

	funds := []domain.FundRecord{
		{Name: "A", QualityRating: iptr(4), Return1Y: f64(14), Return3Y: f64(19), SharpeRatio: f64(1.1)},
		{Name: "B", Return1Y: f64(-6), Return3Y: f64(12)},
		{Name: "C Banking Fund", ExpenseRatio: f64(2.2)},
	}

	results := pool.ScoreBatch(funds, nil)
	for i, fund := range funds {
		assert.Equal(t, scorer.Score(fund), results[i], "Parallel and sequential scoring must agree for %s", fund.Name)
	}
}

func TestCompare_AttachesAllocations(t *testing.T) {
	pool := newTestPool(4)
	advisor := allocation.NewAdvisor(scoring.NewScorer())

	funds := []domain.FundRecord{
		{Name: "First", QualityRating: iptr(5), Return3Y: f64(24), SharpeRatio: f64(1.3), RecommendationRank: iptr(1)},
		{Name: "Second", QualityRating: iptr(4), Return3Y: f64(18), RecommendationRank: iptr(2)},
		{Name: "Third", QualityRating: iptr(4), Return3Y: f64(12), RecommendationRank: iptr(3)},
		{Name: "Also-ran", QualityRating: iptr(3)},
	}

	comparison := pool.Compare(funds, advisor)
	require.Len(t, comparison.Entries, 4)

	var sum float64
	for _, e := range comparison.Entries[:3] {
		require.NotNil(t, e.Allocation, "%s should carry an allocation", e.Fund.Name)
		sum += *e.Allocation
	}
	assert.Equal(t, 100.0, sum)
	assert.Nil(t, comparison.Entries[3].Allocation)

	assert.Equal(t, 4, comparison.Summary.Count)
	assert.Greater(t, comparison.Summary.Mean, 0.0)
}
