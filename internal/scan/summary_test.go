package scan

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kamalneel/agrawal-estate-sub000/internal/domain"
)

func TestSummarize_Empty(t *testing.T) {
	s := Summarize(nil)
	assert.Equal(t, 0, s.Count)
	assert.Empty(t, s.TierCounts)
}

func TestSummarize_Statistics(t *testing.T) {
	results := []domain.ScoreResult{
		{Total: 10, Tier: domain.TierPoor},
		{Total: 20, Tier: domain.TierPoor},
		{Total: 30, Tier: domain.TierCaution},
	}

	s := Summarize(results)

	assert.Equal(t, 3, s.Count)
	assert.InDelta(t, 20.0, s.Mean, 1e-9)
	assert.InDelta(t, 10.0, s.StdDev, 1e-9) // sample standard deviation
	assert.Equal(t, 10, s.Min)
	assert.Equal(t, 30, s.Max)
	assert.Equal(t, 2, s.TierCounts[domain.TierPoor])
	assert.Equal(t, 1, s.TierCounts[domain.TierCaution])
}

func TestSummarize_SingleResult(t *testing.T) {
	s := Summarize([]domain.ScoreResult{{Total: 42, Tier: domain.TierCaution}})

	assert.Equal(t, 1, s.Count)
	assert.InDelta(t, 42.0, s.Mean, 1e-9)
	assert.Equal(t, 0.0, s.StdDev, "StdDev is zero for a single sample")
	assert.Equal(t, 42, s.Min)
	assert.Equal(t, 42, s.Max)
}
