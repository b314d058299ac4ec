package scoring

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAboveTable_FirstMatchWins(t *testing.T) {
	table := DefaultBands().Return3Y

	tests := []struct {
		value    float64
		expected int
	}{
		{35, 20},
		{30.01, 20},
		{30, 16}, // boundary is exclusive
		{25.5, 16},
		{25, 12},
		{20.5, 12},
		{16, 8},
		{11, 4},
		{6, 0},
		{5, -5},
		{-20, -5},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, table.Points(tt.value), "3Y return %.2f", tt.value)
	}
}

func TestBelowTable_FirstMatchWins(t *testing.T) {
	table := DefaultBands().ExpenseRatio

	tests := []struct {
		value    float64
		expected int
	}{
		{0.3, 5},
		{0.5, 4}, // boundary is exclusive
		{0.6, 4},
		{0.99, 3},
		{1.2, 2},
		{1.8, 0},
		{2.0, -3},
		{2.5, -3},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, table.Points(tt.value), "expense ratio %.2f", tt.value)
	}
}

func TestDefaultBands_AUMSweetSpot(t *testing.T) {
	aum := DefaultBands().AUM

	assert.Equal(t, 0, aum.Points(300), "Tiny funds earn nothing")
	assert.Equal(t, 2, aum.Points(1500))
	assert.Equal(t, 5, aum.Points(5000))
	assert.Equal(t, 7, aum.Points(25000), "Mid-large funds are the sweet spot")
	assert.Equal(t, 5, aum.Points(80000), "Very large funds score below the sweet spot")
}

func TestDefaultBands_MomentumGapIsPenaltyOnly(t *testing.T) {
	gap := DefaultBands().MomentumGap

	assert.Equal(t, 0, gap.Points(5))
	assert.Equal(t, -2, gap.Points(12))
	assert.Equal(t, -3, gap.Points(17))
	assert.Equal(t, -5, gap.Points(25))
}

func TestLoadBands_OverridesOnlyGivenTables(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bands.yaml")
	override := `
sharpe:
  bands:
    - threshold: 2.0
      points: 10
  else: 0
`
	require.NoError(t, os.WriteFile(path, []byte(override), 0o644))

	bands, err := LoadBands(path)
	require.NoError(t, err)

	assert.Equal(t, 10, bands.Sharpe.Points(2.5), "Overridden sharpe table should apply")
	assert.Equal(t, 0, bands.Sharpe.Points(1.6), "Overridden else branch should apply")
	assert.Equal(t, DefaultBands().Return3Y, bands.Return3Y, "Tables absent from the file keep defaults")
}

func TestLoadBands_MissingFile(t *testing.T) {
	_, err := LoadBands("/nonexistent/bands.yaml")
	assert.Error(t, err)
}
