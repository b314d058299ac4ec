// Package scoring implements the N-Rank composite fund-quality score:
// five banded dimension scores (Quality, Returns, Risk-Adjusted, Cost,
// Strategic Fit) aggregated into a 0-100 total and a qualitative tier.
//
// Every banding threshold is business policy and lives here as data, not
// control flow: a table is an ordered list of (threshold, points) pairs
// evaluated top-down, first match wins.
package scoring

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Band is a single (threshold, points) step in a banding table.
type Band struct {
	Threshold float64 `yaml:"threshold"`
	Points    int     `yaml:"points"`
}

// AboveTable awards the points of the first band whose threshold the value
// strictly exceeds. Bands must be ordered from highest threshold down.
type AboveTable struct {
	Bands []Band `yaml:"bands"`
	Else  int    `yaml:"else"`
}

// Points returns the award for v.
func (t AboveTable) Points(v float64) int {
	for _, b := range t.Bands {
		if v > b.Threshold {
			return b.Points
		}
	}
	return t.Else
}

// BelowTable awards the points of the first band whose threshold the value
// is strictly under. Bands must be ordered from lowest threshold up.
type BelowTable struct {
	Bands []Band `yaml:"bands"`
	Else  int    `yaml:"else"`
}

// Points returns the award for v.
func (t BelowTable) Points(v float64) int {
	for _, b := range t.Bands {
		if v < b.Threshold {
			return b.Points
		}
	}
	return t.Else
}

// Bands is the complete banding policy for all five dimensions.
type Bands struct {
	// Quality
	RatingPoints map[int]int `yaml:"rating_points"` // 1-5 star rating
	AUM          BelowTable  `yaml:"aum"`           // fund size in Cr

	// Returns
	Return1Y    AboveTable `yaml:"return_1y"`
	Return3Y    AboveTable `yaml:"return_3y"`
	Return5Y    AboveTable `yaml:"return_5y"`
	MomentumGap AboveTable `yaml:"momentum_gap"` // return3y - return1y

	// Risk-adjusted
	Sharpe     AboveTable `yaml:"sharpe"`
	Alpha      AboveTable `yaml:"alpha"`
	Volatility AboveTable `yaml:"volatility"` // penalty only

	// Cost
	ExpenseRatio BelowTable `yaml:"expense_ratio"`
}

// DefaultBands returns the compiled-in banding policy.
func DefaultBands() Bands {
	return Bands{
		RatingPoints: map[int]int{5: 10, 4: 7, 3: 4, 2: 2, 1: 0},
		AUM: BelowTable{
			Bands: []Band{
				{Threshold: 500, Points: 0},
				{Threshold: 2000, Points: 2},
				{Threshold: 10000, Points: 5},
				{Threshold: 50000, Points: 7},
			},
			// Very large funds score slightly below the sweet spot.
			Else: 5,
		},
		Return1Y: AboveTable{
			Bands: []Band{
				{Threshold: 30, Points: 15},
				{Threshold: 20, Points: 12},
				{Threshold: 15, Points: 9},
				{Threshold: 10, Points: 6},
				{Threshold: 5, Points: 3},
				{Threshold: 0, Points: 0},
				{Threshold: -5, Points: -5},
			},
			Else: -10,
		},
		Return3Y: AboveTable{
			Bands: []Band{
				{Threshold: 30, Points: 20},
				{Threshold: 25, Points: 16},
				{Threshold: 20, Points: 12},
				{Threshold: 15, Points: 8},
				{Threshold: 10, Points: 4},
				{Threshold: 5, Points: 0},
			},
			Else: -5,
		},
		Return5Y: AboveTable{
			Bands: []Band{
				{Threshold: 25, Points: 15},
				{Threshold: 20, Points: 12},
				{Threshold: 15, Points: 8},
				{Threshold: 10, Points: 4},
				{Threshold: 5, Points: 0},
			},
			Else: -5,
		},
		MomentumGap: AboveTable{
			Bands: []Band{
				{Threshold: 20, Points: -5},
				{Threshold: 15, Points: -3},
				{Threshold: 10, Points: -2},
			},
			Else: 0,
		},
		Sharpe: AboveTable{
			Bands: []Band{
				{Threshold: 1.5, Points: 10},
				{Threshold: 1.0, Points: 8},
				{Threshold: 0.7, Points: 6},
				{Threshold: 0.5, Points: 4},
				{Threshold: 0.3, Points: 2},
				{Threshold: 0, Points: 0},
				{Threshold: -0.5, Points: -2},
			},
			Else: -5,
		},
		Alpha: AboveTable{
			Bands: []Band{
				{Threshold: 7, Points: 7},
				{Threshold: 5, Points: 5},
				{Threshold: 3, Points: 4},
				{Threshold: 1, Points: 2},
				{Threshold: 0, Points: 1},
				{Threshold: -3, Points: -2},
			},
			Else: -5,
		},
		Volatility: AboveTable{
			Bands: []Band{
				{Threshold: 25, Points: -2},
				{Threshold: 20, Points: -1},
			},
			Else: 0,
		},
		ExpenseRatio: BelowTable{
			Bands: []Band{
				{Threshold: 0.5, Points: 5},
				{Threshold: 0.75, Points: 4},
				{Threshold: 1.0, Points: 3},
				{Threshold: 1.5, Points: 2},
				{Threshold: 2.0, Points: 0},
			},
			Else: -3,
		},
	}
}

// LoadBands reads a banding policy override from a YAML file.
func LoadBands(path string) (Bands, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Bands{}, fmt.Errorf("read bands file: %w", err)
	}

	bands := DefaultBands()
	if err := yaml.Unmarshal(data, &bands); err != nil {
		return Bands{}, fmt.Errorf("parse bands file %s: %w", path, err)
	}

	return bands, nil
}
