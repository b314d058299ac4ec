// Package projection estimates a holding's present value and its historical
// CAGR against a fixed reference date (a fiscal-year-end snapshot date).
//
// All operations take an explicit asOf time instead of reading the clock, so
// results stay reproducible; callers pass time.Now() at the edge.
package projection

import (
	"math"
	"time"

	"github.com/kamalneel/agrawal-estate-sub000/internal/domain"
)

// DefaultReferenceDate is the fiscal-year-end snapshot date the stored
// reference amounts are anchored to.
var DefaultReferenceDate = time.Date(2025, time.March, 31, 0, 0, 0, 0, time.UTC)

const (
	daysPerYear  = 365.25
	daysPerMonth = 30.4375 // daysPerYear / 12
)

// Projector computes value estimates and historical CAGR for holdings.
type Projector struct {
	referenceDate time.Time
}

// NewProjector creates a projector anchored to the given reference date.
func NewProjector(referenceDate time.Time) *Projector {
	return &Projector{referenceDate: referenceDate}
}

// ReferenceDate returns the anchor date for snapshots and CAGR.
func (p *Projector) ReferenceDate() time.Time {
	return p.referenceDate
}

// EstimateCurrentValue estimates the holding's value at asOf.
//
// Preference order:
//  1. Reference snapshot plus 1Y return: the 1Y return is prorated linearly
//     over the months elapsed since the reference date.
//  2. Investment date plus initial amount: an age-banded return rate is
//     compounded over the holding's lifetime.
//  3. An explicitly stored current-amount override.
//
// Returns nil when none of the three is computable.
func (p *Projector) EstimateCurrentValue(h domain.HoldingRecord, asOf time.Time) *float64 {
	if h.ReferenceSnapshotAmount != nil && h.Return1Y != nil {
		months := math.Max(0, yearsBetween(p.referenceDate, asOf)*12)
		prorated := months / 12 * *h.Return1Y / 100
		v := *h.ReferenceSnapshotAmount * (1 + prorated)
		return &v
	}

	if h.InvestmentDate != nil && h.InitialInvestedAmount != nil {
		years := yearsBetween(*h.InvestmentDate, asOf)
		if years > 0 {
			if rate := rateForAge(h, years); rate != nil {
				v := *h.InitialInvestedAmount * math.Pow(1+*rate/100, years)
				return &v
			}
		}
	}

	if h.CurrentAmountOverride != nil {
		v := *h.CurrentAmountOverride
		return &v
	}

	return nil
}

// rateForAge picks the return horizon matching the holding's age, falling
// back to the next-best horizon when the preferred one is missing:
// under 2 years 1Y→3Y→5Y, under 4 years 3Y→5Y→1Y, otherwise 5Y→3Y→1Y.
func rateForAge(h domain.HoldingRecord, years float64) *float64 {
	var order []*float64
	switch {
	case years < 2:
		order = []*float64{h.Return1Y, h.Return3Y, h.Return5Y}
	case years < 4:
		order = []*float64{h.Return3Y, h.Return5Y, h.Return1Y}
	default:
		order = []*float64{h.Return5Y, h.Return3Y, h.Return1Y}
	}
	for _, r := range order {
		if r != nil {
			return r
		}
	}
	return nil
}

// HistoricalCAGR computes the compound annual growth rate between the
// investment date and the reference date, as a percentage.
//
// The end value is the reference snapshot, defaulting to the initial amount
// when no snapshot exists. Returns nil (undefined, never zero or Inf) when
// the initial amount is missing or non-positive, the investment date is
// missing, the elapsed period is non-positive, or the snapshot is negative.
func (p *Projector) HistoricalCAGR(h domain.HoldingRecord) *float64 {
	if h.InitialInvestedAmount == nil || *h.InitialInvestedAmount <= 0 {
		return nil
	}
	if h.InvestmentDate == nil {
		return nil
	}

	years := yearsBetween(*h.InvestmentDate, p.referenceDate)
	if years <= 0 {
		return nil
	}

	end := *h.InitialInvestedAmount
	if h.ReferenceSnapshotAmount != nil {
		end = *h.ReferenceSnapshotAmount
	}
	if end < 0 {
		return nil
	}

	cagr := (math.Pow(end / *h.InitialInvestedAmount, 1/years) - 1) * 100
	return &cagr
}

func yearsBetween(from, to time.Time) float64 {
	return to.Sub(from).Hours() / 24 / daysPerYear
}
