// Package warnings evaluates a fixed, ordered set of risk rules against a
// raw fund record. The rules are independent of the score: a fund can rank
// Excellent and still carry warnings. Missing data never fires a rule.
package warnings

import (
	"fmt"

	"github.com/kamalneel/agrawal-estate-sub000/internal/domain"
)

// Momentum-deterioration thresholds on gap = return3y - return1y.
const (
	momentumSevereGap   = 15.0
	momentumModerateGap = 10.0
)

// ForRecord returns the warnings that apply to the record, in a fixed
// evaluation order so output is stable across calls.
func ForRecord(f domain.FundRecord) []string {
	var out []string

	if f.Sectors().IsBanking {
		out = append(out, "Banking/financial sector fund: check portfolio for sector over-allocation")
	}

	if f.Return1Y != nil && *f.Return1Y < 0 {
		out = append(out, fmt.Sprintf("Negative 1Y return (%.1f%%)", *f.Return1Y))
	}

	if f.SharpeRatio != nil && *f.SharpeRatio < 0 {
		out = append(out, "Negative Sharpe ratio indicates poor risk-adjusted returns")
	}

	if f.Alpha != nil && *f.Alpha < 0 {
		out = append(out, "Negative alpha: fund is underperforming its benchmark")
	}

	if f.Return1Y != nil && f.Return3Y != nil {
		gap := *f.Return3Y - *f.Return1Y
		if gap > momentumSevereGap {
			out = append(out, fmt.Sprintf("Severe momentum deterioration: 1Y return trails 3Y average by %.1f%%", gap))
		} else if gap > momentumModerateGap {
			out = append(out, fmt.Sprintf("Momentum deteriorating: 1Y return trails 3Y average by %.1f%%", gap))
		}
	}

	if f.QualityRating != nil && *f.QualityRating < 3 {
		out = append(out, fmt.Sprintf("Low quality rating (%d/5)", *f.QualityRating))
	}

	if f.AUM != nil && *f.AUM < 500 {
		out = append(out, fmt.Sprintf("Small fund size (%.0f Cr): higher closure risk", *f.AUM))
	}

	if f.ExpenseRatio != nil && *f.ExpenseRatio > 2.0 {
		out = append(out, fmt.Sprintf("High expense ratio (%.2f%%) will drag on long-term returns", *f.ExpenseRatio))
	}

	return out
}
