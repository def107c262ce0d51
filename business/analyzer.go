// Package business implements ROI, break-even, profit-margin, payback-period
// and financial-ratio calculations as pure functions.
//
// Two failure idioms coexist here on purpose. BreakEvenPoint and
// PaybackPeriod report business-rule failures as a DomainError value.
// Everything else leaves arithmetic faults unguarded (a zero initial
// investment in ROI produces non-finite output) except for the explicit
// zero-guards in ProfitMargin and RatioAnalysis, which substitute 0 for a
// division by a non-positive denominator. Callers must not rely on this
// package to validate inputs.
package business

import (
	"math"

	"finconsult/domain"
)

// DomainError is a business-rule failure carried as a result value rather
// than a fault. Callers distinguish it from validation or transport errors
// with errors.As.
type DomainError string

func (e DomainError) Error() string { return string(e) }

const (
	// ErrNonPositiveMargin is returned by BreakEvenPoint when the selling
	// price does not exceed the variable cost.
	ErrNonPositiveMargin = DomainError("price per unit must be greater than variable cost per unit")

	// ErrNotRecovered is returned by PaybackPeriod when the cumulative cash
	// flows never reach the initial investment.
	ErrNotRecovered = DomainError("investment not recovered within the given cash flow period")
)

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func round4(v float64) float64 {
	return math.Round(v*10000) / 10000
}

// ROI computes the simple return on investment and, when a non-nil non-zero
// period is supplied, the annualized (CAGR) figure. A zero initial
// investment yields non-finite output; a negative value ratio with a
// fractional period yields NaN for the annualized figure.
func ROI(initialInvestment, finalValue float64, periodYears *float64) domain.ROIResult {
	roi := (finalValue - initialInvestment) / initialInvestment * 100
	result := domain.ROIResult{ROIPercentage: round2(roi)}

	if periodYears != nil && *periodYears != 0 {
		annualized := (math.Pow(finalValue/initialInvestment, 1 / *periodYears) - 1) * 100
		annualized = round2(annualized)
		result.AnnualizedROIPercentage = &annualized
	}

	return result
}

// BreakEvenPoint computes the unit and revenue break-even for given fixed
// costs, per-unit variable cost and per-unit price. A non-positive
// contribution margin is reported as ErrNonPositiveMargin.
func BreakEvenPoint(fixedCosts, variableCostPerUnit, pricePerUnit float64) (domain.BreakEvenResult, error) {
	contributionMargin := pricePerUnit - variableCostPerUnit
	if contributionMargin <= 0 {
		return domain.BreakEvenResult{}, ErrNonPositiveMargin
	}

	units := fixedCosts / contributionMargin
	return domain.BreakEvenResult{
		BreakEvenUnits:     round2(units),
		BreakEvenRevenue:   round2(units * pricePerUnit),
		ContributionMargin: round2(contributionMargin),
	}, nil
}

// ProfitMargin computes profit and margin figures. Non-positive revenue
// reports both the margin percentage and the ratio as 0 instead of faulting;
// the profit itself is still computed.
func ProfitMargin(revenue, totalCosts float64) domain.ProfitMarginResult {
	profit := revenue - totalCosts
	result := domain.ProfitMarginResult{Profit: round2(profit)}

	if revenue > 0 {
		result.ProfitMarginPercentage = round2(profit / revenue * 100)
		result.ProfitRatio = round4(profit / revenue)
	}

	return result
}

// PaybackPeriod walks the cash-flow sequence in order until the cumulative
// total reaches the initial investment, interpolating the fractional year of
// recovery within the crossing year. ErrNotRecovered is reported when the
// sequence never reaches the investment.
func PaybackPeriod(initialInvestment float64, annualCashFlows []float64) (domain.PaybackResult, error) {
	cumulative := 0.0
	for year, cashFlow := range annualCashFlows {
		cumulative += cashFlow
		if cumulative >= initialInvestment {
			excess := cumulative - initialInvestment
			fractionOfYear := 1 - excess/cashFlow
			paybackYears := float64(year) + fractionOfYear

			return domain.PaybackResult{
				PaybackYears:  round2(paybackYears),
				PaybackMonths: round1(paybackYears * 12),
			}, nil
		}
	}

	return domain.PaybackResult{}, ErrNotRecovered
}

// RatioAnalysis computes four independent ratios, each guarded individually:
// a non-positive denominator reports that ratio as 0.
func RatioAnalysis(revenue, totalAssets, currentAssets, currentLiabilities, netIncome float64) domain.RatioResult {
	var result domain.RatioResult

	if totalAssets > 0 {
		result.AssetTurnoverRatio = round2(revenue / totalAssets)
		result.ReturnOnAssetsPercentage = round2(netIncome / totalAssets * 100)
	}
	if currentLiabilities > 0 {
		result.CurrentRatio = round2(currentAssets / currentLiabilities)
	}
	if revenue > 0 {
		result.NetProfitMarginPercentage = round2(netIncome / revenue * 100)
	}

	return result
}
