// Package finance implements loan amortization, compound growth and
// savings-goal calculations as pure functions. Every function is a
// deterministic function of its arguments with no side effects.
//
// The package does not validate its inputs. Invalid domains (zero payment
// periods, non-positive principal in a growth percentage, a contribution
// that cannot reach the target) follow Go float semantics and produce
// non-finite results rather than errors; callers are expected to validate
// at their boundary.
package finance

import (
	"math"

	"finconsult/domain"
)

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// LoanPayment computes the fixed monthly payment of an amortized loan using
// the annuity formula M = P*r(1+r)^n / ((1+r)^n - 1). A zero rate falls back
// to straight-line repayment. Non-positive years yields non-finite output.
func LoanPayment(principal, annualRate float64, years int) domain.LoanResult {
	monthlyRate := annualRate / 12
	numPayments := float64(years * 12)

	var payment float64
	if monthlyRate == 0 {
		payment = principal / numPayments
	} else {
		factor := math.Pow(1+monthlyRate, numPayments)
		payment = principal * (monthlyRate * factor) / (factor - 1)
	}

	total := payment * numPayments
	return domain.LoanResult{
		MonthlyPayment: round2(payment),
		TotalPayment:   round2(total),
		TotalInterest:  round2(total - principal),
	}
}

// CompoundInterest computes A = P(1 + r/n)^(n*t). The growth percentage
// divides by the principal, so a non-positive principal yields a non-finite
// growth figure.
func CompoundInterest(principal, annualRate, years float64, compoundsPerYear int) domain.CompoundInterestResult {
	n := float64(compoundsPerYear)
	finalAmount := principal * math.Pow(1+annualRate/n, n*years)
	earned := finalAmount - principal

	return domain.CompoundInterestResult{
		FinalAmount:      round2(finalAmount),
		InterestEarned:   round2(earned),
		GrowthPercentage: round2(earned / principal * 100),
	}
}

// SavingsGoal computes how long monthly contributions take to reach a
// target, from the future-value-of-annuity formula solved for the number of
// periods. A zero rate reduces to target/contribution. A non-positive
// contribution or a monthly rate at or below -100% puts the logarithm out of
// domain and the result is NaN.
func SavingsGoal(targetAmount, monthlyContribution, annualRate float64) domain.SavingsGoalResult {
	monthlyRate := annualRate / 12

	var months float64
	if monthlyRate == 0 {
		months = targetAmount / monthlyContribution
	} else {
		months = math.Log(1+targetAmount*monthlyRate/monthlyContribution) / math.Log(1+monthlyRate)
	}

	return domain.SavingsGoalResult{
		MonthsToGoal: round1(months),
		YearsToGoal:  round1(months / 12),
	}
}
