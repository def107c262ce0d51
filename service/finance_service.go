package service

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"finconsult/domain"
	"finconsult/finance"
)

// FinanceService is the validated boundary around the pure finance
// calculators. The calculators themselves never validate; every guard that
// keeps them inside their arithmetic domain lives here.
type FinanceService struct {
	log *logrus.Logger
}

func NewFinanceService(log *logrus.Logger) *FinanceService {
	return &FinanceService{log: log}
}

// CalculateLoanPayment validates the loan parameters and computes the
// amortized payment summary.
func (s *FinanceService) CalculateLoanPayment(input domain.LoanInput) (domain.LoanResult, error) {
	if input.Principal <= 0 {
		return domain.LoanResult{}, errors.New("invalid principal")
	}
	if input.Principal > MaxPrincipal {
		return domain.LoanResult{}, fmt.Errorf("principal exceeds maximum of $%.2f", MaxPrincipal)
	}
	if input.AnnualRate < 0 {
		return domain.LoanResult{}, errors.New("invalid annual rate")
	}
	if input.AnnualRate > MaxAnnualRate {
		return domain.LoanResult{}, fmt.Errorf("annual rate exceeds maximum of %.0f%%", MaxAnnualRate*100)
	}
	if input.Years <= 0 {
		return domain.LoanResult{}, errors.New("invalid term")
	}
	if input.Years > MaxYears {
		return domain.LoanResult{}, fmt.Errorf("term exceeds maximum of %d years", MaxYears)
	}

	result := finance.LoanPayment(input.Principal, input.AnnualRate, input.Years)

	s.log.WithFields(logrus.Fields{
		"principal":       input.Principal,
		"annual_rate":     input.AnnualRate,
		"years":           input.Years,
		"monthly_payment": result.MonthlyPayment,
	}).Debug("calculated loan payment")

	return result, nil
}

// CalculateCompoundInterest validates the growth parameters, defaulting the
// compounding frequency to monthly when omitted.
func (s *FinanceService) CalculateCompoundInterest(input domain.CompoundInterestInput) (domain.CompoundInterestResult, error) {
	if input.Principal <= 0 {
		return domain.CompoundInterestResult{}, errors.New("invalid principal")
	}
	if input.Principal > MaxPrincipal {
		return domain.CompoundInterestResult{}, fmt.Errorf("principal exceeds maximum of $%.2f", MaxPrincipal)
	}
	if input.AnnualRate < 0 {
		return domain.CompoundInterestResult{}, errors.New("invalid annual rate")
	}
	if input.AnnualRate > MaxAnnualRate {
		return domain.CompoundInterestResult{}, fmt.Errorf("annual rate exceeds maximum of %.0f%%", MaxAnnualRate*100)
	}
	if input.Years <= 0 {
		return domain.CompoundInterestResult{}, errors.New("invalid period")
	}
	if input.Years > MaxYears {
		return domain.CompoundInterestResult{}, fmt.Errorf("period exceeds maximum of %d years", MaxYears)
	}

	compounds := input.CompoundsPerYear
	if compounds == 0 {
		compounds = DefaultCompoundsPerYear
	}
	if compounds < 0 || compounds > MaxCompoundsPerYear {
		return domain.CompoundInterestResult{}, errors.New("invalid compounding frequency")
	}

	result := finance.CompoundInterest(input.Principal, input.AnnualRate, input.Years, compounds)

	s.log.WithFields(logrus.Fields{
		"principal":    input.Principal,
		"annual_rate":  input.AnnualRate,
		"years":        input.Years,
		"compounds":    compounds,
		"final_amount": result.FinalAmount,
	}).Debug("calculated compound interest")

	return result, nil
}

// CalculateSavingsGoal validates the savings parameters. The contribution
// must be positive and the rate non-negative, which keeps the core's
// logarithm inside its domain.
func (s *FinanceService) CalculateSavingsGoal(input domain.SavingsGoalInput) (domain.SavingsGoalResult, error) {
	if input.TargetAmount <= 0 {
		return domain.SavingsGoalResult{}, errors.New("invalid target amount")
	}
	if input.TargetAmount > MaxPrincipal {
		return domain.SavingsGoalResult{}, fmt.Errorf("target amount exceeds maximum of $%.2f", MaxPrincipal)
	}
	if input.MonthlyContribution <= 0 {
		return domain.SavingsGoalResult{}, errors.New("invalid monthly contribution")
	}
	if input.AnnualRate < 0 {
		return domain.SavingsGoalResult{}, errors.New("invalid annual rate")
	}
	if input.AnnualRate > MaxAnnualRate {
		return domain.SavingsGoalResult{}, fmt.Errorf("annual rate exceeds maximum of %.0f%%", MaxAnnualRate*100)
	}

	result := finance.SavingsGoal(input.TargetAmount, input.MonthlyContribution, input.AnnualRate)

	s.log.WithFields(logrus.Fields{
		"target_amount":  input.TargetAmount,
		"contribution":   input.MonthlyContribution,
		"annual_rate":    input.AnnualRate,
		"months_to_goal": result.MonthsToGoal,
	}).Debug("calculated savings goal")

	return result, nil
}
