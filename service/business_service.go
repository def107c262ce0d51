package service

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"finconsult/business"
	"finconsult/domain"
)

// BusinessService is the validated boundary around the pure business
// analyzers. Tagged domain errors from the core (break-even margin, payback
// never recovered) pass through unchanged so callers can tell them apart
// from validation failures.
type BusinessService struct {
	log *logrus.Logger
}

func NewBusinessService(log *logrus.Logger) *BusinessService {
	return &BusinessService{log: log}
}

// CalculateROI validates the investment figures. An explicit zero period is
// rejected rather than silently treated as "no period supplied".
func (s *BusinessService) CalculateROI(input domain.ROIInput) (domain.ROIResult, error) {
	if input.InitialInvestment <= 0 {
		return domain.ROIResult{}, errors.New("invalid initial investment")
	}
	if input.InitialInvestment > MaxPrincipal {
		return domain.ROIResult{}, fmt.Errorf("initial investment exceeds maximum of $%.2f", MaxPrincipal)
	}
	if input.FinalValue < 0 {
		return domain.ROIResult{}, errors.New("invalid final value")
	}
	if input.PeriodYears != nil {
		if *input.PeriodYears == 0 {
			return domain.ROIResult{}, errors.New("investment period must be omitted or non-zero")
		}
		if *input.PeriodYears < 0 {
			return domain.ROIResult{}, errors.New("invalid investment period")
		}
	}

	result := business.ROI(input.InitialInvestment, input.FinalValue, input.PeriodYears)

	s.log.WithFields(logrus.Fields{
		"initial_investment": input.InitialInvestment,
		"final_value":        input.FinalValue,
		"roi_percentage":     result.ROIPercentage,
	}).Debug("calculated roi")

	return result, nil
}

// CalculateBreakEvenPoint validates the cost structure and computes the
// break-even. A non-positive contribution margin surfaces as
// business.ErrNonPositiveMargin.
func (s *BusinessService) CalculateBreakEvenPoint(input domain.BreakEvenInput) (domain.BreakEvenResult, error) {
	if input.FixedCosts < 0 {
		return domain.BreakEvenResult{}, errors.New("invalid fixed costs")
	}
	if input.VariableCostPerUnit < 0 {
		return domain.BreakEvenResult{}, errors.New("invalid variable cost per unit")
	}
	if input.PricePerUnit < 0 {
		return domain.BreakEvenResult{}, errors.New("invalid price per unit")
	}

	result, err := business.BreakEvenPoint(input.FixedCosts, input.VariableCostPerUnit, input.PricePerUnit)
	if err != nil {
		return domain.BreakEvenResult{}, err
	}

	s.log.WithFields(logrus.Fields{
		"fixed_costs":      input.FixedCosts,
		"break_even_units": result.BreakEvenUnits,
	}).Debug("calculated break-even point")

	return result, nil
}

// CalculateProfitMargin validates the cost input only; zero or negative
// revenue is a legitimate input handled by the core's zero-guard.
func (s *BusinessService) CalculateProfitMargin(input domain.ProfitMarginInput) (domain.ProfitMarginResult, error) {
	if input.TotalCosts < 0 {
		return domain.ProfitMarginResult{}, errors.New("invalid total costs")
	}
	if input.Revenue < 0 {
		return domain.ProfitMarginResult{}, errors.New("invalid revenue")
	}

	result := business.ProfitMargin(input.Revenue, input.TotalCosts)

	s.log.WithFields(logrus.Fields{
		"revenue": input.Revenue,
		"profit":  result.Profit,
	}).Debug("calculated profit margin")

	return result, nil
}

// CalculatePaybackPeriod validates the investment and cash-flow sequence.
// A sequence that never recovers the investment surfaces as
// business.ErrNotRecovered.
func (s *BusinessService) CalculatePaybackPeriod(input domain.PaybackInput) (domain.PaybackResult, error) {
	if input.InitialInvestment <= 0 {
		return domain.PaybackResult{}, errors.New("invalid initial investment")
	}
	if len(input.AnnualCashFlows) == 0 {
		return domain.PaybackResult{}, errors.New("no cash flows provided")
	}
	if len(input.AnnualCashFlows) > MaxCashFlowEntries {
		return domain.PaybackResult{}, fmt.Errorf("cash flow sequence exceeds maximum of %d entries", MaxCashFlowEntries)
	}

	result, err := business.PaybackPeriod(input.InitialInvestment, input.AnnualCashFlows)
	if err != nil {
		return domain.PaybackResult{}, err
	}

	s.log.WithFields(logrus.Fields{
		"initial_investment": input.InitialInvestment,
		"payback_years":      result.PaybackYears,
	}).Debug("calculated payback period")

	return result, nil
}

// CalculateRatios computes the financial ratio bundle. The core guards each
// ratio's denominator individually, so no validation is needed beyond
// rejecting negative balance-sheet figures.
func (s *BusinessService) CalculateRatios(input domain.RatioInput) (domain.RatioResult, error) {
	if input.Revenue < 0 || input.TotalAssets < 0 || input.CurrentAssets < 0 ||
		input.CurrentLiabilities < 0 {
		return domain.RatioResult{}, errors.New("balance sheet figures must be non-negative")
	}

	result := business.RatioAnalysis(
		input.Revenue,
		input.TotalAssets,
		input.CurrentAssets,
		input.CurrentLiabilities,
		input.NetIncome,
	)

	s.log.WithFields(logrus.Fields{
		"revenue":       input.Revenue,
		"current_ratio": result.CurrentRatio,
	}).Debug("calculated financial ratios")

	return result, nil
}
