// Package chart recomputes per-period series for the three standard reports
// and packages them as render-ready ChartConfig values. The series math is
// deliberately independent of the scalar calculators: a chart needs the
// whole period-by-period breakdown, not just the summary figures.
package chart

import (
	"fmt"
	"math"
	"strconv"

	"finconsult/business"
	"finconsult/domain"
)

const (
	colorPrincipal = "#4F46E5"
	colorInterest  = "#F59E0B"
	colorGrowth    = "#10B981"
	colorBaseline  = "#EF4444"
	colorCosts     = "#EF4444"
	colorRevenue   = "#4F46E5"
)

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// LoanAmortization builds the month-by-month principal/interest split of an
// amortized loan as two stacked series.
func LoanAmortization(principal, annualRate float64, years int) *domain.ChartConfig {
	monthlyRate := annualRate / 12
	numPayments := years * 12

	var payment float64
	if monthlyRate == 0 {
		payment = principal / float64(numPayments)
	} else {
		factor := math.Pow(1+monthlyRate, float64(numPayments))
		payment = principal * (monthlyRate * factor) / (factor - 1)
	}

	principalSeries := make([]domain.ChartPoint, 0, numPayments)
	interestSeries := make([]domain.ChartPoint, 0, numPayments)

	balance := principal
	for month := 1; month <= numPayments; month++ {
		interest := balance * monthlyRate
		principalPaid := payment - interest
		balance -= principalPaid

		label := strconv.Itoa(month)
		principalSeries = append(principalSeries, domain.ChartPoint{Label: label, Value: round2(principalPaid)})
		interestSeries = append(interestSeries, domain.ChartPoint{Label: label, Value: round2(interest)})
	}

	return &domain.ChartConfig{
		ChartType: "stacked_area",
		Title: fmt.Sprintf("Loan Amortization Schedule: $%.2f at %.1f%% for %d years",
			principal, annualRate*100, years),
		XAxis:      "Month",
		YAxis:      "Payment Amount ($)",
		ShowLegend: true,
		ShowGrid:   true,
		Series: []domain.ChartSeries{
			{Name: "Principal Payment", Data: principalSeries, Color: colorPrincipal},
			{Name: "Interest Payment", Data: interestSeries, Color: colorInterest},
		},
	}
}

// InvestmentGrowth builds the month-0..n compounded value curve plus a flat
// baseline at the initial investment.
func InvestmentGrowth(principal, annualRate float64, years int) *domain.ChartConfig {
	numMonths := years * 12

	growth := make([]domain.ChartPoint, 0, numMonths+1)
	baseline := make([]domain.ChartPoint, 0, numMonths+1)

	for month := 0; month <= numMonths; month++ {
		label := strconv.Itoa(month)
		value := principal * math.Pow(1+annualRate/12, float64(month))
		growth = append(growth, domain.ChartPoint{Label: label, Value: round2(value)})
		baseline = append(baseline, domain.ChartPoint{Label: label, Value: round2(principal)})
	}

	return &domain.ChartConfig{
		ChartType: "line",
		Title: fmt.Sprintf("Investment Growth Over Time: $%.2f at %.1f%% annual rate",
			principal, annualRate*100),
		XAxis:      "Month",
		YAxis:      "Investment Value ($)",
		ShowLegend: true,
		ShowGrid:   true,
		Series: []domain.ChartSeries{
			{Name: "Investment Value", Data: growth, Color: colorGrowth},
			{Name: "Initial Investment", Data: baseline, Color: colorBaseline},
		},
	}
}

// BreakEvenAnalysis builds total-cost and total-revenue lines over a unit
// range, sampled at roughly a hundred points. The break-even point itself is
// carried in the title. Reports business.ErrNonPositiveMargin when the price
// does not exceed the variable cost.
func BreakEvenAnalysis(fixedCosts, variableCostPerUnit, pricePerUnit float64, maxUnits int) (*domain.ChartConfig, error) {
	breakEven, err := business.BreakEvenPoint(fixedCosts, variableCostPerUnit, pricePerUnit)
	if err != nil {
		return nil, err
	}

	step := maxUnits / 100
	if step < 1 {
		step = 1
	}

	costs := []domain.ChartPoint{}
	revenue := []domain.ChartPoint{}
	for units := 0; units <= maxUnits; units += step {
		label := strconv.Itoa(units)
		u := float64(units)
		costs = append(costs, domain.ChartPoint{Label: label, Value: round2(fixedCosts + variableCostPerUnit*u)})
		revenue = append(revenue, domain.ChartPoint{Label: label, Value: round2(pricePerUnit * u)})
	}

	return &domain.ChartConfig{
		ChartType: "line",
		Title: fmt.Sprintf("Break-Even Analysis: %.0f units / $%.2f",
			breakEven.BreakEvenUnits, breakEven.BreakEvenRevenue),
		XAxis:      "Units Sold",
		YAxis:      "Amount ($)",
		ShowLegend: true,
		ShowGrid:   true,
		Series: []domain.ChartSeries{
			{Name: "Total Costs", Data: costs, Color: colorCosts},
			{Name: "Total Revenue", Data: revenue, Color: colorRevenue},
		},
	}, nil
}
