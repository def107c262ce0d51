package business

import (
	"errors"
	"testing"
)

func TestROI_WithPeriod(t *testing.T) {

	period := 3.0
	result := ROI(100000, 150000, &period)

	if result.ROIPercentage != 50 {
		t.Errorf("expected roi 50, got %.2f", result.ROIPercentage)
	}
	if result.AnnualizedROIPercentage == nil {
		t.Fatal("expected annualized roi to be present")
	}
	if *result.AnnualizedROIPercentage != 14.47 {
		t.Errorf("expected annualized roi 14.47, got %.2f", *result.AnnualizedROIPercentage)
	}
}

func TestROI_NoPeriod(t *testing.T) {

	result := ROI(100000, 150000, nil)

	if result.AnnualizedROIPercentage != nil {
		t.Errorf("expected no annualized roi, got %.2f", *result.AnnualizedROIPercentage)
	}
}

func TestROI_ZeroPeriodSkipsAnnualized(t *testing.T) {

	zero := 0.0
	result := ROI(100000, 150000, &zero)

	if result.AnnualizedROIPercentage != nil {
		t.Errorf("expected no annualized roi for zero period, got %.2f",
			*result.AnnualizedROIPercentage)
	}
}

func TestBreakEvenPoint(t *testing.T) {

	result, err := BreakEvenPoint(50000, 20, 50)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.BreakEvenUnits != 1666.67 {
		t.Errorf("expected 1666.67 units, got %.2f", result.BreakEvenUnits)
	}
	if result.BreakEvenRevenue != 83333.33 {
		t.Errorf("expected revenue 83333.33, got %.2f", result.BreakEvenRevenue)
	}
	if result.ContributionMargin != 30 {
		t.Errorf("expected margin 30, got %.2f", result.ContributionMargin)
	}
}

func TestBreakEvenPoint_NonPositiveMargin(t *testing.T) {

	_, err := BreakEvenPoint(50000, 60, 50)

	var domainErr DomainError
	if !errors.As(err, &domainErr) {
		t.Fatalf("expected DomainError, got %v", err)
	}
	if err != ErrNonPositiveMargin {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestProfitMargin(t *testing.T) {

	result := ProfitMargin(500000, 350000)

	if result.Profit != 150000 {
		t.Errorf("expected profit 150000, got %.2f", result.Profit)
	}
	if result.ProfitMarginPercentage != 30 {
		t.Errorf("expected margin 30, got %.2f", result.ProfitMarginPercentage)
	}
	if result.ProfitRatio != 0.3 {
		t.Errorf("expected ratio 0.3, got %.4f", result.ProfitRatio)
	}
}

func TestProfitMargin_ZeroRevenueGuard(t *testing.T) {

	result := ProfitMargin(0, 100)

	if result.Profit != -100 {
		t.Errorf("expected profit -100, got %.2f", result.Profit)
	}
	if result.ProfitMarginPercentage != 0 {
		t.Errorf("expected guarded margin 0, got %.2f", result.ProfitMarginPercentage)
	}
	if result.ProfitRatio != 0 {
		t.Errorf("expected guarded ratio 0, got %.4f", result.ProfitRatio)
	}
}

func TestProfitMargin_MatchesFormula(t *testing.T) {

	cases := []struct{ revenue, costs float64 }{
		{500000, 350000},
		{100, 40},
		{1234.56, 789.01},
		{75000, 75000},
	}

	for _, c := range cases {
		result := ProfitMargin(c.revenue, c.costs)
		want := round2((c.revenue - c.costs) / c.revenue * 100)
		if result.ProfitMarginPercentage != want {
			t.Errorf("ProfitMargin(%.2f, %.2f): expected margin %.2f, got %.2f",
				c.revenue, c.costs, want, result.ProfitMarginPercentage)
		}
	}
}

func TestPaybackPeriod(t *testing.T) {

	result, err := PaybackPeriod(100000, []float64{25000, 30000, 35000, 40000, 45000})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.PaybackYears != 3.25 {
		t.Errorf("expected 3.25 years, got %.2f", result.PaybackYears)
	}
	if result.PaybackMonths != 39 {
		t.Errorf("expected 39 months, got %.1f", result.PaybackMonths)
	}
}

func TestPaybackPeriod_RecoveredInFirstYear(t *testing.T) {

	result, err := PaybackPeriod(10000, []float64{20000})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.PaybackYears != 0.5 {
		t.Errorf("expected 0.5 years, got %.2f", result.PaybackYears)
	}
	if result.PaybackMonths != 6 {
		t.Errorf("expected 6 months, got %.1f", result.PaybackMonths)
	}
}

func TestPaybackPeriod_NotRecovered(t *testing.T) {

	_, err := PaybackPeriod(100000, []float64{10000, 10000})

	var domainErr DomainError
	if !errors.As(err, &domainErr) {
		t.Fatalf("expected DomainError, got %v", err)
	}
	if err != ErrNotRecovered {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestRatioAnalysis(t *testing.T) {

	result := RatioAnalysis(1000000, 800000, 300000, 150000, 120000)

	if result.AssetTurnoverRatio != 1.25 {
		t.Errorf("expected asset turnover 1.25, got %.2f", result.AssetTurnoverRatio)
	}
	if result.CurrentRatio != 2 {
		t.Errorf("expected current ratio 2, got %.2f", result.CurrentRatio)
	}
	if result.ReturnOnAssetsPercentage != 15 {
		t.Errorf("expected roa 15, got %.2f", result.ReturnOnAssetsPercentage)
	}
	if result.NetProfitMarginPercentage != 12 {
		t.Errorf("expected net margin 12, got %.2f", result.NetProfitMarginPercentage)
	}
}

func TestRatioAnalysis_ZeroDenominatorGuards(t *testing.T) {

	result := RatioAnalysis(0, 0, 300000, 0, 120000)

	if result.AssetTurnoverRatio != 0 ||
		result.CurrentRatio != 0 ||
		result.ReturnOnAssetsPercentage != 0 ||
		result.NetProfitMarginPercentage != 0 {
		t.Errorf("expected all ratios guarded to 0, got %+v", result)
	}
}
