package finance

import "testing"

func TestLoanPayment_Mortgage(t *testing.T) {

	result := LoanPayment(250000, 0.045, 30)

	if result.MonthlyPayment != 1266.71 {
		t.Errorf("expected monthly payment 1266.71, got %.2f", result.MonthlyPayment)
	}
	if result.TotalPayment != 456016.78 {
		t.Errorf("expected total payment 456016.78, got %.2f", result.TotalPayment)
	}
	if result.TotalInterest != 206016.78 {
		t.Errorf("expected total interest 206016.78, got %.2f", result.TotalInterest)
	}
}

func TestLoanPayment_ZeroRate(t *testing.T) {

	result := LoanPayment(1200, 0, 1)

	if result.MonthlyPayment != 100 {
		t.Errorf("expected straight-line payment 100, got %.2f", result.MonthlyPayment)
	}
	if result.TotalInterest != 0 {
		t.Errorf("expected zero interest, got %.2f", result.TotalInterest)
	}
}

func TestCompoundInterest_MonthlyDefault(t *testing.T) {

	result := CompoundInterest(10000, 0.07, 20, 12)

	if result.FinalAmount != 40387.39 {
		t.Errorf("expected final amount 40387.39, got %.2f", result.FinalAmount)
	}
	if result.InterestEarned != 30387.39 {
		t.Errorf("expected interest earned 30387.39, got %.2f", result.InterestEarned)
	}
	if result.GrowthPercentage != 303.87 {
		t.Errorf("expected growth 303.87, got %.2f", result.GrowthPercentage)
	}
}

func TestCompoundInterest_MonotonicInRateAndYears(t *testing.T) {

	base := CompoundInterest(10000, 0.05, 10, 12)

	higherRate := CompoundInterest(10000, 0.06, 10, 12)
	if higherRate.FinalAmount <= base.FinalAmount {
		t.Errorf("final amount should increase with rate: %.2f vs %.2f",
			higherRate.FinalAmount, base.FinalAmount)
	}

	longerTerm := CompoundInterest(10000, 0.05, 11, 12)
	if longerTerm.FinalAmount <= base.FinalAmount {
		t.Errorf("final amount should increase with years: %.2f vs %.2f",
			longerTerm.FinalAmount, base.FinalAmount)
	}
}

func TestSavingsGoal_WithInterest(t *testing.T) {

	result := SavingsGoal(50000, 500, 0.03)

	if result.MonthsToGoal != 89.4 {
		t.Errorf("expected 89.4 months, got %.1f", result.MonthsToGoal)
	}
	if result.YearsToGoal != 7.4 {
		t.Errorf("expected 7.4 years, got %.1f", result.YearsToGoal)
	}
}

func TestSavingsGoal_ZeroRate(t *testing.T) {

	result := SavingsGoal(12000, 500, 0)

	if result.MonthsToGoal != 24 {
		t.Errorf("expected 24 months, got %.1f", result.MonthsToGoal)
	}
	if result.YearsToGoal != 2 {
		t.Errorf("expected 2 years, got %.1f", result.YearsToGoal)
	}
}
