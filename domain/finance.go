package domain

// LoanInput describes an amortized loan. AnnualRate is a decimal fraction
// (0.045 means 4.5%), not a percentage.
type LoanInput struct {
	Principal  float64 `json:"principal"`
	AnnualRate float64 `json:"annual_rate"`
	Years      int     `json:"years"`
}

type LoanResult struct {
	MonthlyPayment float64 `json:"monthly_payment"`
	TotalPayment   float64 `json:"total_payment"`
	TotalInterest  float64 `json:"total_interest"`
}

func (r LoanResult) Metrics() []Metric {
	return []Metric{
		{"monthly_payment", r.MonthlyPayment},
		{"total_payment", r.TotalPayment},
		{"total_interest", r.TotalInterest},
	}
}

// CompoundInterestInput describes a compound-growth scenario.
// CompoundsPerYear of 0 means "use the default" (monthly).
type CompoundInterestInput struct {
	Principal        float64 `json:"principal"`
	AnnualRate       float64 `json:"annual_rate"`
	Years            float64 `json:"years"`
	CompoundsPerYear int     `json:"compounds_per_year,omitempty"`
}

type CompoundInterestResult struct {
	FinalAmount      float64 `json:"final_amount"`
	InterestEarned   float64 `json:"interest_earned"`
	GrowthPercentage float64 `json:"growth_percentage"`
}

func (r CompoundInterestResult) Metrics() []Metric {
	return []Metric{
		{"final_amount", r.FinalAmount},
		{"interest_earned", r.InterestEarned},
		{"growth_percentage", r.GrowthPercentage},
	}
}

type SavingsGoalInput struct {
	TargetAmount        float64 `json:"target_amount"`
	MonthlyContribution float64 `json:"monthly_contribution"`
	AnnualRate          float64 `json:"annual_rate"`
}

type SavingsGoalResult struct {
	MonthsToGoal float64 `json:"months_to_goal"`
	YearsToGoal  float64 `json:"years_to_goal"`
}

func (r SavingsGoalResult) Metrics() []Metric {
	return []Metric{
		{"months_to_goal", r.MonthsToGoal},
		{"years_to_goal", r.YearsToGoal},
	}
}
