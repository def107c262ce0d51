package domain

// ROIInput describes a return-on-investment query. PeriodYears is optional:
// nil means no annualized figure is wanted. A zero period is not the same as
// an absent one; the service layer rejects explicit zeros.
type ROIInput struct {
	InitialInvestment float64  `json:"initial_investment"`
	FinalValue        float64  `json:"final_value"`
	PeriodYears       *float64 `json:"investment_period_years,omitempty"`
}

type ROIResult struct {
	ROIPercentage           float64  `json:"roi_percentage"`
	AnnualizedROIPercentage *float64 `json:"annualized_roi_percentage,omitempty"`
}

func (r ROIResult) Metrics() []Metric {
	m := []Metric{{"roi_percentage", r.ROIPercentage}}
	if r.AnnualizedROIPercentage != nil {
		m = append(m, Metric{"annualized_roi_percentage", *r.AnnualizedROIPercentage})
	}
	return m
}

type BreakEvenInput struct {
	FixedCosts          float64 `json:"fixed_costs"`
	VariableCostPerUnit float64 `json:"variable_cost_per_unit"`
	PricePerUnit        float64 `json:"price_per_unit"`
}

type BreakEvenResult struct {
	BreakEvenUnits     float64 `json:"break_even_units"`
	BreakEvenRevenue   float64 `json:"break_even_revenue"`
	ContributionMargin float64 `json:"contribution_margin"`
}

func (r BreakEvenResult) Metrics() []Metric {
	return []Metric{
		{"break_even_units", r.BreakEvenUnits},
		{"break_even_revenue", r.BreakEvenRevenue},
		{"contribution_margin", r.ContributionMargin},
	}
}

type ProfitMarginInput struct {
	Revenue    float64 `json:"revenue"`
	TotalCosts float64 `json:"total_costs"`
}

type ProfitMarginResult struct {
	Profit                 float64 `json:"profit"`
	ProfitMarginPercentage float64 `json:"profit_margin_percentage"`
	ProfitRatio            float64 `json:"profit_ratio"`
}

func (r ProfitMarginResult) Metrics() []Metric {
	return []Metric{
		{"profit", r.Profit},
		{"profit_margin_percentage", r.ProfitMarginPercentage},
		{"profit_ratio", r.ProfitRatio},
	}
}

type PaybackInput struct {
	InitialInvestment float64   `json:"initial_investment"`
	AnnualCashFlows   []float64 `json:"annual_cash_flows"`
}

type PaybackResult struct {
	PaybackYears  float64 `json:"payback_years"`
	PaybackMonths float64 `json:"payback_months"`
}

func (r PaybackResult) Metrics() []Metric {
	return []Metric{
		{"payback_years", r.PaybackYears},
		{"payback_months", r.PaybackMonths},
	}
}

type RatioInput struct {
	Revenue            float64 `json:"revenue"`
	TotalAssets        float64 `json:"total_assets"`
	CurrentAssets      float64 `json:"current_assets"`
	CurrentLiabilities float64 `json:"current_liabilities"`
	NetIncome          float64 `json:"net_income"`
}

type RatioResult struct {
	AssetTurnoverRatio        float64 `json:"asset_turnover_ratio"`
	CurrentRatio              float64 `json:"current_ratio"`
	ReturnOnAssetsPercentage  float64 `json:"return_on_assets_percentage"`
	NetProfitMarginPercentage float64 `json:"net_profit_margin_percentage"`
}

func (r RatioResult) Metrics() []Metric {
	return []Metric{
		{"asset_turnover_ratio", r.AssetTurnoverRatio},
		{"current_ratio", r.CurrentRatio},
		{"return_on_assets_percentage", r.ReturnOnAssetsPercentage},
		{"net_profit_margin_percentage", r.NetProfitMarginPercentage},
	}
}
