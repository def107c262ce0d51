package main

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"

	"finconsult/chart"
	"finconsult/domain"
	"finconsult/report"
	"finconsult/repository"
	"finconsult/service"
)

// runDemo walks the sample scenarios through every analysis and writes the
// three sample charts as report files.
func runDemo(
	finance *service.FinanceService,
	business *service.BusinessService,
	store repository.ReportStore,
	logger *logrus.Logger,
) {
	printHeader("FINANCIAL CALCULATIONS DEMO")

	fmt.Println("\nScenario: $250,000 home loan at 4.5% for 30 years")
	loan, err := finance.CalculateLoanPayment(domain.LoanInput{
		Principal: 250000, AnnualRate: 0.045, Years: 30,
	})
	printOutcome("Loan Payment", loan.Metrics(), err)

	fmt.Println("\nScenario: $10,000 invested at 7% annually for 20 years")
	investment, err := finance.CalculateCompoundInterest(domain.CompoundInterestInput{
		Principal: 10000, AnnualRate: 0.07, Years: 20,
	})
	printOutcome("Compound Interest", investment.Metrics(), err)

	fmt.Println("\nScenario: Save $50,000 with $500 monthly at 3% annual interest")
	savings, err := finance.CalculateSavingsGoal(domain.SavingsGoalInput{
		TargetAmount: 50000, MonthlyContribution: 500, AnnualRate: 0.03,
	})
	printOutcome("Savings Goal", savings.Metrics(), err)

	printHeader("BUSINESS CONSULTING ANALYSIS DEMO")

	fmt.Println("\nScenario: $100,000 investment returning $150,000 over 3 years")
	period := 3.0
	roi, err := business.CalculateROI(domain.ROIInput{
		InitialInvestment: 100000, FinalValue: 150000, PeriodYears: &period,
	})
	printOutcome("ROI Analysis", roi.Metrics(), err)

	fmt.Println("\nScenario: Fixed costs $50,000, Variable cost $20/unit, Price $50/unit")
	breakEven, err := business.CalculateBreakEvenPoint(domain.BreakEvenInput{
		FixedCosts: 50000, VariableCostPerUnit: 20, PricePerUnit: 50,
	})
	printOutcome("Break-Even Analysis", breakEven.Metrics(), err)

	fmt.Println("\nScenario: Revenue $500,000, Total costs $350,000")
	profit, err := business.CalculateProfitMargin(domain.ProfitMarginInput{
		Revenue: 500000, TotalCosts: 350000,
	})
	printOutcome("Profit Margin Analysis", profit.Metrics(), err)

	fmt.Println("\nScenario: $100,000 investment with annual cash flows")
	payback, err := business.CalculatePaybackPeriod(domain.PaybackInput{
		InitialInvestment: 100000,
		AnnualCashFlows:   []float64{25000, 30000, 35000, 40000, 45000},
	})
	printOutcome("Payback Period Analysis", payback.Metrics(), err)

	fmt.Println("\nScenario: Company financial data analysis")
	ratios, err := business.CalculateRatios(domain.RatioInput{
		Revenue:            1000000,
		TotalAssets:        800000,
		CurrentAssets:      300000,
		CurrentLiabilities: 150000,
		NetIncome:          120000,
	})
	printOutcome("Financial Ratio Analysis", ratios.Metrics(), err)

	printHeader("GENERATING SAMPLE REPORTS")

	saveChart(store, logger, "loan-amortization", chart.LoanAmortization(250000, 0.045, 30))
	saveChart(store, logger, "investment-growth", chart.InvestmentGrowth(10000, 0.07, 20))

	breakEvenChart, err := chart.BreakEvenAnalysis(50000, 20, 50, 2000)
	if err != nil {
		logger.Errorf("Failed to build break-even chart: %v", err)
	} else {
		saveChart(store, logger, "break-even", breakEvenChart)
	}
}

func printHeader(title string) {
	fmt.Println("\n" + strings.Repeat("=", 60))
	fmt.Println(" " + title)
	fmt.Println(strings.Repeat("=", 60))
}

func printOutcome(title string, metrics []domain.Metric, err error) {
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	fmt.Print(report.Render(title, metrics))
}

func saveChart(store repository.ReportStore, logger *logrus.Logger, name string, config *domain.ChartConfig) {
	path, err := store.Save(name, config)
	if err != nil {
		logger.Errorf("Failed to save %s chart: %v", name, err)
		return
	}
	fmt.Printf("Chart saved to %s\n", path)
}
