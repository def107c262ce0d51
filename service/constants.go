package service

import "time"

const (
	MaxPrincipal  = 1_000_000_000.0 // upper bound for any currency input
	MaxAnnualRate = 10.0            // 1000% as a decimal fraction
	MaxYears      = 100

	DefaultCompoundsPerYear = 12
	MaxCompoundsPerYear     = 366 // daily at most

	MaxCashFlowEntries = 100

	DefaultChartMaxUnits = 1000
	MaxChartUnits        = 100_000

	advisorCacheTTL = 24 * time.Hour
)
