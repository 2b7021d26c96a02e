// Package engine implements the asset audit and the multi-cycle mortgage
// reinvestment simulation. Every function is pure and total: bad numeric
// input has already been coerced to zero at the decode boundary, and every
// arithmetic edge (zero divisors, non-positive exponent bases) substitutes a
// defined fallback instead of failing.
package engine

// CurrentYear anchors the years-owned calculation.
const CurrentYear = 2026

// Fixed market and regulatory assumptions. The model encodes one Russian
// mortgage-market scenario; these are product constants, not configuration.
const (
	DownPaymentShare = 0.20
	CommissionShare  = 0.035
	TaxRate          = 0.13
	TaxFreeYears     = 5

	InflationPercent    = 6.0
	MarketGrowthPercent = 10.0 // simulated acquisitions
	BasePropertyGrowth  = 0.05 // existing holdings, do-nothing scenario

	RateFamilyPercent        = 6.0
	RateStandardFirstPercent = 15.0
	RateNextCyclesPercent    = 9.0

	FamilyLoanCeiling        = 12_000_000.0
	FamilyDownPaymentCeiling = 3_000_000.0

	MortgageTermYears = 30
	CycleYears        = 5
	CyclesCount       = 3
	HorizonYears      = CycleYears * CyclesCount

	ConservativeYield       = 0.05
	AlternativeYieldPercent = 13.0

	// StrategyMultiplier is the coarse 15-year multiple used for the
	// "inefficient capital future value" headline. It deliberately is not a
	// second simulation run.
	StrategyMultiplier = 15.0
)

// Classifier thresholds, named so boundary tests can target them exactly.
const (
	GrowthTargetPercent = 10.0 // real-estate CAGR target, %/yr
	PeakWindowYears     = 4    // years 4..5 are the price-peak window

	StockRedBelowPercent    = 0.0
	StockOrangeBelowPercent = 5.0
	StockYellowBelowPercent = 10.0

	DepositOrangeBelowPercent = -2.0
	DepositYellowBelowPercent = 0.0

	CashSafeSharePercent   = 20.0
	CashExcessSharePercent = 40.0
)
