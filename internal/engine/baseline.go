package engine

import (
	"math"

	"github.com/realtyaudit/capital-service/internal/models"
)

// RemainingDeclaredBalance walks a declared mortgage forward month by month:
// interest accrues on the balance, the fixed payment comes off. The closed
// form does not apply here because the payment is whatever the borrower
// declared, not an annuity derived from the rate. Non-positive inputs mean
// the loan is already gone.
func RemainingDeclaredBalance(balance, annualRatePercent, payment float64, months int) float64 {
	if balance <= 0 || payment <= 0 || annualRatePercent <= 0 {
		return 0
	}
	r := annualRatePercent / 100 / 12
	for i := 0; i < months; i++ {
		balance = balance*(1+r) - payment
		if balance <= 0 {
			return 0
		}
	}
	return balance
}

// baselineNominalAt is the do-nothing portfolio's nominal worth after the
// given number of years: every existing holding keeps compounding under its
// own assumption, mortgages keep amortizing, rent keeps accumulating, cash
// sits still.
func baselineNominalAt(p models.Portfolio, year int) float64 {
	var nominal float64
	for _, re := range p.RealEstate {
		value := re.CurrentValue.Money() * math.Pow(1+BasePropertyGrowth, float64(year))
		var debt float64
		if re.HasMortgage {
			debt = RemainingDeclaredBalance(
				re.LoanBalance.Money(), re.MortgageRate.Float(), re.MortgagePayment.Money(), year*12)
		}
		commission := value * CommissionShare
		accumulatedRent := NetMonthlyRent(re) * 12 * float64(year)
		nominal += value - debt - commission + accumulatedRent
	}
	for _, d := range p.Deposits {
		nominal += d.Amount.Money() * math.Pow(1+d.Rate.Float()/100, float64(year))
	}
	for _, s := range p.Stocks {
		nominal += s.Amount.Money() * math.Pow(1+s.Yield.Float()/100, float64(year))
	}
	nominal += p.Cash.Money()
	return nominal
}

// BaselineSeries projects scenario A: the current asset set left untouched,
// deflated by cumulative inflation. One entry per year, 0..horizonYears,
// clamped at zero so a debt-ridden portfolio does not chart below the axis.
func BaselineSeries(p models.Portfolio, horizonYears int) []float64 {
	series := make([]float64, horizonYears+1)
	for year := 0; year <= horizonYears; year++ {
		real := baselineNominalAt(p, year) / math.Pow(1+InflationPercent/100, float64(year))
		series[year] = math.Max(0, real)
	}
	return series
}
