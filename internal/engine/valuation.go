package engine

import (
	"math"

	"github.com/realtyaudit/capital-service/internal/models"
)

// ValueRealEstate derives the normalized metrics for one real-estate record.
// Equity is what a sale today would free up: current value minus the active
// loan balance, the resale commission and capital-gains tax inside the
// five-year exemption window, clamped at zero.
func ValueRealEstate(re models.RealEstate, currentYear int) models.ValuationResult {
	purchaseYear := int(re.PurchaseYear.Float())
	if purchaseYear == 0 {
		purchaseYear = currentYear
	}
	yearsOwned := currentYear - purchaseYear
	if yearsOwned < 1 {
		yearsOwned = 1
	}

	currentValue := re.CurrentValue.Money()
	purchasePrice := re.PurchasePrice.Money()

	commission := currentValue * CommissionShare
	var tax float64
	if yearsOwned < TaxFreeYears && currentValue > purchasePrice {
		tax = (currentValue - purchasePrice) * TaxRate
	}
	var activeLoanBalance float64
	if re.HasMortgage {
		activeLoanBalance = re.LoanBalance.Money()
	}
	equity := math.Max(0, currentValue-activeLoanBalance-commission-tax)

	var cagr float64
	if purchasePrice > 0 && currentValue > 0 {
		cagr = (math.Pow(currentValue/purchasePrice, 1/float64(yearsOwned)) - 1) * 100
	}

	var roe float64
	if equity > 0 {
		roe = NetMonthlyRent(re) * 12 / equity * 100
	}

	nominal := cagr + roe
	return models.ValuationResult{
		YearsOwned:          yearsOwned,
		Capital:             equity,
		CAGRPercent:         cagr,
		ROEPercent:          roe,
		NominalYieldPercent: nominal,
		RealYieldPercent:    nominal - InflationPercent,
	}
}

// NetMonthlyRent is rental income (only for rented, finished objects) minus
// the mortgage payment. May be negative.
func NetMonthlyRent(re models.RealEstate) float64 {
	var rent float64
	if re.IsRented && !re.IsUnderConstruction {
		rent = re.RentIncome.Money()
	}
	var payment float64
	if re.HasMortgage {
		payment = re.MortgagePayment.Money()
	}
	return rent - payment
}

// ValueDeposit passes the principal through and deflates the declared rate.
func ValueDeposit(d models.Deposit) models.ValuationResult {
	rate := d.Rate.Float()
	return models.ValuationResult{
		Capital:             d.Amount.Money(),
		NominalYieldPercent: rate,
		RealYieldPercent:    rate - InflationPercent,
	}
}

// ValueStock passes the amount through and deflates the declared yield.
func ValueStock(s models.Stock) models.ValuationResult {
	yield := s.Yield.Float()
	return models.ValuationResult{
		Capital:             s.Amount.Money(),
		NominalYieldPercent: yield,
		RealYieldPercent:    yield - InflationPercent,
	}
}

// ValueCash needs the portfolio total, which is why cash is valued in a
// second pass after every other asset has been summed.
func ValueCash(cash, totalCapital float64) models.ValuationResult {
	var share float64
	if totalCapital > 0 {
		share = cash / totalCapital * 100
	}
	return models.ValuationResult{
		Capital:             cash,
		NominalYieldPercent: 0,
		RealYieldPercent:    -InflationPercent,
		SharePercent:        share,
	}
}
