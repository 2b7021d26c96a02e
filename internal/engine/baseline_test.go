package engine

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/realtyaudit/capital-service/internal/models"
)

func TestRemainingDeclaredBalance_Guards(t *testing.T) {
	// Any non-positive input means the loan is already gone.
	assert.Equal(t, 0.0, RemainingDeclaredBalance(0, 10, 50_000, 120))
	assert.Equal(t, 0.0, RemainingDeclaredBalance(1_000_000, 0, 50_000, 120))
	assert.Equal(t, 0.0, RemainingDeclaredBalance(1_000_000, -5, 50_000, 120))
	assert.Equal(t, 0.0, RemainingDeclaredBalance(1_000_000, 10, 0, 120))
}

func TestRemainingDeclaredBalance_Decay(t *testing.T) {
	// Zero months passed: the declared balance as-is.
	assert.Equal(t, 1_000_000.0, RemainingDeclaredBalance(1_000_000, 12, 15_000, 0))

	// A payment that outruns interest pays the loan off and stays at zero.
	assert.Equal(t, 0.0, RemainingDeclaredBalance(1_000, 12, 1_000, 2))
	assert.Equal(t, 0.0, RemainingDeclaredBalance(1_000, 12, 1_000, 600))

	// One month at 12%/yr: interest accrues, then the payment comes off.
	got := RemainingDeclaredBalance(1_000_000, 12, 15_000, 1)
	assert.InDelta(t, 1_000_000*1.01-15_000, got, 1e-6)
}

func TestBaselineSeries_CashOnlyStaysFlat(t *testing.T) {
	series := BaselineSeries(models.Portfolio{Cash: 1_000_000}, HorizonYears)

	require.Len(t, series, HorizonYears+1)
	assert.InDelta(t, 1_000_000, series[0], 1e-6)
	for year := 1; year <= HorizonYears; year++ {
		want := 1_000_000 / math.Pow(1+InflationPercent/100, float64(year))
		assert.InDelta(t, want, series[year], 1e-6, "year %d", year)
		assert.Less(t, series[year], series[year-1])
	}
}

func TestBaselineSeries_DepositCompoundsAtOwnRate(t *testing.T) {
	series := BaselineSeries(models.Portfolio{
		Deposits: []models.Deposit{{Amount: 1_000_000, Rate: 10}},
	}, HorizonYears)

	want := 1_000_000 * 1.10 / 1.06
	assert.InDelta(t, want, series[1], 1e-6)
}

func TestBaselineSeries_ClampedAtZero(t *testing.T) {
	// A worthless, heavily mortgaged object at a rate its payment cannot
	// outrun pushes the nominal total negative; the series clamps.
	series := BaselineSeries(models.Portfolio{
		RealEstate: []models.RealEstate{{
			PurchaseYear:    2024,
			CurrentValue:    0,
			HasMortgage:     true,
			LoanBalance:     10_000_000,
			MortgageRate:    20,
			MortgagePayment: 1_000,
		}},
	}, HorizonYears)

	for year, v := range series {
		assert.GreaterOrEqual(t, v, 0.0, "year %d", year)
	}
}

func TestBaselineSeries_RealEstateWithRent(t *testing.T) {
	re := models.RealEstate{
		PurchaseYear:  2021,
		PurchasePrice: 8_000_000,
		CurrentValue:  10_000_000,
		IsRented:      true,
		RentIncome:    40_000,
	}
	series := BaselineSeries(models.Portfolio{RealEstate: []models.RealEstate{re}}, HorizonYears)

	// Year 3 by hand: 5% property growth, 3.5% resale commission, three
	// years of accumulated rent, deflated by three years of inflation.
	value := 10_000_000 * math.Pow(1+BasePropertyGrowth, 3)
	nominal := value - value*CommissionShare + 40_000*12*3
	want := nominal / math.Pow(1+InflationPercent/100, 3)
	assert.InDelta(t, want, series[3], 1e-6)
}
