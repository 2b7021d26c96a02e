package engine

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/realtyaudit/capital-service/internal/models"
)

// Reference values from a standard repayment mortgage calculator.
func TestAnnuityFactor_ReferencePayments(t *testing.T) {
	tests := []struct {
		principal       float64
		annualRate      float64
		termYears       int
		expectedMonthly float64
	}{
		{200_000, 4, 25, 1055.67},
		{300_000, 5, 30, 1610.46},
		{150_000, 3.5, 20, 869.94},
	}
	for _, tt := range tests {
		got := tt.principal * annuityFactor(monthlyRate(tt.annualRate), tt.termYears*12)
		assert.InDelta(t, tt.expectedMonthly, got, 0.5, "%.0f @ %.1f%% for %dy", tt.principal, tt.annualRate, tt.termYears)
	}
}

func TestAnnuityFactor_ZeroRateIsStraightLine(t *testing.T) {
	assert.InDelta(t, 1.0/360, annuityFactor(0, 360), 1e-12)
}

func TestRemainingAnnuityBalance(t *testing.T) {
	principal := 10_000_000.0
	r := monthlyRate(9)
	term := 240

	// Nothing paid yet: the whole principal is outstanding.
	assert.InDelta(t, principal, remainingAnnuityBalance(principal, r, term, 0), 1e-6)

	// Fully amortized at the end of the term.
	assert.Equal(t, 0.0, remainingAnnuityBalance(principal, r, term, term))

	// Strictly decreasing in between.
	prev := principal
	for months := 12; months <= term; months += 12 {
		cur := remainingAnnuityBalance(principal, r, term, months)
		assert.Less(t, cur, prev, "balance must decrease (month %d)", months)
		prev = cur
	}
}

func TestSimulate_SeriesShape(t *testing.T) {
	result := Simulate(models.SimulationParams{StartCapital: 10_000_000, IsAutoPayment: true})

	require.Len(t, result.YearlyData, HorizonYears+1)
	for i, point := range result.YearlyData {
		assert.Equal(t, i, point.Year)
	}
	require.Len(t, result.Milestones, CyclesCount)
	assert.Equal(t, 5, result.Milestones[0].Year)
	assert.Equal(t, 10, result.Milestones[1].Year)
	assert.Equal(t, 15, result.Milestones[2].Year)
}

func TestSimulate_YearZeroEqualsStartCapital(t *testing.T) {
	result := Simulate(models.SimulationParams{StartCapital: 10_000_000, IsAutoPayment: true})
	assert.Equal(t, 10_000_000.0, result.YearlyData[0].NominalCapital)
	assert.Equal(t, 10_000_000.0, result.YearlyData[0].RealCapital)
}

func TestSimulate_StartCapitalFlooredAtOne(t *testing.T) {
	result := Simulate(models.SimulationParams{StartCapital: 0, IsAutoPayment: true})
	assert.Equal(t, 1.0, result.StartCapital)
	assert.Equal(t, 1.0, result.YearlyData[0].NominalCapital)
}

func TestSimulate_NoBudgetOriginatesNothing(t *testing.T) {
	start := 3_000_000.0
	result := Simulate(models.SimulationParams{
		StartCapital:        start,
		IsAutoPayment:       false,
		MonthlyPaymentLimit: 0,
		IsFamilyMortgage:    false,
	})

	assert.Equal(t, 0, result.FirstCycleLoanCount)
	assert.Equal(t, start, result.FirstCycleUnusedCapital)

	// With no purchases in any cycle the nominal capital never moves; only
	// inflation erodes the real value.
	for _, point := range result.YearlyData {
		assert.Equal(t, start, point.NominalCapital, "year %d", point.Year)
		assert.Equal(t, 0.0, point.PropertyValue, "year %d", point.Year)
		assert.Equal(t, 0.0, point.LoanBalance, "year %d", point.Year)
	}
	wantReal := math.Round(start / math.Pow(1+InflationPercent/100, HorizonYears))
	assert.Equal(t, wantReal, result.YearlyData[HorizonYears].RealCapital)
}

func TestSimulate_AutoPaymentSingleStandardLoan(t *testing.T) {
	// 10M capital, auto-payment, no family program: exactly one standard
	// loan, priced so the whole capital is the 20% down payment.
	result := Simulate(models.SimulationParams{
		StartCapital:  10_000_000,
		IsAutoPayment: true,
	})

	require.Equal(t, 1, result.FirstCycleLoanCount)
	assert.Equal(t, 0.0, result.FirstCycleUnusedCapital)
	assert.InDelta(t, 50_000_000, result.Milestones[0].InitialPropertyValue, 1)

	// 40M principal at the standard 15% over 30 years.
	wantPayment := 40_000_000 * annuityFactor(monthlyRate(RateStandardFirstPercent), 360)
	assert.InDelta(t, wantPayment, result.Milestones[0].MonthlyPayment, 1)
}

func TestSimulate_FamilyThenStandardOrigination(t *testing.T) {
	// Family program first: loan capped at 12M means a 15M purchase with a
	// 3M down payment. The remaining 7M then buys a 35M standard object.
	result := Simulate(models.SimulationParams{
		StartCapital:     10_000_000,
		IsAutoPayment:    true,
		IsFamilyMortgage: true,
	})

	require.Equal(t, 2, result.FirstCycleLoanCount)
	assert.Equal(t, 0.0, result.FirstCycleUnusedCapital)
	assert.InDelta(t, 50_000_000, result.Milestones[0].InitialPropertyValue, 1)
}

func TestOriginateFirstCycle_SharedDepletingPool(t *testing.T) {
	termMonths := MortgageTermYears * 12
	pool := originateFirstCycle(10_000_000, math.Inf(1), true, termMonths)

	require.Len(t, pool.loans, 2)
	family, standard := pool.loans[0], pool.loans[1]

	assert.InDelta(t, 15_000_000, family.Price, 1e-6)
	assert.InDelta(t, FamilyLoanCeiling, family.Principal, 1e-6)
	assert.InDelta(t, 35_000_000, standard.Price, 1e-6)
	assert.InDelta(t, 28_000_000, standard.Principal, 1e-6)
	assert.InDelta(t, 0, pool.capital, 1e-6)
}

func TestOriginateFirstCycle_BudgetCapsTheLoan(t *testing.T) {
	// A 50k/month budget at 15% over 30 years approves far less than the
	// capital could cover; the difference stays as unused capital.
	termMonths := MortgageTermYears * 12
	pool := originateFirstCycle(10_000_000, 50_000, false, termMonths)

	require.Len(t, pool.loans, 1)
	loan := pool.loans[0]
	ann := annuityFactor(monthlyRate(RateStandardFirstPercent), termMonths)
	wantLoan := 50_000 / ann
	assert.InDelta(t, wantLoan, loan.Principal, 1)
	assert.InDelta(t, wantLoan/(1-DownPaymentShare), loan.Price, 1)
	assert.Greater(t, pool.capital, 0.0)
	assert.InDelta(t, 0, pool.budget, 1)
}

func TestSimulate_ReinvestmentDeploysFullCapital(t *testing.T) {
	result := Simulate(models.SimulationParams{StartCapital: 10_000_000, IsAutoPayment: true})

	// Cycle boundaries carry the ending nominal capital into the next
	// cycle as the down payment of a single 9% purchase: each milestone's
	// successor initial property value is five times the carried capital.
	first := result.Milestones[0]
	second := result.Milestones[1]
	assert.InDelta(t, first.NetCapital/DownPaymentShare, second.InitialPropertyValue, 5)
}

func TestSimulate_GrowthFigures(t *testing.T) {
	result := Simulate(models.SimulationParams{StartCapital: 10_000_000, IsAutoPayment: true})

	assert.InDelta(t, result.FinalReal/result.StartCapital, result.GrowthMultiplier, 1e-9)
	wantCAGR := (math.Pow(result.FinalReal/result.StartCapital, 1.0/HorizonYears) - 1) * 100
	assert.InDelta(t, wantCAGR, result.CAGRPercent, 1e-9)
	assert.Greater(t, result.FinalNominal, result.FinalReal)
}

func TestRecommendedFullPayment_FamilyTrancheCapped(t *testing.T) {
	termMonths := MortgageTermYears * 12
	annFamily := annuityFactor(monthlyRate(RateFamilyPercent), termMonths)
	annStandard := annuityFactor(monthlyRate(RateStandardFirstPercent), termMonths)

	// 10M capital: 3M goes to the family tranche (program cap), 7M to the
	// standard one; each tranche borrows 4× its down payment.
	want := 3_000_000/DownPaymentShare*(1-DownPaymentShare)*annFamily +
		7_000_000/DownPaymentShare*(1-DownPaymentShare)*annStandard
	got := recommendedFullPayment(10_000_000, true)
	assert.InDelta(t, want, got, 1e-6)

	// Without the program everything is standard.
	wantStandard := 10_000_000 / DownPaymentShare * (1 - DownPaymentShare) * annStandard
	assert.InDelta(t, wantStandard, recommendedFullPayment(10_000_000, false), 1e-6)
}

func TestSimulate_IsDeterministic(t *testing.T) {
	p := models.SimulationParams{StartCapital: 7_500_000, MonthlyPaymentLimit: 120_000, IsFamilyMortgage: true}
	assert.Equal(t, Simulate(p), Simulate(p))
}
