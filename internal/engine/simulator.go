package engine

import (
	"math"

	"github.com/realtyaudit/capital-service/internal/models"
)

// monthlyRate converts an annual percent rate to a monthly decimal rate.
func monthlyRate(annualPercent float64) float64 {
	return annualPercent / 100 / 12
}

// annuityFactor is the monthly payment per unit of principal for an
// annuity loan: r(1+r)^n / ((1+r)^n − 1). A non-positive rate degrades to
// straight-line repayment.
func annuityFactor(r float64, termMonths int) float64 {
	if termMonths <= 0 {
		return 0
	}
	if r <= 0 {
		return 1 / float64(termMonths)
	}
	pow := math.Pow(1+r, float64(termMonths))
	return r * pow / (pow - 1)
}

// remainingAnnuityBalance is the closed-form outstanding principal after
// monthsPassed payments: P × ((1+r)^n − (1+r)^p) / ((1+r)^n − 1). It is
// exactly zero at p == n.
func remainingAnnuityBalance(principal, r float64, termMonths, monthsPassed int) float64 {
	if principal <= 0 || termMonths <= 0 || monthsPassed >= termMonths {
		return 0
	}
	if r <= 0 {
		return principal * (1 - float64(monthsPassed)/float64(termMonths))
	}
	pow := math.Pow(1+r, float64(termMonths))
	return principal * (pow - math.Pow(1+r, float64(monthsPassed))) / (pow - 1)
}

// originationPool is the shared depleting state of one cycle's loan
// origination attempts: whatever capital and payment budget the attempts
// have not consumed yet. Budget is +Inf when auto-payment is enabled.
type originationPool struct {
	capital float64
	budget  float64
	loans   []models.Loan
}

// tryOriginate attempts one purchase at the given rate. The loan is capped
// by the remaining payment budget and, when loanCeiling > 0, by the lending
// program; the price is additionally capped by the remaining capital at a
// 20% down payment. A non-positive resulting price originates nothing.
func (p *originationPool) tryOriginate(annualPercent float64, termMonths int, loanCeiling float64) {
	if p.capital <= 0 || p.budget <= 0 {
		return
	}
	r := monthlyRate(annualPercent)
	ann := annuityFactor(r, termMonths)

	maxLoanByPayment := p.budget / ann
	approvedLoan := maxLoanByPayment
	if loanCeiling > 0 {
		approvedLoan = math.Min(approvedLoan, loanCeiling)
	}
	maxPriceByLoan := approvedLoan / (1 - DownPaymentShare)
	maxPriceByCapital := p.capital / DownPaymentShare
	price := math.Min(maxPriceByLoan, maxPriceByCapital)
	if price <= 0 {
		return
	}

	downPayment := price * DownPaymentShare
	principal := price - downPayment
	payment := principal * ann
	p.loans = append(p.loans, models.Loan{
		Price:          price,
		Principal:      principal,
		MonthlyRate:    r,
		MonthlyPayment: payment,
		TermMonths:     termMonths,
	})
	p.capital -= downPayment
	p.budget -= payment
}

// originateFirstCycle runs the two sequential first-cycle attempts — the
// subsidized family program, then a standard mortgage — against one shared
// depleting pool. The pool is returned so both attempts stay testable.
func originateFirstCycle(capital, budget float64, familyEligible bool, termMonths int) originationPool {
	pool := originationPool{capital: capital, budget: budget}
	if familyEligible {
		pool.tryOriginate(RateFamilyPercent, termMonths, FamilyLoanCeiling)
	}
	pool.tryOriginate(RateStandardFirstPercent, termMonths, 0)
	return pool
}

// originateReinvestment sizes a single purchase so the entire carried
// capital becomes the down payment.
func originateReinvestment(capital float64, canPay bool, termMonths int) originationPool {
	pool := originationPool{capital: capital}
	if capital <= 0 || !canPay {
		return pool
	}
	r := monthlyRate(RateNextCyclesPercent)
	price := capital / DownPaymentShare
	principal := price - capital
	pool.loans = append(pool.loans, models.Loan{
		Price:          price,
		Principal:      principal,
		MonthlyRate:    r,
		MonthlyPayment: principal * annuityFactor(r, termMonths),
		TermMonths:     termMonths,
	})
	pool.capital = 0
	return pool
}

// Simulate runs the reinvestment strategy: CyclesCount sequential cycles of
// CycleYears each, every cycle folding its ending nominal capital into the
// next one's starting capital. The mortgage term shrinks by five years per
// cycle (30, 25, 20) so every loan still amortizes inside the borrower's
// horizon.
func Simulate(p models.SimulationParams) models.SimulationResult {
	// The floor keeps growth-multiple ratios defined; with no capital every
	// non-ratio output stays effectively flat.
	startCapital := p.StartCapital
	if startCapital <= 0 {
		startCapital = 1
	}
	paymentLimit := math.Max(0, p.MonthlyPaymentLimit)

	yearly := []models.YearPoint{{
		Year:           0,
		NominalCapital: startCapital,
		RealCapital:    startCapital,
	}}
	milestones := make([]models.Milestone, 0, CyclesCount)

	result := models.SimulationResult{
		StartCapital:           startCapital,
		RecommendedFullPayment: recommendedFullPayment(startCapital, p.IsFamilyMortgage),
	}

	currentCapital := startCapital
	for cycle := 0; cycle < CyclesCount; cycle++ {
		termMonths := (MortgageTermYears - CycleYears*cycle) * 12

		var pool originationPool
		if cycle == 0 {
			budget := paymentLimit
			if p.IsAutoPayment {
				budget = math.Inf(1)
			}
			pool = originateFirstCycle(currentCapital, budget, p.IsFamilyMortgage, termMonths)
			result.FirstCycleUnusedCapital = math.Max(0, pool.capital)
			result.FirstCycleLoanCount = len(pool.loans)
		} else {
			pool = originateReinvestment(currentCapital, p.IsAutoPayment || paymentLimit > 0, termMonths)
		}

		// Capital that bought nothing earns nothing; it only erodes with
		// inflation through the real-capital divisor.
		unusedCapital := math.Max(0, pool.capital)
		var cyclePayment float64
		for _, loan := range pool.loans {
			cyclePayment += loan.MonthlyPayment
		}

		for year := 1; year <= CycleYears; year++ {
			globalYear := cycle*CycleYears + year
			monthsPassed := year * 12

			var propertyValue, loanBalance, commission, initialValue float64
			for _, loan := range pool.loans {
				value := loan.Price * math.Pow(1+MarketGrowthPercent/100, float64(year))
				propertyValue += value
				loanBalance += remainingAnnuityBalance(loan.Principal, loan.MonthlyRate, loan.TermMonths, monthsPassed)
				commission += value * CommissionShare
				initialValue += loan.Price
			}

			nominal := propertyValue - commission - loanBalance + unusedCapital
			real := nominal / math.Pow(1+InflationPercent/100, float64(globalYear))

			yearly = append(yearly, models.YearPoint{
				Year:           globalYear,
				NominalCapital: math.Round(nominal),
				RealCapital:    math.Round(real),
				PropertyValue:  math.Round(propertyValue),
				LoanBalance:    math.Round(loanBalance),
			})

			if year == CycleYears {
				currentCapital = nominal
				milestones = append(milestones, models.Milestone{
					Year:                 globalYear,
					InitialPropertyValue: math.Round(initialValue),
					PropertyValue:        math.Round(propertyValue),
					LoanBalance:          math.Round(loanBalance),
					Commission:           math.Round(commission),
					NetCapital:           math.Round(nominal),
					RealCapital:          math.Round(real),
					MonthlyPayment:       math.Round(cyclePayment),
				})
			}
		}
	}

	result.YearlyData = yearly
	result.Milestones = milestones
	result.FinalNominal = yearly[len(yearly)-1].NominalCapital
	result.FinalReal = yearly[len(yearly)-1].RealCapital
	result.GrowthMultiplier = result.FinalReal / startCapital
	if ratio := result.FinalReal / startCapital; ratio > 0 {
		result.CAGRPercent = (math.Pow(ratio, 1.0/HorizonYears) - 1) * 100
	}
	return result
}

// recommendedFullPayment is the monthly payment that would put the whole
// starting capital to work as 20% down payments over a full 30-year term:
// the family tranche first (its down payment is capped by the program), the
// remainder at the standard first-cycle rate.
func recommendedFullPayment(capital float64, familyEligible bool) float64 {
	termMonths := MortgageTermYears * 12
	var payment float64
	if familyEligible && capital > 0 {
		ann := annuityFactor(monthlyRate(RateFamilyPercent), termMonths)
		downPayment := math.Min(capital, FamilyDownPaymentCeiling)
		payment += downPayment / DownPaymentShare * (1 - DownPaymentShare) * ann
		capital -= downPayment
	}
	if capital > 0 {
		ann := annuityFactor(monthlyRate(RateStandardFirstPercent), termMonths)
		payment += capital / DownPaymentShare * (1 - DownPaymentShare) * ann
	}
	return payment
}
