package engine

import "github.com/realtyaudit/capital-service/internal/models"

// Run executes the full pipeline on one input snapshot: audit, simulation
// and comparison. It is deterministic and allocation-only — safe to call on
// every input change.
func Run(req models.CalculateRequest) models.CalculationResult {
	audit := AuditPortfolio(req.Portfolio)

	params := models.SimulationParams{
		StartCapital:        req.StartCapital.Money(),
		IsAutoPayment:       req.IsAutoPayment,
		MonthlyPaymentLimit: req.MonthlyPaymentLimit.Money(),
		IsFamilyMortgage:    req.IsFamilyMortgage,
	}
	// A blank start capital means "extract everything the audit found".
	if params.StartCapital <= 0 {
		params.StartCapital = audit.Summary.TotalCapital
	}

	sim := Simulate(params)
	baseline := BaselineSeries(req.Portfolio, HorizonYears)

	return models.CalculationResult{
		Audit:      audit,
		Simulation: sim,
		Comparison: BuildComparison(sim, baseline, req.DesiredPassiveIncome.Money()),
	}
}
