package engine

import "github.com/realtyaudit/capital-service/internal/models"

// AuditPortfolio values every asset, classifies it, and rolls the results up
// into portfolio totals.
//
// The pipeline is explicitly two-phase: all non-cash assets are valued and
// summed first, because the cash verdict depends on cash's share of the
// total. Reordering this silently breaks the cash audit.
func AuditPortfolio(p models.Portfolio) models.AuditReport {
	report := models.AuditReport{Assets: []models.AssetAudit{}}

	// Phase 1: value everything and build the portfolio total.
	valuations := make([]models.ValuationResult, len(p.RealEstate))
	var totalCapital float64
	for i, re := range p.RealEstate {
		valuations[i] = ValueRealEstate(re, CurrentYear)
		totalCapital += valuations[i].Capital
	}
	for _, d := range p.Deposits {
		totalCapital += d.Amount.Money()
	}
	for _, s := range p.Stocks {
		totalCapital += s.Amount.Money()
	}
	cash := p.Cash.Money()
	totalCapital += cash

	// Phase 2: classify, accumulate inefficiency and income figures.
	var (
		inefficientCapital float64
		totalRealIncome    float64
		totalLostIncome    float64
	)

	for i, re := range p.RealEstate {
		v := valuations[i]
		verdict := ClassifyRealEstate(RealEstateMetrics{
			YearsOwned:          v.YearsOwned,
			CAGRPercent:         v.CAGRPercent,
			ROEPercent:          v.ROEPercent,
			IsUnderConstruction: re.IsUnderConstruction,
			IsRented:            re.IsRented,
		})
		verdict.LostIncome = LostAlternativeIncome(v.NominalYieldPercent, v.Capital)
		if verdict.Level.Inefficient() {
			inefficientCapital += v.Capital
		}
		totalRealIncome += v.Capital * v.RealYieldPercent / 100
		totalLostIncome += verdict.LostIncome
		report.Assets = append(report.Assets, models.AssetAudit{
			Class: models.ClassRealEstate, Index: i, Valuation: v, Verdict: verdict,
		})
	}

	for i, d := range p.Deposits {
		v := ValueDeposit(d)
		verdict := ClassifyDeposit(v.RealYieldPercent)
		verdict.LostIncome = LostAlternativeIncome(v.NominalYieldPercent, v.Capital)
		// A yellow deposit that still loses to inflation ties up capital too.
		if verdict.Level.Inefficient() || v.RealYieldPercent < 0 {
			inefficientCapital += v.Capital
		}
		totalRealIncome += v.Capital * v.RealYieldPercent / 100
		totalLostIncome += verdict.LostIncome
		report.Assets = append(report.Assets, models.AssetAudit{
			Class: models.ClassDeposit, Index: i, Valuation: v, Verdict: verdict,
		})
	}

	for i, s := range p.Stocks {
		v := ValueStock(s)
		verdict := ClassifyStock(v.RealYieldPercent)
		verdict.LostIncome = LostAlternativeIncome(v.NominalYieldPercent, v.Capital)
		if verdict.Level.Inefficient() {
			inefficientCapital += v.Capital
		}
		totalRealIncome += v.Capital * v.RealYieldPercent / 100
		totalLostIncome += verdict.LostIncome
		report.Assets = append(report.Assets, models.AssetAudit{
			Class: models.ClassStock, Index: i, Valuation: v, Verdict: verdict,
		})
	}

	if cash > 0 {
		v := ValueCash(cash, totalCapital)
		verdict := ClassifyCash(v.SharePercent)
		verdict.LostIncome = LostAlternativeIncome(0, cash)
		if v.SharePercent > CashSafeSharePercent {
			// Only the excess over the safe share counts as inefficient.
			inefficientCapital += cash - totalCapital*CashSafeSharePercent/100
		}
		totalRealIncome += cash * v.RealYieldPercent / 100
		totalLostIncome += verdict.LostIncome
		report.Assets = append(report.Assets, models.AssetAudit{
			Class: models.ClassCash, Valuation: v, Verdict: verdict,
		})
	}

	var averageRealYield float64
	if totalCapital > 0 {
		averageRealYield = totalRealIncome / totalCapital * 100
	}

	report.Summary = models.PortfolioSummary{
		TotalCapital:            totalCapital,
		InefficientCapital:      inefficientCapital,
		AverageRealYieldPercent: averageRealYield,
		PotentialAnnualIncome:   totalCapital * AlternativeYieldPercent / 100,
		InefficientFutureValue:  inefficientCapital * StrategyMultiplier,
		TotalLostIncome:         totalLostIncome,
	}
	return report
}
