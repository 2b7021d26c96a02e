package engine

import (
	"math"

	"github.com/realtyaudit/capital-service/internal/models"
)

// TargetCapital is the capital that would sustain the desired monthly
// passive income at the conservative withdrawal yield.
func TargetCapital(desiredMonthlyIncome float64) float64 {
	return desiredMonthlyIncome * 12 / ConservativeYield
}

// progressToGoal is capped at 100 and zero when no goal was set.
func progressToGoal(finalReal, target float64) float64 {
	if target <= 0 {
		return 0
	}
	return math.Min(100, finalReal/target*100)
}

// BuildComparison merges the simulator's series (scenario B) with the
// do-nothing baseline (scenario A) year by year and derives the summary
// scalars the result screen needs.
func BuildComparison(sim models.SimulationResult, baseline []float64, desiredMonthlyIncome float64) models.Comparison {
	chart := make([]models.ChartPoint, 0, len(sim.YearlyData))
	for _, point := range sim.YearlyData {
		var realA float64
		if point.Year < len(baseline) {
			realA = math.Round(baseline[point.Year])
		}
		chart = append(chart, models.ChartPoint{YearPoint: point, RealCapitalA: realA})
	}

	var baselineFinal float64
	if len(baseline) > 0 {
		baselineFinal = baseline[len(baseline)-1]
	}

	target := TargetCapital(desiredMonthlyIncome)
	return models.Comparison{
		TargetCapital:          target,
		ChartData:              chart,
		BaselineFinalReal:      baselineFinal,
		CurrentProgressPercent: progressToGoal(baselineFinal, target),
		ActiveProgressPercent:  progressToGoal(sim.FinalReal, target),
		LostProfit:             math.Max(0, sim.FinalReal-baselineFinal),
	}
}
