package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/realtyaudit/capital-service/internal/models"
)

func simResultForTest(finalReal float64) models.SimulationResult {
	yearly := make([]models.YearPoint, HorizonYears+1)
	for i := range yearly {
		yearly[i] = models.YearPoint{Year: i, NominalCapital: finalReal, RealCapital: finalReal}
	}
	return models.SimulationResult{YearlyData: yearly, FinalReal: finalReal}
}

func TestTargetCapital(t *testing.T) {
	// 100k/month at a 5% withdrawal rate needs 24M.
	assert.InDelta(t, 24_000_000, TargetCapital(100_000), 1e-6)
	assert.Equal(t, 0.0, TargetCapital(0))
}

func TestBuildComparison_MergesSeriesByYear(t *testing.T) {
	baseline := make([]float64, HorizonYears+1)
	for i := range baseline {
		baseline[i] = float64(1_000_000 + i*10_000)
	}
	cmp := BuildComparison(simResultForTest(5_000_000), baseline, 100_000)

	require.Len(t, cmp.ChartData, HorizonYears+1)
	for i, point := range cmp.ChartData {
		assert.Equal(t, i, point.Year)
		assert.InDelta(t, baseline[i], point.RealCapitalA, 0.5)
	}
	assert.InDelta(t, baseline[HorizonYears], cmp.BaselineFinalReal, 1e-6)
}

func TestBuildComparison_LostProfitNeverNegative(t *testing.T) {
	baseline := make([]float64, HorizonYears+1)
	for i := range baseline {
		baseline[i] = 10_000_000
	}

	// Strategy loses to the baseline: lost profit clamps to zero.
	worse := BuildComparison(simResultForTest(5_000_000), baseline, 100_000)
	assert.Equal(t, 0.0, worse.LostProfit)

	// Strategy wins: the gap is the foregone profit.
	better := BuildComparison(simResultForTest(25_000_000), baseline, 100_000)
	assert.InDelta(t, 15_000_000, better.LostProfit, 1e-6)
}

func TestBuildComparison_ProgressCappedAt100(t *testing.T) {
	baseline := make([]float64, HorizonYears+1)
	for i := range baseline {
		baseline[i] = 30_000_000
	}
	// Target is 24M; both scenarios overshoot.
	cmp := BuildComparison(simResultForTest(48_000_000), baseline, 100_000)
	assert.Equal(t, 100.0, cmp.ActiveProgressPercent)
	assert.Equal(t, 100.0, cmp.CurrentProgressPercent)

	// Halfway there.
	half := BuildComparison(simResultForTest(12_000_000), baseline[:1], 100_000)
	assert.InDelta(t, 50, half.ActiveProgressPercent, 1e-9)
}

func TestBuildComparison_NoGoalMeansZeroProgress(t *testing.T) {
	cmp := BuildComparison(simResultForTest(5_000_000), []float64{1_000_000}, 0)
	assert.Equal(t, 0.0, cmp.ActiveProgressPercent)
	assert.Equal(t, 0.0, cmp.CurrentProgressPercent)
}
