package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/realtyaudit/capital-service/internal/models"
)

func TestRun_DerivesStartCapitalFromPortfolio(t *testing.T) {
	req := models.CalculateRequest{
		Portfolio:     models.Portfolio{Cash: 4_000_000},
		IsAutoPayment: true,
	}
	result := Run(req)

	// Blank start capital: the simulator seeds from the audited total.
	assert.Equal(t, 4_000_000.0, result.Simulation.StartCapital)
}

func TestRun_ExplicitStartCapitalWins(t *testing.T) {
	req := models.CalculateRequest{
		Portfolio:     models.Portfolio{Cash: 4_000_000},
		StartCapital:  2_000_000,
		IsAutoPayment: true,
	}
	result := Run(req)
	assert.Equal(t, 2_000_000.0, result.Simulation.StartCapital)
}

func TestRun_FullPipeline(t *testing.T) {
	req := models.CalculateRequest{
		Portfolio: models.Portfolio{
			RealEstate: []models.RealEstate{{
				PurchaseYear:  2021,
				PurchasePrice: 6_000_000,
				CurrentValue:  10_000_000,
				IsRented:      true,
				RentIncome:    45_000,
			}},
			Deposits: []models.Deposit{{Amount: 1_500_000, Rate: 16}},
			Stocks:   []models.Stock{{Amount: 800_000, Yield: 11}},
			Cash:     500_000,
		},
		IsAutoPayment:        true,
		DesiredPassiveIncome: 150_000,
	}
	result := Run(req)

	// One audit entry per asset, cash included.
	require.Len(t, result.Audit.Assets, 4)
	assert.Greater(t, result.Audit.Summary.TotalCapital, 0.0)

	require.Len(t, result.Simulation.YearlyData, HorizonYears+1)
	require.Len(t, result.Comparison.ChartData, HorizonYears+1)
	assert.InDelta(t, 36_000_000, result.Comparison.TargetCapital, 1e-6)
	assert.GreaterOrEqual(t, result.Comparison.LostProfit, 0.0)

	// Re-running the same snapshot gives the identical result.
	assert.Equal(t, result, Run(req))
}
