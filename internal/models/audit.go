package models

// Level grades the capital efficiency of a single asset, red being the most
// urgent.
type Level string

const (
	LevelRed    Level = "red"
	LevelOrange Level = "orange"
	LevelYellow Level = "yellow"
	LevelGreen  Level = "green"
)

// Inefficient reports whether capital held in an asset at this level counts
// toward the portfolio's inefficient-capital total.
func (l Level) Inefficient() bool {
	return l == LevelRed || l == LevelOrange
}

// Verdict is the classifier's answer for one asset.
type Verdict struct {
	Level   Level  `json:"level"`
	Status  string `json:"status"`
	Comment string `json:"comment"`
	// LostIncome is the yearly income foregone versus the alternative
	// benchmark yield, zero when the asset beats the benchmark.
	LostIncome float64 `json:"lost_income,omitempty"`
}

// ValuationResult carries the normalized metrics derived from one asset
// record. Only the fields that apply to the asset class are set.
type ValuationResult struct {
	YearsOwned          int     `json:"years_owned,omitempty"`
	Capital             float64 `json:"capital"`
	CAGRPercent         float64 `json:"cagr_percent,omitempty"`
	ROEPercent          float64 `json:"roe_percent,omitempty"`
	NominalYieldPercent float64 `json:"nominal_yield_percent"`
	RealYieldPercent    float64 `json:"real_yield_percent"`
	SharePercent        float64 `json:"share_percent,omitempty"`
}

// AssetAudit pairs one asset with its valuation and verdict.
type AssetAudit struct {
	Class     string          `json:"class"`
	Index     int             `json:"index"`
	Valuation ValuationResult `json:"valuation"`
	Verdict   Verdict         `json:"verdict"`
}

// Asset class labels used in AssetAudit.Class.
const (
	ClassRealEstate = "real_estate"
	ClassDeposit    = "deposit"
	ClassStock      = "stock"
	ClassCash       = "cash"
)

// PortfolioSummary aggregates the audit across the whole portfolio.
type PortfolioSummary struct {
	TotalCapital            float64 `json:"total_capital"`
	InefficientCapital      float64 `json:"inefficient_capital"`
	AverageRealYieldPercent float64 `json:"average_real_yield_percent"`
	PotentialAnnualIncome   float64 `json:"potential_annual_income"`
	InefficientFutureValue  float64 `json:"inefficient_future_value"`
	TotalLostIncome         float64 `json:"total_lost_income"`
}

// AuditReport is the full audit output: per-asset verdicts plus totals.
type AuditReport struct {
	Assets  []AssetAudit     `json:"assets"`
	Summary PortfolioSummary `json:"summary"`
}
