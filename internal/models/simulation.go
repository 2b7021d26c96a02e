package models

// Loan is one mortgage originated inside a simulation cycle.
type Loan struct {
	Price          float64 `json:"price"`
	Principal      float64 `json:"principal"`
	MonthlyRate    float64 `json:"monthly_rate"`
	MonthlyPayment float64 `json:"monthly_payment"`
	TermMonths     int     `json:"term_months"`
}

// YearPoint is one entry of the simulator's year-indexed capital series.
type YearPoint struct {
	Year           int     `json:"year"`
	NominalCapital float64 `json:"nominal_capital"`
	RealCapital    float64 `json:"real_capital"`
	PropertyValue  float64 `json:"property_value"`
	LoanBalance    float64 `json:"loan_balance"`
}

// Milestone is the cycle-boundary snapshot taken at years 5, 10 and 15.
type Milestone struct {
	Year                 int     `json:"year"`
	InitialPropertyValue float64 `json:"initial_property_value"`
	PropertyValue        float64 `json:"property_value"`
	LoanBalance          float64 `json:"loan_balance"`
	Commission           float64 `json:"commission"`
	NetCapital           float64 `json:"net_capital"`
	RealCapital          float64 `json:"real_capital"`
	MonthlyPayment       float64 `json:"monthly_payment"`
}

// SimulationResult is the full output of the mortgage cycle simulator.
type SimulationResult struct {
	StartCapital            float64     `json:"start_capital"`
	YearlyData              []YearPoint `json:"yearly_data"`
	Milestones              []Milestone `json:"milestones"`
	FinalNominal            float64     `json:"final_nominal"`
	FinalReal               float64     `json:"final_real"`
	GrowthMultiplier        float64     `json:"growth_multiplier"`
	CAGRPercent             float64     `json:"cagr_percent"`
	FirstCycleUnusedCapital float64     `json:"first_cycle_unused_capital"`
	FirstCycleLoanCount     int         `json:"first_cycle_loan_count"`
	// RecommendedFullPayment is the monthly payment that would deploy the
	// entire starting capital as down payments in the first cycle.
	RecommendedFullPayment float64 `json:"recommended_full_payment"`
}

// ChartPoint merges both scenarios for one year: the simulator's figures
// (scenario B) and the do-nothing baseline (scenario A).
type ChartPoint struct {
	YearPoint
	RealCapitalA float64 `json:"real_capital_a"`
}

// Comparison is the head-to-head of the two 15-year futures.
type Comparison struct {
	TargetCapital          float64      `json:"target_capital"`
	ChartData              []ChartPoint `json:"chart_data"`
	BaselineFinalReal      float64      `json:"baseline_final_real"`
	CurrentProgressPercent float64      `json:"current_progress_percent"`
	ActiveProgressPercent  float64      `json:"active_progress_percent"`
	LostProfit             float64      `json:"lost_profit"`
}

// CalculationResult is everything /calculate returns.
type CalculationResult struct {
	Audit      AuditReport      `json:"audit"`
	Simulation SimulationResult `json:"simulation"`
	Comparison Comparison       `json:"comparison"`
}
