package models

// ShowcaseLot is a curated listing shown next to the calculator results.
type ShowcaseLot struct {
	ID          int     `json:"id"`
	Title       string  `json:"title"`
	City        string  `json:"city"`
	District    string  `json:"district"`
	AreaSqM     float64 `json:"area_sq_m"`
	Price       float64 `json:"price"`
	Growth5yPct float64 `json:"growth_5y_pct"`
	FuturePrice float64 `json:"future_price"`
	MinPayment  float64 `json:"min_payment"`
}
