package models

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
)

// FlexNumber is a float64 that tolerates sloppy form input: JSON numbers,
// numeric strings, blank strings, null and garbage all decode without error.
// Anything unparseable becomes 0.
type FlexNumber float64

// UnmarshalJSON implements json.Unmarshaler.
func (f *FlexNumber) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || string(data) == "null" {
		*f = 0
		return nil
	}
	s := string(data)
	if s[0] == '"' {
		if err := json.Unmarshal(data, &s); err != nil {
			*f = 0
			return nil
		}
		s = strings.TrimSpace(strings.ReplaceAll(s, ",", "."))
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		*f = 0
		return nil
	}
	*f = FlexNumber(v)
	return nil
}

// MarshalJSON implements json.Marshaler.
func (f FlexNumber) MarshalJSON() ([]byte, error) {
	return json.Marshal(float64(f))
}

// Money returns the value coerced to a non-negative amount.
func (f FlexNumber) Money() float64 {
	if f < 0 {
		return 0
	}
	return float64(f)
}

// Float returns the raw value (rates may legitimately be negative).
func (f FlexNumber) Float() float64 {
	return float64(f)
}

// RealEstate describes one real-estate holding as submitted by the form.
type RealEstate struct {
	PurchaseYear        FlexNumber `json:"purchase_year"`
	PurchasePrice       FlexNumber `json:"purchase_price"`
	CurrentValue        FlexNumber `json:"current_value"`
	HasMortgage         bool       `json:"has_mortgage"`
	LoanBalance         FlexNumber `json:"loan_balance"`
	MortgageRate        FlexNumber `json:"mortgage_rate"`
	MortgagePayment     FlexNumber `json:"mortgage_payment"`
	IsUnderConstruction bool       `json:"is_under_construction"`
	IsRented            bool       `json:"is_rented"`
	RentIncome          FlexNumber `json:"rent_income"`
}

// Deposit describes a bank deposit.
type Deposit struct {
	Amount FlexNumber `json:"amount"`
	Rate   FlexNumber `json:"rate"`
}

// Stock describes an equity holding.
type Stock struct {
	Amount FlexNumber `json:"amount"`
	Yield  FlexNumber `json:"yield"`
}

// Portfolio is the full asset snapshot the engine works from.
type Portfolio struct {
	RealEstate []RealEstate `json:"real_estate"`
	Deposits   []Deposit    `json:"deposits"`
	Stocks     []Stock      `json:"stocks"`
	Cash       FlexNumber   `json:"cash"`
}

// SimulationParams are the reinvestment strategy knobs.
type SimulationParams struct {
	StartCapital        float64
	IsAutoPayment       bool
	MonthlyPaymentLimit float64
	IsFamilyMortgage    bool
}

// CalculateRequest is the /calculate payload: the portfolio plus the
// strategy parameters. A blank start capital means "use the portfolio's
// extractable equity".
type CalculateRequest struct {
	Portfolio
	StartCapital         FlexNumber `json:"start_capital"`
	IsAutoPayment        bool       `json:"is_auto_payment"`
	MonthlyPaymentLimit  FlexNumber `json:"monthly_payment_limit"`
	IsFamilyMortgage     bool       `json:"is_family_mortgage"`
	DesiredPassiveIncome FlexNumber `json:"desired_passive_income"`
}
