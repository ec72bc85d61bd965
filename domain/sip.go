package domain

import "time"

// SimulationInput holds the five scalars of a plan. Rates are fractions (0.12 for 12%).
type SimulationInput struct {
	AnnualRate             float64
	Years                  int
	InitialContribution    float64
	ContributionGrowthRate float64
	LumpSum                float64
}

// Months is the number of compounding periods covered by the plan.
func (in SimulationInput) Months() int {
	return in.Years * 12
}

// SimulationResult is indexed by month 0..Months. Month 0 is the state before any growth.
type SimulationResult struct {
	Months            int       `json:"months"`
	Portfolio         []float64 `json:"portfolio"`
	Invested          []float64 `json:"invested"`
	Contribution      []float64 `json:"contribution"`
	FinalValue        float64   `json:"final_value"`
	TotalInvested     float64   `json:"total_invested"`
	FinalContribution float64   `json:"final_contribution"`
}

// YearsAt returns the elapsed time in years for a month index.
func (r SimulationResult) YearsAt(month int) float64 {
	return float64(month) / 12
}

// CalculationRequest is what the presentation layer captures. Rates are percentages.
type CalculationRequest struct {
	Rate              float64 `json:"rate" form:"rate" validate:"gte=0,lte=100"`
	Years             int     `json:"years" form:"years" validate:"gte=1,lte=50"`
	InitialSIP        float64 `json:"initial_sip" form:"initial_sip" validate:"gte=100,lte=1000000"`
	SIPIncreaseRate   float64 `json:"sip_increase_rate" form:"sip_increase_rate" validate:"gte=0,lte=100"`
	InitialInvestment float64 `json:"initial_investment" form:"initial_investment" validate:"gte=0,lte=10000000"`
}

// Input converts the percentages to fractions.
func (r CalculationRequest) Input() SimulationInput {
	return SimulationInput{
		AnnualRate:             r.Rate / 100,
		Years:                  r.Years,
		InitialContribution:    r.InitialSIP,
		ContributionGrowthRate: r.SIPIncreaseRate / 100,
		LumpSum:                r.InitialInvestment,
	}
}

// DefaultRequest mirrors the values the form opens with.
func DefaultRequest() CalculationRequest {
	return CalculationRequest{
		Rate:              12,
		Years:             10,
		InitialSIP:        1000,
		SIPIncreaseRate:   5,
		InitialInvestment: 10000,
	}
}

type Summary struct {
	FinalValue        float64 `json:"final_value"`
	TotalInvested     float64 `json:"total_invested"`
	FinalContribution float64 `json:"final_contribution"`
}

func (r SimulationResult) Summary() Summary {
	return Summary{
		FinalValue:        r.FinalValue,
		TotalInvested:     r.TotalInvested,
		FinalContribution: r.FinalContribution,
	}
}

type Report struct {
	ID          string             `json:"id"`
	Request     CalculationRequest `json:"request"`
	Result      SimulationResult   `json:"result"`
	Lines       []string           `json:"lines"`
	Note        string             `json:"note"`
	Explanation string             `json:"explanation,omitempty"`
	Cached      bool               `json:"cached"`
}

// Record is one entry of the calculation history.
type Record struct {
	ID        string             `json:"id"`
	CreatedAt time.Time          `json:"created_at"`
	Request   CalculationRequest `json:"request"`
	Summary   Summary            `json:"summary"`
}
