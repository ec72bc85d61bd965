package service

import (
	"errors"
	"fmt"
	"math"

	"sip-planner/domain"
)

// MonthlyRate converts an annual rate into the equivalent monthly compounding rate.
func MonthlyRate(annual float64) float64 {
	return math.Pow(1+annual, 1.0/12) - 1
}

// Simulate runs the month-by-month recurrence of a step-up SIP.
// Every sequence has Months()+1 entries; entry 0 is the state before any growth.
func Simulate(input domain.SimulationInput) (domain.SimulationResult, error) {
	const op = "simulate"

	if input.Years < MinYears {
		return domain.SimulationResult{}, domain.InvalidInput(op, "years",
			fmt.Errorf("must be at least %d, got %d", MinYears, input.Years))
	}
	fields := []struct {
		name  string
		value float64
	}{
		{"annual_rate", input.AnnualRate},
		{"initial_contribution", input.InitialContribution},
		{"contribution_growth_rate", input.ContributionGrowthRate},
		{"lump_sum", input.LumpSum},
	}
	for _, f := range fields {
		if math.IsNaN(f.value) || f.value < 0 {
			return domain.SimulationResult{}, domain.InvalidInput(op, f.name,
				errors.New("must be a non-negative number"))
		}
	}

	monthlyRate := MonthlyRate(input.AnnualRate)
	monthlyIncrease := MonthlyRate(input.ContributionGrowthRate)
	months := input.Months()

	portfolio := make([]float64, months+1)
	invested := make([]float64, months+1)
	contribution := make([]float64, months+1)

	portfolio[0] = input.LumpSum
	invested[0] = input.LumpSum
	contribution[0] = input.InitialContribution

	for i := 1; i <= months; i++ {
		contribution[i] = contribution[i-1] * (1 + monthlyIncrease)
		portfolio[i] = (portfolio[i-1] + contribution[i]) * (1 + monthlyRate)
		invested[i] = invested[i-1] + contribution[i]
	}

	result := domain.SimulationResult{
		Months:            months,
		Portfolio:         portfolio,
		Invested:          invested,
		Contribution:      contribution,
		FinalValue:        portfolio[months],
		TotalInvested:     invested[months],
		FinalContribution: contribution[months],
	}

	// All three sequences are non-decreasing, so checking the last entries is enough.
	finals := []struct {
		name  string
		value float64
	}{
		{"contribution", result.FinalContribution},
		{"invested", result.TotalInvested},
		{"portfolio", result.FinalValue},
	}
	for _, f := range finals {
		if math.IsInf(f.value, 0) || math.IsNaN(f.value) {
			return domain.SimulationResult{}, domain.Overflow(op, f.name)
		}
	}

	return result, nil
}
