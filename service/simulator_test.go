package service

import (
	"errors"
	"math"
	"testing"

	"sip-planner/domain"
)

func TestSimulate_SequenceLengths(t *testing.T) {
	for _, years := range []int{1, 2, 10, 50} {
		input := domain.SimulationInput{
			AnnualRate:             0.12,
			Years:                  years,
			InitialContribution:    1000,
			ContributionGrowthRate: 0.05,
			LumpSum:                10000,
		}

		result, err := Simulate(input)
		if err != nil {
			t.Fatalf("years=%d: unexpected error: %v", years, err)
		}

		want := years*12 + 1
		if len(result.Portfolio) != want || len(result.Invested) != want || len(result.Contribution) != want {
			t.Errorf("years=%d: expected lengths %d, got %d/%d/%d", years, want,
				len(result.Portfolio), len(result.Invested), len(result.Contribution))
		}
		if result.Months != years*12 {
			t.Errorf("years=%d: expected %d months, got %d", years, years*12, result.Months)
		}
	}
}

func TestSimulate_Recurrence(t *testing.T) {
	input := domain.SimulationInput{
		AnnualRate:             0.12,
		Years:                  3,
		InitialContribution:    1500,
		ContributionGrowthRate: 0.1,
		LumpSum:                2500,
	}

	result, err := Simulate(input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.Portfolio[0] != 2500 || result.Invested[0] != 2500 || result.Contribution[0] != 1500 {
		t.Fatalf("unexpected month 0 state: %v %v %v",
			result.Portfolio[0], result.Invested[0], result.Contribution[0])
	}

	r := MonthlyRate(input.AnnualRate)
	g := MonthlyRate(input.ContributionGrowthRate)
	for i := 1; i <= result.Months; i++ {
		if got, want := result.Contribution[i], result.Contribution[i-1]*(1+g); got != want {
			t.Fatalf("contribution[%d]: expected %v, got %v", i, want, got)
		}
		if got, want := result.Portfolio[i], (result.Portfolio[i-1]+result.Contribution[i])*(1+r); got != want {
			t.Fatalf("portfolio[%d]: expected %v, got %v", i, want, got)
		}
		if got, want := result.Invested[i], result.Invested[i-1]+result.Contribution[i]; got != want {
			t.Fatalf("invested[%d]: expected %v, got %v", i, want, got)
		}
	}

	last := result.Months
	if result.FinalValue != result.Portfolio[last] ||
		result.TotalInvested != result.Invested[last] ||
		result.FinalContribution != result.Contribution[last] {
		t.Errorf("final values do not match the last sequence entries")
	}
}

func TestSimulate_ReconciliationLaw(t *testing.T) {
	input := domain.SimulationInput{
		AnnualRate:             0.08,
		Years:                  20,
		InitialContribution:    2500,
		ContributionGrowthRate: 0.07,
		LumpSum:                50000,
	}

	result, err := Simulate(input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	sum := input.LumpSum
	for _, c := range result.Contribution[1:] {
		sum += c
	}
	if result.TotalInvested != sum {
		t.Errorf("expected invested %v to equal lump sum plus contributions %v", result.TotalInvested, sum)
	}
}

func TestSimulate_NoGrowthBaseline(t *testing.T) {
	input := domain.SimulationInput{
		Years:               5,
		InitialContribution: 1000,
		LumpSum:             10000,
	}

	result, err := Simulate(input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for i, v := range result.Portfolio {
		want := input.LumpSum + float64(i)*input.InitialContribution
		if v != want {
			t.Fatalf("portfolio[%d]: expected %v, got %v", i, want, v)
		}
	}
}

func TestSimulate_AllZero(t *testing.T) {
	input := domain.SimulationInput{
		AnnualRate:             0.15,
		Years:                  4,
		ContributionGrowthRate: 0.2,
	}

	result, err := Simulate(input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for i := range result.Portfolio {
		if result.Portfolio[i] != 0 || result.Invested[i] != 0 || result.Contribution[i] != 0 {
			t.Fatalf("month %d: expected zeros, got %v %v %v",
				i, result.Portfolio[i], result.Invested[i], result.Contribution[i])
		}
	}
}

func TestSimulate_ContributionMonotonic(t *testing.T) {
	for _, growth := range []float64{0, 0.05, 1} {
		result, err := Simulate(domain.SimulationInput{
			AnnualRate:             0.1,
			Years:                  10,
			InitialContribution:    100,
			ContributionGrowthRate: growth,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		for i := 1; i < len(result.Contribution); i++ {
			if result.Contribution[i] < result.Contribution[i-1] {
				t.Fatalf("growth=%v: contribution decreased at month %d", growth, i)
			}
			if result.Portfolio[i] < 0 || result.Invested[i] < 0 {
				t.Fatalf("growth=%v: negative value at month %d", growth, i)
			}
		}
	}
}

func TestSimulate_OneYearExample(t *testing.T) {
	input := domain.SimulationInput{
		AnnualRate:          0.12,
		Years:               1,
		InitialContribution: 1000,
	}

	r := MonthlyRate(input.AnnualRate)
	if math.Abs(r-0.009489) > 1e-6 {
		t.Fatalf("expected monthly rate ~0.009489, got %v", r)
	}

	result, err := Simulate(input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.Invested[12] != 12000 {
		t.Errorf("expected 12000 invested, got %v", result.Invested[12])
	}

	// Twelve deposits made at the start of each month (annuity due).
	want := 1000 * (math.Pow(1+r, 12) - 1) / r * (1 + r)
	if math.Abs(result.Portfolio[12]-want) > 1e-6 {
		t.Errorf("expected %v, got %v", want, result.Portfolio[12])
	}
	if math.Abs(result.Portfolio[12]-12766.50) > 1 {
		t.Errorf("expected ~12766.50, got %v", result.Portfolio[12])
	}
}

func TestSimulate_Idempotent(t *testing.T) {
	input := domain.SimulationInput{
		AnnualRate:             0.137,
		Years:                  17,
		InitialContribution:    1234.56,
		ContributionGrowthRate: 0.033,
		LumpSum:                98765.43,
	}

	a, err := Simulate(input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b, _ := Simulate(input)

	for i := range a.Portfolio {
		if math.Float64bits(a.Portfolio[i]) != math.Float64bits(b.Portfolio[i]) ||
			math.Float64bits(a.Invested[i]) != math.Float64bits(b.Invested[i]) ||
			math.Float64bits(a.Contribution[i]) != math.Float64bits(b.Contribution[i]) {
			t.Fatalf("month %d differs between runs", i)
		}
	}
}

func TestSimulate_PrefixConsistent(t *testing.T) {
	long, _ := Simulate(domain.SimulationInput{
		AnnualRate: 0.1, Years: 30, InitialContribution: 500, ContributionGrowthRate: 0.05, LumpSum: 1000,
	})
	short, _ := Simulate(domain.SimulationInput{
		AnnualRate: 0.1, Years: 7, InitialContribution: 500, ContributionGrowthRate: 0.05, LumpSum: 1000,
	})

	if long.Portfolio[short.Months] != short.FinalValue {
		t.Errorf("expected 7-year value %v inside 30-year run, got %v",
			short.FinalValue, long.Portfolio[short.Months])
	}
}

func TestSimulate_InvalidInput(t *testing.T) {
	cases := []struct {
		name  string
		input domain.SimulationInput
		field string
	}{
		{"zero years", domain.SimulationInput{Years: 0, InitialContribution: 100}, "years"},
		{"negative years", domain.SimulationInput{Years: -3}, "years"},
		{"negative rate", domain.SimulationInput{Years: 1, AnnualRate: -0.1}, "annual_rate"},
		{"negative contribution", domain.SimulationInput{Years: 1, InitialContribution: -1}, "initial_contribution"},
		{"nan growth", domain.SimulationInput{Years: 1, ContributionGrowthRate: math.NaN()}, "contribution_growth_rate"},
		{"negative lump sum", domain.SimulationInput{Years: 1, LumpSum: -5}, "lump_sum"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Simulate(tc.input)
			if !domain.IsKind(err, domain.KindInvalidInput) {
				t.Fatalf("expected invalid input, got %v", err)
			}
			var oe *domain.OpError
			if errors.As(err, &oe) && oe.Field != tc.field {
				t.Errorf("expected field %q, got %q", tc.field, oe.Field)
			}
		})
	}
}

func TestSimulate_Overflow(t *testing.T) {
	_, err := Simulate(domain.SimulationInput{
		AnnualRate: 1,
		Years:      1,
		LumpSum:    math.MaxFloat64,
	})
	if !domain.IsKind(err, domain.KindOverflow) {
		t.Fatalf("expected overflow, got %v", err)
	}
}
