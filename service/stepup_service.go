package service

import (
	"context"
	"fmt"

	"sip-planner/domain"
)

type StepUpService struct{}

func NewStepUpService() *StepUpService {
	return &StepUpService{}
}

// Compare runs the plan as requested and again with a flat SIP, and reports what the
// annual increase adds.
func (s *StepUpService) Compare(
	_ context.Context,
	req domain.CalculationRequest,
) (domain.StepUpComparison, error) {

	if err := validateStruct("compare", req); err != nil {
		return domain.StepUpComparison{}, err
	}

	stepUp, err := Simulate(req.Input())
	if err != nil {
		return domain.StepUpComparison{}, fmt.Errorf("compare step-up: %w", err)
	}

	flatInput := req.Input()
	flatInput.ContributionGrowthRate = 0
	flat, err := Simulate(flatInput)
	if err != nil {
		return domain.StepUpComparison{}, fmt.Errorf("compare flat: %w", err)
	}

	comparison := domain.StepUpComparison{
		Flat:          flat.Summary(),
		StepUp:        stepUp.Summary(),
		ExtraInvested: stepUp.TotalInvested - flat.TotalInvested,
		ExtraValue:    stepUp.FinalValue - flat.FinalValue,
	}
	if stepUp.TotalInvested > 0 {
		comparison.GainMultiple = stepUp.FinalValue / stepUp.TotalInvested
	}

	return comparison, nil
}
