package service

import (
	"context"
	"fmt"

	"sip-planner/domain"
)

type GoalService struct {
	explainer Explainer
}

// NewGoalService creates a GoalService. explainer may be nil.
func NewGoalService(explainer Explainer) *GoalService {
	return &GoalService{explainer: explainer}
}

// RecommendDuration finds the shortest whole number of years after which the portfolio reaches
// the target. The requested duration is ignored; the search covers 1..MaxYears.
func (s *GoalService) RecommendDuration(
	ctx context.Context,
	req domain.GoalRequest,
) (domain.GoalResult, error) {

	req.Years = MaxYears
	if err := validateStruct("recommend_duration", req); err != nil {
		return domain.GoalResult{}, err
	}

	// The recurrence is prefix-consistent, so one run over the whole horizon
	// gives the value at the end of every shorter plan.
	horizon, err := Simulate(req.Input())
	if err != nil {
		return domain.GoalResult{}, fmt.Errorf("recommend duration: %w", err)
	}

	result := domain.GoalResult{
		Target:     req.Target,
		Milestones: make([]domain.Milestone, 0, MaxYears),
	}

	for year := MinYears; year <= MaxYears; year++ {
		month := year * 12
		milestone := domain.Milestone{
			Year:     year,
			Value:    horizon.Portfolio[month],
			Invested: horizon.Invested[month],
		}
		result.Milestones = append(result.Milestones, milestone)
		result.RecommendedYear = year
		result.FinalValue = milestone.Value

		if milestone.Value >= req.Target {
			result.Reached = true
			break
		}
	}

	if s.explainer != nil {
		result.Explanation = s.explainer.ExplainGoal(ctx, req, result)
	}

	return result, nil
}
