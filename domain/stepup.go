package domain

// StepUpComparison contrasts a plan with its flat (no annual increase) counterpart.
type StepUpComparison struct {
	Flat          Summary `json:"flat"`
	StepUp        Summary `json:"step_up"`
	ExtraInvested float64 `json:"extra_invested"`
	ExtraValue    float64 `json:"extra_value"`
	// GainMultiple is StepUp.FinalValue / StepUp.TotalInvested.
	GainMultiple float64 `json:"gain_multiple"`
}
