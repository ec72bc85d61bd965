package domain

type GoalRequest struct {
	CalculationRequest
	Target float64 `json:"target" form:"target" validate:"gt=0"`
}

type Milestone struct {
	Year     int     `json:"year"`
	Value    float64 `json:"value"`
	Invested float64 `json:"invested"`
}

type GoalResult struct {
	Target          float64     `json:"target"`
	Reached         bool        `json:"reached"`
	RecommendedYear int         `json:"recommended_years"`
	FinalValue      float64     `json:"final_value"`
	Milestones      []Milestone `json:"milestones"`
	Explanation     string      `json:"explanation,omitempty"`
}
