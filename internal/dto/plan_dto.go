package dto

// ActionPlan is the structured plan generated from a finished answer.
// Created on demand, never mutated afterwards.
type ActionPlan struct {
	Summary  string       `json:"summary"`
	Actions  []ActionItem `json:"actions"`
	Workflow Workflow     `json:"workflow"`
}

type ActionItem struct {
	ID            string `json:"id"`
	Title         string `json:"title"`
	Description   string `json:"description"`
	Agent         string `json:"agent"`
	Priority      string `json:"priority"` // high | medium | low
	EstimatedTime string `json:"estimatedTime"`
}

type Workflow struct {
	Steps []WorkflowStep `json:"steps"`
}

// WorkflowStep dependencies are agent names, not step ids.
type WorkflowStep struct {
	Agent        string   `json:"agent"`
	Action       string   `json:"action"`
	Dependencies []string `json:"dependencies"`
}

type GeneratePlanRequest struct {
	Answer string `json:"answer" validate:"required"`
}

type GeneratePlanResponse struct {
	Plan *ActionPlan `json:"plan"`
}
