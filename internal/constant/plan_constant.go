package constant

import "zeus-ai-be/internal/dto"

// CannedActionPlan is the fixed two-step plan returned whenever the plan
// generator cannot get valid JSON out of the model. Returned as a fresh
// value each time so callers can never share slices.
func CannedActionPlan() *dto.ActionPlan {
	return &dto.ActionPlan{
		Summary: "Based on the analysis, here are the recommended action items to address the findings.",
		Actions: []dto.ActionItem{
			{
				ID:            "1",
				Title:         "Review Competitor Fabric Innovations",
				Description:   "Analyze competitor fabric technologies and identify opportunities for improvement.",
				Agent:         "Research Agent",
				Priority:      "high",
				EstimatedTime: "2-3 hours",
			},
			{
				ID:            "2",
				Title:         "Develop Response Strategy",
				Description:   "Create a strategic plan to respond to competitor innovations.",
				Agent:         "Strategy Agent",
				Priority:      "high",
				EstimatedTime: "4-6 hours",
			},
		},
		Workflow: dto.Workflow{
			Steps: []dto.WorkflowStep{
				{Agent: "Research Agent", Action: "Gather competitor data", Dependencies: []string{}},
				{Agent: "Strategy Agent", Action: "Develop response plan", Dependencies: []string{"Research Agent"}},
			},
		},
	}
}
