// Package plan converts a finished answer into a structured action plan.
package plan

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"zeus-ai-be/internal/constant"
	"zeus-ai-be/internal/dto"
	"zeus-ai-be/pkg/llm"
	"zeus-ai-be/pkg/utils"
)

type Generator struct {
	llmProvider llm.LLMProvider
	logger      *log.Logger
}

func NewGenerator(llmProvider llm.LLMProvider, logger *log.Logger) *Generator {
	return &Generator{
		llmProvider: llmProvider,
		logger:      logger,
	}
}

// Generate asks the model for a strict-JSON plan. On any failure
// (transport, no JSON in the response, decode error) it returns the canned
// two-action plan so the UI always has something to render.
func (g *Generator) Generate(ctx context.Context, answer string) *dto.ActionPlan {
	prompt := buildPlanPrompt(answer)

	response, err := g.llmProvider.Generate(ctx, prompt, llm.WithMaxTokens(2048))
	if err != nil {
		g.logger.Printf("[PLAN] LLM call failed, using canned plan: %v", err)
		return constant.CannedActionPlan()
	}

	jsonContent, ok := utils.ExtractJSONObject(response)
	if !ok {
		g.logger.Printf("[PLAN] No JSON in response, using canned plan")
		return constant.CannedActionPlan()
	}

	var actionPlan dto.ActionPlan
	if err := json.Unmarshal([]byte(jsonContent), &actionPlan); err != nil {
		g.logger.Printf("[PLAN] JSON unmarshal failed, using canned plan: %v", err)
		return constant.CannedActionPlan()
	}

	return &actionPlan
}

func buildPlanPrompt(answer string) string {
	return fmt.Sprintf(`Based on this business analysis answer, create a structured action plan with:
1. A brief summary (1-2 sentences)
2. 3-5 specific action items, each with:
   - Title
   - Description
   - Required agent type (e.g., "Research Agent", "Strategy Agent", "Data Analysis Agent")
   - Priority (high/medium/low)
   - Estimated time
3. An execution workflow showing the order of steps and dependencies

Answer to analyze:
%s

Return ONLY valid JSON in this exact format:
{
  "summary": "brief summary",
  "actions": [
    {
      "id": "1",
      "title": "Action title",
      "description": "Action description",
      "agent": "Agent type",
      "priority": "high|medium|low",
      "estimatedTime": "X hours"
    }
  ],
  "workflow": {
    "steps": [
      {
        "agent": "Agent name",
        "action": "What the agent does",
        "dependencies": ["list of dependent step agents"]
      }
    ]
  }
}`, answer)
}
