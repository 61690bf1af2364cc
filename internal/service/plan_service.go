package service

import (
	"context"
	"log"
	"os"
	"time"

	"zeus-ai-be/internal/dto"
	"zeus-ai-be/pkg/llm"
	"zeus-ai-be/pkg/plan"
)

type IPlanService interface {
	GeneratePlan(ctx context.Context, request *dto.GeneratePlanRequest) *dto.ActionPlan
}

type planService struct {
	generator   *plan.Generator
	callTimeout time.Duration
}

func NewPlanService(llmProvider llm.LLMProvider, callTimeout time.Duration) IPlanService {
	planLogger := log.New(os.Stdout, "[PLAN] ", log.LstdFlags)
	return &planService{
		generator:   plan.NewGenerator(llmProvider, planLogger),
		callTimeout: callTimeout,
	}
}

// GeneratePlan never fails: the generator falls back to the canned plan on
// any model or parse error.
func (s *planService) GeneratePlan(ctx context.Context, request *dto.GeneratePlanRequest) *dto.ActionPlan {
	if s.callTimeout > 0 {
		bounded, cancel := context.WithTimeout(ctx, s.callTimeout)
		defer cancel()
		ctx = bounded
	}
	return s.generator.Generate(ctx, request.Answer)
}
