package database

import (
	"context"
	"fmt"
	"log"

	"zeus-ai-be/pkg/llm"
)

// Answerer turns a retrieved context slice into a natural-language answer
// grounded strictly in that context.
type Answerer struct {
	llmProvider llm.LLMProvider
	logger      *log.Logger
}

func NewAnswerer(llmProvider llm.LLMProvider, logger *log.Logger) *Answerer {
	return &Answerer{
		llmProvider: llmProvider,
		logger:      logger,
	}
}

// Answer returns "" without error when the context is empty or the model
// call fails: callers treat an empty database answer as "the database path
// produced nothing", never as an error to propagate.
func (a *Answerer) Answer(ctx context.Context, query, dataContext string) string {
	if dataContext == "" {
		return ""
	}

	prompt := fmt.Sprintf(`Based on this private database data, answer the user's question.
Do NOT mention specific company names, product names, or internal metrics in a way that could identify the company.
Focus on insights and recommendations.

Database Context:
%s

User Question: %s

Provide a detailed answer based on the database data.`, dataContext, query)

	response, err := a.llmProvider.Generate(ctx, prompt, llm.WithMaxTokens(2048))
	if err != nil {
		a.logger.Printf("[DB-ANSWERER] LLM call failed: %v", err)
		return ""
	}

	return response
}
