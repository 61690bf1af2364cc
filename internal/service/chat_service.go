package service

import (
	"context"
	"fmt"
	"time"

	"zeus-ai-be/internal/dto"
	"zeus-ai-be/pkg/llm"
)

// IChatService is the legacy single-shot pass-through: context + message
// forwarded straight to the model, no routing. Kept only for backward
// compatibility with the first UI iteration.
type IChatService interface {
	Chat(ctx context.Context, request *dto.ChatRequest) (*dto.ChatResponse, error)
}

type chatService struct {
	llmProvider llm.LLMProvider
	callTimeout time.Duration
}

func NewChatService(llmProvider llm.LLMProvider, callTimeout time.Duration) IChatService {
	return &chatService{
		llmProvider: llmProvider,
		callTimeout: callTimeout,
	}
}

func (s *chatService) Chat(ctx context.Context, request *dto.ChatRequest) (*dto.ChatResponse, error) {
	if s.callTimeout > 0 {
		bounded, cancel := context.WithTimeout(ctx, s.callTimeout)
		defer cancel()
		ctx = bounded
	}

	prompt := request.Message
	if request.Context != "" {
		prompt = request.Context + "\n\n" + request.Message
	}

	response, err := s.llmProvider.Generate(ctx, prompt, llm.WithMaxTokens(2048))
	if err != nil {
		return nil, fmt.Errorf("chat completion failed: %w", err)
	}

	return &dto.ChatResponse{Response: response}, nil
}
