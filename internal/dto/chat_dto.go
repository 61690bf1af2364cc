package dto

// ChatRequest is the legacy single-shot pass-through body. Kept for
// backward compatibility with the first UI iteration; no routing logic.
type ChatRequest struct {
	Message string `json:"message" validate:"required"`
	Context string `json:"context"`
}

type ChatResponse struct {
	Response string `json:"response"`
}
