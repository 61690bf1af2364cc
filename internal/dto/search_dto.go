package dto

import (
	"zeus-ai-be/pkg/store"
)

// AnalyzeAndSearchRequest carries the user query plus its private dataset,
// either inline or by reference to a previously uploaded one.
type AnalyzeAndSearchRequest struct {
	Message      string         `json:"message" validate:"required"`
	DatabaseData *store.Dataset `json:"databaseData,omitempty"`
	DatasetID    string         `json:"datasetId,omitempty"`
}
