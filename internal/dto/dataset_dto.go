package dto

import (
	"zeus-ai-be/pkg/store"
)

type UploadDatasetRequest struct {
	Products           []map[string]interface{} `json:"products,omitempty"`
	MarketTrends       []map[string]interface{} `json:"marketTrends,omitempty"`
	CompetitorAnalysis []map[string]interface{} `json:"competitorAnalysis,omitempty"`
}

func (r *UploadDatasetRequest) ToDataset() *store.Dataset {
	return &store.Dataset{
		Products:           r.Products,
		MarketTrends:       r.MarketTrends,
		CompetitorAnalysis: r.CompetitorAnalysis,
	}
}

type UploadDatasetResponse struct {
	ID string `json:"id"`
}
