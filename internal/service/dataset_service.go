package service

import (
	"context"
	"fmt"

	"zeus-ai-be/internal/dto"
	"zeus-ai-be/internal/repository/memory"
	"zeus-ai-be/pkg/store"
)

type IDatasetService interface {
	Upload(ctx context.Context, request *dto.UploadDatasetRequest) (*dto.UploadDatasetResponse, error)
	Show(ctx context.Context, id string) (*store.Dataset, error)
}

type datasetService struct {
	datasetRepo *memory.DatasetRepository
}

func NewDatasetService(datasetRepo *memory.DatasetRepository) IDatasetService {
	return &datasetService{
		datasetRepo: datasetRepo,
	}
}

func (s *datasetService) Upload(_ context.Context, request *dto.UploadDatasetRequest) (*dto.UploadDatasetResponse, error) {
	dataset := request.ToDataset()
	if dataset.IsEmpty() {
		return nil, fmt.Errorf("dataset is empty")
	}
	id := s.datasetRepo.Save(dataset)
	return &dto.UploadDatasetResponse{ID: id}, nil
}

func (s *datasetService) Show(_ context.Context, id string) (*store.Dataset, error) {
	dataset, found := s.datasetRepo.Get(id)
	if !found {
		return nil, fmt.Errorf("dataset %s not found", id)
	}
	return dataset, nil
}
