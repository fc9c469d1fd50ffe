package mocks

import (
	"context"

	"eoapi/internal/models"
)

type ApiDataRepositoryMock struct {
	CreateFunc     func(ctx context.Context, api *models.ApiData) error
	ListFunc       func(ctx context.Context, projectID uint) ([]models.ApiData, error)
	FindByUUIDFunc func(ctx context.Context, id string) (*models.ApiData, error)
}

func (m *ApiDataRepositoryMock) Create(ctx context.Context, api *models.ApiData) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, api)
	}
	return nil
}

func (m *ApiDataRepositoryMock) List(ctx context.Context, projectID uint) ([]models.ApiData, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, projectID)
	}
	return nil, nil
}

func (m *ApiDataRepositoryMock) FindByUUID(ctx context.Context, id string) (*models.ApiData, error) {
	if m.FindByUUIDFunc != nil {
		return m.FindByUUIDFunc(ctx, id)
	}
	return nil, nil
}
