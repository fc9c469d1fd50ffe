package mocks

import (
	"context"

	"eoapi/internal/models"
)

type ProjectRepositoryMock struct {
	CreateFunc   func(ctx context.Context, p *models.Project) error
	FindByIDFunc func(ctx context.Context, id uint) (*models.Project, error)
	FirstFunc    func(ctx context.Context) (*models.Project, error)
	ExportFunc   func(ctx context.Context, projectID uint) (*models.ProjectExport, error)
}

func (m *ProjectRepositoryMock) Create(ctx context.Context, p *models.Project) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, p)
	}
	return nil
}

func (m *ProjectRepositoryMock) FindByID(ctx context.Context, id uint) (*models.Project, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *ProjectRepositoryMock) First(ctx context.Context) (*models.Project, error) {
	if m.FirstFunc != nil {
		return m.FirstFunc(ctx)
	}
	return nil, nil
}

func (m *ProjectRepositoryMock) Export(ctx context.Context, projectID uint) (*models.ProjectExport, error) {
	if m.ExportFunc != nil {
		return m.ExportFunc(ctx, projectID)
	}
	return &models.ProjectExport{}, nil
}
