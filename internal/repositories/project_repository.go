package repositories

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"eoapi/internal/models"
)

type ProjectRepository interface {
	Create(ctx context.Context, p *models.Project) error
	FindByID(ctx context.Context, id uint) (*models.Project, error)
	// First returns the oldest project, or nil when none exists.
	First(ctx context.Context) (*models.Project, error)
	// Export collects everything belonging to the project into one payload.
	Export(ctx context.Context, projectID uint) (*models.ProjectExport, error)
}

type projectRepository struct {
	db *gorm.DB
}

func NewProjectRepository(db *gorm.DB) ProjectRepository {
	return &projectRepository{db: db}
}

func (r *projectRepository) Create(ctx context.Context, p *models.Project) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *projectRepository) FindByID(ctx context.Context, id uint) (*models.Project, error) {
	var p models.Project
	if err := r.db.WithContext(ctx).First(&p, id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *projectRepository) First(ctx context.Context) (*models.Project, error) {
	var p models.Project
	if err := r.db.WithContext(ctx).Order("id ASC").Take(&p).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

func (r *projectRepository) Export(ctx context.Context, projectID uint) (*models.ProjectExport, error) {
	project, err := r.FindByID(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("load project %d: %w", projectID, err)
	}

	out := &models.ProjectExport{Project: *project}
	if err := r.db.WithContext(ctx).Where("project_id = ?", projectID).Order("id ASC").Find(&out.APIData).Error; err != nil {
		return nil, fmt.Errorf("load api data: %w", err)
	}
	if err := r.db.WithContext(ctx).Where("project_id = ?", projectID).Order("id ASC").Find(&out.Environments).Error; err != nil {
		return nil, fmt.Errorf("load environments: %w", err)
	}
	return out, nil
}
