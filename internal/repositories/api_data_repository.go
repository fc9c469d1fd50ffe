package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"eoapi/internal/models"
)

type ApiDataRepository interface {
	Create(ctx context.Context, api *models.ApiData) error
	List(ctx context.Context, projectID uint) ([]models.ApiData, error)
	FindByUUID(ctx context.Context, id string) (*models.ApiData, error)
}

type apiDataRepository struct {
	db *gorm.DB
}

func NewApiDataRepository(db *gorm.DB) ApiDataRepository {
	return &apiDataRepository{db: db}
}

func (r *apiDataRepository) Create(ctx context.Context, api *models.ApiData) error {
	if api.UUID == "" {
		api.UUID = uuid.NewString()
	}
	return r.db.WithContext(ctx).Create(api).Error
}

func (r *apiDataRepository) List(ctx context.Context, projectID uint) ([]models.ApiData, error) {
	var apis []models.ApiData
	if err := r.db.WithContext(ctx).Where("project_id = ?", projectID).Order("id ASC").Find(&apis).Error; err != nil {
		return nil, err
	}
	return apis, nil
}

// FindByUUID returns nil, nil when no api matches.
func (r *apiDataRepository) FindByUUID(ctx context.Context, id string) (*models.ApiData, error) {
	var api models.ApiData
	if err := r.db.WithContext(ctx).Where("uuid = ?", id).Take(&api).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &api, nil
}
