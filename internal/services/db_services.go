package services

import (
	"context"

	"eoapi/internal/repositories"

	"gorm.io/gorm"
)

// DbServices aggregates all domain services backed by the database.
// Fields use plural names (e.g., Projects) to align with Go conventions
// seen in service/store containers.
type DbServices struct {
	KeyValues   repositories.KeyValueRepository
	AppSettings AppSettingsService
	Projects    repositories.ProjectRepository
	ApiData     repositories.ApiDataRepository
}

// NewDbServices constructs the service container using repositories backed by db.
func NewDbServices(db *gorm.DB, credentials *KeyringService) *DbServices {
	return &DbServices{
		KeyValues:   repositories.NewKeyValueRepository(db),
		AppSettings: NewAppSettingsService(repositories.NewAppSettingsRepository(db), credentials),
		Projects:    repositories.NewProjectRepository(db),
		ApiData:     repositories.NewApiDataRepository(db),
	}
}

func (d *DbServices) StartDbServices(ctx context.Context) {
	d.AppSettings.Startup(ctx)
}
