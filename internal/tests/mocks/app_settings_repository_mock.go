package mocks

import (
	"context"

	"eoapi/internal/models"
)

type AppSettingsRepositoryMock struct {
	GetFunc    func(ctx context.Context) (*models.AppSettings, error)
	UpdateFunc func(ctx context.Context, settings *models.AppSettings) error
}

func (m *AppSettingsRepositoryMock) Get(ctx context.Context) (*models.AppSettings, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx)
	}
	return &models.AppSettings{
		ID:      1,
		Version: 1,
		Theme:   "system",
		Locale:  "en",
		Modules: "{}",
	}, nil
}

func (m *AppSettingsRepositoryMock) Update(ctx context.Context, settings *models.AppSettings) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, settings)
	}
	return nil
}

// InMemoryAppSettings returns a mock that keeps the last saved settings.
func InMemoryAppSettings(initial models.AppSettings) *AppSettingsRepositoryMock {
	current := initial
	if current.ID == 0 {
		current.ID = 1
	}
	if current.Modules == "" {
		current.Modules = "{}"
	}
	return &AppSettingsRepositoryMock{
		GetFunc: func(ctx context.Context) (*models.AppSettings, error) {
			cp := current
			return &cp, nil
		},
		UpdateFunc: func(ctx context.Context, settings *models.AppSettings) error {
			current = *settings
			return nil
		},
	}
}
