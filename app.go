package main

import (
	"context"
	"fmt"
	"time"

	"eoapi/internal/mockserver"
	"eoapi/internal/models"
	"eoapi/internal/services"

	"github.com/wailsapp/wails/v2/pkg/runtime"
)

// App struct
type App struct {
	ctx         context.Context
	AppSettings services.AppSettingsService
	Projects    services.ProjectService
	Remote      *services.RemoteService
	dbClose     func() error
	mock        *mockserver.Server
}

// NewApp creates a new App application struct
func NewApp() *App {
	return &App{}
}

// startup is called when the app starts. The context is saved
// so we can call the runtime methods
func (a *App) startup(ctx context.Context) {
	a.ctx = ctx

	if a.mock != nil {
		if err := a.mock.Start(); err != nil {
			runtime.LogError(a.ctx, fmt.Sprintf("failed to start mock server: %v", err))
		}
	}
	if a.Projects != nil {
		if _, err := a.Projects.EnsureDefaultProject(); err != nil {
			runtime.LogError(a.ctx, fmt.Sprintf("failed to prepare default project: %v", err))
		}
	}
}

// shutdown is called when the app is closing. Clean up resources here.
func (a *App) shutdown(ctx context.Context) {
	if a.Remote != nil {
		a.Remote.Shutdown()
	}

	if a.mock != nil {
		stopCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
		if err := a.mock.Shutdown(stopCtx); err != nil {
			runtime.LogError(ctx, fmt.Sprintf("failed to stop mock server: %v", err))
		}
		cancel()
	}

	// Close database connection pool
	if a.dbClose != nil {
		if err := a.dbClose(); err != nil {
			runtime.LogError(ctx, fmt.Sprintf("failed to close database: %v", err))
		} else {
			runtime.LogInfo(ctx, "database closed")
		}
		a.dbClose = nil
	}
}

// GetAppSettings returns the current application settings
func (a *App) GetAppSettings() (*models.AppSettings, error) {
	if a.AppSettings == nil {
		return nil, fmt.Errorf("app settings service not available")
	}
	return a.AppSettings.Get()
}

// UpdateAppSettings updates theme and locale and returns the updated settings
func (a *App) UpdateAppSettings(theme, locale string) (*models.AppSettings, error) {
	if a.AppSettings == nil {
		return nil, fmt.Errorf("app settings service not available")
	}
	return a.AppSettings.Update(theme, locale)
}

// SaveRemoteServer stores the remote data source address and token
func (a *App) SaveRemoteServer(url, token string) error {
	if a.AppSettings == nil {
		return fmt.Errorf("app settings service not available")
	}
	return a.AppSettings.SetRemoteServer(url, token)
}

// GetApiUrl returns the mock url of an API on the active data source
func (a *App) GetApiUrl(api models.ApiData) (string, error) {
	if a.Remote == nil {
		return "", fmt.Errorf("remote service not available")
	}
	return a.Remote.BuildAPIURL(api), nil
}
