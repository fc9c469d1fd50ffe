package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"

	"eoapi/internal/models"
	"eoapi/internal/repositories"
)

const (
	RemoteServerNamespace = "eoapi-common.remoteServer"
	RemoteServerTokenKey  = RemoteServerNamespace + ".token"
)

type AppSettingsService interface {
	Get() (*models.AppSettings, error)
	Update(theme, locale string) (*models.AppSettings, error)
	Locale() string
	GetModuleSettings(namespace string) any
	SetModuleSetting(namespace string, value any) error
	RemoteServer() (*models.RemoteServerConfig, error)
	SetRemoteServer(url, token string) error
	Startup(ctx context.Context)
}

type appSettingsService struct {
	appSettings repositories.AppSettingsRepository
	credentials *KeyringService
	context     context.Context
}

func (s *appSettingsService) Startup(ctx context.Context) {
	s.context = ctx
}

// NewAppSettingsService builds the settings service. credentials may be nil,
// in which case tokens stay in the settings document.
func NewAppSettingsService(appSettings repositories.AppSettingsRepository, credentials *KeyringService) AppSettingsService {
	return &appSettingsService{appSettings: appSettings, credentials: credentials}
}

func (s *appSettingsService) ctx() context.Context {
	if s.context == nil {
		return context.Background()
	}
	return s.context
}

func (s *appSettingsService) Get() (*models.AppSettings, error) {
	return s.appSettings.Get(s.ctx())
}

func (s *appSettingsService) Update(theme, locale string) (*models.AppSettings, error) {
	if theme == "" {
		return nil, errors.New("theme is required")
	}
	if locale == "" {
		return nil, errors.New("locale is required")
	}

	// Validate theme values
	if theme != "light" && theme != "dark" && theme != "system" {
		return nil, errors.New("theme must be 'light', 'dark', or 'system'")
	}

	// Get current settings
	current, err := s.appSettings.Get(s.ctx())
	if err != nil {
		return nil, err
	}

	// Update fields
	current.Theme = theme
	current.Locale = locale
	current.UpdatedAt = time.Now()

	if err := s.appSettings.Update(s.ctx(), current); err != nil {
		return nil, err
	}

	return current, nil
}

// Locale returns the configured locale, "en" when settings are unreadable.
func (s *appSettingsService) Locale() string {
	current, err := s.appSettings.Get(s.ctx())
	if err != nil || current.Locale == "" {
		return "en"
	}
	return current.Locale
}

// GetModuleSettings resolves a dotted namespace such as
// "eoapi-common.remoteServer.url" in the module settings document.
// Absent keys yield nil.
func (s *appSettingsService) GetModuleSettings(namespace string) any {
	current, err := s.appSettings.Get(s.ctx())
	if err != nil {
		return nil
	}
	res := gjson.Get(current.Modules, namespace)
	if !res.Exists() {
		return nil
	}
	return res.Value()
}

func (s *appSettingsService) SetModuleSetting(namespace string, value any) error {
	if strings.TrimSpace(namespace) == "" {
		return errors.New("namespace is required")
	}
	return s.updateModules(func(doc string) (string, error) {
		return sjson.Set(doc, namespace, value)
	})
}

func (s *appSettingsService) updateModules(edit func(doc string) (string, error)) error {
	current, err := s.appSettings.Get(s.ctx())
	if err != nil {
		return err
	}
	doc, err := edit(current.Modules)
	if err != nil {
		return fmt.Errorf("edit module settings: %w", err)
	}
	current.Modules = doc
	current.UpdatedAt = time.Now()
	return s.appSettings.Update(s.ctx(), current)
}

// RemoteServer returns nil, nil when no remote server was configured.
func (s *appSettingsService) RemoteServer() (*models.RemoteServerConfig, error) {
	current, err := s.appSettings.Get(s.ctx())
	if err != nil {
		return nil, err
	}
	res := gjson.Get(current.Modules, RemoteServerNamespace)
	if !res.Exists() {
		return nil, nil
	}

	cfg := &models.RemoteServerConfig{
		URL:   res.Get("url").String(),
		Token: res.Get("token").String(),
	}
	if s.credentials != nil {
		token, err := s.credentials.GetToken(RemoteServerTokenKey)
		if err != nil {
			return nil, fmt.Errorf("read remote server token: %w", err)
		}
		if token != "" {
			cfg.Token = token
		}
	}
	return cfg, nil
}

func (s *appSettingsService) SetRemoteServer(url, token string) error {
	url = strings.TrimSpace(url)
	if s.credentials != nil {
		if token == "" {
			if err := s.credentials.DeleteToken(RemoteServerTokenKey); err != nil {
				return fmt.Errorf("delete remote server token: %w", err)
			}
		} else if err := s.credentials.StoreToken(RemoteServerTokenKey, token); err != nil {
			return fmt.Errorf("store remote server token: %w", err)
		}
	}

	return s.updateModules(func(doc string) (string, error) {
		doc, err := sjson.Set(doc, RemoteServerNamespace+".url", url)
		if err != nil {
			return "", err
		}
		if s.credentials != nil {
			return sjson.Delete(doc, RemoteServerTokenKey)
		}
		return sjson.Set(doc, RemoteServerTokenKey, token)
	})
}
