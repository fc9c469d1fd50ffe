package services

import (
	"errors"
	"fmt"
	"sync"
)

// Feature describes an extension contribution registered under a
// namespace such as "apimanage.export".
type Feature struct {
	Key         string `json:"key"`
	Label       string `json:"label"`
	Description string `json:"description,omitempty"`
	Icon        string `json:"icon,omitempty"`
	Action      string `json:"action,omitempty"`
	Filename    string `json:"filename,omitempty"`
}

// FeatureModule is the code behind a feature, looked up by feature key.
type FeatureModule interface {
	Action() string
	Invoke(input any) (any, error)
}

// FeatureRegistry holds features registered ahead of time, keeping
// registration order per namespace.
type FeatureRegistry struct {
	mu       sync.RWMutex
	features map[string][]Feature
	modules  map[string]FeatureModule
}

func NewFeatureRegistry() *FeatureRegistry {
	return &FeatureRegistry{
		features: make(map[string][]Feature),
		modules:  make(map[string]FeatureModule),
	}
}

func (r *FeatureRegistry) Register(namespace string, feature Feature, module FeatureModule) error {
	if namespace == "" {
		return errors.New("namespace is required")
	}
	if feature.Key == "" {
		return errors.New("feature key is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	for _, f := range r.features[namespace] {
		if f.Key == feature.Key {
			return fmt.Errorf("feature %s already registered in %s", feature.Key, namespace)
		}
	}
	r.features[namespace] = append(r.features[namespace], feature)
	if module != nil {
		r.modules[feature.Key] = module
	}
	return nil
}

func (r *FeatureRegistry) Features(namespace string) []Feature {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Feature, len(r.features[namespace]))
	copy(out, r.features[namespace])
	return out
}

func (r *FeatureRegistry) Module(key string) (FeatureModule, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	m, ok := r.modules[key]
	return m, ok
}

// HostServices is what the desktop shell offers to UI-facing services.
type HostServices interface {
	GetFeature(namespace string) []Feature
	GetModuleSettings(namespace string) any
	GetMockURL() string
	LoadFeatureModule(key string) (FeatureModule, bool)
}

// MockURLProvider reports the base url of the local mock server.
type MockURLProvider interface {
	URL() string
}

type HostService struct {
	features *FeatureRegistry
	settings AppSettingsService
	mock     MockURLProvider
}

func NewHostService(features *FeatureRegistry, settings AppSettingsService, mock MockURLProvider) *HostService {
	if features == nil {
		features = NewFeatureRegistry()
	}
	return &HostService{features: features, settings: settings, mock: mock}
}

func (h *HostService) GetFeature(namespace string) []Feature {
	return h.features.Features(namespace)
}

func (h *HostService) GetModuleSettings(namespace string) any {
	if h.settings == nil {
		return nil
	}
	return h.settings.GetModuleSettings(namespace)
}

func (h *HostService) GetMockURL() string {
	if h.mock == nil {
		return ""
	}
	return h.mock.URL()
}

func (h *HostService) LoadFeatureModule(key string) (FeatureModule, bool) {
	return h.features.Module(key)
}
