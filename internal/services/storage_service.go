package services

import (
	"context"
	"fmt"
	"strconv"
	"sync"

	"github.com/wailsapp/wails/v2/pkg/logger"

	"eoapi/internal/events"
	"eoapi/internal/models"
	"eoapi/internal/repositories"
)

const (
	DataSourceTypeKey    = "DATA_SOURCE_TYPE"
	ShowDataSourceTipKey = "IS_SHOW_DATA_SOURCE_TIP"
)

// Publisher is the write side of the message bus.
type Publisher interface {
	Publish(ctx context.Context, msg events.Message)
}

// StorageService is the durable key-value store plus the typed accessors
// for the data source mode and the switch tip flag.
type StorageService struct {
	context context.Context
	values  repositories.KeyValueRepository
	bus     Publisher
	log     logger.Logger

	// modeMu keeps mode writes and their bus messages in the same order.
	modeMu sync.Mutex
}

func NewStorageService(values repositories.KeyValueRepository, bus Publisher, log logger.Logger) *StorageService {
	if log == nil {
		log = logger.NewDefaultLogger()
	}
	return &StorageService{values: values, bus: bus, log: log}
}

func (s *StorageService) Startup(ctx context.Context) {
	s.context = ctx
}

func (s *StorageService) ctx() context.Context {
	if s.context == nil {
		return context.Background()
	}
	return s.context
}

// Get returns the stored value; read errors are logged and reported as absent.
func (s *StorageService) Get(key string) (string, bool) {
	v, ok, err := s.values.Get(s.ctx(), key)
	if err != nil {
		s.log.Error(fmt.Sprintf("storage: get %s: %v", key, err))
		return "", false
	}
	return v, ok
}

func (s *StorageService) Set(key, value string) error {
	if err := s.values.Set(s.ctx(), key, value); err != nil {
		return fmt.Errorf("storage: set %s: %w", key, err)
	}
	return nil
}

// DataSourceType returns the persisted mode, local when nothing valid is stored.
func (s *StorageService) DataSourceType() models.DataSourceMode {
	v, _ := s.Get(DataSourceTypeKey)
	return models.ParseDataSourceMode(v)
}

// ToggleDataSource persists mode and then publishes a DataSourceChange.
// Nothing is published when the write fails.
func (s *StorageService) ToggleDataSource(mode models.DataSourceMode) error {
	if mode != models.DataSourceLocal && mode != models.DataSourceRemote {
		return fmt.Errorf("storage: unknown data source type %q", mode)
	}

	s.modeMu.Lock()
	defer s.modeMu.Unlock()

	if err := s.Set(DataSourceTypeKey, string(mode)); err != nil {
		return err
	}
	if s.bus != nil {
		s.bus.Publish(s.ctx(), events.DataSourceChange{DataSourceType: mode})
	}
	return nil
}

func (s *StorageService) ShowTip() bool {
	v, _ := s.Get(ShowDataSourceTipKey)
	show, err := strconv.ParseBool(v)
	return err == nil && show
}

func (s *StorageService) SetShowTip(show bool) error {
	return s.Set(ShowDataSourceTipKey, strconv.FormatBool(show))
}
