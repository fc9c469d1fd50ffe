package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/wailsapp/wails/v2/pkg/logger"

	"eoapi/internal/events"
	"eoapi/internal/models"
	"eoapi/internal/repositories"
)

const (
	ExportFeatureNamespace = "apimanage.export"
	DefaultExportExtension = "eoapi"
	DefaultExportFilename  = "Eoapi-export.json"
)

type ExportTexts interface {
	ExportFailed() string
	ExportSucceeded(path string) string
}

// ExportService writes the current project to a file, either in the native
// eoapi format or through an export feature module.
type ExportService struct {
	context  context.Context
	host     HostServices
	projects repositories.ProjectRepository
	saver    FileSaver
	bus      Publisher
	notifier Notifier
	texts    ExportTexts
	version  string
	log      logger.Logger

	mu      sync.Mutex
	current string
}

func NewExportService(host HostServices, projects repositories.ProjectRepository, saver FileSaver, bus Publisher, notifier Notifier, texts ExportTexts, version string, log logger.Logger) *ExportService {
	if log == nil {
		log = logger.NewDefaultLogger()
	}
	s := &ExportService{
		host:     host,
		projects: projects,
		saver:    saver,
		bus:      bus,
		notifier: notifier,
		texts:    texts,
		version:  version,
		log:      log,
	}
	if list := s.ListExtensions(); len(list) > 0 {
		s.current = list[0].Key
	}
	return s
}

func (s *ExportService) Startup(ctx context.Context) {
	s.context = ctx
}

func (s *ExportService) ctx() context.Context {
	if s.context == nil {
		return context.Background()
	}
	return s.context
}

func defaultExportFeature() Feature {
	return Feature{
		Key:         DefaultExportExtension,
		Label:       "Eoapi",
		Description: "Eoapi project file",
		Filename:    DefaultExportFilename,
	}
}

// ListExtensions returns the native format followed by every registered
// export feature.
func (s *ExportService) ListExtensions() []Feature {
	list := []Feature{defaultExportFeature()}
	if s.host == nil {
		return list
	}
	for _, f := range s.host.GetFeature(ExportFeatureNamespace) {
		if f.Key == DefaultExportExtension {
			continue
		}
		list = append(list, f)
	}
	return list
}

func (s *ExportService) CurrentExtension() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

func (s *ExportService) SetCurrentExtension(key string) error {
	for _, f := range s.ListExtensions() {
		if f.Key == key {
			s.mu.Lock()
			s.current = key
			s.mu.Unlock()
			return nil
		}
	}
	return fmt.Errorf("unknown export extension %q", key)
}

// Submit exports with the currently selected extension.
func (s *ExportService) Submit() bool {
	return s.Export(s.CurrentExtension())
}

// Export writes the project with the given extension and reports success.
func (s *ExportService) Export(extension string) bool {
	filename, path, err := s.export(s.ctx(), extension)
	ok := err == nil
	if ok {
		s.log.Info(fmt.Sprintf("export: %s written to %s", extension, path))
		s.notify(events.EventSuccess, func(t ExportTexts) string { return t.ExportSucceeded(path) })
	} else if errors.Is(err, ErrSaveCancelled) {
		s.log.Info("export: cancelled")
	} else {
		s.log.Error(fmt.Sprintf("export: %s: %v", extension, err))
		s.notify(events.EventError, ExportTexts.ExportFailed)
	}
	if s.bus != nil {
		s.bus.Publish(s.ctx(), events.ProjectExported{Extension: extension, Filename: filename, OK: ok})
	}
	return ok
}

// notify renders text only when both a notifier and texts are configured.
func (s *ExportService) notify(severity events.EventType, text func(ExportTexts) string) {
	if s.notifier == nil || s.texts == nil {
		return
	}
	s.notifier.Create(severity, text(s.texts))
}

func (s *ExportService) export(ctx context.Context, extension string) (string, string, error) {
	if extension == DefaultExportExtension {
		data, err := s.projectExport(ctx)
		if err != nil {
			return DefaultExportFilename, "", err
		}
		path, err := s.write(ctx, DefaultExportFilename, data)
		return DefaultExportFilename, path, err
	}

	feature, ok := s.feature(extension)
	if !ok {
		return "", "", fmt.Errorf("unknown export extension %q", extension)
	}
	if feature.Action == "" || feature.Filename == "" {
		return feature.Filename, "", fmt.Errorf("feature %s has no action or filename", extension)
	}
	module, ok := s.host.LoadFeatureModule(extension)
	if !ok || module == nil || module.Action() != feature.Action {
		return feature.Filename, "", fmt.Errorf("feature %s does not provide %s", extension, feature.Action)
	}

	data, err := s.projectExport(ctx)
	if err != nil {
		return feature.Filename, "", err
	}
	output, err := module.Invoke(data)
	if err != nil {
		return feature.Filename, "", fmt.Errorf("feature %s: %w", extension, err)
	}
	path, err := s.write(ctx, feature.Filename, output)
	return feature.Filename, path, err
}

func (s *ExportService) feature(key string) (Feature, bool) {
	if s.host == nil {
		return Feature{}, false
	}
	for _, f := range s.host.GetFeature(ExportFeatureNamespace) {
		if f.Key == key {
			return f, true
		}
	}
	return Feature{}, false
}

// projectExport loads the first project and stamps the app version on it.
func (s *ExportService) projectExport(ctx context.Context) (*models.ProjectExport, error) {
	project, err := s.projects.First(ctx)
	if err != nil {
		return nil, fmt.Errorf("load project: %w", err)
	}
	if project == nil {
		return nil, errors.New("no project to export")
	}
	data, err := s.projects.Export(ctx, project.ID)
	if err != nil {
		return nil, err
	}
	data.Version = s.version
	return data, nil
}

func (s *ExportService) write(ctx context.Context, filename string, v any) (string, error) {
	payload, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("encode %s: %w", filename, err)
	}
	return s.saver.Save(ctx, filename, payload)
}
