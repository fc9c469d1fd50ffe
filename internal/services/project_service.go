package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"eoapi/internal/models"
	"eoapi/internal/repositories"
)

const DefaultProjectName = "Default"

type ProjectService interface {
	Startup(ctx context.Context)
	EnsureDefaultProject() (*models.Project, error)
	ListApis() ([]models.ApiData, error)
	CreateApi(api *models.ApiData) (*models.ApiData, error)
}

type projectService struct {
	projects repositories.ProjectRepository
	apis     repositories.ApiDataRepository
	context  context.Context
}

func NewProjectService(projects repositories.ProjectRepository, apis repositories.ApiDataRepository) ProjectService {
	return &projectService{projects: projects, apis: apis}
}

func (s *projectService) Startup(ctx context.Context) {
	s.context = ctx
}

func (s *projectService) ctx() context.Context {
	if s.context == nil {
		return context.Background()
	}
	return s.context
}

// EnsureDefaultProject returns the first project, creating it on a fresh database.
func (s *projectService) EnsureDefaultProject() (*models.Project, error) {
	p, err := s.projects.First(s.ctx())
	if err != nil {
		return nil, fmt.Errorf("service: load project: %w", err)
	}
	if p != nil {
		return p, nil
	}
	p = &models.Project{UUID: uuid.NewString(), Name: DefaultProjectName}
	if err := s.projects.Create(s.ctx(), p); err != nil {
		return nil, fmt.Errorf("service: create default project: %w", err)
	}
	return p, nil
}

func (s *projectService) ListApis() ([]models.ApiData, error) {
	p, err := s.EnsureDefaultProject()
	if err != nil {
		return nil, err
	}
	list, err := s.apis.List(s.ctx(), p.ID)
	if err != nil {
		return nil, fmt.Errorf("service: list apis: %w", err)
	}
	return list, nil
}

func (s *projectService) CreateApi(api *models.ApiData) (*models.ApiData, error) {
	if api == nil {
		return nil, errors.New("api is required")
	}
	if strings.TrimSpace(api.Name) == "" {
		return nil, errors.New("api name is required")
	}
	if strings.TrimSpace(api.URI) == "" {
		return nil, errors.New("api uri is required")
	}
	if api.ProjectID == 0 {
		p, err := s.EnsureDefaultProject()
		if err != nil {
			return nil, err
		}
		api.ProjectID = p.ID
	}
	if api.Method == "" {
		api.Method = "GET"
	}
	api.Method = strings.ToUpper(api.Method)
	if err := s.apis.Create(s.ctx(), api); err != nil {
		return nil, fmt.Errorf("service: create api: %w", err)
	}
	return api, nil
}
