package services

import (
	"fmt"
	"time"

	"github.com/yukikurage/project-dashboard/internal/dto"
	"github.com/yukikurage/project-dashboard/internal/models"
	"github.com/yukikurage/project-dashboard/internal/repository"
	"github.com/yukikurage/project-dashboard/internal/schema"
)

// ProjectService provides business logic for project operations.
type ProjectService struct {
	projectRepo   repository.ProjectRepository
	workspaceRepo repository.WorkspaceRepository
}

// NewProjectService creates a new ProjectService.
func NewProjectService(projectRepo repository.ProjectRepository, workspaceRepo repository.WorkspaceRepository) *ProjectService {
	return &ProjectService{
		projectRepo:   projectRepo,
		workspaceRepo: workspaceRepo,
	}
}

// CreateProjectInput represents parameters to create a project.
type CreateProjectInput struct {
	Title       string
	WorkspaceID string
}

// CreateProject creates a project and adds it to its workspace's project list.
func (s *ProjectService) CreateProject(input CreateProjectInput) (models.Project, error) {
	title, err := requireText(input.Title, ErrTitleEmpty)
	if err != nil {
		return models.Project{}, err
	}

	if _, err := s.workspaceRepo.FindByID(input.WorkspaceID); err != nil {
		return models.Project{}, lookupError(err, ErrWorkspaceNotFound, "workspace")
	}

	project := &schema.Project{
		Title:       title,
		Status:      string(models.StatusNone),
		Priority:    string(models.PriorityNone),
		WorkspaceID: input.WorkspaceID,
	}
	if err := s.projectRepo.Create(project); err != nil {
		return models.Project{}, fmt.Errorf("failed to create project: %w", err)
	}

	return dto.ToProject(*project), nil
}

func (s *ProjectService) ListProjects() ([]models.Project, error) {
	projects, err := s.projectRepo.List()
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}

	out := make([]models.Project, len(projects))
	for i, p := range projects {
		out[i] = dto.ToProject(p)
	}
	return out, nil
}

func (s *ProjectService) GetProject(id string) (models.Project, error) {
	project, err := s.projectRepo.FindByID(id)
	if err != nil {
		return models.Project{}, lookupError(err, ErrProjectNotFound, "project")
	}
	return dto.ToProject(*project), nil
}

func (s *ProjectService) UpdateProject(id string, req dto.UpdateProjectRequest) (models.Project, error) {
	if req.ID != "" && req.ID != id {
		return models.Project{}, ErrProjectIDMismatch
	}

	project, err := s.projectRepo.FindByID(id)
	if err != nil {
		return models.Project{}, lookupError(err, ErrProjectNotFound, "project")
	}

	if err := applyText(&project.Title, req.Title, ErrTitleEmpty); err != nil {
		return models.Project{}, err
	}
	apply(&project.Description, req.Description)

	if status, ok := req.Status.Get(); ok {
		if !status.Valid() {
			return models.Project{}, ErrInvalidStatus
		}
		project.Status = string(status)
	}
	if priority, ok := req.Priority.Get(); ok {
		if !priority.Valid() {
			return models.Project{}, ErrInvalidPriority
		}
		project.Priority = string(priority)
	}

	if start, ok := req.StartDate.Get(); ok {
		project.StartDate = &start
	}
	if end, ok := req.EndDate.Get(); ok {
		project.EndDate = &end
	}
	if !validRange(project.StartDate, project.EndDate) {
		return models.Project{}, ErrInvalidTimeRange
	}

	if err := s.projectRepo.Update(project); err != nil {
		return models.Project{}, fmt.Errorf("failed to update project: %w", err)
	}

	return dto.ToProject(*project), nil
}

func validRange(start, end *time.Time) bool {
	return start == nil || end == nil || !start.After(*end)
}

// DeleteProject removes a project with its iterations, milestones and resource links.
func (s *ProjectService) DeleteProject(id string) error {
	if _, err := s.projectRepo.FindByID(id); err != nil {
		return lookupError(err, ErrProjectNotFound, "project")
	}

	if err := s.projectRepo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete project: %w", err)
	}

	return nil
}
