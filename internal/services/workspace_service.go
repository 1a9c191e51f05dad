package services

import (
	"fmt"

	"github.com/yukikurage/project-dashboard/internal/dto"
	"github.com/yukikurage/project-dashboard/internal/models"
	"github.com/yukikurage/project-dashboard/internal/repository"
	"github.com/yukikurage/project-dashboard/internal/schema"
)

// WorkspaceService provides business logic for workspace operations.
type WorkspaceService struct {
	workspaceRepo repository.WorkspaceRepository
	orgRepo       repository.OrganizationRepository
	userRepo      repository.UserRepository
}

// NewWorkspaceService creates a new WorkspaceService.
func NewWorkspaceService(workspaceRepo repository.WorkspaceRepository, orgRepo repository.OrganizationRepository, userRepo repository.UserRepository) *WorkspaceService {
	return &WorkspaceService{
		workspaceRepo: workspaceRepo,
		orgRepo:       orgRepo,
		userRepo:      userRepo,
	}
}

// CreateWorkspaceInput represents parameters to create a workspace.
type CreateWorkspaceInput struct {
	Title          string
	OrganizationID string
}

func (s *WorkspaceService) CreateWorkspace(input CreateWorkspaceInput) (models.Workspace, error) {
	title, err := requireText(input.Title, ErrTitleEmpty)
	if err != nil {
		return models.Workspace{}, err
	}

	if _, err := s.orgRepo.FindByID(input.OrganizationID); err != nil {
		return models.Workspace{}, lookupError(err, ErrOrganizationNotFound, "organization")
	}

	workspace := &schema.Workspace{
		Title:          title,
		OrganizationID: input.OrganizationID,
	}
	if err := s.workspaceRepo.Create(workspace); err != nil {
		return models.Workspace{}, fmt.Errorf("failed to create workspace: %w", err)
	}

	return s.GetWorkspace(workspace.ID)
}

func (s *WorkspaceService) ListWorkspaces() ([]models.Workspace, error) {
	workspaces, err := s.workspaceRepo.List()
	if err != nil {
		return nil, fmt.Errorf("failed to list workspaces: %w", err)
	}

	return workspaceModels(s.userRepo, workspaces)
}

func (s *WorkspaceService) GetWorkspace(id string) (models.Workspace, error) {
	workspace, err := s.workspaceRepo.FindByID(id)
	if err != nil {
		return models.Workspace{}, lookupError(err, ErrWorkspaceNotFound, "workspace")
	}
	out, err := workspaceModels(s.userRepo, []schema.Workspace{*workspace})
	if err != nil {
		return models.Workspace{}, err
	}
	return out[0], nil
}

// UpdateWorkspace applies the title and the contact and project list changes.
func (s *WorkspaceService) UpdateWorkspace(id string, req dto.UpdateWorkspaceRequest) (models.Workspace, error) {
	workspace, err := s.workspaceRepo.FindByID(id)
	if err != nil {
		return models.Workspace{}, lookupError(err, ErrWorkspaceNotFound, "workspace")
	}

	if err := applyText(&workspace.Title, req.Title, ErrTitleEmpty); err != nil {
		return models.Workspace{}, err
	}

	contactsToAdd := ids(req.ContactsToAdd)
	if err := checkUsers(s.userRepo, contactsToAdd); err != nil {
		return models.Workspace{}, err
	}

	err = s.workspaceRepo.Transaction(func(repo repository.WorkspaceRepository) error {
		if req.Title.IsSet() {
			if err := repo.Update(workspace); err != nil {
				return fmt.Errorf("failed to update workspace: %w", err)
			}
		}
		if err := repo.AddContacts(id, contactsToAdd); err != nil {
			return fmt.Errorf("failed to add contacts: %w", err)
		}
		if err := repo.RemoveContacts(id, ids(req.ContactsToRemove)); err != nil {
			return fmt.Errorf("failed to remove contacts: %w", err)
		}
		if err := repo.AddProjects(id, ids(req.ProjectsToAdd)); err != nil {
			return fmt.Errorf("failed to add projects: %w", err)
		}
		if err := repo.RemoveProjects(id, ids(req.ProjectsToRemove)); err != nil {
			return fmt.Errorf("failed to remove projects: %w", err)
		}
		return nil
	})
	if err != nil {
		return models.Workspace{}, err
	}

	return s.GetWorkspace(id)
}

func (s *WorkspaceService) DeleteWorkspace(id string) error {
	if _, err := s.workspaceRepo.FindByID(id); err != nil {
		return lookupError(err, ErrWorkspaceNotFound, "workspace")
	}

	if err := s.workspaceRepo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete workspace: %w", err)
	}

	return nil
}
