package services

import (
	"fmt"

	"github.com/yukikurage/project-dashboard/internal/dto"
	"github.com/yukikurage/project-dashboard/internal/models"
	"github.com/yukikurage/project-dashboard/internal/repository"
	"github.com/yukikurage/project-dashboard/internal/schema"
)

// ResourceService provides business logic for resources attached to
// organizations, workspaces and projects.
type ResourceService struct {
	resourceRepo  repository.ResourceRepository
	orgRepo       repository.OrganizationRepository
	workspaceRepo repository.WorkspaceRepository
	projectRepo   repository.ProjectRepository
}

// NewResourceService creates a new ResourceService.
func NewResourceService(
	resourceRepo repository.ResourceRepository,
	orgRepo repository.OrganizationRepository,
	workspaceRepo repository.WorkspaceRepository,
	projectRepo repository.ProjectRepository,
) *ResourceService {
	return &ResourceService{
		resourceRepo:  resourceRepo,
		orgRepo:       orgRepo,
		workspaceRepo: workspaceRepo,
		projectRepo:   projectRepo,
	}
}

// CreateResourceInput represents parameters to create a resource.
type CreateResourceInput struct {
	Title string
	URL   string
}

func (s *ResourceService) checkParent(kind models.ParentKind, parentID string) error {
	var err error
	switch kind {
	case models.ParentOrganization:
		if _, err = s.orgRepo.FindByID(parentID); err != nil {
			return lookupError(err, ErrOrganizationNotFound, "organization")
		}
	case models.ParentWorkspace:
		if _, err = s.workspaceRepo.FindByID(parentID); err != nil {
			return lookupError(err, ErrWorkspaceNotFound, "workspace")
		}
	case models.ParentProject:
		if _, err = s.projectRepo.FindByID(parentID); err != nil {
			return lookupError(err, ErrProjectNotFound, "project")
		}
	default:
		return fmt.Errorf("unknown resource parent %q", kind)
	}
	return nil
}

func (s *ResourceService) find(kind models.ParentKind, parentID, id string) (*schema.Resource, error) {
	if err := s.checkParent(kind, parentID); err != nil {
		return nil, err
	}
	res, err := s.resourceRepo.FindByID(kind, parentID, id)
	if err != nil {
		return nil, lookupError(err, ErrResourceNotFound, "resource")
	}
	return res, nil
}

func (s *ResourceService) CreateResource(kind models.ParentKind, parentID string, input CreateResourceInput) (models.Resource, error) {
	title, err := requireText(input.Title, ErrTitleEmpty)
	if err != nil {
		return models.Resource{}, err
	}
	url, err := requireText(input.URL, ErrURLEmpty)
	if err != nil {
		return models.Resource{}, err
	}

	if err := s.checkParent(kind, parentID); err != nil {
		return models.Resource{}, err
	}

	res := &schema.Resource{Title: title, URL: url}
	if err := s.resourceRepo.Create(kind, parentID, res); err != nil {
		return models.Resource{}, fmt.Errorf("failed to create resource: %w", err)
	}

	return dto.ToResource(*res), nil
}

func (s *ResourceService) ListResources(kind models.ParentKind, parentID string) ([]models.Resource, error) {
	if err := s.checkParent(kind, parentID); err != nil {
		return nil, err
	}

	resources, err := s.resourceRepo.List(kind, parentID)
	if err != nil {
		return nil, fmt.Errorf("failed to list resources: %w", err)
	}

	out := make([]models.Resource, len(resources))
	for i, r := range resources {
		out[i] = dto.ToResource(r)
	}
	return out, nil
}

func (s *ResourceService) GetResource(kind models.ParentKind, parentID, id string) (models.Resource, error) {
	res, err := s.find(kind, parentID, id)
	if err != nil {
		return models.Resource{}, err
	}
	return dto.ToResource(*res), nil
}

func (s *ResourceService) UpdateResource(kind models.ParentKind, parentID, id string, req dto.UpdateResourceRequest) (models.Resource, error) {
	res, err := s.find(kind, parentID, id)
	if err != nil {
		return models.Resource{}, err
	}

	if err := applyText(&res.Title, req.Title, ErrTitleEmpty); err != nil {
		return models.Resource{}, err
	}
	if err := applyText(&res.URL, req.URL, ErrURLEmpty); err != nil {
		return models.Resource{}, err
	}
	apply(&res.Description, req.Description)
	apply(&res.Type, req.Type)

	if err := s.resourceRepo.Update(res); err != nil {
		return models.Resource{}, fmt.Errorf("failed to update resource: %w", err)
	}

	return dto.ToResource(*res), nil
}

// DeleteResource detaches the resource from the parent. The resource itself
// goes away once no parent links it.
func (s *ResourceService) DeleteResource(kind models.ParentKind, parentID, id string) error {
	if _, err := s.find(kind, parentID, id); err != nil {
		return err
	}

	if err := s.resourceRepo.Unlink(kind, parentID, id); err != nil {
		return fmt.Errorf("failed to delete resource: %w", err)
	}

	return nil
}

// AttachResource links an existing resource to a project.
func (s *ResourceService) AttachResource(projectID, resourceID string) (models.Resource, error) {
	if err := s.checkParent(models.ParentProject, projectID); err != nil {
		return models.Resource{}, err
	}

	res, err := s.resourceRepo.FindAnyByID(resourceID)
	if err != nil {
		return models.Resource{}, lookupError(err, ErrResourceNotFound, "resource")
	}

	if err := s.resourceRepo.Link(models.ParentProject, projectID, resourceID); err != nil {
		return models.Resource{}, fmt.Errorf("failed to attach resource: %w", err)
	}

	return dto.ToResource(*res), nil
}
