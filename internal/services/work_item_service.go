package services

import (
	"fmt"

	"github.com/yukikurage/project-dashboard/internal/dto"
	"github.com/yukikurage/project-dashboard/internal/models"
	"github.com/yukikurage/project-dashboard/internal/repository"
	"github.com/yukikurage/project-dashboard/internal/schema"
)

// WorkItemService handles work item business logic
type WorkItemService struct {
	itemRepo    repository.WorkItemRepository
	projectRepo repository.ProjectRepository
}

// NewWorkItemService creates a new WorkItemService
func NewWorkItemService(itemRepo repository.WorkItemRepository, projectRepo repository.ProjectRepository) *WorkItemService {
	return &WorkItemService{
		itemRepo:    itemRepo,
		projectRepo: projectRepo,
	}
}

// CreateWorkItemInput represents input for creating a work item
type CreateWorkItemInput struct {
	Title     string
	ProjectID string
}

func (s *WorkItemService) CreateWorkItem(input CreateWorkItemInput) (models.WorkItem, error) {
	title, err := requireText(input.Title, ErrTitleEmpty)
	if err != nil {
		return models.WorkItem{}, err
	}

	if _, err := s.projectRepo.FindByID(input.ProjectID); err != nil {
		return models.WorkItem{}, lookupError(err, ErrProjectNotFound, "project")
	}

	item := &schema.WorkItem{
		ProjectID: input.ProjectID,
		Title:     title,
		Status:    string(models.StatusNone),
		Priority:  string(models.PriorityNone),
		Type:      string(models.WorkItemTypeNone),
	}
	if err := s.itemRepo.Create(item); err != nil {
		return models.WorkItem{}, fmt.Errorf("failed to create work item: %w", err)
	}

	return dto.ToWorkItem(*item), nil
}

// ListWorkItems lists the work items of a project, or all of them when
// projectID is empty
func (s *WorkItemService) ListWorkItems(projectID string) ([]models.WorkItem, error) {
	items, err := s.itemRepo.List(projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to list work items: %w", err)
	}

	out := make([]models.WorkItem, len(items))
	for i, item := range items {
		out[i] = dto.ToWorkItem(item)
	}
	return out, nil
}

func (s *WorkItemService) GetWorkItem(id string) (models.WorkItem, error) {
	item, err := s.itemRepo.FindByID(id)
	if err != nil {
		return models.WorkItem{}, lookupError(err, ErrWorkItemNotFound, "work item")
	}
	return dto.ToWorkItem(*item), nil
}

// UpdateWorkItem applies the present fields of req. An empty title, status,
// priority or type is read as absent.
func (s *WorkItemService) UpdateWorkItem(id string, req dto.UpdateWorkItemRequest) (models.WorkItem, error) {
	item, err := s.itemRepo.FindByID(id)
	if err != nil {
		return models.WorkItem{}, lookupError(err, ErrWorkItemNotFound, "work item")
	}

	req.Title = skipEmpty(req.Title)
	req.Status = skipEmpty(req.Status)
	req.Priority = skipEmpty(req.Priority)
	req.Type = skipEmpty(req.Type)

	if err := applyText(&item.Title, req.Title, ErrTitleEmpty); err != nil {
		return models.WorkItem{}, err
	}
	apply(&item.Description, req.Description)
	apply(&item.AssignedTo, req.Assignee)

	if status, ok := req.Status.Get(); ok {
		if !status.Valid() {
			return models.WorkItem{}, ErrInvalidStatus
		}
		item.Status = string(status)
	}
	if priority, ok := req.Priority.Get(); ok {
		if !priority.Valid() {
			return models.WorkItem{}, ErrInvalidPriority
		}
		item.Priority = string(priority)
	}
	if itemType, ok := req.Type.Get(); ok {
		if !itemType.Valid() {
			return models.WorkItem{}, ErrInvalidWorkItemType
		}
		item.Type = string(itemType)
	}

	subItemsToAdd := ids(req.SubItemsToAdd)
	for _, subItemID := range subItemsToAdd {
		if subItemID == id {
			return models.WorkItem{}, ErrSelfSubItem
		}
	}

	err = s.itemRepo.Transaction(func(repo repository.WorkItemRepository) error {
		if err := repo.Update(item); err != nil {
			return fmt.Errorf("failed to update work item: %w", err)
		}
		if err := repo.AddSubItems(id, subItemsToAdd); err != nil {
			return fmt.Errorf("failed to add sub items: %w", err)
		}
		if err := repo.RemoveSubItems(id, ids(req.SubItemsToRemove)); err != nil {
			return fmt.Errorf("failed to remove sub items: %w", err)
		}
		return nil
	})
	if err != nil {
		return models.WorkItem{}, err
	}

	return s.GetWorkItem(id)
}

func skipEmpty[T ~string](v dto.Optional[T]) dto.Optional[T] {
	if s, ok := v.Get(); ok && s == "" {
		return dto.None[T]()
	}
	return v
}

func (s *WorkItemService) DeleteWorkItem(id string) error {
	if _, err := s.itemRepo.FindByID(id); err != nil {
		return lookupError(err, ErrWorkItemNotFound, "work item")
	}

	if err := s.itemRepo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete work item: %w", err)
	}

	return nil
}
