package services

import (
	"fmt"

	"github.com/yukikurage/project-dashboard/internal/dto"
	"github.com/yukikurage/project-dashboard/internal/models"
	"github.com/yukikurage/project-dashboard/internal/repository"
	"github.com/yukikurage/project-dashboard/internal/schema"
)

// ActivityService provides business logic for one kind of project activity:
// iterations or milestones.
type ActivityService struct {
	kind         models.ActivityKind
	activityRepo repository.ActivityRepository
	projectRepo  repository.ProjectRepository
}

// NewActivityService creates a new ActivityService for kind.
func NewActivityService(kind models.ActivityKind, activityRepo repository.ActivityRepository, projectRepo repository.ProjectRepository) *ActivityService {
	return &ActivityService{
		kind:         kind,
		activityRepo: activityRepo,
		projectRepo:  projectRepo,
	}
}

func (s *ActivityService) Kind() models.ActivityKind {
	return s.kind
}

func (s *ActivityService) checkProject(projectID string) error {
	if _, err := s.projectRepo.FindByID(projectID); err != nil {
		return lookupError(err, ErrProjectNotFound, "project")
	}
	return nil
}

func (s *ActivityService) find(projectID, id string) (*schema.Activity, error) {
	activity, err := s.activityRepo.FindByID(projectID, s.kind, id)
	if err != nil {
		return nil, lookupError(err, fmt.Errorf("%s: %w", s.kind, ErrActivityNotFound), string(s.kind))
	}
	return activity, nil
}

func (s *ActivityService) CreateActivity(projectID, title string) (models.ProjectActivity, error) {
	title, err := requireText(title, ErrTitleEmpty)
	if err != nil {
		return models.ProjectActivity{}, err
	}

	if err := s.checkProject(projectID); err != nil {
		return models.ProjectActivity{}, err
	}

	activity := &schema.Activity{
		ProjectID: projectID,
		Kind:      string(s.kind),
		Title:     title,
	}
	if err := s.activityRepo.Create(activity); err != nil {
		return models.ProjectActivity{}, fmt.Errorf("failed to create %s: %w", s.kind, err)
	}

	return dto.ToProjectActivity(*activity), nil
}

func (s *ActivityService) ListActivities(projectID string) ([]models.ProjectActivity, error) {
	if err := s.checkProject(projectID); err != nil {
		return nil, err
	}

	activities, err := s.activityRepo.List(projectID, s.kind)
	if err != nil {
		return nil, fmt.Errorf("failed to list %ss: %w", s.kind, err)
	}

	out := make([]models.ProjectActivity, len(activities))
	for i, a := range activities {
		out[i] = dto.ToProjectActivity(a)
	}
	return out, nil
}

func (s *ActivityService) GetActivity(projectID, id string) (models.ProjectActivity, error) {
	activity, err := s.find(projectID, id)
	if err != nil {
		return models.ProjectActivity{}, err
	}
	return dto.ToProjectActivity(*activity), nil
}

func (s *ActivityService) UpdateActivity(projectID, id string, req dto.UpdateActivityRequest) (models.ProjectActivity, error) {
	activity, err := s.find(projectID, id)
	if err != nil {
		return models.ProjectActivity{}, err
	}

	if err := applyText(&activity.Title, req.Title, ErrTitleEmpty); err != nil {
		return models.ProjectActivity{}, err
	}
	apply(&activity.Description, req.Description)

	err = s.activityRepo.Transaction(func(repo repository.ActivityRepository) error {
		if req.Title.IsSet() || req.Description.IsSet() {
			if err := repo.Update(activity); err != nil {
				return fmt.Errorf("failed to update %s: %w", s.kind, err)
			}
		}
		if err := repo.AddItems(id, ids(req.ItemsToAdd)); err != nil {
			return fmt.Errorf("failed to add items: %w", err)
		}
		if err := repo.RemoveItems(id, ids(req.ItemsToRemove)); err != nil {
			return fmt.Errorf("failed to remove items: %w", err)
		}
		return nil
	})
	if err != nil {
		return models.ProjectActivity{}, err
	}

	return s.GetActivity(projectID, id)
}

func (s *ActivityService) DeleteActivity(projectID, id string) error {
	if _, err := s.find(projectID, id); err != nil {
		return err
	}

	if err := s.activityRepo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete %s: %w", s.kind, err)
	}

	return nil
}
