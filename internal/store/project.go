package store

import (
	"context"

	"github.com/yukikurage/project-dashboard/internal/dto"
	"github.com/yukikurage/project-dashboard/internal/models"
)

// ProjectStore holds the projects together with their resources, iterations
// and milestones.
type ProjectStore struct {
	*hub
	resourceSet
	api        ProjectAPI
	locks      keyLock
	projects   list[models.Project]
	iterations *activitySet
	milestones *activitySet
}

// NewProjectStore returns an empty store backed by api.
func NewProjectStore(api ProjectAPI) *ProjectStore {
	h := &hub{}
	return &ProjectStore{
		hub:         h,
		resourceSet: newResourceSet(api, h),
		api:         api,
		iterations: &activitySet{
			changed: h,
			create:  api.CreateIteration,
			list:    api.ListIterations,
			update:  api.UpdateIteration,
			delete:  api.DeleteIteration,
		},
		milestones: &activitySet{
			changed: h,
			create:  api.CreateMilestone,
			list:    api.ListMilestones,
			update:  api.UpdateMilestone,
			delete:  api.DeleteMilestone,
		},
	}
}

// Projects returns the current snapshot.
func (s *ProjectStore) Projects() Loadable[models.Project] {
	return s.projects.snapshot()
}

// Project looks up one project in the snapshot.
func (s *ProjectStore) Project(id string) (models.Project, bool) {
	return s.projects.find(id)
}

// LoadAll replaces the collection with the server's list.
func (s *ProjectStore) LoadAll(ctx context.Context) error {
	projects, err := s.api.List(ctx)
	if err != nil {
		return err
	}
	s.projects.replace(projects)
	s.notify()
	return nil
}

// Create creates a project and adds it to the snapshot.
func (s *ProjectStore) Create(ctx context.Context, title, workspaceID string) (models.Project, error) {
	project, err := s.api.Create(ctx, title, workspaceID)
	if err != nil {
		return models.Project{}, err
	}
	s.projects.add(project)
	s.notify()
	return project, nil
}

// Update sends req and replaces the project with the server's copy.
func (s *ProjectStore) Update(ctx context.Context, id string, req dto.UpdateProjectRequest) (models.Project, error) {
	unlock := s.locks.lock(id)
	defer unlock()

	project, err := s.api.Update(ctx, id, req)
	if err != nil {
		return models.Project{}, err
	}
	if s.projects.update(project) {
		s.notify()
	}
	return project, nil
}

// Delete removes the project along with the nested collections kept for it.
func (s *ProjectStore) Delete(ctx context.Context, id string) error {
	unlock := s.locks.lock(id)
	defer unlock()

	if err := s.api.Delete(ctx, id); err != nil {
		return err
	}
	changed := s.projects.remove(id)
	changed = s.resources.drop(id) || changed
	changed = s.iterations.items.drop(id) || changed
	changed = s.milestones.items.drop(id) || changed
	if changed {
		s.notify()
	}
	return nil
}

// AttachResource links an existing resource to the project.
func (s *ProjectStore) AttachResource(ctx context.Context, projectID, resourceID string) (models.Resource, error) {
	unlock := s.resLocks.lock(childKey(projectID, resourceID))
	defer unlock()

	res, err := s.api.AttachResource(ctx, projectID, resourceID)
	if err != nil {
		return models.Resource{}, err
	}
	s.resources.add(projectID, res)
	s.notify()
	return res, nil
}

// Iterations returns the known iterations of projectID.
func (s *ProjectStore) Iterations(projectID string) Loadable[models.ProjectActivity] {
	return s.iterations.items.get(projectID)
}

// LoadIterations replaces the iterations of projectID with the server's list.
func (s *ProjectStore) LoadIterations(ctx context.Context, projectID string) error {
	return s.iterations.load(ctx, projectID)
}

// CreateIteration creates an iteration and adds it to the project's list.
func (s *ProjectStore) CreateIteration(ctx context.Context, projectID, title string) (models.ProjectActivity, error) {
	return s.iterations.add(ctx, projectID, title)
}

// UpdateIteration sends req and replaces the iteration with the server's copy.
func (s *ProjectStore) UpdateIteration(ctx context.Context, projectID, iterationID string, req dto.UpdateActivityRequest) (models.ProjectActivity, error) {
	return s.iterations.change(ctx, projectID, iterationID, req)
}

// DeleteIteration deletes an iteration and removes it from the project's list.
func (s *ProjectStore) DeleteIteration(ctx context.Context, projectID, iterationID string) error {
	return s.iterations.remove(ctx, projectID, iterationID)
}

// Milestones returns the known milestones of projectID.
func (s *ProjectStore) Milestones(projectID string) Loadable[models.ProjectActivity] {
	return s.milestones.items.get(projectID)
}

// LoadMilestones replaces the milestones of projectID with the server's list.
func (s *ProjectStore) LoadMilestones(ctx context.Context, projectID string) error {
	return s.milestones.load(ctx, projectID)
}

// CreateMilestone creates a milestone and adds it to the project's list.
func (s *ProjectStore) CreateMilestone(ctx context.Context, projectID, title string) (models.ProjectActivity, error) {
	return s.milestones.add(ctx, projectID, title)
}

// UpdateMilestone sends req and replaces the milestone with the server's copy.
func (s *ProjectStore) UpdateMilestone(ctx context.Context, projectID, milestoneID string, req dto.UpdateActivityRequest) (models.ProjectActivity, error) {
	return s.milestones.change(ctx, projectID, milestoneID, req)
}

// DeleteMilestone deletes a milestone and removes it from the project's list.
func (s *ProjectStore) DeleteMilestone(ctx context.Context, projectID, milestoneID string) error {
	return s.milestones.remove(ctx, projectID, milestoneID)
}

// activitySet keeps one kind of project activity per project.
type activitySet struct {
	changed *hub
	locks   keyLock
	items   nested[models.ProjectActivity]

	create func(ctx context.Context, projectID, title string) (models.ProjectActivity, error)
	list   func(ctx context.Context, projectID string) ([]models.ProjectActivity, error)
	update func(ctx context.Context, projectID, activityID string, req dto.UpdateActivityRequest) (models.ProjectActivity, error)
	delete func(ctx context.Context, projectID, activityID string) error
}

func (a *activitySet) load(ctx context.Context, projectID string) error {
	items, err := a.list(ctx, projectID)
	if err != nil {
		return err
	}
	a.items.set(projectID, items)
	a.changed.notify()
	return nil
}

func (a *activitySet) add(ctx context.Context, projectID, title string) (models.ProjectActivity, error) {
	activity, err := a.create(ctx, projectID, title)
	if err != nil {
		return models.ProjectActivity{}, err
	}
	a.items.add(projectID, activity)
	a.changed.notify()
	return activity, nil
}

func (a *activitySet) change(ctx context.Context, projectID, activityID string, req dto.UpdateActivityRequest) (models.ProjectActivity, error) {
	unlock := a.locks.lock(childKey(projectID, activityID))
	defer unlock()

	activity, err := a.update(ctx, projectID, activityID, req)
	if err != nil {
		return models.ProjectActivity{}, err
	}
	if a.items.update(projectID, activity) {
		a.changed.notify()
	}
	return activity, nil
}

func (a *activitySet) remove(ctx context.Context, projectID, activityID string) error {
	unlock := a.locks.lock(childKey(projectID, activityID))
	defer unlock()

	if err := a.delete(ctx, projectID, activityID); err != nil {
		return err
	}
	if a.items.remove(projectID, activityID) {
		a.changed.notify()
	}
	return nil
}
