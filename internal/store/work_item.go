package store

import (
	"context"

	"github.com/yukikurage/project-dashboard/internal/dto"
	"github.com/yukikurage/project-dashboard/internal/models"
)

// WorkItemStore holds the work items of the project last loaded.
type WorkItemStore struct {
	*hub
	api   WorkItemAPI
	locks keyLock
	items list[models.WorkItem]
}

// NewWorkItemStore returns an empty store backed by api.
func NewWorkItemStore(api WorkItemAPI) *WorkItemStore {
	return &WorkItemStore{hub: &hub{}, api: api}
}

// WorkItems returns the current snapshot.
func (s *WorkItemStore) WorkItems() Loadable[models.WorkItem] {
	return s.items.snapshot()
}

// WorkItem looks up one work item in the snapshot.
func (s *WorkItemStore) WorkItem(id string) (models.WorkItem, bool) {
	return s.items.find(id)
}

// Load replaces the collection with the work items of projectID. An empty
// projectID loads every work item.
func (s *WorkItemStore) Load(ctx context.Context, projectID string) error {
	items, err := s.api.List(ctx, projectID)
	if err != nil {
		return err
	}
	s.items.replace(items)
	s.notify()
	return nil
}

// Create creates a work item and adds it to the snapshot.
func (s *WorkItemStore) Create(ctx context.Context, projectID, title string) (models.WorkItem, error) {
	item, err := s.api.Create(ctx, projectID, title)
	if err != nil {
		return models.WorkItem{}, err
	}
	s.items.add(item)
	s.notify()
	return item, nil
}

// Update sends req and replaces the work item with the server's copy.
func (s *WorkItemStore) Update(ctx context.Context, id string, req dto.UpdateWorkItemRequest) (models.WorkItem, error) {
	unlock := s.locks.lock(id)
	defer unlock()

	item, err := s.api.Update(ctx, id, req)
	if err != nil {
		return models.WorkItem{}, err
	}
	if s.items.update(item) {
		s.notify()
	}
	return item, nil
}

// Delete deletes the work item and removes it from the snapshot.
func (s *WorkItemStore) Delete(ctx context.Context, id string) error {
	unlock := s.locks.lock(id)
	defer unlock()

	if err := s.api.Delete(ctx, id); err != nil {
		return err
	}
	if s.items.remove(id) {
		s.notify()
	}
	return nil
}
