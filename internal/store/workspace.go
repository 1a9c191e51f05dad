package store

import (
	"context"

	"github.com/yukikurage/project-dashboard/internal/dto"
	"github.com/yukikurage/project-dashboard/internal/models"
)

// WorkspaceStore holds the workspaces and their resources. Contact changes
// alter users' workspace views server-side; callers refresh the user store
// themselves afterwards.
type WorkspaceStore struct {
	*hub
	resourceSet
	api        WorkspaceAPI
	locks      keyLock
	workspaces list[models.Workspace]
}

// NewWorkspaceStore returns an empty store backed by api.
func NewWorkspaceStore(api WorkspaceAPI) *WorkspaceStore {
	h := &hub{}
	return &WorkspaceStore{
		hub:         h,
		resourceSet: newResourceSet(api, h),
		api:         api,
	}
}

// Workspaces returns the current snapshot.
func (s *WorkspaceStore) Workspaces() Loadable[models.Workspace] {
	return s.workspaces.snapshot()
}

// Workspace looks up one workspace in the snapshot.
func (s *WorkspaceStore) Workspace(id string) (models.Workspace, bool) {
	return s.workspaces.find(id)
}

// LoadAll replaces the collection with the server's list.
func (s *WorkspaceStore) LoadAll(ctx context.Context) error {
	workspaces, err := s.api.List(ctx)
	if err != nil {
		return err
	}
	s.workspaces.replace(workspaces)
	s.notify()
	return nil
}

// Create creates a workspace and adds it to the snapshot.
func (s *WorkspaceStore) Create(ctx context.Context, title, organizationID string) (models.Workspace, error) {
	ws, err := s.api.Create(ctx, title, organizationID)
	if err != nil {
		return models.Workspace{}, err
	}
	s.workspaces.add(ws)
	s.notify()
	return ws, nil
}

// Update sends req and replaces the workspace with the server's copy.
func (s *WorkspaceStore) Update(ctx context.Context, id string, req dto.UpdateWorkspaceRequest) (models.Workspace, error) {
	unlock := s.locks.lock(id)
	defer unlock()

	ws, err := s.api.Update(ctx, id, req)
	if err != nil {
		return models.Workspace{}, err
	}
	if s.workspaces.update(ws) {
		s.notify()
	}
	return ws, nil
}

// AddContacts and RemoveContacts are shorthands for Update.
func (s *WorkspaceStore) AddContacts(ctx context.Context, id string, userIDs ...string) (models.Workspace, error) {
	return s.Update(ctx, id, dto.UpdateWorkspaceRequest{ContactsToAdd: dto.Some(userIDs)})
}

func (s *WorkspaceStore) RemoveContacts(ctx context.Context, id string, userIDs ...string) (models.Workspace, error) {
	return s.Update(ctx, id, dto.UpdateWorkspaceRequest{ContactsToRemove: dto.Some(userIDs)})
}

// Delete deletes the workspace and forgets its resources.
func (s *WorkspaceStore) Delete(ctx context.Context, id string) error {
	unlock := s.locks.lock(id)
	defer unlock()

	if err := s.api.Delete(ctx, id); err != nil {
		return err
	}
	removed := s.workspaces.remove(id)
	if s.resources.drop(id) || removed {
		s.notify()
	}
	return nil
}
