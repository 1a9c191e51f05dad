package store

import (
	"context"

	"github.com/yukikurage/project-dashboard/internal/dto"
	"github.com/yukikurage/project-dashboard/internal/models"
)

// OrganizationStore holds the organizations and their resources.
type OrganizationStore struct {
	*hub
	resourceSet
	api   OrganizationAPI
	locks keyLock
	orgs  list[models.Organization]
}

// NewOrganizationStore returns an empty store backed by api.
func NewOrganizationStore(api OrganizationAPI) *OrganizationStore {
	h := &hub{}
	return &OrganizationStore{
		hub:         h,
		resourceSet: newResourceSet(api, h),
		api:         api,
	}
}

// Organizations returns the current snapshot.
func (s *OrganizationStore) Organizations() Loadable[models.Organization] {
	return s.orgs.snapshot()
}

// Organization looks up one organization in the snapshot.
func (s *OrganizationStore) Organization(id string) (models.Organization, bool) {
	return s.orgs.find(id)
}

// LoadAll replaces the collection with the server's list.
func (s *OrganizationStore) LoadAll(ctx context.Context) error {
	orgs, err := s.api.List(ctx)
	if err != nil {
		return err
	}
	s.orgs.replace(orgs)
	s.notify()
	return nil
}

// Create creates an organization and adds it to the snapshot.
func (s *OrganizationStore) Create(ctx context.Context, name, ownerID string) (models.Organization, error) {
	org, err := s.api.Create(ctx, name, ownerID)
	if err != nil {
		return models.Organization{}, err
	}
	s.orgs.add(org)
	s.notify()
	return org, nil
}

// Update sends req and replaces the organization with the server's copy.
func (s *OrganizationStore) Update(ctx context.Context, id string, req dto.UpdateOrganizationRequest) (models.Organization, error) {
	unlock := s.locks.lock(id)
	defer unlock()

	org, err := s.api.Update(ctx, id, req)
	if err != nil {
		return models.Organization{}, err
	}
	if s.orgs.update(org) {
		s.notify()
	}
	return org, nil
}

// Delete deletes the organization and forgets its resources.
func (s *OrganizationStore) Delete(ctx context.Context, id string) error {
	unlock := s.locks.lock(id)
	defer unlock()

	if err := s.api.Delete(ctx, id); err != nil {
		return err
	}
	removed := s.orgs.remove(id)
	if s.resources.drop(id) || removed {
		s.notify()
	}
	return nil
}
