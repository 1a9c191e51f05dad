package store

import (
	"context"

	"github.com/yukikurage/project-dashboard/internal/dto"
	"github.com/yukikurage/project-dashboard/internal/models"
)

// resourceSet keeps the resources of every parent of one family. It is
// embedded by the organization, workspace and project stores.
type resourceSet struct {
	resourceAPI ResourceAPI
	changed     *hub
	resLocks    keyLock
	resources   nested[models.Resource]
}

func newResourceSet(api ResourceAPI, changed *hub) resourceSet {
	return resourceSet{resourceAPI: api, changed: changed}
}

// Resources returns the known resources of parentID.
func (r *resourceSet) Resources(parentID string) Loadable[models.Resource] {
	return r.resources.get(parentID)
}

// LoadResources replaces the resources of parentID with the server's list.
func (r *resourceSet) LoadResources(ctx context.Context, parentID string) error {
	items, err := r.resourceAPI.ListResources(ctx, parentID)
	if err != nil {
		return err
	}
	r.resources.set(parentID, items)
	r.changed.notify()
	return nil
}

// CreateResource creates a resource under parentID and adds it to its list.
func (r *resourceSet) CreateResource(ctx context.Context, parentID, title, url string) (models.Resource, error) {
	res, err := r.resourceAPI.CreateResource(ctx, parentID, dto.CreateResourceRequest{Title: title, URL: url})
	if err != nil {
		return models.Resource{}, err
	}
	r.resources.add(parentID, res)
	r.changed.notify()
	return res, nil
}

// UpdateResource sends req and replaces the resource with the server's copy.
func (r *resourceSet) UpdateResource(ctx context.Context, parentID, resourceID string, req dto.UpdateResourceRequest) (models.Resource, error) {
	unlock := r.resLocks.lock(childKey(parentID, resourceID))
	defer unlock()

	res, err := r.resourceAPI.UpdateResource(ctx, parentID, resourceID, req)
	if err != nil {
		return models.Resource{}, err
	}
	if r.resources.update(parentID, res) {
		r.changed.notify()
	}
	return res, nil
}

// DeleteResource deletes a resource of parentID and removes it from its list.
func (r *resourceSet) DeleteResource(ctx context.Context, parentID, resourceID string) error {
	unlock := r.resLocks.lock(childKey(parentID, resourceID))
	defer unlock()

	if err := r.resourceAPI.DeleteResource(ctx, parentID, resourceID); err != nil {
		return err
	}
	if r.resources.remove(parentID, resourceID) {
		r.changed.notify()
	}
	return nil
}
