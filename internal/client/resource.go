package client

import (
	"context"
	"net/http"

	"github.com/yukikurage/project-dashboard/internal/dto"
	"github.com/yukikurage/project-dashboard/internal/models"
)

// resourceRoutes serves the /:id/resources sub-collection of one parent
// family. It is embedded by the organization, workspace and project clients.
type resourceRoutes struct {
	c          *Client
	collection string
	noun       string
}

// CreateResource creates a resource under parentID.
func (r resourceRoutes) CreateResource(ctx context.Context, parentID string, req dto.CreateResourceRequest) (models.Resource, error) {
	return getOne[models.Resource](ctx, r.c, "create "+r.noun+" resource", http.MethodPost,
		route(apiPrefix, r.collection, parentID, "resources"), req)
}

// ListResources lists the resources of parentID.
func (r resourceRoutes) ListResources(ctx context.Context, parentID string) ([]models.Resource, error) {
	return getList[models.Resource](ctx, r.c, "get "+r.noun+" resources",
		route(apiPrefix, r.collection, parentID, "resources"), nil)
}

// GetResource fetches one resource of parentID.
func (r resourceRoutes) GetResource(ctx context.Context, parentID, resourceID string) (models.Resource, error) {
	return getOne[models.Resource](ctx, r.c, "get "+r.noun+" resource", http.MethodGet,
		route(apiPrefix, r.collection, parentID, "resources", resourceID), nil)
}

// UpdateResource applies a partial update to one resource of parentID.
func (r resourceRoutes) UpdateResource(ctx context.Context, parentID, resourceID string, req dto.UpdateResourceRequest) (models.Resource, error) {
	return getOne[models.Resource](ctx, r.c, "update "+r.noun+" resource", http.MethodPut,
		route(apiPrefix, r.collection, parentID, "resources", resourceID), req)
}

// DeleteResource removes one resource of parentID.
func (r resourceRoutes) DeleteResource(ctx context.Context, parentID, resourceID string) error {
	return r.c.do(ctx, "delete "+r.noun+" resource", http.MethodDelete,
		route(apiPrefix, r.collection, parentID, "resources", resourceID), nil, nil, nil)
}
