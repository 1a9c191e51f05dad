package client

import (
	"context"
	"net/http"

	"github.com/yukikurage/project-dashboard/internal/dto"
	"github.com/yukikurage/project-dashboard/internal/models"
)

const organizationsPath = "organizations"

// OrganizationClient accesses /api/organizations and its resources.
type OrganizationClient struct {
	resourceRoutes
	c *Client
}

// NewOrganizationClient returns an OrganizationClient that sends requests through c.
func NewOrganizationClient(c *Client) *OrganizationClient {
	return &OrganizationClient{
		resourceRoutes: resourceRoutes{c: c, collection: organizationsPath, noun: "organization"},
		c:              c,
	}
}

// Create creates an organization owned by ownerID.
func (o *OrganizationClient) Create(ctx context.Context, name, ownerID string) (models.Organization, error) {
	req := dto.CreateOrganizationRequest{Name: name, OwnerID: ownerID}
	return getOne[models.Organization](ctx, o.c, "create organization", http.MethodPost,
		route(apiPrefix, organizationsPath), req)
}

// List returns every organization.
func (o *OrganizationClient) List(ctx context.Context) ([]models.Organization, error) {
	return getList[models.Organization](ctx, o.c, "get organizations", route(apiPrefix, organizationsPath), nil)
}

// Get returns one organization.
func (o *OrganizationClient) Get(ctx context.Context, organizationID string) (models.Organization, error) {
	return getOne[models.Organization](ctx, o.c, "get organization", http.MethodGet,
		route(apiPrefix, organizationsPath, organizationID), nil)
}

// Update renames the organization and adds or removes members. Absent fields
// are sent as null.
func (o *OrganizationClient) Update(ctx context.Context, organizationID string, req dto.UpdateOrganizationRequest) (models.Organization, error) {
	return getOne[models.Organization](ctx, o.c, "update organization", http.MethodPut,
		route(apiPrefix, organizationsPath, organizationID), req)
}

// Delete deletes an organization together with its workspaces.
func (o *OrganizationClient) Delete(ctx context.Context, organizationID string) error {
	return o.c.do(ctx, "delete organization", http.MethodDelete,
		route(apiPrefix, organizationsPath, organizationID), nil, nil, nil)
}
