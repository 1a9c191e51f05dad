package client

import (
	"context"
	"net/http"

	"github.com/yukikurage/project-dashboard/internal/dto"
	"github.com/yukikurage/project-dashboard/internal/models"
)

const workspacesPath = "workspaces"

// WorkspaceClient accesses /api/workspaces and its resources.
type WorkspaceClient struct {
	resourceRoutes
	c *Client
}

// NewWorkspaceClient returns a WorkspaceClient that sends requests through c.
func NewWorkspaceClient(c *Client) *WorkspaceClient {
	return &WorkspaceClient{
		resourceRoutes: resourceRoutes{c: c, collection: workspacesPath, noun: "workspace"},
		c:              c,
	}
}

// Create creates a workspace inside organizationID.
func (w *WorkspaceClient) Create(ctx context.Context, title, organizationID string) (models.Workspace, error) {
	req := dto.CreateWorkspaceRequest{Title: title, OrganizationID: organizationID}
	return getOne[models.Workspace](ctx, w.c, "create workspace", http.MethodPost,
		route(apiPrefix, workspacesPath), req)
}

// List returns every workspace.
func (w *WorkspaceClient) List(ctx context.Context) ([]models.Workspace, error) {
	return getList[models.Workspace](ctx, w.c, "get workspaces", route(apiPrefix, workspacesPath), nil)
}

// Get returns one workspace with its contacts.
func (w *WorkspaceClient) Get(ctx context.Context, workspaceID string) (models.Workspace, error) {
	return getOne[models.Workspace](ctx, w.c, "get workspace", http.MethodGet,
		route(apiPrefix, workspacesPath, workspaceID), nil)
}

// Update changes the title and adds or removes contacts and projects by id.
func (w *WorkspaceClient) Update(ctx context.Context, workspaceID string, req dto.UpdateWorkspaceRequest) (models.Workspace, error) {
	return getOne[models.Workspace](ctx, w.c, "update workspace", http.MethodPut,
		route(apiPrefix, workspacesPath, workspaceID), req)
}

// Delete deletes a workspace together with its projects.
func (w *WorkspaceClient) Delete(ctx context.Context, workspaceID string) error {
	return w.c.do(ctx, "delete workspace", http.MethodDelete,
		route(apiPrefix, workspacesPath, workspaceID), nil, nil, nil)
}
