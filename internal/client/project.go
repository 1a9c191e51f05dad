package client

import (
	"context"
	"net/http"

	"github.com/yukikurage/project-dashboard/internal/dto"
	"github.com/yukikurage/project-dashboard/internal/models"
)

const projectsPath = "projects"

// ProjectClient accesses /api/projects with its resources, iterations and
// milestones.
type ProjectClient struct {
	resourceRoutes
	c          *Client
	iterations activityRoutes
	milestones activityRoutes
}

// NewProjectClient returns a ProjectClient that sends requests through c.
func NewProjectClient(c *Client) *ProjectClient {
	return &ProjectClient{
		resourceRoutes: resourceRoutes{c: c, collection: projectsPath, noun: "project"},
		c:              c,
		iterations:     activityRoutes{c: c, segment: "iterations", noun: "iteration"},
		milestones:     activityRoutes{c: c, segment: "milestones", noun: "milestone"},
	}
}

// Create creates a project inside workspaceID.
func (p *ProjectClient) Create(ctx context.Context, title, workspaceID string) (models.Project, error) {
	req := dto.CreateProjectRequest{Title: title, WorkspaceID: workspaceID}
	return getOne[models.Project](ctx, p.c, "create project", http.MethodPost, route(apiPrefix, projectsPath), req)
}

// List returns every project.
func (p *ProjectClient) List(ctx context.Context) ([]models.Project, error) {
	return getList[models.Project](ctx, p.c, "get projects", route(apiPrefix, projectsPath), nil)
}

// Get returns one project.
func (p *ProjectClient) Get(ctx context.Context, projectID string) (models.Project, error) {
	return getOne[models.Project](ctx, p.c, "get project", http.MethodGet, route(apiPrefix, projectsPath, projectID), nil)
}

// Update applies a partial update. The id is repeated in the body.
func (p *ProjectClient) Update(ctx context.Context, projectID string, req dto.UpdateProjectRequest) (models.Project, error) {
	req.ID = projectID
	return getOne[models.Project](ctx, p.c, "update project", http.MethodPut, route(apiPrefix, projectsPath, projectID), req)
}

// Delete deletes a project together with its work items, iterations and
// milestones.
func (p *ProjectClient) Delete(ctx context.Context, projectID string) error {
	return p.c.do(ctx, "delete project", http.MethodDelete, route(apiPrefix, projectsPath, projectID), nil, nil, nil)
}

// AttachResource links an existing resource to the project.
func (p *ProjectClient) AttachResource(ctx context.Context, projectID, resourceID string) (models.Resource, error) {
	return getOne[models.Resource](ctx, p.c, "add resource to project", http.MethodPost,
		route(apiPrefix, projectsPath, projectID, "resources", resourceID), nil)
}

// CreateIteration creates an iteration of projectID.
func (p *ProjectClient) CreateIteration(ctx context.Context, projectID, title string) (models.ProjectActivity, error) {
	return p.iterations.create(ctx, projectID, title)
}

// ListIterations returns the iterations of projectID.
func (p *ProjectClient) ListIterations(ctx context.Context, projectID string) ([]models.ProjectActivity, error) {
	return p.iterations.list(ctx, projectID)
}

// GetIteration returns one iteration of projectID.
func (p *ProjectClient) GetIteration(ctx context.Context, projectID, iterationID string) (models.ProjectActivity, error) {
	return p.iterations.get(ctx, projectID, iterationID)
}

// UpdateIteration applies a partial update to an iteration.
func (p *ProjectClient) UpdateIteration(ctx context.Context, projectID, iterationID string, req dto.UpdateActivityRequest) (models.ProjectActivity, error) {
	return p.iterations.update(ctx, projectID, iterationID, req)
}

// DeleteIteration deletes an iteration of projectID.
func (p *ProjectClient) DeleteIteration(ctx context.Context, projectID, iterationID string) error {
	return p.iterations.delete(ctx, projectID, iterationID)
}

// CreateMilestone creates a milestone of projectID.
func (p *ProjectClient) CreateMilestone(ctx context.Context, projectID, title string) (models.ProjectActivity, error) {
	return p.milestones.create(ctx, projectID, title)
}

// ListMilestones returns the milestones of projectID.
func (p *ProjectClient) ListMilestones(ctx context.Context, projectID string) ([]models.ProjectActivity, error) {
	return p.milestones.list(ctx, projectID)
}

// GetMilestone returns one milestone of projectID.
func (p *ProjectClient) GetMilestone(ctx context.Context, projectID, milestoneID string) (models.ProjectActivity, error) {
	return p.milestones.get(ctx, projectID, milestoneID)
}

// UpdateMilestone applies a partial update to a milestone.
func (p *ProjectClient) UpdateMilestone(ctx context.Context, projectID, milestoneID string, req dto.UpdateActivityRequest) (models.ProjectActivity, error) {
	return p.milestones.update(ctx, projectID, milestoneID, req)
}

// DeleteMilestone deletes a milestone of projectID.
func (p *ProjectClient) DeleteMilestone(ctx context.Context, projectID, milestoneID string) error {
	return p.milestones.delete(ctx, projectID, milestoneID)
}

// activityRoutes serves one of the /:id/iterations or /:id/milestones
// sub-collections.
type activityRoutes struct {
	c       *Client
	segment string
	noun    string
}

func (a activityRoutes) create(ctx context.Context, projectID, title string) (models.ProjectActivity, error) {
	return getOne[models.ProjectActivity](ctx, a.c, "create "+a.noun, http.MethodPost,
		route(apiPrefix, projectsPath, projectID, a.segment), dto.CreateActivityRequest{Title: title})
}

func (a activityRoutes) list(ctx context.Context, projectID string) ([]models.ProjectActivity, error) {
	return getList[models.ProjectActivity](ctx, a.c, "get "+a.segment, route(apiPrefix, projectsPath, projectID, a.segment), nil)
}

func (a activityRoutes) get(ctx context.Context, projectID, activityID string) (models.ProjectActivity, error) {
	return getOne[models.ProjectActivity](ctx, a.c, "get "+a.noun, http.MethodGet,
		route(apiPrefix, projectsPath, projectID, a.segment, activityID), nil)
}

func (a activityRoutes) update(ctx context.Context, projectID, activityID string, req dto.UpdateActivityRequest) (models.ProjectActivity, error) {
	return getOne[models.ProjectActivity](ctx, a.c, "update "+a.noun, http.MethodPut,
		route(apiPrefix, projectsPath, projectID, a.segment, activityID), req)
}

func (a activityRoutes) delete(ctx context.Context, projectID, activityID string) error {
	return a.c.do(ctx, "delete "+a.noun, http.MethodDelete,
		route(apiPrefix, projectsPath, projectID, a.segment, activityID), nil, nil, nil)
}
