package store

import (
	"context"

	"github.com/yukikurage/project-dashboard/internal/dto"
	"github.com/yukikurage/project-dashboard/internal/models"
)

// The interfaces below are the slices of the resource access clients each
// store depends on. Tests substitute in-memory fakes.

type ResourceAPI interface {
	CreateResource(ctx context.Context, parentID string, req dto.CreateResourceRequest) (models.Resource, error)
	ListResources(ctx context.Context, parentID string) ([]models.Resource, error)
	UpdateResource(ctx context.Context, parentID, resourceID string, req dto.UpdateResourceRequest) (models.Resource, error)
	DeleteResource(ctx context.Context, parentID, resourceID string) error
}

type OrganizationAPI interface {
	ResourceAPI
	Create(ctx context.Context, name, ownerID string) (models.Organization, error)
	List(ctx context.Context) ([]models.Organization, error)
	Update(ctx context.Context, organizationID string, req dto.UpdateOrganizationRequest) (models.Organization, error)
	Delete(ctx context.Context, organizationID string) error
}

type WorkspaceAPI interface {
	ResourceAPI
	Create(ctx context.Context, title, organizationID string) (models.Workspace, error)
	List(ctx context.Context) ([]models.Workspace, error)
	Update(ctx context.Context, workspaceID string, req dto.UpdateWorkspaceRequest) (models.Workspace, error)
	Delete(ctx context.Context, workspaceID string) error
}

type ProjectAPI interface {
	ResourceAPI
	Create(ctx context.Context, title, workspaceID string) (models.Project, error)
	List(ctx context.Context) ([]models.Project, error)
	Update(ctx context.Context, projectID string, req dto.UpdateProjectRequest) (models.Project, error)
	Delete(ctx context.Context, projectID string) error
	AttachResource(ctx context.Context, projectID, resourceID string) (models.Resource, error)

	CreateIteration(ctx context.Context, projectID, title string) (models.ProjectActivity, error)
	ListIterations(ctx context.Context, projectID string) ([]models.ProjectActivity, error)
	UpdateIteration(ctx context.Context, projectID, iterationID string, req dto.UpdateActivityRequest) (models.ProjectActivity, error)
	DeleteIteration(ctx context.Context, projectID, iterationID string) error

	CreateMilestone(ctx context.Context, projectID, title string) (models.ProjectActivity, error)
	ListMilestones(ctx context.Context, projectID string) ([]models.ProjectActivity, error)
	UpdateMilestone(ctx context.Context, projectID, milestoneID string, req dto.UpdateActivityRequest) (models.ProjectActivity, error)
	DeleteMilestone(ctx context.Context, projectID, milestoneID string) error
}

type WorkItemAPI interface {
	Create(ctx context.Context, projectID, title string) (models.WorkItem, error)
	List(ctx context.Context, projectID string) ([]models.WorkItem, error)
	Update(ctx context.Context, workItemID string, req dto.UpdateWorkItemRequest) (models.WorkItem, error)
	Delete(ctx context.Context, workItemID string) error
}

type UserAPI interface {
	Create(ctx context.Context, req dto.CreateUserRequest) (models.User, error)
	List(ctx context.Context) ([]models.User, error)
	Update(ctx context.Context, userID string, req dto.UpdateUserRequest) (models.User, error)
	Delete(ctx context.Context, userID string) error
}
