package dto

import (
	"time"

	"github.com/yukikurage/project-dashboard/internal/models"
)

// Create payloads carry only what the owner supplies; everything else is
// filled in by the server. Update payloads use Optional for every field.

type CreateOrganizationRequest struct {
	Name    string `json:"name" binding:"required"`
	OwnerID string `json:"ownerId" binding:"required"`
}

type UpdateOrganizationRequest struct {
	Name            Optional[string]   `json:"name"`
	MembersToAdd    Optional[[]string] `json:"membersToAdd"`
	MembersToRemove Optional[[]string] `json:"membersToRemove"`
}

type CreateWorkspaceRequest struct {
	Title          string `json:"title" binding:"required"`
	OrganizationID string `json:"organizationId" binding:"required"`
}

type UpdateWorkspaceRequest struct {
	Title            Optional[string]   `json:"title"`
	ContactsToAdd    Optional[[]string] `json:"contactsToAdd"`
	ContactsToRemove Optional[[]string] `json:"contactsToRemove"`
	ProjectsToAdd    Optional[[]string] `json:"projectsToAdd"`
	ProjectsToRemove Optional[[]string] `json:"projectsToRemove"`
}

type CreateProjectRequest struct {
	Title       string `json:"title" binding:"required"`
	WorkspaceID string `json:"workspaceId" binding:"required"`
}

// UpdateProjectRequest repeats the project id in the body, as the backend
// expects it there too.
type UpdateProjectRequest struct {
	ID          string                    `json:"id"`
	Title       Optional[string]          `json:"title"`
	Description Optional[string]          `json:"description"`
	Status      Optional[models.Status]   `json:"status"`
	Priority    Optional[models.Priority] `json:"priority"`
	StartDate   Optional[time.Time]       `json:"startDate"`
	EndDate     Optional[time.Time]       `json:"endDate"`
}

// CreateActivityRequest creates an iteration or a milestone.
type CreateActivityRequest struct {
	Title string `json:"title" binding:"required"`
}

type UpdateActivityRequest struct {
	Title         Optional[string]   `json:"title"`
	Description   Optional[string]   `json:"description"`
	ItemsToAdd    Optional[[]string] `json:"itemsToAdd"`
	ItemsToRemove Optional[[]string] `json:"itemsToRemove"`
}

type CreateWorkItemRequest struct {
	Title     string `json:"title" binding:"required"`
	ProjectID string `json:"projectId" binding:"required"`
}

type UpdateWorkItemRequest struct {
	Title            Optional[string]              `json:"title"`
	Description      Optional[string]              `json:"description"`
	Status           Optional[models.Status]       `json:"status"`
	Priority         Optional[models.Priority]     `json:"priority"`
	Assignee         Optional[string]              `json:"assignee"`
	Type             Optional[models.WorkItemType] `json:"type"`
	SubItemsToAdd    Optional[[]string]            `json:"subItemsToAdd"`
	SubItemsToRemove Optional[[]string]            `json:"subItemsToRemove"`
}

type CreateResourceRequest struct {
	Title string `json:"title" binding:"required"`
	URL   string `json:"url" binding:"required"`
}

type UpdateResourceRequest struct {
	Title       Optional[string] `json:"title"`
	URL         Optional[string] `json:"url"`
	Description Optional[string] `json:"description"`
	Type        Optional[string] `json:"type"`
}

type CreateUserRequest struct {
	Firstname string `json:"firstname" binding:"required"`
	Lastname  string `json:"lastname" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
}

type UpdateUserRequest struct {
	Firstname Optional[string] `json:"firstname"`
	Lastname  Optional[string] `json:"lastname"`
	Email     Optional[string] `json:"email"`
}
