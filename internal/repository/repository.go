package repository

import (
	"github.com/yukikurage/project-dashboard/internal/models"
	"github.com/yukikurage/project-dashboard/internal/schema"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// UserRepository defines the interface for user data access
type UserRepository interface {
	// Create creates a new user
	Create(user *schema.User) error

	// FindByID finds a user by ID
	FindByID(id string) (*schema.User, error)

	// FindByEmail finds a user by email address
	FindByEmail(email string) (*schema.User, error)

	// List lists all users
	List() ([]schema.User, error)

	// Update updates a user
	Update(user *schema.User) error

	// Delete soft deletes a user, drops their memberships and contact entries
	// and unassigns their work items
	Delete(id string) error

	// CountByIDs counts how many of the given user IDs exist
	CountByIDs(ids []string) (int64, error)

	// OrganizationIDs returns, per user, the organizations the user owns and
	// belongs to. Users without any appear with empty lists.
	OrganizationIDs(userIDs []string) (map[string]UserOrganizations, error)
}

// UserOrganizations holds the organization ids computed for one user
type UserOrganizations struct {
	Owned    []string
	MemberOf []string
}

// OrganizationRepository defines the interface for organization data access
type OrganizationRepository interface {
	// Create creates a new organization with its owner as the first member
	Create(org *schema.Organization) error

	// FindByID finds an organization by ID with owner and members preloaded
	FindByID(id string) (*schema.Organization, error)

	// List lists all organizations
	List() ([]schema.Organization, error)

	// Update updates an organization's own columns
	Update(org *schema.Organization) error

	// Delete deletes an organization with its workspaces, members and
	// resource links
	Delete(id string) error

	// AddMembers adds members, skipping those already present
	AddMembers(organizationID string, userIDs []string) error

	// RemoveMembers removes members
	RemoveMembers(organizationID string, userIDs []string) error

	// Transaction runs fn with a repository bound to one transaction
	Transaction(fn func(repo OrganizationRepository) error) error
}

// WorkspaceRepository defines the interface for workspace data access
type WorkspaceRepository interface {
	Create(workspace *schema.Workspace) error
	FindByID(id string) (*schema.Workspace, error)
	List() ([]schema.Workspace, error)
	Update(workspace *schema.Workspace) error

	// Delete deletes a workspace with its projects, contacts and resource links
	Delete(id string) error

	AddContacts(workspaceID string, userIDs []string) error
	RemoveContacts(workspaceID string, userIDs []string) error
	AddProjects(workspaceID string, projectIDs []string) error
	RemoveProjects(workspaceID string, projectIDs []string) error

	Transaction(fn func(repo WorkspaceRepository) error) error
}

// ProjectRepository defines the interface for project data access
type ProjectRepository interface {
	// Create creates a project and links it into its workspace
	Create(project *schema.Project) error
	FindByID(id string) (*schema.Project, error)
	List() ([]schema.Project, error)
	Update(project *schema.Project) error

	// Delete deletes a project with its work items, activities and links
	Delete(id string) error
}

// ActivityRepository defines the interface for iteration and milestone data
// access. Every lookup is scoped to a project and a kind.
type ActivityRepository interface {
	Create(activity *schema.Activity) error
	FindByID(projectID string, kind models.ActivityKind, id string) (*schema.Activity, error)
	List(projectID string, kind models.ActivityKind) ([]schema.Activity, error)
	Update(activity *schema.Activity) error
	Delete(id string) error

	AddItems(activityID string, workItemIDs []string) error
	RemoveItems(activityID string, workItemIDs []string) error

	Transaction(fn func(repo ActivityRepository) error) error
}

// WorkItemRepository defines the interface for work item data access
type WorkItemRepository interface {
	Create(item *schema.WorkItem) error
	FindByID(id string) (*schema.WorkItem, error)

	// List lists the work items of a project, or all of them when projectID is empty
	List(projectID string) ([]schema.WorkItem, error)
	Update(item *schema.WorkItem) error

	// Delete deletes a work item and every reference to it
	Delete(id string) error

	AddSubItems(workItemID string, subItemIDs []string) error
	RemoveSubItems(workItemID string, subItemIDs []string) error

	Transaction(fn func(repo WorkItemRepository) error) error
}

// ResourceRepository defines the interface for resource data access. A
// resource is reached through the parent it is linked to.
type ResourceRepository interface {
	// Create creates a resource linked to one parent
	Create(parentKind models.ParentKind, parentID string, res *schema.Resource) error

	// FindByID finds a resource linked to the given parent
	FindByID(parentKind models.ParentKind, parentID, id string) (*schema.Resource, error)

	// FindAnyByID finds a resource regardless of its links
	FindAnyByID(id string) (*schema.Resource, error)

	List(parentKind models.ParentKind, parentID string) ([]schema.Resource, error)
	Update(res *schema.Resource) error

	// Link links an existing resource to another parent
	Link(parentKind models.ParentKind, parentID, id string) error

	// Unlink removes the link and deletes the resource once nothing links it
	Unlink(parentKind models.ParentKind, parentID, id string) error
}

// insertMissing inserts join rows, skipping the ones already present.
func insertMissing(db *gorm.DB, rows interface{}) error {
	return db.Clauses(clause.OnConflict{DoNothing: true}).Create(rows).Error
}
