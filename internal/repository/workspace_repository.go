package repository

import (
	"github.com/yukikurage/project-dashboard/internal/database"
	"github.com/yukikurage/project-dashboard/internal/schema"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormWorkspaceRepository is a GORM implementation of WorkspaceRepository
type GormWorkspaceRepository struct {
	db *gorm.DB
}

// NewWorkspaceRepository creates a new WorkspaceRepository
func NewWorkspaceRepository(db *gorm.DB) WorkspaceRepository {
	return &GormWorkspaceRepository{db: db}
}

func byCreation(db *gorm.DB) *gorm.DB {
	return db.Order("created_at ASC")
}

func (r *GormWorkspaceRepository) preloaded() *gorm.DB {
	return r.db.
		Preload("Contacts", byCreation).
		Preload("Contacts.User").
		Preload("Projects", byCreation)
}

func (r *GormWorkspaceRepository) Create(workspace *schema.Workspace) error {
	return r.db.Omit(clause.Associations).Create(workspace).Error
}

func (r *GormWorkspaceRepository) FindByID(id string) (*schema.Workspace, error) {
	var workspace schema.Workspace
	if err := r.preloaded().First(&workspace, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &workspace, nil
}

func (r *GormWorkspaceRepository) List() ([]schema.Workspace, error) {
	var workspaces []schema.Workspace
	if err := r.preloaded().Scopes(database.Ordered("workspaces")).Find(&workspaces).Error; err != nil {
		return nil, err
	}
	return workspaces, nil
}

func (r *GormWorkspaceRepository) Update(workspace *schema.Workspace) error {
	return r.db.Omit(clause.Associations).Save(workspace).Error
}

// Delete deletes a workspace with its projects, contacts and resource links
func (r *GormWorkspaceRepository) Delete(id string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		return deleteWorkspaces(tx, []string{id})
	})
}

func (r *GormWorkspaceRepository) AddContacts(workspaceID string, userIDs []string) error {
	if len(userIDs) == 0 {
		return nil
	}

	contacts := make([]schema.WorkspaceContact, len(userIDs))
	for i, userID := range userIDs {
		contacts[i] = schema.WorkspaceContact{WorkspaceID: workspaceID, UserID: userID}
	}

	return insertMissing(r.db.Omit(clause.Associations), &contacts)
}

func (r *GormWorkspaceRepository) RemoveContacts(workspaceID string, userIDs []string) error {
	if len(userIDs) == 0 {
		return nil
	}
	return r.db.Where("workspace_id = ? AND user_id IN ?", workspaceID, userIDs).
		Delete(&schema.WorkspaceContact{}).Error
}

func (r *GormWorkspaceRepository) AddProjects(workspaceID string, projectIDs []string) error {
	if len(projectIDs) == 0 {
		return nil
	}

	links := make([]schema.WorkspaceProject, len(projectIDs))
	for i, projectID := range projectIDs {
		links[i] = schema.WorkspaceProject{WorkspaceID: workspaceID, ProjectID: projectID}
	}

	return insertMissing(r.db, &links)
}

func (r *GormWorkspaceRepository) RemoveProjects(workspaceID string, projectIDs []string) error {
	if len(projectIDs) == 0 {
		return nil
	}
	return r.db.Where("workspace_id = ? AND project_id IN ?", workspaceID, projectIDs).
		Delete(&schema.WorkspaceProject{}).Error
}

// Transaction runs fn with a repository bound to one transaction
func (r *GormWorkspaceRepository) Transaction(fn func(repo WorkspaceRepository) error) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		return fn(&GormWorkspaceRepository{db: tx})
	})
}
