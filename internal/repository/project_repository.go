package repository

import (
	"github.com/yukikurage/project-dashboard/internal/database"
	"github.com/yukikurage/project-dashboard/internal/schema"
	"gorm.io/gorm"
)

// GormProjectRepository is a GORM implementation of ProjectRepository
type GormProjectRepository struct {
	db *gorm.DB
}

// NewProjectRepository creates a new ProjectRepository
func NewProjectRepository(db *gorm.DB) ProjectRepository {
	return &GormProjectRepository{db: db}
}

// Create creates a project and links it into its workspace
func (r *GormProjectRepository) Create(project *schema.Project) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(project).Error; err != nil {
			return err
		}

		link := schema.WorkspaceProject{
			WorkspaceID: project.WorkspaceID,
			ProjectID:   project.ID,
		}
		return insertMissing(tx, &link)
	})
}

func (r *GormProjectRepository) FindByID(id string) (*schema.Project, error) {
	var project schema.Project
	if err := r.db.First(&project, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &project, nil
}

func (r *GormProjectRepository) List() ([]schema.Project, error) {
	var projects []schema.Project
	if err := r.db.Scopes(database.Ordered("projects")).Find(&projects).Error; err != nil {
		return nil, err
	}
	return projects, nil
}

func (r *GormProjectRepository) Update(project *schema.Project) error {
	return r.db.Save(project).Error
}

// Delete deletes a project with its work items, activities and links
func (r *GormProjectRepository) Delete(id string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		return deleteProjects(tx, []string{id})
	})
}
