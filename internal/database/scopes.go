package database

import (
	"github.com/yukikurage/project-dashboard/internal/models"
	"gorm.io/gorm"
)

// InProject restricts a query to rows of one project.
func InProject(projectID string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("project_id = ?", projectID)
	}
}

// OfKind restricts an activity query to iterations or milestones.
func OfKind(kind models.ActivityKind) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("kind = ?", string(kind))
	}
}

// LinkedTo restricts a resource query to the resources linked to one parent.
func LinkedTo(parentKind models.ParentKind, parentID string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.
			Joins("JOIN resource_links ON resource_links.resource_id = resources.id").
			Where("resource_links.parent_kind = ? AND resource_links.parent_id = ?", string(parentKind), parentID)
	}
}

// Ordered lists rows oldest first so collections keep their creation order.
func Ordered(table string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Order(table + ".created_at ASC")
	}
}
