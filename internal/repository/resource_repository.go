package repository

import (
	"github.com/yukikurage/project-dashboard/internal/database"
	"github.com/yukikurage/project-dashboard/internal/models"
	"github.com/yukikurage/project-dashboard/internal/schema"
	"gorm.io/gorm"
)

// GormResourceRepository is a GORM implementation of ResourceRepository
type GormResourceRepository struct {
	db *gorm.DB
}

// NewResourceRepository creates a new ResourceRepository
func NewResourceRepository(db *gorm.DB) ResourceRepository {
	return &GormResourceRepository{db: db}
}

// Create creates a resource linked to one parent
func (r *GormResourceRepository) Create(parentKind models.ParentKind, parentID string, res *schema.Resource) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(res).Error; err != nil {
			return err
		}

		link := schema.ResourceLink{
			ParentKind: string(parentKind),
			ParentID:   parentID,
			ResourceID: res.ID,
		}
		return tx.Omit("Resource").Create(&link).Error
	})
}

// FindByID finds a resource linked to the given parent
func (r *GormResourceRepository) FindByID(parentKind models.ParentKind, parentID, id string) (*schema.Resource, error) {
	var res schema.Resource
	if err := r.db.
		Scopes(database.LinkedTo(parentKind, parentID)).
		First(&res, "resources.id = ?", id).Error; err != nil {
		return nil, err
	}
	return &res, nil
}

// FindAnyByID finds a resource regardless of its links
func (r *GormResourceRepository) FindAnyByID(id string) (*schema.Resource, error) {
	var res schema.Resource
	if err := r.db.First(&res, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &res, nil
}

func (r *GormResourceRepository) List(parentKind models.ParentKind, parentID string) ([]schema.Resource, error) {
	var resources []schema.Resource
	if err := r.db.
		Scopes(database.LinkedTo(parentKind, parentID), database.Ordered("resource_links")).
		Find(&resources).Error; err != nil {
		return nil, err
	}
	return resources, nil
}

func (r *GormResourceRepository) Update(res *schema.Resource) error {
	return r.db.Save(res).Error
}

// Link links an existing resource to another parent
func (r *GormResourceRepository) Link(parentKind models.ParentKind, parentID, id string) error {
	link := schema.ResourceLink{
		ParentKind: string(parentKind),
		ParentID:   parentID,
		ResourceID: id,
	}
	return insertMissing(r.db.Omit("Resource"), &link)
}

// Unlink removes the link and deletes the resource once nothing links it
func (r *GormResourceRepository) Unlink(parentKind models.ParentKind, parentID, id string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("parent_kind = ? AND parent_id = ? AND resource_id = ?", string(parentKind), parentID, id).
			Delete(&schema.ResourceLink{}).Error; err != nil {
			return err
		}

		return deleteOrphans(tx, []string{id})
	})
}

// dropLinks removes every link of one parent, deleting resources left
// without any link.
func dropLinks(tx *gorm.DB, parentKind models.ParentKind, parentID string) error {
	var ids []string
	if err := tx.Model(&schema.ResourceLink{}).
		Where("parent_kind = ? AND parent_id = ?", string(parentKind), parentID).
		Pluck("resource_id", &ids).Error; err != nil {
		return err
	}
	if len(ids) == 0 {
		return nil
	}

	if err := tx.Where("parent_kind = ? AND parent_id = ?", string(parentKind), parentID).
		Delete(&schema.ResourceLink{}).Error; err != nil {
		return err
	}

	return deleteOrphans(tx, ids)
}

func deleteOrphans(tx *gorm.DB, ids []string) error {
	linked := tx.Model(&schema.ResourceLink{}).Select("resource_id").Where("resource_id IN ?", ids)
	return tx.Where("id IN ? AND id NOT IN (?)", ids, linked).Delete(&schema.Resource{}).Error
}
