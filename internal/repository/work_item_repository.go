package repository

import (
	"github.com/yukikurage/project-dashboard/internal/database"
	"github.com/yukikurage/project-dashboard/internal/schema"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormWorkItemRepository is a GORM implementation of WorkItemRepository
type GormWorkItemRepository struct {
	db *gorm.DB
}

// NewWorkItemRepository creates a new WorkItemRepository
func NewWorkItemRepository(db *gorm.DB) WorkItemRepository {
	return &GormWorkItemRepository{db: db}
}

func (r *GormWorkItemRepository) Create(item *schema.WorkItem) error {
	return r.db.Omit(clause.Associations).Create(item).Error
}

func (r *GormWorkItemRepository) FindByID(id string) (*schema.WorkItem, error) {
	var item schema.WorkItem
	if err := r.db.Preload("SubItems", byCreation).First(&item, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

// List lists the work items of a project, or all of them when projectID is empty
func (r *GormWorkItemRepository) List(projectID string) ([]schema.WorkItem, error) {
	query := r.db.Preload("SubItems", byCreation).Scopes(database.Ordered("work_items"))
	if projectID != "" {
		query = query.Scopes(database.InProject(projectID))
	}

	var items []schema.WorkItem
	if err := query.Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *GormWorkItemRepository) Update(item *schema.WorkItem) error {
	return r.db.Omit(clause.Associations).Save(item).Error
}

// Delete deletes a work item and every reference to it
func (r *GormWorkItemRepository) Delete(id string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		return deleteWorkItems(tx, []string{id})
	})
}

func (r *GormWorkItemRepository) AddSubItems(workItemID string, subItemIDs []string) error {
	if len(subItemIDs) == 0 {
		return nil
	}

	subItems := make([]schema.WorkItemSubItem, len(subItemIDs))
	for i, subItemID := range subItemIDs {
		subItems[i] = schema.WorkItemSubItem{WorkItemID: workItemID, SubItemID: subItemID}
	}

	return insertMissing(r.db, &subItems)
}

func (r *GormWorkItemRepository) RemoveSubItems(workItemID string, subItemIDs []string) error {
	if len(subItemIDs) == 0 {
		return nil
	}
	return r.db.Where("work_item_id = ? AND sub_item_id IN ?", workItemID, subItemIDs).
		Delete(&schema.WorkItemSubItem{}).Error
}

// Transaction runs fn with a repository bound to one transaction
func (r *GormWorkItemRepository) Transaction(fn func(repo WorkItemRepository) error) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		return fn(&GormWorkItemRepository{db: tx})
	})
}
