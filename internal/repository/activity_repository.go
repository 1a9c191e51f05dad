package repository

import (
	"github.com/yukikurage/project-dashboard/internal/database"
	"github.com/yukikurage/project-dashboard/internal/models"
	"github.com/yukikurage/project-dashboard/internal/schema"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormActivityRepository is a GORM implementation of ActivityRepository
type GormActivityRepository struct {
	db *gorm.DB
}

// NewActivityRepository creates a new ActivityRepository
func NewActivityRepository(db *gorm.DB) ActivityRepository {
	return &GormActivityRepository{db: db}
}

func (r *GormActivityRepository) Create(activity *schema.Activity) error {
	return r.db.Omit(clause.Associations).Create(activity).Error
}

func (r *GormActivityRepository) FindByID(projectID string, kind models.ActivityKind, id string) (*schema.Activity, error) {
	var activity schema.Activity
	if err := r.db.
		Preload("Items", byCreation).
		Scopes(database.InProject(projectID), database.OfKind(kind)).
		First(&activity, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &activity, nil
}

func (r *GormActivityRepository) List(projectID string, kind models.ActivityKind) ([]schema.Activity, error) {
	var activities []schema.Activity
	if err := r.db.
		Preload("Items", byCreation).
		Scopes(database.InProject(projectID), database.OfKind(kind), database.Ordered("activities")).
		Find(&activities).Error; err != nil {
		return nil, err
	}
	return activities, nil
}

func (r *GormActivityRepository) Update(activity *schema.Activity) error {
	return r.db.Omit(clause.Associations).Save(activity).Error
}

func (r *GormActivityRepository) Delete(id string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("activity_id = ?", id).Delete(&schema.ActivityItem{}).Error; err != nil {
			return err
		}

		return tx.Delete(&schema.Activity{}, "id = ?", id).Error
	})
}

func (r *GormActivityRepository) AddItems(activityID string, workItemIDs []string) error {
	if len(workItemIDs) == 0 {
		return nil
	}

	items := make([]schema.ActivityItem, len(workItemIDs))
	for i, workItemID := range workItemIDs {
		items[i] = schema.ActivityItem{ActivityID: activityID, WorkItemID: workItemID}
	}

	return insertMissing(r.db, &items)
}

func (r *GormActivityRepository) RemoveItems(activityID string, workItemIDs []string) error {
	if len(workItemIDs) == 0 {
		return nil
	}
	return r.db.Where("activity_id = ? AND work_item_id IN ?", activityID, workItemIDs).
		Delete(&schema.ActivityItem{}).Error
}

// Transaction runs fn with a repository bound to one transaction
func (r *GormActivityRepository) Transaction(fn func(repo ActivityRepository) error) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		return fn(&GormActivityRepository{db: tx})
	})
}
