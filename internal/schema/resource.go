package schema

import (
	"time"

	"gorm.io/gorm"
)

type Resource struct {
	ID          string         `gorm:"type:varchar(36);primarykey"`
	Title       string         `gorm:"type:varchar(255);not null"`
	URL         string         `gorm:"type:text;not null"`
	Description string         `gorm:"type:text"`
	Type        string         `gorm:"type:varchar(50)"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeletedAt   gorm.DeletedAt `gorm:"index"`
}

func (r *Resource) BeforeCreate(tx *gorm.DB) error {
	assignID(&r.ID)
	return nil
}

// ResourceLink attaches a resource to one parent entity. A resource may be
// linked to several parents.
type ResourceLink struct {
	ParentKind string `gorm:"type:varchar(20);primarykey"`
	ParentID   string `gorm:"type:varchar(36);primarykey"`
	ResourceID string `gorm:"type:varchar(36);primarykey;index"`
	CreatedAt  time.Time

	// Relations
	Resource Resource `gorm:"foreignKey:ResourceID"`
}
