package schema

import (
	"time"

	"gorm.io/gorm"
)

type WorkItem struct {
	ID          string         `gorm:"type:varchar(36);primarykey"`
	ProjectID   string         `gorm:"type:varchar(36);not null;index"`
	Title       string         `gorm:"type:varchar(255);not null"`
	Description string         `gorm:"type:text"`
	Status      string         `gorm:"type:varchar(20);not null;default:'None'"`
	Priority    string         `gorm:"type:varchar(20);not null;default:'None'"`
	Type        string         `gorm:"type:varchar(20);not null;default:'None'"`
	AssignedTo  string         `gorm:"type:varchar(36)"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeletedAt   gorm.DeletedAt `gorm:"index"`

	// Relations
	SubItems []WorkItemSubItem `gorm:"foreignKey:WorkItemID"`
}

func (w *WorkItem) BeforeCreate(tx *gorm.DB) error {
	assignID(&w.ID)
	return nil
}

type WorkItemSubItem struct {
	WorkItemID string `gorm:"type:varchar(36);primarykey"`
	SubItemID  string `gorm:"type:varchar(36);primarykey"`
	CreatedAt  time.Time
}
