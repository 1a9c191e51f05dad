package schema

import (
	"time"

	"gorm.io/gorm"
)

type Project struct {
	ID          string         `gorm:"type:varchar(36);primarykey"`
	Title       string         `gorm:"type:varchar(255);not null"`
	Description string         `gorm:"type:text"`
	Status      string         `gorm:"type:varchar(20);not null;default:'None'"`
	Priority    string         `gorm:"type:varchar(20);not null;default:'None'"`
	StartDate   *time.Time
	EndDate     *time.Time
	WorkspaceID string         `gorm:"type:varchar(36);not null;index"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeletedAt   gorm.DeletedAt `gorm:"index"`
}

func (p *Project) BeforeCreate(tx *gorm.DB) error {
	assignID(&p.ID)
	return nil
}

// Activity stores iterations and milestones in one table, told apart by Kind.
type Activity struct {
	ID          string         `gorm:"type:varchar(36);primarykey"`
	ProjectID   string         `gorm:"type:varchar(36);not null;index"`
	Kind        string         `gorm:"type:varchar(20);not null;index"`
	Title       string         `gorm:"type:varchar(255);not null"`
	Description string         `gorm:"type:text"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeletedAt   gorm.DeletedAt `gorm:"index"`

	// Relations
	Items []ActivityItem `gorm:"foreignKey:ActivityID"`
}

func (a *Activity) BeforeCreate(tx *gorm.DB) error {
	assignID(&a.ID)
	return nil
}

type ActivityItem struct {
	ActivityID string `gorm:"type:varchar(36);primarykey"`
	WorkItemID string `gorm:"type:varchar(36);primarykey"`
	CreatedAt  time.Time
}
