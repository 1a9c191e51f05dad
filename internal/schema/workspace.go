package schema

import (
	"time"

	"gorm.io/gorm"
)

type Workspace struct {
	ID             string         `gorm:"type:varchar(36);primarykey"`
	Title          string         `gorm:"type:varchar(255);not null"`
	OrganizationID string         `gorm:"type:varchar(36);not null;index"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
	DeletedAt      gorm.DeletedAt `gorm:"index"`

	// Relations
	Contacts []WorkspaceContact `gorm:"foreignKey:WorkspaceID"`
	Projects []WorkspaceProject `gorm:"foreignKey:WorkspaceID"`
}

func (w *Workspace) BeforeCreate(tx *gorm.DB) error {
	assignID(&w.ID)
	return nil
}

type WorkspaceContact struct {
	WorkspaceID string    `gorm:"type:varchar(36);primarykey"`
	UserID      string    `gorm:"type:varchar(36);primarykey"`
	CreatedAt   time.Time
	User        User `gorm:"foreignKey:UserID"`
}

type WorkspaceProject struct {
	WorkspaceID string `gorm:"type:varchar(36);primarykey"`
	ProjectID   string `gorm:"type:varchar(36);primarykey"`
	CreatedAt   time.Time
}
