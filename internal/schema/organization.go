package schema

import (
	"time"

	"gorm.io/gorm"
)

type Organization struct {
	ID        string         `gorm:"type:varchar(36);primarykey"`
	Name      string         `gorm:"type:varchar(255);not null"`
	OwnerID   string         `gorm:"type:varchar(36);not null;index"`
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`

	// Relations
	Owner   User                 `gorm:"foreignKey:OwnerID"`
	Members []OrganizationMember `gorm:"foreignKey:OrganizationID"`
}

func (o *Organization) BeforeCreate(tx *gorm.DB) error {
	assignID(&o.ID)
	return nil
}

type OrganizationMember struct {
	OrganizationID string `gorm:"type:varchar(36);primarykey"`
	UserID         string `gorm:"type:varchar(36);primarykey;index"`
	JoinedAt       time.Time
}
