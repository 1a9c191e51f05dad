package schema

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// assignID gives a row a server-side opaque id unless one was preset.
func assignID(id *string) {
	if *id == "" {
		*id = uuid.NewString()
	}
}

// All returns every table in migration order.
func All() []interface{} {
	return []interface{}{
		&User{},
		&Organization{},
		&OrganizationMember{},
		&Workspace{},
		&WorkspaceContact{},
		&WorkspaceProject{},
		&Project{},
		&Activity{},
		&ActivityItem{},
		&WorkItem{},
		&WorkItemSubItem{},
		&Resource{},
		&ResourceLink{},
	}
}

type User struct {
	ID        string         `gorm:"type:varchar(36);primarykey"`
	Firstname string         `gorm:"type:varchar(255)"`
	Lastname  string         `gorm:"type:varchar(255)"`
	Email     string         `gorm:"type:varchar(255);index"`
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	assignID(&u.ID)
	return nil
}
