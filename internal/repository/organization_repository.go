package repository

import (
	"time"

	"github.com/yukikurage/project-dashboard/internal/database"
	"github.com/yukikurage/project-dashboard/internal/models"
	"github.com/yukikurage/project-dashboard/internal/schema"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormOrganizationRepository is a GORM implementation of OrganizationRepository
type GormOrganizationRepository struct {
	db *gorm.DB
}

// NewOrganizationRepository creates a new OrganizationRepository
func NewOrganizationRepository(db *gorm.DB) OrganizationRepository {
	return &GormOrganizationRepository{db: db}
}

func membersByJoinDate(db *gorm.DB) *gorm.DB {
	return db.Order("joined_at ASC")
}

// Create creates a new organization with its owner as the first member
func (r *GormOrganizationRepository) Create(org *schema.Organization) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(org).Error; err != nil {
			return err
		}

		member := schema.OrganizationMember{
			OrganizationID: org.ID,
			UserID:         org.OwnerID,
			JoinedAt:       time.Now(),
		}
		if err := tx.Create(&member).Error; err != nil {
			return err
		}

		org.Members = []schema.OrganizationMember{member}
		return nil
	})
}

// FindByID finds an organization by ID with owner and members preloaded
func (r *GormOrganizationRepository) FindByID(id string) (*schema.Organization, error) {
	var org schema.Organization
	if err := r.db.
		Preload("Owner").
		Preload("Members", membersByJoinDate).
		First(&org, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &org, nil
}

// List lists all organizations
func (r *GormOrganizationRepository) List() ([]schema.Organization, error) {
	var orgs []schema.Organization
	if err := r.db.
		Preload("Owner").
		Preload("Members", membersByJoinDate).
		Scopes(database.Ordered("organizations")).
		Find(&orgs).Error; err != nil {
		return nil, err
	}
	return orgs, nil
}

// Update updates an organization's own columns
func (r *GormOrganizationRepository) Update(org *schema.Organization) error {
	return r.db.Omit(clause.Associations).Save(org).Error
}

// Delete deletes an organization with its members and resource links
func (r *GormOrganizationRepository) Delete(id string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("organization_id = ?", id).Delete(&schema.OrganizationMember{}).Error; err != nil {
			return err
		}

		if err := dropLinks(tx, models.ParentOrganization, id); err != nil {
			return err
		}

		var workspaceIDs []string
		if err := tx.Model(&schema.Workspace{}).
			Where("organization_id = ?", id).
			Pluck("id", &workspaceIDs).Error; err != nil {
			return err
		}
		if err := deleteWorkspaces(tx, workspaceIDs); err != nil {
			return err
		}

		return tx.Delete(&schema.Organization{}, "id = ?", id).Error
	})
}

// AddMembers adds members, skipping those already present
func (r *GormOrganizationRepository) AddMembers(organizationID string, userIDs []string) error {
	if len(userIDs) == 0 {
		return nil
	}

	now := time.Now()
	members := make([]schema.OrganizationMember, len(userIDs))
	for i, userID := range userIDs {
		members[i] = schema.OrganizationMember{
			OrganizationID: organizationID,
			UserID:         userID,
			JoinedAt:       now,
		}
	}

	return insertMissing(r.db, &members)
}

// RemoveMembers removes members
func (r *GormOrganizationRepository) RemoveMembers(organizationID string, userIDs []string) error {
	if len(userIDs) == 0 {
		return nil
	}
	return r.db.Where("organization_id = ? AND user_id IN ?", organizationID, userIDs).
		Delete(&schema.OrganizationMember{}).Error
}

// Transaction runs fn with a repository bound to one transaction
func (r *GormOrganizationRepository) Transaction(fn func(repo OrganizationRepository) error) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		return fn(&GormOrganizationRepository{db: tx})
	})
}
