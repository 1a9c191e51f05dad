package repository

import (
	"github.com/yukikurage/project-dashboard/internal/database"
	"github.com/yukikurage/project-dashboard/internal/schema"
	"gorm.io/gorm"
)

// GormUserRepository is a GORM implementation of UserRepository
type GormUserRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(db *gorm.DB) UserRepository {
	return &GormUserRepository{db: db}
}

// Create creates a new user
func (r *GormUserRepository) Create(user *schema.User) error {
	return r.db.Create(user).Error
}

// FindByID finds a user by ID
func (r *GormUserRepository) FindByID(id string) (*schema.User, error) {
	var user schema.User
	if err := r.db.First(&user, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// FindByEmail finds a user by email address
func (r *GormUserRepository) FindByEmail(email string) (*schema.User, error) {
	var user schema.User
	if err := r.db.First(&user, "email = ?", email).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// List lists all users
func (r *GormUserRepository) List() ([]schema.User, error) {
	var users []schema.User
	if err := r.db.Scopes(database.Ordered("users")).Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// Update updates a user
func (r *GormUserRepository) Update(user *schema.User) error {
	return r.db.Save(user).Error
}

// Delete soft deletes a user, drops their memberships and contact entries
// and unassigns their work items
func (r *GormUserRepository) Delete(id string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&schema.WorkItem{}).
			Where("assigned_to = ?", id).
			Update("assigned_to", "").Error; err != nil {
			return err
		}

		if err := tx.Where("user_id = ?", id).Delete(&schema.OrganizationMember{}).Error; err != nil {
			return err
		}

		if err := tx.Where("user_id = ?", id).Delete(&schema.WorkspaceContact{}).Error; err != nil {
			return err
		}

		return tx.Delete(&schema.User{}, "id = ?", id).Error
	})
}

// CountByIDs counts how many of the given user IDs exist
func (r *GormUserRepository) CountByIDs(ids []string) (int64, error) {
	var count int64
	err := r.db.Model(&schema.User{}).
		Where("id IN ?", ids).
		Count(&count).Error
	return count, err
}

// OrganizationIDs returns the organizations each user owns and belongs to
func (r *GormUserRepository) OrganizationIDs(userIDs []string) (map[string]UserOrganizations, error) {
	out := make(map[string]UserOrganizations, len(userIDs))
	if len(userIDs) == 0 {
		return out, nil
	}

	var owned []struct {
		ID      string
		OwnerID string
	}
	if err := r.db.Model(&schema.Organization{}).
		Select("id, owner_id").
		Scopes(database.Ordered("organizations")).
		Where("owner_id IN ?", userIDs).
		Scan(&owned).Error; err != nil {
		return nil, err
	}

	var members []struct {
		UserID         string
		OrganizationID string
	}
	if err := r.db.Model(&schema.OrganizationMember{}).
		Select("organization_members.user_id, organization_members.organization_id").
		Joins("JOIN organizations ON organizations.id = organization_members.organization_id AND organizations.deleted_at IS NULL").
		Where("organization_members.user_id IN ?", userIDs).
		Order("organization_members.joined_at ASC").
		Scan(&members).Error; err != nil {
		return nil, err
	}

	for _, id := range userIDs {
		out[id] = UserOrganizations{Owned: []string{}, MemberOf: []string{}}
	}
	for _, o := range owned {
		refs := out[o.OwnerID]
		refs.Owned = append(refs.Owned, o.ID)
		out[o.OwnerID] = refs
	}
	for _, m := range members {
		refs := out[m.UserID]
		refs.MemberOf = append(refs.MemberOf, m.OrganizationID)
		out[m.UserID] = refs
	}
	return out, nil
}
