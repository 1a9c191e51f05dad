package services

import (
	"fmt"

	"github.com/yukikurage/project-dashboard/internal/dto"
	"github.com/yukikurage/project-dashboard/internal/models"
	"github.com/yukikurage/project-dashboard/internal/repository"
	"github.com/yukikurage/project-dashboard/internal/schema"
)

// OrganizationService provides business logic for organization operations.
type OrganizationService struct {
	orgRepo  repository.OrganizationRepository
	userRepo repository.UserRepository
}

// NewOrganizationService creates a new OrganizationService.
func NewOrganizationService(orgRepo repository.OrganizationRepository, userRepo repository.UserRepository) *OrganizationService {
	return &OrganizationService{
		orgRepo:  orgRepo,
		userRepo: userRepo,
	}
}

// CreateOrganizationInput represents parameters to create a new organization.
type CreateOrganizationInput struct {
	Name    string
	OwnerID string
}

// CreateOrganization creates a new organization with the owner as its first member.
func (s *OrganizationService) CreateOrganization(input CreateOrganizationInput) (models.Organization, error) {
	name, err := requireText(input.Name, ErrNameEmpty)
	if err != nil {
		return models.Organization{}, err
	}

	if err := checkUsers(s.userRepo, []string{input.OwnerID}); err != nil {
		return models.Organization{}, err
	}

	org := &schema.Organization{
		Name:    name,
		OwnerID: input.OwnerID,
	}
	if err := s.orgRepo.Create(org); err != nil {
		return models.Organization{}, fmt.Errorf("failed to create organization: %w", err)
	}

	return s.GetOrganization(org.ID)
}

func (s *OrganizationService) ListOrganizations() ([]models.Organization, error) {
	orgs, err := s.orgRepo.List()
	if err != nil {
		return nil, fmt.Errorf("failed to list organizations: %w", err)
	}

	return organizationModels(s.userRepo, orgs)
}

func (s *OrganizationService) GetOrganization(id string) (models.Organization, error) {
	org, err := s.orgRepo.FindByID(id)
	if err != nil {
		return models.Organization{}, lookupError(err, ErrOrganizationNotFound, "organization")
	}
	out, err := organizationModels(s.userRepo, []schema.Organization{*org})
	if err != nil {
		return models.Organization{}, err
	}
	return out[0], nil
}

// UpdateOrganization renames the organization and applies member changes.
// Additions run before removals.
func (s *OrganizationService) UpdateOrganization(id string, req dto.UpdateOrganizationRequest) (models.Organization, error) {
	org, err := s.orgRepo.FindByID(id)
	if err != nil {
		return models.Organization{}, lookupError(err, ErrOrganizationNotFound, "organization")
	}

	if err := applyText(&org.Name, req.Name, ErrNameEmpty); err != nil {
		return models.Organization{}, err
	}

	toAdd := ids(req.MembersToAdd)
	if err := checkUsers(s.userRepo, toAdd); err != nil {
		return models.Organization{}, err
	}

	err = s.orgRepo.Transaction(func(repo repository.OrganizationRepository) error {
		if req.Name.IsSet() {
			if err := repo.Update(org); err != nil {
				return fmt.Errorf("failed to update organization: %w", err)
			}
		}
		if err := repo.AddMembers(id, toAdd); err != nil {
			return fmt.Errorf("failed to add members: %w", err)
		}
		if err := repo.RemoveMembers(id, ids(req.MembersToRemove)); err != nil {
			return fmt.Errorf("failed to remove members: %w", err)
		}
		return nil
	})
	if err != nil {
		return models.Organization{}, err
	}

	return s.GetOrganization(id)
}

// DeleteOrganization removes an organization.
func (s *OrganizationService) DeleteOrganization(id string) error {
	if _, err := s.orgRepo.FindByID(id); err != nil {
		return lookupError(err, ErrOrganizationNotFound, "organization")
	}

	if err := s.orgRepo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete organization: %w", err)
	}

	return nil
}
