package services

import (
	"errors"
	"fmt"

	"github.com/yukikurage/project-dashboard/internal/dto"
	"github.com/yukikurage/project-dashboard/internal/models"
	"github.com/yukikurage/project-dashboard/internal/repository"
	"github.com/yukikurage/project-dashboard/internal/schema"
	"gorm.io/gorm"
)

// UserService provides business logic for user operations.
type UserService struct {
	userRepo repository.UserRepository
}

// NewUserService creates a new UserService.
func NewUserService(userRepo repository.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

// CreateUserInput represents parameters to create a user.
type CreateUserInput struct {
	Firstname string
	Lastname  string
	Email     string
}

func (s *UserService) toModel(user schema.User) (models.User, error) {
	out, err := userModels(s.userRepo, []schema.User{user})
	if err != nil {
		return models.User{}, err
	}
	return out[0], nil
}

// checkEmail fails with ErrEmailTaken when another user has email.
func (s *UserService) checkEmail(email, selfID string) error {
	other, err := s.userRepo.FindByEmail(email)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to check email: %w", err)
	}
	if other.ID != selfID {
		return ErrEmailTaken
	}
	return nil
}

func (s *UserService) CreateUser(input CreateUserInput) (models.User, error) {
	email, err := requireText(input.Email, ErrEmailEmpty)
	if err != nil {
		return models.User{}, err
	}
	if err := s.checkEmail(email, ""); err != nil {
		return models.User{}, err
	}

	user := &schema.User{
		Firstname: input.Firstname,
		Lastname:  input.Lastname,
		Email:     email,
	}
	if err := s.userRepo.Create(user); err != nil {
		return models.User{}, fmt.Errorf("failed to create user: %w", err)
	}

	return dto.ToUser(*user, nil, nil), nil
}

func (s *UserService) ListUsers() ([]models.User, error) {
	users, err := s.userRepo.List()
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	return userModels(s.userRepo, users)
}

func (s *UserService) GetUser(id string) (models.User, error) {
	user, err := s.userRepo.FindByID(id)
	if err != nil {
		return models.User{}, lookupError(err, ErrUserNotFound, "user")
	}
	return s.toModel(*user)
}

// UpdateUser applies the present fields of req.
func (s *UserService) UpdateUser(id string, req dto.UpdateUserRequest) (models.User, error) {
	user, err := s.userRepo.FindByID(id)
	if err != nil {
		return models.User{}, lookupError(err, ErrUserNotFound, "user")
	}

	apply(&user.Firstname, req.Firstname)
	apply(&user.Lastname, req.Lastname)
	if err := applyText(&user.Email, req.Email, ErrEmailEmpty); err != nil {
		return models.User{}, err
	}
	if req.Email.IsSet() {
		if err := s.checkEmail(user.Email, user.ID); err != nil {
			return models.User{}, err
		}
	}

	if err := s.userRepo.Update(user); err != nil {
		return models.User{}, fmt.Errorf("failed to update user: %w", err)
	}

	return s.toModel(*user)
}

// DeleteUser refuses to delete a user who still owns organizations.
func (s *UserService) DeleteUser(id string) error {
	if _, err := s.userRepo.FindByID(id); err != nil {
		return lookupError(err, ErrUserNotFound, "user")
	}

	refs, err := s.userRepo.OrganizationIDs([]string{id})
	if err != nil {
		return fmt.Errorf("failed to list organizations of user: %w", err)
	}
	if len(refs[id].Owned) > 0 {
		return ErrUserOwnsOrganizations
	}

	if err := s.userRepo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}

	return nil
}
