package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/yukikurage/project-dashboard/internal/dto"
	"github.com/yukikurage/project-dashboard/internal/repository"
	"gorm.io/gorm"
)

var (
	ErrOrganizationNotFound = errors.New("organization not found")
	ErrWorkspaceNotFound    = errors.New("workspace not found")
	ErrProjectNotFound      = errors.New("project not found")
	ErrActivityNotFound     = errors.New("activity not found")
	ErrWorkItemNotFound     = errors.New("work item not found")
	ErrUserNotFound         = errors.New("user not found")
	ErrResourceNotFound     = errors.New("resource not found")

	ErrNameEmpty           = errors.New("name cannot be empty")
	ErrTitleEmpty          = errors.New("title cannot be empty")
	ErrURLEmpty            = errors.New("url cannot be empty")
	ErrEmailEmpty          = errors.New("email cannot be empty")
	ErrInvalidStatus       = errors.New("invalid status")
	ErrInvalidPriority     = errors.New("invalid priority")
	ErrInvalidWorkItemType = errors.New("invalid work item type")
	ErrInvalidTimeRange    = errors.New("start date must not be after end date")
	ErrProjectIDMismatch   = errors.New("project id in body does not match the path")
	ErrSelfSubItem         = errors.New("a work item cannot be its own sub item")
	ErrUnknownUsers        = errors.New("one or more users do not exist")

	ErrEmailTaken            = errors.New("email already in use")
	ErrUserOwnsOrganizations = errors.New("user still owns organizations")
)

// IsNotFound reports whether err is one of the not-found errors above.
func IsNotFound(err error) bool {
	for _, target := range []error{
		ErrOrganizationNotFound,
		ErrWorkspaceNotFound,
		ErrProjectNotFound,
		ErrActivityNotFound,
		ErrWorkItemNotFound,
		ErrUserNotFound,
		ErrResourceNotFound,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

// IsInvalidInput reports whether err rejects the request contents.
func IsInvalidInput(err error) bool {
	for _, target := range []error{
		ErrNameEmpty,
		ErrTitleEmpty,
		ErrURLEmpty,
		ErrEmailEmpty,
		ErrInvalidStatus,
		ErrInvalidPriority,
		ErrInvalidWorkItemType,
		ErrInvalidTimeRange,
		ErrProjectIDMismatch,
		ErrSelfSubItem,
		ErrUnknownUsers,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

// IsConflict reports whether err rejects a change against current state.
func IsConflict(err error) bool {
	return errors.Is(err, ErrUserOwnsOrganizations)
}

// lookupError maps a missing row to notFound and wraps anything else.
func lookupError(err, notFound error, what string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return notFound
	}
	return fmt.Errorf("failed to find %s: %w", what, err)
}

// requireText trims v and rejects an empty result.
func requireText(v string, empty error) (string, error) {
	v = strings.TrimSpace(v)
	if v == "" {
		return "", empty
	}
	return v, nil
}

// applyText sets *dst when v is present, rejecting blank values.
func applyText(dst *string, v dto.Optional[string], empty error) error {
	s, ok := v.Get()
	if !ok {
		return nil
	}
	s, err := requireText(s, empty)
	if err != nil {
		return err
	}
	*dst = s
	return nil
}

// apply sets *dst when v is present.
func apply[T any](dst *T, v dto.Optional[T]) {
	if s, ok := v.Get(); ok {
		*dst = s
	}
}

// ids returns the distinct ids of a present list.
func ids(v dto.Optional[[]string]) []string {
	list, ok := v.Get()
	if !ok {
		return nil
	}
	seen := make(map[string]struct{}, len(list))
	out := make([]string, 0, len(list))
	for _, id := range list {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

// checkUsers fails with ErrUnknownUsers unless every id names a user.
func checkUsers(users repository.UserRepository, userIDs []string) error {
	if len(userIDs) == 0 {
		return nil
	}
	count, err := users.CountByIDs(userIDs)
	if err != nil {
		return fmt.Errorf("failed to check users: %w", err)
	}
	if count != int64(len(userIDs)) {
		return ErrUnknownUsers
	}
	return nil
}
