package store

import (
	"context"

	"github.com/yukikurage/project-dashboard/internal/dto"
	"github.com/yukikurage/project-dashboard/internal/models"
)

// UserStore holds the users. Other stores' callers use Refresh after a
// change that alters organization membership.
type UserStore struct {
	*hub
	api   UserAPI
	locks keyLock
	users list[models.User]
}

// NewUserStore returns an empty store backed by api.
func NewUserStore(api UserAPI) *UserStore {
	return &UserStore{hub: &hub{}, api: api}
}

// Users returns the current snapshot.
func (s *UserStore) Users() Loadable[models.User] {
	return s.users.snapshot()
}

// Lookup finds a user in the last loaded snapshot without a network call.
func (s *UserStore) Lookup(id string) (models.User, bool) {
	return s.users.find(id)
}

// LoadAll replaces the collection with the server's list.
func (s *UserStore) LoadAll(ctx context.Context) error {
	users, err := s.api.List(ctx)
	if err != nil {
		return err
	}
	s.users.replace(users)
	s.notify()
	return nil
}

// Refresh reloads the users.
func (s *UserStore) Refresh(ctx context.Context) error {
	return s.LoadAll(ctx)
}

// Create creates a user and adds it to the snapshot.
func (s *UserStore) Create(ctx context.Context, firstname, lastname, email string) (models.User, error) {
	user, err := s.api.Create(ctx, dto.CreateUserRequest{Firstname: firstname, Lastname: lastname, Email: email})
	if err != nil {
		return models.User{}, err
	}
	s.users.add(user)
	s.notify()
	return user, nil
}

// Update sends req and replaces the user with the server's copy.
func (s *UserStore) Update(ctx context.Context, id string, req dto.UpdateUserRequest) (models.User, error) {
	unlock := s.locks.lock(id)
	defer unlock()

	user, err := s.api.Update(ctx, id, req)
	if err != nil {
		return models.User{}, err
	}
	if s.users.update(user) {
		s.notify()
	}
	return user, nil
}

// Delete deletes the user and removes it from the snapshot.
func (s *UserStore) Delete(ctx context.Context, id string) error {
	unlock := s.locks.lock(id)
	defer unlock()

	if err := s.api.Delete(ctx, id); err != nil {
		return err
	}
	if s.users.remove(id) {
		s.notify()
	}
	return nil
}
