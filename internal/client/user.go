package client

import (
	"context"
	"net/http"

	"github.com/yukikurage/project-dashboard/internal/dto"
	"github.com/yukikurage/project-dashboard/internal/models"
)

const usersPath = "users"

// UserClient accesses /api/users.
type UserClient struct {
	c *Client
}

// NewUserClient returns a UserClient that sends requests through c.
func NewUserClient(c *Client) *UserClient {
	return &UserClient{c: c}
}

// Create creates a user. Emails must be unique.
func (u *UserClient) Create(ctx context.Context, req dto.CreateUserRequest) (models.User, error) {
	return getOne[models.User](ctx, u.c, "create user", http.MethodPost, route(apiPrefix, usersPath), req)
}

// List returns every user.
func (u *UserClient) List(ctx context.Context) ([]models.User, error) {
	return getList[models.User](ctx, u.c, "get users", route(apiPrefix, usersPath), nil)
}

// Get returns one user with the organizations they own and belong to.
func (u *UserClient) Get(ctx context.Context, userID string) (models.User, error) {
	return getOne[models.User](ctx, u.c, "get user", http.MethodGet, route(apiPrefix, usersPath, userID), nil)
}

// Update applies the present fields of req.
func (u *UserClient) Update(ctx context.Context, userID string, req dto.UpdateUserRequest) (models.User, error) {
	return getOne[models.User](ctx, u.c, "update user", http.MethodPut, route(apiPrefix, usersPath, userID), req)
}

// Delete deletes a user. The server refuses while the user owns an
// organization.
func (u *UserClient) Delete(ctx context.Context, userID string) error {
	return u.c.do(ctx, "delete user", http.MethodDelete, route(apiPrefix, usersPath, userID), nil, nil, nil)
}
