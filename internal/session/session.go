// Package session is the composition root: one instance of every entity
// state store, built over a shared API client.
package session

import (
	"context"

	"github.com/yukikurage/project-dashboard/internal/client"
	"github.com/yukikurage/project-dashboard/internal/config"
	"github.com/yukikurage/project-dashboard/internal/store"
	"golang.org/x/sync/errgroup"
)

var (
	_ store.OrganizationAPI = (*client.OrganizationClient)(nil)
	_ store.WorkspaceAPI    = (*client.WorkspaceClient)(nil)
	_ store.ProjectAPI      = (*client.ProjectClient)(nil)
	_ store.WorkItemAPI     = (*client.WorkItemClient)(nil)
	_ store.UserAPI         = (*client.UserClient)(nil)
)

// Session holds the stores of one application session. The stores are
// independent of each other; cross-entity refreshes are up to the caller.
type Session struct {
	Organizations *store.OrganizationStore
	Workspaces    *store.WorkspaceStore
	Projects      *store.ProjectStore
	WorkItems     *store.WorkItemStore
	Users         *store.UserStore

	client *client.Client
}

// New builds a session over c.
func New(c *client.Client) *Session {
	return &Session{
		Organizations: store.NewOrganizationStore(client.NewOrganizationClient(c)),
		Workspaces:    store.NewWorkspaceStore(client.NewWorkspaceClient(c)),
		Projects:      store.NewProjectStore(client.NewProjectClient(c)),
		WorkItems:     store.NewWorkItemStore(client.NewWorkItemClient(c)),
		Users:         store.NewUserStore(client.NewUserClient(c)),
		client:        c,
	}
}

// NewFromConfig builds a session for the API described by cfg.
func NewFromConfig(cfg *config.Config) *Session {
	return New(client.New(client.Config{
		BaseURL:                  cfg.APIBaseURL,
		WorkItemsUnderAPI:        cfg.WorkItemsUnderAPI,
		LegacyWorkItemWhitespace: cfg.LegacyWorkItemWhitespace,
	}))
}

// LoadAll loads the organization, workspace, project and user collections
// concurrently. Work items are loaded per project through WorkItems.Load.
// The first failure cancels the remaining requests and is returned; stores
// that already loaded keep their new state.
func (s *Session) LoadAll(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error { return s.Organizations.LoadAll(ctx) })
	g.Go(func() error { return s.Workspaces.LoadAll(ctx) })
	g.Go(func() error { return s.Projects.LoadAll(ctx) })
	g.Go(func() error { return s.Users.LoadAll(ctx) })
	return g.Wait()
}

// Close releases the idle connections of the underlying client.
func (s *Session) Close() {
	s.client.CloseIdleConnections()
}
