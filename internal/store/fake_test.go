package store

import (
	"context"
	"fmt"
	"net/http"
	"sync"

	"github.com/yukikurage/project-dashboard/internal/dto"
	apierrors "github.com/yukikurage/project-dashboard/internal/errors"
	"github.com/yukikurage/project-dashboard/internal/models"
)

// fakeServer is the shared state of the in-memory API fakes. Setting err
// makes every call fail with it.
type fakeServer struct {
	mu  sync.Mutex
	seq int
	err error
}

func (f *fakeServer) nextID(prefix string) string {
	f.seq++
	return fmt.Sprintf("%s%d", prefix, f.seq)
}

func (f *fakeServer) fail(op string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.err = apierrors.NewRequestFailed(op, http.StatusInternalServerError, nil)
}

func (f *fakeServer) restore() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.err = nil
}

func notFound(op string) error {
	return apierrors.NewRequestFailed(op, http.StatusNotFound, nil)
}

// mergeIDs applies set-like add and remove lists.
func mergeIDs(current []string, add, remove dto.Optional[[]string]) []string {
	out := append([]string{}, current...)
	if ids, ok := add.Get(); ok {
		for _, id := range ids {
			if !containsID(out, id) {
				out = append(out, id)
			}
		}
	}
	if ids, ok := remove.Get(); ok {
		kept := out[:0]
		for _, id := range out {
			if !containsID(ids, id) {
				kept = append(kept, id)
			}
		}
		out = kept
	}
	return out
}

func containsID(ids []string, id string) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}

type fakeResourceAPI struct {
	*fakeServer
	byParent map[string][]models.Resource
}

func newFakeResourceAPI(s *fakeServer) fakeResourceAPI {
	return fakeResourceAPI{fakeServer: s, byParent: map[string][]models.Resource{}}
}

func (f fakeResourceAPI) CreateResource(_ context.Context, parentID string, req dto.CreateResourceRequest) (models.Resource, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return models.Resource{}, f.err
	}
	res := models.Resource{ID: f.nextID("r"), Title: req.Title, URL: req.URL}
	f.byParent[parentID] = append(f.byParent[parentID], res)
	return res, nil
}

func (f fakeResourceAPI) ListResources(_ context.Context, parentID string) ([]models.Resource, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	return append([]models.Resource{}, f.byParent[parentID]...), nil
}

func (f fakeResourceAPI) UpdateResource(_ context.Context, parentID, resourceID string, req dto.UpdateResourceRequest) (models.Resource, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return models.Resource{}, f.err
	}
	for i, res := range f.byParent[parentID] {
		if res.ID == resourceID {
			res.Title = req.Title.OrElse(res.Title)
			res.URL = req.URL.OrElse(res.URL)
			res.Description = req.Description.OrElse(res.Description)
			res.Type = req.Type.OrElse(res.Type)
			f.byParent[parentID][i] = res
			return res, nil
		}
	}
	return models.Resource{}, notFound("update resource")
}

func (f fakeResourceAPI) DeleteResource(_ context.Context, parentID, resourceID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.byParent[parentID], _ = removed(f.byParent[parentID], resourceID)
	return nil
}

type fakeOrganizationAPI struct {
	fakeResourceAPI
	orgs []models.Organization
}

func newFakeOrganizationAPI() *fakeOrganizationAPI {
	return &fakeOrganizationAPI{fakeResourceAPI: newFakeResourceAPI(&fakeServer{})}
}

func (f *fakeOrganizationAPI) Create(_ context.Context, name, ownerID string) (models.Organization, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return models.Organization{}, f.err
	}
	org := models.Organization{ID: f.nextID("o"), Name: name, Owner: models.User{ID: ownerID}, Members: []string{ownerID}}
	f.orgs = append(f.orgs, org)
	return org, nil
}

func (f *fakeOrganizationAPI) List(context.Context) ([]models.Organization, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	return append([]models.Organization{}, f.orgs...), nil
}

func (f *fakeOrganizationAPI) Update(_ context.Context, id string, req dto.UpdateOrganizationRequest) (models.Organization, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return models.Organization{}, f.err
	}
	i := indexOf(f.orgs, id)
	if i < 0 {
		return models.Organization{}, notFound("update organization")
	}
	org := f.orgs[i]
	org.Name = req.Name.OrElse(org.Name)
	org.Members = mergeIDs(org.Members, req.MembersToAdd, req.MembersToRemove)
	f.orgs[i] = org
	return org, nil
}

func (f *fakeOrganizationAPI) Delete(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.orgs, _ = removed(f.orgs, id)
	return nil
}

type fakeWorkspaceAPI struct {
	fakeResourceAPI
	users      map[string]models.User
	workspaces []models.Workspace
}

func newFakeWorkspaceAPI(users ...models.User) *fakeWorkspaceAPI {
	f := &fakeWorkspaceAPI{fakeResourceAPI: newFakeResourceAPI(&fakeServer{}), users: map[string]models.User{}}
	for _, u := range users {
		f.users[u.ID] = u
	}
	return f
}

func (f *fakeWorkspaceAPI) Create(_ context.Context, title, organizationID string) (models.Workspace, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return models.Workspace{}, f.err
	}
	ws := models.Workspace{ID: f.nextID("w"), Title: title, OwnedBy: organizationID, Contacts: []models.User{}, Projects: []string{}}
	f.workspaces = append(f.workspaces, ws)
	return ws, nil
}

func (f *fakeWorkspaceAPI) List(context.Context) ([]models.Workspace, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	return append([]models.Workspace{}, f.workspaces...), nil
}

func (f *fakeWorkspaceAPI) Update(_ context.Context, id string, req dto.UpdateWorkspaceRequest) (models.Workspace, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return models.Workspace{}, f.err
	}
	i := indexOf(f.workspaces, id)
	if i < 0 {
		return models.Workspace{}, notFound("update workspace")
	}
	ws := f.workspaces[i]
	ws.Title = req.Title.OrElse(ws.Title)
	var contactIDs []string
	for _, c := range ws.Contacts {
		contactIDs = append(contactIDs, c.ID)
	}
	ws.Contacts = []models.User{}
	for _, id := range mergeIDs(contactIDs, req.ContactsToAdd, req.ContactsToRemove) {
		ws.Contacts = append(ws.Contacts, f.users[id])
	}
	ws.Projects = mergeIDs(ws.Projects, req.ProjectsToAdd, req.ProjectsToRemove)
	f.workspaces[i] = ws
	return ws, nil
}

func (f *fakeWorkspaceAPI) Delete(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.workspaces, _ = removed(f.workspaces, id)
	return nil
}

type fakeProjectAPI struct {
	fakeResourceAPI
	projects   []models.Project
	catalog    map[string]models.Resource
	activities map[models.ActivityKind]map[string][]models.ProjectActivity
}

func newFakeProjectAPI() *fakeProjectAPI {
	return &fakeProjectAPI{
		fakeResourceAPI: newFakeResourceAPI(&fakeServer{}),
		catalog:         map[string]models.Resource{},
		activities: map[models.ActivityKind]map[string][]models.ProjectActivity{
			models.ActivityIteration: {},
			models.ActivityMilestone: {},
		},
	}
}

func (f *fakeProjectAPI) Create(_ context.Context, title, workspaceID string) (models.Project, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return models.Project{}, f.err
	}
	p := models.Project{ID: f.nextID("p"), Title: title, ContainedIn: workspaceID, Status: models.StatusNone, Priority: models.PriorityNone}
	f.projects = append(f.projects, p)
	return p, nil
}

func (f *fakeProjectAPI) List(context.Context) ([]models.Project, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	return append([]models.Project{}, f.projects...), nil
}

func (f *fakeProjectAPI) Update(_ context.Context, id string, req dto.UpdateProjectRequest) (models.Project, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return models.Project{}, f.err
	}
	i := indexOf(f.projects, id)
	if i < 0 {
		return models.Project{}, notFound("update project")
	}
	p := f.projects[i]
	p.Title = req.Title.OrElse(p.Title)
	p.Description = req.Description.OrElse(p.Description)
	p.Status = req.Status.OrElse(p.Status)
	p.Priority = req.Priority.OrElse(p.Priority)
	f.projects[i] = p
	return p, nil
}

func (f *fakeProjectAPI) Delete(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.projects, _ = removed(f.projects, id)
	return nil
}

func (f *fakeProjectAPI) AttachResource(_ context.Context, projectID, resourceID string) (models.Resource, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return models.Resource{}, f.err
	}
	res, ok := f.catalog[resourceID]
	if !ok {
		return models.Resource{}, notFound("add resource to project")
	}
	f.byParent[projectID] = upserted(f.byParent[projectID], res)
	return res, nil
}

func (f *fakeProjectAPI) createActivity(kind models.ActivityKind, projectID, title string) (models.ProjectActivity, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return models.ProjectActivity{}, f.err
	}
	a := models.ProjectActivity{ID: f.nextID(string(kind[:1])), ContainedIn: projectID, Title: title, Items: []string{}}
	f.activities[kind][projectID] = append(f.activities[kind][projectID], a)
	return a, nil
}

func (f *fakeProjectAPI) listActivities(kind models.ActivityKind, projectID string) ([]models.ProjectActivity, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	return append([]models.ProjectActivity{}, f.activities[kind][projectID]...), nil
}

func (f *fakeProjectAPI) updateActivity(kind models.ActivityKind, projectID, id string, req dto.UpdateActivityRequest) (models.ProjectActivity, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return models.ProjectActivity{}, f.err
	}
	items := f.activities[kind][projectID]
	i := indexOf(items, id)
	if i < 0 {
		return models.ProjectActivity{}, notFound("update " + string(kind))
	}
	a := items[i]
	a.Title = req.Title.OrElse(a.Title)
	a.Description = req.Description.OrElse(a.Description)
	a.Items = mergeIDs(a.Items, req.ItemsToAdd, req.ItemsToRemove)
	items[i] = a
	return a, nil
}

func (f *fakeProjectAPI) deleteActivity(kind models.ActivityKind, projectID, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.activities[kind][projectID], _ = removed(f.activities[kind][projectID], id)
	return nil
}

func (f *fakeProjectAPI) CreateIteration(_ context.Context, projectID, title string) (models.ProjectActivity, error) {
	return f.createActivity(models.ActivityIteration, projectID, title)
}

func (f *fakeProjectAPI) ListIterations(_ context.Context, projectID string) ([]models.ProjectActivity, error) {
	return f.listActivities(models.ActivityIteration, projectID)
}

func (f *fakeProjectAPI) UpdateIteration(_ context.Context, projectID, id string, req dto.UpdateActivityRequest) (models.ProjectActivity, error) {
	return f.updateActivity(models.ActivityIteration, projectID, id, req)
}

func (f *fakeProjectAPI) DeleteIteration(_ context.Context, projectID, id string) error {
	return f.deleteActivity(models.ActivityIteration, projectID, id)
}

func (f *fakeProjectAPI) CreateMilestone(_ context.Context, projectID, title string) (models.ProjectActivity, error) {
	return f.createActivity(models.ActivityMilestone, projectID, title)
}

func (f *fakeProjectAPI) ListMilestones(_ context.Context, projectID string) ([]models.ProjectActivity, error) {
	return f.listActivities(models.ActivityMilestone, projectID)
}

func (f *fakeProjectAPI) UpdateMilestone(_ context.Context, projectID, id string, req dto.UpdateActivityRequest) (models.ProjectActivity, error) {
	return f.updateActivity(models.ActivityMilestone, projectID, id, req)
}

func (f *fakeProjectAPI) DeleteMilestone(_ context.Context, projectID, id string) error {
	return f.deleteActivity(models.ActivityMilestone, projectID, id)
}

type fakeWorkItemAPI struct {
	*fakeServer
	items []models.WorkItem
	// gate, when set, blocks Update until it receives a value.
	gate chan struct{}
}

func newFakeWorkItemAPI() *fakeWorkItemAPI {
	return &fakeWorkItemAPI{fakeServer: &fakeServer{}}
}

func (f *fakeWorkItemAPI) Create(_ context.Context, projectID, title string) (models.WorkItem, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return models.WorkItem{}, f.err
	}
	item := models.WorkItem{
		ID:          f.nextID("i"),
		ContainedIn: projectID,
		Title:       title,
		Status:      models.StatusOpen,
		Priority:    models.PriorityMedium,
		Type:        models.WorkItemTypeTask,
	}
	f.items = append(f.items, item)
	return item, nil
}

func (f *fakeWorkItemAPI) List(_ context.Context, projectID string) ([]models.WorkItem, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	out := []models.WorkItem{}
	for _, item := range f.items {
		if projectID == "" || item.ContainedIn == projectID {
			out = append(out, item)
		}
	}
	return out, nil
}

func (f *fakeWorkItemAPI) Update(_ context.Context, id string, req dto.UpdateWorkItemRequest) (models.WorkItem, error) {
	if f.gate != nil {
		<-f.gate
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return models.WorkItem{}, f.err
	}
	i := indexOf(f.items, id)
	if i < 0 {
		return models.WorkItem{}, notFound("update work item")
	}
	item := f.items[i]
	item.Title = req.Title.OrElse(item.Title)
	item.Description = req.Description.OrElse(item.Description)
	item.Status = req.Status.OrElse(item.Status)
	item.Priority = req.Priority.OrElse(item.Priority)
	item.Type = req.Type.OrElse(item.Type)
	item.AssignedTo = req.Assignee.OrElse(item.AssignedTo)
	f.items[i] = item
	return item, nil
}

func (f *fakeWorkItemAPI) Delete(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.items, _ = removed(f.items, id)
	return nil
}

type fakeUserAPI struct {
	*fakeServer
	users []models.User
}

func newFakeUserAPI(users ...models.User) *fakeUserAPI {
	return &fakeUserAPI{fakeServer: &fakeServer{}, users: users}
}

func (f *fakeUserAPI) Create(_ context.Context, req dto.CreateUserRequest) (models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return models.User{}, f.err
	}
	u := models.User{ID: f.nextID("u"), Firstname: req.Firstname, Lastname: req.Lastname, Email: req.Email}
	f.users = append(f.users, u)
	return u, nil
}

func (f *fakeUserAPI) List(context.Context) ([]models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	return append([]models.User{}, f.users...), nil
}

func (f *fakeUserAPI) Update(_ context.Context, id string, req dto.UpdateUserRequest) (models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return models.User{}, f.err
	}
	i := indexOf(f.users, id)
	if i < 0 {
		return models.User{}, notFound("update user")
	}
	u := f.users[i]
	u.Firstname = req.Firstname.OrElse(u.Firstname)
	u.Lastname = req.Lastname.OrElse(u.Lastname)
	u.Email = req.Email.OrElse(u.Email)
	f.users[i] = u
	return u, nil
}

func (f *fakeUserAPI) Delete(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.users, _ = removed(f.users, id)
	return nil
}
