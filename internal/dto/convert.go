package dto

import (
	"github.com/yukikurage/project-dashboard/internal/models"
	"github.com/yukikurage/project-dashboard/internal/schema"
)

// Conversion functions

// ToUser converts a user row plus its computed organization ids.
func ToUser(u schema.User, owned, memberOf []string) models.User {
	return models.User{
		ID:                    u.ID,
		Firstname:             u.Firstname,
		Lastname:              u.Lastname,
		Email:                 u.Email,
		OwnedOrganizations:    nonNil(owned),
		MemberOfOrganizations: nonNil(memberOf),
	}
}

// ToOrganization expects Members to be preloaded.
func ToOrganization(o schema.Organization, owner models.User) models.Organization {
	members := make([]string, len(o.Members))
	for i, m := range o.Members {
		members[i] = m.UserID
	}
	return models.Organization{
		ID:      o.ID,
		Name:    o.Name,
		Owner:   owner,
		Members: members,
	}
}

// ToWorkspace expects Projects to be preloaded; contacts follow w.Contacts order.
func ToWorkspace(w schema.Workspace, contacts []models.User) models.Workspace {
	if contacts == nil {
		contacts = []models.User{}
	}
	projects := make([]string, len(w.Projects))
	for i, p := range w.Projects {
		projects[i] = p.ProjectID
	}
	return models.Workspace{
		ID:       w.ID,
		Title:    w.Title,
		OwnedBy:  w.OrganizationID,
		Contacts: contacts,
		Projects: projects,
	}
}

func ToProject(p schema.Project) models.Project {
	project := models.Project{
		ID:          p.ID,
		Title:       p.Title,
		Description: p.Description,
		Status:      models.Status(p.Status),
		Priority:    models.Priority(p.Priority),
		ContainedIn: p.WorkspaceID,
	}
	if p.StartDate != nil || p.EndDate != nil {
		project.TimeRange = &models.TimeRange{}
		if p.StartDate != nil {
			project.TimeRange.Start = *p.StartDate
		}
		if p.EndDate != nil {
			project.TimeRange.End = *p.EndDate
		}
	}
	return project
}

// ToProjectActivity expects Items to be preloaded.
func ToProjectActivity(a schema.Activity) models.ProjectActivity {
	items := make([]string, len(a.Items))
	for i, item := range a.Items {
		items[i] = item.WorkItemID
	}
	return models.ProjectActivity{
		ID:          a.ID,
		ContainedIn: a.ProjectID,
		Title:       a.Title,
		Description: a.Description,
		Items:       items,
	}
}

// ToWorkItem includes sub items when preloaded.
func ToWorkItem(w schema.WorkItem) models.WorkItem {
	item := models.WorkItem{
		ID:          w.ID,
		ContainedIn: w.ProjectID,
		Title:       w.Title,
		Description: w.Description,
		Status:      models.Status(w.Status),
		Priority:    models.Priority(w.Priority),
		Type:        models.WorkItemType(w.Type),
		AssignedTo:  w.AssignedTo,
	}
	if len(w.SubItems) > 0 {
		item.SubItems = make([]string, len(w.SubItems))
		for i, s := range w.SubItems {
			item.SubItems[i] = s.SubItemID
		}
	}
	return item
}

func ToResource(r schema.Resource) models.Resource {
	return models.Resource{
		ID:          r.ID,
		Title:       r.Title,
		URL:         r.URL,
		Description: r.Description,
		Type:        r.Type,
	}
}

func nonNil(ids []string) []string {
	if ids == nil {
		return []string{}
	}
	return ids
}
