package handlers

import (
	"bytes"
	"net/http"
	"net/http/httptest"

	apierrors "github.com/yukikurage/project-dashboard/internal/errors"
	"github.com/yukikurage/project-dashboard/internal/models"
)

func (suite *HandlerTestSuite) requestRaw(method, url, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, url, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *HandlerTestSuite) mustUpdate(path string, body map[string]interface{}) {
	w := suite.request(http.MethodPut, path, body)
	suite.Require().Equal(http.StatusOK, w.Code, w.Body.String())
}

func (suite *HandlerTestSuite) createActivity(projectID, kind, title string) models.ProjectActivity {
	w := suite.request(http.MethodPost, "/api/projects/"+projectID+"/"+kind, map[string]string{"title": title})
	suite.Require().Equal(http.StatusCreated, w.Code, w.Body.String())
	var activity models.ProjectActivity
	suite.decode(w, &activity)
	return activity
}

func (suite *HandlerTestSuite) assertGone(path string) {
	suite.assertError(suite.request(http.MethodGet, path, nil), http.StatusNotFound, apierrors.ErrCodeNotFound)
}

func (suite *HandlerTestSuite) TestDeleteProject_RemovesWorkItemsAndActivities() {
	owner := suite.createUser("Ada")
	org := suite.createOrganization("Acme", owner.ID)
	workspace := suite.createWorkspace("Marketing", org.ID)
	website := suite.createProject("Website", workspace.ID)
	mobile := suite.createProject("Mobile", workspace.ID)
	bug := suite.createWorkItem("Fix login bug", website.ID)
	kept := suite.createWorkItem("Ship app", mobile.ID)
	sprint := suite.createActivity(website.ID, "iterations", "Sprint 1")
	suite.mustUpdate("/api/projects/"+website.ID+"/iterations/"+sprint.ID, map[string]interface{}{"itemsToAdd": []string{bug.ID}})

	w := suite.request(http.MethodDelete, "/api/projects/"+website.ID, nil)
	suite.Require().Equal(http.StatusNoContent, w.Code)

	suite.assertGone("/workItems/" + bug.ID)
	suite.assertGone("/api/projects/" + website.ID + "/iterations")

	w = suite.request(http.MethodGet, "/workItems", nil)
	var items []models.WorkItem
	suite.decode(w, &items)
	suite.Require().Len(items, 1)
	suite.Equal(kept.ID, items[0].ID)

	w = suite.request(http.MethodGet, "/api/workspaces/"+workspace.ID, nil)
	var got models.Workspace
	suite.decode(w, &got)
	suite.Equal([]string{mobile.ID}, got.Projects)
}

func (suite *HandlerTestSuite) TestDeleteWorkspace_RemovesProjectsAndWorkItems() {
	owner := suite.createUser("Ada")
	org := suite.createOrganization("Acme", owner.ID)
	marketing := suite.createWorkspace("Marketing", org.ID)
	sales := suite.createWorkspace("Sales", org.ID)
	website := suite.createProject("Website", marketing.ID)
	crm := suite.createProject("CRM", sales.ID)
	bug := suite.createWorkItem("Fix login bug", website.ID)
	suite.createWorkItem("Import leads", crm.ID)

	w := suite.request(http.MethodDelete, "/api/workspaces/"+marketing.ID, nil)
	suite.Require().Equal(http.StatusNoContent, w.Code)

	suite.assertGone("/api/workspaces/" + marketing.ID)
	suite.assertGone("/api/projects/" + website.ID)
	suite.assertGone("/workItems/" + bug.ID)

	w = suite.request(http.MethodGet, "/api/projects", nil)
	var projects []models.Project
	suite.decode(w, &projects)
	suite.Require().Len(projects, 1)
	suite.Equal(crm.ID, projects[0].ID)
}

func (suite *HandlerTestSuite) TestDeleteOrganization_RemovesWorkspaces() {
	owner := suite.createUser("Ada")
	acme := suite.createOrganization("Acme", owner.ID)
	globex := suite.createOrganization("Globex", owner.ID)
	marketing := suite.createWorkspace("Marketing", acme.ID)
	sales := suite.createWorkspace("Sales", globex.ID)
	website := suite.createProject("Website", marketing.ID)
	bug := suite.createWorkItem("Fix login bug", website.ID)

	w := suite.request(http.MethodDelete, "/api/organizations/"+acme.ID, nil)
	suite.Require().Equal(http.StatusNoContent, w.Code)

	suite.assertGone("/api/workspaces/" + marketing.ID)
	suite.assertGone("/api/projects/" + website.ID)
	suite.assertGone("/workItems/" + bug.ID)

	w = suite.request(http.MethodGet, "/api/workspaces", nil)
	var workspaces []models.Workspace
	suite.decode(w, &workspaces)
	suite.Require().Len(workspaces, 1)
	suite.Equal(sales.ID, workspaces[0].ID)
}

func (suite *HandlerTestSuite) TestDeleteUser_OwnerIsRefusedUntilOrganizationsAreGone() {
	owner := suite.createUser("Ada")
	org := suite.createOrganization("Acme", owner.ID)
	workspace := suite.createWorkspace("Marketing", org.ID)
	project := suite.createProject("Website", workspace.ID)
	item := suite.createWorkItem("Fix login bug", project.ID)
	assignee := suite.createUser("Grace")
	suite.mustUpdate("/workItems/"+item.ID, map[string]interface{}{"assignee": assignee.ID})

	w := suite.request(http.MethodDelete, "/api/users/"+owner.ID, nil)
	suite.assertError(w, http.StatusConflict, apierrors.ErrCodeConflict)

	w = suite.request(http.MethodGet, "/api/organizations/"+org.ID, nil)
	suite.Require().Equal(http.StatusOK, w.Code)
	var got models.Organization
	suite.decode(w, &got)
	suite.Equal("Ada", got.Owner.Firstname)

	w = suite.request(http.MethodDelete, "/api/users/"+assignee.ID, nil)
	suite.Require().Equal(http.StatusNoContent, w.Code)
	w = suite.request(http.MethodGet, "/workItems/"+item.ID, nil)
	var updated models.WorkItem
	suite.decode(w, &updated)
	suite.Empty(updated.AssignedTo)

	suite.Require().Equal(http.StatusNoContent, suite.request(http.MethodDelete, "/api/organizations/"+org.ID, nil).Code)
	w = suite.request(http.MethodDelete, "/api/users/"+owner.ID, nil)
	suite.Equal(http.StatusNoContent, w.Code)
}

func (suite *HandlerTestSuite) TestUsers_EmailMustBeUnique() {
	ada := suite.createUser("Ada")
	grace := suite.createUser("Grace")

	w := suite.request(http.MethodPost, "/api/users", map[string]string{"firstname": "Ada", "lastname": "Byron", "email": ada.Email})
	suite.assertError(w, http.StatusConflict, apierrors.ErrCodeAlreadyExists)

	w = suite.request(http.MethodPut, "/api/users/"+grace.ID, map[string]interface{}{"email": ada.Email})
	suite.assertError(w, http.StatusConflict, apierrors.ErrCodeAlreadyExists)

	w = suite.request(http.MethodPut, "/api/users/"+ada.ID, map[string]interface{}{"email": ada.Email, "lastname": "Lovelace"})
	suite.Require().Equal(http.StatusOK, w.Code, w.Body.String())
}

func (suite *HandlerTestSuite) TestBindErrors_HaveDistinctCodes() {
	w := suite.request(http.MethodPost, "/api/workspaces", map[string]string{})
	suite.assertError(w, http.StatusBadRequest, apierrors.ErrCodeMissingField)
	var apiErr apierrors.APIError
	suite.decode(w, &apiErr)
	suite.Equal([]interface{}{"title", "organizationId"}, apiErr.Details)

	w = suite.requestRaw(http.MethodPost, "/api/organizations", `{"name":`)
	suite.assertError(w, http.StatusBadRequest, apierrors.ErrCodeInvalidFormat)

	w = suite.requestRaw(http.MethodPut, "/workItems/anything", `{"title": 5}`)
	suite.assertError(w, http.StatusBadRequest, apierrors.ErrCodeInvalidFormat)
}

func (suite *HandlerTestSuite) TestEmbeddedUsers_CarryTheirOrganizations() {
	owner := suite.createUser("Ada")
	contact := suite.createUser("Grace")
	org := suite.createOrganization("Acme", owner.ID)
	suite.Equal([]string{org.ID}, org.Owner.OwnedOrganizations)
	suite.Equal([]string{org.ID}, org.Owner.MemberOfOrganizations)

	suite.mustUpdate("/api/organizations/"+org.ID, map[string]interface{}{"membersToAdd": []string{contact.ID}})
	workspace := suite.createWorkspace("Marketing", org.ID)
	suite.mustUpdate("/api/workspaces/"+workspace.ID, map[string]interface{}{"contactsToAdd": []string{contact.ID, owner.ID}})

	w := suite.request(http.MethodGet, "/api/workspaces", nil)
	var workspaces []models.Workspace
	suite.decode(w, &workspaces)
	suite.Require().Len(workspaces, 1)
	suite.Require().Len(workspaces[0].Contacts, 2)
	contacts := make(map[string]models.User)
	for _, c := range workspaces[0].Contacts {
		contacts[c.ID] = c
	}
	suite.Equal([]string{}, contacts[contact.ID].OwnedOrganizations)
	suite.Equal([]string{org.ID}, contacts[contact.ID].MemberOfOrganizations)
	suite.Equal([]string{org.ID}, contacts[owner.ID].OwnedOrganizations)

	w = suite.request(http.MethodGet, "/api/organizations", nil)
	var orgs []models.Organization
	suite.decode(w, &orgs)
	suite.Require().Len(orgs, 1)
	suite.Equal([]string{org.ID}, orgs[0].Owner.OwnedOrganizations)
}

func (suite *HandlerTestSuite) TestWorkItems_EmptyStringsKeepValues() {
	owner := suite.createUser("Ada")
	org := suite.createOrganization("Acme", owner.ID)
	workspace := suite.createWorkspace("Marketing", org.ID)
	project := suite.createProject("Website", workspace.ID)
	item := suite.createWorkItem("Fix login bug", project.ID)
	suite.mustUpdate("/workItems/"+item.ID, map[string]interface{}{"priority": "High", "type": "Bug"})

	// Body as sent by clients in legacy whitespace mode
	w := suite.request(http.MethodPut, "/workItems/"+item.ID, map[string]interface{}{
		"title":       "",
		"description": "",
		"status":      "Done",
		"priority":    "",
		"assignee":    "",
	})
	suite.Require().Equal(http.StatusOK, w.Code, w.Body.String())
	var updated models.WorkItem
	suite.decode(w, &updated)
	suite.Equal("Fix login bug", updated.Title)
	suite.Equal(models.StatusDone, updated.Status)
	suite.Equal(models.PriorityHigh, updated.Priority)
	suite.Equal(models.WorkItemTypeBug, updated.Type)

	w = suite.request(http.MethodPut, "/workItems/"+item.ID, map[string]interface{}{"title": "   "})
	suite.assertError(w, http.StatusBadRequest, apierrors.ErrCodeInvalidInput)
}

func (suite *HandlerTestSuite) TestUpdate_AllNullsChangeNothing() {
	owner := suite.createUser("Ada")
	contact := suite.createUser("Grace")
	org := suite.createOrganization("Acme", owner.ID)
	workspace := suite.createWorkspace("Marketing", org.ID)
	project := suite.createProject("Website", workspace.ID)
	item := suite.createWorkItem("Fix login bug", project.ID)
	sub := suite.createWorkItem("Write tests", project.ID)
	iteration := suite.createActivity(project.ID, "iterations", "Sprint 1")
	milestone := suite.createActivity(project.ID, "milestones", "Beta")

	w := suite.request(http.MethodPost, "/api/workspaces/"+workspace.ID+"/resources", map[string]string{"title": "Brand guide", "url": "https://example.com/brand"})
	suite.Require().Equal(http.StatusCreated, w.Code, w.Body.String())
	var res models.Resource
	suite.decode(w, &res)

	projectPath := "/api/projects/" + project.ID
	iterationPath := projectPath + "/iterations/" + iteration.ID
	milestonePath := projectPath + "/milestones/" + milestone.ID
	resourcePath := "/api/workspaces/" + workspace.ID + "/resources/" + res.ID

	suite.mustUpdate("/api/workspaces/"+workspace.ID, map[string]interface{}{"contactsToAdd": []string{contact.ID}})
	suite.mustUpdate(projectPath, map[string]interface{}{
		"description": "Relaunch",
		"status":      "InProgress",
		"priority":    "High",
		"startDate":   "2024-01-01T00:00:00Z",
		"endDate":     "2024-03-31T00:00:00Z",
	})
	suite.mustUpdate("/workItems/"+item.ID, map[string]interface{}{
		"description":   "Users get logged out",
		"status":        "InProgress",
		"priority":      "Critical",
		"assignee":      contact.ID,
		"type":          "Bug",
		"subItemsToAdd": []string{sub.ID},
	})
	suite.mustUpdate(iterationPath, map[string]interface{}{"description": "Two weeks", "itemsToAdd": []string{item.ID}})
	suite.mustUpdate(milestonePath, map[string]interface{}{"description": "Public beta", "itemsToAdd": []string{sub.ID}})
	suite.mustUpdate(resourcePath, map[string]interface{}{"description": "Logos", "type": "document"})

	activityNulls := map[string]interface{}{"title": nil, "description": nil, "itemsToAdd": nil, "itemsToRemove": nil}
	tests := []struct {
		name string
		path string
		body map[string]interface{}
	}{
		{
			name: "project",
			path: projectPath,
			body: map[string]interface{}{
				"id": nil, "title": nil, "description": nil, "status": nil,
				"priority": nil, "startDate": nil, "endDate": nil,
			},
		},
		{
			name: "workspace",
			path: "/api/workspaces/" + workspace.ID,
			body: map[string]interface{}{
				"title": nil, "contactsToAdd": nil, "contactsToRemove": nil,
				"projectsToAdd": nil, "projectsToRemove": nil,
			},
		},
		{
			name: "work item",
			path: "/workItems/" + item.ID,
			body: map[string]interface{}{
				"title": nil, "description": nil, "status": nil, "priority": nil,
				"assignee": nil, "type": nil, "subItemsToAdd": nil, "subItemsToRemove": nil,
			},
		},
		{name: "iteration", path: iterationPath, body: activityNulls},
		{name: "milestone", path: milestonePath, body: activityNulls},
		{
			name: "resource",
			path: resourcePath,
			body: map[string]interface{}{"title": nil, "url": nil, "description": nil, "type": nil},
		},
		{
			name: "user",
			path: "/api/users/" + contact.ID,
			body: map[string]interface{}{"firstname": nil, "lastname": nil, "email": nil},
		},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			before := suite.request(http.MethodGet, tt.path, nil)
			suite.Require().Equal(http.StatusOK, before.Code, before.Body.String())

			w := suite.request(http.MethodPut, tt.path, tt.body)
			suite.Require().Equal(http.StatusOK, w.Code, w.Body.String())
			suite.JSONEq(before.Body.String(), w.Body.String())

			after := suite.request(http.MethodGet, tt.path, nil)
			suite.JSONEq(before.Body.String(), after.Body.String())
		})
	}

	w = suite.request(http.MethodGet, projectPath, nil)
	var got models.Project
	suite.decode(w, &got)
	suite.Require().NotNil(got.TimeRange)
	suite.Equal(2024, got.TimeRange.Start.Year())
}
