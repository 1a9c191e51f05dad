package client

import (
	"context"
	"net/http"
	"net/url"
	"strings"
	"unicode"

	"github.com/yukikurage/project-dashboard/internal/dto"
	"github.com/yukikurage/project-dashboard/internal/models"
)

const workItemsPath = "workItems"

// WorkItemClient accesses the work item endpoints. They live outside /api
// unless Config.WorkItemsUnderAPI is set.
type WorkItemClient struct {
	c *Client
}

// NewWorkItemClient returns a WorkItemClient that sends requests through c.
func NewWorkItemClient(c *Client) *WorkItemClient {
	return &WorkItemClient{c: c}
}

// Create creates a work item inside projectID.
func (w *WorkItemClient) Create(ctx context.Context, projectID, title string) (models.WorkItem, error) {
	req := dto.CreateWorkItemRequest{Title: title, ProjectID: projectID}
	return getOne[models.WorkItem](ctx, w.c, "create work item", http.MethodPost,
		route(w.c.workItemsPrefix, workItemsPath), req)
}

// List returns the work items of projectID, or every work item when
// projectID is empty.
func (w *WorkItemClient) List(ctx context.Context, projectID string) ([]models.WorkItem, error) {
	var query url.Values
	if projectID != "" {
		query = url.Values{"projectId": []string{projectID}}
	}
	return getList[models.WorkItem](ctx, w.c, "get work items", route(w.c.workItemsPrefix, workItemsPath), query)
}

// Get returns one work item.
func (w *WorkItemClient) Get(ctx context.Context, workItemID string) (models.WorkItem, error) {
	return getOne[models.WorkItem](ctx, w.c, "get work item", http.MethodGet,
		route(w.c.workItemsPrefix, workItemsPath, workItemID), nil)
}

// Update applies a partial update, rewritten first when
// Config.LegacyWorkItemWhitespace is set.
func (w *WorkItemClient) Update(ctx context.Context, workItemID string, req dto.UpdateWorkItemRequest) (models.WorkItem, error) {
	if w.c.legacyWhitespace {
		req = legacyWorkItemUpdate(req)
	}
	return getOne[models.WorkItem](ctx, w.c, "update work item", http.MethodPut,
		route(w.c.workItemsPrefix, workItemsPath, workItemID), req)
}

// Delete deletes a work item and drops it from parents and activities.
func (w *WorkItemClient) Delete(ctx context.Context, workItemID string) error {
	return w.c.do(ctx, "delete work item", http.MethodDelete,
		route(w.c.workItemsPrefix, workItemsPath, workItemID), nil, nil, nil)
}

// legacyWorkItemUpdate rewrites every string field the way older backends
// expect: all whitespace removed and absent values sent as "".
func legacyWorkItemUpdate(req dto.UpdateWorkItemRequest) dto.UpdateWorkItemRequest {
	req.Title = dto.Some(stripSpace(req.Title.OrElse("")))
	req.Description = dto.Some(stripSpace(req.Description.OrElse("")))
	req.Status = dto.Some(models.Status(stripSpace(string(req.Status.OrElse("")))))
	req.Priority = dto.Some(models.Priority(stripSpace(string(req.Priority.OrElse("")))))
	req.Assignee = dto.Some(stripSpace(req.Assignee.OrElse("")))
	return req
}

func stripSpace(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}
