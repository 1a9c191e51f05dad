package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/project-dashboard/internal/dto"
	"github.com/yukikurage/project-dashboard/internal/services"
)

type WorkItemHandler struct {
	itemService *services.WorkItemService
}

func NewWorkItemHandler(itemService *services.WorkItemService) *WorkItemHandler {
	return &WorkItemHandler{itemService: itemService}
}

// ListWorkItems returns work items, filtered by the projectId query parameter when given
func (h *WorkItemHandler) ListWorkItems(c *gin.Context) {
	items, err := h.itemService.ListWorkItems(c.Query("projectId"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, items)
}

func (h *WorkItemHandler) CreateWorkItem(c *gin.Context) {
	var req dto.CreateWorkItemRequest
	if !bindJSON(c, &req) {
		return
	}

	item, err := h.itemService.CreateWorkItem(services.CreateWorkItemInput{
		Title:     req.Title,
		ProjectID: req.ProjectID,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, item)
}

func (h *WorkItemHandler) GetWorkItem(c *gin.Context) {
	item, err := h.itemService.GetWorkItem(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, item)
}

func (h *WorkItemHandler) UpdateWorkItem(c *gin.Context) {
	var req dto.UpdateWorkItemRequest
	if !bindJSON(c, &req) {
		return
	}

	item, err := h.itemService.UpdateWorkItem(c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, item)
}

func (h *WorkItemHandler) DeleteWorkItem(c *gin.Context) {
	if err := h.itemService.DeleteWorkItem(c.Param("id")); err != nil {
		respondError(c, err)
		return
	}

	noContent(c)
}
