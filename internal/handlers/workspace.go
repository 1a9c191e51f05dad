package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/project-dashboard/internal/dto"
	"github.com/yukikurage/project-dashboard/internal/services"
)

type WorkspaceHandler struct {
	workspaceService *services.WorkspaceService
}

func NewWorkspaceHandler(workspaceService *services.WorkspaceService) *WorkspaceHandler {
	return &WorkspaceHandler{workspaceService: workspaceService}
}

func (h *WorkspaceHandler) CreateWorkspace(c *gin.Context) {
	var req dto.CreateWorkspaceRequest
	if !bindJSON(c, &req) {
		return
	}

	workspace, err := h.workspaceService.CreateWorkspace(services.CreateWorkspaceInput{
		Title:          req.Title,
		OrganizationID: req.OrganizationID,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, workspace)
}

func (h *WorkspaceHandler) ListWorkspaces(c *gin.Context) {
	workspaces, err := h.workspaceService.ListWorkspaces()
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, workspaces)
}

func (h *WorkspaceHandler) GetWorkspace(c *gin.Context) {
	workspace, err := h.workspaceService.GetWorkspace(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, workspace)
}

// UpdateWorkspace updates the title, contacts and project list
func (h *WorkspaceHandler) UpdateWorkspace(c *gin.Context) {
	var req dto.UpdateWorkspaceRequest
	if !bindJSON(c, &req) {
		return
	}

	workspace, err := h.workspaceService.UpdateWorkspace(c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, workspace)
}

func (h *WorkspaceHandler) DeleteWorkspace(c *gin.Context) {
	if err := h.workspaceService.DeleteWorkspace(c.Param("id")); err != nil {
		respondError(c, err)
		return
	}

	noContent(c)
}
