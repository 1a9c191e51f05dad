package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/project-dashboard/internal/dto"
	"github.com/yukikurage/project-dashboard/internal/models"
	"github.com/yukikurage/project-dashboard/internal/services"
)

// ResourceHandler serves the resources of one parent family. The parent id
// is the :id path parameter.
type ResourceHandler struct {
	kind            models.ParentKind
	resourceService *services.ResourceService
}

func NewResourceHandler(kind models.ParentKind, resourceService *services.ResourceService) *ResourceHandler {
	return &ResourceHandler{
		kind:            kind,
		resourceService: resourceService,
	}
}

func (h *ResourceHandler) CreateResource(c *gin.Context) {
	var req dto.CreateResourceRequest
	if !bindJSON(c, &req) {
		return
	}

	res, err := h.resourceService.CreateResource(h.kind, c.Param("id"), services.CreateResourceInput{
		Title: req.Title,
		URL:   req.URL,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, res)
}

func (h *ResourceHandler) ListResources(c *gin.Context) {
	resources, err := h.resourceService.ListResources(h.kind, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resources)
}

func (h *ResourceHandler) GetResource(c *gin.Context) {
	res, err := h.resourceService.GetResource(h.kind, c.Param("id"), c.Param("resourceId"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, res)
}

func (h *ResourceHandler) UpdateResource(c *gin.Context) {
	var req dto.UpdateResourceRequest
	if !bindJSON(c, &req) {
		return
	}

	res, err := h.resourceService.UpdateResource(h.kind, c.Param("id"), c.Param("resourceId"), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, res)
}

func (h *ResourceHandler) DeleteResource(c *gin.Context) {
	if err := h.resourceService.DeleteResource(h.kind, c.Param("id"), c.Param("resourceId")); err != nil {
		respondError(c, err)
		return
	}

	noContent(c)
}
