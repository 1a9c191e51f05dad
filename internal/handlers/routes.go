package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/project-dashboard/internal/models"
	"github.com/yukikurage/project-dashboard/internal/repository"
	"github.com/yukikurage/project-dashboard/internal/services"
	"gorm.io/gorm"
)

// RegisterRoutes wires repositories, services and handlers over db and
// mounts every API route on r.
func RegisterRoutes(r gin.IRouter, db *gorm.DB) {
	userRepo := repository.NewUserRepository(db)
	orgRepo := repository.NewOrganizationRepository(db)
	workspaceRepo := repository.NewWorkspaceRepository(db)
	projectRepo := repository.NewProjectRepository(db)
	activityRepo := repository.NewActivityRepository(db)
	itemRepo := repository.NewWorkItemRepository(db)
	resourceRepo := repository.NewResourceRepository(db)

	resourceService := services.NewResourceService(resourceRepo, orgRepo, workspaceRepo, projectRepo)

	userHandler := NewUserHandler(services.NewUserService(userRepo))
	orgHandler := NewOrganizationHandler(services.NewOrganizationService(orgRepo, userRepo))
	workspaceHandler := NewWorkspaceHandler(services.NewWorkspaceService(workspaceRepo, orgRepo, userRepo))
	projectHandler := NewProjectHandler(services.NewProjectService(projectRepo, workspaceRepo), resourceService)
	iterationHandler := NewActivityHandler(services.NewActivityService(models.ActivityIteration, activityRepo, projectRepo))
	milestoneHandler := NewActivityHandler(services.NewActivityService(models.ActivityMilestone, activityRepo, projectRepo))
	itemHandler := NewWorkItemHandler(services.NewWorkItemService(itemRepo, projectRepo))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"message": "Project Dashboard API is running",
		})
	})

	api := r.Group("/api")
	{
		users := api.Group("/users")
		{
			users.GET("", userHandler.ListUsers)
			users.POST("", userHandler.CreateUser)
			users.GET("/:id", userHandler.GetUser)
			users.PUT("/:id", userHandler.UpdateUser)
			users.DELETE("/:id", userHandler.DeleteUser)
		}

		orgs := api.Group("/organizations")
		{
			orgs.GET("", orgHandler.ListOrganizations)
			orgs.POST("", orgHandler.CreateOrganization)
			orgs.GET("/:id", orgHandler.GetOrganization)
			orgs.PUT("/:id", orgHandler.UpdateOrganization)
			orgs.DELETE("/:id", orgHandler.DeleteOrganization)
			registerResources(orgs, NewResourceHandler(models.ParentOrganization, resourceService))
		}

		workspaces := api.Group("/workspaces")
		{
			workspaces.GET("", workspaceHandler.ListWorkspaces)
			workspaces.POST("", workspaceHandler.CreateWorkspace)
			workspaces.GET("/:id", workspaceHandler.GetWorkspace)
			workspaces.PUT("/:id", workspaceHandler.UpdateWorkspace)
			workspaces.DELETE("/:id", workspaceHandler.DeleteWorkspace)
			registerResources(workspaces, NewResourceHandler(models.ParentWorkspace, resourceService))
		}

		projects := api.Group("/projects")
		{
			projects.GET("", projectHandler.ListProjects)
			projects.POST("", projectHandler.CreateProject)
			projects.GET("/:id", projectHandler.GetProject)
			projects.PUT("/:id", projectHandler.UpdateProject)
			projects.DELETE("/:id", projectHandler.DeleteProject)
			projects.POST("/:id/resources/:resourceId", projectHandler.AttachResource)
			registerResources(projects, NewResourceHandler(models.ParentProject, resourceService))
			registerActivities(projects.Group("/:id/iterations"), iterationHandler)
			registerActivities(projects.Group("/:id/milestones"), milestoneHandler)
		}

		registerWorkItems(api.Group("/workItems"), itemHandler)
	}

	// Work items have always been served without the /api prefix as well
	registerWorkItems(r.Group("/workItems"), itemHandler)
}

func registerResources(parent *gin.RouterGroup, h *ResourceHandler) {
	resources := parent.Group("/:id/resources")
	resources.GET("", h.ListResources)
	resources.POST("", h.CreateResource)
	resources.GET("/:resourceId", h.GetResource)
	resources.PUT("/:resourceId", h.UpdateResource)
	resources.DELETE("/:resourceId", h.DeleteResource)
}

func registerActivities(g *gin.RouterGroup, h *ActivityHandler) {
	g.GET("", h.ListActivities)
	g.POST("", h.CreateActivity)
	g.GET("/:activityId", h.GetActivity)
	g.PUT("/:activityId", h.UpdateActivity)
	g.DELETE("/:activityId", h.DeleteActivity)
}

func registerWorkItems(g *gin.RouterGroup, h *WorkItemHandler) {
	g.GET("", h.ListWorkItems)
	g.POST("", h.CreateWorkItem)
	g.GET("/:id", h.GetWorkItem)
	g.PUT("/:id", h.UpdateWorkItem)
	g.DELETE("/:id", h.DeleteWorkItem)
}
