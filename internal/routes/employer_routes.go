package routes

import (
	"jobportal_backend/internal/handlers"
	"jobportal_backend/internal/middleware"

	"github.com/gin-gonic/gin"
)

func registerEmployerRoutes(router *gin.Engine, h *handlers.AppHandlers) {
	employer := router.Group("/", middleware.RequireApprovedEmployer())
	{
		employer.GET("/post-job", h.JobHandler.ShowPostJob)
		employer.POST("/post-job", h.JobHandler.PostJob)
		employer.GET("/applications", h.ApplicationHandler.EmployerApplications)
	}
}
