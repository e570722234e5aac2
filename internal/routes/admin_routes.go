package routes

import (
	"jobportal_backend/internal/handlers"
	"jobportal_backend/internal/middleware"

	"github.com/gin-gonic/gin"
)

func registerAdminRoutes(router *gin.Engine, h *handlers.AppHandlers) {
	admin := router.Group("/", middleware.RequireAdmin())
	{
		admin.GET("/admin_dashboard", h.AdminHandler.Dashboard)
		admin.GET("/change_job_status/:jobID/:status", h.AdminHandler.ChangeJobStatus)
		admin.GET("/admin/change_application_status/:appID/:status", h.AdminHandler.ChangeApplicationStatus)
		admin.GET("/approve/:userID", h.AdminHandler.ApproveEmployer)
		admin.GET("/revoke/:userID", h.AdminHandler.RevokeEmployer)
	}
}
