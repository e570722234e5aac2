package routes

import (
	"jobportal_backend/internal/handlers"
	"jobportal_backend/internal/middleware"

	"github.com/gin-gonic/gin"
)

func registerPublicRoutes(router *gin.Engine, h *handlers.AppHandlers) {
	router.GET("/", h.JobHandler.Index)

	router.GET("/register", h.AuthHandler.ShowRegister)
	router.POST("/register", h.AuthHandler.Register)
	router.GET("/login", h.AuthHandler.ShowLogin)
	router.POST("/login", h.AuthHandler.Login)

	router.GET("/logout", middleware.RequireAuth(), h.AuthHandler.Logout)
}

func registerSeekerRoutes(router *gin.Engine, h *handlers.AppHandlers) {
	authed := router.Group("/", middleware.RequireAuth())
	{
		authed.GET("/apply/:jobID", h.ApplicationHandler.ShowApply)
		authed.POST("/apply/:jobID", h.ApplicationHandler.Apply)
		authed.GET("/my-applications", h.ApplicationHandler.MyApplications)
		authed.GET("/uploads/:filename", h.FileHandler.ServeUpload)
	}
}
