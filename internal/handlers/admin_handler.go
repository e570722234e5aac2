package handlers

import (
	"fmt"
	"net/http"

	"jobportal_backend/internal/middleware"
	"jobportal_backend/internal/services"

	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	*BaseHandler
	userService *services.UserService
	jobService  *services.JobService
	appService  *services.ApplicationService
}

func NewAdminHandler(base *BaseHandler, userService *services.UserService, jobService *services.JobService, appService *services.ApplicationService) *AdminHandler {
	return &AdminHandler{
		BaseHandler: base,
		userService: userService,
		jobService:  jobService,
		appService:  appService,
	}
}

// Dashboard handles GET /admin_dashboard: employers, jobs and applications
// in one payload.
func (h *AdminHandler) Dashboard(c *gin.Context) {
	employers, err := h.userService.ListEmployers()
	if err != nil {
		h.RedirectError(c, err, "/")
		return
	}
	jobs, err := h.jobService.List()
	if err != nil {
		h.RedirectError(c, err, "/")
		return
	}
	apps, err := h.appService.ListAll()
	if err != nil {
		h.RedirectError(c, err, "/")
		return
	}

	h.View(c, http.StatusOK, gin.H{
		"employers":    employers,
		"jobs":         jobs,
		"applications": apps,
		"user":         middleware.CurrentUser(c),
	})
}

// ChangeJobStatus handles GET /change_job_status/:jobID/:status.
func (h *AdminHandler) ChangeJobStatus(c *gin.Context) {
	jobID := c.Param("jobID")
	status := c.Param("status")

	if err := h.jobService.ChangeStatus(jobID, status); err != nil {
		h.RedirectError(c, err, "/admin_dashboard")
		return
	}
	h.RedirectWithFlash(c, "/admin_dashboard", fmt.Sprintf("Job status changed to %s", status), "success")
}

// ChangeApplicationStatus handles GET /admin/change_application_status/:appID/:status.
func (h *AdminHandler) ChangeApplicationStatus(c *gin.Context) {
	appID := c.Param("appID")
	status := c.Param("status")

	if err := h.appService.ChangeStatus(appID, status); err != nil {
		h.RedirectError(c, err, "/admin_dashboard")
		return
	}
	h.RedirectWithFlash(c, "/admin_dashboard", fmt.Sprintf("Application status changed to %s", status), "success")
}

// ApproveEmployer handles GET /approve/:userID.
func (h *AdminHandler) ApproveEmployer(c *gin.Context) {
	if _, err := h.userService.SetEmployerApproval(c.Param("userID"), true); err != nil {
		h.RedirectError(c, err, "/admin_dashboard")
		return
	}
	h.RedirectWithFlash(c, "/admin_dashboard", "Employer approved", "success")
}

// RevokeEmployer handles GET /revoke/:userID.
func (h *AdminHandler) RevokeEmployer(c *gin.Context) {
	if _, err := h.userService.SetEmployerApproval(c.Param("userID"), false); err != nil {
		h.RedirectError(c, err, "/admin_dashboard")
		return
	}
	h.RedirectWithFlash(c, "/admin_dashboard", "Employer revoked", "info")
}
