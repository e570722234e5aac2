package handlers

import (
	"net/http"

	"jobportal_backend/internal/middleware"
	"jobportal_backend/internal/services"
	"jobportal_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

type ApplicationHandler struct {
	*BaseHandler
	appService *services.ApplicationService
	jobService *services.JobService
}

func NewApplicationHandler(base *BaseHandler, appService *services.ApplicationService, jobService *services.JobService) *ApplicationHandler {
	return &ApplicationHandler{BaseHandler: base, appService: appService, jobService: jobService}
}

// ShowApply handles GET /apply/:jobID. A repeat visit by someone who already
// applied is bounced to their application list with a warning.
func (h *ApplicationHandler) ShowApply(c *gin.Context) {
	user := middleware.CurrentUser(c)
	jobID := c.Param("jobID")

	job, err := h.jobService.Get(jobID)
	if err != nil {
		h.RedirectError(c, err, "/")
		return
	}

	applied, err := h.appService.HasApplied(user.ID, job.ID)
	if err != nil {
		h.RedirectError(c, err, "/")
		return
	}
	if applied {
		h.RedirectWithFlash(c, "/my-applications", "You have already applied for this job", "warning")
		return
	}

	h.View(c, http.StatusOK, gin.H{
		"job":    job,
		"form":   gin.H{"fields": []string{"resume"}, "enctype": "multipart/form-data"},
		"action": "/apply/" + job.ID,
	})
}

// Apply handles POST /apply/:jobID with the resume as multipart file "resume".
func (h *ApplicationHandler) Apply(c *gin.Context) {
	user := middleware.CurrentUser(c)
	jobID := c.Param("jobID")

	resume, err := c.FormFile("resume")
	if err != nil {
		h.RedirectWithFlash(c, "/apply/"+jobID, "Please upload your resume before submitting", "error")
		return
	}

	if _, err := h.appService.Apply(c.Request.Context(), user, jobID, resume); err != nil {
		// Duplicates bounce to the caller's application list; anything else
		// returns to the form.
		if appErr, ok := apperrors.AsAppError(err); ok && appErr.Code == apperrors.CodeConflict {
			h.RedirectError(c, err, "/my-applications")
			return
		}
		h.RedirectError(c, err, "/apply/"+jobID)
		return
	}

	h.RedirectWithFlash(c, "/my-applications", "Application submitted successfully!", "success")
}

// MyApplications handles GET /my-applications.
func (h *ApplicationHandler) MyApplications(c *gin.Context) {
	user := middleware.CurrentUser(c)

	apps, err := h.appService.ListForApplicant(user.ID)
	if err != nil {
		h.RedirectError(c, err, "/")
		return
	}

	h.View(c, http.StatusOK, gin.H{
		"applications": apps,
		"user":         user,
	})
}

// EmployerApplications handles GET /applications: every application to the
// caller's postings.
func (h *ApplicationHandler) EmployerApplications(c *gin.Context) {
	user := middleware.CurrentUser(c)

	jobs, apps, err := h.appService.ListForEmployer(user.ID)
	if err != nil {
		h.RedirectError(c, err, "/")
		return
	}

	h.View(c, http.StatusOK, gin.H{
		"jobs":         jobs,
		"applications": apps,
		"user":         user,
	})
}
