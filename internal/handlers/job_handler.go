package handlers

import (
	"net/http"

	"jobportal_backend/internal/middleware"
	"jobportal_backend/internal/services"
	"jobportal_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type JobHandler struct {
	*BaseHandler
	jobService *services.JobService
}

func NewJobHandler(base *BaseHandler, jobService *services.JobService) *JobHandler {
	return &JobHandler{BaseHandler: base, jobService: jobService}
}

// Index handles GET /: all postings, newest first, visible to anyone.
func (h *JobHandler) Index(c *gin.Context) {
	jobs, err := h.jobService.List()
	if err != nil {
		h.RedirectError(c, err, "/login")
		return
	}

	payload := gin.H{"jobs": jobs}
	if user := middleware.CurrentUser(c); user != nil {
		payload["user"] = user
	}
	h.View(c, http.StatusOK, payload)
}

// ShowPostJob handles GET /post-job.
func (h *JobHandler) ShowPostJob(c *gin.Context) {
	h.View(c, http.StatusOK, gin.H{
		"form":   gin.H{"fields": []string{"title", "description", "salary", "location", "category"}},
		"action": "/post-job",
		"user":   middleware.CurrentUser(c),
	})
}

// PostJob handles POST /post-job.
func (h *JobHandler) PostJob(c *gin.Context) {
	user := middleware.CurrentUser(c)

	var req dto.PostJobRequest
	if !h.BindAndValidate(c, &req, "/post-job") {
		return
	}

	if _, err := h.jobService.Post(user, &req); err != nil {
		h.RedirectError(c, err, "/post-job")
		return
	}

	h.RedirectWithFlash(c, "/", "Job posted successfully", "success")
}
