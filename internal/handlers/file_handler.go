package handlers

import (
	"io"
	"net/http"

	"jobportal_backend/internal/middleware"
	"jobportal_backend/internal/services"

	"github.com/gin-gonic/gin"
)

type FileHandler struct {
	*BaseHandler
	appService *services.ApplicationService
}

func NewFileHandler(base *BaseHandler, appService *services.ApplicationService) *FileHandler {
	return &FileHandler{BaseHandler: base, appService: appService}
}

// ServeUpload handles GET /uploads/:filename. The route requires a session
// and the service only releases a resume to its applicant, the employer who
// posted the job, or an admin.
func (h *FileHandler) ServeUpload(c *gin.Context) {
	user := middleware.CurrentUser(c)
	filename := c.Param("filename")

	reader, err := h.appService.OpenResume(c.Request.Context(), user, filename)
	if err != nil {
		h.RedirectError(c, err, "/")
		return
	}
	defer reader.Close()

	c.Header("Content-Type", "application/pdf")
	c.Header("Content-Disposition", `inline; filename="`+filename+`"`)
	c.Status(http.StatusOK)
	_, _ = io.Copy(c.Writer, reader)
}
