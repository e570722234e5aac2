package handlers

import (
	"net/http"

	"jobportal_backend/internal/flash"
	"jobportal_backend/internal/logger"
	"jobportal_backend/internal/validator"
	"jobportal_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

// AppHandlers bundles every handler for route registration.
type AppHandlers struct {
	AuthHandler        *AuthHandler
	JobHandler         *JobHandler
	ApplicationHandler *ApplicationHandler
	AdminHandler       *AdminHandler
	FileHandler        *FileHandler
}

type BaseHandler struct {
	validator *validator.Validator
}

func NewBaseHandler(v *validator.Validator) *BaseHandler {
	return &BaseHandler{validator: v}
}

// BindAndValidate binds the request (form, multipart or JSON by content
// type) and runs struct validation. On failure it answers with a redirect
// back to fallback carrying the validation message, and returns false.
func (h *BaseHandler) BindAndValidate(c *gin.Context, obj interface{}, fallback string) bool {
	ctx := c.Request.Context()

	if err := c.ShouldBind(obj); err != nil {
		logger.CtxWithError(ctx, "failed to bind request", err, "path", c.Request.URL.Path)
		h.RedirectWithFlash(c, fallback, "Invalid request: "+err.Error(), "error")
		return false
	}

	if err := h.validator.Validate(obj); err != nil {
		if vErr, ok := err.(*validator.ValidationError); ok {
			logger.CtxWarn(ctx, "validation failed", "errors", vErr.Errors, "path", c.Request.URL.Path)
			h.RedirectWithFlash(c, fallback, vErr.Error(), "error")
		} else {
			logger.CtxWithError(ctx, "internal validator error", err, "path", c.Request.URL.Path)
			h.RedirectError(c, apperrors.InternalError(err), fallback)
		}
		return false
	}
	return true
}

// RedirectWithFlash queues a flash message and redirects.
func (h *BaseHandler) RedirectWithFlash(c *gin.Context, location, message, level string) {
	flash.Set(c, message, level)
	c.Redirect(http.StatusSeeOther, location)
}

// RedirectError converts err at the handler boundary into a redirect to
// fallback carrying the error message and severity. This is the form-route
// counterpart of apperrors.HandleError.
func (h *BaseHandler) RedirectError(c *gin.Context, err error, fallback string) {
	appErr := apperrors.Normalize(err)
	if appErr.HTTPCode >= 500 {
		logger.CtxWithError(c.Request.Context(), "server error", appErr, "path", c.Request.URL.Path)
	}
	h.RedirectWithFlash(c, fallback, appErr.Message, apperrors.Severity(appErr))
}

// View writes a JSON view model, attaching any pending flash message.
// Rendering proper is an external collaborator; these payloads are what a
// template layer would consume.
func (h *BaseHandler) View(c *gin.Context, status int, payload gin.H) {
	if msg := flash.Take(c); msg != nil {
		payload["flash"] = msg
	}
	c.JSON(status, payload)
}
