package apperrors

import (
	"jobportal_backend/internal/logger"

	"github.com/gin-gonic/gin"
)

// ErrorResponse is the JSON error envelope.
type ErrorResponse struct {
	Error *AppError `json:"error"`
}

// AsAppError converts err to *AppError when possible.
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// Normalize returns err as an *AppError, wrapping unknown errors as internal.
func Normalize(err error) *AppError {
	if appErr, ok := AsAppError(err); ok {
		return appErr
	}
	return InternalError(err)
}

// HandleError writes err as a JSON error response. Used on data routes;
// form routes answer with a redirect instead (see handlers.BaseHandler).
func HandleError(c *gin.Context, err error) {
	appErr := Normalize(err)
	if appErr.HTTPCode >= 500 {
		logger.CtxWithError(c.Request.Context(), "server error", appErr)
	}
	c.JSON(appErr.HTTPCode, ErrorResponse{Error: appErr})
}

// Severity maps an error to a flash severity tag.
func Severity(err error) string {
	appErr := Normalize(err)
	switch {
	case appErr.HTTPCode >= 500:
		return "error"
	case appErr.Code == CodeConflict:
		return "warning"
	case appErr.HTTPCode >= 400:
		return "error"
	default:
		return "info"
	}
}
