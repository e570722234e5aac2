package middleware

import (
	"net/http"

	"jobportal_backend/internal/auth"
	"jobportal_backend/internal/flash"
	"jobportal_backend/internal/logger"
	"jobportal_backend/internal/models"
	"jobportal_backend/pkg/contextkeys"

	"github.com/gin-gonic/gin"
)

// PrincipalResolver maps a session token to the backing user, or nil.
// Satisfied by services.AuthService.
type PrincipalResolver interface {
	CurrentPrincipal(token string) *models.User
}

// SessionMiddleware resolves the session cookie into the current user and
// stores it in the gin context. Anonymous requests pass through with no user
// set; the role guards below decide what that means per route.
func SessionMiddleware(resolver PrincipalResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(auth.SessionCookie)
		if err == nil && token != "" {
			if user := resolver.CurrentPrincipal(token); user != nil {
				c.Set(string(contextkeys.CurrentUserKey), user)
				ctx := logger.WithUserID(c.Request.Context(), user.ID)
				c.Request = c.Request.WithContext(ctx)
			}
		}
		c.Next()
	}
}

// CurrentUser returns the session user, or nil for anonymous requests.
func CurrentUser(c *gin.Context) *models.User {
	val, ok := c.Get(string(contextkeys.CurrentUserKey))
	if !ok {
		return nil
	}
	user, ok := val.(*models.User)
	if !ok {
		return nil
	}
	return user
}

// RequireAuth redirects anonymous requests to the login page.
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if CurrentUser(c) == nil {
			flash.Set(c, "Please log in to continue", "warning")
			c.Redirect(http.StatusSeeOther, "/login")
			c.Abort()
			return
		}
		c.Next()
	}
}

// RequireApprovedEmployer gates routes reserved for approved employers.
func RequireApprovedEmployer() gin.HandlerFunc {
	return func(c *gin.Context) {
		user := CurrentUser(c)
		if user == nil {
			flash.Set(c, "Please log in to continue", "warning")
			c.Redirect(http.StatusSeeOther, "/login")
			c.Abort()
			return
		}
		if !user.IsEmployer {
			flash.Set(c, "Only employers can access this page", "error")
			c.Redirect(http.StatusSeeOther, "/")
			c.Abort()
			return
		}
		if !user.IsApproved {
			flash.Set(c, "Your employer account is not approved yet", "error")
			c.Redirect(http.StatusSeeOther, "/")
			c.Abort()
			return
		}
		c.Next()
	}
}

// RequireAdmin gates administrator routes.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		user := CurrentUser(c)
		if user == nil || !user.IsAdmin {
			flash.Set(c, "Admin access required", "error")
			c.Redirect(http.StatusSeeOther, "/login")
			c.Abort()
			return
		}
		c.Next()
	}
}
