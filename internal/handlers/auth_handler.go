package handlers

import (
	"net/http"

	"jobportal_backend/internal/auth"
	"jobportal_backend/internal/services"
	"jobportal_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	*BaseHandler
	authService *services.AuthService
}

func NewAuthHandler(base *BaseHandler, authService *services.AuthService) *AuthHandler {
	return &AuthHandler{BaseHandler: base, authService: authService}
}

// ShowRegister handles GET /register.
func (h *AuthHandler) ShowRegister(c *gin.Context) {
	h.View(c, http.StatusOK, gin.H{
		"form":   gin.H{"fields": []string{"username", "email", "password", "is_employer", "company"}},
		"action": "/register",
	})
}

// Register handles POST /register.
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if !h.BindAndValidate(c, &req, "/register") {
		return
	}

	if _, err := h.authService.Register(&req); err != nil {
		h.RedirectError(c, err, "/register")
		return
	}

	h.RedirectWithFlash(c, "/login", "Registered successfully", "success")
}

// ShowLogin handles GET /login.
func (h *AuthHandler) ShowLogin(c *gin.Context) {
	h.View(c, http.StatusOK, gin.H{
		"form":   gin.H{"fields": []string{"email", "password"}},
		"action": "/login",
	})
}

// Login handles POST /login. The landing page depends on the role.
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !h.BindAndValidate(c, &req, "/login") {
		return
	}

	user, token, err := h.authService.Authenticate(&req)
	if err != nil {
		h.RedirectError(c, err, "/login")
		return
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(auth.SessionCookie, token, h.authService.SessionTTL(), "/", "", false, true)

	switch {
	case user.IsAdmin:
		c.Redirect(http.StatusSeeOther, "/admin_dashboard")
	case user.IsEmployer && user.IsApproved:
		c.Redirect(http.StatusSeeOther, "/post-job")
	case user.IsEmployer:
		h.RedirectWithFlash(c, "/", "Your employer account is not approved yet", "info")
	default:
		h.RedirectWithFlash(c, "/", "Logged in successfully", "success")
	}
}

// Logout handles GET /logout.
func (h *AuthHandler) Logout(c *gin.Context) {
	c.SetCookie(auth.SessionCookie, "", -1, "/", "", false, true)
	h.RedirectWithFlash(c, "/", "Logged out successfully", "info")
}
