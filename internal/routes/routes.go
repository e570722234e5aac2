package routes

import (
	"jobportal_backend/internal/handlers"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes wires every HTTP route. Note the asymmetry: the application
// status route lives under /admin, the job status route does not.
func RegisterRoutes(router *gin.Engine, h *handlers.AppHandlers) {
	registerPublicRoutes(router, h)
	registerSeekerRoutes(router, h)
	registerEmployerRoutes(router, h)
	registerAdminRoutes(router, h)
}
