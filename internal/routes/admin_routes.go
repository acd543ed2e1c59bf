package routes

import (
	"github.com/gin-gonic/gin"

	"iconsherald/internal/handlers"
	"iconsherald/internal/middleware"
)

// registerAdminRoutes wires the review queue and user management. The
// super-admin-only surface (roles, impersonation, audit, settings) sits
// behind its own gate.
func registerAdminRoutes(r *gin.RouterGroup, h *handlers.AppHandlers) {
	admin := r.Group("/admin")
	admin.Use(middleware.RequireAdmin())
	{
		nominations := admin.Group("/nominations")
		{
			nominations.GET("", h.Nomination.List)
			nominations.GET("/:nominationId", h.Nomination.Get)
			nominations.POST("/:nominationId/approve", h.Nomination.Approve)
			nominations.POST("/:nominationId/reject", h.Nomination.Reject)
			nominations.POST("/:nominationId/flag", h.Nomination.Flag)
			nominations.POST("/bulk", h.Nomination.Bulk)
		}

		admin.GET("/profiles", h.Profile.ListProfiles)
		admin.GET("/payments/:paymentId", h.Payment.Get)

		users := admin.Group("/users")
		{
			users.GET("", h.User.List)
			users.GET("/:userId", h.User.Get)
			users.PUT("/:userId/status", h.User.UpdateStatus)
		}
	}

	super := r.Group("/admin")
	super.Use(middleware.RequireSuperAdmin())
	{
		super.PUT("/users/:userId/role", h.User.UpdateRole)
		super.POST("/users/:userId/impersonate", h.User.Impersonate)
		super.GET("/audit", h.Analytics.ListEvents)
		super.GET("/settings", h.Analytics.ListSettings)
		super.PUT("/settings", h.Analytics.UpdateSetting)
	}
}
