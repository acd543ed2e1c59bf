// Package routes maps the HTTP surface onto the handlers. Three zones:
// public (intake, login, rendered profiles), member (builder, publish)
// and admin (review queue, users, audit).
package routes

import (
	"github.com/gin-gonic/gin"

	"iconsherald/internal/auth"
	"iconsherald/internal/handlers"
	"iconsherald/internal/middleware"
)

func RegisterRoutes(router *gin.Engine, h *handlers.AppHandlers, tokens *auth.TokenIssuer) {
	registerPublicRoutes(router, h)

	api := router.Group("/api/v1")

	// Public API surface.
	api.POST("/nominations", h.Nomination.Submit)
	api.POST("/auth/login", h.Auth.Login)
	api.POST("/payments/callback", h.Payment.Callback)

	// Authenticated surface.
	authed := api.Group("")
	authed.Use(middleware.AuthMiddleware(tokens))
	{
		authed.POST("/auth/change-password", h.Auth.ChangePassword)

		registerMemberRoutes(authed, h)
		registerAdminRoutes(authed, h)
	}
}

// registerMemberRoutes wires the profile builder. Any authenticated user
// may hit these; the services refuse users without an approved
// nomination.
func registerMemberRoutes(r *gin.RouterGroup, h *handlers.AppHandlers) {
	profile := r.Group("/profile")
	{
		profile.POST("", h.Profile.Start)
		profile.GET("", h.Profile.GetMine)
		profile.GET("/steps", h.Profile.Steps)
		profile.PUT("/content", h.Profile.SaveDraft)
		profile.PUT("/theme", h.Profile.UpdateTheme)
		profile.POST("/publish", h.Payment.Publish)
		profile.GET("/payments", h.Payment.ListMine)

		entries := profile.Group("/sections/:kind/entries")
		{
			entries.POST("", h.Profile.AddEntry)
			entries.PATCH("/:entryId", h.Profile.EditEntry)
			entries.DELETE("/:entryId", h.Profile.DeleteEntry)
			entries.PUT("/:entryId/position", h.Profile.ReorderEntry)
			entries.PUT("/:entryId/visibility", h.Profile.ToggleEntry)
		}
	}
}
