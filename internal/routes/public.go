package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"iconsherald/internal/handlers"
)

// registerPublicRoutes wires the HTML surface and the health probe.
func registerPublicRoutes(router *gin.Engine, h *handlers.AppHandlers) {
	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Published profile pages, addressed by slug.
	router.GET("/icons/:slug", h.Render.ShowProfile)
}
