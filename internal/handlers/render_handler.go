package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"iconsherald/internal/render"
	"iconsherald/internal/services"
)

// RenderHandler serves the public profile pages as HTML.
type RenderHandler struct {
	*BaseHandler
	profileService services.ProfileService
	renderer       *render.Renderer
}

func NewRenderHandler(base *BaseHandler, profileService services.ProfileService, renderer *render.Renderer) *RenderHandler {
	return &RenderHandler{
		BaseHandler:    base,
		profileService: profileService,
		renderer:       renderer,
	}
}

func (h *RenderHandler) ShowProfile(c *gin.Context) {
	profile, doc, err := h.profileService.GetPublishedBySlug(c.Param("slug"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	page, err := h.renderer.Render(profile, doc, c.Query("variant"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.Data(http.StatusOK, "text/html; charset=utf-8", page)
}
