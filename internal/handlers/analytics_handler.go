package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"iconsherald/internal/services"
	"iconsherald/internal/services/dto"
)

// AnalyticsHandler serves the super-admin audit log and system settings.
type AnalyticsHandler struct {
	*BaseHandler
	analyticsService services.AnalyticsService
}

func NewAnalyticsHandler(base *BaseHandler, analyticsService services.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{
		BaseHandler:      base,
		analyticsService: analyticsService,
	}
}

func (h *AnalyticsHandler) ListEvents(c *gin.Context) {
	var req dto.AuditListRequest
	if !h.BindAndValidate_Query(c, &req) {
		return
	}

	resp, err := h.analyticsService.ListEvents(&req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *AnalyticsHandler) ListSettings(c *gin.Context) {
	resp, err := h.analyticsService.ListSettings()
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"settings": resp})
}

func (h *AnalyticsHandler) UpdateSetting(c *gin.Context) {
	var req dto.UpdateSettingRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	if err := h.analyticsService.UpdateSetting(&req); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Setting saved"})
}
