package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"iconsherald/internal/services"
	"iconsherald/internal/services/dto"
)

type NominationHandler struct {
	*BaseHandler
	nominationService services.NominationService
}

func NewNominationHandler(base *BaseHandler, nominationService services.NominationService) *NominationHandler {
	return &NominationHandler{
		BaseHandler:       base,
		nominationService: nominationService,
	}
}

// Submit is the public intake endpoint. It always answers 201 on accepted
// input; the honeypot path is indistinguishable from a real save.
func (h *NominationHandler) Submit(c *gin.Context) {
	var req dto.SubmitNominationRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	resp, err := h.nominationService.Submit(&req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *NominationHandler) List(c *gin.Context) {
	var req dto.NominationListRequest
	if !h.BindAndValidate_Query(c, &req) {
		return
	}

	resp, err := h.nominationService.ListNominations(&req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *NominationHandler) Get(c *gin.Context) {
	resp, err := h.nominationService.GetNomination(c.Param("nominationId"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *NominationHandler) Approve(c *gin.Context) {
	reviewerID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.ApproveNominationRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	resp, err := h.nominationService.Approve(reviewerID, c.Param("nominationId"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *NominationHandler) Reject(c *gin.Context) {
	reviewerID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.RejectNominationRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	resp, err := h.nominationService.Reject(reviewerID, c.Param("nominationId"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *NominationHandler) Flag(c *gin.Context) {
	reviewerID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.FlagNominationRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	resp, err := h.nominationService.Flag(reviewerID, c.Param("nominationId"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *NominationHandler) Bulk(c *gin.Context) {
	reviewerID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.BulkNominationRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	resp, err := h.nominationService.Bulk(reviewerID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
