package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Melodious-nub/bnp-digital-backend/internal/domains/candidate"
	"github.com/Melodious-nub/bnp-digital-backend/internal/domains/contact"
	"github.com/Melodious-nub/bnp-digital-backend/internal/domains/contact/model"
	"github.com/Melodious-nub/bnp-digital-backend/internal/domains/contact/service"
	"github.com/Melodious-nub/bnp-digital-backend/internal/shared/response"
)

type ContactHandler struct {
	service service.ServiceInterface
}

func NewContactHandler(svc service.ServiceInterface) *ContactHandler {
	return &ContactHandler{
		service: svc,
	}
}

// Submit - POST /v1/contact (public)
func (h *ContactHandler) Submit(c *gin.Context) {
	var req model.SubmitRequest
	if err := c.BindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		response.ValidationError(c, err)
		return
	}

	if err := h.service.Submit(c.Request.Context(), &req); err != nil {
		response.InternalServerError(c, "failed to submit message")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "message sent successfully"})
}

// ListAll - GET /v1/admin/messages?status=unread&slug=dhaka5 (super admin)
func (h *ContactHandler) ListAll(c *gin.Context) {
	messages, err := h.service.ListAll(c.Request.Context(), model.ListFilter{
		Status: c.Query("status"),
		Slug:   c.Query("slug"),
	})
	if err != nil {
		response.InternalServerError(c, "failed to list messages")
		return
	}
	response.Success(c, http.StatusOK, messages)
}

// ListMine - GET /v1/messages?status=unread (authenticated candidate)
func (h *ContactHandler) ListMine(c *gin.Context) {
	messages, err := h.service.ListMine(c.Request.Context(), c.GetInt64("userID"), c.Query("status"))
	if err != nil {
		if errors.Is(err, candidate.ErrCandidateNotFound) {
			response.NotFound(c, err.Error())
			return
		}
		response.InternalServerError(c, "failed to list messages")
		return
	}
	response.Success(c, http.StatusOK, messages)
}

// MarkRead - PUT /v1/messages/:id/read (authenticated)
func (h *ContactHandler) MarkRead(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "invalid message id")
		return
	}

	if err := h.service.MarkRead(c.Request.Context(), id); err != nil {
		if errors.Is(err, contact.ErrMessageNotFound) {
			response.NotFound(c, err.Error())
			return
		}
		response.InternalServerError(c, "failed to mark message read")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "message marked as read"})
}
