package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Melodious-nub/bnp-digital-backend/internal/domains/candidate"
	"github.com/Melodious-nub/bnp-digital-backend/internal/domains/media"
	"github.com/Melodious-nub/bnp-digital-backend/internal/domains/media/service"
	"github.com/Melodious-nub/bnp-digital-backend/internal/shared/response"
)

type MediaHandler struct {
	service service.ServiceInterface
}

func NewMediaHandler(svc service.ServiceInterface) *MediaHandler {
	return &MediaHandler{
		service: svc,
	}
}

// UploadOwn - POST /v1/gallery (authenticated candidate, multipart "files" + "type")
func (h *MediaHandler) UploadOwn(c *gin.Context) {
	form, err := c.MultipartForm()
	if err != nil {
		response.BadRequest(c, "invalid multipart form")
		return
	}

	err = h.service.UploadOwn(c.Request.Context(), c.GetInt64("userID"),
		c.PostForm("type"), form.File["files"])
	if err != nil {
		h.renderUploadError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "gallery updated"})
}

// UploadForSlug - POST /v1/admin/gallery (super admin, fields "candidateSlug", "type")
func (h *MediaHandler) UploadForSlug(c *gin.Context) {
	form, err := c.MultipartForm()
	if err != nil {
		response.BadRequest(c, "invalid multipart form")
		return
	}

	slug := c.PostForm("candidateSlug")
	if slug == "" {
		response.BadRequest(c, "candidateSlug is required")
		return
	}

	err = h.service.UploadForSlug(c.Request.Context(), slug, c.PostForm("type"), form.File["files"])
	if err != nil {
		h.renderUploadError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "gallery updated"})
}

// DeleteOwn - DELETE /v1/gallery/:id (authenticated candidate)
func (h *MediaHandler) DeleteOwn(c *gin.Context) {
	itemID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "invalid item id")
		return
	}

	err = h.service.DeleteOwn(c.Request.Context(), c.GetInt64("userID"), itemID)
	if err != nil {
		switch {
		case errors.Is(err, media.ErrItemNotFound), errors.Is(err, candidate.ErrCandidateNotFound):
			response.NotFound(c, err.Error())
		default:
			response.InternalServerError(c, "failed to delete gallery item")
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "gallery item deleted"})
}

func (h *MediaHandler) renderUploadError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, media.ErrNoFiles), errors.Is(err, media.ErrInvalidFileType):
		response.BadRequest(c, err.Error())
	case errors.Is(err, candidate.ErrCandidateNotFound):
		response.NotFound(c, err.Error())
	default:
		response.InternalServerError(c, "failed to upload gallery files")
	}
}
