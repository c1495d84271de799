package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Melodious-nub/bnp-digital-backend/internal/domains/candidate"
	"github.com/Melodious-nub/bnp-digital-backend/internal/domains/candidate/model"
	"github.com/Melodious-nub/bnp-digital-backend/internal/domains/candidate/service"
	"github.com/Melodious-nub/bnp-digital-backend/internal/shared/response"
)

type CandidateHandler struct {
	service service.ServiceInterface
}

func NewCandidateHandler(svc service.ServiceInterface) *CandidateHandler {
	return &CandidateHandler{
		service: svc,
	}
}

// ListAll - GET /v1/admin/candidates (super admin)
func (h *CandidateHandler) ListAll(c *gin.Context) {
	candidates, err := h.service.ListAll(c.Request.Context())
	if err != nil {
		response.InternalServerError(c, "failed to list candidates")
		return
	}

	response.Success(c, http.StatusOK, candidates)
}

// ListByDistrict - GET /v1/candidates?districtName=Dhaka
// districtName matches either the English or the Bengali name.
func (h *CandidateHandler) ListByDistrict(c *gin.Context) {
	districtName := c.Query("districtName")
	if districtName == "" {
		response.BadRequest(c, "districtName query parameter is required")
		return
	}

	candidates, err := h.service.ListByDistrict(c.Request.Context(), districtName)
	if err != nil {
		response.InternalServerError(c, "failed to list candidates")
		return
	}

	response.Success(c, http.StatusOK, candidates)
}

// GetProfile - GET /v1/candidates/:slug
func (h *CandidateHandler) GetProfile(c *gin.Context) {
	profile, err := h.service.GetProfile(c.Request.Context(), c.Param("slug"))
	if err != nil {
		if errors.Is(err, candidate.ErrCandidateNotFound) {
			response.NotFound(c, err.Error())
			return
		}
		response.InternalServerError(c, "failed to load profile")
		return
	}

	response.Success(c, http.StatusOK, profile)
}

// Update - PATCH /v1/candidates/:slug (super admin)
func (h *CandidateHandler) Update(c *gin.Context) {
	var patch model.ProfilePatch
	if err := c.BindJSON(&patch); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	err := h.service.Update(c.Request.Context(), c.Param("slug"), &patch)
	if err != nil {
		switch {
		case errors.Is(err, candidate.ErrNoFieldsToUpdate):
			response.BadRequest(c, err.Error())
		case errors.Is(err, candidate.ErrCandidateNotFound):
			response.NotFound(c, err.Error())
		case errors.Is(err, candidate.ErrDuplicateSeat):
			response.Conflict(c, err.Error())
		default:
			response.InternalServerError(c, "failed to update candidate")
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "candidate updated"})
}

// UpdateOwn - PUT /v1/auth/profile (authenticated candidate)
func (h *CandidateHandler) UpdateOwn(c *gin.Context) {
	var patch model.ProfilePatch
	if err := c.BindJSON(&patch); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	err := h.service.UpdateOwn(c.Request.Context(), c.GetInt64("userID"), &patch)
	if err != nil {
		switch {
		case errors.Is(err, candidate.ErrNoFieldsToUpdate):
			response.BadRequest(c, err.Error())
		case errors.Is(err, candidate.ErrCandidateNotFound):
			response.NotFound(c, err.Error())
		default:
			response.InternalServerError(c, "failed to update profile")
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "profile updated"})
}

// UpdatePhoto - PUT /v1/candidates/:slug/photo (super admin, multipart field "file")
func (h *CandidateHandler) UpdatePhoto(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		response.BadRequest(c, "no file uploaded")
		return
	}

	url, err := h.service.UpdatePhoto(c.Request.Context(), c.Param("slug"), file)
	if err != nil {
		if errors.Is(err, candidate.ErrCandidateNotFound) {
			response.NotFound(c, err.Error())
			return
		}
		response.InternalServerError(c, "failed to update photo")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"photoUrl": url})
}
