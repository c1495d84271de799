package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Melodious-nub/bnp-digital-backend/internal/domains/candidate"
	"github.com/Melodious-nub/bnp-digital-backend/internal/domains/team"
	"github.com/Melodious-nub/bnp-digital-backend/internal/domains/team/model"
	"github.com/Melodious-nub/bnp-digital-backend/internal/domains/team/service"
	"github.com/Melodious-nub/bnp-digital-backend/internal/shared/response"
)

type TeamHandler struct {
	service service.ServiceInterface
}

func NewTeamHandler(svc service.ServiceInterface) *TeamHandler {
	return &TeamHandler{
		service: svc,
	}
}

// GetGlobalTeam - GET /v1/team (public)
func (h *TeamHandler) GetGlobalTeam(c *gin.Context) {
	members, err := h.service.GetGlobalTeam(c.Request.Context())
	if err != nil {
		response.InternalServerError(c, "failed to load team")
		return
	}
	response.Success(c, http.StatusOK, members)
}

// GetTeamBySlug - GET /v1/candidates/:slug/team (public)
func (h *TeamHandler) GetTeamBySlug(c *gin.Context) {
	members, err := h.service.GetTeamBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		if errors.Is(err, candidate.ErrCandidateNotFound) {
			response.NotFound(c, err.Error())
			return
		}
		response.InternalServerError(c, "failed to load team")
		return
	}
	response.Success(c, http.StatusOK, members)
}

// GetOwnTeam - GET /v1/team/manage (authenticated)
func (h *TeamHandler) GetOwnTeam(c *gin.Context) {
	members, err := h.service.GetOwnTeam(c.Request.Context(), c.GetInt64("userID"), c.GetString("role"))
	if err != nil {
		if errors.Is(err, candidate.ErrCandidateNotFound) {
			response.NotFound(c, err.Error())
			return
		}
		response.InternalServerError(c, "failed to load team")
		return
	}
	response.Success(c, http.StatusOK, members)
}

// AddMember - POST /v1/team/manage (authenticated, multipart with optional "photo")
func (h *TeamHandler) AddMember(c *gin.Context) {
	var req model.MemberRequest
	if err := c.ShouldBind(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		response.ValidationError(c, err)
		return
	}

	photo, _ := c.FormFile("photo")

	memberID, err := h.service.AddMember(c.Request.Context(), c.GetInt64("userID"), c.GetString("role"), &req, photo)
	if err != nil {
		if errors.Is(err, candidate.ErrCandidateNotFound) {
			response.NotFound(c, err.Error())
			return
		}
		response.InternalServerError(c, "failed to add team member")
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"memberId": memberID})
}

// UpdateMember - PUT /v1/team/manage/:id (authenticated)
func (h *TeamHandler) UpdateMember(c *gin.Context) {
	memberID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "invalid member id")
		return
	}

	var req model.MemberRequest
	if err := c.ShouldBind(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		response.ValidationError(c, err)
		return
	}

	photo, _ := c.FormFile("photo")

	err = h.service.UpdateMember(c.Request.Context(), c.GetInt64("userID"), c.GetString("role"), memberID, &req, photo)
	if err != nil {
		switch {
		case errors.Is(err, team.ErrMemberNotFound), errors.Is(err, candidate.ErrCandidateNotFound):
			response.NotFound(c, err.Error())
		default:
			response.InternalServerError(c, "failed to update team member")
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "team member updated"})
}

// DeleteMember - DELETE /v1/team/manage/:id (authenticated)
func (h *TeamHandler) DeleteMember(c *gin.Context) {
	memberID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "invalid member id")
		return
	}

	err = h.service.DeleteMember(c.Request.Context(), c.GetInt64("userID"), c.GetString("role"), memberID)
	if err != nil {
		switch {
		case errors.Is(err, team.ErrMemberNotFound), errors.Is(err, candidate.ErrCandidateNotFound):
			response.NotFound(c, err.Error())
		default:
			response.InternalServerError(c, "failed to delete team member")
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "team member deleted"})
}
