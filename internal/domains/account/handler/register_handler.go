package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Melodious-nub/bnp-digital-backend/internal/domains/account"
	"github.com/Melodious-nub/bnp-digital-backend/internal/domains/account/model"
	"github.com/Melodious-nub/bnp-digital-backend/internal/domains/account/service"
	"github.com/Melodious-nub/bnp-digital-backend/internal/domains/candidate"
	"github.com/Melodious-nub/bnp-digital-backend/internal/domains/location"
	"github.com/Melodious-nub/bnp-digital-backend/internal/shared/response"
)

type RegisterHandler struct {
	service service.RegistrationServiceInterface
}

func NewRegisterHandler(svc service.RegistrationServiceInterface) *RegisterHandler {
	return &RegisterHandler{
		service: svc,
	}
}

// Register - POST /v1/auth/register
func (h *RegisterHandler) Register(c *gin.Context) {
	var req model.RegisterRequest
	if err := c.BindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		response.ValidationError(c, err)
		return
	}

	resp, err := h.service.Register(c.Request.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, location.ErrDivisionNotFound),
			errors.Is(err, location.ErrDistrictNotFound):
			response.BadRequest(c, err.Error())
		case errors.Is(err, candidate.ErrDuplicateSeat),
			errors.Is(err, account.ErrDuplicateUsername):
			response.Conflict(c, err.Error())
		default:
			response.InternalServerError(c, "registration failed")
		}
		return
	}

	response.Success(c, http.StatusCreated, resp)
}
