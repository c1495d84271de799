package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Melodious-nub/bnp-digital-backend/internal/domains/location/service"
	"github.com/Melodious-nub/bnp-digital-backend/internal/shared/response"
)

type LocationHandler struct {
	service service.ServiceInterface
}

func NewLocationHandler(svc service.ServiceInterface) *LocationHandler {
	return &LocationHandler{
		service: svc,
	}
}

// GetDivisions - GET /v1/locations/divisions
func (h *LocationHandler) GetDivisions(c *gin.Context) {
	divisions, err := h.service.GetDivisions(c.Request.Context())
	if err != nil {
		response.InternalServerError(c, "failed to load divisions")
		return
	}

	response.Success(c, http.StatusOK, divisions)
}

// GetDistricts - GET /v1/locations/districts?division_id=1
func (h *LocationHandler) GetDistricts(c *gin.Context) {
	var divisionID int64
	if raw := c.Query("division_id"); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || parsed <= 0 {
			response.BadRequest(c, "division_id must be a positive integer")
			return
		}
		divisionID = parsed
	}

	districts, err := h.service.GetDistricts(c.Request.Context(), divisionID)
	if err != nil {
		response.InternalServerError(c, "failed to load districts")
		return
	}

	response.Success(c, http.StatusOK, districts)
}
