package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Melodious-nub/bnp-digital-backend/internal/domains/account"
	"github.com/Melodious-nub/bnp-digital-backend/internal/domains/account/model"
	"github.com/Melodious-nub/bnp-digital-backend/internal/domains/account/service"
	"github.com/Melodious-nub/bnp-digital-backend/internal/shared/response"
)

type AuthHandler struct {
	service service.ServiceInterface
}

func NewAuthHandler(svc service.ServiceInterface) *AuthHandler {
	return &AuthHandler{
		service: svc,
	}
}

// Login - POST /v1/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req model.LoginRequest
	if err := c.BindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		response.ValidationError(c, err)
		return
	}

	resp, err := h.service.Login(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, account.ErrInvalidCredentials) {
			response.Unauthorized(c, err.Error())
			return
		}
		response.InternalServerError(c, "login failed")
		return
	}

	response.Success(c, http.StatusOK, resp)
}

// ChangePassword - POST /v1/auth/change-password (authenticated)
func (h *AuthHandler) ChangePassword(c *gin.Context) {
	userID := c.GetInt64("userID")

	var req model.ChangePasswordRequest
	if err := c.BindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		response.ValidationError(c, err)
		return
	}

	err := h.service.ChangePassword(c.Request.Context(), userID, &req)
	if err != nil {
		switch {
		case errors.Is(err, account.ErrWrongPassword):
			response.BadRequest(c, err.Error())
		case errors.Is(err, account.ErrUserNotFound):
			response.NotFound(c, err.Error())
		default:
			response.InternalServerError(c, "failed to change password")
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "password changed"})
}

// Me - GET /v1/auth/me (authenticated)
func (h *AuthHandler) Me(c *gin.Context) {
	userID := c.GetInt64("userID")

	profile, err := h.service.GetProfile(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, account.ErrUserNotFound) {
			response.NotFound(c, err.Error())
			return
		}
		response.InternalServerError(c, "failed to load profile")
		return
	}

	response.Success(c, http.StatusOK, profile)
}
