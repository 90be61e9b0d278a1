package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"library-backend/internal/domains/auth"
	"library-backend/internal/shared/middleware"
	"library-backend/internal/shared/response"
)

type AuthHandler struct {
	service auth.Service
}

func NewAuthHandler(svc auth.Service) *AuthHandler {
	return &AuthHandler{
		service: svc,
	}
}

// POST /auth/signin
func (h *AuthHandler) SignIn(c *gin.Context) {
	creds, err := response.Bind[auth.AccountCredentialsDTO](c)
	if err != nil {
		response.FromError(c, err)
		return
	}

	token, err := h.service.SignIn(c.Request.Context(), creds)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Render(c, http.StatusOK, token)
}

// PUT /auth/refresh/:username with the refresh token as bearer.
func (h *AuthHandler) Refresh(c *gin.Context) {
	refreshToken, ok := middleware.BearerToken(c)
	if !ok {
		response.FromError(c, auth.ErrInvalidClient)
		return
	}

	token, err := h.service.Refresh(c.Request.Context(), c.Param("username"), refreshToken)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Render(c, http.StatusOK, token)
}
