package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Gabriel-Dorassi/tvtec-portal/internal/models"
	"github.com/Gabriel-Dorassi/tvtec-portal/internal/service"
	appErrors "github.com/Gabriel-Dorassi/tvtec-portal/pkg/errors"
	"github.com/Gabriel-Dorassi/tvtec-portal/pkg/response"
)

// AuthHandler exposes session lifecycle endpoints.
type AuthHandler struct {
	auth *service.AuthService
}

// NewAuthHandler constructs AuthHandler.
func NewAuthHandler(auth *service.AuthService) *AuthHandler {
	return &AuthHandler{auth: auth}
}

// Login godoc
// @Summary Authenticate and establish a session
// @Tags Auth
// @Accept json
// @Produce json
// @Param payload body models.LoginRequest true "Credentials"
// @Success 200 {object} response.Envelope
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	info, err := h.auth.Login(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, info)
}

// Logout godoc
// @Summary Clear the current session
// @Tags Auth
// @Success 204
// @Router /auth/session [delete]
func (h *AuthHandler) Logout(c *gin.Context) {
	h.auth.Logout(c.Request.Context())
	response.NoContent(c)
}

// Session godoc
// @Summary Current session status and claims
// @Tags Auth
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /auth/session [get]
func (h *AuthHandler) Session(c *gin.Context) {
	response.JSON(c, http.StatusOK, h.auth.Info(c.Request.Context()))
}

// Validate godoc
// @Summary Validate the stored token against the backend
// @Tags Auth
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /auth/validate [get]
func (h *AuthHandler) Validate(c *gin.Context) {
	if err := h.auth.RemoteValidate(c.Request.Context()); err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, gin.H{"valid": true})
}
