package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tutorhub/tutorhub-api/internal/middleware"
	"github.com/tutorhub/tutorhub-api/internal/models"
	"github.com/tutorhub/tutorhub-api/internal/service"
	"github.com/tutorhub/tutorhub-api/pkg/config"
	appErrors "github.com/tutorhub/tutorhub-api/pkg/errors"
	"github.com/tutorhub/tutorhub-api/pkg/response"
)

// AuthHandler exposes login, logout and current-user endpoints.
type AuthHandler struct {
	auth    *service.AuthService
	session config.SessionConfig
}

// NewAuthHandler constructs AuthHandler.
func NewAuthHandler(auth *service.AuthService, session config.SessionConfig) *AuthHandler {
	return &AuthHandler{auth: auth, session: session}
}

// Login godoc
// @Summary Log in with email and password
// @Tags Auth
// @Accept json
// @Produce json
// @Param payload body models.LoginRequest true "Credentials"
// @Success 200 {object} models.LoginResponse
// @Failure 401 {object} map[string]string
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "Email and password are required"))
		return
	}

	user, session, err := h.auth.Login(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(h.session.CookieName, session.Token, int(h.session.TTL.Seconds()), "/", "", h.session.CookieSecure, true)
	response.OK(c, models.LoginResponse{Success: true, User: user})
}

// Logout godoc
// @Summary Log out and destroy the session
// @Tags Auth
// @Produce json
// @Success 200 {object} map[string]bool
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	token, _ := c.Cookie(h.session.CookieName)
	if err := h.auth.Logout(c.Request.Context(), token); err != nil {
		response.Error(c, err)
		return
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(h.session.CookieName, "", -1, "/", "", h.session.CookieSecure, true)
	response.OK(c, gin.H{"success": true})
}

// CurrentUser godoc
// @Summary Return the authenticated account, or null when anonymous
// @Tags Auth
// @Produce json
// @Success 200 {object} models.User
// @Router /auth/user [get]
func (h *AuthHandler) CurrentUser(c *gin.Context) {
	idValue, exists := c.Get(middleware.ContextUserIDKey)
	if !exists {
		response.OK(c, nil)
		return
	}

	user, err := h.auth.UserByID(c.Request.Context(), idValue.(string))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, user)
}
