package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tutorhub/tutorhub-api/internal/service"
	appErrors "github.com/tutorhub/tutorhub-api/pkg/errors"
	"github.com/tutorhub/tutorhub-api/pkg/response"
)

// AdminHandler exposes the admin dashboard endpoints.
type AdminHandler struct {
	users    *service.UserService
	sessions *service.SessionService
}

// NewAdminHandler constructs AdminHandler.
func NewAdminHandler(users *service.UserService, sessions *service.SessionService) *AdminHandler {
	return &AdminHandler{users: users, sessions: sessions}
}

// ListUsers godoc
// @Summary List all accounts
// @Tags Admin
// @Produce json
// @Success 200 {array} models.User
// @Router /admin/students [get]
func (h *AdminHandler) ListUsers(c *gin.Context) {
	users, err := h.users.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, users)
}

// UpdateUserRole godoc
// @Summary Change an account's role
// @Tags Admin
// @Accept json
// @Produce json
// @Param id path string true "User ID"
// @Param payload body service.UpdateRoleRequest true "Role payload"
// @Success 200 {object} models.User
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /admin/users/{id}/role [put]
func (h *AdminHandler) UpdateUserRole(c *gin.Context) {
	var req service.UpdateRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "Invalid role. Must be 'student' or 'admin'"))
		return
	}
	user, err := h.users.UpdateRole(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, user)
}

// Stats godoc
// @Summary Platform-wide dashboard counters
// @Tags Admin
// @Produce json
// @Success 200 {object} models.AdminStats
// @Router /admin/stats [get]
func (h *AdminHandler) Stats(c *gin.Context) {
	stats, err := h.users.AdminStats(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, stats)
}

// ListSessions godoc
// @Summary List every tutoring session
// @Tags Admin
// @Produce json
// @Success 200 {array} models.TutoringSessionDetail
// @Router /admin/sessions [get]
func (h *AdminHandler) ListSessions(c *gin.Context) {
	sessions, err := h.sessions.ListAll(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, sessions)
}
