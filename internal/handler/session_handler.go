package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tutorhub/tutorhub-api/internal/service"
	appErrors "github.com/tutorhub/tutorhub-api/pkg/errors"
	"github.com/tutorhub/tutorhub-api/pkg/response"
)

// SessionHandler exposes tutoring session endpoints.
type SessionHandler struct {
	sessions *service.SessionService
}

// NewSessionHandler constructs SessionHandler.
func NewSessionHandler(sessions *service.SessionService) *SessionHandler {
	return &SessionHandler{sessions: sessions}
}

// List godoc
// @Summary List the caller's sessions
// @Tags Sessions
// @Produce json
// @Success 200 {array} models.TutoringSessionDetail
// @Router /sessions [get]
func (h *SessionHandler) List(c *gin.Context) {
	sessions, err := h.sessions.List(c.Request.Context(), actorFrom(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, sessions)
}

// Upcoming godoc
// @Summary List the caller's upcoming sessions
// @Tags Sessions
// @Produce json
// @Success 200 {array} models.TutoringSessionDetail
// @Router /sessions/upcoming [get]
func (h *SessionHandler) Upcoming(c *gin.Context) {
	sessions, err := h.sessions.Upcoming(c.Request.Context(), actorFrom(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, sessions)
}

// Stats godoc
// @Summary Summarise the caller's sessions
// @Tags Sessions
// @Produce json
// @Success 200 {object} models.StudentSessionStats
// @Router /sessions/stats [get]
func (h *SessionHandler) Stats(c *gin.Context) {
	stats, err := h.sessions.Stats(c.Request.Context(), actorFrom(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, stats)
}

// Create godoc
// @Summary Book a session
// @Tags Sessions
// @Accept json
// @Produce json
// @Param payload body service.CreateSessionRequest true "Session payload"
// @Success 201 {object} models.TutoringSession
// @Failure 400 {object} map[string]string
// @Router /sessions [post]
func (h *SessionHandler) Create(c *gin.Context) {
	var req service.CreateSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "Failed to create session"))
		return
	}
	session, err := h.sessions.Create(c.Request.Context(), actorFrom(c), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, session)
}

// Update godoc
// @Summary Update a session
// @Tags Sessions
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param payload body service.UpdateSessionRequest true "Session payload"
// @Success 200 {object} models.TutoringSession
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /sessions/{id} [put]
func (h *SessionHandler) Update(c *gin.Context) {
	var req service.UpdateSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "Failed to update session"))
		return
	}
	session, err := h.sessions.Update(c.Request.Context(), c.Param("id"), actorFrom(c), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, session)
}
