package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tutorhub/tutorhub-api/internal/service"
	appErrors "github.com/tutorhub/tutorhub-api/pkg/errors"
	"github.com/tutorhub/tutorhub-api/pkg/response"
)

// FeedbackHandler exposes student feedback endpoints.
type FeedbackHandler struct {
	feedback *service.FeedbackService
}

// NewFeedbackHandler constructs FeedbackHandler.
func NewFeedbackHandler(feedback *service.FeedbackService) *FeedbackHandler {
	return &FeedbackHandler{feedback: feedback}
}

// List godoc
// @Summary List feedback visible to the caller
// @Tags Feedback
// @Produce json
// @Success 200 {array} models.FeedbackDetail
// @Router /feedback [get]
func (h *FeedbackHandler) List(c *gin.Context) {
	rows, err := h.feedback.List(c.Request.Context(), actorFrom(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, rows)
}

// Get godoc
// @Summary Get a feedback entry
// @Tags Feedback
// @Produce json
// @Param id path string true "Feedback ID"
// @Success 200 {object} models.Feedback
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /feedback/{id} [get]
func (h *FeedbackHandler) Get(c *gin.Context) {
	row, err := h.feedback.Get(c.Request.Context(), c.Param("id"), actorFrom(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, row)
}

// Create godoc
// @Summary Submit feedback
// @Tags Feedback
// @Accept json
// @Produce json
// @Param payload body service.CreateFeedbackRequest true "Feedback payload"
// @Success 201 {object} models.Feedback
// @Router /feedback [post]
func (h *FeedbackHandler) Create(c *gin.Context) {
	var req service.CreateFeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "Failed to create feedback"))
		return
	}
	row, err := h.feedback.Create(c.Request.Context(), actorFrom(c), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, row)
}

// Update godoc
// @Summary Triage a feedback entry
// @Tags Feedback
// @Accept json
// @Produce json
// @Param id path string true "Feedback ID"
// @Param payload body service.UpdateFeedbackRequest true "Triage payload"
// @Success 200 {object} models.Feedback
// @Failure 404 {object} map[string]string
// @Router /feedback/{id} [put]
func (h *FeedbackHandler) Update(c *gin.Context) {
	var req service.UpdateFeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "Failed to update feedback"))
		return
	}
	row, err := h.feedback.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, row)
}

// Delete godoc
// @Summary Delete a feedback entry
// @Tags Feedback
// @Produce json
// @Param id path string true "Feedback ID"
// @Success 204
// @Router /feedback/{id} [delete]
func (h *FeedbackHandler) Delete(c *gin.Context) {
	if err := h.feedback.Delete(c.Request.Context(), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

// Stats godoc
// @Summary Summarise feedback by status
// @Tags Feedback
// @Produce json
// @Success 200 {object} models.FeedbackStats
// @Router /feedback/stats [get]
func (h *FeedbackHandler) Stats(c *gin.Context) {
	stats, err := h.feedback.Stats(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, stats)
}
