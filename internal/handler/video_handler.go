package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tutorhub/tutorhub-api/internal/service"
	appErrors "github.com/tutorhub/tutorhub-api/pkg/errors"
	"github.com/tutorhub/tutorhub-api/pkg/response"
)

// VideoHandler exposes lecture video endpoints.
type VideoHandler struct {
	videos *service.VideoService
}

// NewVideoHandler constructs VideoHandler.
func NewVideoHandler(videos *service.VideoService) *VideoHandler {
	return &VideoHandler{videos: videos}
}

// List godoc
// @Summary List lecture videos
// @Tags Videos
// @Produce json
// @Success 200 {array} models.LectureVideoDetail
// @Router /videos [get]
func (h *VideoHandler) List(c *gin.Context) {
	videos, err := h.videos.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, videos)
}

// Get godoc
// @Summary Get a lecture video
// @Tags Videos
// @Produce json
// @Param id path string true "Video ID"
// @Success 200 {object} models.LectureVideo
// @Failure 404 {object} map[string]string
// @Router /videos/{id} [get]
func (h *VideoHandler) Get(c *gin.Context) {
	video, err := h.videos.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, video)
}

// Create godoc
// @Summary Upload a lecture video
// @Tags Videos
// @Accept json
// @Produce json
// @Param payload body service.CreateVideoRequest true "Video payload"
// @Success 201 {object} models.LectureVideo
// @Router /videos [post]
func (h *VideoHandler) Create(c *gin.Context) {
	var req service.CreateVideoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "Failed to create video"))
		return
	}
	video, err := h.videos.Create(c.Request.Context(), actorFrom(c), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, video)
}

// Delete godoc
// @Summary Delete a lecture video
// @Tags Videos
// @Produce json
// @Param id path string true "Video ID"
// @Success 204
// @Router /videos/{id} [delete]
func (h *VideoHandler) Delete(c *gin.Context) {
	if err := h.videos.Delete(c.Request.Context(), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}
