package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tutorhub/tutorhub-api/internal/service"
	appErrors "github.com/tutorhub/tutorhub-api/pkg/errors"
	"github.com/tutorhub/tutorhub-api/pkg/response"
)

// TutorHandler exposes tutor profile endpoints.
type TutorHandler struct {
	tutors *service.TutorService
}

// NewTutorHandler constructs TutorHandler.
func NewTutorHandler(tutors *service.TutorService) *TutorHandler {
	return &TutorHandler{tutors: tutors}
}

// List godoc
// @Summary List tutors
// @Tags Tutors
// @Produce json
// @Success 200 {array} models.Tutor
// @Router /tutors [get]
func (h *TutorHandler) List(c *gin.Context) {
	tutors, err := h.tutors.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, tutors)
}

// Get godoc
// @Summary Get a tutor
// @Tags Tutors
// @Produce json
// @Param id path string true "Tutor ID"
// @Success 200 {object} models.Tutor
// @Failure 404 {object} map[string]string
// @Router /tutors/{id} [get]
func (h *TutorHandler) Get(c *gin.Context) {
	tutor, err := h.tutors.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, tutor)
}

// Create godoc
// @Summary Create a tutor
// @Tags Tutors
// @Accept json
// @Produce json
// @Param payload body service.CreateTutorRequest true "Tutor payload"
// @Success 201 {object} models.Tutor
// @Router /tutors [post]
func (h *TutorHandler) Create(c *gin.Context) {
	var req service.CreateTutorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "Failed to create tutor"))
		return
	}
	tutor, err := h.tutors.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, tutor)
}

// Update godoc
// @Summary Update a tutor
// @Tags Tutors
// @Accept json
// @Produce json
// @Param id path string true "Tutor ID"
// @Param payload body service.UpdateTutorRequest true "Tutor payload"
// @Success 200 {object} models.Tutor
// @Failure 404 {object} map[string]string
// @Router /tutors/{id} [put]
func (h *TutorHandler) Update(c *gin.Context) {
	var req service.UpdateTutorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "Failed to update tutor"))
		return
	}
	tutor, err := h.tutors.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, tutor)
}

// Delete godoc
// @Summary Delete a tutor
// @Tags Tutors
// @Produce json
// @Param id path string true "Tutor ID"
// @Success 204
// @Router /tutors/{id} [delete]
func (h *TutorHandler) Delete(c *gin.Context) {
	if err := h.tutors.Delete(c.Request.Context(), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}
