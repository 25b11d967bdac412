package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tutorhub/tutorhub-api/internal/service"
	appErrors "github.com/tutorhub/tutorhub-api/pkg/errors"
	"github.com/tutorhub/tutorhub-api/pkg/response"
)

// MaterialHandler exposes learning material endpoints.
type MaterialHandler struct {
	materials *service.MaterialService
}

// NewMaterialHandler constructs MaterialHandler.
func NewMaterialHandler(materials *service.MaterialService) *MaterialHandler {
	return &MaterialHandler{materials: materials}
}

// List godoc
// @Summary List learning materials
// @Tags Materials
// @Produce json
// @Success 200 {array} models.LearningMaterialDetail
// @Router /materials [get]
func (h *MaterialHandler) List(c *gin.Context) {
	materials, err := h.materials.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, materials)
}

// Get godoc
// @Summary Get a learning material
// @Tags Materials
// @Produce json
// @Param id path string true "Material ID"
// @Success 200 {object} models.LearningMaterial
// @Failure 404 {object} map[string]string
// @Router /materials/{id} [get]
func (h *MaterialHandler) Get(c *gin.Context) {
	material, err := h.materials.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, material)
}

// Create godoc
// @Summary Upload a learning material
// @Tags Materials
// @Accept json
// @Produce json
// @Param payload body service.CreateMaterialRequest true "Material payload"
// @Success 201 {object} models.LearningMaterial
// @Router /materials [post]
func (h *MaterialHandler) Create(c *gin.Context) {
	var req service.CreateMaterialRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "Failed to create material"))
		return
	}
	material, err := h.materials.Create(c.Request.Context(), actorFrom(c), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, material)
}

// Delete godoc
// @Summary Delete a learning material
// @Tags Materials
// @Produce json
// @Param id path string true "Material ID"
// @Success 204
// @Router /materials/{id} [delete]
func (h *MaterialHandler) Delete(c *gin.Context) {
	if err := h.materials.Delete(c.Request.Context(), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}
