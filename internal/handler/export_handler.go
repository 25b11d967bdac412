package handler

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/tutorhub/tutorhub-api/internal/service"
	"github.com/tutorhub/tutorhub-api/pkg/response"
)

// ExportHandler exposes downloadable admin reports.
type ExportHandler struct {
	exports *service.ExportService
}

// NewExportHandler constructs ExportHandler.
func NewExportHandler(exports *service.ExportService) *ExportHandler {
	return &ExportHandler{exports: exports}
}

// Sessions godoc
// @Summary Export every tutoring session
// @Tags Admin
// @Produce text/csv
// @Produce application/pdf
// @Param format query string false "csv or pdf" default(csv)
// @Success 200 {file} binary
// @Router /admin/export/sessions [get]
func (h *ExportHandler) Sessions(c *gin.Context) {
	format := service.ExportFormat(c.DefaultQuery("format", "csv"))
	result, err := h.exports.Sessions(c.Request.Context(), format)
	if err != nil {
		response.Error(c, err)
		return
	}
	h.send(c, result)
}

// Students godoc
// @Summary Export every student account
// @Tags Admin
// @Produce text/csv
// @Produce application/pdf
// @Param format query string false "csv or pdf" default(csv)
// @Success 200 {file} binary
// @Router /admin/export/students [get]
func (h *ExportHandler) Students(c *gin.Context) {
	format := service.ExportFormat(c.DefaultQuery("format", "csv"))
	result, err := h.exports.Students(c.Request.Context(), format)
	if err != nil {
		response.Error(c, err)
		return
	}
	h.send(c, result)
}

func (h *ExportHandler) send(c *gin.Context, result *service.ExportResult) {
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", result.Filename))
	c.Data(200, result.ContentType, result.Content)
}
