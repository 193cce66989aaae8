package http

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"fleetops-service/internal/service"
)

func (h *Handler) exportCSV(c *gin.Context) {
	export, err := h.reports.ExportCSV(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}
	h.sendExport(c, export)
}

func (h *Handler) exportExcel(c *gin.Context) {
	export, err := h.reports.ExportExcel(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}
	h.sendExport(c, export)
}

func (h *Handler) exportPDF(c *gin.Context) {
	export, err := h.reports.ExportPDF(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}
	h.sendExport(c, export)
}

func (h *Handler) sendExport(c *gin.Context, export *service.Export) {
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", export.Filename))
	c.Header("Content-Length", fmt.Sprintf("%d", len(export.Data)))
	c.Data(http.StatusOK, export.ContentType, export.Data)
}
