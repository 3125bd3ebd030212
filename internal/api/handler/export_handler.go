package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/andrewarnaud1/mymanager/internal/service"
)

// ExportHandler serves file downloads.
type ExportHandler struct {
	svc service.ExportService
}

// NewExportHandler creates the ExportHandler.
func NewExportHandler(svc service.ExportService) *ExportHandler {
	return &ExportHandler{svc: svc}
}

// ScheduleExcel handles GET /api/v1/schedules/:id/export.
func (h *ExportHandler) ScheduleExcel(c *gin.Context) {
	file, err := h.svc.ScheduleExcel(c.Request.Context(), c.Param("id"))
	if err != nil {
		handleServiceError(c, err)
		return
	}
	writeDownload(c, file)
}

// EmployeeICS handles GET /api/v1/schedules/:id/employees/:employee_id/ical.
func (h *ExportHandler) EmployeeICS(c *gin.Context) {
	file, err := h.svc.EmployeeICS(c.Request.Context(), c.Param("id"), c.Param("employee_id"))
	if err != nil {
		handleServiceError(c, err)
		return
	}
	writeDownload(c, file)
}

func writeDownload(c *gin.Context, file *service.ExportFile) {
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", file.Filename))
	c.Data(http.StatusOK, file.ContentType, file.Data)
}
