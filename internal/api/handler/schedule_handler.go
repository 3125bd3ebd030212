package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/andrewarnaud1/mymanager/internal/dto"
	"github.com/andrewarnaud1/mymanager/internal/service"
	"github.com/andrewarnaud1/mymanager/pkg/response"
)

// ScheduleHandler serves the planning-week endpoints.
type ScheduleHandler struct {
	svc service.ScheduleService
}

// NewScheduleHandler creates the ScheduleHandler.
func NewScheduleHandler(svc service.ScheduleService) *ScheduleHandler {
	return &ScheduleHandler{svc: svc}
}

// Create handles POST /api/v1/schedules.
func (h *ScheduleHandler) Create(c *gin.Context) {
	var req dto.CreateScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindingError(c, err)
		return
	}

	schedule, err := h.svc.Create(c.Request.Context(), &req, MustGetAccountID(c))
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.Created(c, schedule)
}

// ForDate handles GET /api/v1/schedules/for-date?date=YYYY-MM-DD.
// Resolves the schedule of the week containing the date, creating it lazily.
func (h *ScheduleHandler) ForDate(c *gin.Context) {
	var req dto.ScheduleForDateRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		bindingError(c, err)
		return
	}

	result, err := h.svc.GetOrCreateForDate(c.Request.Context(), req.Date, MustGetAccountID(c))
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.OK(c, result)
}

// Get handles GET /api/v1/schedules/:id (full week view).
func (h *ScheduleHandler) Get(c *gin.Context) {
	detail, err := h.svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.OK(c, detail)
}

// List handles GET /api/v1/schedules.
func (h *ScheduleHandler) List(c *gin.Context) {
	var req dto.ScheduleListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		bindingError(c, err)
		return
	}

	list, total, err := h.svc.List(c.Request.Context(), &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.OKPage(c, list, total, req.GetPage(), req.GetPageSize())
}

// Update handles PUT /api/v1/schedules/:id (week notes).
func (h *ScheduleHandler) Update(c *gin.Context) {
	var req dto.UpdateScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindingError(c, err)
		return
	}

	schedule, err := h.svc.UpdateNotes(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.OK(c, schedule)
}

// Delete handles DELETE /api/v1/schedules/:id (cascades to shifts).
func (h *ScheduleHandler) Delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		handleServiceError(c, err)
		return
	}
	response.OK(c, nil)
}

// Copy handles POST /api/v1/schedules/:id/copy.
func (h *ScheduleHandler) Copy(c *gin.Context) {
	var req dto.CopyScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindingError(c, err)
		return
	}

	result, err := h.svc.Copy(c.Request.Context(), c.Param("id"), &req, MustGetAccountID(c))
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.OK(c, result)
}
