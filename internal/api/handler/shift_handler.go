package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/andrewarnaud1/mymanager/internal/dto"
	"github.com/andrewarnaud1/mymanager/internal/service"
	"github.com/andrewarnaud1/mymanager/pkg/response"
)

// ShiftHandler serves the shift endpoints.
type ShiftHandler struct {
	svc service.ShiftService
}

// NewShiftHandler creates the ShiftHandler.
func NewShiftHandler(svc service.ShiftService) *ShiftHandler {
	return &ShiftHandler{svc: svc}
}

// Create handles POST /api/v1/schedules/:id/shifts.
func (h *ShiftHandler) Create(c *gin.Context) {
	var req dto.CreateShiftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindingError(c, err)
		return
	}

	shift, err := h.svc.Create(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.Created(c, shift)
}

// BulkCreate handles POST /api/v1/schedules/:id/shifts/bulk.
func (h *ShiftHandler) BulkCreate(c *gin.Context) {
	var req dto.BulkCreateShiftsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindingError(c, err)
		return
	}

	result, err := h.svc.BulkCreate(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.Created(c, result)
}

// Update handles PUT /api/v1/shifts/:id.
func (h *ShiftHandler) Update(c *gin.Context) {
	var req dto.UpdateShiftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindingError(c, err)
		return
	}

	shift, err := h.svc.Update(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.OK(c, shift)
}

// Delete handles DELETE /api/v1/shifts/:id.
func (h *ShiftHandler) Delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		handleServiceError(c, err)
		return
	}
	response.OK(c, nil)
}

// CheckConflicts handles GET /api/v1/shifts/conflicts (read-only check).
func (h *ShiftHandler) CheckConflicts(c *gin.Context) {
	var req dto.ShiftConflictsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		bindingError(c, err)
		return
	}

	result, err := h.svc.CheckConflicts(c.Request.Context(), &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.OK(c, result)
}
