package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/andrewarnaud1/mymanager/internal/dto"
	"github.com/andrewarnaud1/mymanager/internal/service"
	"github.com/andrewarnaud1/mymanager/pkg/response"
)

// EmployeeHandler serves the staff registry endpoints.
type EmployeeHandler struct {
	svc service.EmployeeService
}

// NewEmployeeHandler creates the EmployeeHandler.
func NewEmployeeHandler(svc service.EmployeeService) *EmployeeHandler {
	return &EmployeeHandler{svc: svc}
}

// Create handles POST /api/v1/employees.
func (h *EmployeeHandler) Create(c *gin.Context) {
	var req dto.CreateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindingError(c, err)
		return
	}

	employee, err := h.svc.Create(c.Request.Context(), &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.Created(c, employee)
}

// Get handles GET /api/v1/employees/:id.
func (h *EmployeeHandler) Get(c *gin.Context) {
	employee, err := h.svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.OK(c, employee)
}

// Update handles PUT /api/v1/employees/:id.
func (h *EmployeeHandler) Update(c *gin.Context) {
	var req dto.UpdateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindingError(c, err)
		return
	}

	employee, err := h.svc.Update(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.OK(c, employee)
}

// Convert handles POST /api/v1/employees/:id/convert.
func (h *EmployeeHandler) Convert(c *gin.Context) {
	var req dto.ConvertEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindingError(c, err)
		return
	}

	employee, err := h.svc.ConvertToInternal(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.OK(c, employee)
}

// ToggleActive handles POST /api/v1/employees/:id/toggle.
// Without a body the flag flips; {"active": bool} sets it explicitly.
func (h *EmployeeHandler) ToggleActive(c *gin.Context) {
	var req struct {
		Active *bool `json:"active"`
	}
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			bindingError(c, err)
			return
		}
	}

	employee, err := h.svc.SetActive(c.Request.Context(), c.Param("id"), req.Active)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.OK(c, employee)
}

// List handles GET /api/v1/employees.
func (h *EmployeeHandler) List(c *gin.Context) {
	var req dto.EmployeeListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		bindingError(c, err)
		return
	}

	list, total, stats, err := h.svc.List(c.Request.Context(), &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	page, pageSize := req.GetPage(), req.GetPageSize()
	totalPages := int(total) / pageSize
	if int(total)%pageSize > 0 {
		totalPages++
	}
	response.OK(c, gin.H{
		"list":  list,
		"stats": stats,
		"pagination": response.Pagination{
			Page:       page,
			PageSize:   pageSize,
			Total:      total,
			TotalPages: totalPages,
		},
	})
}

// Search handles GET /api/v1/employees/search (active-only autocomplete).
func (h *EmployeeHandler) Search(c *gin.Context) {
	var req dto.EmployeeSearchRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		bindingError(c, err)
		return
	}

	list, err := h.svc.SearchActive(c.Request.Context(), req.Term)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.OK(c, list)
}
