package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/andrewarnaud1/mymanager/internal/service"
	"github.com/andrewarnaud1/mymanager/pkg/response"
)

// Handler aggregates all HTTP handlers.
type Handler struct {
	Auth     *AuthHandler
	Employee *EmployeeHandler
	Schedule *ScheduleHandler
	Shift    *ShiftHandler
	Export   *ExportHandler
}

// NewHandler wires the handlers.
func NewHandler(svc *service.Service, logger *zap.Logger) *Handler {
	return &Handler{
		Auth:     NewAuthHandler(svc.Auth),
		Employee: NewEmployeeHandler(svc.Employee),
		Schedule: NewScheduleHandler(svc.Schedule),
		Shift:    NewShiftHandler(svc.Shift),
		Export:   NewExportHandler(svc.Export),
	}
}

// handleServiceError maps service sentinels onto HTTP responses. A shift
// conflict carries the conflicting shifts in the error payload so the
// client can show them.
func handleServiceError(c *gin.Context, err error) {
	var conflictErr *service.ConflictError
	if errors.As(err, &conflictErr) {
		response.ErrorWithData(c, http.StatusConflict, 40910, err.Error(), gin.H{
			"conflicts": conflictErr.Shifts(),
		})
		return
	}

	switch {
	case errors.Is(err, service.ErrInvalidCredentials):
		response.Unauthorized(c, 40110, err.Error())
	case errors.Is(err, service.ErrAccountDisabled):
		response.Forbidden(c, 40310, err.Error())

	case errors.Is(err, service.ErrAccountNotFound),
		errors.Is(err, service.ErrEmployeeNotFound),
		errors.Is(err, service.ErrScheduleNotFound),
		errors.Is(err, service.ErrShiftNotFound):
		response.NotFound(c, 40400, err.Error())

	case errors.Is(err, service.ErrUsernameTaken),
		errors.Is(err, service.ErrEmailTaken),
		errors.Is(err, service.ErrAlreadyInternal),
		errors.Is(err, service.ErrDuplicateWeek),
		errors.Is(err, service.ErrDuplicateShift):
		response.Conflict(c, 40900, err.Error())

	case errors.Is(err, service.ErrInvalidTimeRange),
		errors.Is(err, service.ErrInactiveEmployee),
		errors.Is(err, service.ErrDateOutsideWeek),
		errors.Is(err, service.ErrInvalidWeekAnchor),
		errors.Is(err, service.ErrCredentialRequired):
		response.BadRequest(c, 40000, err.Error())

	default:
		response.InternalError(c)
	}
}

// bindingError writes a 400 with the validator's message.
func bindingError(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, response.Response{
		Code:    40001,
		Message: "invalid request",
		Details: err.Error(),
	})
}
