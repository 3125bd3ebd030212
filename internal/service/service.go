package service

import (
	"go.uber.org/zap"

	"github.com/andrewarnaud1/mymanager/config"
	"github.com/andrewarnaud1/mymanager/internal/repository"
	"github.com/andrewarnaud1/mymanager/pkg/jwt"
	"github.com/andrewarnaud1/mymanager/pkg/redis"
)

// Service aggregates all business-logic interfaces.
type Service struct {
	Auth     AuthService
	Employee EmployeeService
	Schedule ScheduleService
	Shift    ShiftService
	Export   ExportService
}

// NewService wires the service implementations.
func NewService(
	cfg *config.Config,
	repo *repository.Repository,
	jwtMgr *jwt.Manager,
	rdb *redis.Client,
	logger *zap.Logger,
) *Service {
	return &Service{
		Auth:     NewAuthService(cfg, repo, jwtMgr, rdb, logger),
		Employee: NewEmployeeService(repo, logger),
		Schedule: NewScheduleService(repo, logger),
		Shift:    NewShiftService(repo, logger),
		Export:   NewExportService(cfg, repo, logger),
	}
}
