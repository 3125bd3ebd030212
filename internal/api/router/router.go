package router

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/andrewarnaud1/mymanager/config"
	"github.com/andrewarnaud1/mymanager/internal/api/handler"
	"github.com/andrewarnaud1/mymanager/internal/api/middleware"
	"github.com/andrewarnaud1/mymanager/internal/model"
	"github.com/andrewarnaud1/mymanager/pkg/jwt"
	"github.com/andrewarnaud1/mymanager/pkg/redis"
)

// Setup builds the gin engine with all middleware and routes.
// Read endpoints are open to any authenticated account; everything that
// writes is manager-only.
func Setup(
	cfg *config.Config,
	h *handler.Handler,
	jwtMgr *jwt.Manager,
	rdb *redis.Client,
	logger *zap.Logger,
) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(
		middleware.Recovery(logger),
		middleware.RequestID(),
		middleware.Logger(logger),
		middleware.SecurityHeaders(),
		middleware.CORS(&cfg.Server.CORS),
		middleware.BodyLimit(cfg.Server.MaxBodyBytes),
	)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api/v1")

	auth := api.Group("/auth")
	{
		auth.POST("/login",
			middleware.RateLimit(rdb, 10, time.Minute),
			h.Auth.Login)
		auth.POST("/logout", h.Auth.Logout)
		auth.GET("/me",
			middleware.JWTAuth(jwtMgr, rdb),
			h.Auth.Me)
	}

	authed := api.Group("", middleware.JWTAuth(jwtMgr, rdb))
	manager := middleware.RoleAuth(model.RoleManager)

	employees := authed.Group("/employees")
	{
		// search backs the planner autocomplete, open to staff
		employees.GET("/search", h.Employee.Search)

		employees.GET("", manager, h.Employee.List)
		employees.POST("", manager, h.Employee.Create)
		employees.GET("/:id", manager, h.Employee.Get)
		employees.PUT("/:id", manager, h.Employee.Update)
		employees.POST("/:id/convert", manager, h.Employee.Convert)
		employees.POST("/:id/toggle", manager, h.Employee.ToggleActive)
	}

	schedules := authed.Group("/schedules")
	{
		schedules.GET("", h.Schedule.List)
		schedules.GET("/:id", h.Schedule.Get)
		schedules.GET("/:id/employees/:employee_id/ical", h.Export.EmployeeICS)

		// for-date creates the week lazily, so it is a manager operation
		schedules.GET("/for-date", manager, h.Schedule.ForDate)
		schedules.POST("", manager, h.Schedule.Create)
		schedules.PUT("/:id", manager, h.Schedule.Update)
		schedules.DELETE("/:id", manager, h.Schedule.Delete)
		schedules.POST("/:id/copy", manager, h.Schedule.Copy)
		schedules.GET("/:id/export", manager, h.Export.ScheduleExcel)
		schedules.POST("/:id/shifts", manager, h.Shift.Create)
		schedules.POST("/:id/shifts/bulk", manager, h.Shift.BulkCreate)
	}

	shifts := authed.Group("/shifts")
	{
		shifts.GET("/conflicts", manager, h.Shift.CheckConflicts)
		shifts.PUT("/:id", manager, h.Shift.Update)
		shifts.DELETE("/:id", manager, h.Shift.Delete)
	}

	return r
}
