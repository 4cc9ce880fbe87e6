package app

import (
	"go-employee/internal/employee"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func registerModules(
	router *gin.Engine,
	gormDB *gorm.DB,
	rdb *redis.Client,
) error {
	if err := employee.Migrate(gormDB); err != nil {
		return err
	}

	logger := zap.L()

	// --- Repositories ---
	employeeRepo := employee.NewRepository(gormDB)

	// --- Services ---
	employeeService := employee.NewService(employeeRepo, logger)

	// --- Handlers ---
	employeeHandler := employee.NewHandlerWithRedis(employeeService, rdb, logger)

	// --- Routes Registration ---
	api := router.Group("/api/v1")
	{
		employee.RegisterRoutes(api, employeeHandler, rdb, logger)
	}

	return nil
}
