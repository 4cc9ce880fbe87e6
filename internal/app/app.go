package app

import (
	"os"

	"go-employee/internal/shared/connection"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BuildApp connects the infrastructure and wires every component
// explicitly: repositories, services, handlers, routes. There is no
// injection container; everything is constructed once, here.
func BuildApp(router *gin.Engine) error {
	db, err := connection.ConnectGORMWithRetry(
		os.Getenv("DB_HOST"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_SSLMODE"),
		5,
	)
	if err != nil {
		return err
	}
	zap.L().Info("database connection established")

	// Redis is optional; without REDIS_ADDR the idempotency middleware
	// is simply not mounted.
	redisClient, err := connection.ConnectRedisWithRetry(os.Getenv("REDIS_ADDR"), 5)
	if err != nil {
		return err
	}
	if redisClient != nil {
		zap.L().Info("redis connection established")
	}

	return registerModules(router, db, redisClient)
}
