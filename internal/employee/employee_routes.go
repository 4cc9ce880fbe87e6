package employee

import (
	"go-employee/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	rdb *redis.Client,
	logger *zap.Logger,
) {
	employees := r.Group("/employees")
	employees.Use(middleware.RequestID())
	employees.Use(middleware.ContextLogger(logger))
	{
		employees.GET("",
			middleware.RateLimitByIP(10, 30),
			handler.GetAll,
		)

		employees.GET("/:id",
			middleware.RateLimitByIP(10, 30),
			handler.GetById,
		)

		createHandlers := []gin.HandlerFunc{middleware.RateLimitByIP(2, 5)}
		if rdb != nil {
			createHandlers = append(createHandlers, middleware.Idempotency(rdb))
		}
		createHandlers = append(createHandlers, handler.Create)
		employees.POST("", createHandlers...)

		employees.PUT("/:id",
			middleware.RateLimitByIP(2, 5),
			handler.Update,
		)

		employees.PATCH("/:id",
			middleware.RateLimitByIP(2, 5),
			handler.Patch,
		)

		employees.DELETE("/:id",
			middleware.RateLimitByIP(1, 3),
			handler.Delete,
		)

		employees.GET("/designation/:designation",
			middleware.RateLimitByIP(10, 30),
			handler.GetByDesignation,
		)

		employees.DELETE("/designation/:designation",
			middleware.RateLimitByIP(1, 3),
			handler.DeleteByDesignation,
		)

		employees.GET("/company/:company",
			middleware.RateLimitByIP(10, 30),
			handler.GetByCompany,
		)

		employees.GET("/search",
			middleware.RateLimitByIP(10, 30),
			handler.SearchByName,
		)

		employees.GET("/born-after",
			middleware.RateLimitByIP(10, 30),
			handler.GetBornAfter,
		)

		employees.GET("/filter",
			middleware.RateLimitByIP(10, 30),
			handler.Filter,
		)

		employees.GET("/count/designation/:designation",
			middleware.RateLimitByIP(10, 30),
			handler.CountByDesignation,
		)

		employees.GET("/exists",
			middleware.RateLimitByIP(10, 30),
			handler.ExistsByName,
		)

		employees.GET("/health", handler.Health)
	}
}
