package handler

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"warehouse/internal/middleware"
	"warehouse/internal/websocket"
)

const defaultAllowedOrigin = "http://localhost:3001"

// RouterConfig carries everything NewRouter mounts
type RouterConfig struct {
	AllowedOrigins []string
	Hub            *websocket.Hub
	Health         *HealthHandler
	ImportOrders   *ImportOrderHandler
	Statistics     *StatisticsHandler
	References     *ReferenceHandler
	Audit          *AuditHandler
}

// NewRouter builds the gin engine: middleware, /health, /ws, /swagger and the /api/v1 routes
func NewRouter(cfg RouterConfig) *gin.Engine {
	RegisterValidators()

	router := gin.New()
	router.Use(middleware.RequestID(), middleware.AccessLog(), middleware.Recovery())

	origins := cfg.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{defaultAllowedOrigin}
	}
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = origins
	corsConfig.AllowCredentials = true
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Accept",
		middleware.RequestIDHeader, middleware.UserIDHeader}
	corsConfig.ExposeHeaders = []string{middleware.RequestIDHeader, "Content-Disposition"}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	router.Use(cors.New(corsConfig))

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	if cfg.Health != nil {
		cfg.Health.RegisterRoutes(router)
	}
	if cfg.Hub != nil {
		router.GET("/ws", func(c *gin.Context) {
			websocket.ServeWs(cfg.Hub, c)
		})
	}

	api := router.Group("/api/v1")
	api.Use(middleware.Actor())
	if cfg.ImportOrders != nil {
		cfg.ImportOrders.RegisterRoutes(api)
	}
	if cfg.Statistics != nil {
		cfg.Statistics.RegisterRoutes(api)
	}
	if cfg.References != nil {
		cfg.References.RegisterRoutes(api)
	}
	if cfg.Audit != nil {
		cfg.Audit.RegisterRoutes(api)
	}

	return router
}
