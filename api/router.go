package api

import (
	"slices"
	"time"

	"github.com/gin-contrib/cors"
	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func NewRouter(logger *zap.Logger, h *Handler, allowedOrigins []string) *gin.Engine {
	registerValidators()

	router := gin.New()
	router.Use(ginzap.Ginzap(logger, time.RFC3339, true))
	router.Use(ginzap.RecoveryWithZap(logger, true))
	router.Use(cors.New(corsConfig(allowedOrigins)))
	router.Use(ErrorHandler())

	Register(router, h)
	return router
}

func Register(router gin.IRouter, h *Handler) {
	apiGroup := router.Group("/api")
	{
		apiGroup.GET("/health", h.HealthCheckHandler)

		boards := apiGroup.Group("/boards")
		boards.POST("", h.CreateBoard)
		boards.GET("", h.ListBoards)
		boards.GET("/:id", h.GetBoard)
		boards.PATCH("/:id", h.UpdateBoard)
		boards.DELETE("/:id", h.DeleteBoard)

		tasks := apiGroup.Group("/tasks")
		tasks.POST("", h.CreateTask)
		tasks.GET("", h.ListTasks)
		tasks.GET("/:id", h.GetTask)
		tasks.PATCH("/:id", h.UpdateTask)
		tasks.DELETE("/:id", h.DeleteTask)
	}
}

func corsConfig(allowedOrigins []string) cors.Config {
	cfg := cors.DefaultConfig()
	cfg.AllowMethods = []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"}
	if len(allowedOrigins) == 0 || slices.Contains(allowedOrigins, "*") {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = allowedOrigins
	}
	return cfg
}
