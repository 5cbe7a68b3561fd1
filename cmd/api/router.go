package main

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mkigikm/director-api/internal/shared/middleware"
	"github.com/mkigikm/director-api/pkg/container"
)

func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	// Global middlewares
	router.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
		middleware.CORS(),
	)

	router.GET("/healthz", healthCheckHandler(c))

	directors := router.Group("/directors")
	{
		directors.GET("", c.DirectorHandler.Index)
		directors.POST("", c.DirectorHandler.Create)
		directors.GET("/:id", c.DirectorHandler.Show)
		directors.POST("/:id", c.DirectorHandler.Update)
	}

	return router
}

func healthCheckHandler(c *container.Container) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		if err := c.Redis.HealthCheck(ctx.Request.Context()); err != nil {
			ctx.JSON(http.StatusServiceUnavailable, gin.H{
				"status": "unhealthy",
				"redis":  err.Error(),
			})
			return
		}

		ctx.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"name":    c.Config.App.Name,
			"version": c.Config.App.Version,
		})
	}
}
