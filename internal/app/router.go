package app

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/ibrahimt2325-tech/fitness-tracker/docs"
	"github.com/ibrahimt2325-tech/fitness-tracker/internal/middleware"
	"github.com/ibrahimt2325-tech/fitness-tracker/pkg/monitoring"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers) {
	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	public := router.Group("/api")
	{
		public.GET("/health", c.health.HealthCheck)
		public.POST("/login", c.auth.Login)
	}

	authGroup := router.Group("/api")
	authGroup.Use(middleware.AuthMiddleware())
	{
		authGroup.GET("/users", c.log.GetUsers)
		authGroup.GET("/week", c.log.GetWeek)
		authGroup.PUT("/logs/daily", c.log.SaveDailyLog)
		authGroup.PUT("/logs/weekly", c.log.SaveWeeklyLog)
		authGroup.GET("/calendar", c.log.GetCalendar)
		authGroup.GET("/journal", c.log.GetJournal)
		authGroup.GET("/achievements", c.achievement.GetUserAchievements)
	}
}
