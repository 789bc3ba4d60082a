package app

import (
	"acadplan_backend/docs"
	"acadplan_backend/internal/config"
	"acadplan_backend/internal/middleware"
	"acadplan_backend/internal/model"
	"acadplan_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, cfg *config.Config) {
	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	public := router.Group("/api")
	{
		public.GET("/health", c.health.HealthCheck)
		public.POST("/auth/register", c.auth.Register)
		public.POST("/auth/login", c.auth.Login)
	}

	authGroup := router.Group("/api")
	authGroup.Use(middleware.AuthMiddleware(cfg))
	{
		authGroup.GET("/auth/profile", c.auth.GetProfile)
		authGroup.PUT("/auth/profile", c.auth.UpdateProfile)

		authGroup.POST("/plans", c.plan.Create)
		authGroup.GET("/plans", c.plan.List)
		authGroup.GET("/plans/current", c.plan.ListCurrent)
		authGroup.GET("/plans/history", c.plan.History)
		authGroup.GET("/plans/:id", c.plan.Get)
		authGroup.PUT("/plans/:id", c.plan.Update)
		authGroup.DELETE("/plans/:id", c.plan.Delete)

		authGroup.POST("/progress", c.progress.Create)
		authGroup.GET("/progress", c.progress.List)
		authGroup.PUT("/progress/:id", c.progress.Update)
		authGroup.DELETE("/progress/:id", c.progress.Delete)

		authGroup.POST("/evidence", c.evidence.Create)
		authGroup.GET("/evidence", c.evidence.List)

		authGroup.POST("/checkins", c.checkin.Checkin)
		authGroup.GET("/checkins", c.checkin.History)
	}

	// review and reporting stay behind the coordinator role; admins
	// pass every role check
	coordinator := router.Group("/api")
	coordinator.Use(middleware.AuthMiddleware(cfg), middleware.RoleMiddleware(model.Coordinator))
	{
		coordinator.PUT("/plans/:id/review", c.plan.Review)
		coordinator.POST("/evidence/:id/validate", c.evidence.Validate)
		coordinator.GET("/users", c.user.List)

		reports := coordinator.Group("/reports")
		{
			reports.GET("/institutional", c.report.GetInstitutional)
			reports.GET("/teacher", c.report.GetTeacher)
			reports.GET("/export", c.report.Export)
			reports.GET("/teachers", c.report.GetTeacherNames)
		}
	}
}
