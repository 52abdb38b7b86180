package app

import (
	"interview_readiness_backend/internal/config"
	"interview_readiness_backend/internal/middleware"
	"interview_readiness_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, cfg *config.Config) {
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))
	router.GET("/metrics", monitoring.PrometheusHandler())

	// 1. 公共路由(无需登录)
	a.registerPublicRoutes(router, c)

	// 2. 需要授权的路由
	authGroup := router.Group("/api")
	authGroup.Use(middleware.AuthMiddleware(cfg.JWT.Secret))
	{
		a.registerUserRoutes(authGroup, c)
		a.registerPracticeRoutes(authGroup, c)
		a.registerProgressRoutes(authGroup, c)
	}
}

func (a *App) registerPublicRoutes(router *gin.Engine, c *controllers) {
	public := router.Group("/api")
	{
		public.GET("/health", c.health.HealthCheck)
		public.POST("/users/register", c.auth.Register)
		public.POST("/users/login", c.auth.Login)
	}
}

func (a *App) registerUserRoutes(rg *gin.RouterGroup, c *controllers) {
	rg.GET("/users/profile", c.auth.GetProfile)

	// 技能
	rg.POST("/skills", c.skill.CreateSkill)
	rg.GET("/skills", c.skill.ListSkills)
	rg.PUT("/skills/:id", c.skill.UpdateSkill)
	rg.DELETE("/skills/:id", c.skill.DeleteSkill)

	// 任务
	rg.POST("/tasks", c.task.CreateTask)
	rg.GET("/tasks", c.task.ListTasks)
	rg.PUT("/tasks/:id", c.task.UpdateTask)
	rg.DELETE("/tasks/:id", c.task.DeleteTask)
	rg.PATCH("/tasks/:id/complete", c.task.CompleteTask)
}

func (a *App) registerPracticeRoutes(rg *gin.RouterGroup, c *controllers) {
	ai := rg.Group("/ai")
	{
		ai.POST("/generate", c.question.GenerateQuestions)
		ai.POST("/attempt", c.question.RecordAttempt)
		ai.GET("/history", c.question.GetHistory)
	}

	rg.GET("/suggestions/today", c.suggestion.GetToday)
	rg.GET("/motivation", c.motivation.GetMotivation)
}

func (a *App) registerProgressRoutes(rg *gin.RouterGroup, c *controllers) {
	streak := rg.Group("/streak")
	{
		streak.GET("", c.streak.GetStreak)
		streak.GET("/history", c.streak.GetHistory)
		streak.GET("/consistency", c.streak.GetConsistency)
	}

	analytics := rg.Group("/analytics")
	{
		analytics.GET("/summary", c.analytics.GetSummary)
		analytics.GET("/trends", c.analytics.GetTrends)
		analytics.GET("/weak-areas", c.analytics.GetWeakAreas)
	}
}
