package http

import (
	"github.com/gin-gonic/gin"

	"github.com/Shutko92/TaskManagerApp/internal/adapter/http/handlers"
	"github.com/Shutko92/TaskManagerApp/internal/adapter/http/middleware"
	"github.com/Shutko92/TaskManagerApp/internal/core/ports"
)

func RegisterRoutes(
	r *gin.Engine,
	healthHandler *handlers.HealthHandler,
	authHandler *handlers.AuthHandler,
	taskHandler *handlers.TaskHandler,
	userRepository ports.UserRepository,
	tokenService ports.TokenService,
) {
	api := r.Group("/api")
	api.Use(
		middleware.LanguageMiddleware(),
		middleware.AuthenticationMiddleware(userRepository, tokenService),
	)

	api.GET("/health", healthHandler.CheckHealth)
	api.GET("/health/report", healthHandler.CheckHealthReport)

	auth := api.Group("/auth")
	{
		auth.POST("/register", authHandler.Register)
		auth.POST("/login", authHandler.Login)
	}

	protected := api.Group("")
	protected.Use(middleware.RequireAuthenticated())
	{
		protected.POST("/task", taskHandler.CreateTask)
		protected.POST("/task/comment", taskHandler.AddComment)
		protected.POST("/task/assign/:assigneeId", taskHandler.SetAssignee)
		protected.POST("/task/:taskId", taskHandler.DeleteTask)
		protected.PUT("/task/:id/status", taskHandler.ChangeStatus)
		protected.GET("/tasks", taskHandler.ListTasks)
	}
}
