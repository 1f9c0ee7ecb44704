// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"tasktrack/config"
	"tasktrack/internal/delivery/api/middleware"
	"tasktrack/internal/delivery/api/router/handler"
	"tasktrack/internal/infra/metrics"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler    *handler.AuthHandler
	TaskHandler    *handler.TaskHandler
	TestHandler    *handler.TestHandler
	AuthMiddleware *middleware.AuthMiddleware
	Metrics        *metrics.Collector `optional:"true"`
	Config         *config.Config
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler    *handler.AuthHandler
	taskHandler    *handler.TaskHandler
	testHandler    *handler.TestHandler
	authMiddleware *middleware.AuthMiddleware
	metrics        *metrics.Collector
	config         *config.Config
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:    params.AuthHandler,
		taskHandler:    params.TaskHandler,
		testHandler:    params.TestHandler,
		authMiddleware: params.AuthMiddleware,
		metrics:        params.Metrics,
		config:         params.Config,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)
	if r.metrics != nil {
		e.GET("/metrics", echo.WrapHandler(r.metrics.Handler()))
	}

	authGroup := e.Group("/auth")
	{
		authGroup.POST("/signup", r.authHandler.Signup)
		authGroup.POST("/login", r.authHandler.Login)
		authGroup.GET("/google", r.authHandler.GoogleRedirect)
		authGroup.GET("/google/callback", r.authHandler.GoogleCallback)
		authGroup.POST("/google-login", r.authHandler.GoogleLogin)
		authGroup.GET("/logout", r.authHandler.Logout)
	}

	tasksGroup := e.Group("/tasks")
	tasksGroup.Use(r.authMiddleware.RequireAuth)
	{
		tasksGroup.POST("", r.taskHandler.CreateTask)
		tasksGroup.GET("", r.taskHandler.ListTasks)
		tasksGroup.GET("/grouped", r.taskHandler.GroupedTasks)
		tasksGroup.PUT("/:id", r.taskHandler.EditTask)
		tasksGroup.PUT("/:id/status", r.taskHandler.UpdateStatus)
		tasksGroup.DELETE("/:id", r.taskHandler.DeleteTask)
	}
}

func (r *router) RegisterTestRoutes(e *echo.Echo) {
	// Test routes - only enabled when configured
	if r.config.TestRoutes != nil && r.config.TestRoutes.Enabled {
		e.GET("/test-cookie", r.testHandler.ReadCookie)
		e.POST("/test-cookie", r.testHandler.WriteCookie)
	}
}
