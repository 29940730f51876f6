// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/ecommerce/backend/internal/integration/entrypoint/controller"
	"github.com/ecommerce/backend/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine           *gin.Engine
	healthController *controller.HealthController
	userController   *controller.UserController
	authGate         *middleware.AuthenticationGate
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	userController *controller.UserController,
	authGate *middleware.AuthenticationGate,
) *Router {
	return &Router{
		healthController: healthController,
		userController:   userController,
		authGate:         authGate,
	}
}

// Setup configures and returns the Gin engine with all routes.
func (r *Router) Setup(environment string) *gin.Engine {
	// Set Gin mode based on environment
	if environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else if environment == "test" {
		gin.SetMode(gin.TestMode)
	}

	// Create router with default middleware (logger and recovery)
	r.engine = gin.Default()

	// Setup routes
	r.setupHealthRoutes()
	r.setupAPIRoutes()

	return r.engine
}

// setupHealthRoutes configures health check endpoints.
func (r *Router) setupHealthRoutes() {
	r.engine.GET("/health", r.healthController.Check)
}

// setupAPIRoutes configures the main API routes.
func (r *Router) setupAPIRoutes() {
	v1 := r.engine.Group("/api/v1")
	{
		// Auth routes (only setup if the gate is available)
		if r.authGate != nil {
			auth := v1.Group("/auth")
			{
				auth.POST("/login", middleware.LoginHandler(r.authGate))
			}
		}

		// User routes; registration is public, lookup requires a token
		if r.userController != nil && r.authGate != nil {
			users := v1.Group("/users")
			{
				users.POST("", r.userController.Register)
				users.GET("/:username", r.authGate.Authorize(), r.userController.Get)
			}
		}
	}
}
