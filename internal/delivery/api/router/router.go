// Package router contains routing setup for the API delivery.
package router

import (
	"quill/internal/delivery/api/middleware"
	"quill/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// RouterParams holds the handlers and middleware the router wires together,
// injected by Fx.
type RouterParams struct {
	fx.In

	AuthHandler    *handler.AuthHandler
	PostHandler    *handler.PostHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler    *handler.AuthHandler
	postHandler    *handler.PostHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:    params.AuthHandler,
		postHandler:    params.PostHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes, open to anonymous clients
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", r.authHandler.Register)
		authGroup.POST("/login", r.authHandler.Login)
	}

	// Post routes require a valid bearer token
	postGroup := e.Group("/posts")
	postGroup.Use(r.authMiddleware.Authenticate)
	{
		postGroup.POST("", r.postHandler.CreatePost)
	}
}
