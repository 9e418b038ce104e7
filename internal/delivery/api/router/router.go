// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"carhub/config"
	"carhub/internal/delivery/api/docs"
	"carhub/internal/delivery/api/middleware"
	"carhub/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler    *handler.AuthHandler
	CarHandler     *handler.CarHandler
	DocsHandler    *docs.Handler `optional:"true"`
	AuthMiddleware *middleware.AuthMiddleware
	Config         *config.Config
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler    *handler.AuthHandler
	carHandler     *handler.CarHandler
	docsHandler    *docs.Handler
	authMiddleware *middleware.AuthMiddleware
	config         *config.Config
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:    params.AuthHandler,
		carHandler:     params.CarHandler,
		docsHandler:    params.DocsHandler,
		authMiddleware: params.AuthMiddleware,
		config:         params.Config,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/", handler.Root)
	e.GET("/health", handler.HealthCheck)

	api := e.Group("/api")

	authGroup := api.Group("/auth")
	{
		authGroup.POST("/signup", r.authHandler.Signup)
		authGroup.POST("/login", r.authHandler.Login)
		authGroup.POST("/logout", r.authHandler.Logout)
	}

	// Every car route requires a valid bearer token.
	carsGroup := api.Group("/cars")
	carsGroup.Use(r.authMiddleware.Authenticate)
	{
		carsGroup.POST("", r.carHandler.CreateCar)
		carsGroup.GET("", r.carHandler.ListCars)
		carsGroup.GET("/:id", r.carHandler.GetCar)
		carsGroup.PATCH("/:id", r.carHandler.UpdateCar)
		carsGroup.DELETE("/:id", r.carHandler.DeleteCar)
	}
}

// RegisterDocsRoutes exposes the OpenAPI document when enabled in config.
func (r *router) RegisterDocsRoutes(e *echo.Echo) {
	if r.docsHandler == nil || r.config == nil || r.config.Docs == nil || !r.config.Docs.Enabled {
		return
	}

	e.GET("/api/docs/openapi.json", r.docsHandler.Serve)
}
