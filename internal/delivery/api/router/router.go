// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"contacts/internal/delivery/api/middleware"
	"contacts/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	UserHandler    *handler.UserHandler
	AuthHandler    *handler.AuthHandler
	ContactHandler *handler.ContactHandler
	AddressHandler *handler.AddressHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	userHandler    *handler.UserHandler
	authHandler    *handler.AuthHandler
	contactHandler *handler.ContactHandler
	addressHandler *handler.AddressHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		userHandler:    params.UserHandler,
		authHandler:    params.AuthHandler,
		contactHandler: params.ContactHandler,
		addressHandler: params.AddressHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	api := e.Group("/api")

	// Public routes
	api.POST("/users", r.userHandler.Register)
	api.POST("/auth/login", r.authHandler.Login)

	// Everything else requires a live session token
	secured := api.Group("", r.authMiddleware.Authenticate)
	{
		secured.DELETE("/auth/logout", r.authHandler.Logout)
		secured.GET("/users/current", r.userHandler.GetCurrent)
		secured.PATCH("/users/current", r.userHandler.UpdateCurrent)
	}

	contacts := secured.Group("/contacts")
	{
		contacts.POST("", r.contactHandler.Create)
		contacts.GET("", r.contactHandler.Search)
		contacts.GET("/:contactId", r.contactHandler.Get)
		contacts.PUT("/:contactId", r.contactHandler.Update)
		contacts.DELETE("/:contactId", r.contactHandler.Delete)
		contacts.GET("/:contactId/qrcode", r.contactHandler.QRCode)
	}

	addresses := contacts.Group("/:contactId/addresses")
	{
		addresses.POST("", r.addressHandler.Create)
		addresses.GET("", r.addressHandler.List)
		addresses.GET("/:addressId", r.addressHandler.Get)
		addresses.PUT("/:addressId", r.addressHandler.Update)
		addresses.DELETE("/:addressId", r.addressHandler.Delete)
	}
}
