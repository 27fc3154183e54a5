// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"walletpass/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	RegistrationHandler *handler.RegistrationHandler
	PassHandler         *handler.PassHandler
}

// router holds all the handlers that need to be registered.
type router struct {
	registrationHandler *handler.RegistrationHandler
	passHandler         *handler.PassHandler
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		registrationHandler: params.RegistrationHandler,
		passHandler:         params.PassHandler,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Wallet web-service routes, path shape fixed by the device protocol
	v1 := e.Group("/v1")
	{
		v1.POST("/devices/:deviceId/registrations/:passTypeId/:serialNumber", r.registrationHandler.Register)
		v1.GET("/devices/:deviceId/registrations/:passTypeId", r.registrationHandler.ListUpdated)
		v1.DELETE("/devices/:deviceId/registrations/:passTypeId/:serialNumber", r.registrationHandler.Unregister)
	}

	// Admin routes driven by the host application
	admin := e.Group("/admin")
	{
		admin.POST("/passes", r.passHandler.Materialize)
		admin.PATCH("/passes/:serialNumber", r.passHandler.Mutate)
	}
}
