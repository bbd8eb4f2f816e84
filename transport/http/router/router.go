package router

import (
	"hotel/config"
	_ "hotel/docs" // swagger spec
	"hotel/internal/handlers/auth"
	"hotel/internal/handlers/booking"
	"hotel/internal/handlers/cart"
	"hotel/internal/handlers/facility"
	"hotel/internal/handlers/facilitybooking"
	"hotel/internal/handlers/food"
	"hotel/internal/handlers/history"
	"hotel/internal/handlers/order"
	"hotel/internal/handlers/payment"
	"hotel/internal/handlers/room"
	"hotel/transport/http/middleware"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger"
)

type DomainHandlers struct {
	Auth            auth.Handler
	Room            room.Handler
	Food            food.Handler
	Facility        facility.Handler
	Cart            cart.Handler
	Booking         booking.Handler
	FacilityBooking facilitybooking.Handler
	Order           order.Handler
	Payment         payment.Handler
	History         history.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
	AppMiddleware  middleware.AppMiddleware
	AuthRole       middleware.AuthRole
	Config         *config.Config
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Use(chiMiddleware.RequestID)
	router.Use(chiMiddleware.RealIP)
	router.Use(chiMiddleware.Recoverer)

	if cfg := r.Config.App.CORS; cfg.Enable {
		router.Use(cors.Handler(cors.Options{
			AllowedOrigins:   cfg.AllowedOrigins,
			AllowedMethods:   cfg.AllowedMethods,
			AllowedHeaders:   cfg.AllowedHeaders,
			AllowCredentials: cfg.AllowCredentials,
			MaxAge:           cfg.MaxAgeSeconds,
		}))
	}

	router.Use(r.AppMiddleware.Tracing)
	router.Use(r.AppMiddleware.RateLimit())

	router.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	router.Route("/v1", func(routerGroup chi.Router) {
		routerGroup.Use(r.AuthRole.APIKey)
		routerGroup.Use(r.AuthRole.Auth)
		routerGroup.Use(r.AuthRole.RBAC)

		r.DomainHandlers.Auth.Router(routerGroup)
		r.DomainHandlers.Room.Router(routerGroup)
		r.DomainHandlers.Food.Router(routerGroup)
		r.DomainHandlers.Facility.Router(routerGroup)
		r.DomainHandlers.Cart.Router(routerGroup)
		r.DomainHandlers.Booking.Router(routerGroup)
		r.DomainHandlers.FacilityBooking.Router(routerGroup)
		r.DomainHandlers.Order.Router(routerGroup)
		r.DomainHandlers.Payment.Router(routerGroup)
		r.DomainHandlers.History.Router(routerGroup)
	})
}

func New(domainHandlers DomainHandlers, appMiddleware middleware.AppMiddleware, authRole middleware.AuthRole, cfg *config.Config) Router {
	return Router{
		DomainHandlers: domainHandlers,
		AppMiddleware:  appMiddleware,
		AuthRole:       authRole,
		Config:         cfg,
	}
}
