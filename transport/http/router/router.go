package router

import (
	"innkeep/config"
	"innkeep/internal/handlers/availability"
	"innkeep/internal/handlers/block"
	"innkeep/internal/handlers/booking"
	"innkeep/internal/handlers/room"
	syncHandler "innkeep/internal/handlers/sync"
	"innkeep/internal/handlers/webhook"
	"innkeep/shared/constant"
	"innkeep/transport/http/middleware"

	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger"
)

type DomainHandlers struct {
	Availability availability.Handler
	Block        block.Handler
	Booking      booking.Handler
	Room         room.Handler
	Sync         syncHandler.Handler
	Webhook      webhook.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
	App            middleware.AppMiddleware
	Auth           middleware.Auth
	Cfg            *config.Config
}

// SetupRoutes mounts the four surfaces: the public availability API, the
// staff API behind JWT auth, the cron surface behind the shared token, and
// the unauthenticated-but-signed webhook receiver.
func (r *Router) SetupRoutes(router chi.Router) {
	router.Use(r.App.Tracing)
	router.Use(r.App.RateLimit())

	router.Get("/swagger/*", httpSwagger.Handler())

	router.Route("/v1", func(routerGroup chi.Router) {
		r.DomainHandlers.Availability.Router(routerGroup)
		r.DomainHandlers.Sync.Router(routerGroup)

		routerGroup.Group(func(authenticated chi.Router) {
			authenticated.Use(r.Auth.Auth)
			authenticated.Use(r.Auth.RequireRole(constant.RoleAdmin, constant.RoleStaff))

			r.DomainHandlers.Room.Router(authenticated)
			r.DomainHandlers.Booking.Router(authenticated)
			r.DomainHandlers.Block.Router(authenticated)
		})
	})

	router.Route("/cron", func(routerGroup chi.Router) {
		routerGroup.Use(middleware.CronToken(r.Cfg))

		r.DomainHandlers.Sync.CronRouter(routerGroup)
	})

	r.DomainHandlers.Webhook.Router(router)
}

func New(domainHandlers DomainHandlers, app middleware.AppMiddleware, auth middleware.Auth, cfg *config.Config) Router {
	return Router{
		DomainHandlers: domainHandlers,
		App:            app,
		Auth:           auth,
		Cfg:            cfg,
	}
}
