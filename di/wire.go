//go:build wireinject
// +build wireinject

package di

import (
	"innkeep/config"
	"innkeep/infras/jwt"
	"innkeep/infras/kafka"
	"innkeep/infras/otel"
	"innkeep/infras/pms"
	"innkeep/infras/postgres"
	"innkeep/infras/redis"
	"innkeep/internal/notifier"
	"innkeep/shared/cache"
	"innkeep/transport/http"
	"innkeep/transport/http/middleware"
	"innkeep/transport/http/router"

	availabilityService "innkeep/internal/domains/availability/service"
	blockRepository "innkeep/internal/domains/block/repository"
	blockService "innkeep/internal/domains/block/service"
	bookingRepository "innkeep/internal/domains/booking/repository"
	bookingService "innkeep/internal/domains/booking/service"
	eventService "innkeep/internal/domains/event/service"
	guestRepository "innkeep/internal/domains/guest/repository"
	roomRepository "innkeep/internal/domains/room/repository"
	roomService "innkeep/internal/domains/room/service"
	syncService "innkeep/internal/domains/sync/service"
	synclogRepository "innkeep/internal/domains/synclog/repository"

	availabilityHandler "innkeep/internal/handlers/availability"
	blockHandler "innkeep/internal/handlers/block"
	bookingHandler "innkeep/internal/handlers/booking"
	roomHandler "innkeep/internal/handlers/room"
	syncHandler "innkeep/internal/handlers/sync"
	webhookHandler "innkeep/internal/handlers/webhook"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	otel.New,
	redis.New,
	jwt.New,
	kafka.New,
	pms.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
	notifier.New,
)

var repositories = wire.NewSet(
	roomRepository.New,
	guestRepository.New,
	blockRepository.New,
	bookingRepository.New,
	synclogRepository.New,
)

var services = wire.NewSet(
	roomService.New,
	blockService.New,
	bookingService.New,
	availabilityService.New,
	syncService.New,
	syncService.NewRunner,
	eventService.New,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	availabilityHandler.New,
	blockHandler.New,
	bookingHandler.New,
	roomHandler.New,
	syncHandler.New,
	webhookHandler.New,
	router.New,
)

func InitializeApp() (*App, error) {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		repositories,
		services,
		routing,
		http.New,
		wire.Struct(new(App), "*"),
	)

	return &App{}, nil
}
