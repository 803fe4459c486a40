// Code generated by Wire. DO NOT EDIT.

//go:generate go run -mod=mod github.com/google/wire/cmd/wire
//go:build !wireinject
// +build !wireinject

package di

import (
	"github.com/google/wire"
	"innkeep/config"
	"innkeep/infras/jwt"
	"innkeep/infras/kafka"
	"innkeep/infras/otel"
	"innkeep/infras/pms"
	"innkeep/infras/postgres"
	"innkeep/infras/redis"
	"innkeep/internal/domains/availability/service"
	repository3 "innkeep/internal/domains/block/repository"
	service2 "innkeep/internal/domains/block/service"
	repository2 "innkeep/internal/domains/booking/repository"
	service4 "innkeep/internal/domains/booking/service"
	service6 "innkeep/internal/domains/event/service"
	repository4 "innkeep/internal/domains/guest/repository"
	"innkeep/internal/domains/room/repository"
	service5 "innkeep/internal/domains/room/service"
	service3 "innkeep/internal/domains/sync/service"
	repository5 "innkeep/internal/domains/synclog/repository"
	"innkeep/internal/handlers/availability"
	"innkeep/internal/handlers/block"
	"innkeep/internal/handlers/booking"
	"innkeep/internal/handlers/room"
	"innkeep/internal/handlers/sync"
	"innkeep/internal/handlers/webhook"
	"innkeep/internal/notifier"
	"innkeep/shared/cache"
	"innkeep/transport/http"
	"innkeep/transport/http/middleware"
	"innkeep/transport/http/router"
)

// Injectors from wire.go:

func InitializeApp() (*App, error) {
	configConfig := config.Get()
	connection := postgres.New(configConfig)
	otelOtel := otel.New(configConfig)
	repositoryRoom := repository.New(connection, otelOtel)
	repositoryBooking := repository2.New(connection, otelOtel, configConfig)
	roomBlock := repository3.New(connection, otelOtel)
	client := redis.New(configConfig)
	redisCache := cache.NewRedisCache(client, otelOtel)
	serviceAvailability := service.New(repositoryRoom, repositoryBooking, roomBlock, configConfig, redisCache, otelOtel)
	handler := availability.New(serviceAvailability, otelOtel)
	kafkaClient := kafka.New(configConfig)
	notifierNotifier := notifier.New(configConfig, kafkaClient)
	serviceRoomBlock := service2.New(roomBlock, repositoryBooking, repositoryRoom, notifierNotifier, configConfig, redisCache, otelOtel)
	blockHandler := block.New(serviceRoomBlock, otelOtel)
	guest := repository4.New(connection, otelOtel)
	adapter, err := pms.New(configConfig)
	if err != nil {
		return nil, err
	}
	syncLog := repository5.New(connection, otelOtel)
	serviceSync := service3.New(adapter, repositoryBooking, repositoryRoom, guest, syncLog, configConfig, otelOtel)
	serviceBooking := service4.New(repositoryBooking, repositoryRoom, guest, roomBlock, serviceSync, notifierNotifier, configConfig, redisCache, otelOtel)
	bookingHandler := booking.New(serviceBooking, otelOtel)
	serviceRoom := service5.New(repositoryRoom, notifierNotifier, configConfig, redisCache, otelOtel)
	roomHandler := room.New(serviceRoom, otelOtel)
	syncHandler := sync.New(serviceSync, otelOtel)
	event := service6.New(repositoryBooking, repositoryRoom, syncLog, serviceSync, notifierNotifier, otelOtel)
	webhookHandler := webhook.New(event, configConfig, otelOtel)
	domainHandlers := router.DomainHandlers{
		Availability: handler,
		Block:        blockHandler,
		Booking:      bookingHandler,
		Room:         roomHandler,
		Sync:         syncHandler,
		Webhook:      webhookHandler,
	}
	appMiddleware := middleware.NewAppMiddleware(otelOtel, configConfig, redisCache)
	jwtJWT := jwt.New(configConfig)
	auth := middleware.NewAuthMiddleware(jwtJWT, otelOtel)
	routerRouter := router.New(domainHandlers, appMiddleware, auth, configConfig)
	httpHTTP := http.New(configConfig, routerRouter)
	runner := service3.NewRunner(serviceSync, configConfig)
	app := &App{
		HTTP:       httpHTTP,
		SyncRunner: runner,
	}
	return app, nil
}

// wire.go:

var configurations = wire.NewSet(config.Get)

var infrastructures = wire.NewSet(postgres.New, otel.New, redis.New, jwt.New, kafka.New, pms.New)

var middlewares = wire.NewSet(middleware.NewAppMiddleware, middleware.NewAuthMiddleware)

var sharedHelpers = wire.NewSet(cache.NewRedisCache, notifier.New)

var repositories = wire.NewSet(repository.New, repository4.New, repository3.New, repository2.New, repository5.New)

var services = wire.NewSet(service5.New, service2.New, service4.New, service.New, service3.New, service3.NewRunner, service6.New)

var routing = wire.NewSet(wire.Struct(new(router.DomainHandlers), "*"), availability.New, block.New, booking.New, room.New, sync.New, webhook.New, router.New)
