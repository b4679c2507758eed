// Code generated by Wire. DO NOT EDIT.

//go:generate go run -mod=mod github.com/google/wire/cmd/wire
//go:build !wireinject
// +build !wireinject

package di

import (
	"github.com/SarfarazSingh/HighfieldVilla/config"
	"github.com/SarfarazSingh/HighfieldVilla/infras/kafka"
	"github.com/SarfarazSingh/HighfieldVilla/infras/otel"
	"github.com/SarfarazSingh/HighfieldVilla/infras/postgres"
	"github.com/SarfarazSingh/HighfieldVilla/infras/redis"
	service2 "github.com/SarfarazSingh/HighfieldVilla/internal/domains/availability/service"
	"github.com/SarfarazSingh/HighfieldVilla/internal/domains/booking/repository"
	"github.com/SarfarazSingh/HighfieldVilla/internal/domains/booking/service"
	"github.com/SarfarazSingh/HighfieldVilla/internal/handlers/availability"
	"github.com/SarfarazSingh/HighfieldVilla/internal/handlers/booking"
	"github.com/SarfarazSingh/HighfieldVilla/internal/handlers/health"
	"github.com/SarfarazSingh/HighfieldVilla/shared/cache"
	"github.com/SarfarazSingh/HighfieldVilla/transport/http"
	"github.com/SarfarazSingh/HighfieldVilla/transport/http/middleware"
	"github.com/SarfarazSingh/HighfieldVilla/transport/http/router"
	"github.com/google/wire"
)

// Injectors from wire.go:

func InitializeService() *http.HTTP {
	configConfig := config.Get()
	connection := postgres.New(configConfig)
	otelOtel := otel.New(configConfig)
	repositoryBooking := repository.New(connection, otelOtel)
	client := redis.New(configConfig)
	redisCache := cache.NewRedisCache(client, otelOtel)
	kafkaClient := kafka.New(configConfig)
	serviceBooking := service.New(repositoryBooking, configConfig, redisCache, kafkaClient, otelOtel)
	handler := booking.New(serviceBooking, otelOtel)
	serviceAvailability := service2.New(repositoryBooking, configConfig, otelOtel)
	availabilityHandler := availability.New(serviceAvailability, otelOtel)
	healthHandler := health.New(connection)
	domainHandlers := router.DomainHandlers{
		Booking:      handler,
		Availability: availabilityHandler,
		Health:       healthHandler,
	}
	routerRouter := router.New(domainHandlers)
	appMiddleware := middleware.NewAppMiddleware(otelOtel, configConfig, redisCache)
	httpHTTP := http.New(configConfig, routerRouter, appMiddleware)
	return httpHTTP
}

// wire.go:

var configurations = wire.NewSet(config.Get)

var infrastructures = wire.NewSet(postgres.New, otel.New, redis.New, kafka.New)

var middlewares = wire.NewSet(middleware.NewAppMiddleware)

var sharedHelpers = wire.NewSet(cache.NewRedisCache)

var bookingDomain = wire.NewSet(repository.New, service.New)

var availabilityDomain = wire.NewSet(service2.New)

var domains = wire.NewSet(
	bookingDomain,
	availabilityDomain,
)

var routing = wire.NewSet(wire.Struct(new(router.DomainHandlers), "*"), booking.New, availability.New, health.New, router.New)
