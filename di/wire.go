//go:build wireinject
// +build wireinject

package di

import (
	"github.com/SarfarazSingh/HighfieldVilla/config"
	"github.com/SarfarazSingh/HighfieldVilla/infras/kafka"
	"github.com/SarfarazSingh/HighfieldVilla/infras/otel"
	"github.com/SarfarazSingh/HighfieldVilla/infras/postgres"
	"github.com/SarfarazSingh/HighfieldVilla/infras/redis"
	"github.com/SarfarazSingh/HighfieldVilla/shared/cache"
	"github.com/SarfarazSingh/HighfieldVilla/transport/http"
	"github.com/SarfarazSingh/HighfieldVilla/transport/http/middleware"
	"github.com/SarfarazSingh/HighfieldVilla/transport/http/router"

	availabilityService "github.com/SarfarazSingh/HighfieldVilla/internal/domains/availability/service"
	bookingRepository "github.com/SarfarazSingh/HighfieldVilla/internal/domains/booking/repository"
	bookingService "github.com/SarfarazSingh/HighfieldVilla/internal/domains/booking/service"
	availabilityHandler "github.com/SarfarazSingh/HighfieldVilla/internal/handlers/availability"
	bookingHandler "github.com/SarfarazSingh/HighfieldVilla/internal/handlers/booking"
	healthHandler "github.com/SarfarazSingh/HighfieldVilla/internal/handlers/health"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	otel.New,
	redis.New,
	kafka.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var bookingDomain = wire.NewSet(
	bookingRepository.New,
	bookingService.New,
)

var availabilityDomain = wire.NewSet(
	availabilityService.New,
)

var domains = wire.NewSet(
	bookingDomain,
	availabilityDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	bookingHandler.New,
	availabilityHandler.New,
	healthHandler.New,
	router.New,
)

func InitializeService() *http.HTTP {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		domains,
		routing,
		http.New,
	)

	return &http.HTTP{}
}
