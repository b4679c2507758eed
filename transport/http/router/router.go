package router

import (
	"github.com/SarfarazSingh/HighfieldVilla/internal/handlers/availability"
	"github.com/SarfarazSingh/HighfieldVilla/internal/handlers/booking"
	"github.com/SarfarazSingh/HighfieldVilla/internal/handlers/health"

	"github.com/go-chi/chi/v5"
)

type DomainHandlers struct {
	Booking      booking.Handler
	Availability availability.Handler
	Health       health.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
}

func (r *Router) SetupRoutes(router chi.Router) {
	r.DomainHandlers.Health.Router(router)

	router.Route("/v1", func(routerGroup chi.Router) {
		r.DomainHandlers.Booking.Router(routerGroup)
		r.DomainHandlers.Availability.Router(routerGroup)
	})
}

func New(domainHandlers DomainHandlers) Router {
	return Router{
		DomainHandlers: domainHandlers,
	}
}
