package availability

import (
	"net/http"

	"github.com/SarfarazSingh/HighfieldVilla/infras/otel"
	"github.com/SarfarazSingh/HighfieldVilla/internal/domains/availability/model/dto"
	"github.com/SarfarazSingh/HighfieldVilla/internal/domains/availability/service"
	"github.com/SarfarazSingh/HighfieldVilla/shared/constant"
	"github.com/SarfarazSingh/HighfieldVilla/shared/validator"
	"github.com/SarfarazSingh/HighfieldVilla/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Availability
	otel    otel.Otel
}

func New(service service.Availability, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/availability", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetAvailabilityByDate)
		routerGroup.Post("/check", handler.CheckAvailability)
		routerGroup.Get("/occupied", handler.GetOccupiedDates)
	})
}

// GetAvailabilityByDate returns the free room count per room type for a date.
func (handler *Handler) GetAvailabilityByDate(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetAvailabilityByDate")
	defer scope.End()

	date := r.URL.Query().Get(constant.RequestParamDate)

	availability, err := handler.service.ByDate(ctx, date)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get availability by date")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Availability retrieved successfully")

	response.WithJSON(w, http.StatusOK, availability)
}

// CheckAvailability answers whether a candidate stay could be admitted right
// now. The verdict is advisory, creation re-checks against a fresh snapshot.
func (handler *Handler) CheckAvailability(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CheckAvailability")
	defer scope.End()

	req := dto.CheckAvailabilityRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	verdict, err := handler.service.Check(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to check availability")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Availability check completed")

	response.WithJSON(w, http.StatusOK, verdict)
}

// GetOccupiedDates expands a stay into the nights it occupies.
func (handler *Handler) GetOccupiedDates(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetOccupiedDates")
	defer scope.End()

	checkIn := r.URL.Query().Get(constant.RequestParamCheckIn)
	checkOut := r.URL.Query().Get(constant.RequestParamCheckOut)

	dates, err := handler.service.OccupiedDates(ctx, checkIn, checkOut)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get occupied dates")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Occupied dates retrieved successfully")

	response.WithJSON(w, http.StatusOK, dates)
}
