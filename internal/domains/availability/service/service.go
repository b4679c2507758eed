package service

import (
	"context"
	"time"

	"github.com/SarfarazSingh/HighfieldVilla/config"
	"github.com/SarfarazSingh/HighfieldVilla/infras/otel"
	"github.com/SarfarazSingh/HighfieldVilla/internal/domains/availability/engine"
	"github.com/SarfarazSingh/HighfieldVilla/internal/domains/availability/model"
	"github.com/SarfarazSingh/HighfieldVilla/internal/domains/availability/model/dto"
	bookingRepo "github.com/SarfarazSingh/HighfieldVilla/internal/domains/booking/repository"
	"github.com/SarfarazSingh/HighfieldVilla/shared/constant"
	gDto "github.com/SarfarazSingh/HighfieldVilla/shared/dto"
	"github.com/SarfarazSingh/HighfieldVilla/shared/failure"

	"github.com/rs/zerolog/log"
)

type Availability interface {
	Check(ctx context.Context, req dto.CheckAvailabilityRequest) (dto.CheckAvailabilityResponse, error)
	ByDate(ctx context.Context, date string) (dto.AvailabilityByDateResponse, error)
	OccupiedDates(ctx context.Context, checkIn, checkOut string) (dto.OccupiedDatesResponse, error)
}

type serviceImpl struct {
	repo       bookingRepo.Booking
	cfg        *config.Config
	otel       otel.Otel
	capacities model.Capacities
}

func New(repo bookingRepo.Booking, cfg *config.Config, otel otel.Otel) Availability {
	return &serviceImpl{
		repo:       repo,
		cfg:        cfg,
		otel:       otel,
		capacities: model.CapacitiesFromConfig(cfg),
	}
}

// snapshot always reads the store directly. Availability answers are only as
// good as the data behind them, so they never come from the cache, and a
// failed read turns into an explicit refusal rather than a guess.
func (s *serviceImpl) snapshot(ctx context.Context) ([]model.Stay, error) {
	bookings, err := s.repo.GetAll(ctx, gDto.QueryParams{}, gDto.FilterGroup{})
	if err != nil {
		log.Error().Err(err).Msg("failed to load booking snapshot")

		return nil, failure.StoreUnavailable // nolint:wrapcheck
	}

	stays := make([]model.Stay, len(bookings))
	for i, booking := range bookings {
		stays[i] = booking.ToStay()
	}

	return stays, nil
}

func (s *serviceImpl) Check(ctx context.Context, req dto.CheckAvailabilityRequest) (res dto.CheckAvailabilityResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Check")
	defer scope.End()
	defer scope.TraceIfError(err)

	checkIn, err := time.Parse(constant.DayFormat, req.CheckIn)
	if err != nil {
		return res, failure.BadRequestFromString("check_in must be a valid date in YYYY-MM-DD format") // nolint:wrapcheck
	}

	checkOut, err := time.Parse(constant.DayFormat, req.CheckOut)
	if err != nil {
		return res, failure.BadRequestFromString("check_out must be a valid date in YYYY-MM-DD format") // nolint:wrapcheck
	}

	stays, err := s.snapshot(ctx)
	if err != nil {
		return res, err
	}

	candidate := model.Stay{
		ID:       req.BookingID,
		RoomType: model.RoomType(req.RoomType),
		NumRooms: req.NumRooms,
		CheckIn:  checkIn,
		CheckOut: checkOut,
	}

	res = dto.CheckAvailabilityResponse{
		Available: engine.Check(stays, candidate, s.capacities),
		RoomType:  req.RoomType,
		NumRooms:  req.NumRooms,
		CheckIn:   req.CheckIn,
		CheckOut:  req.CheckOut,
	}

	return res, nil
}

func (s *serviceImpl) ByDate(ctx context.Context, date string) (res dto.AvailabilityByDateResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ByDate")
	defer scope.End()
	defer scope.TraceIfError(err)

	if _, err = time.Parse(constant.DayFormat, date); err != nil {
		return res, failure.BadRequestFromString("date must be a valid date in YYYY-MM-DD format") // nolint:wrapcheck
	}

	stays, err := s.snapshot(ctx)
	if err != nil {
		return res, err
	}

	free := engine.FreeByDate(stays, date, s.capacities)
	res.FromFree(date, free, s.capacities)

	return res, nil
}

func (s *serviceImpl) OccupiedDates(ctx context.Context, checkIn, checkOut string) (res dto.OccupiedDatesResponse, err error) {
	_, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".OccupiedDates")
	defer scope.End()
	defer scope.TraceIfError(err)

	start, err := time.Parse(constant.DayFormat, checkIn)
	if err != nil {
		return res, failure.BadRequestFromString("check_in must be a valid date in YYYY-MM-DD format") // nolint:wrapcheck
	}

	end, err := time.Parse(constant.DayFormat, checkOut)
	if err != nil {
		return res, failure.BadRequestFromString("check_out must be a valid date in YYYY-MM-DD format") // nolint:wrapcheck
	}

	res = dto.OccupiedDatesResponse{
		CheckIn:  checkIn,
		CheckOut: checkOut,
		Dates:    engine.Nights(start, end),
	}

	return res, nil
}
