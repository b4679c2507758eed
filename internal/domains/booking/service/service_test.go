package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/SarfarazSingh/HighfieldVilla/config"
	kafkaMocks "github.com/SarfarazSingh/HighfieldVilla/infras/kafka/mocks"
	"github.com/SarfarazSingh/HighfieldVilla/infras/otel/mocks"
	bookingMocks "github.com/SarfarazSingh/HighfieldVilla/internal/domains/booking/mocks"
	"github.com/SarfarazSingh/HighfieldVilla/internal/domains/booking/model"
	"github.com/SarfarazSingh/HighfieldVilla/internal/domains/booking/model/dto"
	"github.com/SarfarazSingh/HighfieldVilla/internal/domains/booking/service"
	cacheMocks "github.com/SarfarazSingh/HighfieldVilla/shared/cache/mocks"
	"github.com/SarfarazSingh/HighfieldVilla/shared/constant"
	gDto "github.com/SarfarazSingh/HighfieldVilla/shared/dto"
	"github.com/SarfarazSingh/HighfieldVilla/shared/failure"
)

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Cache.TTL = 3600
	cfg.Property.DeluxeCapacity = 3
	cfg.Property.SuperDeluxeCapacity = 2
	cfg.Kafka.BookingTopic = "booking-events"

	return cfg
}

func mustDay(t *testing.T, value string) time.Time {
	t.Helper()

	parsed, err := time.Parse(constant.DayFormat, value)
	if err != nil {
		t.Fatalf("failed to parse day %s: %v", value, err)
	}

	return parsed
}

func existingBooking(t *testing.T, id, roomType string, numRooms int, checkIn, checkOut string) model.Booking {
	t.Helper()

	return model.Booking{
		ID:        id,
		GuestName: "Asha Verma",
		RoomType:  roomType,
		NumRooms:  numRooms,
		CheckIn:   mustDay(t, checkIn),
		CheckOut:  mustDay(t, checkOut),
	}
}

func TestBookingService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := bookingMocks.NewMockBooking(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockKafka := kafkaMocks.NewMockClient(ctrl)
	mockOtel := mocks.NewOtel()

	// Async cache invalidation and event publishing run off the request path.
	mockCache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockKafka.EXPECT().SendMessages(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	svc := service.New(mockRepo, testConfig(), mockCache, mockKafka, mockOtel)

	validReq := dto.CreateBookingRequest{
		GuestName: "Asha Verma",
		ContactNo: "9876543210",
		CheckIn:   "2024-01-10",
		CheckOut:  "2024-01-13",
		NumRooms:  2,
		RoomType:  "deluxe",
		Advance:   1500,
	}

	tests := []struct {
		name      string
		req       dto.CreateBookingRequest
		setupMock func()
		wantErr   error
	}{
		{
			name: "admitted into empty calendar",
			req:  validReq,
			setupMock: func() {
				mockRepo.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return([]model.Booking{}, nil)
				mockRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantErr: nil,
		},
		{
			name: "admitted alongside partial occupancy",
			req:  validReq,
			setupMock: func() {
				mockRepo.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return([]model.Booking{
						existingBooking(t, "b1", "deluxe", 1, "2024-01-09", "2024-01-12"),
					}, nil)
				mockRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantErr: nil,
		},
		{
			name: "rejected when a night is full",
			req:  validReq,
			setupMock: func() {
				mockRepo.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return([]model.Booking{
						existingBooking(t, "b1", "deluxe", 2, "2024-01-12", "2024-01-14"),
					}, nil)
			},
			wantErr: failure.NotAvailable,
		},
		{
			name: "other room type does not block",
			req:  validReq,
			setupMock: func() {
				mockRepo.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return([]model.Booking{
						existingBooking(t, "b1", "super_deluxe", 2, "2024-01-10", "2024-01-13"),
					}, nil)
				mockRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantErr: nil,
		},
		{
			name: "fails closed when the store read fails",
			req:  validReq,
			setupMock: func() {
				mockRepo.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, errors.New("connection refused"))
			},
			wantErr: failure.StoreUnavailable,
		},
		{
			name: "zero length stay is a bad request",
			req: dto.CreateBookingRequest{
				GuestName: "Asha Verma",
				CheckIn:   "2024-01-10",
				CheckOut:  "2024-01-10",
				NumRooms:  1,
				RoomType:  "deluxe",
			},
			setupMock: func() {},
			wantErr:   failure.BadRequestFromString("check_out must be after check_in"),
		},
		{
			name: "inverted range is a bad request",
			req: dto.CreateBookingRequest{
				GuestName: "Asha Verma",
				CheckIn:   "2024-01-13",
				CheckOut:  "2024-01-10",
				NumRooms:  1,
				RoomType:  "deluxe",
			},
			setupMock: func() {},
			wantErr:   failure.BadRequestFromString("check_out must be after check_in"),
		},
		{
			name: "repository error on insert",
			req:  validReq,
			setupMock: func() {
				mockRepo.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return([]model.Booking{}, nil)
				mockRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(errors.New("database error"))
			},
			wantErr: errors.New("failed to create booking: database error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			ctx := context.WithValue(context.Background(), constant.ContextKeyOperator, "frontdesk")
			res, err := svc.Create(ctx, tt.req)

			if tt.wantErr != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.wantErr.Error(), err.Error())
			} else {
				assert.NoError(t, err)
				assert.NotEmpty(t, res.ID)
				assert.Equal(t, tt.req.GuestName, res.GuestName)
			}
		})
	}
}

func TestBookingService_Update(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := bookingMocks.NewMockBooking(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockKafka := kafkaMocks.NewMockClient(ctrl)
	mockOtel := mocks.NewOtel()

	mockCache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockCache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockKafka.EXPECT().SendMessages(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	svc := service.New(mockRepo, testConfig(), mockCache, mockKafka, mockOtel)

	current := existingBooking(t, "b1", "super_deluxe", 2, "2024-01-10", "2024-01-13")

	tests := []struct {
		name      string
		req       dto.UpdateBookingRequest
		setupMock func()
		wantErr   error
	}{
		{
			name: "shifting dates ignores the booking's own rooms",
			req: dto.UpdateBookingRequest{
				CheckIn:  "2024-01-11",
				CheckOut: "2024-01-14",
			},
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(current, nil)
				// The snapshot still contains the booking being edited at
				// full super deluxe capacity.
				mockRepo.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return([]model.Booking{current}, nil)
				mockRepo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantErr: nil,
		},
		{
			name: "edit collides with another booking",
			req: dto.UpdateBookingRequest{
				CheckIn:  "2024-01-12",
				CheckOut: "2024-01-15",
			},
			setupMock: func() {
				edited := existingBooking(t, "b1", "super_deluxe", 1, "2024-01-10", "2024-01-13")

				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(edited, nil)
				mockRepo.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return([]model.Booking{
						edited,
						existingBooking(t, "b2", "super_deluxe", 2, "2024-01-13", "2024-01-16"),
					}, nil)
			},
			wantErr: failure.NotAvailable,
		},
		{
			name: "booking not found",
			req: dto.UpdateBookingRequest{
				GuestName: "Ravi Nair",
			},
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Booking{}, nil)
			},
			wantErr: failure.NotFound("booking not found"),
		},
		{
			name:      "empty update request",
			req:       dto.UpdateBookingRequest{},
			setupMock: func() {},
			wantErr:   failure.BadRequestFromString("update request cannot be empty"),
		},
		{
			name: "update shrinking to zero nights is a bad request",
			req: dto.UpdateBookingRequest{
				CheckOut: "2024-01-10",
			},
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(current, nil)
			},
			wantErr: failure.BadRequestFromString("check_out must be after check_in"),
		},
		{
			name: "fails closed when the store read fails",
			req: dto.UpdateBookingRequest{
				NumRooms: 1,
			},
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(current, nil)
				mockRepo.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, errors.New("connection refused"))
			},
			wantErr: failure.StoreUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			ctx := context.WithValue(context.Background(), constant.ContextKeyOperator, "frontdesk")
			err := svc.Update(ctx, tt.req, "b1")

			if tt.wantErr != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.wantErr.Error(), err.Error())
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestBookingService_Get(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := bookingMocks.NewMockBooking(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockKafka := kafkaMocks.NewMockClient(ctrl)
	mockOtel := mocks.NewOtel()

	mockCache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	svc := service.New(mockRepo, testConfig(), mockCache, mockKafka, mockOtel)

	t.Run("cache miss falls through to the store", func(t *testing.T) {
		mockCache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("cache miss"))
		mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(existingBooking(t, "b1", "deluxe", 1, "2024-01-10", "2024-01-12"), nil)

		res, err := svc.Get(context.Background(), "b1")

		assert.NoError(t, err)
		assert.Equal(t, "b1", res.ID)
		assert.Equal(t, "2024-01-10", res.CheckIn)
		assert.Equal(t, "2024-01-12", res.CheckOut)
	})

	t.Run("not found", func(t *testing.T) {
		mockCache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("cache miss"))
		mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.Booking{}, nil)

		_, err := svc.Get(context.Background(), "missing")

		assert.Error(t, err)
		assert.Equal(t, failure.NotFound("booking not found").Error(), err.Error())
	})
}

func TestBookingService_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := bookingMocks.NewMockBooking(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockKafka := kafkaMocks.NewMockClient(ctrl)
	mockOtel := mocks.NewOtel()

	mockCache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockCache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockKafka.EXPECT().SendMessages(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	svc := service.New(mockRepo, testConfig(), mockCache, mockKafka, mockOtel)

	t.Run("successful delete", func(t *testing.T) {
		mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(existingBooking(t, "b1", "deluxe", 1, "2024-01-10", "2024-01-12"), nil)
		mockRepo.EXPECT().
			Delete(gomock.Any(), gomock.Any()).
			Return(nil)

		err := svc.Delete(context.Background(), "b1")

		assert.NoError(t, err)
	})

	t.Run("not found", func(t *testing.T) {
		mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.Booking{}, nil)

		err := svc.Delete(context.Background(), "missing")

		assert.Error(t, err)
	})
}

func TestBookingService_GetAll(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := bookingMocks.NewMockBooking(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockKafka := kafkaMocks.NewMockClient(ctrl)
	mockOtel := mocks.NewOtel()

	mockCache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	svc := service.New(mockRepo, testConfig(), mockCache, mockKafka, mockOtel)

	params := gDto.QueryParams{Page: 1, Limit: 10}

	t.Run("cache miss loads from store", func(t *testing.T) {
		mockCache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("cache miss")).
			Times(2)
		mockRepo.EXPECT().
			Count(gomock.Any(), gomock.Any()).
			Return(2, nil)
		mockRepo.EXPECT().
			GetAll(gomock.Any(), params, gomock.Any()).
			Return([]model.Booking{
				existingBooking(t, "b1", "deluxe", 1, "2024-01-10", "2024-01-12"),
				existingBooking(t, "b2", "super_deluxe", 2, "2024-01-11", "2024-01-13"),
			}, nil)

		res, err := svc.GetAll(context.Background(), params, gDto.FilterGroup{})

		assert.NoError(t, err)
		assert.Len(t, res.Bookings, 2)
		assert.Equal(t, 2, res.TotalData)
		assert.Equal(t, 1, res.TotalPage)
	})
}
