package dto

import (
	"fmt"
	"time"

	"github.com/SarfarazSingh/HighfieldVilla/internal/domains/booking/model"
	"github.com/SarfarazSingh/HighfieldVilla/shared"
	"github.com/SarfarazSingh/HighfieldVilla/shared/constant"
	gDto "github.com/SarfarazSingh/HighfieldVilla/shared/dto"
	gModel "github.com/SarfarazSingh/HighfieldVilla/shared/model"
	"github.com/SarfarazSingh/HighfieldVilla/shared/timezone"

	"github.com/google/uuid"
)

type CreateBookingRequest struct {
	GuestName string  `json:"guest_name" validate:"required,max=100"`
	ContactNo string  `json:"contact_no" validate:"omitempty,max=20"`
	CheckIn   string  `json:"check_in"   validate:"required,day"`
	CheckOut  string  `json:"check_out"  validate:"required,day"`
	NumRooms  int     `json:"num_rooms"  validate:"required,min=1"`
	RoomType  string  `json:"room_type"  validate:"required,oneof=deluxe super_deluxe"`
	Advance   float64 `json:"advance"    validate:"omitempty,gte=0"`
}

func (c *CreateBookingRequest) ToModel(user string) (model.Booking, error) {
	checkIn, err := time.Parse(constant.DayFormat, c.CheckIn)
	if err != nil {
		return model.Booking{}, err
	}

	checkOut, err := time.Parse(constant.DayFormat, c.CheckOut)
	if err != nil {
		return model.Booking{}, err
	}

	return model.Booking{
		ID:        uuid.NewString(),
		GuestName: c.GuestName,
		ContactNo: c.ContactNo,
		CheckIn:   checkIn,
		CheckOut:  checkOut,
		NumRooms:  c.NumRooms,
		RoomType:  c.RoomType,
		Advance:   c.Advance,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}, nil
}

// UpdateBookingRequest carries the editable fields of a booking. The date
// fields have no db tag on purpose, the service parses them and re-runs the
// admission check before they reach the store.
type UpdateBookingRequest struct {
	GuestName string  `db:"guest_name" json:"guest_name" validate:"omitempty,max=100"`
	ContactNo string  `db:"contact_no" json:"contact_no" validate:"omitempty,max=20"`
	CheckIn   string  `json:"check_in"  validate:"omitempty,day"`
	CheckOut  string  `json:"check_out" validate:"omitempty,day"`
	NumRooms  int     `db:"num_rooms"  json:"num_rooms" validate:"omitempty,min=1"`
	RoomType  string  `db:"room_type"  json:"room_type" validate:"omitempty,oneof=deluxe super_deluxe"`
	Advance   float64 `db:"advance"    json:"advance"   validate:"omitempty,gte=0"`
}

// ApplyTo merges the request onto the current booking and returns the
// candidate the admission check must approve.
func (u *UpdateBookingRequest) ApplyTo(current model.Booking) (model.Booking, error) {
	candidate := current

	if u.GuestName != constant.Empty {
		candidate.GuestName = u.GuestName
	}

	if u.ContactNo != constant.Empty {
		candidate.ContactNo = u.ContactNo
	}

	if u.CheckIn != constant.Empty {
		checkIn, err := time.Parse(constant.DayFormat, u.CheckIn)
		if err != nil {
			return model.Booking{}, err
		}

		candidate.CheckIn = checkIn
	}

	if u.CheckOut != constant.Empty {
		checkOut, err := time.Parse(constant.DayFormat, u.CheckOut)
		if err != nil {
			return model.Booking{}, err
		}

		candidate.CheckOut = checkOut
	}

	if u.NumRooms > 0 {
		candidate.NumRooms = u.NumRooms
	}

	if u.RoomType != constant.Empty {
		candidate.RoomType = u.RoomType
	}

	if u.Advance > 0 {
		candidate.Advance = u.Advance
	}

	return candidate, nil
}

type BookingResponse struct {
	ID        string  `json:"id"`
	GuestName string  `json:"guest_name"`
	ContactNo string  `json:"contact_no"`
	CheckIn   string  `json:"check_in"`
	CheckOut  string  `json:"check_out"`
	NumRooms  int     `json:"num_rooms"`
	RoomType  string  `json:"room_type"`
	Advance   float64 `json:"advance"`
	gDto.Metadata
}

func (r *BookingResponse) FromModel(model model.Booking) {
	r.ID = model.ID
	r.GuestName = model.GuestName
	r.ContactNo = model.ContactNo
	r.CheckIn = model.CheckIn.Format(constant.DayFormat)
	r.CheckOut = model.CheckOut.Format(constant.DayFormat)
	r.NumRooms = model.NumRooms
	r.RoomType = model.RoomType
	r.Advance = model.Advance
	r.Metadata.FromModel(model.Metadata)
}

type GetBookingsResponse struct {
	Bookings  []BookingResponse `json:"bookings"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetBookingsResponse) FromModels(models []model.Booking, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Bookings = make([]BookingResponse, len(models))
	for i, mod := range models {
		r.Bookings[i].FromModel(mod)
	}
}

// CalendarEvent is a booking shaped for the UI calendar. End carries the
// checkout day and is exclusive, matching the night expansion.
type CalendarEvent struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Start    string `json:"start"`
	End      string `json:"end"`
	RoomType string `json:"room_type"`
	NumRooms int    `json:"num_rooms"`
}

func (e *CalendarEvent) FromModel(model model.Booking) {
	e.ID = model.ID
	e.Title = fmt.Sprintf("%s (%dx %s)", model.GuestName, model.NumRooms, model.RoomType)
	e.Start = model.CheckIn.Format(constant.DayFormat)
	e.End = model.CheckOut.Format(constant.DayFormat)
	e.RoomType = model.RoomType
	e.NumRooms = model.NumRooms
}

type GetCalendarEventsResponse struct {
	Events []CalendarEvent `json:"events"`
}

func (r *GetCalendarEventsResponse) FromModels(models []model.Booking) {
	r.Events = make([]CalendarEvent, len(models))
	for i, mod := range models {
		r.Events[i].FromModel(mod)
	}
}

// BookingEvent is the change notification published to Kafka whenever a
// booking is created, updated or deleted.
type BookingEvent struct {
	Action    string  `json:"action"`
	BookingID string  `json:"booking_id"`
	GuestName string  `json:"guest_name"`
	CheckIn   string  `json:"check_in"`
	CheckOut  string  `json:"check_out"`
	NumRooms  int     `json:"num_rooms"`
	RoomType  string  `json:"room_type"`
	Advance   float64 `json:"advance"`
	Actor     string  `json:"actor"`
	At        string  `json:"at"`
}

const (
	EventActionCreated = "created"
	EventActionUpdated = "updated"
	EventActionDeleted = "deleted"
)

func NewBookingEvent(action string, booking model.Booking, actor string) BookingEvent {
	return BookingEvent{
		Action:    action,
		BookingID: booking.ID,
		GuestName: booking.GuestName,
		CheckIn:   booking.CheckIn.Format(constant.DayFormat),
		CheckOut:  booking.CheckOut.Format(constant.DayFormat),
		NumRooms:  booking.NumRooms,
		RoomType:  booking.RoomType,
		Advance:   booking.Advance,
		Actor:     actor,
		At:        timezone.Format(timezone.Now(), constant.DateFormat),
	}
}
