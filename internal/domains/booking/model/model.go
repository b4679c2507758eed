package model

import (
	"time"

	availabilityModel "github.com/SarfarazSingh/HighfieldVilla/internal/domains/availability/model"
	"github.com/SarfarazSingh/HighfieldVilla/shared/model"
)

const (
	TableName  = "bookings"
	EntityName = "booking"

	FieldID        = "id"
	FieldGuestName = "guest_name"
	FieldContactNo = "contact_no"
	FieldCheckIn   = "check_in"
	FieldCheckOut  = "check_out"
	FieldNumRooms  = "num_rooms"
	FieldRoomType  = "room_type"
	FieldAdvance   = "advance"
)

type Booking struct {
	ID        string    `db:"id"`
	GuestName string    `db:"guest_name"`
	ContactNo string    `db:"contact_no"`
	CheckIn   time.Time `db:"check_in"`
	CheckOut  time.Time `db:"check_out"`
	NumRooms  int       `db:"num_rooms"`
	RoomType  string    `db:"room_type"`
	Advance   float64   `db:"advance"`
	model.Metadata
}

// ToStay projects the booking into the slice of it the availability engine
// reasons about.
func (b Booking) ToStay() availabilityModel.Stay {
	return availabilityModel.Stay{
		ID:       b.ID,
		RoomType: availabilityModel.RoomType(b.RoomType),
		NumRooms: b.NumRooms,
		CheckIn:  b.CheckIn,
		CheckOut: b.CheckOut,
	}
}
