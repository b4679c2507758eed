package dto

import (
	"github.com/SarfarazSingh/HighfieldVilla/internal/domains/availability/model"
)

// CheckAvailabilityRequest asks whether a candidate stay could be admitted.
// BookingID is set when re-validating an edit, so the booking's own rooms are
// not counted against it.
type CheckAvailabilityRequest struct {
	RoomType  string `json:"room_type"  validate:"required,oneof=deluxe super_deluxe"`
	NumRooms  int    `json:"num_rooms"  validate:"required,min=1"`
	CheckIn   string `json:"check_in"   validate:"required,day"`
	CheckOut  string `json:"check_out"  validate:"required,day"`
	BookingID string `json:"booking_id" validate:"omitempty"`
}

type CheckAvailabilityResponse struct {
	Available bool   `json:"available"`
	RoomType  string `json:"room_type"`
	NumRooms  int    `json:"num_rooms"`
	CheckIn   string `json:"check_in"`
	CheckOut  string `json:"check_out"`
}

type RoomTypeAvailability struct {
	RoomType string `json:"room_type"`
	Capacity int    `json:"capacity"`
	Booked   int    `json:"booked"`
	Free     int    `json:"free"`
}

type AvailabilityByDateResponse struct {
	Date      string                 `json:"date"`
	RoomTypes []RoomTypeAvailability `json:"room_types"`
}

func (r *AvailabilityByDateResponse) FromFree(date string, free map[model.RoomType]int, capacities model.Capacities) {
	r.Date = date
	r.RoomTypes = make([]RoomTypeAvailability, 0, len(model.RoomTypes))

	for _, roomType := range model.RoomTypes {
		capacity := capacities[roomType]

		r.RoomTypes = append(r.RoomTypes, RoomTypeAvailability{
			RoomType: string(roomType),
			Capacity: capacity,
			Booked:   capacity - free[roomType],
			Free:     free[roomType],
		})
	}
}

// OccupiedDatesResponse lists the nights a stay occupies, checkout excluded.
type OccupiedDatesResponse struct {
	CheckIn  string   `json:"check_in"`
	CheckOut string   `json:"check_out"`
	Dates    []string `json:"dates"`
}
