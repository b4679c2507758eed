package dto

import (
	"testing"
	"time"

	"github.com/SarfarazSingh/HighfieldVilla/internal/domains/booking/model"
	gModel "github.com/SarfarazSingh/HighfieldVilla/shared/model"

	"github.com/stretchr/testify/assert"
)

func buildBooking(t *testing.T) model.Booking {
	t.Helper()

	checkIn, err := time.Parse(time.DateOnly, "2026-03-10")
	assert.NoError(t, err)

	checkOut, err := time.Parse(time.DateOnly, "2026-03-13")
	assert.NoError(t, err)

	return model.Booking{
		ID:        "b-1",
		GuestName: "Asha Verma",
		ContactNo: "9876543210",
		CheckIn:   checkIn,
		CheckOut:  checkOut,
		NumRooms:  2,
		RoomType:  "deluxe",
		Advance:   1500,
		Metadata: gModel.Metadata{
			CreatedBy:  "frontdesk",
			ModifiedBy: "frontdesk",
		},
	}
}

func TestCreateBookingRequest_ToModel(t *testing.T) {
	t.Run("parses dates and stamps audit metadata", func(t *testing.T) {
		req := CreateBookingRequest{
			GuestName: "Asha Verma",
			ContactNo: "9876543210",
			CheckIn:   "2026-03-10",
			CheckOut:  "2026-03-13",
			NumRooms:  2,
			RoomType:  "deluxe",
			Advance:   1500,
		}

		booking, err := req.ToModel("reception-a")

		assert.NoError(t, err)
		assert.NotEmpty(t, booking.ID)
		assert.Equal(t, "Asha Verma", booking.GuestName)
		assert.Equal(t, "2026-03-10", booking.CheckIn.Format(time.DateOnly))
		assert.Equal(t, "2026-03-13", booking.CheckOut.Format(time.DateOnly))
		assert.Equal(t, "reception-a", booking.CreatedBy)
		assert.Equal(t, "reception-a", booking.ModifiedBy)
	})

	t.Run("rejects malformed check-in date", func(t *testing.T) {
		req := CreateBookingRequest{
			GuestName: "Asha Verma",
			CheckIn:   "10-03-2026",
			CheckOut:  "2026-03-13",
			NumRooms:  1,
			RoomType:  "deluxe",
		}

		_, err := req.ToModel("frontdesk")

		assert.Error(t, err)
	})
}

func TestUpdateBookingRequest_ApplyTo(t *testing.T) {
	t.Run("empty request keeps the booking unchanged", func(t *testing.T) {
		current := buildBooking(t)
		req := UpdateBookingRequest{}

		candidate, err := req.ApplyTo(current)

		assert.NoError(t, err)
		assert.Equal(t, current, candidate)
	})

	t.Run("merges only the provided fields", func(t *testing.T) {
		current := buildBooking(t)
		req := UpdateBookingRequest{
			CheckOut: "2026-03-15",
			NumRooms: 1,
		}

		candidate, err := req.ApplyTo(current)

		assert.NoError(t, err)
		assert.Equal(t, "2026-03-15", candidate.CheckOut.Format(time.DateOnly))
		assert.Equal(t, 1, candidate.NumRooms)
		assert.Equal(t, current.GuestName, candidate.GuestName)
		assert.Equal(t, current.CheckIn, candidate.CheckIn)
		assert.Equal(t, current.RoomType, candidate.RoomType)
	})

	t.Run("rejects malformed check-out date", func(t *testing.T) {
		current := buildBooking(t)
		req := UpdateBookingRequest{CheckOut: "not-a-date"}

		_, err := req.ApplyTo(current)

		assert.Error(t, err)
	})
}

func TestBookingResponse_FromModel(t *testing.T) {
	booking := buildBooking(t)

	var resp BookingResponse
	resp.FromModel(booking)

	assert.Equal(t, booking.ID, resp.ID)
	assert.Equal(t, "2026-03-10", resp.CheckIn)
	assert.Equal(t, "2026-03-13", resp.CheckOut)
	assert.Equal(t, booking.NumRooms, resp.NumRooms)
	assert.Equal(t, booking.Advance, resp.Advance)
}

func TestCalendarEvent_FromModel(t *testing.T) {
	booking := buildBooking(t)

	var event CalendarEvent
	event.FromModel(booking)

	assert.Equal(t, "Asha Verma (2x deluxe)", event.Title)
	assert.Equal(t, "2026-03-10", event.Start)
	// End is the checkout day, the night of the 13th stays sellable.
	assert.Equal(t, "2026-03-13", event.End)
}

func TestNewBookingEvent(t *testing.T) {
	booking := buildBooking(t)

	event := NewBookingEvent(EventActionUpdated, booking, "reception-b")

	assert.Equal(t, EventActionUpdated, event.Action)
	assert.Equal(t, booking.ID, event.BookingID)
	assert.Equal(t, "2026-03-10", event.CheckIn)
	assert.Equal(t, "2026-03-13", event.CheckOut)
	assert.Equal(t, "reception-b", event.Actor)
	assert.NotEmpty(t, event.At)
}
