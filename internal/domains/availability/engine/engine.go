// Package engine holds the availability arithmetic for the property.
// It is pure: callers hand it a snapshot of stays and it answers questions
// about occupancy. It never reads storage on its own.
package engine

import (
	"time"

	"github.com/SarfarazSingh/HighfieldVilla/internal/domains/availability/model"
	"github.com/SarfarazSingh/HighfieldVilla/shared/constant"
)

// Nights expands a stay into the calendar days it occupies, formatted as
// YYYY-MM-DD. The checkout day is excluded: a stay from the 10th to the 13th
// occupies the nights of the 10th, 11th and 12th. A stay whose checkout is on
// or before its checkin occupies nothing.
func Nights(checkIn, checkOut time.Time) []string {
	nights := []string{}

	for day := checkIn; day.Before(checkOut); day = day.AddDate(0, 0, 1) {
		nights = append(nights, day.Format(constant.DayFormat))
	}

	return nights
}

// RoomsBooked sums the rooms committed for a room type on a single day
// across every stay in the snapshot.
func RoomsBooked(stays []model.Stay, day string, roomType model.RoomType) int {
	return roomsBookedExcluding(stays, day, roomType, constant.Empty)
}

func roomsBookedExcluding(stays []model.Stay, day string, roomType model.RoomType, ignoreID string) int {
	booked := 0

	for _, stay := range stays {
		if stay.RoomType != roomType {
			continue
		}

		if ignoreID != constant.Empty && stay.ID == ignoreID {
			continue
		}

		for _, night := range Nights(stay.CheckIn, stay.CheckOut) {
			if night == day {
				booked += stay.NumRooms

				break
			}
		}
	}

	return booked
}

// Check reports whether the requested stay can be admitted against the given
// snapshot without oversubscribing any night. A stay already present in the
// snapshot under req.ID is ignored, so an edited booking does not collide
// with its own previous dates. Zero-night and non-positive requests are
// never admitted.
func Check(stays []model.Stay, req model.Stay, capacities model.Capacities) bool {
	if req.NumRooms < 1 {
		return false
	}

	capacity, ok := capacities[req.RoomType]
	if !ok {
		return false
	}

	nights := Nights(req.CheckIn, req.CheckOut)
	if len(nights) == 0 {
		return false
	}

	for _, night := range nights {
		booked := roomsBookedExcluding(stays, night, req.RoomType, req.ID)
		if booked+req.NumRooms > capacity {
			return false
		}
	}

	return true
}

// FreeByDate returns the rooms still free per room type on a single day.
func FreeByDate(stays []model.Stay, day string, capacities model.Capacities) map[model.RoomType]int {
	free := make(map[model.RoomType]int, len(capacities))

	for roomType, capacity := range capacities {
		free[roomType] = capacity - RoomsBooked(stays, day, roomType)
	}

	return free
}
