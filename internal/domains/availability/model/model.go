package model

import (
	"time"

	"github.com/SarfarazSingh/HighfieldVilla/config"
)

// RoomType identifies a physical room category of the property.
type RoomType string

const (
	RoomTypeDeluxe      RoomType = "deluxe"
	RoomTypeSuperDeluxe RoomType = "super_deluxe"
)

// RoomTypes lists every bookable room type.
var RoomTypes = []RoomType{RoomTypeDeluxe, RoomTypeSuperDeluxe}

func (r RoomType) Valid() bool {
	for _, roomType := range RoomTypes {
		if r == roomType {
			return true
		}
	}

	return false
}

// Capacities maps each room type to the number of physical units the
// property owns. The totals never change at runtime.
type Capacities map[RoomType]int

func CapacitiesFromConfig(cfg *config.Config) Capacities {
	return Capacities{
		RoomTypeDeluxe:      cfg.Property.DeluxeCapacity,
		RoomTypeSuperDeluxe: cfg.Property.SuperDeluxeCapacity,
	}
}

// Stay is the slice of a booking the availability engine cares about.
// CheckOut is exclusive: the guest leaves that morning and the room is
// bookable again the same day.
type Stay struct {
	ID       string
	RoomType RoomType
	NumRooms int
	CheckIn  time.Time
	CheckOut time.Time
}
