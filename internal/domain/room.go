package domain

import (
	"fmt"
	"strings"

	apperrors "hotelier/internal/errors"
	"hotelier/internal/validation"
)

type RoomType string

const (
	RoomTypeSingle RoomType = "SINGLE"
	RoomTypeDouble RoomType = "DOUBLE"
)

// ParseRoomType maps user or seed-file input onto a RoomType.
func ParseRoomType(s string) (RoomType, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case string(RoomTypeSingle):
		return RoomTypeSingle, nil
	case string(RoomTypeDouble):
		return RoomTypeDouble, nil
	}
	return "", apperrors.NewInvalidFormatError("room type", s, "must be SINGLE or DOUBLE")
}

// Room is a catalog entry keyed by Number. Available is the only field that
// mutates after construction: the reservation engine flips it to false the
// first time the room is booked and it is never flipped back. The flag is
// informational; interval availability is computed from the reservation set.
type Room struct {
	Number    string
	Price     float64
	Type      RoomType
	Available bool
}

// NewRoom validates the fields in a fixed order: room number, price, type,
// availability flag.
func NewRoom(number string, price float64, roomType RoomType, available bool) (*Room, error) {
	if err := validation.RequireNonEmpty("room number", number); err != nil {
		return nil, err
	}
	if price < 0 {
		return nil, apperrors.NewInvalidRangeError("room price must not be negative")
	}
	if err := validation.RequireNonEmpty("room type", string(roomType)); err != nil {
		return nil, err
	}
	if roomType != RoomTypeSingle && roomType != RoomTypeDouble {
		return nil, apperrors.NewInvalidFormatError("room type", string(roomType), "must be SINGLE or DOUBLE")
	}

	return &Room{
		Number:    number,
		Price:     price,
		Type:      roomType,
		Available: available,
	}, nil
}

// NewFreeRoom builds a complimentary room. The price is forced to 0
// regardless of what the caller would have charged.
func NewFreeRoom(number string, roomType RoomType, available bool) (*Room, error) {
	return NewRoom(number, 0.0, roomType, available)
}

// Equal compares by identity, the room number. Two rooms with the same
// number are the same room regardless of price, type or availability.
func (r *Room) Equal(other *Room) bool {
	if r == nil || other == nil {
		return r == other
	}
	return r.Number == other.Number
}

func (r *Room) String() string {
	return fmt.Sprintf("Room{number=%s, price=$%.2f, type=%s}", r.Number, r.Price, r.Type)
}
