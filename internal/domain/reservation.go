package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	apperrors "hotelier/internal/errors"
	"hotelier/internal/validation"
)

// Reservation ties a room to a customer for a half-open stay
// [CheckIn, CheckOut). Reservations are never edited or deleted once made.
// ID is a confirmation code for reporting; it takes no part in equality.
type Reservation struct {
	ID       string
	Room     *Room
	Customer *Customer
	CheckIn  time.Time
	CheckOut time.Time
}

// NewReservation validates inputs in a fixed order (room, customer,
// check-in, check-out) and enforces strict date ordering.
func NewReservation(room *Room, customer *Customer, checkIn, checkOut time.Time) (*Reservation, error) {
	if room == nil {
		return nil, apperrors.NewMissingFieldError("room")
	}
	if customer == nil {
		return nil, apperrors.NewMissingFieldError("customer")
	}
	if checkIn.IsZero() {
		return nil, apperrors.NewMissingFieldError("check-in date")
	}
	if checkOut.IsZero() {
		return nil, apperrors.NewMissingFieldError("check-out date")
	}
	if err := validation.ValidateDateOrder(checkIn, checkOut); err != nil {
		return nil, err
	}

	return &Reservation{
		ID:       uuid.New().String(),
		Room:     room,
		Customer: customer,
		CheckIn:  checkIn,
		CheckOut: checkOut,
	}, nil
}

// Overlaps reports whether [checkIn, checkOut) shares any night with this
// reservation. Half-open semantics: a checkout on another stay's check-in
// day is not a conflict.
func (r *Reservation) Overlaps(checkIn, checkOut time.Time) bool {
	return checkIn.Before(r.CheckOut) && checkOut.After(r.CheckIn)
}

// Equal is structural over room, customer and both dates. Two reservations
// with identical fields are indistinguishable duplicates.
func (r *Reservation) Equal(other *Reservation) bool {
	if r == nil || other == nil {
		return r == other
	}
	return r.Room.Equal(other.Room) &&
		r.Customer.Equal(other.Customer) &&
		r.CheckIn.Equal(other.CheckIn) &&
		r.CheckOut.Equal(other.CheckOut)
}

func (r *Reservation) String() string {
	return fmt.Sprintf("Reservation{room=%s, customer=%s, checkIn=%s, checkOut=%s}",
		r.Room, r.Customer, r.CheckIn.Format(validation.DateLayout), r.CheckOut.Format(validation.DateLayout))
}
