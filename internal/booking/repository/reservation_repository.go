package repository

import "hotelier/internal/domain"

// MemoryReservationRepository is an append-only reservation store. It is not
// safe for concurrent use on its own: the reservation service serializes all
// access under its lock so the overlap check and the insert stay atomic.
type MemoryReservationRepository struct {
	reservations []*domain.Reservation
}

func NewMemoryReservationRepository() *MemoryReservationRepository {
	return &MemoryReservationRepository{}
}

func (r *MemoryReservationRepository) Insert(reservation *domain.Reservation) {
	r.reservations = append(r.reservations, reservation)
}

// AllForRoom returns every reservation made against the given room number.
func (r *MemoryReservationRepository) AllForRoom(number string) []*domain.Reservation {
	var matches []*domain.Reservation
	for _, reservation := range r.reservations {
		if reservation.Room.Number == number {
			matches = append(matches, reservation)
		}
	}
	return matches
}

// AllForCustomer returns every reservation whose customer has the given
// email, the customer identity key.
func (r *MemoryReservationRepository) AllForCustomer(email string) []*domain.Reservation {
	var matches []*domain.Reservation
	for _, reservation := range r.reservations {
		if reservation.Customer.Email() == email {
			matches = append(matches, reservation)
		}
	}
	return matches
}

// All returns a fresh snapshot slice.
func (r *MemoryReservationRepository) All() []*domain.Reservation {
	all := make([]*domain.Reservation, len(r.reservations))
	copy(all, r.reservations)
	return all
}
