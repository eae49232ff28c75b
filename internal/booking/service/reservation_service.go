package service

import (
	"sync"
	"time"

	"go.uber.org/zap"

	"hotelier/internal/domain"
	apperrors "hotelier/internal/errors"
	"hotelier/internal/validation"
)

type RoomStore interface {
	FindByNumber(number string) *domain.Room
	FindAll() []*domain.Room
}

type ReservationStore interface {
	Insert(reservation *domain.Reservation)
	AllForRoom(number string) []*domain.Reservation
	AllForCustomer(email string) []*domain.Reservation
	All() []*domain.Reservation
}

// ReservationService is the availability engine. A single lock guards the
// reservation set and the availability flips together: Reserve holds the
// write lock for the whole check-then-act, so two callers can never both
// pass the overlap check against the same free interval. Readers take the
// read lock and therefore never observe a half-applied booking.
//
// Interval overlap against stored reservations is the sole authority for
// availability. The Room.Available flag is flipped at first booking for
// reporting but is never consulted here.
type ReservationService struct {
	mu     sync.RWMutex
	rooms  RoomStore
	store  ReservationStore
	logger *zap.Logger
}

func NewReservationService(rooms RoomStore, store ReservationStore, logger *zap.Logger) *ReservationService {
	return &ReservationService{
		rooms:  rooms,
		store:  store,
		logger: logger,
	}
}

// Reserve books the room for [checkIn, checkOut). Preconditions run in
// order, each with its own failure: missing fields, strict date order, room
// registered in the catalog, no overlap with an existing reservation for the
// same room. Nothing is written until every check has passed.
func (s *ReservationService) Reserve(customer *domain.Customer, room *domain.Room, checkIn, checkOut time.Time) (*domain.Reservation, error) {
	reservation, err := domain.NewReservation(room, customer, checkIn, checkOut)
	if err != nil {
		s.logger.Warn("reservation rejected", zap.Error(err))
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	catalogRoom := s.rooms.FindByNumber(room.Number)
	if catalogRoom == nil {
		s.logger.Warn("reservation for unregistered room", zap.String("room", room.Number))
		return nil, apperrors.NewRoomUnavailableError(room.Number)
	}

	for _, existing := range s.store.AllForRoom(room.Number) {
		if existing.Overlaps(checkIn, checkOut) {
			s.logger.Warn("reservation conflict",
				zap.String("room", room.Number),
				zap.String("email", customer.Email()))
			return nil, apperrors.NewOverlapConflictError(room.Number)
		}
	}

	// Book the catalog's own entry so the flag flip is visible to every
	// holder of the room.
	reservation.Room = catalogRoom
	s.store.Insert(reservation)
	catalogRoom.Available = false

	s.logger.Info("room reserved",
		zap.String("reservationId", reservation.ID),
		zap.String("room", catalogRoom.Number),
		zap.String("email", customer.Email()),
		zap.Time("checkIn", checkIn),
		zap.Time("checkOut", checkOut))
	return reservation, nil
}

// IsAvailable reports whether no stored reservation for the room overlaps
// [checkIn, checkOut). The coarse Available flag plays no part; availability
// for an interval is purely a function of the reservations covering it.
func (s *ReservationService) IsAvailable(room *domain.Room, checkIn, checkOut time.Time) bool {
	if room == nil {
		return false
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.isAvailableLocked(room, checkIn, checkOut)
}

// FindAvailableRooms filters the full catalog down to rooms with no
// reservation overlapping the interval.
func (s *ReservationService) FindAvailableRooms(checkIn, checkOut time.Time) ([]*domain.Room, error) {
	if checkIn.IsZero() || checkOut.IsZero() {
		return nil, apperrors.NewInvalidRangeError("check-in and check-out dates are required")
	}
	if err := validation.ValidateDateOrder(checkIn, checkOut); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	var available []*domain.Room
	for _, room := range s.rooms.FindAll() {
		if s.isAvailableLocked(room, checkIn, checkOut) {
			available = append(available, room)
		}
	}
	return available, nil
}

// ReservationsFor returns every reservation held by the customer, matched by
// email identity.
func (s *ReservationService) ReservationsFor(customer *domain.Customer) []*domain.Reservation {
	if customer == nil {
		return nil
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.store.AllForCustomer(customer.Email())
}

// AllReservations returns a read-only snapshot.
func (s *ReservationService) AllReservations() []*domain.Reservation {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.store.All()
}

func (s *ReservationService) isAvailableLocked(room *domain.Room, checkIn, checkOut time.Time) bool {
	for _, reservation := range s.store.AllForRoom(room.Number) {
		if reservation.Overlaps(checkIn, checkOut) {
			return false
		}
	}
	return true
}
