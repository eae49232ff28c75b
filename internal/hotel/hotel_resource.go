package hotel

import (
	"time"

	"go.uber.org/zap"

	"hotelier/internal/domain"
	apperrors "hotelier/internal/errors"
)

type Directory interface {
	Register(email, firstName, lastName string) (*domain.Customer, error)
	Lookup(email string) *domain.Customer
	ListAll() []*domain.Customer
}

type Catalog interface {
	AddRoom(room *domain.Room) error
	AddRooms(rooms []*domain.Room) error
	GetRoom(number string) *domain.Room
	ListAll() []*domain.Room
}

type Engine interface {
	Reserve(customer *domain.Customer, room *domain.Room, checkIn, checkOut time.Time) (*domain.Reservation, error)
	FindAvailableRooms(checkIn, checkOut time.Time) ([]*domain.Room, error)
	ReservationsFor(customer *domain.Customer) []*domain.Reservation
	AllReservations() []*domain.Reservation
}

// HotelResource is the guest-facing facade: account creation, room search
// and booking. It composes the directory, catalog and engine without logic
// of its own beyond the customer lookup on booking.
type HotelResource struct {
	directory    Directory
	catalog      Catalog
	engine       Engine
	altShiftDays int
	logger       *zap.Logger
}

func NewHotelResource(directory Directory, catalog Catalog, engine Engine, altShiftDays int, logger *zap.Logger) *HotelResource {
	return &HotelResource{
		directory:    directory,
		catalog:      catalog,
		engine:       engine,
		altShiftDays: altShiftDays,
		logger:       logger,
	}
}

func (h *HotelResource) CreateCustomer(email, firstName, lastName string) (*domain.Customer, error) {
	return h.directory.Register(email, firstName, lastName)
}

func (h *HotelResource) GetCustomer(email string) *domain.Customer {
	return h.directory.Lookup(email)
}

func (h *HotelResource) GetRoom(number string) *domain.Room {
	return h.catalog.GetRoom(number)
}

// BookRoom resolves the customer by email and reserves the room for the
// stay. An unknown email fails before the engine is consulted.
func (h *HotelResource) BookRoom(email string, room *domain.Room, checkIn, checkOut time.Time) (*domain.Reservation, error) {
	customer := h.directory.Lookup(email)
	if customer == nil {
		return nil, apperrors.NewNotFoundError("no account found for " + email)
	}
	return h.engine.Reserve(customer, room, checkIn, checkOut)
}

func (h *HotelResource) CustomerReservations(email string) []*domain.Reservation {
	return h.engine.ReservationsFor(h.directory.Lookup(email))
}

func (h *HotelResource) FindRooms(checkIn, checkOut time.Time) ([]*domain.Room, error) {
	return h.engine.FindAvailableRooms(checkIn, checkOut)
}

// FindAlternativeRooms searches a window shifted forward by the configured
// number of days and returns the shifted dates alongside the rooms, for
// callers suggesting recommended dates when the requested ones are full.
func (h *HotelResource) FindAlternativeRooms(checkIn, checkOut time.Time) ([]*domain.Room, time.Time, time.Time, error) {
	altIn := checkIn.AddDate(0, 0, h.altShiftDays)
	altOut := checkOut.AddDate(0, 0, h.altShiftDays)

	rooms, err := h.engine.FindAvailableRooms(altIn, altOut)
	if err != nil {
		return nil, time.Time{}, time.Time{}, err
	}

	h.logger.Debug("alternative date search",
		zap.Int("shiftDays", h.altShiftDays),
		zap.Int("found", len(rooms)))
	return rooms, altIn, altOut, nil
}
