package hotel

import (
	"go.uber.org/zap"

	"hotelier/internal/domain"
)

// AdminResource is the reporting facade: read-only aggregation over the
// three stores plus batch room loading. Pure delegation.
type AdminResource struct {
	directory Directory
	catalog   Catalog
	engine    Engine
	logger    *zap.Logger
}

func NewAdminResource(directory Directory, catalog Catalog, engine Engine, logger *zap.Logger) *AdminResource {
	return &AdminResource{
		directory: directory,
		catalog:   catalog,
		engine:    engine,
		logger:    logger,
	}
}

func (a *AdminResource) GetCustomer(email string) *domain.Customer {
	return a.directory.Lookup(email)
}

func (a *AdminResource) GetAllCustomers() []*domain.Customer {
	return a.directory.ListAll()
}

func (a *AdminResource) GetAllRooms() []*domain.Room {
	return a.catalog.ListAll()
}

func (a *AdminResource) GetAllReservations() []*domain.Reservation {
	return a.engine.AllReservations()
}

func (a *AdminResource) AddRoom(room *domain.Room) error {
	return a.catalog.AddRoom(room)
}

func (a *AdminResource) AddRooms(rooms []*domain.Room) error {
	return a.catalog.AddRooms(rooms)
}
