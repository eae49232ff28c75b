package hotel

import (
	"go.uber.org/zap"

	bookingrepo "hotelier/internal/booking/repository"
	bookingservice "hotelier/internal/booking/service"
	catalogrepo "hotelier/internal/catalog/repository"
	catalogservice "hotelier/internal/catalog/service"
	"hotelier/internal/config"
	customerrepo "hotelier/internal/customer/repository"
	customerservice "hotelier/internal/customer/service"
)

// Module bundles the assembled facades. Catalog is exposed so the entry
// point can seed the room inventory before the menus start.
type Module struct {
	Hotel   *HotelResource
	Admin   *AdminResource
	Catalog *catalogservice.CatalogService
}

// NewModule builds the stores, services and facades. All state lives in the
// repositories constructed here; nothing is ambient.
func NewModule(cfg *config.Config, logger *zap.Logger) *Module {
	customerRepo := customerrepo.NewMemoryCustomerRepository()
	roomRepo := catalogrepo.NewMemoryRoomRepository()
	reservationRepo := bookingrepo.NewMemoryReservationRepository()

	directory := customerservice.NewCustomerService(customerRepo, logger)
	catalog := catalogservice.NewCatalogService(roomRepo, logger)
	engine := bookingservice.NewReservationService(roomRepo, reservationRepo, logger)

	return &Module{
		Hotel:   NewHotelResource(directory, catalog, engine, cfg.Search.AltShiftDays, logger),
		Admin:   NewAdminResource(directory, catalog, engine, logger),
		Catalog: catalog,
	}
}
