package service

import (
	"go.uber.org/zap"

	"hotelier/internal/domain"
	apperrors "hotelier/internal/errors"
)

type RoomRepository interface {
	Save(room *domain.Room)
	FindByNumber(number string) *domain.Room
	FindAll() []*domain.Room
}

// CatalogService manages the room inventory.
type CatalogService struct {
	repo   RoomRepository
	logger *zap.Logger
}

func NewCatalogService(repo RoomRepository, logger *zap.Logger) *CatalogService {
	return &CatalogService{
		repo:   repo,
		logger: logger,
	}
}

// AddRoom inserts or overwrites the entry for the room's number.
func (s *CatalogService) AddRoom(room *domain.Room) error {
	if room == nil {
		return apperrors.NewMissingFieldError("room")
	}

	s.repo.Save(room)
	s.logger.Info("room added",
		zap.String("room", room.Number),
		zap.Float64("price", room.Price),
		zap.String("type", string(room.Type)))
	return nil
}

// AddRooms adds a batch, stopping at the first invalid entry.
func (s *CatalogService) AddRooms(rooms []*domain.Room) error {
	for _, room := range rooms {
		if err := s.AddRoom(room); err != nil {
			return err
		}
	}
	return nil
}

// GetRoom returns nil when the number is not in the catalog.
func (s *CatalogService) GetRoom(number string) *domain.Room {
	return s.repo.FindByNumber(number)
}

// ListAll returns a defensive copy of the catalog.
func (s *CatalogService) ListAll() []*domain.Room {
	return s.repo.FindAll()
}
