package repository

import (
	"sync"

	"hotelier/internal/domain"
)

// MemoryRoomRepository keys rooms by room number.
type MemoryRoomRepository struct {
	mu    sync.RWMutex
	rooms map[string]*domain.Room
}

func NewMemoryRoomRepository() *MemoryRoomRepository {
	return &MemoryRoomRepository{
		rooms: make(map[string]*domain.Room),
	}
}

// Save inserts or overwrites by room number. Re-adding a number replaces the
// prior entry, last write wins.
func (r *MemoryRoomRepository) Save(room *domain.Room) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.rooms[room.Number] = room
}

// FindByNumber returns nil on a miss.
func (r *MemoryRoomRepository) FindByNumber(number string) *domain.Room {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.rooms[number]
}

// FindAll returns a fresh slice; callers may mutate it freely.
func (r *MemoryRoomRepository) FindAll() []*domain.Room {
	r.mu.RLock()
	defer r.mu.RUnlock()

	all := make([]*domain.Room, 0, len(r.rooms))
	for _, room := range r.rooms {
		all = append(all, room)
	}
	return all
}
