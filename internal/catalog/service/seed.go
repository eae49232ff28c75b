package service

import (
	"fmt"
	"os"

	"go.yaml.in/yaml/v3"

	"hotelier/internal/domain"
)

type seedFile struct {
	Rooms []seedRoom `yaml:"rooms"`
}

type seedRoom struct {
	Number    string  `yaml:"number"`
	Price     float64 `yaml:"price"`
	Type      string  `yaml:"type"`
	Free      bool    `yaml:"free"`
	Available *bool   `yaml:"available"`
}

// SeedFromFile loads a YAML room inventory and adds every entry to the
// catalog. Entries pass through the same constructor validation as rooms
// added interactively; an omitted available field defaults to true.
func (s *CatalogService) SeedFromFile(path string) (int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("reading rooms file: %w", err)
	}

	var seed seedFile
	if err := yaml.Unmarshal(data, &seed); err != nil {
		return 0, fmt.Errorf("parsing rooms file: %w", err)
	}

	added := 0
	for _, entry := range seed.Rooms {
		roomType, err := domain.ParseRoomType(entry.Type)
		if err != nil {
			return added, fmt.Errorf("room %q: %w", entry.Number, err)
		}

		available := true
		if entry.Available != nil {
			available = *entry.Available
		}

		var room *domain.Room
		if entry.Free {
			room, err = domain.NewFreeRoom(entry.Number, roomType, available)
		} else {
			room, err = domain.NewRoom(entry.Number, entry.Price, roomType, available)
		}
		if err != nil {
			return added, fmt.Errorf("room %q: %w", entry.Number, err)
		}

		if err := s.AddRoom(room); err != nil {
			return added, err
		}
		added++
	}

	return added, nil
}
