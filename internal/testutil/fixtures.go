package testutil

import (
	"testing"
	"time"

	"hotelier/internal/domain"
	"hotelier/internal/validation"
)

// MustDate parses MM/dd/yyyy text, failing the test on bad input.
func MustDate(t *testing.T, text string) time.Time {
	t.Helper()

	date, err := validation.ParseDate(text)
	if err != nil {
		t.Fatalf("bad fixture date %q: %v", text, err)
	}
	return date
}

// NewRoom builds a valid single room for tests.
func NewRoom(t *testing.T, number string) *domain.Room {
	t.Helper()

	room, err := domain.NewRoom(number, 120.0, domain.RoomTypeSingle, true)
	if err != nil {
		t.Fatalf("bad fixture room %q: %v", number, err)
	}
	return room
}

// NewCustomer builds a valid customer keyed by the given email.
func NewCustomer(t *testing.T, email string) *domain.Customer {
	t.Helper()

	customer, err := domain.NewCustomer(email, "Ada", "Lovelace")
	if err != nil {
		t.Fatalf("bad fixture customer %q: %v", email, err)
	}
	return customer
}
