package service

import (
	"sync"
	"testing"
	"time"

	"go.uber.org/zap"

	bookingrepo "hotelier/internal/booking/repository"
	catalogrepo "hotelier/internal/catalog/repository"
	"hotelier/internal/domain"
	apperrors "hotelier/internal/errors"
	"hotelier/internal/testutil"
)

type engineFixture struct {
	svc      *ReservationService
	rooms    *catalogrepo.MemoryRoomRepository
	customer *domain.Customer
}

func newEngineFixture(t *testing.T, roomNumbers ...string) *engineFixture {
	t.Helper()

	rooms := catalogrepo.NewMemoryRoomRepository()
	for _, number := range roomNumbers {
		rooms.Save(testutil.NewRoom(t, number))
	}

	return &engineFixture{
		svc:      NewReservationService(rooms, bookingrepo.NewMemoryReservationRepository(), zap.NewNop()),
		rooms:    rooms,
		customer: testutil.NewCustomer(t, "ada@lovelace.com"),
	}
}

func (f *engineFixture) room(t *testing.T, number string) *domain.Room {
	t.Helper()
	room := f.rooms.FindByNumber(number)
	if room == nil {
		t.Fatalf("fixture has no room %q", number)
	}
	return room
}

func june(day int) time.Time {
	return time.Date(2025, time.June, day, 0, 0, 0, 0, time.UTC)
}

func TestReserve(t *testing.T) {
	f := newEngineFixture(t, "100")
	room := f.room(t, "100")

	reservation, err := f.svc.Reserve(f.customer, room, june(15), june(20))
	if err != nil {
		t.Fatalf("reserve: %v", err)
	}
	if reservation.ID == "" {
		t.Fatal("expected a confirmation id")
	}
	if !reservation.Room.Equal(room) || !reservation.Customer.Equal(f.customer) {
		t.Fatalf("reservation references wrong entities: %v", reservation)
	}
	if room.Available {
		t.Fatal("booking must flip the room's availability flag")
	}
}

func TestReserve_DisjointIntervalsBothSucceed(t *testing.T) {
	f := newEngineFixture(t, "100")
	room := f.room(t, "100")

	if _, err := f.svc.Reserve(f.customer, room, june(15), june(20)); err != nil {
		t.Fatalf("first booking: %v", err)
	}
	// The coarse flag flipped above, but interval availability is what
	// decides: a disjoint stay on the same room still succeeds.
	if _, err := f.svc.Reserve(f.customer, room, june(25), june(28)); err != nil {
		t.Fatalf("disjoint second booking must succeed: %v", err)
	}

	if got := len(f.svc.AllReservations()); got != 2 {
		t.Fatalf("expected 2 reservations, got %d", got)
	}
}

func TestReserve_OverlapFails(t *testing.T) {
	overlapping := []struct {
		name    string
		in, out time.Time
	}{
		{"identical", june(15), june(20)},
		{"contained", june(16), june(18)},
		{"containing", june(10), june(25)},
		{"overlaps start", june(12), june(16)},
		{"overlaps end", june(19), june(22)},
	}

	for _, tt := range overlapping {
		t.Run(tt.name, func(t *testing.T) {
			f := newEngineFixture(t, "100")
			room := f.room(t, "100")

			if _, err := f.svc.Reserve(f.customer, room, june(15), june(20)); err != nil {
				t.Fatalf("first booking: %v", err)
			}

			_, err := f.svc.Reserve(f.customer, room, tt.in, tt.out)
			oe, ok := apperrors.IsOverlapConflictError(err)
			if !ok {
				t.Fatalf("expected OverlapConflict, got %v", err)
			}
			if oe.RoomNumber != "100" {
				t.Fatalf("conflict names wrong room: %s", oe.RoomNumber)
			}

			// Fail-fast: nothing was written.
			if got := len(f.svc.AllReservations()); got != 1 {
				t.Fatalf("failed reserve must not mutate state, have %d reservations", got)
			}
		})
	}
}

func TestReserve_SameDayBoundaryIsNotConflict(t *testing.T) {
	f := newEngineFixture(t, "100")
	room := f.room(t, "100")

	if _, err := f.svc.Reserve(f.customer, room, june(15), june(20)); err != nil {
		t.Fatalf("first booking: %v", err)
	}
	// Half-open intervals: checkout on 6/20 and check-in on 6/20 share no
	// night.
	if _, err := f.svc.Reserve(f.customer, room, june(20), june(25)); err != nil {
		t.Fatalf("back-to-back booking must succeed: %v", err)
	}
}

func TestReserve_CheckInEqualsCheckOut(t *testing.T) {
	f := newEngineFixture(t, "100")

	_, err := f.svc.Reserve(f.customer, f.room(t, "100"), june(15), june(15))
	if _, ok := apperrors.IsInvalidRangeError(err); !ok {
		t.Fatalf("expected InvalidRange, got %v", err)
	}
}

func TestReserve_MissingInputs(t *testing.T) {
	f := newEngineFixture(t, "100")
	room := f.room(t, "100")

	_, err := f.svc.Reserve(f.customer, nil, june(15), june(20))
	me, ok := apperrors.IsMissingFieldError(err)
	if !ok || me.Field != "room" {
		t.Fatalf("expected MissingField(room), got %v", err)
	}

	_, err = f.svc.Reserve(nil, room, june(15), june(20))
	me, ok = apperrors.IsMissingFieldError(err)
	if !ok || me.Field != "customer" {
		t.Fatalf("expected MissingField(customer), got %v", err)
	}

	_, err = f.svc.Reserve(f.customer, room, time.Time{}, june(20))
	me, ok = apperrors.IsMissingFieldError(err)
	if !ok || me.Field != "check-in date" {
		t.Fatalf("expected MissingField(check-in date), got %v", err)
	}
}

func TestReserve_UnregisteredRoom(t *testing.T) {
	f := newEngineFixture(t, "100")

	stray, err := domain.NewRoom("999", 50.0, domain.RoomTypeSingle, true)
	if err != nil {
		t.Fatalf("bad test room: %v", err)
	}

	_, err = f.svc.Reserve(f.customer, stray, june(15), june(20))
	ue, ok := apperrors.IsRoomUnavailableError(err)
	if !ok {
		t.Fatalf("expected RoomUnavailable, got %v", err)
	}
	if ue.RoomNumber != "999" {
		t.Fatalf("error names wrong room: %s", ue.RoomNumber)
	}
}

func TestIsAvailable_IgnoresCoarseFlag(t *testing.T) {
	f := newEngineFixture(t, "100")
	room := f.room(t, "100")

	if _, err := f.svc.Reserve(f.customer, room, june(15), june(20)); err != nil {
		t.Fatalf("booking: %v", err)
	}

	if f.svc.IsAvailable(room, june(16), june(18)) {
		t.Fatal("overlapping interval reported available")
	}
	if !f.svc.IsAvailable(room, june(21), june(25)) {
		t.Fatal("free future interval must be available even though the flag is false")
	}
	if !f.svc.IsAvailable(room, june(20), june(25)) {
		t.Fatal("interval starting on the checkout day must be available")
	}
}

func TestFindAvailableRooms(t *testing.T) {
	f := newEngineFixture(t, "100", "200", "300")

	if _, err := f.svc.Reserve(f.customer, f.room(t, "100"), june(15), june(20)); err != nil {
		t.Fatalf("booking: %v", err)
	}

	rooms, err := f.svc.FindAvailableRooms(june(16), june(18))
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if got := roomNumbers(rooms); len(got) != 2 || !got["200"] || !got["300"] {
		t.Fatalf("expected rooms 200 and 300, got %v", got)
	}

	rooms, err = f.svc.FindAvailableRooms(june(21), june(25))
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if got := roomNumbers(rooms); len(got) != 3 {
		t.Fatalf("expected all three rooms, got %v", got)
	}
}

func TestFindAvailableRooms_InvalidRange(t *testing.T) {
	f := newEngineFixture(t, "100")

	if _, err := f.svc.FindAvailableRooms(june(20), june(15)); err == nil {
		t.Fatal("expected InvalidRange for reversed dates")
	}
	if _, err := f.svc.FindAvailableRooms(june(15), june(15)); err == nil {
		t.Fatal("expected InvalidRange for same-day stay")
	}
	if _, err := f.svc.FindAvailableRooms(time.Time{}, june(15)); err == nil {
		t.Fatal("expected InvalidRange for missing check-in")
	}
}

func TestReservationsFor(t *testing.T) {
	f := newEngineFixture(t, "100", "200")
	grace := testutil.NewCustomer(t, "grace@hopper.com")

	if _, err := f.svc.Reserve(f.customer, f.room(t, "100"), june(15), june(20)); err != nil {
		t.Fatalf("booking: %v", err)
	}
	if _, err := f.svc.Reserve(grace, f.room(t, "200"), june(15), june(20)); err != nil {
		t.Fatalf("booking: %v", err)
	}
	if _, err := f.svc.Reserve(f.customer, f.room(t, "100"), june(25), june(28)); err != nil {
		t.Fatalf("booking: %v", err)
	}

	mine := f.svc.ReservationsFor(f.customer)
	if len(mine) != 2 {
		t.Fatalf("expected 2 reservations for ada, got %d", len(mine))
	}
	for _, reservation := range mine {
		if !reservation.Customer.Equal(f.customer) {
			t.Fatalf("foreign reservation returned: %v", reservation)
		}
	}

	if got := f.svc.ReservationsFor(nil); got != nil {
		t.Fatalf("nil customer has no reservations, got %v", got)
	}
}

func TestAllReservations_SnapshotAndIdempotence(t *testing.T) {
	f := newEngineFixture(t, "100")

	if _, err := f.svc.Reserve(f.customer, f.room(t, "100"), june(15), june(20)); err != nil {
		t.Fatalf("booking: %v", err)
	}

	a := f.svc.AllReservations()
	b := f.svc.AllReservations()
	if len(a) != len(b) {
		t.Fatalf("two reads without writes differ: %d vs %d", len(a), len(b))
	}

	a[0] = nil
	if got := f.svc.AllReservations(); got[0] == nil {
		t.Fatal("caller mutation of the snapshot leaked into the store")
	}
}

func TestReserve_ConcurrentSameInterval(t *testing.T) {
	f := newEngineFixture(t, "100")
	room := f.room(t, "100")
	grace := testutil.NewCustomer(t, "grace@hopper.com")

	var wg sync.WaitGroup
	errs := make([]error, 2)
	for i, customer := range []*domain.Customer{f.customer, grace} {
		wg.Add(1)
		go func(i int, c *domain.Customer) {
			defer wg.Done()
			_, errs[i] = f.svc.Reserve(c, room, june(15), june(20))
		}(i, customer)
	}
	wg.Wait()

	failures := 0
	for _, err := range errs {
		if err != nil {
			if _, ok := apperrors.IsOverlapConflictError(err); !ok {
				t.Fatalf("unexpected error kind: %v", err)
			}
			failures++
		}
	}
	if failures != 1 {
		t.Fatalf("exactly one of two racing bookings must fail, %d failed", failures)
	}
	if got := len(f.svc.AllReservations()); got != 1 {
		t.Fatalf("expected a single stored reservation, got %d", got)
	}
}

func roomNumbers(rooms []*domain.Room) map[string]bool {
	set := make(map[string]bool, len(rooms))
	for _, room := range rooms {
		set[room.Number] = true
	}
	return set
}
