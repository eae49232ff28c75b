package ui

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"time"

	"hotelier/internal/hotel"
	"hotelier/internal/validation"
)

// Menu is the console presentation layer. It reads raw text, parses and
// pre-validates input, calls the facades and renders results or errors. No
// business logic lives here.
type Menu struct {
	hotel *hotel.HotelResource
	admin *hotel.AdminResource
	in    *bufio.Scanner
	out   io.Writer
}

func NewMenu(hotelRes *hotel.HotelResource, adminRes *hotel.AdminResource, in io.Reader, out io.Writer) *Menu {
	return &Menu{
		hotel: hotelRes,
		admin: adminRes,
		in:    bufio.NewScanner(in),
		out:   out,
	}
}

// Run drives the main menu until the user exits or input ends.
func (m *Menu) Run() {
	for {
		fmt.Fprintln(m.out)
		fmt.Fprintln(m.out, "MAIN MENU")
		fmt.Fprintln(m.out, "1. Find and reserve a room")
		fmt.Fprintln(m.out, "2. See my reservations")
		fmt.Fprintln(m.out, "3. Create an account")
		fmt.Fprintln(m.out, "4. Admin")
		fmt.Fprintln(m.out, "5. Exit")

		switch m.prompt("Select an option") {
		case "1":
			m.findAndReserve()
		case "2":
			m.showMyReservations()
		case "3":
			m.createAccount()
		case "4":
			m.runAdmin()
		case "5", "":
			fmt.Fprintln(m.out, "Goodbye.")
			return
		default:
			fmt.Fprintln(m.out, "Please enter a number between 1 and 5.")
		}
	}
}

func (m *Menu) findAndReserve() {
	checkIn, ok := m.promptDate("Check-in date (MM/dd/yyyy)")
	if !ok {
		return
	}
	checkOut, ok := m.promptDate("Check-out date (MM/dd/yyyy)")
	if !ok {
		return
	}

	if err := validation.ValidateNotPast(checkIn); err != nil {
		fmt.Fprintln(m.out, err)
		return
	}
	if err := validation.ValidateDateOrder(checkIn, checkOut); err != nil {
		fmt.Fprintln(m.out, err)
		return
	}

	rooms, err := m.hotel.FindRooms(checkIn, checkOut)
	if err != nil {
		fmt.Fprintln(m.out, err)
		return
	}

	if len(rooms) == 0 {
		altRooms, altIn, altOut, err := m.hotel.FindAlternativeRooms(checkIn, checkOut)
		if err != nil || len(altRooms) == 0 {
			fmt.Fprintln(m.out, "No rooms available for those dates.")
			return
		}
		fmt.Fprintf(m.out, "No rooms for those dates. Recommended dates %s to %s:\n",
			altIn.Format(validation.DateLayout), altOut.Format(validation.DateLayout))
		for _, room := range altRooms {
			fmt.Fprintln(m.out, room)
		}
		checkIn, checkOut = altIn, altOut
		rooms = altRooms
	} else {
		fmt.Fprintln(m.out, "Available rooms:")
		for _, room := range rooms {
			fmt.Fprintln(m.out, room)
		}
	}

	if !strings.EqualFold(m.prompt("Would you like to book a room? (y/n)"), "y") {
		return
	}
	m.bookRoom(checkIn, checkOut)
}

func (m *Menu) bookRoom(checkIn, checkOut time.Time) {
	email := m.prompt("Your account email")
	if m.hotel.GetCustomer(email) == nil {
		fmt.Fprintln(m.out, "No account found. Please create an account first.")
		return
	}

	number := m.prompt("Room number to reserve")
	room := m.hotel.GetRoom(number)
	if room == nil {
		fmt.Fprintf(m.out, "Room %s does not exist.\n", number)
		return
	}

	reservation, err := m.hotel.BookRoom(email, room, checkIn, checkOut)
	if err != nil {
		fmt.Fprintln(m.out, err)
		return
	}

	fmt.Fprintln(m.out, "Reservation confirmed:")
	fmt.Fprintln(m.out, reservation)
}

func (m *Menu) showMyReservations() {
	email := m.prompt("Your account email")
	reservations := m.hotel.CustomerReservations(email)
	if len(reservations) == 0 {
		fmt.Fprintln(m.out, "No reservations found.")
		return
	}
	for _, reservation := range reservations {
		fmt.Fprintln(m.out, reservation)
	}
}

func (m *Menu) createAccount() {
	email := m.prompt("Email (format: name@domain.com)")
	firstName := m.prompt("First name")
	lastName := m.prompt("Last name")

	customer, err := m.hotel.CreateCustomer(email, firstName, lastName)
	if err != nil {
		fmt.Fprintln(m.out, err)
		return
	}
	fmt.Fprintf(m.out, "Account created for %s %s.\n", customer.FirstName, customer.LastName)
}

func (m *Menu) prompt(label string) string {
	fmt.Fprintf(m.out, "%s: ", label)
	if !m.in.Scan() {
		return ""
	}
	return strings.TrimSpace(m.in.Text())
}

func (m *Menu) promptDate(label string) (time.Time, bool) {
	date, err := validation.ParseDate(m.prompt(label))
	if err != nil {
		fmt.Fprintln(m.out, err)
		return time.Time{}, false
	}
	return date, true
}
