package ui

import (
	"fmt"
	"strconv"
	"strings"

	"hotelier/internal/domain"
)

func (m *Menu) runAdmin() {
	for {
		fmt.Fprintln(m.out)
		fmt.Fprintln(m.out, "ADMIN MENU")
		fmt.Fprintln(m.out, "1. See all customers")
		fmt.Fprintln(m.out, "2. See all rooms")
		fmt.Fprintln(m.out, "3. See all reservations")
		fmt.Fprintln(m.out, "4. Add a room")
		fmt.Fprintln(m.out, "5. Back to main menu")

		switch m.prompt("Select an option") {
		case "1":
			m.showAllCustomers()
		case "2":
			m.showAllRooms()
		case "3":
			m.showAllReservations()
		case "4":
			m.addRoom()
		case "5", "":
			return
		default:
			fmt.Fprintln(m.out, "Please enter a number between 1 and 5.")
		}
	}
}

func (m *Menu) showAllCustomers() {
	customers := m.admin.GetAllCustomers()
	if len(customers) == 0 {
		fmt.Fprintln(m.out, "No customers on record.")
		return
	}
	for _, customer := range customers {
		fmt.Fprintln(m.out, customer)
	}
}

func (m *Menu) showAllRooms() {
	rooms := m.admin.GetAllRooms()
	if len(rooms) == 0 {
		fmt.Fprintln(m.out, "No rooms on record.")
		return
	}
	for _, room := range rooms {
		fmt.Fprintln(m.out, room)
	}
}

func (m *Menu) showAllReservations() {
	reservations := m.admin.GetAllReservations()
	if len(reservations) == 0 {
		fmt.Fprintln(m.out, "There is no reservation on record.")
		return
	}
	for _, reservation := range reservations {
		fmt.Fprintln(m.out, reservation)
	}
}

func (m *Menu) addRoom() {
	number := m.prompt("Room number")

	roomType, err := domain.ParseRoomType(m.prompt("Room type (SINGLE/DOUBLE)"))
	if err != nil {
		fmt.Fprintln(m.out, err)
		return
	}

	free := strings.EqualFold(m.prompt("Is this a complimentary room? (y/n)"), "y")

	var room *domain.Room
	if free {
		room, err = domain.NewFreeRoom(number, roomType, true)
	} else {
		price, perr := strconv.ParseFloat(m.prompt("Price per night"), 64)
		if perr != nil {
			fmt.Fprintln(m.out, "Price must be a number.")
			return
		}
		room, err = domain.NewRoom(number, price, roomType, true)
	}
	if err != nil {
		fmt.Fprintln(m.out, err)
		return
	}

	if err := m.admin.AddRoom(room); err != nil {
		fmt.Fprintln(m.out, err)
		return
	}
	fmt.Fprintf(m.out, "Room %s added.\n", room.Number)
}
