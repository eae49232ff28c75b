package domain

import (
	"fmt"

	"hotelier/internal/validation"
)

// Customer is a directory entry. The email is the identity key and cannot
// change after construction; first and last name may be edited in place.
type Customer struct {
	FirstName string
	LastName  string
	email     string
}

// NewCustomer validates the fields in a fixed order (first name, last name,
// email) and then checks the email format.
func NewCustomer(email, firstName, lastName string) (*Customer, error) {
	if err := validation.RequireNonEmpty("first name", firstName); err != nil {
		return nil, err
	}
	if err := validation.RequireNonEmpty("last name", lastName); err != nil {
		return nil, err
	}
	if err := validation.RequireNonEmpty("email", email); err != nil {
		return nil, err
	}
	if err := validation.ValidateEmail(email); err != nil {
		return nil, err
	}

	return &Customer{
		FirstName: firstName,
		LastName:  lastName,
		email:     email,
	}, nil
}

// Email returns the identity key. There is no setter.
func (c *Customer) Email() string {
	return c.email
}

// Equal compares by identity, the exact email.
func (c *Customer) Equal(other *Customer) bool {
	if c == nil || other == nil {
		return c == other
	}
	return c.email == other.email
}

func (c *Customer) String() string {
	return fmt.Sprintf("Customer{firstName=%s, lastName=%s, email=%s}", c.FirstName, c.LastName, c.email)
}
