package booking

import (
	"errors"
	"regexp"
	"strings"
)

const (
	MaxNameLength  = 100
	MaxNotesLength = 500
)

var (
	ErrEmptyCustomerName   = errors.New("customer name must not be empty")
	ErrCustomerNameTooLong = errors.New("customer name is too long")
	ErrInvalidPhoneNumber  = errors.New("invalid phone number")
	ErrNotesTooLong        = errors.New("notes are too long")
)

var phoneRegex = regexp.MustCompile(`^\+?[0-9][0-9 \-]{6,18}[0-9]$`)

// Customer carries the free-form contact details attached to a booking.
type Customer struct {
	name  string
	phone string
	notes string
}

func NewCustomer(name, phone, notes string) (Customer, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Customer{}, ErrEmptyCustomerName
	}
	if len(name) > MaxNameLength {
		return Customer{}, ErrCustomerNameTooLong
	}

	phone = strings.TrimSpace(phone)
	if !phoneRegex.MatchString(phone) {
		return Customer{}, ErrInvalidPhoneNumber
	}

	notes = strings.TrimSpace(notes)
	if len(notes) > MaxNotesLength {
		return Customer{}, ErrNotesTooLong
	}

	return Customer{name: name, phone: phone, notes: notes}, nil
}

func (c Customer) Name() string  { return c.name }
func (c Customer) Phone() string { return c.phone }
func (c Customer) Notes() string { return c.notes }
