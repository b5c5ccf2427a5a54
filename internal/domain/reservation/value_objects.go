package reservation

import (
	"errors"
	"net/mail"
	"strings"
)

const minPhoneDigits = 10

var (
	ErrEmptyCustomerName = errors.New("customer name is required")
	ErrInvalidPhone      = errors.New("customer phone must contain at least 10 digits")
	ErrInvalidEmail      = errors.New("customer email is not a valid address")
)

// Contact holds the walk-in customer's identification for pickup.
type Contact struct {
	name  string
	phone string
	email *string
}

func NewContact(name, phone string, email *string) (Contact, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Contact{}, ErrEmptyCustomerName
	}

	if countDigits(phone) < minPhoneDigits {
		return Contact{}, ErrInvalidPhone
	}

	if email != nil {
		trimmed := strings.TrimSpace(*email)
		if trimmed == "" {
			email = nil
		} else {
			if _, err := mail.ParseAddress(trimmed); err != nil {
				return Contact{}, ErrInvalidEmail
			}
			email = &trimmed
		}
	}

	return Contact{name: name, phone: phone, email: email}, nil
}

func (c Contact) Name() string   { return c.name }
func (c Contact) Phone() string  { return c.phone }
func (c Contact) Email() *string { return c.email }

func countDigits(s string) int {
	n := 0
	for _, r := range s {
		if r >= '0' && r <= '9' {
			n++
		}
	}
	return n
}

// Note is free-text attached to a reservation.
type Note struct {
	value string
}

func NewNote(value string) Note {
	return Note{value: strings.TrimSpace(value)}
}

func (n Note) String() string { return n.value }
func (n Note) IsEmpty() bool  { return n.value == "" }
