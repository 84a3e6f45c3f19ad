package domain

import (
	"encoding/json"
	"errors"
	"regexp"

	"github.com/asaskevich/govalidator"
)

// Name is a validated passenger name.
//
// Invariants:
//   - Matches namePattern (a single lowercase letter; the check is
//     deliberately minimal, passenger identity is not this system's concern)
type Name struct {
	value string
}

var namePattern = regexp.MustCompile(`^[a-z]$`)

// ErrInvalidName indicates the name failed validation.
var ErrInvalidName = errors.New("invalid name")

// NewName creates a validated Name.
func NewName(value string) (Name, error) {
	if !namePattern.MatchString(value) {
		return Name{}, ErrInvalidName
	}
	return Name{value: value}, nil
}

// MustName creates a Name, panicking if invalid.
func MustName(value string) Name {
	n, err := NewName(value)
	if err != nil {
		panic(err)
	}
	return n
}

// String returns the name.
func (n Name) String() string {
	return n.value
}

// IsZero returns true if this is the zero value.
func (n Name) IsZero() bool {
	return n.value == ""
}

func (n Name) MarshalJSON() ([]byte, error) {
	return json.Marshal(n.value)
}

func (n *Name) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	parsed, err := NewName(raw)
	if err != nil {
		return err
	}
	*n = parsed
	return nil
}

// Email is a syntactically valid email address.
type Email struct {
	value string
}

// ErrInvalidEmail indicates the value is not a syntactically valid email.
var ErrInvalidEmail = errors.New("invalid email address")

// NewEmail creates a validated Email.
func NewEmail(value string) (Email, error) {
	if !govalidator.IsEmail(value) {
		return Email{}, ErrInvalidEmail
	}
	return Email{value: value}, nil
}

// MustEmail creates an Email, panicking if invalid.
func MustEmail(value string) Email {
	e, err := NewEmail(value)
	if err != nil {
		panic(err)
	}
	return e
}

// String returns the email address.
func (e Email) String() string {
	return e.value
}

// IsZero returns true if this is the zero value.
func (e Email) IsZero() bool {
	return e.value == ""
}

func (e Email) MarshalJSON() ([]byte, error) {
	return json.Marshal(e.value)
}

func (e *Email) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	parsed, err := NewEmail(raw)
	if err != nil {
		return err
	}
	*e = parsed
	return nil
}

// PhoneNumber is a validated phone number.
//
// Invariants:
//   - Matches phonePattern, a fixed digit grouping (NNN-NNN). The pattern is
//     oversimplified on purpose; real subscriber-number rules are out of scope.
type PhoneNumber struct {
	value string
}

var phonePattern = regexp.MustCompile(`^[0-9]{3}-[0-9]{3}$`)

// ErrInvalidPhoneNumber indicates the phone number failed validation.
var ErrInvalidPhoneNumber = errors.New("invalid phone number: expected NNN-NNN")

// NewPhoneNumber creates a validated PhoneNumber.
func NewPhoneNumber(value string) (PhoneNumber, error) {
	if !phonePattern.MatchString(value) {
		return PhoneNumber{}, ErrInvalidPhoneNumber
	}
	return PhoneNumber{value: value}, nil
}

// MustPhoneNumber creates a PhoneNumber, panicking if invalid.
func MustPhoneNumber(value string) PhoneNumber {
	p, err := NewPhoneNumber(value)
	if err != nil {
		panic(err)
	}
	return p
}

// String returns the phone number.
func (p PhoneNumber) String() string {
	return p.value
}

// IsZero returns true if this is the zero value.
func (p PhoneNumber) IsZero() bool {
	return p.value == ""
}

func (p PhoneNumber) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.value)
}

func (p *PhoneNumber) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	parsed, err := NewPhoneNumber(raw)
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}
