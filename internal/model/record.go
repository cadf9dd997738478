package model

import "fmt"

// Record is one person entry in a roster.
//
// Records are constructed once, at load time, and never mutated. The zero
// value is not meaningful; records come from the embedded seed roster or
// from a roster file.
type Record struct {
	// ID uniquely identifies the record within its roster.
	// Caller-assigned; uniqueness is enforced by Validate, not by Render.
	ID int64 `json:"id" yaml:"id"`

	// Name is the person's display name.
	Name string `json:"name" yaml:"name"`

	// Active reports whether the person is currently active.
	Active bool `json:"is_active" yaml:"is_active"`

	// Age in whole years.
	Age int64 `json:"age" yaml:"age"`

	// Skills is an ordered list; display order must match input order.
	Skills []string `json:"skills" yaml:"skills"`

	// Address is the person's postal address.
	Address Address `json:"address" yaml:"address"`

	// Score is optional; nil displays as "N/A".
	Score *int64 `json:"score,omitempty" yaml:"score,omitempty"`

	// Status is optional; nil displays as "N/A".
	Status *string `json:"status,omitempty" yaml:"status,omitempty"`

	// Birthdate is the person's calendar date of birth.
	Birthdate Date `json:"birthdate" yaml:"birthdate"`
}

// Address is a postal address.
type Address struct {
	Street     string `json:"street" yaml:"street"`
	City       string `json:"city" yaml:"city"`
	PostalCode int64  `json:"postal_code" yaml:"postal_code"`
}

// Display returns the address in its single-line display form:
// "street, city, postal_code".
func (a Address) Display() string {
	return fmt.Sprintf("%s, %s, %d", a.Street, a.City, a.PostalCode)
}

// Greeting returns the person's self-introduction line.
// Pure function of Name; no other record state participates.
func (r Record) Greeting() string {
	return fmt.Sprintf("Hi, my name is %s", r.Name)
}
