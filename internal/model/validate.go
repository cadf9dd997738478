package model

import (
	"errors"
	"fmt"
)

// ValidationError describes a single roster validation failure.
//
// Code values follow the CLI error-code scheme (see internal/cli) so that
// loaders and commands can report them uniformly.
type ValidationError struct {
	// Code identifies the error category ("E101", "E102", ...).
	Code string `json:"code"`

	// Field names the offending field, e.g. "id" or "name".
	Field string `json:"field"`

	// Message is a human-readable description.
	Message string `json:"message"`

	// RecordID is the id of the offending record, when known.
	RecordID int64 `json:"record_id,omitempty"`
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	if e.RecordID != 0 {
		return fmt.Sprintf("%s: %s (record=%d)", e.Code, e.Message, e.RecordID)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Validation error codes.
const (
	// ErrCodeDuplicateID indicates two records share an id.
	ErrCodeDuplicateID = "E101"

	// ErrCodeMissingName indicates a record has an empty name.
	ErrCodeMissingName = "E102"

	// ErrCodeMissingBirthdate indicates a record has a zero birthdate.
	ErrCodeMissingBirthdate = "E103"
)

// IsDuplicateID reports whether err is a duplicate-id validation error.
// Uses errors.As to handle wrapped errors.
func IsDuplicateID(err error) bool {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve.Code == ErrCodeDuplicateID
	}
	return false
}

// Validate checks roster-level invariants and returns every violation found.
//
// The only hard invariant is id uniqueness; name and birthdate checks catch
// the truncated-record mistakes roster files tend to contain. Render never
// calls Validate - malformed records that slip through are rendered as-is.
func Validate(records []Record) []error {
	var errs []error
	seen := make(map[int64]int, len(records))

	for i, rec := range records {
		if first, ok := seen[rec.ID]; ok {
			errs = append(errs, &ValidationError{
				Code:     ErrCodeDuplicateID,
				Field:    "id",
				Message:  fmt.Sprintf("duplicate id %d (records %d and %d)", rec.ID, first, i),
				RecordID: rec.ID,
			})
		} else {
			seen[rec.ID] = i
		}

		if rec.Name == "" {
			errs = append(errs, &ValidationError{
				Code:     ErrCodeMissingName,
				Field:    "name",
				Message:  fmt.Sprintf("record %d has no name", i),
				RecordID: rec.ID,
			})
		}

		if rec.Birthdate.IsZero() {
			errs = append(errs, &ValidationError{
				Code:     ErrCodeMissingBirthdate,
				Field:    "birthdate",
				Message:  fmt.Sprintf("record %d has no birthdate", i),
				RecordID: rec.ID,
			})
		}
	}

	return errs
}
