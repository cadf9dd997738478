package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validRecord(id int64, name string) Record {
	return Record{ID: id, Name: name, Birthdate: NewDate(1990, time.January, 1)}
}

func TestValidateCleanRoster(t *testing.T) {
	records := []Record{
		validRecord(1, "Alice Johnson"),
		validRecord(2, "Bruno Keller"),
	}
	assert.Empty(t, Validate(records))
}

func TestValidateDuplicateID(t *testing.T) {
	records := []Record{
		validRecord(1, "Alice Johnson"),
		validRecord(1, "Bruno Keller"),
	}

	errs := Validate(records)
	require.Len(t, errs, 1)

	var ve *ValidationError
	require.ErrorAs(t, errs[0], &ve)
	assert.Equal(t, ErrCodeDuplicateID, ve.Code)
	assert.Equal(t, int64(1), ve.RecordID)
	assert.True(t, IsDuplicateID(errs[0]))
}

func TestValidateMissingFields(t *testing.T) {
	records := []Record{
		{ID: 1}, // no name, no birthdate
	}

	errs := Validate(records)
	require.Len(t, errs, 2)

	codes := make([]string, 0, len(errs))
	for _, err := range errs {
		var ve *ValidationError
		require.ErrorAs(t, err, &ve)
		codes = append(codes, ve.Code)
	}
	assert.Contains(t, codes, ErrCodeMissingName)
	assert.Contains(t, codes, ErrCodeMissingBirthdate)
}

func TestValidateCollectsAllViolations(t *testing.T) {
	records := []Record{
		validRecord(7, "Alice Johnson"),
		validRecord(7, "Bruno Keller"),
		{ID: 8, Birthdate: NewDate(1990, time.January, 1)}, // no name
	}

	errs := Validate(records)
	assert.Len(t, errs, 2, "one duplicate id, one missing name")
}

func TestValidateEmptyRoster(t *testing.T) {
	assert.Empty(t, Validate(nil))
}
