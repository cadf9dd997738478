package roster

import (
	"time"

	"cardwall/internal/model"
)

// Seed returns the embedded demo roster.
//
// The records are constructed fresh on every call so callers can't mutate
// shared state. The set deliberately covers the interesting display cases:
// a fully-populated record, a record with both optionals absent, and a
// record with a multi-word status.
func Seed() []model.Record {
	return []model.Record{
		{
			ID:     1,
			Name:   "Alice Johnson",
			Active: true,
			Age:    27,
			Skills: []string{"Go", "SQL", "Kubernetes"},
			Address: model.Address{
				Street:     "12 Rose Lane",
				City:       "Springfield",
				PostalCode: 49007,
			},
			Score:     intPtr(100),
			Status:    strPtr("active"),
			Birthdate: model.NewDate(1998, time.May, 15),
		},
		{
			ID:     2,
			Name:   "Bruno Keller",
			Active: false,
			Age:    34,
			Skills: []string{"Rust", "C"},
			Address: model.Address{
				Street:     "8 Harbor Way",
				City:       "Kiel",
				PostalCode: 24103,
			},
			Birthdate: model.NewDate(1991, time.November, 2),
		},
		{
			ID:     3,
			Name:   "Chen Wei",
			Active: true,
			Age:    41,
			Skills: []string{"Python", "Data Modeling", "Statistics"},
			Address: model.Address{
				Street:     "5 Jade Court",
				City:       "Richmond",
				PostalCode: 94804,
			},
			Score:     intPtr(87),
			Status:    strPtr("on leave"),
			Birthdate: model.NewDate(1984, time.March, 30),
		},
	}
}

func intPtr(n int64) *int64 { return &n }

func strPtr(s string) *string { return &s }
