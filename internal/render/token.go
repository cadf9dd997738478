package render

import "github.com/google/uuid"

// NewRunToken generates a unique token identifying one render pass.
//
// Uses UUIDv7 (time-ordered) so tokens sort by creation time in logs.
// Uses github.com/google/uuid package for RFC 4122 compliant UUIDs.
func NewRunToken() string {
	return uuid.Must(uuid.NewV7()).String()
}
