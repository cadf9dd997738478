// Package model defines the person record types rendered by cardwall.
//
// This package contains type definitions and pure record logic only. All
// other internal packages import model; model imports nothing internal.
//
// Key design constraints:
//   - NO float types anywhere - counts and scores use int64
//   - Optional fields (Score, Status) are pointers; nil means absent
//   - Birthdate is a calendar date, never a wall-clock timestamp
//   - All JSON tags use snake_case
package model
