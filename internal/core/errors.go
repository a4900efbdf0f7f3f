// Package core defines the fundamental types and errors for MoodCraft.
package core

import "errors"

// Core errors that can occur across the system
var (
	// Storage errors
	ErrDatabaseNotFound = errors.New("database not found")
	ErrDatabaseLocked   = errors.New("database is locked")
	ErrMigrationFailed  = errors.New("migration failed")
	ErrEntryNotFound    = errors.New("entry not found")
	ErrAppendFailed     = errors.New("failed to persist entry")

	// Submission errors
	ErrBlankFeeling = errors.New("feeling text is blank")

	// Validation errors
	ErrInvalidInput     = errors.New("invalid input")
	ErrInvalidWindow    = errors.New("invalid time window")
	ErrInvalidIntensity = errors.New("intensity must be between 0 and 10")
)
