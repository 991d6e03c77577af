package model

import "errors"

// Common errors used across the application
var (
	// Roster errors
	ErrCharacterNotFound      = errors.New("character not found")
	ErrEmptyRoster            = errors.New("roster has no characters")
	ErrInvalidCharacterID     = errors.New("character id must be positive")
	ErrDuplicateCharacterID   = errors.New("duplicate character id")
	ErrDuplicateCharacterName = errors.New("duplicate character name")

	// Selection errors
	ErrNoAvailableCharacters = errors.New("no characters available for selection")

	// Storage errors
	ErrLedgerNotFound     = errors.New("selection ledger not found")
	ErrSessionNotFound    = errors.New("game session not found")
	ErrCorruptRecord      = errors.New("persisted record is corrupt")
	ErrStorageUnavailable = errors.New("storage unavailable")
)
