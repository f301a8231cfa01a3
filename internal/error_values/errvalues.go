package errorvalues

import "errors"

var (
	ErrUserNotFound     = errors.New("user doesn't exist")
	ErrUserExists       = errors.New("such user already exists")
	ErrEntryNotFound    = errors.New("screen time entry doesn't exist")
	ErrEntryExists      = errors.New("screen time entry for this day already exists")
	ErrSessionNotFound  = errors.New("focus session doesn't exist")
	ErrSessionActive    = errors.New("user already has an active focus session")
	ErrNoActiveSession  = errors.New("user has no active focus session")
	ErrSettingsNotFound = errors.New("user settings don't exist")
	ErrSettingsExist    = errors.New("user settings already exist")
	ErrNoActiveQuotes   = errors.New("no active quotes available")
	ErrValidation       = errors.New("invalid input")
)
