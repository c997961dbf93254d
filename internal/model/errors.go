package model

import (
	"errors"
	"fmt"
)

// Error classes. Concrete errors below wrap one of these so callers can
// branch on the class with errors.Is.
var (
	ErrValidation   = errors.New("validation failed")
	ErrNotFound     = errors.New("not found")
	ErrCorruptState = errors.New("corrupt stored state")
)

// Validation errors
var (
	ErrEmptyCredentials  = fmt.Errorf("%w: email and password are required", ErrValidation)
	ErrEmptyEntityName   = fmt.Errorf("%w: entity name must not be empty", ErrValidation)
	ErrInvalidEntityName = fmt.Errorf("%w: entity name must be valid UTF-8", ErrValidation)
	ErrEmptyContent      = fmt.Errorf("%w: entry content must not be empty", ErrValidation)
	ErrUnknownCategory   = fmt.Errorf("%w: unknown category", ErrValidation)
)

// Registry errors
var (
	ErrEntityNotFound         = fmt.Errorf("entity %w", ErrNotFound)
	ErrDefaultEntityProtected = errors.New("default entity cannot be deleted")
	ErrRemovalCancelled       = errors.New("removal cancelled")
)

// Session errors
var (
	ErrNoSession      = errors.New("not authenticated")
	ErrCorruptSession = fmt.Errorf("session: %w", ErrCorruptState)
)
