package services

import "errors"

// Service-level failures the handlers translate into HTTP statuses.
var (
	ErrNotFound       = errors.New("not found")
	ErrForbidden      = errors.New("forbidden")
	ErrConflict       = errors.New("conflict")
	ErrInvalid        = errors.New("invalid request")
	ErrBadCredentials = errors.New("invalid email or password")
)
