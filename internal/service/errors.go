package service

import "errors"

// Failure kinds the HTTP layer maps to status codes. Services attach
// the user-facing message with E so handlers never invent text.
var (
	ErrNotFound     = errors.New("not found")
	ErrValidation   = errors.New("validation")
	ErrConflict     = errors.New("conflict")
	ErrUnauthorized = errors.New("unauthorized")
)

type apiError struct {
	kind error
	msg  string
}

func (e *apiError) Error() string { return e.msg }

func (e *apiError) Unwrap() error { return e.kind }

func E(kind error, msg string) error {
	return &apiError{kind: kind, msg: msg}
}
