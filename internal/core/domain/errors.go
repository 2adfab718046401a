package domain

import "errors"

var (
	ErrInvalidEmail   = errors.New("please provide a valid email address")
	ErrAlreadyEntered = errors.New("you have already participated in this contest")
	ErrInternal       = errors.New("internal server error")
)

// StoreError marks a failed required store operation. Message is the short
// text shown to the caller; the cause stays server-side.
type StoreError struct {
	Message string
	Err     error
}

func (e *StoreError) Error() string { return e.Message }

func (e *StoreError) Unwrap() error { return e.Err }
